package controllers

import (
	"net/http"

	"github.com/YeshwantRaoB/organizon-web/common/logger"
	"github.com/YeshwantRaoB/organizon-web/services"

	"github.com/gin-gonic/gin"
)

type ImageController struct {
	imageService services.ImageService
}

func NewImageController(imageService services.ImageService) *ImageController {
	return &ImageController{imageService: imageService}
}

// UploadImage stores the multipart "file" on the image host.
func (ic *ImageController) UploadImage(c *gin.Context) {
	file, err := c.FormFile("file")
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"ok": false, "error": "Image file is required"})
		return
	}
	fh, err := file.Open()
	if err != nil {
		logger.Error(c.Request.Context(), "Failed to open uploaded image", err)
		c.JSON(http.StatusInternalServerError, gin.H{"ok": false, "error": "Failed to open file"})
		return
	}
	defer fh.Close()

	img, serr := ic.imageService.Upload(c.Request.Context(), file.Filename, file.Header.Get("Content-Type"), file.Size, fh)
	if serr != nil {
		respondError(c, serr)
		return
	}
	c.JSON(http.StatusOK, img)
}

// PresignUpload returns a short-lived PUT URL so the browser can upload
// directly to the bucket.
func (ic *ImageController) PresignUpload(c *gin.Context) {
	var req struct {
		Filename    string `json:"filename" binding:"required"`
		ContentType string `json:"contentType" binding:"required"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"ok": false, "error": "filename and contentType are required"})
		return
	}
	up, serr := ic.imageService.Presign(c.Request.Context(), req.Filename, req.ContentType)
	if serr != nil {
		respondError(c, serr)
		return
	}
	c.JSON(http.StatusOK, up)
}
