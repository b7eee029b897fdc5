package controllers

import (
	"net/http"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/YeshwantRaoB/organizon-web/common/logger"
	"github.com/YeshwantRaoB/organizon-web/models"
	"github.com/YeshwantRaoB/organizon-web/services"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

const maxCSVSize = 5 * 1024 * 1024

// BulkImportController accepts either a JSON body or a multipart CSV upload
// and hands both to the same import.
type BulkImportController struct {
	productService services.ProductService
}

func NewBulkImportController(productService services.ProductService) *BulkImportController {
	return &BulkImportController{productService: productService}
}

func (bc *BulkImportController) BulkImport(c *gin.Context) {
	var (
		req models.BulkImportRequest
		ok  bool
	)
	if strings.HasPrefix(c.ContentType(), "multipart/") {
		req, ok = bc.bindCSV(c)
	} else {
		ok = bc.bindJSON(c, &req)
	}
	if !ok {
		return
	}

	resp, serr := bc.productService.BulkImport(c.Request.Context(), &req)
	if serr != nil {
		respondError(c, serr)
		return
	}
	logger.Info(c.Request.Context(), "Bulk import finished",
		zap.Int("total", resp.Results.Total),
		zap.Int("inserted", resp.Results.Inserted),
		zap.Int("skipped", resp.Results.Skipped),
		zap.Int("errors", len(resp.Results.Errors)),
	)
	c.JSON(http.StatusOK, resp)
}

func (bc *BulkImportController) bindJSON(c *gin.Context, req *models.BulkImportRequest) bool {
	if err := c.ShouldBindJSON(req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"ok": false, "error": "Invalid request body", "details": err.Error()})
		return false
	}
	return true
}

func (bc *BulkImportController) bindCSV(c *gin.Context) (models.BulkImportRequest, bool) {
	var req models.BulkImportRequest

	file, err := c.FormFile("file")
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"ok": false, "error": "CSV file is required"})
		return req, false
	}
	if strings.ToLower(filepath.Ext(file.Filename)) != ".csv" {
		c.JSON(http.StatusBadRequest, gin.H{"ok": false, "error": "Only .csv files are accepted"})
		return req, false
	}
	if file.Size > maxCSVSize {
		c.JSON(http.StatusBadRequest, gin.H{"ok": false, "error": "CSV file exceeds the 5MB limit"})
		return req, false
	}

	fh, err := file.Open()
	if err != nil {
		logger.Error(c.Request.Context(), "Failed to open uploaded CSV", err)
		c.JSON(http.StatusInternalServerError, gin.H{"ok": false, "error": "Failed to open file"})
		return req, false
	}
	defer fh.Close()

	products, err := services.ParseProductsCSV(fh)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"ok": false, "error": err.Error()})
		return req, false
	}
	req.Products = products

	if v := c.PostForm("skipDuplicates"); v != "" {
		skip, err := strconv.ParseBool(v)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"ok": false, "error": "skipDuplicates must be true or false"})
			return req, false
		}
		req.SkipDuplicates = &skip
	}
	return req, true
}
