package controllers

import (
	"net/http"
	"strings"

	"github.com/YeshwantRaoB/organizon-web/models"
	"github.com/YeshwantRaoB/organizon-web/services"

	"github.com/gin-gonic/gin"
)

type ProductController struct {
	productService services.ProductService
}

func NewProductController(productService services.ProductService) *ProductController {
	return &ProductController{productService: productService}
}

// GetProducts lists the catalogue. Query: limit, page, category,
// subcategory, search.
func (pc *ProductController) GetProducts(c *gin.Context) {
	q := models.ProductQuery{
		Limit:       queryInt(c, "limit"),
		Page:        queryInt(c, "page"),
		Category:    strings.TrimSpace(c.Query("category")),
		Subcategory: strings.TrimSpace(c.Query("subcategory")),
		Search:      strings.TrimSpace(c.Query("search")),
	}
	resp, serr := pc.productService.ListProducts(c.Request.Context(), q)
	if serr != nil {
		respondError(c, serr)
		return
	}
	c.JSON(http.StatusOK, resp)
}

func (pc *ProductController) GetProduct(c *gin.Context) {
	product, serr := pc.productService.GetProduct(c.Request.Context(), c.Param("id"))
	if serr != nil {
		respondError(c, serr)
		return
	}
	c.JSON(http.StatusOK, gin.H{"ok": true, "product": product})
}

func (pc *ProductController) CreateProduct(c *gin.Context) {
	var in models.ProductInput
	if err := c.ShouldBindJSON(&in); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"ok": false, "error": "Invalid request body", "details": err.Error()})
		return
	}
	product, serr := pc.productService.CreateProduct(c.Request.Context(), &in)
	if serr != nil {
		respondError(c, serr)
		return
	}
	c.JSON(http.StatusCreated, gin.H{"ok": true, "product": product})
}

func (pc *ProductController) UpdateProduct(c *gin.Context) {
	var upd models.ProductUpdate
	if err := c.ShouldBindJSON(&upd); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"ok": false, "error": "Invalid request body", "details": err.Error()})
		return
	}
	product, serr := pc.productService.UpdateProduct(c.Request.Context(), c.Param("id"), &upd)
	if serr != nil {
		respondError(c, serr)
		return
	}
	c.JSON(http.StatusOK, gin.H{"ok": true, "product": product})
}

func (pc *ProductController) DeleteProduct(c *gin.Context) {
	product, serr := pc.productService.DeleteProduct(c.Request.Context(), c.Param("id"))
	if serr != nil {
		respondError(c, serr)
		return
	}
	c.JSON(http.StatusOK, gin.H{"ok": true, "product": product})
}
