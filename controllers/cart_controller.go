package controllers

import (
	"net/http"

	"github.com/YeshwantRaoB/organizon-web/models"
	"github.com/YeshwantRaoB/organizon-web/services"

	"github.com/gin-gonic/gin"
)

type CartController struct {
	cartService services.CartService
}

func NewCartController(cartService services.CartService) *CartController {
	return &CartController{cartService: cartService}
}

// GetCart returns the caller's cart, empty if they never saved one.
func (cc *CartController) GetCart(c *gin.Context) {
	userID, ok := requireUserID(c)
	if !ok {
		return
	}
	cart, serr := cc.cartService.GetCart(c.Request.Context(), userID)
	if serr != nil {
		respondError(c, serr)
		return
	}
	c.JSON(http.StatusOK, gin.H{"cart": cart})
}

// SaveCart replaces the caller's item list with the posted one.
func (cc *CartController) SaveCart(c *gin.Context) {
	userID, ok := requireUserID(c)
	if !ok {
		return
	}

	var req struct {
		Items *[]models.CartItem `json:"items"`
	}
	if err := c.ShouldBindJSON(&req); err != nil || req.Items == nil {
		c.JSON(http.StatusBadRequest, gin.H{"ok": false, "error": "Invalid cart items format"})
		return
	}

	if serr := cc.cartService.SaveCart(c.Request.Context(), userID, *req.Items); serr != nil {
		respondError(c, serr)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Cart saved successfully"})
}

func (cc *CartController) ClearCart(c *gin.Context) {
	userID, ok := requireUserID(c)
	if !ok {
		return
	}
	if serr := cc.cartService.ClearCart(c.Request.Context(), userID); serr != nil {
		respondError(c, serr)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Cart cleared successfully"})
}
