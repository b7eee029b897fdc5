package controllers

import (
	"net/http"

	"github.com/YeshwantRaoB/organizon-web/models"
	"github.com/YeshwantRaoB/organizon-web/services"

	"github.com/gin-gonic/gin"
)

type OrderController struct {
	orderService services.OrderService
}

func NewOrderController(orderService services.OrderService) *OrderController {
	return &OrderController{orderService: orderService}
}

// GetOrders returns the caller's orders, newest first
func (oc *OrderController) GetOrders(c *gin.Context) {
	userID, ok := requireUserID(c)
	if !ok {
		return
	}
	orders, serr := oc.orderService.ListForUser(c.Request.Context(), userID)
	if serr != nil {
		respondError(c, serr)
		return
	}
	c.JSON(http.StatusOK, gin.H{"orders": orders})
}

// GetAllOrders returns every order (admin only)
func (oc *OrderController) GetAllOrders(c *gin.Context) {
	orders, serr := oc.orderService.ListAll(c.Request.Context())
	if serr != nil {
		respondError(c, serr)
		return
	}
	c.JSON(http.StatusOK, gin.H{"ok": true, "orders": orders})
}

func (oc *OrderController) GetOrder(c *gin.Context) {
	order, serr := oc.orderService.GetOrder(c.Request.Context(), c.Param("id"))
	if serr != nil {
		respondError(c, serr)
		return
	}
	c.JSON(http.StatusOK, gin.H{"ok": true, "order": order})
}

// UpdateOrderStatus sets the status of one order (admin only)
func (oc *OrderController) UpdateOrderStatus(c *gin.Context) {
	var req models.UpdateOrderStatusRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"ok": false, "error": "Invalid status value"})
		return
	}
	if serr := oc.orderService.UpdateStatus(c.Request.Context(), c.Param("id"), req.Status); serr != nil {
		respondError(c, serr)
		return
	}
	c.JSON(http.StatusOK, gin.H{"ok": true})
}
