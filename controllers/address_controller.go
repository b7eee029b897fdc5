package controllers

import (
	"net/http"

	"github.com/YeshwantRaoB/organizon-web/models"
	"github.com/YeshwantRaoB/organizon-web/services"

	"github.com/gin-gonic/gin"
)

type AddressController struct {
	addressService services.AddressService
}

func NewAddressController(addressService services.AddressService) *AddressController {
	return &AddressController{addressService: addressService}
}

// ListAddresses returns the caller's addresses as a bare array.
func (ac *AddressController) ListAddresses(c *gin.Context) {
	userID, ok := requireUserID(c)
	if !ok {
		return
	}
	addresses, serr := ac.addressService.ListAddresses(c.Request.Context(), userID)
	if serr != nil {
		respondError(c, serr)
		return
	}
	c.JSON(http.StatusOK, addresses)
}

func (ac *AddressController) CreateAddress(c *gin.Context) {
	userID, ok := requireUserID(c)
	if !ok {
		return
	}
	var in models.AddressInput
	if err := c.ShouldBindJSON(&in); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"ok": false, "error": "Invalid input"})
		return
	}
	address, serr := ac.addressService.CreateAddress(c.Request.Context(), userID, &in)
	if serr != nil {
		respondError(c, serr)
		return
	}
	c.JSON(http.StatusCreated, address)
}

func (ac *AddressController) UpdateAddress(c *gin.Context) {
	userID, ok := requireUserID(c)
	if !ok {
		return
	}
	var in models.AddressInput
	if err := c.ShouldBindJSON(&in); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"ok": false, "error": "Invalid input"})
		return
	}
	address, serr := ac.addressService.UpdateAddress(c.Request.Context(), userID, c.Param("id"), &in)
	if serr != nil {
		respondError(c, serr)
		return
	}
	c.JSON(http.StatusOK, address)
}

func (ac *AddressController) DeleteAddress(c *gin.Context) {
	userID, ok := requireUserID(c)
	if !ok {
		return
	}
	if serr := ac.addressService.DeleteAddress(c.Request.Context(), userID, c.Param("id")); serr != nil {
		respondError(c, serr)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Address deleted successfully"})
}
