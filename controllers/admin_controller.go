package controllers

import (
	"net/http"
	"strings"

	"github.com/YeshwantRaoB/organizon-web/models"
	"github.com/YeshwantRaoB/organizon-web/services"

	"github.com/gin-gonic/gin"
)

type AdminController struct {
	adminService services.AdminService
}

func NewAdminController(adminService services.AdminService) *AdminController {
	return &AdminController{adminService: adminService}
}

func (ac *AdminController) GetStats(c *gin.Context) {
	stats, serr := ac.adminService.Stats(c.Request.Context())
	if serr != nil {
		respondError(c, serr)
		return
	}
	c.JSON(http.StatusOK, gin.H{"ok": true, "stats": stats})
}

// ListUsers pages through identity accounts. Query: limit, pageToken.
func (ac *AdminController) ListUsers(c *gin.Context) {
	page, serr := ac.adminService.ListUsers(c.Request.Context(), queryInt(c, "limit"), c.Query("pageToken"))
	if serr != nil {
		respondError(c, serr)
		return
	}
	c.JSON(http.StatusOK, gin.H{"ok": true, "users": page.Users, "pageToken": page.PageToken})
}

// SetAdmin grants or revokes the admin claim.
func (ac *AdminController) SetAdmin(c *gin.Context) {
	var req models.SetAdminRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"ok": false, "error": "Invalid request body"})
		return
	}
	if serr := ac.adminService.SetAdmin(c.Request.Context(), &req); serr != nil {
		respondError(c, serr)
		return
	}
	c.JSON(http.StatusOK, gin.H{"ok": true})
}

func (ac *AdminController) DeleteUser(c *gin.Context) {
	if serr := ac.adminService.DeleteUser(c.Request.Context(), strings.TrimSpace(c.Query("uid"))); serr != nil {
		respondError(c, serr)
		return
	}
	c.JSON(http.StatusOK, gin.H{"ok": true})
}

func (ac *AdminController) GetSettings(c *gin.Context) {
	settings, serr := ac.adminService.GetSettings(c.Request.Context())
	if serr != nil {
		respondError(c, serr)
		return
	}
	c.JSON(http.StatusOK, gin.H{"ok": true, "settings": settings})
}

func (ac *AdminController) SaveSettings(c *gin.Context) {
	var settings models.Settings
	if err := c.ShouldBindJSON(&settings); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"ok": false, "error": "Invalid request body"})
		return
	}
	if serr := ac.adminService.SaveSettings(c.Request.Context(), settings); serr != nil {
		respondError(c, serr)
		return
	}
	c.JSON(http.StatusOK, gin.H{"ok": true})
}

// GetPage returns the content page stored under ?path=.
func (ac *AdminController) GetPage(c *gin.Context) {
	page, serr := ac.adminService.GetPage(c.Request.Context(), c.Query("path"))
	if serr != nil {
		respondError(c, serr)
		return
	}
	c.JSON(http.StatusOK, gin.H{"ok": true, "page": page})
}

func (ac *AdminController) SavePage(c *gin.Context) {
	var page models.Page
	if err := c.ShouldBindJSON(&page); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"ok": false, "error": "Invalid request body"})
		return
	}
	if serr := ac.adminService.SavePage(c.Request.Context(), page); serr != nil {
		respondError(c, serr)
		return
	}
	c.JSON(http.StatusOK, gin.H{"ok": true})
}
