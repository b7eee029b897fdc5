package controllers

import (
	"net/http"
	"strconv"

	"github.com/YeshwantRaoB/organizon-web/middleware"
	"github.com/YeshwantRaoB/organizon-web/services"

	"github.com/gin-gonic/gin"
)

// respondError renders a ServiceError using the shared error body.
func respondError(c *gin.Context, serr *services.ServiceError) {
	body := gin.H{"ok": false, "error": serr.Message}
	if serr.Details != nil {
		body["details"] = serr.Details
	}
	c.JSON(serr.StatusCode, body)
}

// requireUserID reads the caller set by middleware.RequireUser. A missing
// id means the route was registered without the auth middleware.
func requireUserID(c *gin.Context) (string, bool) {
	userID, err := middleware.GetUserID(c)
	if err != nil {
		c.JSON(http.StatusUnauthorized, gin.H{"ok": false, "error": "Unauthorized"})
		return "", false
	}
	return userID, true
}

func queryInt(c *gin.Context, key string) int {
	v, err := strconv.Atoi(c.Query(key))
	if err != nil {
		return 0
	}
	return v
}
