package controllers

import (
	"net/http"

	"github.com/YeshwantRaoB/organizon-web/identity"
	"github.com/YeshwantRaoB/organizon-web/middleware"

	"github.com/gin-gonic/gin"
)

// AuthController reports on the already-verified caller. Verification
// itself happens in middleware.RequireUser.
type AuthController struct {
	policy identity.AdminPolicy
}

func NewAuthController(policy identity.AdminPolicy) *AuthController {
	return &AuthController{policy: policy}
}

// CheckAdmin tells a signed-in caller whether the back office is open to them.
func (ac *AuthController) CheckAdmin(c *gin.Context) {
	claims := middleware.GetClaims(c)
	if claims == nil {
		c.JSON(http.StatusUnauthorized, gin.H{"ok": false, "error": "Unauthorized"})
		return
	}
	c.JSON(http.StatusOK, gin.H{
		"isAdmin": ac.policy.IsAdmin(claims),
		"uid":     claims.UID,
		"email":   claims.Email,
	})
}

func (ac *AuthController) VerifyToken(c *gin.Context) {
	claims := middleware.GetClaims(c)
	if claims == nil {
		c.JSON(http.StatusUnauthorized, gin.H{"ok": false, "error": "Unauthorized"})
		return
	}
	c.JSON(http.StatusOK, gin.H{
		"ok":    true,
		"uid":   claims.UID,
		"email": claims.Email,
		"name":  claims.Name,
	})
}
