package middleware

import (
	"errors"
	"strings"

	apperrors "github.com/YeshwantRaoB/organizon-web/common/errors"
	"github.com/YeshwantRaoB/organizon-web/common/logger"
	"github.com/YeshwantRaoB/organizon-web/identity"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

const (
	UserContextKey   = "userID"
	EmailContextKey  = "email"
	ClaimsContextKey = "claims"

	// TokenCookie carries the ID token for browser-driven calls.
	TokenCookie = "firebase_token"
)

// ExtractToken reads the bearer header first, then the session cookie.
func ExtractToken(c *gin.Context) string {
	if h := c.GetHeader("Authorization"); strings.HasPrefix(h, "Bearer ") {
		if t := strings.TrimSpace(strings.TrimPrefix(h, "Bearer ")); t != "" {
			return t
		}
	}
	if v, err := c.Cookie(TokenCookie); err == nil && v != "" {
		return v
	}
	return ""
}

// RequireUser verifies the caller's credential and stores its claims in
// the context. Failures are pushed as typed errors and rendered by
// apperrors.ErrorMiddleware.
func RequireUser(verifier identity.Verifier, m *HTTPMetrics) gin.HandlerFunc {
	return func(c *gin.Context) {
		token := ExtractToken(c)
		if token == "" {
			m.authResult("missing")
			_ = c.Error(apperrors.ErrNoToken)
			c.Abort()
			return
		}

		claims, err := verifier.Verify(c.Request.Context(), token)
		if err != nil {
			m.authResult("invalid")
			logger.Warn(c, "Token verification failed", zap.Error(err))
			_ = c.Error(apperrors.Wrap(apperrors.ErrInvalidToken, err))
			c.Abort()
			return
		}

		m.authResult("ok")
		c.Set(UserContextKey, claims.UID)
		c.Set(EmailContextKey, claims.Email)
		c.Set(ClaimsContextKey, claims)
		c.Next()
	}
}

// RequireAdmin must run after RequireUser. It is the single admin gate for
// every back-office route.
func RequireAdmin(policy identity.AdminPolicy) gin.HandlerFunc {
	return func(c *gin.Context) {
		if !policy.IsAdmin(GetClaims(c)) {
			_ = c.Error(apperrors.ErrForbidden)
			c.Abort()
			return
		}
		c.Next()
	}
}

// GetUserID extracts the user ID from the Gin context.
func GetUserID(c *gin.Context) (string, error) {
	if val, ok := c.Get(UserContextKey); ok {
		if id, ok := val.(string); ok && id != "" {
			return id, nil
		}
	}
	return "", errors.New("user ID not found in context")
}

func GetClaims(c *gin.Context) *identity.Claims {
	if val, ok := c.Get(ClaimsContextKey); ok {
		if claims, ok := val.(*identity.Claims); ok {
			return claims
		}
	}
	return nil
}
