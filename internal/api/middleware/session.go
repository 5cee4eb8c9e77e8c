package middleware

import (
	"net/http"

	"storefront/internal/session"

	"github.com/gin-gonic/gin"
)

const userIDContextKey = "userID"

// Session resolves the cookie session on every request and slides its
// expiry window forward for authenticated callers.
func Session(mgr *session.Manager) gin.HandlerFunc {
	return func(c *gin.Context) {
		if userID, ok := mgr.UserID(c.Request); ok {
			c.Set(userIDContextKey, userID)
			mgr.Refresh(c.Writer, c.Request)
		}
		c.Next()
	}
}

// RequireAuth guards routes that need an authenticated caller.
func RequireAuth() gin.HandlerFunc {
	return func(c *gin.Context) {
		if _, ok := c.Get(userIDContextKey); !ok {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"message": "authentication required"})
			return
		}
		c.Next()
	}
}

// UserID returns the authenticated user id set by the Session middleware.
func UserID(c *gin.Context) (int64, bool) {
	v, ok := c.Get(userIDContextKey)
	if !ok {
		return 0, false
	}
	id, ok := v.(int64)
	return id, ok
}
