package middleware

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/Lucifer-Aspire-A315/studio-sub000/internal/session"
)

const identityKey = "identity"

// RequireSession rejects requests whose session cookie bundle is missing,
// incomplete, or fails verification.
func RequireSession() gin.HandlerFunc {
	return func(c *gin.Context) {
		ident := session.FromRequest(c)
		if ident == nil {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"success": false, "message": "you must be logged in"})
			return
		}
		c.Set(identityKey, ident)
		c.Next()
	}
}

// RequireAdmin ensures the session is valid and carries the admin flag.
func RequireAdmin() gin.HandlerFunc {
	return func(c *gin.Context) {
		ident := session.FromRequest(c)
		if ident == nil {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"success": false, "message": "you must be logged in"})
			return
		}
		if !ident.IsAdmin {
			c.AbortWithStatusJSON(http.StatusForbidden, gin.H{"success": false, "message": "admin access required"})
			return
		}

		c.Set(identityKey, ident)
		c.Next()
	}
}

// CurrentIdentity returns the identity stored by RequireSession, or nil.
func CurrentIdentity(c *gin.Context) *session.Identity {
	if v, ok := c.Get(identityKey); ok {
		if ident, ok := v.(*session.Identity); ok {
			return ident
		}
	}
	return nil
}
