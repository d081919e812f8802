package authorization

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// RequireAdmin aborts with 403 unless the authenticated principal holds the
// ADMIN role. Must run after the auth middleware.
func RequireAdmin() gin.HandlerFunc {
	return func(c *gin.Context) {
		p, ok := PrincipalFrom(c)
		if !ok || !p.IsAdmin() {
			c.AbortWithStatusJSON(http.StatusForbidden, gin.H{
				"message": "admin access required",
			})
			return
		}
		c.Next()
	}
}

// CanAccessOwnedResource checks the creator-scoping rule: admins see
// everything in their organization, regular members only what they created.
func CanAccessOwnedResource(p Principal, ownerID uint) bool {
	if p.IsAdmin() {
		return true
	}
	return p.UserID == ownerID
}
