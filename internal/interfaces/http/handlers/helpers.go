package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"deskhive/internal/shared/authorization"
	"deskhive/internal/shared/utils"
)

// requirePrincipal returns the authenticated principal or aborts with 401.
// Handlers behind the auth middleware always find one; the guard here covers
// misrouted registrations.
func requirePrincipal(c *gin.Context) (authorization.Principal, bool) {
	p, ok := authorization.PrincipalFrom(c)
	if !ok {
		utils.ErrorResponse(c, http.StatusUnauthorized, "authentication required")
		c.Abort()
	}
	return p, ok
}
