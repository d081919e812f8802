package authorization

import "github.com/gin-gonic/gin"

// principalKey is the gin context key the auth middleware stores the
// authenticated principal under.
const principalKey = "principal"

// Principal is the authenticated caller, resolved once per request from the
// access token and passed explicitly into every service call. The status is
// the one embedded at token issuance; it is not re-read from storage.
type Principal struct {
	UserID         uint
	Email          string
	Role           Role
	Status         string
	OrganizationID uint
}

func (p Principal) IsAdmin() bool {
	return p.Role.IsAdmin()
}

// SetPrincipal stores the principal on the request context.
func SetPrincipal(c *gin.Context, p Principal) {
	c.Set(principalKey, p)
}

// PrincipalFrom returns the principal placed by the auth middleware.
// The second return is false on unauthenticated routes.
func PrincipalFrom(c *gin.Context) (Principal, bool) {
	v, ok := c.Get(principalKey)
	if !ok {
		return Principal{}, false
	}
	p, ok := v.(Principal)
	return p, ok
}
