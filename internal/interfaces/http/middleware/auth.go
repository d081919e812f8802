package middleware

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"deskhive/internal/domain/user/valueobjects"
	"deskhive/internal/infrastructure/auth"
	"deskhive/internal/shared/authorization"
	"deskhive/internal/shared/logger"
	"deskhive/internal/shared/utils"
)

// AuthMiddleware validates bearer access tokens and places the resolved
// principal on the request context. The role and status embedded in the
// token are trusted for its lifetime; a suspension therefore takes effect
// when the access token expires.
type AuthMiddleware struct {
	jwtService *auth.JWTService
	logger     logger.Interface
}

func NewAuthMiddleware(jwtService *auth.JWTService, logger logger.Interface) *AuthMiddleware {
	return &AuthMiddleware{
		jwtService: jwtService,
		logger:     logger,
	}
}

func (m *AuthMiddleware) RequireAuth() gin.HandlerFunc {
	return func(c *gin.Context) {
		authHeader := c.GetHeader("Authorization")
		if authHeader == "" {
			utils.ErrorResponse(c, http.StatusUnauthorized, "missing authorization token")
			c.Abort()
			return
		}

		parts := strings.SplitN(authHeader, " ", 2)
		if len(parts) != 2 || parts[0] != "Bearer" {
			utils.ErrorResponse(c, http.StatusUnauthorized, "invalid authorization header format")
			c.Abort()
			return
		}

		claims, err := m.jwtService.Verify(parts[1])
		if err != nil {
			m.logger.Warnw("failed to verify token", "error", err)
			utils.ErrorResponse(c, http.StatusUnauthorized, "invalid or expired token")
			c.Abort()
			return
		}

		userID, err := claims.UserID()
		if err != nil {
			utils.ErrorResponse(c, http.StatusUnauthorized, "invalid or expired token")
			c.Abort()
			return
		}

		if claims.Status != valueobjects.StatusActive.String() {
			utils.ErrorResponse(c, http.StatusUnauthorized, "account is not active")
			c.Abort()
			return
		}

		authorization.SetPrincipal(c, authorization.Principal{
			UserID:         userID,
			Email:          claims.Email,
			Role:           claims.Role,
			Status:         claims.Status,
			OrganizationID: claims.OrganizationID,
		})

		c.Next()
	}
}
