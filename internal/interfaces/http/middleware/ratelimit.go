package middleware

import (
	"bytes"
	"encoding/json"
	"io"
	"net/http"

	"github.com/gin-gonic/gin"

	"deskhive/internal/infrastructure/ratelimit"
	"deskhive/internal/shared/logger"
	"deskhive/internal/shared/utils"
)

// AuthRateLimiter throttles the public auth endpoints. The key combines the
// client IP with the targeted organization slug so a burst against one tenant
// does not lock the same IP out of another, and one IP cannot spray every
// tenant freely either.
type AuthRateLimiter struct {
	limiter ratelimit.RateLimiter
	config  ratelimit.RateLimitConfig
	logger  logger.Interface
}

func NewAuthRateLimiter(limiter ratelimit.RateLimiter, config ratelimit.RateLimitConfig, logger logger.Interface) *AuthRateLimiter {
	return &AuthRateLimiter{
		limiter: limiter,
		config:  config,
		logger:  logger,
	}
}

// slugPeek reads just the organization slug out of the request body.
type slugPeek struct {
	OrganizationSlug string `json:"organization_slug"`
}

// Limit enforces the sliding-window limit. The limiter itself failing is not
// a reason to block logins, so limiter errors fail open.
func (rl *AuthRateLimiter) Limit() gin.HandlerFunc {
	return func(c *gin.Context) {
		key := "auth:" + c.ClientIP()

		if slug := peekOrganizationSlug(c); slug != "" {
			key += ":" + slug
		}

		allowed, err := rl.limiter.Allow(key, rl.config)
		if err != nil {
			rl.logger.Warnw("rate limiter unavailable, allowing request",
				"error", err, "key", key)
			c.Next()
			return
		}

		if !allowed {
			utils.ErrorResponse(c, http.StatusTooManyRequests, "too many requests, please try again later")
			c.Abort()
			return
		}

		c.Next()
	}
}

// peekOrganizationSlug reads the slug from the JSON body and restores the
// body so the handler can bind it again.
func peekOrganizationSlug(c *gin.Context) string {
	if c.Request.Body == nil {
		return ""
	}

	body, err := io.ReadAll(c.Request.Body)
	if err != nil {
		return ""
	}
	c.Request.Body = io.NopCloser(bytes.NewBuffer(body))

	var peek slugPeek
	if err := json.Unmarshal(body, &peek); err != nil {
		return ""
	}
	return peek.OrganizationSlug
}
