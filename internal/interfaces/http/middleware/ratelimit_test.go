package middleware

import (
	"bytes"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"deskhive/internal/infrastructure/ratelimit"
)

// stubLimiter records keys and answers with a fixed verdict.
type stubLimiter struct {
	allow   bool
	err     error
	gotKeys []string
}

func (s *stubLimiter) Allow(key string, config ratelimit.RateLimitConfig) (bool, error) {
	s.gotKeys = append(s.gotKeys, key)
	return s.allow, s.err
}

func (s *stubLimiter) GetRemaining(key string, window time.Duration) (int64, error) {
	return 0, nil
}

func (s *stubLimiter) Reset(key string) error { return nil }

func rateLimitedRouter(limiter ratelimit.RateLimiter) (*gin.Engine, *[]byte) {
	rl := NewAuthRateLimiter(limiter, ratelimit.RateLimitConfig{RequestsPerMinute: 10}, nopLogger{})

	var seenBody []byte
	engine := gin.New()
	engine.POST("/auth/login", rl.Limit(), func(c *gin.Context) {
		seenBody, _ = io.ReadAll(c.Request.Body)
		c.Status(http.StatusOK)
	})

	return engine, &seenBody
}

func TestAuthRateLimiter_KeyIncludesIPAndSlug(t *testing.T) {
	limiter := &stubLimiter{allow: true}
	engine, _ := rateLimitedRouter(limiter)

	body := `{"organization_slug":"acme-corp","email":"a@b.test","password":"x"}`
	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/auth/login", bytes.NewBufferString(body))
	req.Header.Set("Content-Type", "application/json")
	engine.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	require.Len(t, limiter.gotKeys, 1)
	assert.Contains(t, limiter.gotKeys[0], "acme-corp")
}

func TestAuthRateLimiter_BodyStillReadableByHandler(t *testing.T) {
	limiter := &stubLimiter{allow: true}
	engine, seenBody := rateLimitedRouter(limiter)

	body := `{"organization_slug":"acme-corp","password":"hunter2"}`
	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/auth/login", bytes.NewBufferString(body))
	engine.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, body, string(*seenBody))
}

func TestAuthRateLimiter_BlocksWhenLimitExceeded(t *testing.T) {
	limiter := &stubLimiter{allow: false}
	engine, _ := rateLimitedRouter(limiter)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/auth/login", bytes.NewBufferString(`{}`))
	engine.ServeHTTP(w, req)

	assert.Equal(t, http.StatusTooManyRequests, w.Code)
}

func TestAuthRateLimiter_FailsOpenOnLimiterError(t *testing.T) {
	limiter := &stubLimiter{allow: false, err: io.ErrUnexpectedEOF}
	engine, _ := rateLimitedRouter(limiter)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/auth/login", bytes.NewBufferString(`{}`))
	engine.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
}
