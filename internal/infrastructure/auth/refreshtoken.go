package auth

import (
	"crypto/rand"
	"crypto/sha256"
	"encoding/base64"
	"encoding/hex"
	"fmt"
	"regexp"
	"strconv"
	"time"
)

// DefaultRefreshExpiry is the fallback refresh-token lifetime used when the
// configured duration string is malformed.
const DefaultRefreshExpiry = 7 * 24 * time.Hour

// refreshTokenBytes is the entropy of a raw refresh token.
const refreshTokenBytes = 64

var durationPattern = regexp.MustCompile(`^(\d+)([smhd])$`)

// GenerateRefreshToken returns a new raw refresh token and its SHA-256 hash.
// Only the hash is ever persisted; the raw value goes to the caller once.
func GenerateRefreshToken() (raw string, hash string, err error) {
	buf := make([]byte, refreshTokenBytes)
	if _, err := rand.Read(buf); err != nil {
		return "", "", fmt.Errorf("failed to generate refresh token: %w", err)
	}
	raw = base64.RawURLEncoding.EncodeToString(buf)
	return raw, HashRefreshToken(raw), nil
}

// HashRefreshToken derives the storage key for a raw token.
func HashRefreshToken(raw string) string {
	sum := sha256.Sum256([]byte(raw))
	return hex.EncodeToString(sum[:])
}

// RefreshTokenService adapts the package-level token helpers to the
// application layer's generator interface.
type RefreshTokenService struct{}

func NewRefreshTokenService() *RefreshTokenService {
	return &RefreshTokenService{}
}

func (s *RefreshTokenService) Generate() (raw string, hash string, err error) {
	return GenerateRefreshToken()
}

func (s *RefreshTokenService) Hash(raw string) string {
	return HashRefreshToken(raw)
}

// ParseRefreshExpiry parses a duration string of the form <integer><s|m|h|d>.
// Malformed input falls back to the fixed seven-day default.
func ParseRefreshExpiry(s string) time.Duration {
	m := durationPattern.FindStringSubmatch(s)
	if m == nil {
		return DefaultRefreshExpiry
	}

	n, err := strconv.ParseInt(m[1], 10, 64)
	if err != nil || n <= 0 {
		return DefaultRefreshExpiry
	}

	switch m[2] {
	case "s":
		return time.Duration(n) * time.Second
	case "m":
		return time.Duration(n) * time.Minute
	case "h":
		return time.Duration(n) * time.Hour
	case "d":
		return time.Duration(n) * 24 * time.Hour
	}
	return DefaultRefreshExpiry
}
