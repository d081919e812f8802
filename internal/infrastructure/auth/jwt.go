package auth

import (
	"fmt"
	"strconv"
	"time"

	"github.com/golang-jwt/jwt/v5"

	"deskhive/internal/shared/authorization"
)

// Claims is the access-token payload. Role, status, and organization are
// embedded at issuance; the guard trusts them for the token's lifetime
// instead of re-reading the member row on every request.
type Claims struct {
	Email          string             `json:"email"`
	Role           authorization.Role `json:"role"`
	Status         string             `json:"status"`
	OrganizationID uint               `json:"org_id"`
	jwt.RegisteredClaims
}

// JWTService signs and verifies access tokens.
type JWTService struct {
	secret           []byte
	accessExpMinutes int
}

func NewJWTService(secret string, accessExpMinutes int) *JWTService {
	if accessExpMinutes <= 0 {
		accessExpMinutes = 15
	}
	return &JWTService{
		secret:           []byte(secret),
		accessExpMinutes: accessExpMinutes,
	}
}

// Generate signs an access token for the given member snapshot.
func (s *JWTService) Generate(userID uint, email string, role authorization.Role, status string, organizationID uint) (string, error) {
	now := time.Now()
	claims := &Claims{
		Email:          email,
		Role:           role,
		Status:         status,
		OrganizationID: organizationID,
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   strconv.FormatUint(uint64(userID), 10),
			ExpiresAt: jwt.NewNumericDate(now.Add(time.Duration(s.accessExpMinutes) * time.Minute)),
			IssuedAt:  jwt.NewNumericDate(now),
			NotBefore: jwt.NewNumericDate(now),
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := token.SignedString(s.secret)
	if err != nil {
		return "", fmt.Errorf("failed to sign access token: %w", err)
	}
	return signed, nil
}

// Verify checks the signature and time bounds and returns the claims.
func (s *JWTService) Verify(tokenString string) (*Claims, error) {
	token, err := jwt.ParseWithClaims(tokenString, &Claims{}, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", token.Header["alg"])
		}
		return s.secret, nil
	})
	if err != nil {
		return nil, fmt.Errorf("failed to parse token: %w", err)
	}

	claims, ok := token.Claims.(*Claims)
	if !ok || !token.Valid {
		return nil, fmt.Errorf("invalid token")
	}
	return claims, nil
}

// UserID parses the numeric subject.
func (c *Claims) UserID() (uint, error) {
	id, err := strconv.ParseUint(c.Subject, 10, 32)
	if err != nil || id == 0 {
		return 0, fmt.Errorf("invalid token subject")
	}
	return uint(id), nil
}

// ExpiresIn returns the access-token lifetime in seconds.
func (s *JWTService) ExpiresIn() int64 {
	return int64(s.accessExpMinutes) * 60
}
