package user

import (
	"context"
	"fmt"
	"time"
)

// RefreshToken is one active session. Only the SHA-256 hash of the raw token
// is ever persisted; the raw value is handed to the caller exactly once.
// Rotation deletes the consumed row and inserts a fresh one, so a token can
// never be presented twice successfully.
type RefreshToken struct {
	ID        uint
	UserID    uint
	TokenHash string
	ExpiresAt time.Time
	CreatedAt time.Time
}

func NewRefreshToken(userID uint, tokenHash string, expiresAt time.Time) (*RefreshToken, error) {
	if userID == 0 {
		return nil, fmt.Errorf("user ID is required")
	}
	if tokenHash == "" {
		return nil, fmt.Errorf("token hash is required")
	}

	return &RefreshToken{
		UserID:    userID,
		TokenHash: tokenHash,
		ExpiresAt: expiresAt,
		CreatedAt: time.Now(),
	}, nil
}

func (t *RefreshToken) IsExpired() bool {
	return time.Now().After(t.ExpiresAt)
}

// RefreshTokenRepository persists session rows. Delete reports whether a row
// was actually removed so concurrent rotations of the same token resolve to a
// single winner: the loser sees deleted == false.
type RefreshTokenRepository interface {
	Create(ctx context.Context, token *RefreshToken) error
	GetByTokenHash(ctx context.Context, tokenHash string) (*RefreshToken, error)
	Delete(ctx context.Context, id uint) (deleted bool, err error)
	DeleteByTokenHash(ctx context.Context, tokenHash string) error
	DeleteByUserID(ctx context.Context, userID uint) error
	DeleteExpired(ctx context.Context) error
}
