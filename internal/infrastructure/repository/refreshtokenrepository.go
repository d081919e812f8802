package repository

import (
	"context"
	"fmt"
	"time"

	"gorm.io/gorm"

	"deskhive/internal/domain/user"
	"deskhive/internal/infrastructure/persistence/mappers"
	"deskhive/internal/infrastructure/persistence/models"
	db "deskhive/internal/shared/db"
)

type RefreshTokenRepository struct {
	db     *gorm.DB
	mapper mappers.UserMapper
}

func NewRefreshTokenRepository(db *gorm.DB) *RefreshTokenRepository {
	return &RefreshTokenRepository{
		db:     db,
		mapper: mappers.NewUserMapper(),
	}
}

func (r *RefreshTokenRepository) Create(ctx context.Context, token *user.RefreshToken) error {
	model := r.mapper.RefreshTokenToModel(token)
	tx := db.GetTxFromContext(ctx, r.db)

	if err := tx.Create(model).Error; err != nil {
		return fmt.Errorf("failed to create refresh token: %w", err)
	}

	token.ID = model.ID
	return nil
}

func (r *RefreshTokenRepository) GetByTokenHash(ctx context.Context, tokenHash string) (*user.RefreshToken, error) {
	var model models.RefreshTokenModel
	tx := db.GetTxFromContext(ctx, r.db)

	if err := tx.
		Where("token_hash = ?", tokenHash).
		First(&model).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to find refresh token: %w", err)
	}

	return r.mapper.RefreshTokenToEntity(&model)
}

// Delete removes a token row by ID and reports whether a row was actually
// removed. Concurrent deletions of the same row resolve to a single caller
// seeing true.
func (r *RefreshTokenRepository) Delete(ctx context.Context, id uint) (bool, error) {
	tx := db.GetTxFromContext(ctx, r.db)

	result := tx.Delete(&models.RefreshTokenModel{}, id)
	if result.Error != nil {
		return false, fmt.Errorf("failed to delete refresh token: %w", result.Error)
	}

	return result.RowsAffected > 0, nil
}

func (r *RefreshTokenRepository) DeleteByTokenHash(ctx context.Context, tokenHash string) error {
	tx := db.GetTxFromContext(ctx, r.db)

	if err := tx.
		Where("token_hash = ?", tokenHash).
		Delete(&models.RefreshTokenModel{}).Error; err != nil {
		return fmt.Errorf("failed to delete refresh token by hash: %w", err)
	}

	return nil
}

func (r *RefreshTokenRepository) DeleteByUserID(ctx context.Context, userID uint) error {
	tx := db.GetTxFromContext(ctx, r.db)

	if err := tx.
		Where("user_id = ?", userID).
		Delete(&models.RefreshTokenModel{}).Error; err != nil {
		return fmt.Errorf("failed to delete refresh tokens for user: %w", err)
	}

	return nil
}

func (r *RefreshTokenRepository) DeleteExpired(ctx context.Context) error {
	tx := db.GetTxFromContext(ctx, r.db)

	if err := tx.
		Where("expires_at < ?", time.Now().UnixMilli()).
		Delete(&models.RefreshTokenModel{}).Error; err != nil {
		return fmt.Errorf("failed to delete expired refresh tokens: %w", err)
	}

	return nil
}
