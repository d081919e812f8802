package repository

import (
	"context"
	"fmt"

	"gorm.io/gorm"

	"deskhive/internal/domain/user"
	"deskhive/internal/infrastructure/persistence/mappers"
	"deskhive/internal/infrastructure/persistence/models"
	"deskhive/internal/shared/authorization"
	db "deskhive/internal/shared/db"
)

type UserRepository struct {
	db     *gorm.DB
	mapper mappers.UserMapper
}

func NewUserRepository(db *gorm.DB) *UserRepository {
	return &UserRepository{
		db:     db,
		mapper: mappers.NewUserMapper(),
	}
}

func (r *UserRepository) Create(ctx context.Context, u *user.User) error {
	model, err := r.mapper.ToModel(u)
	if err != nil {
		return err
	}
	tx := db.GetTxFromContext(ctx, r.db)

	if err := tx.Create(model).Error; err != nil {
		return fmt.Errorf("failed to create user: %w", err)
	}

	return u.SetID(model.ID)
}

func (r *UserRepository) GetByID(ctx context.Context, id, organizationID uint) (*user.User, error) {
	var model models.UserModel
	tx := db.GetTxFromContext(ctx, r.db)

	if err := tx.
		Where("id = ? AND organization_id = ?", id, organizationID).
		First(&model).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to find user: %w", err)
	}

	return r.mapper.ToEntity(&model)
}

func (r *UserRepository) FindByID(ctx context.Context, id uint) (*user.User, error) {
	var model models.UserModel
	tx := db.GetTxFromContext(ctx, r.db)

	if err := tx.First(&model, id).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to find user: %w", err)
	}

	return r.mapper.ToEntity(&model)
}

func (r *UserRepository) GetByEmail(ctx context.Context, email string, organizationID uint) (*user.User, error) {
	var model models.UserModel
	tx := db.GetTxFromContext(ctx, r.db)

	if err := tx.
		Where("LOWER(email) = LOWER(?) AND organization_id = ?", email, organizationID).
		First(&model).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to find user by email: %w", err)
	}

	return r.mapper.ToEntity(&model)
}

func (r *UserRepository) ExistsByEmail(ctx context.Context, email string, organizationID uint) (bool, error) {
	var count int64
	tx := db.GetTxFromContext(ctx, r.db)

	if err := tx.
		Model(&models.UserModel{}).
		Where("LOWER(email) = LOWER(?) AND organization_id = ?", email, organizationID).
		Count(&count).Error; err != nil {
		return false, fmt.Errorf("failed to check email existence: %w", err)
	}

	return count > 0, nil
}

func (r *UserRepository) Update(ctx context.Context, u *user.User) error {
	model, err := r.mapper.ToModel(u)
	if err != nil {
		return err
	}
	tx := db.GetTxFromContext(ctx, r.db)

	result := tx.
		Model(&models.UserModel{}).
		Where("id = ?", model.ID).
		Updates(map[string]interface{}{
			"email":         model.Email,
			"password_hash": model.PasswordHash,
			"first_name":    model.FirstName,
			"last_name":     model.LastName,
			"role":          model.Role,
			"status":        model.Status,
		})
	if result.Error != nil {
		return fmt.Errorf("failed to update user: %w", result.Error)
	}

	return nil
}

func (r *UserRepository) List(ctx context.Context, organizationID uint, filter user.ListFilter) ([]*user.User, int64, error) {
	tx := db.GetTxFromContext(ctx, r.db)
	query := tx.Model(&models.UserModel{}).Where("organization_id = ?", organizationID)

	if filter.Role != nil {
		query = query.Where("role = ?", filter.Role.String())
	}
	if filter.Status != nil {
		query = query.Where("status = ?", filter.Status.String())
	}
	if filter.Search != "" {
		pattern := "%" + filter.Search + "%"
		query = query.Where(
			"email LIKE ? OR first_name LIKE ? OR last_name LIKE ?",
			pattern, pattern, pattern,
		)
	}

	var total int64
	if err := query.Count(&total).Error; err != nil {
		return nil, 0, fmt.Errorf("failed to count users: %w", err)
	}

	query = query.Order("created_at DESC")
	if filter.PageSize > 0 {
		offset := (filter.Page - 1) * filter.PageSize
		query = query.Limit(filter.PageSize).Offset(offset)
	}

	var userModels []*models.UserModel
	if err := query.Find(&userModels).Error; err != nil {
		return nil, 0, fmt.Errorf("failed to list users: %w", err)
	}

	users, err := r.mapper.ToEntities(userModels)
	if err != nil {
		return nil, 0, err
	}

	return users, total, nil
}

func (r *UserRepository) GetActiveAdmins(ctx context.Context, organizationID uint) ([]*user.User, error) {
	tx := db.GetTxFromContext(ctx, r.db)

	var userModels []*models.UserModel
	if err := tx.
		Where("organization_id = ? AND role = ? AND status = ?",
			organizationID, authorization.RoleAdmin.String(), "ACTIVE").
		Find(&userModels).Error; err != nil {
		return nil, fmt.Errorf("failed to find active admins: %w", err)
	}

	return r.mapper.ToEntities(userModels)
}
