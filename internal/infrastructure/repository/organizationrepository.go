package repository

import (
	"context"
	"fmt"

	"gorm.io/gorm"

	"deskhive/internal/domain/organization"
	"deskhive/internal/infrastructure/persistence/mappers"
	"deskhive/internal/infrastructure/persistence/models"
	db "deskhive/internal/shared/db"
)

type OrganizationRepository struct {
	db     *gorm.DB
	mapper mappers.OrganizationMapper
}

func NewOrganizationRepository(db *gorm.DB) *OrganizationRepository {
	return &OrganizationRepository{
		db:     db,
		mapper: mappers.NewOrganizationMapper(),
	}
}

func (r *OrganizationRepository) Create(ctx context.Context, org *organization.Organization) error {
	model := r.mapper.ToModel(org)
	tx := db.GetTxFromContext(ctx, r.db)

	if err := tx.Create(model).Error; err != nil {
		return fmt.Errorf("failed to create organization: %w", err)
	}

	return org.SetID(model.ID)
}

func (r *OrganizationRepository) GetByID(ctx context.Context, id uint) (*organization.Organization, error) {
	var model models.OrganizationModel
	tx := db.GetTxFromContext(ctx, r.db)

	if err := tx.First(&model, id).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to find organization: %w", err)
	}

	return r.mapper.ToEntity(&model)
}

func (r *OrganizationRepository) GetBySlug(ctx context.Context, slug string) (*organization.Organization, error) {
	var model models.OrganizationModel
	tx := db.GetTxFromContext(ctx, r.db)

	if err := tx.
		Where("LOWER(slug) = LOWER(?)", slug).
		First(&model).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to find organization by slug: %w", err)
	}

	return r.mapper.ToEntity(&model)
}

func (r *OrganizationRepository) ExistsBySlug(ctx context.Context, slug string) (bool, error) {
	var count int64
	tx := db.GetTxFromContext(ctx, r.db)

	if err := tx.
		Model(&models.OrganizationModel{}).
		Where("LOWER(slug) = LOWER(?)", slug).
		Count(&count).Error; err != nil {
		return false, fmt.Errorf("failed to check slug existence: %w", err)
	}

	return count > 0, nil
}
