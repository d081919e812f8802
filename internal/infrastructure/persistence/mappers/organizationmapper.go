package mappers

import (
	"fmt"
	"time"

	"deskhive/internal/domain/organization"
	"deskhive/internal/infrastructure/persistence/models"
)

// OrganizationMapper handles the conversion between organization domain
// entities and persistence models.
type OrganizationMapper interface {
	ToModel(entity *organization.Organization) *models.OrganizationModel
	ToEntity(model *models.OrganizationModel) (*organization.Organization, error)
}

type OrganizationMapperImpl struct{}

func NewOrganizationMapper() OrganizationMapper {
	return &OrganizationMapperImpl{}
}

func (m *OrganizationMapperImpl) ToModel(entity *organization.Organization) *models.OrganizationModel {
	if entity == nil {
		return nil
	}

	return &models.OrganizationModel{
		ID:        entity.ID(),
		Name:      entity.Name(),
		Slug:      entity.Slug(),
		CreatedAt: entity.CreatedAt().UnixMilli(),
		UpdatedAt: entity.UpdatedAt().UnixMilli(),
	}
}

func (m *OrganizationMapperImpl) ToEntity(model *models.OrganizationModel) (*organization.Organization, error) {
	if model == nil {
		return nil, nil
	}

	entity, err := organization.ReconstructOrganization(
		model.ID,
		model.Name,
		model.Slug,
		millisToTime(model.CreatedAt),
		millisToTime(model.UpdatedAt),
	)
	if err != nil {
		return nil, fmt.Errorf("failed to reconstruct organization entity: %w", err)
	}

	return entity, nil
}

func millisToTime(millis int64) time.Time {
	return time.Unix(0, millis*int64(time.Millisecond))
}

func millisPtrToTimePtr(millis *int64) *time.Time {
	if millis == nil {
		return nil
	}
	t := millisToTime(*millis)
	return &t
}
