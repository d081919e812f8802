package mappers

import (
	"fmt"

	"deskhive/internal/domain/user"
	vo "deskhive/internal/domain/user/valueobjects"
	"deskhive/internal/infrastructure/persistence/models"
	"deskhive/internal/shared/authorization"
	"deskhive/internal/shared/mapper"
)

// UserMapper handles the conversion between user domain entities and persistence models
type UserMapper interface {
	// ToEntity converts a persistence model to a domain entity
	ToEntity(model *models.UserModel) (*user.User, error)

	// ToModel converts a domain entity to a persistence model
	ToModel(entity *user.User) (*models.UserModel, error)

	// ToEntities converts multiple persistence models to domain entities
	ToEntities(models []*models.UserModel) ([]*user.User, error)

	// RefreshTokenToEntity converts a refresh token persistence model to a domain entity
	RefreshTokenToEntity(model *models.RefreshTokenModel) (*user.RefreshToken, error)

	// RefreshTokenToModel converts a refresh token domain entity to a persistence model
	RefreshTokenToModel(entity *user.RefreshToken) *models.RefreshTokenModel
}

// UserMapperImpl is the concrete implementation of UserMapper
type UserMapperImpl struct{}

// NewUserMapper creates a new user mapper
func NewUserMapper() UserMapper {
	return &UserMapperImpl{}
}

// ToEntity converts a persistence model to a domain entity
func (m *UserMapperImpl) ToEntity(model *models.UserModel) (*user.User, error) {
	if model == nil {
		return nil, nil
	}

	status, err := vo.NewStatus(model.Status)
	if err != nil {
		return nil, fmt.Errorf("failed to create status value object: %w", err)
	}

	role := authorization.ParseRole(model.Role)

	entity, err := user.ReconstructUser(
		model.ID,
		model.OrganizationID,
		model.Email,
		model.PasswordHash,
		model.FirstName,
		model.LastName,
		role,
		status,
		millisToTime(model.CreatedAt),
		millisToTime(model.UpdatedAt),
	)
	if err != nil {
		return nil, fmt.Errorf("failed to reconstruct user entity: %w", err)
	}

	return entity, nil
}

// ToModel converts a domain entity to a persistence model
func (m *UserMapperImpl) ToModel(entity *user.User) (*models.UserModel, error) {
	if entity == nil {
		return nil, nil
	}

	return &models.UserModel{
		ID:             entity.ID(),
		OrganizationID: entity.OrganizationID(),
		Email:          entity.Email(),
		PasswordHash:   entity.PasswordHash(),
		FirstName:      entity.FirstName(),
		LastName:       entity.LastName(),
		Role:           entity.Role().String(),
		Status:         entity.Status().String(),
		CreatedAt:      entity.CreatedAt().UnixMilli(),
		UpdatedAt:      entity.UpdatedAt().UnixMilli(),
	}, nil
}

// ToEntities converts multiple persistence models to domain entities
func (m *UserMapperImpl) ToEntities(modelList []*models.UserModel) ([]*user.User, error) {
	return mapper.MapSlicePtrWithID(modelList, m.ToEntity, func(model *models.UserModel) uint { return model.ID })
}

// RefreshTokenToEntity converts a refresh token persistence model to a domain entity
func (m *UserMapperImpl) RefreshTokenToEntity(model *models.RefreshTokenModel) (*user.RefreshToken, error) {
	if model == nil {
		return nil, nil
	}

	return &user.RefreshToken{
		ID:        model.ID,
		UserID:    model.UserID,
		TokenHash: model.TokenHash,
		ExpiresAt: millisToTime(model.ExpiresAt),
		CreatedAt: millisToTime(model.CreatedAt),
	}, nil
}

// RefreshTokenToModel converts a refresh token domain entity to a persistence model
func (m *UserMapperImpl) RefreshTokenToModel(entity *user.RefreshToken) *models.RefreshTokenModel {
	if entity == nil {
		return nil
	}

	return &models.RefreshTokenModel{
		ID:        entity.ID,
		UserID:    entity.UserID,
		TokenHash: entity.TokenHash,
		ExpiresAt: entity.ExpiresAt.UnixMilli(),
		CreatedAt: entity.CreatedAt.UnixMilli(),
	}
}
