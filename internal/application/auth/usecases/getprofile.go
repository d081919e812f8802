package usecases

import (
	"context"

	"deskhive/internal/application/auth/dto"
	"deskhive/internal/domain/user"
	"deskhive/internal/shared/errors"
	"deskhive/internal/shared/logger"
)

type GetProfileQuery struct {
	OrganizationID uint
	UserID         uint
}

type GetProfileUseCase struct {
	userRepo user.Repository
	logger   logger.Interface
}

func NewGetProfileUseCase(userRepo user.Repository, logger logger.Interface) *GetProfileUseCase {
	return &GetProfileUseCase{userRepo: userRepo, logger: logger}
}

func (uc *GetProfileUseCase) Execute(ctx context.Context, query GetProfileQuery) (*dto.UserDTO, error) {
	member, err := uc.userRepo.GetByID(ctx, query.UserID, query.OrganizationID)
	if err != nil {
		uc.logger.Errorw("failed to get profile", "error", err, "user_id", query.UserID)
		return nil, err
	}
	if member == nil {
		return nil, errors.NewNotFoundError("user not found")
	}

	return dto.UserToDTO(member), nil
}
