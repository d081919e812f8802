package usecases

import (
	"context"

	"deskhive/internal/application/auth/dto"
	"deskhive/internal/domain/user"
	"deskhive/internal/shared/errors"
	"deskhive/internal/shared/logger"
)

type UpdateProfileCommand struct {
	OrganizationID  uint
	UserID          uint
	FirstName       *string
	LastName        *string
	CurrentPassword *string
	NewPassword     *string
}

type UpdateProfileUseCase struct {
	userRepo user.Repository
	hasher   user.PasswordHasher
	logger   logger.Interface
}

func NewUpdateProfileUseCase(
	userRepo user.Repository,
	hasher user.PasswordHasher,
	logger logger.Interface,
) *UpdateProfileUseCase {
	return &UpdateProfileUseCase{userRepo: userRepo, hasher: hasher, logger: logger}
}

func (uc *UpdateProfileUseCase) Execute(ctx context.Context, cmd UpdateProfileCommand) (*dto.UserDTO, error) {
	if cmd.FirstName == nil && cmd.LastName == nil && cmd.NewPassword == nil {
		return nil, errors.NewBadRequestError("no fields to update")
	}

	member, err := uc.userRepo.GetByID(ctx, cmd.UserID, cmd.OrganizationID)
	if err != nil {
		uc.logger.Errorw("failed to get user", "error", err, "user_id", cmd.UserID)
		return nil, err
	}
	if member == nil {
		return nil, errors.NewNotFoundError("user not found")
	}

	if cmd.FirstName != nil || cmd.LastName != nil {
		firstName := member.FirstName()
		lastName := member.LastName()
		if cmd.FirstName != nil {
			firstName = *cmd.FirstName
		}
		if cmd.LastName != nil {
			lastName = *cmd.LastName
		}
		member.UpdateName(firstName, lastName)
	}

	if cmd.NewPassword != nil {
		if cmd.CurrentPassword == nil {
			return nil, errors.NewBadRequestError("current password is required to change password")
		}
		if err := member.VerifyPassword(*cmd.CurrentPassword, uc.hasher); err != nil {
			return nil, errors.NewBadRequestError("current password is incorrect")
		}
		hash, err := uc.hasher.Hash(*cmd.NewPassword)
		if err != nil {
			uc.logger.Errorw("failed to hash password", "error", err)
			return nil, errors.NewInternalError("failed to update password")
		}
		if err := member.ChangePassword(hash); err != nil {
			return nil, errors.NewValidationError(err.Error())
		}
	}

	if err := uc.userRepo.Update(ctx, member); err != nil {
		uc.logger.Errorw("failed to update profile", "error", err, "user_id", member.ID())
		return nil, err
	}

	uc.logger.Infow("profile updated", "user_id", member.ID())
	return dto.UserToDTO(member), nil
}
