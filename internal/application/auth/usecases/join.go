package usecases

import (
	"context"

	"deskhive/internal/domain/organization"
	"deskhive/internal/domain/user"
	vo "deskhive/internal/domain/user/valueobjects"
	"deskhive/internal/shared/authorization"
	"deskhive/internal/shared/errors"
	"deskhive/internal/shared/logger"
)

type JoinCommand struct {
	OrganizationSlug string
	Email            string
	Password         string
	FirstName        string
	LastName         string
}

type JoinResult struct {
	Message string
}

// JoinUseCase files a membership request: the account is created PENDING and
// cannot authenticate until an administrator approves it.
type JoinUseCase struct {
	orgRepo  organization.Repository
	userRepo user.Repository
	hasher   user.PasswordHasher
	logger   logger.Interface
}

func NewJoinUseCase(
	orgRepo organization.Repository,
	userRepo user.Repository,
	hasher user.PasswordHasher,
	logger logger.Interface,
) *JoinUseCase {
	return &JoinUseCase{
		orgRepo:  orgRepo,
		userRepo: userRepo,
		hasher:   hasher,
		logger:   logger,
	}
}

func (uc *JoinUseCase) Execute(ctx context.Context, cmd JoinCommand) (*JoinResult, error) {
	org, err := uc.orgRepo.GetBySlug(ctx, cmd.OrganizationSlug)
	if err != nil {
		uc.logger.Errorw("failed to resolve organization", "error", err)
		return nil, err
	}
	if org == nil {
		return nil, errors.NewBadRequestError("unknown organization")
	}

	exists, err := uc.userRepo.ExistsByEmail(ctx, user.NormalizeEmail(cmd.Email), org.ID())
	if err != nil {
		return nil, err
	}
	if exists {
		return nil, errors.NewConflictError("this email is already registered in the organization")
	}

	passwordHash, err := uc.hasher.Hash(cmd.Password)
	if err != nil {
		uc.logger.Errorw("failed to hash password", "error", err)
		return nil, errors.NewInternalError("failed to process password")
	}

	member, err := user.NewUser(org.ID(), cmd.Email, passwordHash, cmd.FirstName, cmd.LastName,
		authorization.RoleUser, vo.StatusPending)
	if err != nil {
		return nil, errors.NewValidationError(err.Error())
	}

	if err := uc.userRepo.Create(ctx, member); err != nil {
		if errors.IsDuplicateError(err) {
			return nil, errors.NewConflictError("this email is already registered in the organization")
		}
		return nil, err
	}

	uc.logger.Infow("membership requested",
		"organization_id", org.ID(),
		"user_id", member.ID())

	return &JoinResult{
		Message: "membership request submitted; an administrator must approve your account before you can sign in",
	}, nil
}
