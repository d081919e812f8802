package usecases

import (
	"context"
	"time"

	"deskhive/internal/application/auth/dto"
	"deskhive/internal/domain/organization"
	"deskhive/internal/domain/user"
	vo "deskhive/internal/domain/user/valueobjects"
	"deskhive/internal/shared/errors"
	"deskhive/internal/shared/logger"
)

// invalidCredentialsMsg is shared by unknown-organization, unknown-email, and
// wrong-password failures so none of them is distinguishable from outside.
const invalidCredentialsMsg = "invalid credentials"

type LoginCommand struct {
	OrganizationSlug string
	Email            string
	Password         string
}

type LoginResult struct {
	Tokens       *dto.TokenPair
	User         *dto.UserDTO
	Organization *dto.OrganizationDTO
}

type LoginUseCase struct {
	orgRepo     organization.Repository
	userRepo    user.Repository
	refreshRepo user.RefreshTokenRepository
	hasher      user.PasswordHasher
	tokens      AccessTokenService
	refreshGen  RefreshTokenGenerator
	refreshTTL  time.Duration
	logger      logger.Interface
}

func NewLoginUseCase(
	orgRepo organization.Repository,
	userRepo user.Repository,
	refreshRepo user.RefreshTokenRepository,
	hasher user.PasswordHasher,
	tokens AccessTokenService,
	refreshGen RefreshTokenGenerator,
	refreshTTL time.Duration,
	logger logger.Interface,
) *LoginUseCase {
	return &LoginUseCase{
		orgRepo:     orgRepo,
		userRepo:    userRepo,
		refreshRepo: refreshRepo,
		hasher:      hasher,
		tokens:      tokens,
		refreshGen:  refreshGen,
		refreshTTL:  refreshTTL,
		logger:      logger,
	}
}

func (uc *LoginUseCase) Execute(ctx context.Context, cmd LoginCommand) (*LoginResult, error) {
	org, err := uc.orgRepo.GetBySlug(ctx, cmd.OrganizationSlug)
	if err != nil {
		uc.logger.Errorw("failed to resolve organization", "error", err)
		return nil, err
	}
	if org == nil {
		// Unauthorized, not NotFound: do not let callers probe for tenants.
		return nil, errors.NewUnauthorizedError(invalidCredentialsMsg)
	}

	member, err := uc.userRepo.GetByEmail(ctx, user.NormalizeEmail(cmd.Email), org.ID())
	if err != nil {
		return nil, err
	}
	if member == nil {
		return nil, errors.NewUnauthorizedError(invalidCredentialsMsg)
	}

	if err := member.VerifyPassword(cmd.Password, uc.hasher); err != nil {
		return nil, errors.NewUnauthorizedError(invalidCredentialsMsg)
	}

	switch member.Status() {
	case vo.StatusDeleted:
		return nil, errors.NewUnauthorizedError("this account has been deleted")
	case vo.StatusSuspended:
		return nil, errors.NewUnauthorizedError("this account has been suspended")
	case vo.StatusPending:
		return nil, errors.NewUnauthorizedError("this account is awaiting administrator approval")
	}

	tokens, err := issueTokens(ctx, uc.tokens, uc.refreshGen, uc.refreshRepo, uc.refreshTTL, member)
	if err != nil {
		uc.logger.Errorw("failed to issue tokens", "error", err, "user_id", member.ID())
		return nil, err
	}

	uc.logger.Infow("user logged in",
		"organization_id", org.ID(),
		"user_id", member.ID())

	return &LoginResult{
		Tokens:       tokens,
		User:         dto.UserToDTO(member),
		Organization: dto.OrganizationToDTO(org),
	}, nil
}
