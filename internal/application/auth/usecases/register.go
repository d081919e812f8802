package usecases

import (
	"context"
	"time"

	"deskhive/internal/application/auth/dto"
	"deskhive/internal/domain/organization"
	"deskhive/internal/domain/user"
	vo "deskhive/internal/domain/user/valueobjects"
	"deskhive/internal/shared/authorization"
	"deskhive/internal/shared/errors"
	"deskhive/internal/shared/logger"
	"deskhive/internal/shared/slug"
)

type RegisterCommand struct {
	OrganizationName string
	Email            string
	Password         string
	FirstName        string
	LastName         string
}

type RegisterResult struct {
	Tokens       *dto.TokenPair
	User         *dto.UserDTO
	Organization *dto.OrganizationDTO
}

// RegisterUseCase creates a new organization together with its first ADMIN in
// a single transaction, then issues a token pair.
type RegisterUseCase struct {
	orgRepo     organization.Repository
	userRepo    user.Repository
	refreshRepo user.RefreshTokenRepository
	hasher      user.PasswordHasher
	tokens      AccessTokenService
	refreshGen  RefreshTokenGenerator
	refreshTTL  time.Duration
	txManager   TransactionManager
	logger      logger.Interface
}

func NewRegisterUseCase(
	orgRepo organization.Repository,
	userRepo user.Repository,
	refreshRepo user.RefreshTokenRepository,
	hasher user.PasswordHasher,
	tokens AccessTokenService,
	refreshGen RefreshTokenGenerator,
	refreshTTL time.Duration,
	txManager TransactionManager,
	logger logger.Interface,
) *RegisterUseCase {
	return &RegisterUseCase{
		orgRepo:     orgRepo,
		userRepo:    userRepo,
		refreshRepo: refreshRepo,
		hasher:      hasher,
		tokens:      tokens,
		refreshGen:  refreshGen,
		refreshTTL:  refreshTTL,
		txManager:   txManager,
		logger:      logger,
	}
}

func (uc *RegisterUseCase) Execute(ctx context.Context, cmd RegisterCommand) (*RegisterResult, error) {
	orgSlug := slug.Make(cmd.OrganizationName)
	if orgSlug == "" {
		return nil, errors.NewValidationError("organization name must contain at least one alphanumeric character")
	}

	exists, err := uc.orgRepo.ExistsBySlug(ctx, orgSlug)
	if err != nil {
		uc.logger.Errorw("failed to check slug availability", "error", err)
		return nil, err
	}
	if exists {
		return nil, errors.NewConflictError("an organization with this name already exists")
	}

	passwordHash, err := uc.hasher.Hash(cmd.Password)
	if err != nil {
		uc.logger.Errorw("failed to hash password", "error", err)
		return nil, errors.NewInternalError("failed to process password")
	}

	var newOrg *organization.Organization
	var newUser *user.User

	err = uc.txManager.RunInTransaction(ctx, func(txCtx context.Context) error {
		org, err := organization.NewOrganization(cmd.OrganizationName, orgSlug)
		if err != nil {
			return errors.NewValidationError(err.Error())
		}
		if err := uc.orgRepo.Create(txCtx, org); err != nil {
			if errors.IsDuplicateError(err) {
				return errors.NewConflictError("an organization with this name already exists")
			}
			return err
		}

		admin, err := user.NewUser(org.ID(), cmd.Email, passwordHash, cmd.FirstName, cmd.LastName,
			authorization.RoleAdmin, vo.StatusActive)
		if err != nil {
			return errors.NewValidationError(err.Error())
		}
		if err := uc.userRepo.Create(txCtx, admin); err != nil {
			if errors.IsDuplicateError(err) {
				return errors.NewConflictError("this email is already registered in the organization")
			}
			return err
		}

		newOrg = org
		newUser = admin
		return nil
	})
	if err != nil {
		return nil, err
	}

	tokens, err := issueTokens(ctx, uc.tokens, uc.refreshGen, uc.refreshRepo, uc.refreshTTL, newUser)
	if err != nil {
		uc.logger.Errorw("failed to issue tokens after registration", "error", err, "user_id", newUser.ID())
		return nil, err
	}

	uc.logger.Infow("organization registered",
		"organization_id", newOrg.ID(),
		"slug", newOrg.Slug(),
		"admin_id", newUser.ID())

	return &RegisterResult{
		Tokens:       tokens,
		User:         dto.UserToDTO(newUser),
		Organization: dto.OrganizationToDTO(newOrg),
	}, nil
}
