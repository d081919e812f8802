package usecases

import (
	"context"

	"deskhive/internal/domain/user"
	"deskhive/internal/shared/logger"
)

type LogoutCommand struct {
	RefreshToken string
}

// LogoutUseCase revokes the session behind a refresh token. It is idempotent
// and never fails: an unknown or already-revoked token is treated the same as
// a successful revocation.
type LogoutUseCase struct {
	refreshRepo user.RefreshTokenRepository
	refreshGen  RefreshTokenGenerator
	logger      logger.Interface
}

func NewLogoutUseCase(
	refreshRepo user.RefreshTokenRepository,
	refreshGen RefreshTokenGenerator,
	logger logger.Interface,
) *LogoutUseCase {
	return &LogoutUseCase{
		refreshRepo: refreshRepo,
		refreshGen:  refreshGen,
		logger:      logger,
	}
}

func (uc *LogoutUseCase) Execute(ctx context.Context, cmd LogoutCommand) error {
	if cmd.RefreshToken == "" {
		return nil
	}

	hash := uc.refreshGen.Hash(cmd.RefreshToken)
	if err := uc.refreshRepo.DeleteByTokenHash(ctx, hash); err != nil {
		uc.logger.Errorw("failed to revoke refresh token", "error", err)
	}
	return nil
}
