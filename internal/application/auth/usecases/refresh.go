package usecases

import (
	"context"
	"time"

	"deskhive/internal/application/auth/dto"
	"deskhive/internal/domain/user"
	"deskhive/internal/shared/errors"
	"deskhive/internal/shared/logger"
)

type RefreshCommand struct {
	RefreshToken string
}

type RefreshResult struct {
	Tokens *dto.TokenPair
}

// RefreshUseCase rotates a refresh token: the presented token is consumed and
// a new pair is issued. Every failure, including unexpected storage trouble,
// surfaces as Unauthorized so the client's recovery path is always "log in
// again" rather than retrying a half-rotated session.
type RefreshUseCase struct {
	userRepo    user.Repository
	refreshRepo user.RefreshTokenRepository
	tokens      AccessTokenService
	refreshGen  RefreshTokenGenerator
	refreshTTL  time.Duration
	logger      logger.Interface
}

func NewRefreshUseCase(
	userRepo user.Repository,
	refreshRepo user.RefreshTokenRepository,
	tokens AccessTokenService,
	refreshGen RefreshTokenGenerator,
	refreshTTL time.Duration,
	logger logger.Interface,
) *RefreshUseCase {
	return &RefreshUseCase{
		userRepo:    userRepo,
		refreshRepo: refreshRepo,
		tokens:      tokens,
		refreshGen:  refreshGen,
		refreshTTL:  refreshTTL,
		logger:      logger,
	}
}

func (uc *RefreshUseCase) Execute(ctx context.Context, cmd RefreshCommand) (*RefreshResult, error) {
	if cmd.RefreshToken == "" {
		return nil, errors.NewUnauthorizedError("invalid refresh token")
	}

	hash := uc.refreshGen.Hash(cmd.RefreshToken)

	token, err := uc.refreshRepo.GetByTokenHash(ctx, hash)
	if err != nil {
		uc.logger.Errorw("refresh token lookup failed", "error", err)
		return nil, errors.NewUnauthorizedError("invalid refresh token")
	}
	if token == nil {
		return nil, errors.NewUnauthorizedError("invalid refresh token")
	}

	if token.IsExpired() {
		if _, err := uc.refreshRepo.Delete(ctx, token.ID); err != nil {
			uc.logger.Errorw("failed to delete expired refresh token", "error", err, "token_id", token.ID)
		}
		return nil, errors.NewUnauthorizedError("refresh token expired")
	}

	owner, err := uc.userRepo.FindByID(ctx, token.UserID)
	if err != nil {
		uc.logger.Errorw("failed to load refresh token owner", "error", err, "user_id", token.UserID)
		return nil, errors.NewUnauthorizedError("invalid refresh token")
	}
	if owner == nil || !owner.Status().IsActive() {
		return nil, errors.NewUnauthorizedError("invalid refresh token")
	}

	// Single-use rotation. When two requests race on the same token, only
	// the one that actually deletes the row wins; the loser is rejected.
	deleted, err := uc.refreshRepo.Delete(ctx, token.ID)
	if err != nil {
		uc.logger.Errorw("failed to consume refresh token", "error", err, "token_id", token.ID)
		return nil, errors.NewUnauthorizedError("invalid refresh token")
	}
	if !deleted {
		return nil, errors.NewUnauthorizedError("invalid refresh token")
	}

	tokens, err := issueTokens(ctx, uc.tokens, uc.refreshGen, uc.refreshRepo, uc.refreshTTL, owner)
	if err != nil {
		uc.logger.Errorw("failed to issue rotated tokens", "error", err, "user_id", owner.ID())
		return nil, errors.NewUnauthorizedError("invalid refresh token")
	}

	return &RefreshResult{Tokens: tokens}, nil
}
