package usecases

import (
	"context"
	"time"

	"deskhive/internal/application/auth/dto"
	"deskhive/internal/domain/user"
)

// issueTokens mints an access/refresh pair for u and persists the refresh
// token hash. The raw refresh token leaves this function exactly once.
func issueTokens(
	ctx context.Context,
	tokens AccessTokenService,
	refreshGen RefreshTokenGenerator,
	refreshRepo user.RefreshTokenRepository,
	refreshTTL time.Duration,
	u *user.User,
) (*dto.TokenPair, error) {
	accessToken, err := tokens.Generate(u.ID(), u.Email(), u.Role(), u.Status().String(), u.OrganizationID())
	if err != nil {
		return nil, err
	}

	raw, hash, err := refreshGen.Generate()
	if err != nil {
		return nil, err
	}

	refreshToken, err := user.NewRefreshToken(u.ID(), hash, time.Now().Add(refreshTTL))
	if err != nil {
		return nil, err
	}
	if err := refreshRepo.Create(ctx, refreshToken); err != nil {
		return nil, err
	}

	return &dto.TokenPair{
		AccessToken:  accessToken,
		RefreshToken: raw,
		ExpiresIn:    tokens.ExpiresIn(),
	}, nil
}
