package usecases

import (
	"context"

	"deskhive/internal/application/auth/dto"
	"deskhive/internal/shared/authorization"
)

// AccessTokenService issues and describes signed access tokens.
type AccessTokenService interface {
	Generate(userID uint, email string, role authorization.Role, status string, organizationID uint) (string, error)
	ExpiresIn() int64
}

// RefreshTokenGenerator mints raw refresh tokens with their storage hash and
// re-derives the hash for tokens presented back by clients.
type RefreshTokenGenerator interface {
	Generate() (raw string, hash string, err error)
	Hash(raw string) string
}

// TransactionManager runs a function inside a storage transaction.
type TransactionManager interface {
	RunInTransaction(ctx context.Context, fn func(ctx context.Context) error) error
}

type RegisterExecutor interface {
	Execute(ctx context.Context, cmd RegisterCommand) (*RegisterResult, error)
}

type JoinExecutor interface {
	Execute(ctx context.Context, cmd JoinCommand) (*JoinResult, error)
}

type LoginExecutor interface {
	Execute(ctx context.Context, cmd LoginCommand) (*LoginResult, error)
}

type RefreshExecutor interface {
	Execute(ctx context.Context, cmd RefreshCommand) (*RefreshResult, error)
}

type LogoutExecutor interface {
	Execute(ctx context.Context, cmd LogoutCommand) error
}

type GetProfileExecutor interface {
	Execute(ctx context.Context, query GetProfileQuery) (*dto.UserDTO, error)
}

type UpdateProfileExecutor interface {
	Execute(ctx context.Context, cmd UpdateProfileCommand) (*dto.UserDTO, error)
}
