package usecases

import (
	"context"
	"fmt"
	"testing"
	"time"

	"deskhive/internal/domain/organization"
	"deskhive/internal/domain/user"
	vo "deskhive/internal/domain/user/valueobjects"
	"deskhive/internal/shared/authorization"
	"deskhive/internal/shared/errors"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestUser(t *testing.T, id, orgID uint, email string, role authorization.Role, status vo.Status) *user.User {
	t.Helper()
	u, err := user.ReconstructUser(id, orgID, email, "hashed:secret", "Ada", "Lovelace",
		role, status, time.Now(), time.Now())
	require.NoError(t, err)
	return u
}

func newTestOrg(t *testing.T, id uint, name, slugVal string) *organization.Organization {
	t.Helper()
	org, err := organization.ReconstructOrganization(id, name, slugVal, time.Now(), time.Now())
	require.NoError(t, err)
	return org
}

func TestRegisterUseCase_Execute_Success(t *testing.T) {
	orgRepo := &mockOrganizationRepository{}
	userRepo := &mockUserRepository{}
	refreshRepo := &mockRefreshTokenRepository{}

	var storedHash string
	refreshRepo.CreateFunc = func(ctx context.Context, token *user.RefreshToken) error {
		storedHash = token.TokenHash
		return nil
	}

	uc := NewRegisterUseCase(orgRepo, userRepo, refreshRepo,
		&mockPasswordHasher{}, &mockAccessTokenService{}, &mockRefreshTokenGenerator{},
		7*24*time.Hour, &mockTransactionManager{}, &mockLogger{})

	result, err := uc.Execute(context.Background(), RegisterCommand{
		OrganizationName: "Acme Corp",
		Email:            "founder@acme.test",
		Password:         "secret123",
		FirstName:        "Ada",
		LastName:         "Lovelace",
	})

	require.NoError(t, err)
	require.NotNil(t, result)
	assert.Equal(t, "acme-corp", result.Organization.Slug)
	assert.Equal(t, authorization.RoleAdmin.String(), result.User.Role)
	assert.Equal(t, vo.StatusActive.String(), result.User.Status)
	assert.Equal(t, "access-token", result.Tokens.AccessToken)
	assert.Equal(t, "raw-refresh-token", result.Tokens.RefreshToken)
	assert.Equal(t, "hash-of-raw-refresh-token", storedHash)
}

func TestRegisterUseCase_Execute_EmptySlug(t *testing.T) {
	uc := NewRegisterUseCase(&mockOrganizationRepository{}, &mockUserRepository{},
		&mockRefreshTokenRepository{}, &mockPasswordHasher{}, &mockAccessTokenService{},
		&mockRefreshTokenGenerator{}, 7*24*time.Hour, &mockTransactionManager{}, &mockLogger{})

	result, err := uc.Execute(context.Background(), RegisterCommand{
		OrganizationName: "!!!",
		Email:            "founder@acme.test",
		Password:         "secret123",
		FirstName:        "Ada",
		LastName:         "Lovelace",
	})

	assert.Nil(t, result)
	assert.True(t, errors.IsValidationError(err))
}

func TestRegisterUseCase_Execute_SlugTaken(t *testing.T) {
	orgRepo := &mockOrganizationRepository{
		ExistsBySlugFunc: func(ctx context.Context, slug string) (bool, error) {
			return true, nil
		},
	}

	uc := NewRegisterUseCase(orgRepo, &mockUserRepository{}, &mockRefreshTokenRepository{},
		&mockPasswordHasher{}, &mockAccessTokenService{}, &mockRefreshTokenGenerator{},
		7*24*time.Hour, &mockTransactionManager{}, &mockLogger{})

	result, err := uc.Execute(context.Background(), RegisterCommand{
		OrganizationName: "Acme Corp",
		Email:            "founder@acme.test",
		Password:         "secret123",
		FirstName:        "Ada",
		LastName:         "Lovelace",
	})

	assert.Nil(t, result)
	assert.True(t, errors.IsConflictError(err))
}

func TestRegisterUseCase_Execute_ConcurrentSlugConflict(t *testing.T) {
	// The pre-check passes but the insert loses a race on the unique index.
	orgRepo := &mockOrganizationRepository{
		CreateFunc: func(ctx context.Context, org *organization.Organization) error {
			return fmt.Errorf("Error 1062 (23000): Duplicate entry 'acme-corp' for key 'organizations.idx_organizations_slug'")
		},
	}

	uc := NewRegisterUseCase(orgRepo, &mockUserRepository{}, &mockRefreshTokenRepository{},
		&mockPasswordHasher{}, &mockAccessTokenService{}, &mockRefreshTokenGenerator{},
		7*24*time.Hour, &mockTransactionManager{}, &mockLogger{})

	result, err := uc.Execute(context.Background(), RegisterCommand{
		OrganizationName: "Acme Corp",
		Email:            "founder@acme.test",
		Password:         "secret123",
		FirstName:        "Ada",
		LastName:         "Lovelace",
	})

	assert.Nil(t, result)
	assert.True(t, errors.IsConflictError(err))
}

func TestJoinUseCase_Execute_Success(t *testing.T) {
	orgRepo := &mockOrganizationRepository{
		GetBySlugFunc: func(ctx context.Context, slug string) (*organization.Organization, error) {
			return newTestOrg(t, 1, "Acme Corp", "acme-corp"), nil
		},
	}
	userRepo := &mockUserRepository{}

	var created *user.User
	userRepo.CreateFunc = func(ctx context.Context, u *user.User) error {
		_ = u.SetID(2)
		created = u
		return nil
	}

	uc := NewJoinUseCase(orgRepo, userRepo, &mockPasswordHasher{}, &mockLogger{})

	result, err := uc.Execute(context.Background(), JoinCommand{
		OrganizationSlug: "acme-corp",
		Email:            "member@acme.test",
		Password:         "secret123",
		FirstName:        "Grace",
		LastName:         "Hopper",
	})

	require.NoError(t, err)
	require.NotNil(t, result)
	require.NotNil(t, created)
	assert.Equal(t, authorization.RoleUser, created.Role())
	assert.Equal(t, vo.StatusPending, created.Status())
}

func TestJoinUseCase_Execute_UnknownOrganization(t *testing.T) {
	uc := NewJoinUseCase(&mockOrganizationRepository{}, &mockUserRepository{},
		&mockPasswordHasher{}, &mockLogger{})

	result, err := uc.Execute(context.Background(), JoinCommand{
		OrganizationSlug: "nope",
		Email:            "member@acme.test",
		Password:         "secret123",
		FirstName:        "Grace",
		LastName:         "Hopper",
	})

	assert.Nil(t, result)
	assert.True(t, errors.IsBadRequestError(err))
}

func TestJoinUseCase_Execute_EmailTaken(t *testing.T) {
	orgRepo := &mockOrganizationRepository{
		GetBySlugFunc: func(ctx context.Context, slug string) (*organization.Organization, error) {
			return newTestOrg(t, 1, "Acme Corp", "acme-corp"), nil
		},
	}
	userRepo := &mockUserRepository{
		ExistsByEmailFunc: func(ctx context.Context, email string, organizationID uint) (bool, error) {
			return true, nil
		},
	}

	uc := NewJoinUseCase(orgRepo, userRepo, &mockPasswordHasher{}, &mockLogger{})

	result, err := uc.Execute(context.Background(), JoinCommand{
		OrganizationSlug: "acme-corp",
		Email:            "member@acme.test",
		Password:         "secret123",
		FirstName:        "Grace",
		LastName:         "Hopper",
	})

	assert.Nil(t, result)
	assert.True(t, errors.IsConflictError(err))
}
