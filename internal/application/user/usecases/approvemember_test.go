package usecases

import (
	"context"
	"testing"
	"time"

	"deskhive/internal/domain/user"
	vo "deskhive/internal/domain/user/valueobjects"
	"deskhive/internal/shared/authorization"
	"deskhive/internal/shared/errors"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func adminPrincipal(userID, orgID uint) authorization.Principal {
	return authorization.Principal{
		UserID:         userID,
		Email:          "admin@acme.test",
		Role:           authorization.RoleAdmin,
		Status:         string(vo.StatusActive),
		OrganizationID: orgID,
	}
}

func userPrincipal(userID, orgID uint) authorization.Principal {
	return authorization.Principal{
		UserID:         userID,
		Email:          "user@acme.test",
		Role:           authorization.RoleUser,
		Status:         string(vo.StatusActive),
		OrganizationID: orgID,
	}
}

func member(t *testing.T, id, orgID uint, role authorization.Role, status vo.Status) *user.User {
	t.Helper()
	u, err := user.ReconstructUser(id, orgID, "member@acme.test", "hash", "Grace", "Hopper",
		role, status, time.Now(), time.Now())
	require.NoError(t, err)
	return u
}

func scopedUserRepo(t *testing.T, m *user.User) *mockUserRepository {
	t.Helper()
	return &mockUserRepository{
		GetByIDFunc: func(ctx context.Context, id, organizationID uint) (*user.User, error) {
			if id == m.ID() && organizationID == m.OrganizationID() {
				return m, nil
			}
			return nil, nil
		},
	}
}

func TestApproveMemberUseCase_Execute_PendingBecomesActive(t *testing.T) {
	pending := member(t, 2, 1, authorization.RoleUser, vo.StatusPending)

	var notified *user.User
	notifier := &mockNotifier{
		UserApprovedFunc: func(ctx context.Context, u *user.User) {
			notified = u
		},
	}

	uc := NewApproveMemberUseCase(scopedUserRepo(t, pending), notifier, &mockLogger{})

	result, err := uc.Execute(context.Background(), adminPrincipal(1, 1), 2)

	require.NoError(t, err)
	assert.Equal(t, vo.StatusActive.String(), result.Status)
	require.NotNil(t, notified)
	assert.Equal(t, uint(2), notified.ID())
}

func TestApproveMemberUseCase_Execute_OnlyPendingApprovable(t *testing.T) {
	active := member(t, 2, 1, authorization.RoleUser, vo.StatusActive)
	uc := NewApproveMemberUseCase(scopedUserRepo(t, active), &mockNotifier{}, &mockLogger{})

	result, err := uc.Execute(context.Background(), adminPrincipal(1, 1), 2)

	assert.Nil(t, result)
	assert.True(t, errors.IsBadRequestError(err))
}

func TestApproveMemberUseCase_Execute_AdminOnly(t *testing.T) {
	uc := NewApproveMemberUseCase(&mockUserRepository{}, &mockNotifier{}, &mockLogger{})

	result, err := uc.Execute(context.Background(), userPrincipal(7, 1), 2)

	assert.Nil(t, result)
	assert.True(t, errors.IsForbiddenError(err))
}

func TestApproveMemberUseCase_Execute_CrossTenantIsNotFound(t *testing.T) {
	pending := member(t, 2, 2, authorization.RoleUser, vo.StatusPending)
	uc := NewApproveMemberUseCase(scopedUserRepo(t, pending), &mockNotifier{}, &mockLogger{})

	result, err := uc.Execute(context.Background(), adminPrincipal(1, 1), 2)

	assert.Nil(t, result)
	assert.True(t, errors.IsNotFoundError(err))
}

func TestChangeMemberStatusUseCase_Execute_SuspensionRevokesSessions(t *testing.T) {
	active := member(t, 2, 1, authorization.RoleUser, vo.StatusActive)

	var revokedUserID uint
	refreshRepo := &mockRefreshTokenRepository{
		DeleteByUserIDFunc: func(ctx context.Context, userID uint) error {
			revokedUserID = userID
			return nil
		},
	}

	uc := NewChangeMemberStatusUseCase(scopedUserRepo(t, active), refreshRepo, &mockLogger{})

	result, err := uc.Execute(context.Background(), adminPrincipal(1, 1), ChangeMemberStatusCommand{
		MemberID: 2,
		Status:   "SUSPENDED",
	})

	require.NoError(t, err)
	assert.Equal(t, vo.StatusSuspended.String(), result.Status)
	assert.Equal(t, uint(2), revokedUserID)
}

func TestChangeMemberStatusUseCase_Execute_ActivationKeepsSessions(t *testing.T) {
	suspended := member(t, 2, 1, authorization.RoleUser, vo.StatusSuspended)

	revoked := false
	refreshRepo := &mockRefreshTokenRepository{
		DeleteByUserIDFunc: func(ctx context.Context, userID uint) error {
			revoked = true
			return nil
		},
	}

	uc := NewChangeMemberStatusUseCase(scopedUserRepo(t, suspended), refreshRepo, &mockLogger{})

	result, err := uc.Execute(context.Background(), adminPrincipal(1, 1), ChangeMemberStatusCommand{
		MemberID: 2,
		Status:   "ACTIVE",
	})

	require.NoError(t, err)
	assert.Equal(t, vo.StatusActive.String(), result.Status)
	assert.False(t, revoked)
}

func TestChangeMemberStatusUseCase_Execute_SelfChangeRejected(t *testing.T) {
	uc := NewChangeMemberStatusUseCase(&mockUserRepository{}, &mockRefreshTokenRepository{}, &mockLogger{})

	result, err := uc.Execute(context.Background(), adminPrincipal(1, 1), ChangeMemberStatusCommand{
		MemberID: 1,
		Status:   "SUSPENDED",
	})

	assert.Nil(t, result)
	assert.True(t, errors.IsBadRequestError(err))
}

func TestChangeMemberRoleUseCase_Execute_PromotesUser(t *testing.T) {
	m := member(t, 2, 1, authorization.RoleUser, vo.StatusActive)
	uc := NewChangeMemberRoleUseCase(scopedUserRepo(t, m), &mockLogger{})

	result, err := uc.Execute(context.Background(), adminPrincipal(1, 1), ChangeMemberRoleCommand{
		MemberID: 2,
		Role:     "ADMIN",
	})

	require.NoError(t, err)
	assert.Equal(t, "ADMIN", result.Role)
}

func TestChangeMemberRoleUseCase_Execute_SelfDemotionRejected(t *testing.T) {
	uc := NewChangeMemberRoleUseCase(&mockUserRepository{}, &mockLogger{})

	result, err := uc.Execute(context.Background(), adminPrincipal(1, 1), ChangeMemberRoleCommand{
		MemberID: 1,
		Role:     "USER",
	})

	assert.Nil(t, result)
	assert.True(t, errors.IsBadRequestError(err))
}

func TestChangeMemberRoleUseCase_Execute_InvalidRole(t *testing.T) {
	uc := NewChangeMemberRoleUseCase(&mockUserRepository{}, &mockLogger{})

	result, err := uc.Execute(context.Background(), adminPrincipal(1, 1), ChangeMemberRoleCommand{
		MemberID: 2,
		Role:     "SUPERUSER",
	})

	assert.Nil(t, result)
	assert.True(t, errors.IsValidationError(err))
}

func TestListMembersUseCase_Execute_FiltersAndPagination(t *testing.T) {
	var captured user.ListFilter
	userRepo := &mockUserRepository{
		ListFunc: func(ctx context.Context, organizationID uint, filter user.ListFilter) ([]*user.User, int64, error) {
			captured = filter
			return []*user.User{member(t, 2, 1, authorization.RoleUser, vo.StatusPending)}, 1, nil
		},
	}

	uc := NewListMembersUseCase(userRepo, &mockLogger{})

	result, err := uc.Execute(context.Background(), adminPrincipal(1, 1), ListMembersQuery{
		Status:   "PENDING",
		Page:     0,
		PageSize: 500,
	})

	require.NoError(t, err)
	require.NotNil(t, captured.Status)
	assert.Equal(t, vo.StatusPending, *captured.Status)
	assert.Equal(t, 1, captured.Page)
	assert.Equal(t, 20, captured.PageSize)
	assert.Equal(t, int64(1), result.Total)
	require.Len(t, result.Members, 1)
}

func TestListMembersUseCase_Execute_AdminOnly(t *testing.T) {
	uc := NewListMembersUseCase(&mockUserRepository{}, &mockLogger{})

	result, err := uc.Execute(context.Background(), userPrincipal(7, 1), ListMembersQuery{})

	assert.Nil(t, result)
	assert.True(t, errors.IsForbiddenError(err))
}

func TestGetMemberUseCase_Execute_TenantScoped(t *testing.T) {
	m := member(t, 2, 1, authorization.RoleUser, vo.StatusActive)
	uc := NewGetMemberUseCase(scopedUserRepo(t, m), &mockLogger{})

	result, err := uc.Execute(context.Background(), adminPrincipal(1, 1), 2)
	require.NoError(t, err)
	assert.Equal(t, uint(2), result.ID)

	result, err = uc.Execute(context.Background(), adminPrincipal(1, 2), 2)
	assert.Nil(t, result)
	assert.True(t, errors.IsNotFoundError(err))
}
