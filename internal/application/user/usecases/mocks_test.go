package usecases

import (
	"context"

	"deskhive/internal/domain/user"
	"deskhive/internal/shared/logger"
)

type mockUserRepository struct {
	CreateFunc          func(ctx context.Context, u *user.User) error
	GetByIDFunc         func(ctx context.Context, id, organizationID uint) (*user.User, error)
	GetByEmailFunc      func(ctx context.Context, email string, organizationID uint) (*user.User, error)
	FindByIDFunc        func(ctx context.Context, id uint) (*user.User, error)
	ExistsByEmailFunc   func(ctx context.Context, email string, organizationID uint) (bool, error)
	UpdateFunc          func(ctx context.Context, u *user.User) error
	ListFunc            func(ctx context.Context, organizationID uint, filter user.ListFilter) ([]*user.User, int64, error)
	GetActiveAdminsFunc func(ctx context.Context, organizationID uint) ([]*user.User, error)
}

func (m *mockUserRepository) Create(ctx context.Context, u *user.User) error {
	if m.CreateFunc != nil {
		return m.CreateFunc(ctx, u)
	}
	return nil
}

func (m *mockUserRepository) GetByID(ctx context.Context, id, organizationID uint) (*user.User, error) {
	if m.GetByIDFunc != nil {
		return m.GetByIDFunc(ctx, id, organizationID)
	}
	return nil, nil
}

func (m *mockUserRepository) GetByEmail(ctx context.Context, email string, organizationID uint) (*user.User, error) {
	if m.GetByEmailFunc != nil {
		return m.GetByEmailFunc(ctx, email, organizationID)
	}
	return nil, nil
}

func (m *mockUserRepository) FindByID(ctx context.Context, id uint) (*user.User, error) {
	if m.FindByIDFunc != nil {
		return m.FindByIDFunc(ctx, id)
	}
	return nil, nil
}

func (m *mockUserRepository) ExistsByEmail(ctx context.Context, email string, organizationID uint) (bool, error) {
	if m.ExistsByEmailFunc != nil {
		return m.ExistsByEmailFunc(ctx, email, organizationID)
	}
	return false, nil
}

func (m *mockUserRepository) Update(ctx context.Context, u *user.User) error {
	if m.UpdateFunc != nil {
		return m.UpdateFunc(ctx, u)
	}
	return nil
}

func (m *mockUserRepository) List(ctx context.Context, organizationID uint, filter user.ListFilter) ([]*user.User, int64, error) {
	if m.ListFunc != nil {
		return m.ListFunc(ctx, organizationID, filter)
	}
	return nil, 0, nil
}

func (m *mockUserRepository) GetActiveAdmins(ctx context.Context, organizationID uint) ([]*user.User, error) {
	if m.GetActiveAdminsFunc != nil {
		return m.GetActiveAdminsFunc(ctx, organizationID)
	}
	return nil, nil
}

type mockRefreshTokenRepository struct {
	CreateFunc            func(ctx context.Context, token *user.RefreshToken) error
	GetByTokenHashFunc    func(ctx context.Context, tokenHash string) (*user.RefreshToken, error)
	DeleteFunc            func(ctx context.Context, id uint) (bool, error)
	DeleteByTokenHashFunc func(ctx context.Context, tokenHash string) error
	DeleteByUserIDFunc    func(ctx context.Context, userID uint) error
	DeleteExpiredFunc     func(ctx context.Context) error
}

func (m *mockRefreshTokenRepository) Create(ctx context.Context, token *user.RefreshToken) error {
	if m.CreateFunc != nil {
		return m.CreateFunc(ctx, token)
	}
	return nil
}

func (m *mockRefreshTokenRepository) GetByTokenHash(ctx context.Context, tokenHash string) (*user.RefreshToken, error) {
	if m.GetByTokenHashFunc != nil {
		return m.GetByTokenHashFunc(ctx, tokenHash)
	}
	return nil, nil
}

func (m *mockRefreshTokenRepository) Delete(ctx context.Context, id uint) (bool, error) {
	if m.DeleteFunc != nil {
		return m.DeleteFunc(ctx, id)
	}
	return true, nil
}

func (m *mockRefreshTokenRepository) DeleteByTokenHash(ctx context.Context, tokenHash string) error {
	if m.DeleteByTokenHashFunc != nil {
		return m.DeleteByTokenHashFunc(ctx, tokenHash)
	}
	return nil
}

func (m *mockRefreshTokenRepository) DeleteByUserID(ctx context.Context, userID uint) error {
	if m.DeleteByUserIDFunc != nil {
		return m.DeleteByUserIDFunc(ctx, userID)
	}
	return nil
}

func (m *mockRefreshTokenRepository) DeleteExpired(ctx context.Context) error {
	if m.DeleteExpiredFunc != nil {
		return m.DeleteExpiredFunc(ctx)
	}
	return nil
}

type mockNotifier struct {
	UserApprovedFunc func(ctx context.Context, u *user.User)
}

func (m *mockNotifier) UserApproved(ctx context.Context, u *user.User) {
	if m.UserApprovedFunc != nil {
		m.UserApprovedFunc(ctx, u)
	}
}

type mockLogger struct {
	InfowFunc  func(msg string, keysAndValues ...any)
	ErrorwFunc func(msg string, keysAndValues ...any)
}

func (m *mockLogger) Debug(msg string, args ...any) {}
func (m *mockLogger) Info(msg string, args ...any)  {}
func (m *mockLogger) Warn(msg string, args ...any)  {}
func (m *mockLogger) Error(msg string, args ...any) {}

func (m *mockLogger) With(args ...any) logger.Interface  { return m }
func (m *mockLogger) Named(name string) logger.Interface { return m }

func (m *mockLogger) Debugw(msg string, keysAndValues ...any) {}

func (m *mockLogger) Infow(msg string, keysAndValues ...any) {
	if m.InfowFunc != nil {
		m.InfowFunc(msg, keysAndValues...)
	}
}

func (m *mockLogger) Warnw(msg string, keysAndValues ...any) {}

func (m *mockLogger) Errorw(msg string, keysAndValues ...any) {
	if m.ErrorwFunc != nil {
		m.ErrorwFunc(msg, keysAndValues...)
	}
}
