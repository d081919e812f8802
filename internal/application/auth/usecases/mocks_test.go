package usecases

import (
	"context"

	"deskhive/internal/domain/organization"
	"deskhive/internal/domain/user"
	"deskhive/internal/shared/authorization"
	"deskhive/internal/shared/logger"
)

type mockOrganizationRepository struct {
	CreateFunc       func(ctx context.Context, org *organization.Organization) error
	GetByIDFunc      func(ctx context.Context, id uint) (*organization.Organization, error)
	GetBySlugFunc    func(ctx context.Context, slug string) (*organization.Organization, error)
	ExistsBySlugFunc func(ctx context.Context, slug string) (bool, error)
}

func (m *mockOrganizationRepository) Create(ctx context.Context, org *organization.Organization) error {
	if m.CreateFunc != nil {
		return m.CreateFunc(ctx, org)
	}
	if org.ID() == 0 {
		_ = org.SetID(1)
	}
	return nil
}

func (m *mockOrganizationRepository) GetByID(ctx context.Context, id uint) (*organization.Organization, error) {
	if m.GetByIDFunc != nil {
		return m.GetByIDFunc(ctx, id)
	}
	return nil, nil
}

func (m *mockOrganizationRepository) GetBySlug(ctx context.Context, slug string) (*organization.Organization, error) {
	if m.GetBySlugFunc != nil {
		return m.GetBySlugFunc(ctx, slug)
	}
	return nil, nil
}

func (m *mockOrganizationRepository) ExistsBySlug(ctx context.Context, slug string) (bool, error) {
	if m.ExistsBySlugFunc != nil {
		return m.ExistsBySlugFunc(ctx, slug)
	}
	return false, nil
}

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
	if u.ID() == 0 {
		_ = u.SetID(1)
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

type mockPasswordHasher struct {
	HashFunc   func(password string) (string, error)
	VerifyFunc func(password, hash string) error
}

func (m *mockPasswordHasher) Hash(password string) (string, error) {
	if m.HashFunc != nil {
		return m.HashFunc(password)
	}
	return "hashed:" + password, nil
}

func (m *mockPasswordHasher) Verify(password, hash string) error {
	if m.VerifyFunc != nil {
		return m.VerifyFunc(password, hash)
	}
	return nil
}

type mockAccessTokenService struct {
	GenerateFunc  func(userID uint, email string, role authorization.Role, status string, organizationID uint) (string, error)
	ExpiresInFunc func() int64
}

func (m *mockAccessTokenService) Generate(userID uint, email string, role authorization.Role, status string, organizationID uint) (string, error) {
	if m.GenerateFunc != nil {
		return m.GenerateFunc(userID, email, role, status, organizationID)
	}
	return "access-token", nil
}

func (m *mockAccessTokenService) ExpiresIn() int64 {
	if m.ExpiresInFunc != nil {
		return m.ExpiresInFunc()
	}
	return 900
}

type mockRefreshTokenGenerator struct {
	GenerateFunc func() (string, string, error)
	HashFunc     func(raw string) string
}

func (m *mockRefreshTokenGenerator) Generate() (string, string, error) {
	if m.GenerateFunc != nil {
		return m.GenerateFunc()
	}
	return "raw-refresh-token", "hash-of-raw-refresh-token", nil
}

func (m *mockRefreshTokenGenerator) Hash(raw string) string {
	if m.HashFunc != nil {
		return m.HashFunc(raw)
	}
	return "hash-of-" + raw
}

type mockTransactionManager struct {
	RunInTransactionFunc func(ctx context.Context, fn func(ctx context.Context) error) error
}

func (m *mockTransactionManager) RunInTransaction(ctx context.Context, fn func(ctx context.Context) error) error {
	if m.RunInTransactionFunc != nil {
		return m.RunInTransactionFunc(ctx, fn)
	}
	return fn(ctx)
}

type mockLogger struct {
	DebugFunc  func(msg string, args ...any)
	InfoFunc   func(msg string, args ...any)
	WarnFunc   func(msg string, args ...any)
	ErrorFunc  func(msg string, args ...any)
	InfowFunc  func(msg string, keysAndValues ...any)
	ErrorwFunc func(msg string, keysAndValues ...any)
	WarnwFunc  func(msg string, keysAndValues ...any)
	DebugwFunc func(msg string, keysAndValues ...any)
	WithFunc   func(args ...any) any
	NamedFunc  func(name string) any
}

func (m *mockLogger) Debug(msg string, args ...any) {
	if m.DebugFunc != nil {
		m.DebugFunc(msg, args...)
	}
}

func (m *mockLogger) Info(msg string, args ...any) {
	if m.InfoFunc != nil {
		m.InfoFunc(msg, args...)
	}
}

func (m *mockLogger) Warn(msg string, args ...any) {
	if m.WarnFunc != nil {
		m.WarnFunc(msg, args...)
	}
}

func (m *mockLogger) Error(msg string, args ...any) {
	if m.ErrorFunc != nil {
		m.ErrorFunc(msg, args...)
	}
}

func (m *mockLogger) With(args ...any) logger.Interface {
	if m.WithFunc != nil {
		if result, ok := m.WithFunc(args...).(logger.Interface); ok {
			return result
		}
	}
	return m
}

func (m *mockLogger) Named(name string) logger.Interface {
	if m.NamedFunc != nil {
		if result, ok := m.NamedFunc(name).(logger.Interface); ok {
			return result
		}
	}
	return m
}

func (m *mockLogger) Debugw(msg string, keysAndValues ...any) {
	if m.DebugwFunc != nil {
		m.DebugwFunc(msg, keysAndValues...)
	}
}

func (m *mockLogger) Infow(msg string, keysAndValues ...any) {
	if m.InfowFunc != nil {
		m.InfowFunc(msg, keysAndValues...)
	}
}

func (m *mockLogger) Warnw(msg string, keysAndValues ...any) {
	if m.WarnwFunc != nil {
		m.WarnwFunc(msg, keysAndValues...)
	}
}

func (m *mockLogger) Errorw(msg string, keysAndValues ...any) {
	if m.ErrorwFunc != nil {
		m.ErrorwFunc(msg, keysAndValues...)
	}
}
