package user

import (
	"context"

	vo "deskhive/internal/domain/user/valueobjects"
	"deskhive/internal/shared/authorization"
)

// Repository defines member persistence operations. Every lookup is scoped to
// an organization so a foreign tenant's member behaves like a missing row.
type Repository interface {
	// Create persists a new member. A same-tenant email collision surfaces
	// as a duplicate key error from the unique index.
	Create(ctx context.Context, user *User) error

	// GetByID retrieves a member by (id, organizationID). Returns nil when
	// absent or belonging to another organization.
	GetByID(ctx context.Context, id, organizationID uint) (*User, error)

	// GetByEmail retrieves a member by case-insensitive
	// (email, organizationID). Returns nil when absent.
	GetByEmail(ctx context.Context, email string, organizationID uint) (*User, error)

	// FindByID retrieves a member by ID without tenant scoping. Session
	// refresh uses it; the tenant is derived from the stored token row.
	FindByID(ctx context.Context, id uint) (*User, error)

	// ExistsByEmail checks whether (email, organizationID) is taken.
	ExistsByEmail(ctx context.Context, email string, organizationID uint) (bool, error)

	// Update persists aggregate changes.
	Update(ctx context.Context, user *User) error

	// List retrieves a filtered, paginated member page for one organization.
	List(ctx context.Context, organizationID uint, filter ListFilter) ([]*User, int64, error)

	// GetActiveAdmins retrieves every ACTIVE ADMIN of an organization
	// (notification fan-out, assignment validation).
	GetActiveAdmins(ctx context.Context, organizationID uint) ([]*User, error)
}

// ListFilter carries member list filtering and pagination.
type ListFilter struct {
	Role     *authorization.Role
	Status   *vo.Status
	Search   string
	Page     int
	PageSize int
}
