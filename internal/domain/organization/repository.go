package organization

import "context"

// Repository defines organization persistence operations.
type Repository interface {
	// Create persists a new organization. A slug collision surfaces as a
	// conflict error backed by the unique index.
	Create(ctx context.Context, org *Organization) error

	// GetByID retrieves an organization by internal ID.
	GetByID(ctx context.Context, id uint) (*Organization, error)

	// GetBySlug retrieves an organization by slug, matched
	// case-insensitively. Returns nil when absent.
	GetBySlug(ctx context.Context, slug string) (*Organization, error)

	// ExistsBySlug checks slug availability.
	ExistsBySlug(ctx context.Context, slug string) (bool, error)
}
