package ticket

import (
	"context"

	vo "deskhive/internal/domain/ticket/valueobjects"
)

// Repository persists tickets. Every lookup is scoped to an organization; a
// ticket belonging to another tenant behaves like a missing row.
type Repository interface {
	// Save persists a new ticket inside the caller's transaction. The
	// unique (organization_id, number) index backstops the number
	// allocation against concurrent creators.
	Save(ctx context.Context, t *Ticket) error

	// NextNumber reads the highest number used in the organization and
	// returns it plus one (one when no tickets exist). Must run inside the
	// same transaction as Save.
	NextNumber(ctx context.Context, organizationID uint) (int, error)

	// GetByID retrieves a ticket by (id, organizationID). Returns nil when
	// absent or cross-tenant.
	GetByID(ctx context.Context, id, organizationID uint) (*Ticket, error)

	// Update persists aggregate changes.
	Update(ctx context.Context, t *Ticket) error

	// Delete removes a ticket row.
	Delete(ctx context.Context, id uint) error

	// List retrieves a filtered, sorted, paginated page of one
	// organization's tickets with the total match count.
	List(ctx context.Context, organizationID uint, filter Filter) ([]*Ticket, int64, error)
}

// Filter carries ticket list filtering, search, sorting, and pagination.
// CreatedByUserID is forced by the service for non-admin callers regardless
// of the requested filters.
type Filter struct {
	Status          *vo.Status
	Priority        *vo.Priority
	Type            *vo.Type
	AssignedAdminID *uint
	CreatedByUserID *uint
	// Search is matched as a case-insensitive substring over key, title,
	// requester name, and requester email.
	Search string
	// SortBy is checked against an allow-list; unknown fields fall back to
	// created_at.
	SortBy    string
	SortOrder string
	Page      int
	PageSize  int
}

// MessageRepository persists ticket thread messages.
type MessageRepository interface {
	Save(ctx context.Context, m *Message) error
	// GetByTicketID returns the thread ordered by createdAt ascending.
	GetByTicketID(ctx context.Context, ticketID uint) ([]*Message, error)
	DeleteByTicketID(ctx context.Context, ticketID uint) error
}

// AttachmentRepository persists attachment metadata.
type AttachmentRepository interface {
	Save(ctx context.Context, a *Attachment) error
	GetByTicketID(ctx context.Context, ticketID uint) ([]*Attachment, error)
	DeleteByTicketID(ctx context.Context, ticketID uint) error
}
