package notification

import "context"

// Repository persists notifications. Reads are tenant-and-user scoped.
type Repository interface {
	Create(ctx context.Context, n *Notification) error
	GetByID(ctx context.Context, id, organizationID uint) (*Notification, error)
	// List retrieves a user's notifications, newest first.
	List(ctx context.Context, organizationID, userID uint, filter ListFilter) ([]*Notification, int64, error)
	Update(ctx context.Context, n *Notification) error
	MarkAllRead(ctx context.Context, organizationID, userID uint) error
	DeleteByTicketID(ctx context.Context, ticketID uint) error
}

// ListFilter carries notification list options.
type ListFilter struct {
	UnreadOnly bool
	Page       int
	PageSize   int
}
