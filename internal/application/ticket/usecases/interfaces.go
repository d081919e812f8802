package usecases

import (
	"context"

	"deskhive/internal/application/ticket/dto"
	"deskhive/internal/domain/ticket"
	"deskhive/internal/domain/user"
	"deskhive/internal/shared/authorization"
)

// TransactionManager runs a function inside a storage transaction. Ticket
// creation uses it to keep the number allocation and the insert atomic.
type TransactionManager interface {
	RunInTransaction(ctx context.Context, fn func(ctx context.Context) error) error
}

// Notifier is the fire-and-forget side channel triggered after ticket events.
// Implementations must never return an error to the caller; failures are
// logged and swallowed.
type Notifier interface {
	TicketCreated(ctx context.Context, t *ticket.Ticket)
	TicketAssigned(ctx context.Context, t *ticket.Ticket, assigneeID uint)
	TicketStatusChanged(ctx context.Context, t *ticket.Ticket)
	NewMessage(ctx context.Context, t *ticket.Ticket, m *ticket.Message, authorIsAdmin bool)
}

// MarkdownRenderer renders message bodies for display.
type MarkdownRenderer interface {
	RenderSanitized(markdown string) (string, error)
}

// FileStore persists uploaded attachment content and reports the public URL
// it will be served under.
type FileStore interface {
	Save(ctx context.Context, filename string, content []byte) (url string, err error)
}

type CreateTicketExecutor interface {
	Execute(ctx context.Context, p authorization.Principal, cmd CreateTicketCommand) (*dto.TicketDTO, error)
}

type GetTicketExecutor interface {
	Execute(ctx context.Context, p authorization.Principal, ticketID uint) (*dto.TicketDTO, error)
}

type ListTicketsExecutor interface {
	Execute(ctx context.Context, p authorization.Principal, query ListTicketsQuery) (*ListTicketsResult, error)
}

type UpdateTicketExecutor interface {
	Execute(ctx context.Context, p authorization.Principal, cmd UpdateTicketCommand) (*dto.TicketDTO, error)
}

type ChangeTicketStatusExecutor interface {
	Execute(ctx context.Context, p authorization.Principal, cmd ChangeTicketStatusCommand) (*dto.TicketDTO, error)
}

type AssignTicketExecutor interface {
	Execute(ctx context.Context, p authorization.Principal, cmd AssignTicketCommand) (*dto.TicketDTO, error)
}

type DeleteTicketExecutor interface {
	Execute(ctx context.Context, p authorization.Principal, ticketID uint) error
}

type AddMessageExecutor interface {
	Execute(ctx context.Context, p authorization.Principal, cmd AddMessageCommand) (*dto.MessageDTO, error)
}

type ListMessagesExecutor interface {
	Execute(ctx context.Context, p authorization.Principal, ticketID uint) ([]*dto.MessageDTO, error)
}

type AddAttachmentExecutor interface {
	Execute(ctx context.Context, p authorization.Principal, cmd AddAttachmentCommand) (*dto.AttachmentDTO, error)
}

type ListAttachmentsExecutor interface {
	Execute(ctx context.Context, p authorization.Principal, ticketID uint) ([]*dto.AttachmentDTO, error)
}

// userReader is the slice of the member repository the ticket use cases need
// for assignment validation.
type userReader interface {
	GetByID(ctx context.Context, id, organizationID uint) (*user.User, error)
}
