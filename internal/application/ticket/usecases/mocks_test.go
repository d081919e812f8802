package usecases

import (
	"context"

	"deskhive/internal/domain/ticket"
	"deskhive/internal/domain/user"
	"deskhive/internal/shared/logger"
)

type mockTicketRepository struct {
	SaveFunc       func(ctx context.Context, t *ticket.Ticket) error
	NextNumberFunc func(ctx context.Context, organizationID uint) (int, error)
	GetByIDFunc    func(ctx context.Context, id, organizationID uint) (*ticket.Ticket, error)
	UpdateFunc     func(ctx context.Context, t *ticket.Ticket) error
	DeleteFunc     func(ctx context.Context, id uint) error
	ListFunc       func(ctx context.Context, organizationID uint, filter ticket.Filter) ([]*ticket.Ticket, int64, error)
}

func (m *mockTicketRepository) Save(ctx context.Context, t *ticket.Ticket) error {
	if m.SaveFunc != nil {
		return m.SaveFunc(ctx, t)
	}
	if t.ID() == 0 {
		_ = t.SetID(1)
	}
	return nil
}

func (m *mockTicketRepository) NextNumber(ctx context.Context, organizationID uint) (int, error) {
	if m.NextNumberFunc != nil {
		return m.NextNumberFunc(ctx, organizationID)
	}
	return 1, nil
}

func (m *mockTicketRepository) GetByID(ctx context.Context, id, organizationID uint) (*ticket.Ticket, error) {
	if m.GetByIDFunc != nil {
		return m.GetByIDFunc(ctx, id, organizationID)
	}
	return nil, nil
}

func (m *mockTicketRepository) Update(ctx context.Context, t *ticket.Ticket) error {
	if m.UpdateFunc != nil {
		return m.UpdateFunc(ctx, t)
	}
	return nil
}

func (m *mockTicketRepository) Delete(ctx context.Context, id uint) error {
	if m.DeleteFunc != nil {
		return m.DeleteFunc(ctx, id)
	}
	return nil
}

func (m *mockTicketRepository) List(ctx context.Context, organizationID uint, filter ticket.Filter) ([]*ticket.Ticket, int64, error) {
	if m.ListFunc != nil {
		return m.ListFunc(ctx, organizationID, filter)
	}
	return nil, 0, nil
}

type mockMessageRepository struct {
	SaveFunc             func(ctx context.Context, msg *ticket.Message) error
	GetByTicketIDFunc    func(ctx context.Context, ticketID uint) ([]*ticket.Message, error)
	DeleteByTicketIDFunc func(ctx context.Context, ticketID uint) error
}

func (m *mockMessageRepository) Save(ctx context.Context, msg *ticket.Message) error {
	if m.SaveFunc != nil {
		return m.SaveFunc(ctx, msg)
	}
	if msg.ID() == 0 {
		_ = msg.SetID(1)
	}
	return nil
}

func (m *mockMessageRepository) GetByTicketID(ctx context.Context, ticketID uint) ([]*ticket.Message, error) {
	if m.GetByTicketIDFunc != nil {
		return m.GetByTicketIDFunc(ctx, ticketID)
	}
	return nil, nil
}

func (m *mockMessageRepository) DeleteByTicketID(ctx context.Context, ticketID uint) error {
	if m.DeleteByTicketIDFunc != nil {
		return m.DeleteByTicketIDFunc(ctx, ticketID)
	}
	return nil
}

type mockAttachmentRepository struct {
	SaveFunc             func(ctx context.Context, a *ticket.Attachment) error
	GetByTicketIDFunc    func(ctx context.Context, ticketID uint) ([]*ticket.Attachment, error)
	DeleteByTicketIDFunc func(ctx context.Context, ticketID uint) error
}

func (m *mockAttachmentRepository) Save(ctx context.Context, a *ticket.Attachment) error {
	if m.SaveFunc != nil {
		return m.SaveFunc(ctx, a)
	}
	if a.ID() == 0 {
		_ = a.SetID(1)
	}
	return nil
}

func (m *mockAttachmentRepository) GetByTicketID(ctx context.Context, ticketID uint) ([]*ticket.Attachment, error) {
	if m.GetByTicketIDFunc != nil {
		return m.GetByTicketIDFunc(ctx, ticketID)
	}
	return nil, nil
}

func (m *mockAttachmentRepository) DeleteByTicketID(ctx context.Context, ticketID uint) error {
	if m.DeleteByTicketIDFunc != nil {
		return m.DeleteByTicketIDFunc(ctx, ticketID)
	}
	return nil
}

type mockNotificationCleaner struct {
	DeleteByTicketIDFunc func(ctx context.Context, ticketID uint) error
}

func (m *mockNotificationCleaner) DeleteByTicketID(ctx context.Context, ticketID uint) error {
	if m.DeleteByTicketIDFunc != nil {
		return m.DeleteByTicketIDFunc(ctx, ticketID)
	}
	return nil
}

type mockUserReader struct {
	GetByIDFunc func(ctx context.Context, id, organizationID uint) (*user.User, error)
}

func (m *mockUserReader) GetByID(ctx context.Context, id, organizationID uint) (*user.User, error) {
	if m.GetByIDFunc != nil {
		return m.GetByIDFunc(ctx, id, organizationID)
	}
	return nil, nil
}

type mockNotifier struct {
	TicketCreatedFunc       func(ctx context.Context, t *ticket.Ticket)
	TicketAssignedFunc      func(ctx context.Context, t *ticket.Ticket, assigneeID uint)
	TicketStatusChangedFunc func(ctx context.Context, t *ticket.Ticket)
	NewMessageFunc          func(ctx context.Context, t *ticket.Ticket, msg *ticket.Message, authorIsAdmin bool)
}

func (m *mockNotifier) TicketCreated(ctx context.Context, t *ticket.Ticket) {
	if m.TicketCreatedFunc != nil {
		m.TicketCreatedFunc(ctx, t)
	}
}

func (m *mockNotifier) TicketAssigned(ctx context.Context, t *ticket.Ticket, assigneeID uint) {
	if m.TicketAssignedFunc != nil {
		m.TicketAssignedFunc(ctx, t, assigneeID)
	}
}

func (m *mockNotifier) TicketStatusChanged(ctx context.Context, t *ticket.Ticket) {
	if m.TicketStatusChangedFunc != nil {
		m.TicketStatusChangedFunc(ctx, t)
	}
}

func (m *mockNotifier) NewMessage(ctx context.Context, t *ticket.Ticket, msg *ticket.Message, authorIsAdmin bool) {
	if m.NewMessageFunc != nil {
		m.NewMessageFunc(ctx, t, msg, authorIsAdmin)
	}
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

type mockMarkdownRenderer struct {
	RenderSanitizedFunc func(markdown string) (string, error)
}

func (m *mockMarkdownRenderer) RenderSanitized(markdown string) (string, error) {
	if m.RenderSanitizedFunc != nil {
		return m.RenderSanitizedFunc(markdown)
	}
	return "<p>" + markdown + "</p>", nil
}

type mockFileStore struct {
	SaveFunc func(ctx context.Context, filename string, content []byte) (string, error)
}

func (m *mockFileStore) Save(ctx context.Context, filename string, content []byte) (string, error) {
	if m.SaveFunc != nil {
		return m.SaveFunc(ctx, filename, content)
	}
	return "/uploads/" + filename, nil
}

type mockLogger struct {
	InfowFunc  func(msg string, keysAndValues ...any)
	ErrorwFunc func(msg string, keysAndValues ...any)
	WarnwFunc  func(msg string, keysAndValues ...any)
	DebugwFunc func(msg string, keysAndValues ...any)
}

func (m *mockLogger) Debug(msg string, args ...any) {}
func (m *mockLogger) Info(msg string, args ...any)  {}
func (m *mockLogger) Warn(msg string, args ...any)  {}
func (m *mockLogger) Error(msg string, args ...any) {}

func (m *mockLogger) With(args ...any) logger.Interface  { return m }
func (m *mockLogger) Named(name string) logger.Interface { return m }

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
