// Package notification implements the fire-and-forget side channel triggered
// by ticket and member events, plus the read surface for in-app
// notifications.
package notification

import (
	"context"
	"fmt"

	"deskhive/internal/domain/notification"
	"deskhive/internal/domain/ticket"
	"deskhive/internal/domain/user"
	"deskhive/internal/infrastructure/email"
	"deskhive/internal/shared/logger"
)

// memberReader is the slice of the member repository the notifier needs to
// resolve recipients.
type memberReader interface {
	GetByID(ctx context.Context, id, organizationID uint) (*user.User, error)
	GetActiveAdmins(ctx context.Context, organizationID uint) ([]*user.User, error)
}

// Notifier writes in-app notifications and mirrors them by email when SMTP
// is configured. Every method is best effort: failures are logged, never
// returned, so the triggering operation is never rolled back or failed by a
// notification problem.
type Notifier struct {
	notificationRepo notification.Repository
	userRepo         memberReader
	emailSender      email.Sender
	baseURL          string
	logger           logger.Interface
}

func NewNotifier(
	notificationRepo notification.Repository,
	userRepo memberReader,
	emailSender email.Sender,
	baseURL string,
	logger logger.Interface,
) *Notifier {
	return &Notifier{
		notificationRepo: notificationRepo,
		userRepo:         userRepo,
		emailSender:      emailSender,
		baseURL:          baseURL,
		logger:           logger,
	}
}

// TicketCreated fans out to every ACTIVE admin of the organization.
func (n *Notifier) TicketCreated(ctx context.Context, t *ticket.Ticket) {
	admins, err := n.userRepo.GetActiveAdmins(ctx, t.OrganizationID())
	if err != nil {
		n.logger.Errorw("failed to resolve admins for ticket-created notification",
			"error", err, "ticket_id", t.ID())
		return
	}

	title := fmt.Sprintf("New ticket %s: %s", t.Key(), t.Title())
	body := fmt.Sprintf("%s opened a new %s ticket.", t.RequesterName(), t.Priority().String())
	for _, admin := range admins {
		n.deliver(ctx, t.OrganizationID(), admin, notification.TypeTicketCreated, title, body, t)
	}
}

// TicketAssigned notifies the assignee.
func (n *Notifier) TicketAssigned(ctx context.Context, t *ticket.Ticket, assigneeID uint) {
	title := fmt.Sprintf("Ticket %s assigned to you", t.Key())
	body := fmt.Sprintf("You are now responsible for %q.", t.Title())
	n.deliverTo(ctx, t.OrganizationID(), assigneeID, notification.TypeTicketAssigned, title, body, t)
}

// TicketStatusChanged notifies the ticket's creator.
func (n *Notifier) TicketStatusChanged(ctx context.Context, t *ticket.Ticket) {
	title := fmt.Sprintf("Ticket %s is now %s", t.Key(), t.Status().String())
	body := fmt.Sprintf("The status of %q changed to %s.", t.Title(), t.Status().String())
	n.deliverTo(ctx, t.OrganizationID(), t.CreatedByUserID(), notification.TypeTicketStatusChanged, title, body, t)
}

// NewMessage notifies the counterpart of the author: an admin's message goes
// to the creator, a creator's message goes to the assignee (or every ACTIVE
// admin when the ticket is unassigned).
func (n *Notifier) NewMessage(ctx context.Context, t *ticket.Ticket, m *ticket.Message, authorIsAdmin bool) {
	title := fmt.Sprintf("New message on %s", t.Key())
	body := fmt.Sprintf("%s replied on %q.", m.AuthorName(), t.Title())

	if authorIsAdmin {
		if t.CreatedByUserID() != m.AuthorUserID() {
			n.deliverTo(ctx, t.OrganizationID(), t.CreatedByUserID(), notification.TypeNewMessage, title, body, t)
		}
		return
	}

	if assignee := t.AssignedAdminID(); assignee != nil {
		n.deliverTo(ctx, t.OrganizationID(), *assignee, notification.TypeNewMessage, title, body, t)
		return
	}

	admins, err := n.userRepo.GetActiveAdmins(ctx, t.OrganizationID())
	if err != nil {
		n.logger.Errorw("failed to resolve admins for new-message notification",
			"error", err, "ticket_id", t.ID())
		return
	}
	for _, admin := range admins {
		if admin.ID() == m.AuthorUserID() {
			continue
		}
		n.deliver(ctx, t.OrganizationID(), admin, notification.TypeNewMessage, title, body, t)
	}
}

// UserApproved notifies the freshly approved member and mirrors the approval
// by email.
func (n *Notifier) UserApproved(ctx context.Context, u *user.User) {
	title := "Your account has been approved"
	body := "You can now sign in and open tickets."

	record, err := notification.NewNotification(u.OrganizationID(), u.ID(),
		notification.TypeUserApproved, title, body, nil)
	if err != nil {
		n.logger.Errorw("failed to build user-approved notification", "error", err, "user_id", u.ID())
		return
	}
	if err := n.notificationRepo.Create(ctx, record); err != nil {
		n.logger.Errorw("failed to write user-approved notification", "error", err, "user_id", u.ID())
	}

	if err := n.emailSender.SendAccountApprovedEmail(u.Email(), u.FirstName()); err != nil {
		n.logger.Warnw("failed to send approval email", "error", err, "user_id", u.ID())
	}
}

// deliverTo resolves the recipient inside the tenant, then delivers.
func (n *Notifier) deliverTo(ctx context.Context, organizationID, userID uint, typ notification.Type, title, body string, t *ticket.Ticket) {
	recipient, err := n.userRepo.GetByID(ctx, userID, organizationID)
	if err != nil || recipient == nil {
		n.logger.Warnw("notification recipient not resolvable",
			"error", err, "user_id", userID, "organization_id", organizationID)
		return
	}
	n.deliver(ctx, organizationID, recipient, typ, title, body, t)
}

func (n *Notifier) deliver(ctx context.Context, organizationID uint, recipient *user.User, typ notification.Type, title, body string, t *ticket.Ticket) {
	ticketID := t.ID()
	record, err := notification.NewNotification(organizationID, recipient.ID(), typ, title, body, &ticketID)
	if err != nil {
		n.logger.Errorw("failed to build notification", "error", err, "user_id", recipient.ID())
		return
	}
	if err := n.notificationRepo.Create(ctx, record); err != nil {
		n.logger.Errorw("failed to write notification",
			"error", err, "user_id", recipient.ID(), "type", typ.String())
		return
	}

	ticketURL := fmt.Sprintf("%s/tickets/%d", n.baseURL, t.ID())
	if err := n.emailSender.SendNotificationEmail(recipient.Email(), title, title, body, ticketURL); err != nil {
		n.logger.Warnw("failed to send notification email",
			"error", err, "user_id", recipient.ID(), "type", typ.String())
	}
}
