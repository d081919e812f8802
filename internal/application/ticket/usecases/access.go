package usecases

import (
	"context"

	"deskhive/internal/domain/ticket"
	"deskhive/internal/shared/authorization"
	"deskhive/internal/shared/errors"
)

// loadTicketFor fetches a ticket on behalf of a principal, applying the
// tenant and ownership rules: a cross-tenant or missing id is NotFound, a
// same-tenant ticket created by someone else is Forbidden for non-admins.
func loadTicketFor(ctx context.Context, repo ticket.Repository, p authorization.Principal, ticketID uint) (*ticket.Ticket, error) {
	t, err := repo.GetByID(ctx, ticketID, p.OrganizationID)
	if err != nil {
		return nil, err
	}
	if t == nil {
		return nil, errors.NewNotFoundError("ticket not found")
	}
	if !t.CanBeAccessedBy(p.UserID, p.IsAdmin()) {
		return nil, errors.NewForbiddenError("you do not have access to this ticket")
	}
	return t, nil
}
