package usecases

import (
	"context"

	"deskhive/internal/application/ticket/dto"
	"deskhive/internal/domain/ticket"
	"deskhive/internal/shared/authorization"
	"deskhive/internal/shared/errors"
	"deskhive/internal/shared/logger"
)

type AssignTicketCommand struct {
	TicketID uint
	// AssignedAdminID nil clears the assignment.
	AssignedAdminID *uint
}

// AssignTicketUseCase points a ticket at an admin. The target must hold the
// ADMIN role in the same organization; their ACTIVE status is deliberately
// not required here, unlike assignment at ticket creation.
type AssignTicketUseCase struct {
	ticketRepo ticket.Repository
	userRepo   userReader
	notifier   Notifier
	logger     logger.Interface
}

func NewAssignTicketUseCase(
	ticketRepo ticket.Repository,
	userRepo userReader,
	notifier Notifier,
	logger logger.Interface,
) *AssignTicketUseCase {
	return &AssignTicketUseCase{
		ticketRepo: ticketRepo,
		userRepo:   userRepo,
		notifier:   notifier,
		logger:     logger,
	}
}

func (uc *AssignTicketUseCase) Execute(ctx context.Context, p authorization.Principal, cmd AssignTicketCommand) (*dto.TicketDTO, error) {
	if !p.IsAdmin() {
		return nil, errors.NewForbiddenError("only administrators can assign tickets")
	}

	t, err := loadTicketFor(ctx, uc.ticketRepo, p, cmd.TicketID)
	if err != nil {
		return nil, err
	}

	if cmd.AssignedAdminID != nil {
		assignee, err := uc.userRepo.GetByID(ctx, *cmd.AssignedAdminID, p.OrganizationID)
		if err != nil {
			return nil, err
		}
		if assignee == nil || !assignee.IsAdmin() {
			return nil, errors.NewBadRequestError("assignee must be an administrator of the organization")
		}
	}

	t.Assign(cmd.AssignedAdminID)

	if err := uc.ticketRepo.Update(ctx, t); err != nil {
		uc.logger.Errorw("failed to assign ticket", "error", err, "ticket_id", t.ID())
		return nil, err
	}

	uc.logger.Infow("ticket assigned",
		"ticket_id", t.ID(),
		"key", t.Key(),
		"assigned_admin_id", cmd.AssignedAdminID)

	if cmd.AssignedAdminID != nil {
		uc.notifier.TicketAssigned(ctx, t, *cmd.AssignedAdminID)
	}

	return dto.TicketToDTO(t), nil
}
