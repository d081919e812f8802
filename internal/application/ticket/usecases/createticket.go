package usecases

import (
	"context"

	"deskhive/internal/application/ticket/dto"
	"deskhive/internal/domain/ticket"
	vo "deskhive/internal/domain/ticket/valueobjects"
	"deskhive/internal/shared/authorization"
	"deskhive/internal/shared/errors"
	"deskhive/internal/shared/logger"
)

type CreateTicketCommand struct {
	Title           string
	Description     string
	Type            string
	Priority        string
	RequesterName   string
	RequesterEmail  string
	AssignedAdminID *uint
}

// CreateTicketUseCase allocates the next per-organization number and persists
// the ticket in one transaction. The unique (organization_id, number) index
// makes the loser of a concurrent allocation fail instead of duplicating a
// key.
type CreateTicketUseCase struct {
	ticketRepo ticket.Repository
	userRepo   userReader
	txManager  TransactionManager
	notifier   Notifier
	logger     logger.Interface
}

func NewCreateTicketUseCase(
	ticketRepo ticket.Repository,
	userRepo userReader,
	txManager TransactionManager,
	notifier Notifier,
	logger logger.Interface,
) *CreateTicketUseCase {
	return &CreateTicketUseCase{
		ticketRepo: ticketRepo,
		userRepo:   userRepo,
		txManager:  txManager,
		notifier:   notifier,
		logger:     logger,
	}
}

func (uc *CreateTicketUseCase) Execute(ctx context.Context, p authorization.Principal, cmd CreateTicketCommand) (*dto.TicketDTO, error) {
	ticketType, err := vo.NewType(cmd.Type)
	if err != nil {
		return nil, errors.NewValidationError(err.Error())
	}
	priority, err := vo.NewPriority(cmd.Priority)
	if err != nil {
		return nil, errors.NewValidationError(err.Error())
	}

	requesterName := cmd.RequesterName
	if requesterName == "" {
		requesterName = p.Email
	}
	requesterEmail := cmd.RequesterEmail
	if requesterEmail == "" {
		requesterEmail = p.Email
	}

	newTicket, err := ticket.NewTicket(p.OrganizationID, cmd.Title, cmd.Description,
		ticketType, priority, requesterName, requesterEmail, p.UserID)
	if err != nil {
		return nil, errors.NewValidationError(err.Error())
	}

	if cmd.AssignedAdminID != nil {
		assignee, err := uc.userRepo.GetByID(ctx, *cmd.AssignedAdminID, p.OrganizationID)
		if err != nil {
			return nil, err
		}
		if assignee == nil || !assignee.IsAdmin() || !assignee.Status().IsActive() {
			return nil, errors.NewBadRequestError("assigned admin must be an active administrator of the organization")
		}
		newTicket.Assign(cmd.AssignedAdminID)
	}

	err = uc.txManager.RunInTransaction(ctx, func(txCtx context.Context) error {
		number, err := uc.ticketRepo.NextNumber(txCtx, p.OrganizationID)
		if err != nil {
			return err
		}
		if err := newTicket.SetNumber(number); err != nil {
			return err
		}
		return uc.ticketRepo.Save(txCtx, newTicket)
	})
	if err != nil {
		if errors.IsDuplicateError(err) {
			// Lost the numbering race to a concurrent creator.
			return nil, errors.NewConflictError("ticket number allocation conflict, please retry")
		}
		uc.logger.Errorw("failed to create ticket", "error", err, "organization_id", p.OrganizationID)
		return nil, err
	}

	uc.logger.Infow("ticket created",
		"organization_id", p.OrganizationID,
		"ticket_id", newTicket.ID(),
		"key", newTicket.Key())

	uc.notifier.TicketCreated(ctx, newTicket)
	if newTicket.AssignedAdminID() != nil {
		uc.notifier.TicketAssigned(ctx, newTicket, *newTicket.AssignedAdminID())
	}

	return dto.TicketToDTO(newTicket), nil
}
