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

type UpdateTicketCommand struct {
	TicketID    uint
	Title       string
	Description string
	Type        string
	Priority    string
}

type UpdateTicketUseCase struct {
	ticketRepo ticket.Repository
	logger     logger.Interface
}

func NewUpdateTicketUseCase(ticketRepo ticket.Repository, logger logger.Interface) *UpdateTicketUseCase {
	return &UpdateTicketUseCase{ticketRepo: ticketRepo, logger: logger}
}

func (uc *UpdateTicketUseCase) Execute(ctx context.Context, p authorization.Principal, cmd UpdateTicketCommand) (*dto.TicketDTO, error) {
	if cmd.Title == "" && cmd.Description == "" && cmd.Type == "" && cmd.Priority == "" {
		return nil, errors.NewBadRequestError("no fields to update")
	}

	t, err := loadTicketFor(ctx, uc.ticketRepo, p, cmd.TicketID)
	if err != nil {
		return nil, err
	}

	var ticketType *vo.Type
	if cmd.Type != "" {
		parsed, err := vo.NewType(cmd.Type)
		if err != nil {
			return nil, errors.NewValidationError(err.Error())
		}
		ticketType = &parsed
	}
	var priority *vo.Priority
	if cmd.Priority != "" {
		parsed, err := vo.NewPriority(cmd.Priority)
		if err != nil {
			return nil, errors.NewValidationError(err.Error())
		}
		priority = &parsed
	}

	if err := t.UpdateDetails(cmd.Title, cmd.Description, ticketType, priority); err != nil {
		return nil, errors.NewValidationError(err.Error())
	}

	if err := uc.ticketRepo.Update(ctx, t); err != nil {
		uc.logger.Errorw("failed to update ticket", "error", err, "ticket_id", t.ID())
		return nil, err
	}

	uc.logger.Infow("ticket updated", "ticket_id", t.ID(), "key", t.Key())
	return dto.TicketToDTO(t), nil
}
