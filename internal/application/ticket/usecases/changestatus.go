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

type ChangeTicketStatusCommand struct {
	TicketID uint
	Status   string
}

type ChangeTicketStatusUseCase struct {
	ticketRepo ticket.Repository
	notifier   Notifier
	logger     logger.Interface
}

func NewChangeTicketStatusUseCase(
	ticketRepo ticket.Repository,
	notifier Notifier,
	logger logger.Interface,
) *ChangeTicketStatusUseCase {
	return &ChangeTicketStatusUseCase{ticketRepo: ticketRepo, notifier: notifier, logger: logger}
}

func (uc *ChangeTicketStatusUseCase) Execute(ctx context.Context, p authorization.Principal, cmd ChangeTicketStatusCommand) (*dto.TicketDTO, error) {
	status, err := vo.NewStatus(cmd.Status)
	if err != nil {
		return nil, errors.NewValidationError(err.Error())
	}

	t, err := loadTicketFor(ctx, uc.ticketRepo, p, cmd.TicketID)
	if err != nil {
		return nil, err
	}

	if err := t.SetStatus(status); err != nil {
		return nil, errors.NewValidationError(err.Error())
	}

	if err := uc.ticketRepo.Update(ctx, t); err != nil {
		uc.logger.Errorw("failed to change ticket status", "error", err, "ticket_id", t.ID())
		return nil, err
	}

	uc.logger.Infow("ticket status changed",
		"ticket_id", t.ID(),
		"key", t.Key(),
		"status", status.String())

	uc.notifier.TicketStatusChanged(ctx, t)

	return dto.TicketToDTO(t), nil
}
