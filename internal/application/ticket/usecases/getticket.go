package usecases

import (
	"context"

	"deskhive/internal/application/ticket/dto"
	"deskhive/internal/domain/ticket"
	"deskhive/internal/shared/authorization"
	"deskhive/internal/shared/logger"
)

type GetTicketUseCase struct {
	ticketRepo ticket.Repository
	logger     logger.Interface
}

func NewGetTicketUseCase(ticketRepo ticket.Repository, logger logger.Interface) *GetTicketUseCase {
	return &GetTicketUseCase{ticketRepo: ticketRepo, logger: logger}
}

func (uc *GetTicketUseCase) Execute(ctx context.Context, p authorization.Principal, ticketID uint) (*dto.TicketDTO, error) {
	t, err := loadTicketFor(ctx, uc.ticketRepo, p, ticketID)
	if err != nil {
		return nil, err
	}
	return dto.TicketToDTO(t), nil
}
