package usecases

import (
	"context"

	"deskhive/internal/application/ticket/dto"
	"deskhive/internal/domain/ticket"
	"deskhive/internal/shared/authorization"
	"deskhive/internal/shared/logger"
)

type ListAttachmentsUseCase struct {
	ticketRepo     ticket.Repository
	attachmentRepo ticket.AttachmentRepository
	logger         logger.Interface
}

func NewListAttachmentsUseCase(
	ticketRepo ticket.Repository,
	attachmentRepo ticket.AttachmentRepository,
	logger logger.Interface,
) *ListAttachmentsUseCase {
	return &ListAttachmentsUseCase{
		ticketRepo:     ticketRepo,
		attachmentRepo: attachmentRepo,
		logger:         logger,
	}
}

func (uc *ListAttachmentsUseCase) Execute(ctx context.Context, p authorization.Principal, ticketID uint) ([]*dto.AttachmentDTO, error) {
	t, err := loadTicketFor(ctx, uc.ticketRepo, p, ticketID)
	if err != nil {
		return nil, err
	}

	attachments, err := uc.attachmentRepo.GetByTicketID(ctx, t.ID())
	if err != nil {
		uc.logger.Errorw("failed to list attachments", "error", err, "ticket_id", t.ID())
		return nil, err
	}

	result := make([]*dto.AttachmentDTO, 0, len(attachments))
	for _, a := range attachments {
		result = append(result, dto.AttachmentToDTO(a))
	}
	return result, nil
}
