package usecases

import (
	"context"

	"deskhive/internal/application/ticket/dto"
	"deskhive/internal/domain/ticket"
	"deskhive/internal/shared/authorization"
	"deskhive/internal/shared/logger"
)

// ListMessagesUseCase returns a ticket's thread ordered oldest first, with
// each body rendered to sanitized HTML for display.
type ListMessagesUseCase struct {
	ticketRepo  ticket.Repository
	messageRepo ticket.MessageRepository
	renderer    MarkdownRenderer
	logger      logger.Interface
}

func NewListMessagesUseCase(
	ticketRepo ticket.Repository,
	messageRepo ticket.MessageRepository,
	renderer MarkdownRenderer,
	logger logger.Interface,
) *ListMessagesUseCase {
	return &ListMessagesUseCase{
		ticketRepo:  ticketRepo,
		messageRepo: messageRepo,
		renderer:    renderer,
		logger:      logger,
	}
}

func (uc *ListMessagesUseCase) Execute(ctx context.Context, p authorization.Principal, ticketID uint) ([]*dto.MessageDTO, error) {
	t, err := loadTicketFor(ctx, uc.ticketRepo, p, ticketID)
	if err != nil {
		return nil, err
	}

	messages, err := uc.messageRepo.GetByTicketID(ctx, t.ID())
	if err != nil {
		uc.logger.Errorw("failed to list messages", "error", err, "ticket_id", t.ID())
		return nil, err
	}

	result := make([]*dto.MessageDTO, 0, len(messages))
	for _, m := range messages {
		rendered, err := uc.renderer.RenderSanitized(m.Body())
		if err != nil {
			// Fall back to the raw body rather than failing the read.
			uc.logger.Warnw("failed to render message body", "error", err, "message_id", m.ID())
			rendered = ""
		}
		result = append(result, dto.MessageToDTO(m, rendered))
	}
	return result, nil
}
