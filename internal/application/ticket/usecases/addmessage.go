package usecases

import (
	"context"

	"deskhive/internal/application/ticket/dto"
	"deskhive/internal/domain/ticket"
	"deskhive/internal/shared/authorization"
	"deskhive/internal/shared/errors"
	"deskhive/internal/shared/logger"
)

type AddMessageCommand struct {
	TicketID uint
	Body     string
	// AuthorName is the denormalized display name snapshot; it survives the
	// author account's later deletion.
	AuthorName string
}

type AddMessageUseCase struct {
	ticketRepo  ticket.Repository
	messageRepo ticket.MessageRepository
	notifier    Notifier
	logger      logger.Interface
}

func NewAddMessageUseCase(
	ticketRepo ticket.Repository,
	messageRepo ticket.MessageRepository,
	notifier Notifier,
	logger logger.Interface,
) *AddMessageUseCase {
	return &AddMessageUseCase{
		ticketRepo:  ticketRepo,
		messageRepo: messageRepo,
		notifier:    notifier,
		logger:      logger,
	}
}

func (uc *AddMessageUseCase) Execute(ctx context.Context, p authorization.Principal, cmd AddMessageCommand) (*dto.MessageDTO, error) {
	t, err := loadTicketFor(ctx, uc.ticketRepo, p, cmd.TicketID)
	if err != nil {
		return nil, err
	}

	authorName := cmd.AuthorName
	if authorName == "" {
		authorName = p.Email
	}

	message, err := ticket.NewMessage(t.ID(), p.UserID, authorName, cmd.Body)
	if err != nil {
		return nil, errors.NewValidationError(err.Error())
	}

	if err := uc.messageRepo.Save(ctx, message); err != nil {
		uc.logger.Errorw("failed to save message", "error", err, "ticket_id", t.ID())
		return nil, err
	}

	uc.logger.Infow("message posted",
		"ticket_id", t.ID(),
		"key", t.Key(),
		"message_id", message.ID())

	uc.notifier.NewMessage(ctx, t, message, p.IsAdmin())

	return dto.MessageToDTO(message, ""), nil
}
