package usecases

import (
	"context"

	"deskhive/internal/domain/ticket"
	"deskhive/internal/shared/authorization"
	"deskhive/internal/shared/errors"
	"deskhive/internal/shared/logger"
)

// notificationCleaner removes notification rows that reference a ticket.
type notificationCleaner interface {
	DeleteByTicketID(ctx context.Context, ticketID uint) error
}

// DeleteTicketUseCase removes a ticket with its thread, attachments, and
// notifications in one transaction. Admin-only.
type DeleteTicketUseCase struct {
	ticketRepo       ticket.Repository
	messageRepo      ticket.MessageRepository
	attachmentRepo   ticket.AttachmentRepository
	notificationRepo notificationCleaner
	txManager        TransactionManager
	logger           logger.Interface
}

func NewDeleteTicketUseCase(
	ticketRepo ticket.Repository,
	messageRepo ticket.MessageRepository,
	attachmentRepo ticket.AttachmentRepository,
	notificationRepo notificationCleaner,
	txManager TransactionManager,
	logger logger.Interface,
) *DeleteTicketUseCase {
	return &DeleteTicketUseCase{
		ticketRepo:       ticketRepo,
		messageRepo:      messageRepo,
		attachmentRepo:   attachmentRepo,
		notificationRepo: notificationRepo,
		txManager:        txManager,
		logger:           logger,
	}
}

func (uc *DeleteTicketUseCase) Execute(ctx context.Context, p authorization.Principal, ticketID uint) error {
	if !p.IsAdmin() {
		return errors.NewForbiddenError("only administrators can delete tickets")
	}

	t, err := loadTicketFor(ctx, uc.ticketRepo, p, ticketID)
	if err != nil {
		return err
	}

	err = uc.txManager.RunInTransaction(ctx, func(txCtx context.Context) error {
		if err := uc.messageRepo.DeleteByTicketID(txCtx, t.ID()); err != nil {
			return err
		}
		if err := uc.attachmentRepo.DeleteByTicketID(txCtx, t.ID()); err != nil {
			return err
		}
		if err := uc.notificationRepo.DeleteByTicketID(txCtx, t.ID()); err != nil {
			return err
		}
		return uc.ticketRepo.Delete(txCtx, t.ID())
	})
	if err != nil {
		uc.logger.Errorw("failed to delete ticket", "error", err, "ticket_id", t.ID())
		return err
	}

	uc.logger.Infow("ticket deleted", "ticket_id", t.ID(), "key", t.Key())
	return nil
}
