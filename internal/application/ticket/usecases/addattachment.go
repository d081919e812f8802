package usecases

import (
	"context"
	"fmt"

	"deskhive/internal/application/ticket/dto"
	"deskhive/internal/domain/ticket"
	"deskhive/internal/shared/authorization"
	"deskhive/internal/shared/errors"
	"deskhive/internal/shared/logger"
)

type AddAttachmentCommand struct {
	TicketID uint
	Filename string
	MimeType string
	Content  []byte
}

// AddAttachmentUseCase stores the uploaded bytes through the file store and
// records the metadata row. MaxSize bounds the accepted payload.
type AddAttachmentUseCase struct {
	ticketRepo     ticket.Repository
	attachmentRepo ticket.AttachmentRepository
	files          FileStore
	maxSize        int64
	logger         logger.Interface
}

func NewAddAttachmentUseCase(
	ticketRepo ticket.Repository,
	attachmentRepo ticket.AttachmentRepository,
	files FileStore,
	maxSize int64,
	logger logger.Interface,
) *AddAttachmentUseCase {
	return &AddAttachmentUseCase{
		ticketRepo:     ticketRepo,
		attachmentRepo: attachmentRepo,
		files:          files,
		maxSize:        maxSize,
		logger:         logger,
	}
}

func (uc *AddAttachmentUseCase) Execute(ctx context.Context, p authorization.Principal, cmd AddAttachmentCommand) (*dto.AttachmentDTO, error) {
	if cmd.Filename == "" {
		return nil, errors.NewValidationError("filename is required")
	}
	if len(cmd.Content) == 0 {
		return nil, errors.NewValidationError("file content is empty")
	}
	if int64(len(cmd.Content)) > uc.maxSize {
		return nil, errors.NewValidationError(fmt.Sprintf("file exceeds maximum size of %d bytes", uc.maxSize))
	}

	t, err := loadTicketFor(ctx, uc.ticketRepo, p, cmd.TicketID)
	if err != nil {
		return nil, err
	}

	url, err := uc.files.Save(ctx, cmd.Filename, cmd.Content)
	if err != nil {
		uc.logger.Errorw("failed to store attachment", "error", err, "ticket_id", t.ID())
		return nil, errors.NewInternalError("failed to store attachment")
	}

	attachment, err := ticket.NewAttachment(t.ID(), p.UserID, cmd.Filename, cmd.MimeType,
		int64(len(cmd.Content)), url)
	if err != nil {
		return nil, errors.NewValidationError(err.Error())
	}

	if err := uc.attachmentRepo.Save(ctx, attachment); err != nil {
		uc.logger.Errorw("failed to save attachment metadata", "error", err, "ticket_id", t.ID())
		return nil, err
	}

	uc.logger.Infow("attachment uploaded",
		"ticket_id", t.ID(),
		"key", t.Key(),
		"filename", cmd.Filename,
		"size", len(cmd.Content))

	return dto.AttachmentToDTO(attachment), nil
}
