package repository

import (
	"context"
	"fmt"

	"gorm.io/gorm"

	"deskhive/internal/domain/ticket"
	"deskhive/internal/infrastructure/persistence/mappers"
	"deskhive/internal/infrastructure/persistence/models"
	db "deskhive/internal/shared/db"
)

type AttachmentRepository struct {
	db     *gorm.DB
	mapper mappers.TicketMapper
}

func NewAttachmentRepository(db *gorm.DB) *AttachmentRepository {
	return &AttachmentRepository{
		db:     db,
		mapper: mappers.NewTicketMapper(),
	}
}

func (r *AttachmentRepository) Save(ctx context.Context, a *ticket.Attachment) error {
	model := r.mapper.AttachmentToModel(a)
	tx := db.GetTxFromContext(ctx, r.db)

	if err := tx.Create(model).Error; err != nil {
		return fmt.Errorf("failed to save attachment: %w", err)
	}

	return a.SetID(model.ID)
}

func (r *AttachmentRepository) GetByTicketID(ctx context.Context, ticketID uint) ([]*ticket.Attachment, error) {
	var attachmentModels []*models.AttachmentModel
	tx := db.GetTxFromContext(ctx, r.db)

	if err := tx.
		Where("ticket_id = ?", ticketID).
		Order("created_at ASC").
		Find(&attachmentModels).Error; err != nil {
		return nil, fmt.Errorf("failed to find attachments: %w", err)
	}

	return r.mapper.AttachmentsToEntities(attachmentModels)
}

func (r *AttachmentRepository) DeleteByTicketID(ctx context.Context, ticketID uint) error {
	tx := db.GetTxFromContext(ctx, r.db)

	if err := tx.
		Where("ticket_id = ?", ticketID).
		Delete(&models.AttachmentModel{}).Error; err != nil {
		return fmt.Errorf("failed to delete ticket attachments: %w", err)
	}

	return nil
}
