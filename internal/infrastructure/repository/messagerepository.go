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

type MessageRepository struct {
	db     *gorm.DB
	mapper mappers.TicketMapper
}

func NewMessageRepository(db *gorm.DB) *MessageRepository {
	return &MessageRepository{
		db:     db,
		mapper: mappers.NewTicketMapper(),
	}
}

func (r *MessageRepository) Save(ctx context.Context, m *ticket.Message) error {
	model := r.mapper.MessageToModel(m)
	tx := db.GetTxFromContext(ctx, r.db)

	if err := tx.Create(model).Error; err != nil {
		return fmt.Errorf("failed to save message: %w", err)
	}

	return m.SetID(model.ID)
}

func (r *MessageRepository) GetByTicketID(ctx context.Context, ticketID uint) ([]*ticket.Message, error) {
	var messageModels []*models.MessageModel
	tx := db.GetTxFromContext(ctx, r.db)

	if err := tx.
		Where("ticket_id = ?", ticketID).
		Order("created_at ASC").
		Find(&messageModels).Error; err != nil {
		return nil, fmt.Errorf("failed to find messages: %w", err)
	}

	return r.mapper.MessagesToEntities(messageModels)
}

func (r *MessageRepository) DeleteByTicketID(ctx context.Context, ticketID uint) error {
	tx := db.GetTxFromContext(ctx, r.db)

	if err := tx.
		Where("ticket_id = ?", ticketID).
		Delete(&models.MessageModel{}).Error; err != nil {
		return fmt.Errorf("failed to delete ticket messages: %w", err)
	}

	return nil
}
