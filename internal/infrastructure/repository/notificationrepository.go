package repository

import (
	"context"
	"fmt"

	"gorm.io/gorm"

	"deskhive/internal/domain/notification"
	"deskhive/internal/infrastructure/persistence/mappers"
	"deskhive/internal/infrastructure/persistence/models"
	db "deskhive/internal/shared/db"
)

type NotificationRepository struct {
	db     *gorm.DB
	mapper mappers.NotificationMapper
}

func NewNotificationRepository(db *gorm.DB) *NotificationRepository {
	return &NotificationRepository{
		db:     db,
		mapper: mappers.NewNotificationMapper(),
	}
}

func (r *NotificationRepository) Create(ctx context.Context, n *notification.Notification) error {
	model := r.mapper.ToModel(n)
	tx := db.GetTxFromContext(ctx, r.db)

	if err := tx.Create(model).Error; err != nil {
		return fmt.Errorf("failed to create notification: %w", err)
	}

	return n.SetID(model.ID)
}

func (r *NotificationRepository) GetByID(ctx context.Context, id, organizationID uint) (*notification.Notification, error) {
	var model models.NotificationModel
	tx := db.GetTxFromContext(ctx, r.db)

	if err := tx.
		Where("id = ? AND organization_id = ?", id, organizationID).
		First(&model).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to find notification: %w", err)
	}

	return r.mapper.ToEntity(&model)
}

func (r *NotificationRepository) List(
	ctx context.Context,
	organizationID, userID uint,
	filter notification.ListFilter,
) ([]*notification.Notification, int64, error) {
	tx := db.GetTxFromContext(ctx, r.db)
	query := tx.Model(&models.NotificationModel{}).
		Where("organization_id = ? AND user_id = ?", organizationID, userID)

	if filter.UnreadOnly {
		query = query.Where("`read` = ?", false)
	}

	var total int64
	if err := query.Count(&total).Error; err != nil {
		return nil, 0, fmt.Errorf("failed to count notifications: %w", err)
	}

	query = query.Order("created_at DESC")
	if filter.PageSize > 0 {
		offset := (filter.Page - 1) * filter.PageSize
		query = query.Limit(filter.PageSize).Offset(offset)
	}

	var notificationModels []*models.NotificationModel
	if err := query.Find(&notificationModels).Error; err != nil {
		return nil, 0, fmt.Errorf("failed to list notifications: %w", err)
	}

	items, err := r.mapper.ToEntities(notificationModels)
	if err != nil {
		return nil, 0, err
	}

	return items, total, nil
}

func (r *NotificationRepository) Update(ctx context.Context, n *notification.Notification) error {
	model := r.mapper.ToModel(n)
	tx := db.GetTxFromContext(ctx, r.db)

	result := tx.
		Model(&models.NotificationModel{}).
		Where("id = ?", model.ID).
		Update("read", model.Read)
	if result.Error != nil {
		return fmt.Errorf("failed to update notification: %w", result.Error)
	}

	return nil
}

func (r *NotificationRepository) MarkAllRead(ctx context.Context, organizationID, userID uint) error {
	tx := db.GetTxFromContext(ctx, r.db)

	if err := tx.
		Model(&models.NotificationModel{}).
		Where("organization_id = ? AND user_id = ? AND `read` = ?", organizationID, userID, false).
		Update("read", true).Error; err != nil {
		return fmt.Errorf("failed to mark notifications read: %w", err)
	}

	return nil
}

func (r *NotificationRepository) DeleteByTicketID(ctx context.Context, ticketID uint) error {
	tx := db.GetTxFromContext(ctx, r.db)

	if err := tx.
		Where("ticket_id = ?", ticketID).
		Delete(&models.NotificationModel{}).Error; err != nil {
		return fmt.Errorf("failed to delete ticket notifications: %w", err)
	}

	return nil
}
