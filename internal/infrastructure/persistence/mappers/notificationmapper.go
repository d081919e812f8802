package mappers

import (
	"fmt"

	"deskhive/internal/domain/notification"
	"deskhive/internal/infrastructure/persistence/models"
	"deskhive/internal/shared/mapper"
)

// NotificationMapper handles the conversion between notification domain
// entities and persistence models.
type NotificationMapper interface {
	ToModel(entity *notification.Notification) *models.NotificationModel
	ToEntity(model *models.NotificationModel) (*notification.Notification, error)
	ToEntities(modelList []*models.NotificationModel) ([]*notification.Notification, error)
}

type NotificationMapperImpl struct{}

func NewNotificationMapper() NotificationMapper {
	return &NotificationMapperImpl{}
}

func (m *NotificationMapperImpl) ToModel(entity *notification.Notification) *models.NotificationModel {
	if entity == nil {
		return nil
	}

	return &models.NotificationModel{
		ID:             entity.ID(),
		OrganizationID: entity.OrganizationID(),
		UserID:         entity.UserID(),
		Type:           entity.Type().String(),
		Title:          entity.Title(),
		Body:           entity.Body(),
		TicketID:       entity.TicketID(),
		Read:           entity.IsRead(),
		CreatedAt:      entity.CreatedAt().UnixMilli(),
	}
}

func (m *NotificationMapperImpl) ToEntity(model *models.NotificationModel) (*notification.Notification, error) {
	if model == nil {
		return nil, nil
	}

	entity, err := notification.ReconstructNotification(
		model.ID,
		model.OrganizationID,
		model.UserID,
		notification.Type(model.Type),
		model.Title,
		model.Body,
		model.TicketID,
		model.Read,
		millisToTime(model.CreatedAt),
	)
	if err != nil {
		return nil, fmt.Errorf("failed to reconstruct notification entity: %w", err)
	}

	return entity, nil
}

func (m *NotificationMapperImpl) ToEntities(modelList []*models.NotificationModel) ([]*notification.Notification, error) {
	return mapper.MapSlicePtrWithID(modelList, m.ToEntity, func(model *models.NotificationModel) uint { return model.ID })
}
