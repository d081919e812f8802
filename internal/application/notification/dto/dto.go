package dto

import (
	"time"

	"deskhive/internal/domain/notification"
)

type NotificationDTO struct {
	ID             uint      `json:"id"`
	OrganizationID uint      `json:"organization_id"`
	UserID         uint      `json:"user_id"`
	Type           string    `json:"type"`
	Title          string    `json:"title"`
	Body           string    `json:"body"`
	TicketID       *uint     `json:"ticket_id,omitempty"`
	Read           bool      `json:"read"`
	CreatedAt      time.Time `json:"created_at"`
}

func NotificationToDTO(n *notification.Notification) *NotificationDTO {
	if n == nil {
		return nil
	}
	return &NotificationDTO{
		ID:             n.ID(),
		OrganizationID: n.OrganizationID(),
		UserID:         n.UserID(),
		Type:           n.Type().String(),
		Title:          n.Title(),
		Body:           n.Body(),
		TicketID:       n.TicketID(),
		Read:           n.IsRead(),
		CreatedAt:      n.CreatedAt(),
	}
}

func NotificationsToDTO(notifications []*notification.Notification) []*NotificationDTO {
	result := make([]*NotificationDTO, 0, len(notifications))
	for _, n := range notifications {
		result = append(result, NotificationToDTO(n))
	}
	return result
}
