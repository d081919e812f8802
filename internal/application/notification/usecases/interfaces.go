package usecases

import (
	"context"

	"deskhive/internal/application/notification/dto"
	"deskhive/internal/shared/authorization"
)

type ListNotificationsExecutor interface {
	Execute(ctx context.Context, p authorization.Principal, query ListNotificationsQuery) (*ListNotificationsResult, error)
}

type MarkNotificationReadExecutor interface {
	Execute(ctx context.Context, p authorization.Principal, notificationID uint) (*dto.NotificationDTO, error)
}

type MarkAllNotificationsReadExecutor interface {
	Execute(ctx context.Context, p authorization.Principal) error
}
