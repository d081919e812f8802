package usecases

import (
	"context"

	"deskhive/internal/application/notification/dto"
	"deskhive/internal/domain/notification"
	"deskhive/internal/shared/authorization"
	"deskhive/internal/shared/errors"
	"deskhive/internal/shared/logger"
)

type MarkNotificationReadUseCase struct {
	notificationRepo notification.Repository
	logger           logger.Interface
}

func NewMarkNotificationReadUseCase(notificationRepo notification.Repository, logger logger.Interface) *MarkNotificationReadUseCase {
	return &MarkNotificationReadUseCase{notificationRepo: notificationRepo, logger: logger}
}

func (uc *MarkNotificationReadUseCase) Execute(ctx context.Context, p authorization.Principal, notificationID uint) (*dto.NotificationDTO, error) {
	n, err := uc.notificationRepo.GetByID(ctx, notificationID, p.OrganizationID)
	if err != nil {
		uc.logger.Errorw("failed to get notification", "error", err, "notification_id", notificationID)
		return nil, err
	}
	// A notification addressed to someone else is as invisible as a missing
	// one.
	if n == nil || n.UserID() != p.UserID {
		return nil, errors.NewNotFoundError("notification not found")
	}

	if !n.IsRead() {
		n.MarkRead()
		if err := uc.notificationRepo.Update(ctx, n); err != nil {
			uc.logger.Errorw("failed to mark notification read", "error", err, "notification_id", n.ID())
			return nil, err
		}
	}

	return dto.NotificationToDTO(n), nil
}

type MarkAllNotificationsReadUseCase struct {
	notificationRepo notification.Repository
	logger           logger.Interface
}

func NewMarkAllNotificationsReadUseCase(notificationRepo notification.Repository, logger logger.Interface) *MarkAllNotificationsReadUseCase {
	return &MarkAllNotificationsReadUseCase{notificationRepo: notificationRepo, logger: logger}
}

func (uc *MarkAllNotificationsReadUseCase) Execute(ctx context.Context, p authorization.Principal) error {
	if err := uc.notificationRepo.MarkAllRead(ctx, p.OrganizationID, p.UserID); err != nil {
		uc.logger.Errorw("failed to mark all notifications read", "error", err, "user_id", p.UserID)
		return err
	}
	return nil
}
