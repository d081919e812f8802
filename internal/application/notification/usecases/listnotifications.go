package usecases

import (
	"context"

	"deskhive/internal/application/notification/dto"
	"deskhive/internal/domain/notification"
	"deskhive/internal/shared/authorization"
	"deskhive/internal/shared/logger"
)

type ListNotificationsQuery struct {
	UnreadOnly bool
	Page       int
	PageSize   int
}

type ListNotificationsResult struct {
	Notifications []*dto.NotificationDTO `json:"notifications"`
	Total         int64                  `json:"total"`
	Page          int                    `json:"page"`
	PageSize      int                    `json:"page_size"`
}

type ListNotificationsUseCase struct {
	notificationRepo notification.Repository
	logger           logger.Interface
}

func NewListNotificationsUseCase(notificationRepo notification.Repository, logger logger.Interface) *ListNotificationsUseCase {
	return &ListNotificationsUseCase{notificationRepo: notificationRepo, logger: logger}
}

func (uc *ListNotificationsUseCase) Execute(ctx context.Context, p authorization.Principal, query ListNotificationsQuery) (*ListNotificationsResult, error) {
	filter := notification.ListFilter{
		UnreadOnly: query.UnreadOnly,
		Page:       query.Page,
		PageSize:   query.PageSize,
	}
	if filter.Page < 1 {
		filter.Page = 1
	}
	if filter.PageSize < 1 || filter.PageSize > 100 {
		filter.PageSize = 20
	}

	notifications, total, err := uc.notificationRepo.List(ctx, p.OrganizationID, p.UserID, filter)
	if err != nil {
		uc.logger.Errorw("failed to list notifications", "error", err, "user_id", p.UserID)
		return nil, err
	}

	return &ListNotificationsResult{
		Notifications: dto.NotificationsToDTO(notifications),
		Total:         total,
		Page:          filter.Page,
		PageSize:      filter.PageSize,
	}, nil
}
