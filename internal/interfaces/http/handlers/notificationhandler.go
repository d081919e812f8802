package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"deskhive/internal/application/notification/usecases"
	"deskhive/internal/shared/logger"
	"deskhive/internal/shared/utils"
)

// NotificationHandler exposes a member's own notification feed.
type NotificationHandler struct {
	listUseCase        usecases.ListNotificationsExecutor
	markReadUseCase    usecases.MarkNotificationReadExecutor
	markAllReadUseCase usecases.MarkAllNotificationsReadExecutor
	logger             logger.Interface
}

func NewNotificationHandler(
	listUC usecases.ListNotificationsExecutor,
	markReadUC usecases.MarkNotificationReadExecutor,
	markAllReadUC usecases.MarkAllNotificationsReadExecutor,
	logger logger.Interface,
) *NotificationHandler {
	return &NotificationHandler{
		listUseCase:        listUC,
		markReadUseCase:    markReadUC,
		markAllReadUseCase: markAllReadUC,
		logger:             logger,
	}
}

// List godoc
// @Summary List the caller's notifications, newest first
// @Tags notifications
// @Produce json
// @Security BearerAuth
// @Param unread query bool false "Only unread"
// @Param page query int false "Page"
// @Param page_size query int false "Page size"
// @Success 200 {object} utils.APIResponse
// @Router /notifications [get]
func (h *NotificationHandler) List(c *gin.Context) {
	p, ok := requirePrincipal(c)
	if !ok {
		return
	}

	pagination := utils.ParsePagination(c)
	result, err := h.listUseCase.Execute(c.Request.Context(), p, usecases.ListNotificationsQuery{
		UnreadOnly: c.Query("unread") == "true",
		Page:       pagination.Page,
		PageSize:   pagination.PageSize,
	})
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.ListSuccessResponse(c, result.Notifications, result.Total, result.Page, result.PageSize)
}

// MarkRead godoc
// @Summary Mark one notification as read
// @Tags notifications
// @Produce json
// @Security BearerAuth
// @Param id path int true "Notification ID"
// @Success 200 {object} utils.APIResponse
// @Failure 404 {object} utils.ErrorBody
// @Router /notifications/{id}/read [post]
func (h *NotificationHandler) MarkRead(c *gin.Context) {
	p, ok := requirePrincipal(c)
	if !ok {
		return
	}

	notificationID, err := utils.ParseIDParam(c, "id", "notification")
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	result, err := h.markReadUseCase.Execute(c.Request.Context(), p, notificationID)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "notification marked read", result)
}

// MarkAllRead godoc
// @Summary Mark every notification of the caller as read
// @Tags notifications
// @Produce json
// @Security BearerAuth
// @Success 200 {object} utils.APIResponse
// @Router /notifications/read-all [post]
func (h *NotificationHandler) MarkAllRead(c *gin.Context) {
	p, ok := requirePrincipal(c)
	if !ok {
		return
	}

	if err := h.markAllReadUseCase.Execute(c.Request.Context(), p); err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "all notifications marked read", nil)
}
