// Package http exposes the notification bell endpoints.
package http

import (
	"net/http"
	"strconv"

	"github.com/labstack/echo/v4"
	"github.com/viebus/viebus/internal/utils"
	"github.com/viebus/viebus/services/notification/usecase"
)

// NotificationHandler handles HTTP requests for notifications
type NotificationHandler struct {
	notifier *usecase.Notifier
}

// NewNotificationHandler creates a new notification handler
func NewNotificationHandler(notifier *usecase.Notifier) *NotificationHandler {
	return &NotificationHandler{notifier: notifier}
}

// List returns local notifications followed by the server's list
func (h *NotificationHandler) List(c echo.Context) error {
	notifications, err := h.notifier.List(c.Request().Context())
	if err != nil {
		return utils.UpstreamErrorResponse(c, err)
	}
	return utils.SuccessResponse(c, http.StatusOK, "", notifications)
}

// UnreadCount returns the combined unread count
func (h *NotificationHandler) UnreadCount(c echo.Context) error {
	count, err := h.notifier.Unread(c.Request().Context())
	if err != nil {
		return utils.UpstreamErrorResponse(c, err)
	}
	return utils.SuccessResponse(c, http.StatusOK, "", map[string]int{"count": count})
}

// MarkRead acknowledges one notification
func (h *NotificationHandler) MarkRead(c echo.Context) error {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		return utils.BadRequestResponse(c, "Invalid notification id")
	}

	if err := h.notifier.MarkRead(c.Request().Context(), id); err != nil {
		return utils.UpstreamErrorResponse(c, err)
	}
	return utils.SuccessResponse(c, http.StatusOK, "Notification marked read", nil)
}

// MarkAllRead acknowledges every notification
func (h *NotificationHandler) MarkAllRead(c echo.Context) error {
	if err := h.notifier.MarkAllRead(c.Request().Context()); err != nil {
		return utils.UpstreamErrorResponse(c, err)
	}
	return utils.SuccessResponse(c, http.StatusOK, "All notifications marked read", nil)
}
