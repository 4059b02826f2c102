package api

import (
	"context"
	"fmt"
	"net/http"

	"github.com/viebus/viebus/internal/pkg/models"
)

// ListNotifications lists the caller's notifications, newest first.
func (c *Client) ListNotifications(ctx context.Context) ([]models.Notification, error) {
	var notifications []models.Notification
	if err := c.Request(ctx, http.MethodGet, "/notifications/", nil, &notifications); err != nil {
		return nil, err
	}
	return notifications, nil
}

// UnreadCount returns the number of unread notifications.
func (c *Client) UnreadCount(ctx context.Context) (int, error) {
	var resp models.UnreadCountResponse
	if err := c.Request(ctx, http.MethodGet, "/notifications/unread-count/", nil, &resp); err != nil {
		return 0, err
	}
	return resp.Count, nil
}

// MarkNotificationRead acknowledges one notification.
func (c *Client) MarkNotificationRead(ctx context.Context, id int64) error {
	path := fmt.Sprintf("/notifications/%d/read/", id)
	return c.Request(ctx, http.MethodPost, path, nil, nil)
}

// MarkAllNotificationsRead acknowledges every unread notification.
func (c *Client) MarkAllNotificationsRead(ctx context.Context) error {
	return c.Request(ctx, http.MethodPost, "/notifications/mark-all-read/", nil, nil)
}
