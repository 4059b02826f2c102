package notification

import (
	"context"

	"github.com/viebus/viebus/internal/pkg/models"
)

// NotificationGW is the slice of the API client the notifier depends on.
type NotificationGW interface {
	ListNotifications(ctx context.Context) ([]models.Notification, error)
	UnreadCount(ctx context.Context) (int, error)
	MarkNotificationRead(ctx context.Context, id int64) error
	MarkAllNotificationsRead(ctx context.Context) error
}
