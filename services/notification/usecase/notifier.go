// Package usecase merges server notifications with ones synthesized client
// side, currently only the login greeting.
package usecase

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/viebus/viebus/internal/pkg/constants"
	"github.com/viebus/viebus/internal/pkg/events"
	"github.com/viebus/viebus/internal/pkg/models"
	"github.com/viebus/viebus/services/notification"
)

// Notifier serves the notification bell: listing, unread count and read
// acknowledgments. Local notifications carry negative ids so they can never
// collide with server ids.
type Notifier struct {
	gw notification.NotificationGW

	mu     sync.Mutex
	local  []models.Notification
	nextID int64
}

// NewNotifier creates a notifier and subscribes it to the login signal.
func NewNotifier(gw notification.NotificationGW, bus *events.Bus) *Notifier {
	n := &Notifier{gw: gw, nextID: -1}

	bus.Subscribe(constants.TopicUserLoggedIn, func(payload interface{}) {
		if e, ok := payload.(models.UserLoggedInEvent); ok {
			n.addWelcome(e.Username)
		}
	})
	bus.Subscribe(constants.TopicUserLoggedOut, func(interface{}) {
		n.Reset()
	})

	return n
}

// addWelcome synthesizes the greeting shown right after login.
func (n *Notifier) addWelcome(username string) {
	n.mu.Lock()
	defer n.mu.Unlock()

	n.local = append([]models.Notification{{
		ID:        n.nextID,
		Title:     "Chào mừng trở lại!",
		Message:   fmt.Sprintf("Xin chào %s, chúc bạn một chuyến đi vui vẻ.", username),
		Category:  "greeting",
		CreatedAt: time.Now(),
	}}, n.local...)
	n.nextID--
}

// List returns local notifications first, then the server's list. A logged
// out caller still sees local notifications (there are none after Reset).
func (n *Notifier) List(ctx context.Context) ([]models.Notification, error) {
	remote, err := n.gw.ListNotifications(ctx)
	if err != nil {
		return nil, err
	}

	n.mu.Lock()
	defer n.mu.Unlock()
	out := make([]models.Notification, 0, len(n.local)+len(remote))
	out = append(out, n.local...)
	out = append(out, remote...)
	return out, nil
}

// Unread sums the server's unread count with unread local notifications.
func (n *Notifier) Unread(ctx context.Context) (int, error) {
	count, err := n.gw.UnreadCount(ctx)
	if err != nil {
		return 0, err
	}

	n.mu.Lock()
	defer n.mu.Unlock()
	for _, ln := range n.local {
		if !ln.IsRead {
			count++
		}
	}
	return count, nil
}

// MarkRead acknowledges one notification. Negative ids are local and
// flipped in place; server ids go to the API.
func (n *Notifier) MarkRead(ctx context.Context, id int64) error {
	if id < 0 {
		n.mu.Lock()
		defer n.mu.Unlock()
		for i := range n.local {
			if n.local[i].ID == id {
				n.local[i].IsRead = true
				return nil
			}
		}
		return nil
	}
	return n.gw.MarkNotificationRead(ctx, id)
}

// MarkAllRead acknowledges everything, local and remote.
func (n *Notifier) MarkAllRead(ctx context.Context) error {
	n.mu.Lock()
	for i := range n.local {
		n.local[i].IsRead = true
	}
	n.mu.Unlock()

	return n.gw.MarkAllNotificationsRead(ctx)
}

// Reset drops local notifications, called on logout.
func (n *Notifier) Reset() {
	n.mu.Lock()
	defer n.mu.Unlock()
	n.local = nil
	n.nextID = -1
}
