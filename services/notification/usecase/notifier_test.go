package usecase

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/viebus/viebus/internal/pkg/constants"
	"github.com/viebus/viebus/internal/pkg/events"
	"github.com/viebus/viebus/internal/pkg/models"
)

type fakeNotificationGW struct {
	notifications []models.Notification
	unread        int

	markedRead []int64
	markedAll  int
}

func (f *fakeNotificationGW) ListNotifications(ctx context.Context) ([]models.Notification, error) {
	return f.notifications, nil
}

func (f *fakeNotificationGW) UnreadCount(ctx context.Context) (int, error) {
	return f.unread, nil
}

func (f *fakeNotificationGW) MarkNotificationRead(ctx context.Context, id int64) error {
	f.markedRead = append(f.markedRead, id)
	return nil
}

func (f *fakeNotificationGW) MarkAllNotificationsRead(ctx context.Context) error {
	f.markedAll++
	return nil
}

func login(bus *events.Bus, username string) {
	bus.Publish(constants.TopicUserLoggedIn, models.UserLoggedInEvent{Username: username})
}

func TestLoginSynthesizesWelcomeNotification(t *testing.T) {
	gw := &fakeNotificationGW{notifications: []models.Notification{{ID: 100, Title: "Khuyến mãi"}}}
	bus := events.NewBus()
	n := NewNotifier(gw, bus)

	login(bus, "alice")

	list, err := n.List(context.Background())
	require.NoError(t, err)
	require.Len(t, list, 2)

	// Local greeting first, server list after.
	assert.Equal(t, int64(-1), list[0].ID)
	assert.Contains(t, list[0].Message, "alice")
	assert.False(t, list[0].IsRead)
	assert.Equal(t, int64(100), list[1].ID)
}

func TestLocalIDsNeverCollide(t *testing.T) {
	bus := events.NewBus()
	n := NewNotifier(&fakeNotificationGW{}, bus)

	login(bus, "alice")
	login(bus, "alice")

	list, err := n.List(context.Background())
	require.NoError(t, err)
	require.Len(t, list, 2)
	assert.Equal(t, int64(-2), list[0].ID, "newest greeting first")
	assert.Equal(t, int64(-1), list[1].ID)
}

func TestUnreadSumsServerAndLocal(t *testing.T) {
	gw := &fakeNotificationGW{unread: 3}
	bus := events.NewBus()
	n := NewNotifier(gw, bus)

	login(bus, "alice")

	count, err := n.Unread(context.Background())
	require.NoError(t, err)
	assert.Equal(t, 4, count)

	require.NoError(t, n.MarkRead(context.Background(), -1))
	count, err = n.Unread(context.Background())
	require.NoError(t, err)
	assert.Equal(t, 3, count)
	assert.Empty(t, gw.markedRead, "local acks never reach the API")
}

func TestMarkReadRoutesServerIDsToGateway(t *testing.T) {
	gw := &fakeNotificationGW{}
	n := NewNotifier(gw, events.NewBus())

	require.NoError(t, n.MarkRead(context.Background(), 100))
	assert.Equal(t, []int64{100}, gw.markedRead)
}

func TestMarkAllReadCoversLocalAndRemote(t *testing.T) {
	gw := &fakeNotificationGW{}
	bus := events.NewBus()
	n := NewNotifier(gw, bus)

	login(bus, "alice")
	require.NoError(t, n.MarkAllRead(context.Background()))
	assert.Equal(t, 1, gw.markedAll)

	list, err := n.List(context.Background())
	require.NoError(t, err)
	require.Len(t, list, 1)
	assert.True(t, list[0].IsRead)
}

func TestLogoutDropsLocalNotifications(t *testing.T) {
	bus := events.NewBus()
	n := NewNotifier(&fakeNotificationGW{}, bus)

	login(bus, "alice")
	bus.Publish(constants.TopicUserLoggedOut, nil)

	list, err := n.List(context.Background())
	require.NoError(t, err)
	assert.Empty(t, list)

	// The id sequence restarts for the next session.
	login(bus, "bob")
	list, err = n.List(context.Background())
	require.NoError(t, err)
	require.Len(t, list, 1)
	assert.Equal(t, int64(-1), list[0].ID)
}
