package repository

import (
	"context"
	"testing"

	"github.com/shenikar/ciudad_activa/internal/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newNotificationRepo(t *testing.T) *NotificationRepository {
	return NewNotificationRepository(newTestDB(t)).(*NotificationRepository)
}

func createTestNotification(t *testing.T, repo *NotificationRepository, title string) *models.Notification {
	t.Helper()
	n := &models.Notification{Type: models.NotificationTypeSystem, Title: title, Message: "mensaje"}
	require.NoError(t, repo.Create(context.Background(), n))
	return n
}

func getTestNotification(t *testing.T, repo *NotificationRepository, id int64) *models.Notification {
	t.Helper()
	all, err := repo.List(context.Background(), 100, false)
	require.NoError(t, err)
	for _, n := range all {
		if n.ID == id {
			return n
		}
	}
	require.FailNow(t, "notification not found", "id %d", id)
	return nil
}

func TestNotificationRepository_MarkAsReadKeepsFirstTimestamp(t *testing.T) {
	repo := newNotificationRepo(t)
	ctx := context.Background()
	n := createTestNotification(t, repo, "primera")

	require.NoError(t, repo.MarkAsRead(ctx, n.ID))
	first := getTestNotification(t, repo, n.ID).ReadAt
	require.NotNil(t, first)

	require.NoError(t, repo.MarkAsRead(ctx, n.ID))
	second := getTestNotification(t, repo, n.ID).ReadAt
	require.NotNil(t, second)
	assert.True(t, first.Equal(*second), "read_at changed from %s to %s", first, second)
}

func TestNotificationRepository_MarkAsReadNotFound(t *testing.T) {
	repo := newNotificationRepo(t)

	err := repo.MarkAsRead(context.Background(), 9999)
	assert.ErrorIs(t, err, models.ErrNotFound)
}

func TestNotificationRepository_MarkAllAsRead(t *testing.T) {
	repo := newNotificationRepo(t)
	ctx := context.Background()
	alreadyRead := createTestNotification(t, repo, "leida")
	createTestNotification(t, repo, "nueva 1")
	createTestNotification(t, repo, "nueva 2")

	require.NoError(t, repo.MarkAsRead(ctx, alreadyRead.ID))
	readAt := getTestNotification(t, repo, alreadyRead.ID).ReadAt
	require.NotNil(t, readAt)

	marked, err := repo.MarkAllAsRead(ctx)
	require.NoError(t, err)
	assert.Equal(t, int64(2), marked)

	after := getTestNotification(t, repo, alreadyRead.ID).ReadAt
	require.NotNil(t, after)
	assert.True(t, readAt.Equal(*after), "read_at of an already read row changed")

	unread, err := repo.CountUnread(ctx)
	require.NoError(t, err)
	assert.Zero(t, unread)

	marked, err = repo.MarkAllAsRead(ctx)
	require.NoError(t, err)
	assert.Zero(t, marked)
}

func TestNotificationRepository_ListUnreadOnly(t *testing.T) {
	repo := newNotificationRepo(t)
	ctx := context.Background()
	read := createTestNotification(t, repo, "leida")
	unread := createTestNotification(t, repo, "nueva")
	require.NoError(t, repo.MarkAsRead(ctx, read.ID))

	got, err := repo.List(ctx, 10, true)
	require.NoError(t, err)
	require.Len(t, got, 1)
	assert.Equal(t, unread.ID, got[0].ID)

	got, err = repo.List(ctx, 10, false)
	require.NoError(t, err)
	require.Len(t, got, 2)
	assert.Equal(t, unread.ID, got[0].ID, "newest first")
}
