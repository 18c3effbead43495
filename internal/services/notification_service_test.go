package services

import (
	"fmt"
	"testing"
	"time"

	"github.com/codehubhq/codehub-backend/internal/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNotifySelfIsNoOp(t *testing.T) {
	db := newTestDB(t)
	svc := NewNotificationService(db)
	alice := seedUser(t, db, "alice")

	require.NoError(t, svc.Notify(db, alice.ID, alice.ID, models.NotificationTypeLike, "/snippets/x"))

	var count int64
	require.NoError(t, db.Model(&models.Notification{}).Count(&count).Error)
	assert.Zero(t, count)
}

func TestNotificationListCapsAtTwentyWithFullUnreadCount(t *testing.T) {
	db := newTestDB(t)
	svc := NewNotificationService(db)
	alice := seedUser(t, db, "alice")
	bob := seedUser(t, db, "bob")

	base := time.Now().Add(-time.Hour)
	for i := 0; i < 25; i++ {
		notif := models.Notification{
			RecipientID:  alice.ID,
			OriginatorID: bob.ID,
			Type:         models.NotificationTypeLike,
			Link:         fmt.Sprintf("/snippets/%d", i),
			CreatedAt:    base.Add(time.Duration(i) * time.Minute),
		}
		require.NoError(t, db.Create(&notif).Error)
	}

	list, err := svc.List(alice.ID)
	require.NoError(t, err)
	assert.Len(t, list.Notifications, 20)
	assert.Equal(t, int64(25), list.UnreadCount)

	// Newest first, originator attached.
	assert.Equal(t, "/snippets/24", list.Notifications[0].Link)
	assert.Equal(t, bob.ID, list.Notifications[0].Originator.ID)
	assert.Equal(t, "bob", list.Notifications[0].Originator.Name)
}

func TestMarkAllReadOnlyTouchesRecipient(t *testing.T) {
	db := newTestDB(t)
	svc := NewNotificationService(db)
	alice := seedUser(t, db, "alice")
	bob := seedUser(t, db, "bob")

	require.NoError(t, svc.Notify(db, alice.ID, bob.ID, models.NotificationTypeFollow, "/profile/x"))
	require.NoError(t, svc.Notify(db, bob.ID, alice.ID, models.NotificationTypeFollow, "/profile/y"))

	require.NoError(t, svc.MarkAllRead(alice.ID))

	list, err := svc.List(alice.ID)
	require.NoError(t, err)
	assert.Zero(t, list.UnreadCount)
	require.Len(t, list.Notifications, 1)
	assert.True(t, list.Notifications[0].Read)

	list, err = svc.List(bob.ID)
	require.NoError(t, err)
	assert.Equal(t, int64(1), list.UnreadCount)
}
