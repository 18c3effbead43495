package services

import (
	"testing"
	"time"

	"github.com/codehubhq/codehub-backend/internal/dto"
	"github.com/codehubhq/codehub-backend/internal/models"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

func newUserService(db *gorm.DB) *UserService {
	return NewUserService(db, NewNotificationService(db))
}

func TestToggleFollowIsInvolution(t *testing.T) {
	db := newTestDB(t)
	svc := newUserService(db)
	alice := seedUser(t, db, "alice")
	bob := seedUser(t, db, "bob")

	following, err := svc.ToggleFollow(alice.ID, bob.ID)
	require.NoError(t, err)
	assert.True(t, following)

	following, err = svc.ToggleFollow(alice.ID, bob.ID)
	require.NoError(t, err)
	assert.False(t, following)

	var rows int64
	require.NoError(t, db.Model(&models.Follow{}).Count(&rows).Error)
	assert.Zero(t, rows)
}

func TestToggleFollowRejectsSelf(t *testing.T) {
	db := newTestDB(t)
	svc := newUserService(db)
	alice := seedUser(t, db, "alice")

	_, err := svc.ToggleFollow(alice.ID, alice.ID)
	assert.ErrorIs(t, err, ErrSelfFollow)
}

func TestToggleFollowMissingTarget(t *testing.T) {
	db := newTestDB(t)
	svc := newUserService(db)
	alice := seedUser(t, db, "alice")

	_, err := svc.ToggleFollow(alice.ID, uuid.New())
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestToggleFollowNotifiesTarget(t *testing.T) {
	db := newTestDB(t)
	svc := newUserService(db)
	alice := seedUser(t, db, "alice")
	bob := seedUser(t, db, "bob")

	_, err := svc.ToggleFollow(alice.ID, bob.ID)
	require.NoError(t, err)

	var notif models.Notification
	require.NoError(t, db.First(&notif).Error)
	assert.Equal(t, bob.ID, notif.RecipientID)
	assert.Equal(t, alice.ID, notif.OriginatorID)
	assert.Equal(t, models.NotificationTypeFollow, notif.Type)
	assert.Equal(t, "/profile/"+alice.ID.String(), notif.Link)
}

func TestListUsersExcludesViewerAndMatchesName(t *testing.T) {
	db := newTestDB(t)
	svc := newUserService(db)
	alice := seedUser(t, db, "alice")
	seedUser(t, db, "bob")
	seedUser(t, db, "bobby")

	users, err := svc.ListUsers(&alice.ID, "")
	require.NoError(t, err)
	assert.Len(t, users, 2)
	for _, u := range users {
		assert.NotEqual(t, alice.ID, u.ID)
	}

	users, err = svc.ListUsers(&alice.ID, "BOB")
	require.NoError(t, err)
	assert.Len(t, users, 2)

	users, err = svc.ListUsers(&alice.ID, "bobby")
	require.NoError(t, err)
	require.Len(t, users, 1)
	assert.Equal(t, "bobby", users[0].Name)
}

func TestListUsersAnnotatesFollowState(t *testing.T) {
	db := newTestDB(t)
	svc := newUserService(db)
	alice := seedUser(t, db, "alice")
	bob := seedUser(t, db, "bob")
	carol := seedUser(t, db, "carol")

	_, err := svc.ToggleFollow(alice.ID, bob.ID)
	require.NoError(t, err)
	_, err = svc.ToggleFollow(carol.ID, bob.ID)
	require.NoError(t, err)

	users, err := svc.ListUsers(&alice.ID, "")
	require.NoError(t, err)

	byName := map[string]dto.CommunityUserResponse{}
	for _, u := range users {
		byName[u.Name] = u
	}
	assert.Equal(t, int64(2), byName["bob"].FollowersCount)
	assert.True(t, byName["bob"].IsFollowing)
	assert.Zero(t, byName["carol"].FollowersCount)
	assert.False(t, byName["carol"].IsFollowing)
}

func TestGetProfileCounts(t *testing.T) {
	db := newTestDB(t)
	svc := newUserService(db)
	alice := seedUser(t, db, "alice")
	bob := seedUser(t, db, "bob")
	carol := seedUser(t, db, "carol")

	seedSnippet(t, db, alice, "one", time.Now())
	seedSnippet(t, db, alice, "two", time.Now())
	seedDocument(t, db, alice, "A Doc")

	_, err := svc.ToggleFollow(bob.ID, alice.ID)
	require.NoError(t, err)
	_, err = svc.ToggleFollow(carol.ID, alice.ID)
	require.NoError(t, err)
	_, err = svc.ToggleFollow(alice.ID, bob.ID)
	require.NoError(t, err)

	profile, err := svc.GetProfile(&bob.ID, alice.ID)
	require.NoError(t, err)
	assert.Equal(t, int64(2), profile.SnippetsCount)
	assert.Equal(t, int64(1), profile.DocumentsCount)
	assert.Equal(t, int64(2), profile.FollowersCount)
	assert.Equal(t, int64(1), profile.FollowingCount)
	assert.True(t, profile.IsFollowing)

	// Own profile never reports a follow state.
	profile, err = svc.GetProfile(&alice.ID, alice.ID)
	require.NoError(t, err)
	assert.False(t, profile.IsFollowing)
}

func TestGetProfileMissingUser(t *testing.T) {
	db := newTestDB(t)
	svc := newUserService(db)

	_, err := svc.GetProfile(nil, uuid.New())
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestUpdateProfile(t *testing.T) {
	db := newTestDB(t)
	svc := newUserService(db)
	alice := seedUser(t, db, "alice")

	_, err := svc.UpdateProfile(alice.ID, &dto.UpdateProfileRequest{Name: "  "})
	assert.Error(t, err)

	profile, err := svc.UpdateProfile(alice.ID, &dto.UpdateProfileRequest{
		Name: "  Alice L.  ",
		Bio:  "gopher",
	})
	require.NoError(t, err)
	assert.Equal(t, "Alice L.", profile.Name)
	assert.Equal(t, "gopher", profile.Bio)
}
