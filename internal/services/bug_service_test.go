package services

import (
	"strings"
	"testing"
	"time"

	"github.com/codehubhq/codehub-backend/internal/models"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

func seedBug(t *testing.T, db *gorm.DB, author models.User, content string, createdAt time.Time) models.Bug {
	t.Helper()

	bug := models.Bug{
		Content:   content,
		Status:    models.BugStatusOpen,
		AuthorID:  author.ID,
		CreatedAt: createdAt,
	}
	require.NoError(t, db.Create(&bug).Error)
	return bug
}

func TestBugCreateLengthBounds(t *testing.T) {
	db := newTestDB(t)
	svc := NewBugService(db)
	author := seedUser(t, db, "alice")

	_, err := svc.Create(author.ID, "too short")
	assert.Error(t, err)

	_, err = svc.Create(author.ID, strings.Repeat("x", 1001))
	assert.Error(t, err)

	bug, err := svc.Create(author.ID, "  the save button is broken on mobile  ")
	require.NoError(t, err)
	assert.Equal(t, "the save button is broken on mobile", bug.Content)
	assert.Equal(t, models.BugStatusOpen, bug.Status)
}

func TestBugListNewestFirstWithUpvotes(t *testing.T) {
	db := newTestDB(t)
	svc := NewBugService(db)
	author := seedUser(t, db, "alice")
	viewer := seedUser(t, db, "bob")

	old := seedBug(t, db, author, "older report with details", time.Now().Add(-time.Hour))
	recent := seedBug(t, db, author, "newer report with details", time.Now())

	_, err := svc.ToggleUpvote(viewer.ID, old.ID)
	require.NoError(t, err)

	bugs, err := svc.List(&viewer.ID)
	require.NoError(t, err)
	require.Len(t, bugs, 2)
	assert.Equal(t, recent.ID, bugs[0].ID)
	assert.Equal(t, old.ID, bugs[1].ID)
	assert.Equal(t, int64(1), bugs[1].UpvotesCount)
	assert.True(t, bugs[1].IsUpvoted)
	assert.False(t, bugs[0].IsUpvoted)

	// Anonymous sees the same counts with flags off.
	bugs, err = svc.List(nil)
	require.NoError(t, err)
	assert.Equal(t, int64(1), bugs[1].UpvotesCount)
	assert.False(t, bugs[1].IsUpvoted)
}

func TestBugToggleUpvoteIsInvolution(t *testing.T) {
	db := newTestDB(t)
	svc := NewBugService(db)
	author := seedUser(t, db, "alice")
	viewer := seedUser(t, db, "bob")
	bug := seedBug(t, db, author, "a reproducible crash on login", time.Now())

	up, err := svc.ToggleUpvote(viewer.ID, bug.ID)
	require.NoError(t, err)
	assert.True(t, up)

	up, err = svc.ToggleUpvote(viewer.ID, bug.ID)
	require.NoError(t, err)
	assert.False(t, up)

	var rows int64
	require.NoError(t, db.Model(&models.BugUpvote{}).Count(&rows).Error)
	assert.Zero(t, rows)

	// Upvotes never notify anyone.
	var notifs int64
	require.NoError(t, db.Model(&models.Notification{}).Count(&notifs).Error)
	assert.Zero(t, notifs)
}

func TestBugUpdateStatusAuthorOnly(t *testing.T) {
	db := newTestDB(t)
	svc := NewBugService(db)
	author := seedUser(t, db, "alice")
	intruder := seedUser(t, db, "mallory")
	bug := seedBug(t, db, author, "the feed skips a page sometimes", time.Now())

	_, err := svc.UpdateStatus(intruder.ID, bug.ID, models.BugStatusResolved)
	assert.ErrorIs(t, err, ErrNotAuthorized)

	_, err = svc.UpdateStatus(author.ID, uuid.New(), models.BugStatusResolved)
	assert.ErrorIs(t, err, ErrNotAuthorized)

	_, err = svc.UpdateStatus(author.ID, bug.ID, "wontfix")
	assert.Error(t, err)

	updated, err := svc.UpdateStatus(author.ID, bug.ID, models.BugStatusInProgress)
	require.NoError(t, err)
	assert.Equal(t, models.BugStatusInProgress, updated.Status)
}
