package services

import (
	"testing"

	"github.com/codehubhq/codehub-backend/internal/dto"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestComponentCreateAndGetBySlug(t *testing.T) {
	db := newTestDB(t)
	svc := NewComponentService(db)
	author := seedUser(t, db, "alice")

	created, err := svc.Create(author.ID, &dto.CreateComponentRequest{
		Name:        "Gradient Button",
		Description: "a button with a gradient background",
		Code:        "<button class=\"gradient\">Click</button>",
	})
	require.NoError(t, err)
	assert.Equal(t, "gradient-button", created.Slug)

	got, err := svc.GetBySlug("gradient-button")
	require.NoError(t, err)
	assert.Equal(t, created.ID, got.ID)
	assert.Equal(t, "alice", got.Author.Name)

	_, err = svc.GetBySlug("missing")
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestComponentCreateValidation(t *testing.T) {
	db := newTestDB(t)
	svc := NewComponentService(db)
	author := seedUser(t, db, "alice")

	_, err := svc.Create(author.ID, &dto.CreateComponentRequest{Name: "", Code: "x"})
	assert.Error(t, err)

	_, err = svc.Create(author.ID, &dto.CreateComponentRequest{Name: "ok", Code: " "})
	assert.Error(t, err)

	req := &dto.CreateComponentRequest{Name: "Card", Code: "<div/>"}
	_, err = svc.Create(author.ID, req)
	require.NoError(t, err)

	_, err = svc.Create(author.ID, req)
	assert.Error(t, err)
}

func TestComponentListPages(t *testing.T) {
	db := newTestDB(t)
	svc := NewComponentService(db)
	author := seedUser(t, db, "alice")

	names := []string{"Alpha", "Beta", "Gamma"}
	for _, n := range names {
		_, err := svc.Create(author.ID, &dto.CreateComponentRequest{Name: n, Code: "<div/>"})
		require.NoError(t, err)
	}

	page0, hasMore, err := svc.List(0, 2)
	require.NoError(t, err)
	assert.Len(t, page0, 2)
	assert.True(t, hasMore)

	page1, hasMore, err := svc.List(1, 2)
	require.NoError(t, err)
	assert.Len(t, page1, 1)
	assert.False(t, hasMore)
}

func TestFetchPageClampsBadInput(t *testing.T) {
	db := newTestDB(t)
	svc := NewComponentService(db)
	author := seedUser(t, db, "alice")

	_, err := svc.Create(author.ID, &dto.CreateComponentRequest{Name: "Solo", Code: "<div/>"})
	require.NoError(t, err)

	items, hasMore, err := svc.List(-3, -1)
	require.NoError(t, err)
	assert.Len(t, items, 1)
	assert.False(t, hasMore)
}
