package services

import (
	"testing"
	"time"

	"github.com/codehubhq/codehub-backend/internal/database"
	"github.com/codehubhq/codehub-backend/internal/models"
	"github.com/glebarez/sqlite"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// newTestDB returns a fresh in-memory database with the full schema. One
// connection only, so every query in a test sees the same memory store.
func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)

	sqlDB, err := db.DB()
	require.NoError(t, err)
	sqlDB.SetMaxOpenConns(1)

	require.NoError(t, db.AutoMigrate(database.AllModels()...))
	return db
}

func seedUser(t *testing.T, db *gorm.DB, name string) models.User {
	t.Helper()

	user := models.User{
		Name:     name,
		Email:    name + "@example.com",
		Password: "not-a-real-hash",
	}
	require.NoError(t, db.Create(&user).Error)
	return user
}

func seedSnippet(t *testing.T, db *gorm.DB, author models.User, title string, createdAt time.Time) models.Snippet {
	t.Helper()

	snippet := models.Snippet{
		Title:     title,
		Code:      "console.log('hi')",
		Language:  "javascript",
		AuthorID:  author.ID,
		CreatedAt: createdAt,
	}
	require.NoError(t, db.Create(&snippet).Error)
	return snippet
}

func seedDocument(t *testing.T, db *gorm.DB, author models.User, title string) models.Document {
	t.Helper()

	doc := models.Document{
		Title:    title,
		Slug:     slugify(title),
		Content:  "# " + title,
		Tags:     tagsJSON(""),
		AuthorID: author.ID,
	}
	require.NoError(t, db.Create(&doc).Error)
	return doc
}
