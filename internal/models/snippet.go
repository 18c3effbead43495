package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Snippet is an author-owned code snippet.
type Snippet struct {
	ID          uuid.UUID      `gorm:"type:uuid;primaryKey" json:"id"`
	Title       string         `gorm:"size:200;not null" json:"title"`
	Description string         `gorm:"type:text" json:"description"`
	Code        string         `gorm:"type:text;not null" json:"code"`
	Language    string         `gorm:"size:50;not null" json:"language"`
	AuthorID    uuid.UUID      `gorm:"type:uuid;not null;index" json:"author_id"`
	CreatedAt   time.Time      `gorm:"index" json:"created_at"`
	UpdatedAt   time.Time      `json:"updated_at"`
	DeletedAt   gorm.DeletedAt `gorm:"index" json:"-"`
	Author      User           `gorm:"foreignKey:AuthorID" json:"-"`
}

func (s *Snippet) BeforeCreate(*gorm.DB) error {
	if s.ID == uuid.Nil {
		s.ID = uuid.New()
	}
	return nil
}

// SnippetLike records a user liking a snippet. The (user, snippet) pair
// is unique; presence of a row means "liked".
type SnippetLike struct {
	ID        uuid.UUID `gorm:"type:uuid;primaryKey" json:"id"`
	UserID    uuid.UUID `gorm:"type:uuid;not null;uniqueIndex:idx_snippet_likes_user_snippet" json:"user_id"`
	SnippetID uuid.UUID `gorm:"type:uuid;not null;uniqueIndex:idx_snippet_likes_user_snippet;index" json:"snippet_id"`
	CreatedAt time.Time `json:"created_at"`
}

func (l *SnippetLike) BeforeCreate(*gorm.DB) error {
	if l.ID == uuid.Nil {
		l.ID = uuid.New()
	}
	return nil
}

// SnippetSave records a user bookmarking a snippet, unique per pair.
type SnippetSave struct {
	ID        uuid.UUID `gorm:"type:uuid;primaryKey" json:"id"`
	UserID    uuid.UUID `gorm:"type:uuid;not null;uniqueIndex:idx_snippet_saves_user_snippet;index" json:"user_id"`
	SnippetID uuid.UUID `gorm:"type:uuid;not null;uniqueIndex:idx_snippet_saves_user_snippet;index" json:"snippet_id"`
	CreatedAt time.Time `gorm:"index" json:"created_at"`
}

func (s *SnippetSave) BeforeCreate(*gorm.DB) error {
	if s.ID == uuid.Nil {
		s.ID = uuid.New()
	}
	return nil
}

// SnippetComment is immutable once created and listed newest first.
type SnippetComment struct {
	ID        uuid.UUID `gorm:"type:uuid;primaryKey" json:"id"`
	Content   string    `gorm:"type:text;not null" json:"content"`
	SnippetID uuid.UUID `gorm:"type:uuid;not null;index" json:"snippet_id"`
	AuthorID  uuid.UUID `gorm:"type:uuid;not null" json:"author_id"`
	CreatedAt time.Time `json:"created_at"`
	Author    User      `gorm:"foreignKey:AuthorID" json:"-"`
}

func (c *SnippetComment) BeforeCreate(*gorm.DB) error {
	if c.ID == uuid.Nil {
		c.ID = uuid.New()
	}
	return nil
}
