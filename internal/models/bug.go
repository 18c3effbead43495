package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Bug status values.
const (
	BugStatusOpen       = "open"
	BugStatusInProgress = "in_progress"
	BugStatusResolved   = "resolved"
)

// Bug is a short report that other users can upvote.
type Bug struct {
	ID        uuid.UUID      `gorm:"type:uuid;primaryKey" json:"id"`
	Content   string         `gorm:"type:text;not null" json:"content"`
	Status    string         `gorm:"size:20;not null;default:'open'" json:"status"`
	AuthorID  uuid.UUID      `gorm:"type:uuid;not null;index" json:"author_id"`
	CreatedAt time.Time      `gorm:"index" json:"created_at"`
	UpdatedAt time.Time      `json:"updated_at"`
	DeletedAt gorm.DeletedAt `gorm:"index" json:"-"`
	Author    User           `gorm:"foreignKey:AuthorID" json:"-"`
}

func (b *Bug) BeforeCreate(*gorm.DB) error {
	if b.ID == uuid.Nil {
		b.ID = uuid.New()
	}
	return nil
}

type BugUpvote struct {
	ID        uuid.UUID `gorm:"type:uuid;primaryKey" json:"id"`
	UserID    uuid.UUID `gorm:"type:uuid;not null;uniqueIndex:idx_bug_upvotes_user_bug" json:"user_id"`
	BugID     uuid.UUID `gorm:"type:uuid;not null;uniqueIndex:idx_bug_upvotes_user_bug;index" json:"bug_id"`
	CreatedAt time.Time `json:"created_at"`
}

func (u *BugUpvote) BeforeCreate(*gorm.DB) error {
	if u.ID == uuid.Nil {
		u.ID = uuid.New()
	}
	return nil
}
