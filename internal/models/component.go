package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Component is a shared UI component listed in the marketplace, addressed
// by slug like documents.
type Component struct {
	ID          uuid.UUID      `gorm:"type:uuid;primaryKey" json:"id"`
	Name        string         `gorm:"size:200;not null" json:"name"`
	Slug        string         `gorm:"size:220;not null;uniqueIndex" json:"slug"`
	Description string         `gorm:"type:text" json:"description"`
	Code        string         `gorm:"type:text;not null" json:"code"`
	AuthorID    uuid.UUID      `gorm:"type:uuid;not null;index" json:"author_id"`
	CreatedAt   time.Time      `gorm:"index" json:"created_at"`
	UpdatedAt   time.Time      `json:"updated_at"`
	DeletedAt   gorm.DeletedAt `gorm:"index" json:"-"`
	Author      User           `gorm:"foreignKey:AuthorID" json:"-"`
}

func (c *Component) BeforeCreate(*gorm.DB) error {
	if c.ID == uuid.Nil {
		c.ID = uuid.New()
	}
	return nil
}
