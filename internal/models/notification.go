package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Notification types.
const (
	NotificationTypeLike    = "LIKE"
	NotificationTypeComment = "COMMENT"
	NotificationTypeFollow  = "FOLLOW"
)

// Notification is created as a side effect of like/comment/follow, never
// for self-targeted actions, and is only ever mutated by a bulk mark-read.
type Notification struct {
	ID           uuid.UUID `gorm:"type:uuid;primaryKey" json:"id"`
	RecipientID  uuid.UUID `gorm:"type:uuid;not null;index" json:"recipient_id"`
	OriginatorID uuid.UUID `gorm:"type:uuid;not null" json:"originator_id"`
	Type         string    `gorm:"size:20;not null" json:"type"`
	Link         string    `gorm:"size:500" json:"link"`
	Read         bool      `gorm:"default:false" json:"read"`
	CreatedAt    time.Time `gorm:"index" json:"created_at"`
	Recipient    User      `gorm:"foreignKey:RecipientID" json:"-"`
	Originator   User      `gorm:"foreignKey:OriginatorID" json:"-"`
}

func (n *Notification) BeforeCreate(*gorm.DB) error {
	if n.ID == uuid.Nil {
		n.ID = uuid.New()
	}
	return nil
}
