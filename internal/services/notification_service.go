package services

import (
	"github.com/codehubhq/codehub-backend/internal/dto"
	"github.com/codehubhq/codehub-backend/internal/models"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

// NotificationService owns the single rule about notification creation:
// no notification is ever generated for self-targeted actions.
type NotificationService struct {
	db *gorm.DB
}

func NewNotificationService(db *gorm.DB) *NotificationService {
	return &NotificationService{db: db}
}

// Notify records a notification inside the caller's transaction. A no-op
// when originator and recipient are the same user.
func (s *NotificationService) Notify(tx *gorm.DB, recipientID, originatorID uuid.UUID, notifType, link string) error {
	if recipientID == originatorID {
		return nil
	}
	return tx.Create(&models.Notification{
		RecipientID:  recipientID,
		OriginatorID: originatorID,
		Type:         notifType,
		Link:         link,
	}).Error
}

// List returns the recipient's 20 most recent notifications plus the
// total unread count.
func (s *NotificationService) List(userID uuid.UUID) (*dto.NotificationListResponse, error) {
	var notifications []models.Notification
	err := s.db.Preload("Originator").
		Where("recipient_id = ?", userID).
		Order("created_at DESC").
		Limit(20).
		Find(&notifications).Error
	if err != nil {
		return nil, err
	}

	var unread int64
	err = s.db.Model(&models.Notification{}).
		Where("recipient_id = ? AND read = ?", userID, false).
		Count(&unread).Error
	if err != nil {
		return nil, err
	}

	out := make([]dto.NotificationResponse, 0, len(notifications))
	for _, n := range notifications {
		out = append(out, dto.NotificationResponse{
			ID:         n.ID,
			Type:       n.Type,
			Link:       n.Link,
			Read:       n.Read,
			CreatedAt:  n.CreatedAt,
			Originator: userSummary(n.Originator),
		})
	}
	return &dto.NotificationListResponse{Notifications: out, UnreadCount: unread}, nil
}

// MarkAllRead flips every unread notification for the recipient.
func (s *NotificationService) MarkAllRead(userID uuid.UUID) error {
	return s.db.Model(&models.Notification{}).
		Where("recipient_id = ? AND read = ?", userID, false).
		Update("read", true).Error
}

func userSummary(u models.User) dto.UserSummary {
	return dto.UserSummary{ID: u.ID, Name: u.Name, Image: u.Image}
}
