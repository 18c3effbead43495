package services

import (
	"errors"
	"strings"

	"github.com/codehubhq/codehub-backend/internal/dto"
	"github.com/codehubhq/codehub-backend/internal/models"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

// UserService covers the social graph: follow toggles, the community
// listing and profiles.
type UserService struct {
	db            *gorm.DB
	overlay       *OverlayResolver
	notifications *NotificationService
}

func NewUserService(db *gorm.DB, notifications *NotificationService) *UserService {
	return &UserService{
		db:            db,
		overlay:       NewOverlayResolver(db),
		notifications: notifications,
	}
}

// ToggleFollow flips the follower edge toward the target user. Following
// yourself is rejected outright.
func (s *UserService) ToggleFollow(userID, targetID uuid.UUID) (bool, error) {
	if userID == targetID {
		return false, ErrSelfFollow
	}

	var target models.User
	if err := s.db.Select("id").First(&target, "id = ?", targetID).Error; err != nil {
		return false, ErrNotFound
	}

	following := false
	err := s.db.Transaction(func(tx *gorm.DB) error {
		var existing models.Follow
		err := tx.Where("follower_id = ? AND following_id = ?", userID, targetID).First(&existing).Error
		if err == nil {
			return tx.Delete(&existing).Error
		}
		if !errors.Is(err, gorm.ErrRecordNotFound) {
			return err
		}

		if err := tx.Create(&models.Follow{FollowerID: userID, FollowingID: targetID}).Error; err != nil {
			return err
		}
		following = true
		return s.notifications.Notify(tx, targetID, userID,
			models.NotificationTypeFollow, "/profile/"+userID.String())
	})
	return following, err
}

// ListUsers searches users by name, excluding the viewer, each annotated
// with follower count and the viewer's follow state.
func (s *UserService) ListUsers(viewer *uuid.UUID, query string) ([]dto.CommunityUserResponse, error) {
	q := s.db.Model(&models.User{})
	if viewer != nil {
		q = q.Where("id <> ?", *viewer)
	}
	if query != "" {
		q = q.Where("LOWER(name) LIKE ?", "%"+strings.ToLower(query)+"%")
	}

	var users []models.User
	if err := q.Order("created_at DESC").Find(&users).Error; err != nil {
		return nil, err
	}

	ids := make([]uuid.UUID, len(users))
	for i, u := range users {
		ids[i] = u.ID
	}

	followerCounts, err := countByTarget(s.db, &models.Follow{}, "following_id", ids)
	if err != nil {
		return nil, err
	}
	followed, err := s.overlay.FollowedAuthors(viewer, ids)
	if err != nil {
		return nil, err
	}

	out := make([]dto.CommunityUserResponse, 0, len(users))
	for _, u := range users {
		out = append(out, dto.CommunityUserResponse{
			ID:             u.ID,
			Name:           u.Name,
			Image:          u.Image,
			Bio:            u.Bio,
			FollowersCount: followerCounts[u.ID],
			IsFollowing:    followed[u.ID],
		})
	}
	return out, nil
}

// GetProfile returns a user with content and graph counts plus the
// viewer's follow state.
func (s *UserService) GetProfile(viewer *uuid.UUID, userID uuid.UUID) (*dto.ProfileResponse, error) {
	var user models.User
	if err := s.db.First(&user, "id = ?", userID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}

	resp := &dto.ProfileResponse{
		ID:        user.ID,
		Name:      user.Name,
		Email:     user.Email,
		Image:     user.Image,
		Bio:       user.Bio,
		CreatedAt: user.CreatedAt,
	}

	if err := s.db.Model(&models.Snippet{}).Where("author_id = ?", userID).Count(&resp.SnippetsCount).Error; err != nil {
		return nil, err
	}
	if err := s.db.Model(&models.Document{}).Where("author_id = ?", userID).Count(&resp.DocumentsCount).Error; err != nil {
		return nil, err
	}
	if err := s.db.Model(&models.Follow{}).Where("following_id = ?", userID).Count(&resp.FollowersCount).Error; err != nil {
		return nil, err
	}
	if err := s.db.Model(&models.Follow{}).Where("follower_id = ?", userID).Count(&resp.FollowingCount).Error; err != nil {
		return nil, err
	}

	if viewer != nil && *viewer != userID {
		var follow models.Follow
		err := s.db.Where("follower_id = ? AND following_id = ?", *viewer, userID).First(&follow).Error
		if err == nil {
			resp.IsFollowing = true
		} else if !errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, err
		}
	}
	return resp, nil
}

// UpdateProfile lets a user edit their own name and bio.
func (s *UserService) UpdateProfile(userID uuid.UUID, req *dto.UpdateProfileRequest) (*dto.ProfileResponse, error) {
	if strings.TrimSpace(req.Name) == "" {
		return nil, errors.New("name is required")
	}

	var user models.User
	if err := s.db.First(&user, "id = ?", userID).Error; err != nil {
		return nil, ErrNotFound
	}

	err := s.db.Model(&user).Updates(map[string]interface{}{
		"name": strings.TrimSpace(req.Name),
		"bio":  req.Bio,
	}).Error
	if err != nil {
		return nil, err
	}

	return s.GetProfile(&userID, userID)
}
