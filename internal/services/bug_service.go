package services

import (
	"errors"
	"strings"

	"github.com/codehubhq/codehub-backend/internal/dto"
	"github.com/codehubhq/codehub-backend/internal/models"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

type BugService struct {
	db      *gorm.DB
	overlay *OverlayResolver
}

func NewBugService(db *gorm.DB) *BugService {
	return &BugService{db: db, overlay: NewOverlayResolver(db)}
}

func (s *BugService) Create(userID uuid.UUID, content string) (*dto.BugResponse, error) {
	content = strings.TrimSpace(content)
	if len(content) < 10 {
		return nil, errors.New("bug report must be at least 10 characters")
	}
	if len(content) > 1000 {
		return nil, errors.New("bug report must be under 1000 characters")
	}

	bug := models.Bug{
		Content:  content,
		Status:   models.BugStatusOpen,
		AuthorID: userID,
	}
	if err := s.db.Create(&bug).Error; err != nil {
		return nil, err
	}

	return s.get(&userID, bug.ID)
}

// List returns all bug reports newest first with upvote counts and the
// viewer's upvote flags.
func (s *BugService) List(viewer *uuid.UUID) ([]dto.BugResponse, error) {
	var bugs []models.Bug
	err := s.db.Preload("Author").Order("created_at DESC").Find(&bugs).Error
	if err != nil {
		return nil, err
	}
	return s.assemble(viewer, bugs)
}

// ToggleUpvote flips the (user, bug) upvote. Upvotes never notify.
func (s *BugService) ToggleUpvote(userID, bugID uuid.UUID) (bool, error) {
	var bug models.Bug
	if err := s.db.Select("id").First(&bug, "id = ?", bugID).Error; err != nil {
		return false, ErrNotFound
	}

	upvoted := false
	err := s.db.Transaction(func(tx *gorm.DB) error {
		var existing models.BugUpvote
		err := tx.Where("user_id = ? AND bug_id = ?", userID, bugID).First(&existing).Error
		if err == nil {
			return tx.Delete(&existing).Error
		}
		if !errors.Is(err, gorm.ErrRecordNotFound) {
			return err
		}
		upvoted = true
		return tx.Create(&models.BugUpvote{UserID: userID, BugID: bugID}).Error
	})
	return upvoted, err
}

// UpdateStatus is restricted to the bug's author.
func (s *BugService) UpdateStatus(userID, bugID uuid.UUID, status string) (*dto.BugResponse, error) {
	switch status {
	case models.BugStatusOpen, models.BugStatusInProgress, models.BugStatusResolved:
	default:
		return nil, errors.New("invalid status")
	}

	var bug models.Bug
	if err := s.db.First(&bug, "id = ?", bugID).Error; err != nil {
		return nil, ErrNotAuthorized
	}
	if bug.AuthorID != userID {
		return nil, ErrNotAuthorized
	}

	if err := s.db.Model(&bug).Update("status", status).Error; err != nil {
		return nil, err
	}
	return s.get(&userID, bugID)
}

func (s *BugService) get(viewer *uuid.UUID, bugID uuid.UUID) (*dto.BugResponse, error) {
	var bug models.Bug
	if err := s.db.Preload("Author").First(&bug, "id = ?", bugID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}

	responses, err := s.assemble(viewer, []models.Bug{bug})
	if err != nil {
		return nil, err
	}
	return &responses[0], nil
}

func (s *BugService) assemble(viewer *uuid.UUID, bugs []models.Bug) ([]dto.BugResponse, error) {
	ids := make([]uuid.UUID, len(bugs))
	for i, b := range bugs {
		ids[i] = b.ID
	}

	overlays, err := s.overlay.Bugs(viewer, ids)
	if err != nil {
		return nil, err
	}

	out := make([]dto.BugResponse, 0, len(bugs))
	for _, b := range bugs {
		ov := overlays[b.ID]
		out = append(out, dto.BugResponse{
			ID:           b.ID,
			Content:      b.Content,
			Status:       b.Status,
			CreatedAt:    b.CreatedAt,
			Author:       userSummary(b.Author),
			UpvotesCount: ov.UpvotesCount,
			IsUpvoted:    ov.IsUpvoted,
		})
	}
	return out, nil
}
