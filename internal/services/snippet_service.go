package services

import (
	"errors"
	"sort"
	"strings"

	"github.com/codehubhq/codehub-backend/internal/dto"
	"github.com/codehubhq/codehub-backend/internal/models"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

// feedCommentPreview is how many recent comments ride along with each
// feed item.
const feedCommentPreview = 2

type SnippetService struct {
	db            *gorm.DB
	overlay       *OverlayResolver
	notifications *NotificationService
}

func NewSnippetService(db *gorm.DB, notifications *NotificationService) *SnippetService {
	return &SnippetService{
		db:            db,
		overlay:       NewOverlayResolver(db),
		notifications: notifications,
	}
}

func (s *SnippetService) Create(userID uuid.UUID, req *dto.CreateSnippetRequest) (*dto.SnippetResponse, error) {
	if err := validateSnippet(req); err != nil {
		return nil, err
	}

	snippet := models.Snippet{
		Title:       strings.TrimSpace(req.Title),
		Description: req.Description,
		Code:        req.Code,
		Language:    req.Language,
		AuthorID:    userID,
	}
	if err := s.db.Create(&snippet).Error; err != nil {
		return nil, err
	}

	return s.GetByID(&userID, snippet.ID)
}

// Update is owner-only. Missing and unowned snippets fail the same way so
// the response does not reveal whether the id exists.
func (s *SnippetService) Update(userID, snippetID uuid.UUID, req *dto.UpdateSnippetRequest) (*dto.SnippetResponse, error) {
	if err := validateSnippet(req); err != nil {
		return nil, err
	}

	var snippet models.Snippet
	if err := s.db.First(&snippet, "id = ?", snippetID).Error; err != nil {
		return nil, ErrNotAuthorized
	}
	if snippet.AuthorID != userID {
		return nil, ErrNotAuthorized
	}

	err := s.db.Model(&snippet).Updates(map[string]interface{}{
		"title":       strings.TrimSpace(req.Title),
		"description": req.Description,
		"code":        req.Code,
		"language":    req.Language,
	}).Error
	if err != nil {
		return nil, err
	}

	return s.GetByID(&userID, snippetID)
}

// Delete removes the snippet and its likes, saves and comments.
func (s *SnippetService) Delete(userID, snippetID uuid.UUID) error {
	var snippet models.Snippet
	if err := s.db.First(&snippet, "id = ?", snippetID).Error; err != nil {
		return ErrNotAuthorized
	}
	if snippet.AuthorID != userID {
		return ErrNotAuthorized
	}

	return s.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("snippet_id = ?", snippetID).Delete(&models.SnippetLike{}).Error; err != nil {
			return err
		}
		if err := tx.Where("snippet_id = ?", snippetID).Delete(&models.SnippetSave{}).Error; err != nil {
			return err
		}
		if err := tx.Where("snippet_id = ?", snippetID).Delete(&models.SnippetComment{}).Error; err != nil {
			return err
		}
		return tx.Delete(&snippet).Error
	})
}

// GetFeed returns one page of snippets, newest first, optionally filtered
// to a single author, merged with the viewer's overlay.
func (s *SnippetService) GetFeed(viewer *uuid.UUID, authorID *uuid.UUID, page, limit int) ([]dto.SnippetResponse, bool, error) {
	filter := noFilter
	if authorID != nil {
		filter = func(q *gorm.DB) *gorm.DB { return q.Where("author_id = ?", *authorID) }
	}

	snippets, hasMore, err := fetchPage[models.Snippet](s.db, page, limit, filter, "Author")
	if err != nil {
		return nil, false, err
	}

	responses, err := s.assemble(viewer, snippets)
	if err != nil {
		return nil, false, err
	}
	return responses, hasMore, nil
}

// GetSaved pages the viewer's saved snippets ordered by when they were
// saved, not when the snippets were created. The entity fetch loses that
// order, so the batch is re-sorted to match the junction page.
func (s *SnippetService) GetSaved(userID uuid.UUID, page, limit int) ([]dto.SnippetResponse, bool, error) {
	saves, hasMore, err := fetchPage[models.SnippetSave](s.db, page, limit, func(q *gorm.DB) *gorm.DB {
		return q.Where("user_id = ?", userID)
	})
	if err != nil {
		return nil, false, err
	}

	ids := make([]uuid.UUID, len(saves))
	for i, save := range saves {
		ids[i] = save.SnippetID
	}

	var snippets []models.Snippet
	if err := s.db.Preload("Author").Where("id IN ?", ids).Find(&snippets).Error; err != nil {
		return nil, false, err
	}
	snippets = sortByIDOrder(snippets, ids, func(sn models.Snippet) uuid.UUID { return sn.ID })

	responses, err := s.assemble(&userID, snippets)
	if err != nil {
		return nil, false, err
	}
	return responses, hasMore, nil
}

func (s *SnippetService) GetByID(viewer *uuid.UUID, snippetID uuid.UUID) (*dto.SnippetResponse, error) {
	var snippet models.Snippet
	if err := s.db.Preload("Author").First(&snippet, "id = ?", snippetID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}

	responses, err := s.assemble(viewer, []models.Snippet{snippet})
	if err != nil {
		return nil, err
	}
	return &responses[0], nil
}

// ToggleLike flips the (user, snippet) like state inside a transaction.
// The unique index on the pair is the backstop against concurrent
// duplicate toggles. Returns the resulting state.
func (s *SnippetService) ToggleLike(userID, snippetID uuid.UUID) (bool, error) {
	var snippet models.Snippet
	if err := s.db.Select("id", "author_id").First(&snippet, "id = ?", snippetID).Error; err != nil {
		return false, ErrNotFound
	}

	liked := false
	err := s.db.Transaction(func(tx *gorm.DB) error {
		var existing models.SnippetLike
		err := tx.Where("user_id = ? AND snippet_id = ?", userID, snippetID).First(&existing).Error
		if err == nil {
			return tx.Delete(&existing).Error
		}
		if !errors.Is(err, gorm.ErrRecordNotFound) {
			return err
		}

		if err := tx.Create(&models.SnippetLike{UserID: userID, SnippetID: snippetID}).Error; err != nil {
			return err
		}
		liked = true
		return s.notifications.Notify(tx, snippet.AuthorID, userID,
			models.NotificationTypeLike, "/snippets/"+snippetID.String())
	})
	return liked, err
}

// ToggleSave flips the (user, snippet) bookmark. Saves never notify.
func (s *SnippetService) ToggleSave(userID, snippetID uuid.UUID) (bool, error) {
	var snippet models.Snippet
	if err := s.db.Select("id").First(&snippet, "id = ?", snippetID).Error; err != nil {
		return false, ErrNotFound
	}

	saved := false
	err := s.db.Transaction(func(tx *gorm.DB) error {
		var existing models.SnippetSave
		err := tx.Where("user_id = ? AND snippet_id = ?", userID, snippetID).First(&existing).Error
		if err == nil {
			return tx.Delete(&existing).Error
		}
		if !errors.Is(err, gorm.ErrRecordNotFound) {
			return err
		}
		saved = true
		return tx.Create(&models.SnippetSave{UserID: userID, SnippetID: snippetID}).Error
	})
	return saved, err
}

func (s *SnippetService) AddComment(userID, snippetID uuid.UUID, content string) (*dto.CommentResponse, error) {
	content = strings.TrimSpace(content)
	if content == "" {
		return nil, errors.New("comment cannot be empty")
	}

	var snippet models.Snippet
	if err := s.db.Select("id", "author_id").First(&snippet, "id = ?", snippetID).Error; err != nil {
		return nil, ErrNotFound
	}

	comment := models.SnippetComment{
		Content:   content,
		SnippetID: snippetID,
		AuthorID:  userID,
	}
	err := s.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(&comment).Error; err != nil {
			return err
		}
		return s.notifications.Notify(tx, snippet.AuthorID, userID,
			models.NotificationTypeComment, "/snippets/"+snippetID.String())
	})
	if err != nil {
		return nil, err
	}

	var author models.User
	if err := s.db.First(&author, "id = ?", userID).Error; err != nil {
		return nil, err
	}
	return &dto.CommentResponse{
		ID:        comment.ID,
		Content:   comment.Content,
		CreatedAt: comment.CreatedAt,
		Author:    userSummary(author),
	}, nil
}

// GetComments lists every comment on a snippet, newest first.
func (s *SnippetService) GetComments(snippetID uuid.UUID) ([]dto.CommentResponse, error) {
	var comments []models.SnippetComment
	err := s.db.Preload("Author").
		Where("snippet_id = ?", snippetID).
		Order("created_at DESC").
		Find(&comments).Error
	if err != nil {
		return nil, err
	}

	out := make([]dto.CommentResponse, 0, len(comments))
	for _, c := range comments {
		out = append(out, dto.CommentResponse{
			ID:        c.ID,
			Content:   c.Content,
			CreatedAt: c.CreatedAt,
			Author:    userSummary(c.Author),
		})
	}
	return out, nil
}

// assemble merges a batch of snippets with overlay state and a short
// preview of recent comments.
func (s *SnippetService) assemble(viewer *uuid.UUID, snippets []models.Snippet) ([]dto.SnippetResponse, error) {
	ids := make([]uuid.UUID, len(snippets))
	for i, sn := range snippets {
		ids[i] = sn.ID
	}

	overlays, err := s.overlay.Snippets(viewer, ids)
	if err != nil {
		return nil, err
	}
	previews, err := s.commentPreviews(ids)
	if err != nil {
		return nil, err
	}

	out := make([]dto.SnippetResponse, 0, len(snippets))
	for _, sn := range snippets {
		ov := overlays[sn.ID]
		out = append(out, dto.SnippetResponse{
			ID:            sn.ID,
			Title:         sn.Title,
			Description:   sn.Description,
			Code:          sn.Code,
			Language:      sn.Language,
			CreatedAt:     sn.CreatedAt,
			UpdatedAt:     sn.UpdatedAt,
			Author:        userSummary(sn.Author),
			LikesCount:    ov.LikesCount,
			SavesCount:    ov.SavesCount,
			CommentsCount: ov.CommentsCount,
			IsLiked:       ov.IsLiked,
			IsBookmarked:  ov.IsSaved,
			Comments:      previews[sn.ID],
		})
	}
	return out, nil
}

func (s *SnippetService) commentPreviews(ids []uuid.UUID) (map[uuid.UUID][]dto.CommentResponse, error) {
	out := make(map[uuid.UUID][]dto.CommentResponse, len(ids))
	for _, id := range ids {
		out[id] = []dto.CommentResponse{}
	}
	if len(ids) == 0 {
		return out, nil
	}

	var comments []models.SnippetComment
	err := s.db.Preload("Author").
		Where("snippet_id IN ?", ids).
		Order("created_at DESC").
		Find(&comments).Error
	if err != nil {
		return nil, err
	}

	for _, c := range comments {
		if len(out[c.SnippetID]) >= feedCommentPreview {
			continue
		}
		out[c.SnippetID] = append(out[c.SnippetID], dto.CommentResponse{
			ID:        c.ID,
			Content:   c.Content,
			CreatedAt: c.CreatedAt,
			Author:    userSummary(c.Author),
		})
	}
	return out, nil
}

func validateSnippet(req *dto.CreateSnippetRequest) error {
	if strings.TrimSpace(req.Title) == "" {
		return errors.New("title is required")
	}
	if strings.TrimSpace(req.Code) == "" {
		return errors.New("code is required")
	}
	if strings.TrimSpace(req.Language) == "" {
		return errors.New("language is required")
	}
	return nil
}

// sortByIDOrder re-sorts a fetched batch to match the order of ids, used
// by saved feeds where junction order is the contract.
func sortByIDOrder[T any](items []T, ids []uuid.UUID, idOf func(T) uuid.UUID) []T {
	pos := make(map[uuid.UUID]int, len(ids))
	for i, id := range ids {
		pos[id] = i
	}
	out := make([]T, len(items))
	copy(out, items)
	sort.SliceStable(out, func(i, j int) bool {
		return pos[idOf(out[i])] < pos[idOf(out[j])]
	})
	return out
}
