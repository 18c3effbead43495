package services

import (
	"encoding/json"
	"errors"
	"regexp"
	"strings"

	"github.com/codehubhq/codehub-backend/internal/dto"
	"github.com/codehubhq/codehub-backend/internal/models"
	"github.com/google/uuid"
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

var slugStrip = regexp.MustCompile(`[^\w-]+`)

// slugify turns a title into a URL slug: lowercase, spaces to dashes,
// everything else dropped.
func slugify(title string) string {
	s := strings.ToLower(strings.TrimSpace(title))
	s = strings.Join(strings.Fields(s), "-")
	return slugStrip.ReplaceAllString(s, "")
}

type DocumentService struct {
	db            *gorm.DB
	overlay       *OverlayResolver
	notifications *NotificationService
}

func NewDocumentService(db *gorm.DB, notifications *NotificationService) *DocumentService {
	return &DocumentService{
		db:            db,
		overlay:       NewOverlayResolver(db),
		notifications: notifications,
	}
}

func (s *DocumentService) Create(userID uuid.UUID, req *dto.CreateDocumentRequest) (*dto.DocumentResponse, error) {
	if err := validateDocument(req); err != nil {
		return nil, err
	}

	slug := slugify(req.Title)
	var existing models.Document
	if err := s.db.Select("id").Where("slug = ?", slug).First(&existing).Error; err == nil {
		return nil, errors.New("a document with this title already exists")
	}

	doc := models.Document{
		Title:       strings.TrimSpace(req.Title),
		Slug:        slug,
		Description: req.Description,
		Content:     req.Content,
		Tags:        tagsJSON(req.Tags),
		AuthorID:    userID,
	}
	if err := s.db.Create(&doc).Error; err != nil {
		return nil, err
	}

	return s.GetBySlug(&userID, slug)
}

func (s *DocumentService) Update(userID, docID uuid.UUID, req *dto.UpdateDocumentRequest) (*dto.DocumentResponse, error) {
	if err := validateDocument(req); err != nil {
		return nil, err
	}

	var doc models.Document
	if err := s.db.First(&doc, "id = ?", docID).Error; err != nil {
		return nil, ErrNotAuthorized
	}
	if doc.AuthorID != userID {
		return nil, ErrNotAuthorized
	}

	newSlug := slugify(req.Title)
	if newSlug != doc.Slug {
		var existing models.Document
		if err := s.db.Select("id").Where("slug = ? AND id <> ?", newSlug, docID).First(&existing).Error; err == nil {
			return nil, errors.New("a document with this title already exists")
		}
	}

	err := s.db.Model(&doc).Updates(map[string]interface{}{
		"title":       strings.TrimSpace(req.Title),
		"slug":        newSlug,
		"description": req.Description,
		"content":     req.Content,
		"tags":        tagsJSON(req.Tags),
	}).Error
	if err != nil {
		return nil, err
	}

	return s.GetBySlug(&userID, newSlug)
}

func (s *DocumentService) Delete(userID, docID uuid.UUID) error {
	var doc models.Document
	if err := s.db.First(&doc, "id = ?", docID).Error; err != nil {
		return ErrNotAuthorized
	}
	if doc.AuthorID != userID {
		return ErrNotAuthorized
	}

	return s.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("document_id = ?", docID).Delete(&models.DocumentLike{}).Error; err != nil {
			return err
		}
		if err := tx.Where("document_id = ?", docID).Delete(&models.DocumentSave{}).Error; err != nil {
			return err
		}
		if err := tx.Where("document_id = ?", docID).Delete(&models.DocumentComment{}).Error; err != nil {
			return err
		}
		return tx.Delete(&doc).Error
	})
}

// List pages documents newest first, optionally filtered by a search
// query over title and description or by author.
func (s *DocumentService) List(viewer *uuid.UUID, query string, authorID *uuid.UUID, page, limit int) ([]dto.DocumentResponse, bool, error) {
	filter := func(q *gorm.DB) *gorm.DB {
		if authorID != nil {
			q = q.Where("author_id = ?", *authorID)
		}
		if query != "" {
			needle := "%" + strings.ToLower(query) + "%"
			q = q.Where("LOWER(title) LIKE ? OR LOWER(description) LIKE ?", needle, needle)
		}
		return q
	}

	docs, hasMore, err := fetchPage[models.Document](s.db, page, limit, filter, "Author")
	if err != nil {
		return nil, false, err
	}

	responses, err := s.assemble(viewer, docs, false)
	if err != nil {
		return nil, false, err
	}
	return responses, hasMore, nil
}

// GetSaved pages the viewer's saved documents in save order, re-sorting
// the entity batch to match the junction page.
func (s *DocumentService) GetSaved(userID uuid.UUID, page, limit int) ([]dto.DocumentResponse, bool, error) {
	saves, hasMore, err := fetchPage[models.DocumentSave](s.db, page, limit, func(q *gorm.DB) *gorm.DB {
		return q.Where("user_id = ?", userID)
	})
	if err != nil {
		return nil, false, err
	}

	ids := make([]uuid.UUID, len(saves))
	for i, save := range saves {
		ids[i] = save.DocumentID
	}

	var docs []models.Document
	if err := s.db.Preload("Author").Where("id IN ?", ids).Find(&docs).Error; err != nil {
		return nil, false, err
	}
	docs = sortByIDOrder(docs, ids, func(d models.Document) uuid.UUID { return d.ID })

	responses, err := s.assemble(&userID, docs, false)
	if err != nil {
		return nil, false, err
	}
	return responses, hasMore, nil
}

// GetBySlug returns the full document with comments and the isFollowed
// flag for its author.
func (s *DocumentService) GetBySlug(viewer *uuid.UUID, slug string) (*dto.DocumentResponse, error) {
	var doc models.Document
	if err := s.db.Preload("Author").First(&doc, "slug = ?", slug).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}

	responses, err := s.assemble(viewer, []models.Document{doc}, true)
	if err != nil {
		return nil, err
	}
	return &responses[0], nil
}

func (s *DocumentService) ToggleLike(userID, docID uuid.UUID) (bool, error) {
	var doc models.Document
	if err := s.db.Select("id", "author_id", "slug").First(&doc, "id = ?", docID).Error; err != nil {
		return false, ErrNotFound
	}

	liked := false
	err := s.db.Transaction(func(tx *gorm.DB) error {
		var existing models.DocumentLike
		err := tx.Where("user_id = ? AND document_id = ?", userID, docID).First(&existing).Error
		if err == nil {
			return tx.Delete(&existing).Error
		}
		if !errors.Is(err, gorm.ErrRecordNotFound) {
			return err
		}

		if err := tx.Create(&models.DocumentLike{UserID: userID, DocumentID: docID}).Error; err != nil {
			return err
		}
		liked = true
		return s.notifications.Notify(tx, doc.AuthorID, userID,
			models.NotificationTypeLike, "/docs/"+doc.Slug)
	})
	return liked, err
}

func (s *DocumentService) ToggleSave(userID, docID uuid.UUID) (bool, error) {
	var doc models.Document
	if err := s.db.Select("id").First(&doc, "id = ?", docID).Error; err != nil {
		return false, ErrNotFound
	}

	saved := false
	err := s.db.Transaction(func(tx *gorm.DB) error {
		var existing models.DocumentSave
		err := tx.Where("user_id = ? AND document_id = ?", userID, docID).First(&existing).Error
		if err == nil {
			return tx.Delete(&existing).Error
		}
		if !errors.Is(err, gorm.ErrRecordNotFound) {
			return err
		}
		saved = true
		return tx.Create(&models.DocumentSave{UserID: userID, DocumentID: docID}).Error
	})
	return saved, err
}

func (s *DocumentService) AddComment(userID, docID uuid.UUID, content string) (*dto.CommentResponse, error) {
	content = strings.TrimSpace(content)
	if content == "" {
		return nil, errors.New("comment cannot be empty")
	}

	var doc models.Document
	if err := s.db.Select("id", "author_id", "slug").First(&doc, "id = ?", docID).Error; err != nil {
		return nil, ErrNotFound
	}

	comment := models.DocumentComment{
		Content:    content,
		DocumentID: docID,
		AuthorID:   userID,
	}
	err := s.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(&comment).Error; err != nil {
			return err
		}
		return s.notifications.Notify(tx, doc.AuthorID, userID,
			models.NotificationTypeComment, "/docs/"+doc.Slug)
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

func (s *DocumentService) GetComments(docID uuid.UUID) ([]dto.CommentResponse, error) {
	var comments []models.DocumentComment
	err := s.db.Preload("Author").
		Where("document_id = ?", docID).
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

func (s *DocumentService) assemble(viewer *uuid.UUID, docs []models.Document, withDetail bool) ([]dto.DocumentResponse, error) {
	ids := make([]uuid.UUID, len(docs))
	authorIDs := make([]uuid.UUID, len(docs))
	for i, d := range docs {
		ids[i] = d.ID
		authorIDs[i] = d.AuthorID
	}

	overlays, err := s.overlay.Documents(viewer, ids)
	if err != nil {
		return nil, err
	}
	followed, err := s.overlay.FollowedAuthors(viewer, authorIDs)
	if err != nil {
		return nil, err
	}

	out := make([]dto.DocumentResponse, 0, len(docs))
	for _, d := range docs {
		ov := overlays[d.ID]
		resp := dto.DocumentResponse{
			ID:            d.ID,
			Title:         d.Title,
			Slug:          d.Slug,
			Description:   d.Description,
			Content:       d.Content,
			Tags:          tagsFromJSON(d.Tags),
			CreatedAt:     d.CreatedAt,
			UpdatedAt:     d.UpdatedAt,
			Author:        userSummary(d.Author),
			LikesCount:    ov.LikesCount,
			SavesCount:    ov.SavesCount,
			CommentsCount: ov.CommentsCount,
			IsLiked:       ov.IsLiked,
			IsSaved:       ov.IsSaved,
			IsFollowed:    followed[d.AuthorID],
		}
		if withDetail {
			comments, err := s.GetComments(d.ID)
			if err != nil {
				return nil, err
			}
			resp.Comments = comments
		}
		out = append(out, resp)
	}
	return out, nil
}

func validateDocument(req *dto.CreateDocumentRequest) error {
	if strings.TrimSpace(req.Title) == "" {
		return errors.New("title is required")
	}
	if strings.TrimSpace(req.Content) == "" {
		return errors.New("content is required")
	}
	if slugify(req.Title) == "" {
		return errors.New("title must contain at least one letter or digit")
	}
	return nil
}

// tagsJSON parses a comma-separated tag list into a JSON array column.
func tagsJSON(raw string) datatypes.JSON {
	tags := []string{}
	for _, t := range strings.Split(raw, ",") {
		if t = strings.TrimSpace(t); t != "" {
			tags = append(tags, t)
		}
	}
	b, _ := json.Marshal(tags)
	return datatypes.JSON(b)
}

func tagsFromJSON(raw datatypes.JSON) []string {
	var tags []string
	if len(raw) > 0 {
		_ = json.Unmarshal(raw, &tags)
	}
	if tags == nil {
		tags = []string{}
	}
	return tags
}
