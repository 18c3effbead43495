package services

import (
	"errors"
	"strings"

	"github.com/codehubhq/codehub-backend/internal/dto"
	"github.com/codehubhq/codehub-backend/internal/models"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

type ComponentService struct {
	db *gorm.DB
}

func NewComponentService(db *gorm.DB) *ComponentService {
	return &ComponentService{db: db}
}

func (s *ComponentService) Create(userID uuid.UUID, req *dto.CreateComponentRequest) (*dto.ComponentResponse, error) {
	if strings.TrimSpace(req.Name) == "" {
		return nil, errors.New("name is required")
	}
	if strings.TrimSpace(req.Code) == "" {
		return nil, errors.New("code is required")
	}

	slug := slugify(req.Name)
	if slug == "" {
		return nil, errors.New("name must contain at least one letter or digit")
	}
	var existing models.Component
	if err := s.db.Select("id").Where("slug = ?", slug).First(&existing).Error; err == nil {
		return nil, errors.New("a component with this name already exists")
	}

	component := models.Component{
		Name:        strings.TrimSpace(req.Name),
		Slug:        slug,
		Description: req.Description,
		Code:        req.Code,
		AuthorID:    userID,
	}
	if err := s.db.Create(&component).Error; err != nil {
		return nil, err
	}

	return s.GetBySlug(slug)
}

func (s *ComponentService) List(page, limit int) ([]dto.ComponentResponse, bool, error) {
	components, hasMore, err := fetchPage[models.Component](s.db, page, limit, noFilter, "Author")
	if err != nil {
		return nil, false, err
	}

	out := make([]dto.ComponentResponse, 0, len(components))
	for _, c := range components {
		out = append(out, componentResponse(c))
	}
	return out, hasMore, nil
}

func (s *ComponentService) GetBySlug(slug string) (*dto.ComponentResponse, error) {
	var component models.Component
	if err := s.db.Preload("Author").First(&component, "slug = ?", slug).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	resp := componentResponse(component)
	return &resp, nil
}

func componentResponse(c models.Component) dto.ComponentResponse {
	return dto.ComponentResponse{
		ID:          c.ID,
		Name:        c.Name,
		Slug:        c.Slug,
		Description: c.Description,
		Code:        c.Code,
		CreatedAt:   c.CreatedAt,
		Author:      userSummary(c.Author),
	}
}
