package services

import (
	"github.com/codehubhq/codehub-backend/internal/models"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Overlay is the viewer-specific view of one feed item. Counts are
// computed for every viewer; the boolean flags stay false for anonymous
// requests, in which case no junction-table queries are issued at all.
type Overlay struct {
	LikesCount    int64
	SavesCount    int64
	CommentsCount int64
	IsLiked       bool
	IsSaved       bool
}

// BugOverlay is the upvote variant for bug reports.
type BugOverlay struct {
	UpvotesCount int64
	IsUpvoted    bool
}

type OverlayResolver struct {
	db *gorm.DB
}

func NewOverlayResolver(db *gorm.DB) *OverlayResolver {
	return &OverlayResolver{db: db}
}

// Snippets resolves counts and viewer flags for a page of snippet ids.
func (r *OverlayResolver) Snippets(viewer *uuid.UUID, ids []uuid.UUID) (map[uuid.UUID]Overlay, error) {
	likes, err := countByTarget(r.db, &models.SnippetLike{}, "snippet_id", ids)
	if err != nil {
		return nil, err
	}
	saves, err := countByTarget(r.db, &models.SnippetSave{}, "snippet_id", ids)
	if err != nil {
		return nil, err
	}
	comments, err := countByTarget(r.db, &models.SnippetComment{}, "snippet_id", ids)
	if err != nil {
		return nil, err
	}

	liked := map[uuid.UUID]bool{}
	saved := map[uuid.UUID]bool{}
	if viewer != nil {
		if liked, err = viewerFlags(r.db, &models.SnippetLike{}, "snippet_id", *viewer, ids); err != nil {
			return nil, err
		}
		if saved, err = viewerFlags(r.db, &models.SnippetSave{}, "snippet_id", *viewer, ids); err != nil {
			return nil, err
		}
	}

	out := make(map[uuid.UUID]Overlay, len(ids))
	for _, id := range ids {
		out[id] = Overlay{
			LikesCount:    likes[id],
			SavesCount:    saves[id],
			CommentsCount: comments[id],
			IsLiked:       liked[id],
			IsSaved:       saved[id],
		}
	}
	return out, nil
}

func (r *OverlayResolver) Documents(viewer *uuid.UUID, ids []uuid.UUID) (map[uuid.UUID]Overlay, error) {
	likes, err := countByTarget(r.db, &models.DocumentLike{}, "document_id", ids)
	if err != nil {
		return nil, err
	}
	saves, err := countByTarget(r.db, &models.DocumentSave{}, "document_id", ids)
	if err != nil {
		return nil, err
	}
	comments, err := countByTarget(r.db, &models.DocumentComment{}, "document_id", ids)
	if err != nil {
		return nil, err
	}

	liked := map[uuid.UUID]bool{}
	saved := map[uuid.UUID]bool{}
	if viewer != nil {
		if liked, err = viewerFlags(r.db, &models.DocumentLike{}, "document_id", *viewer, ids); err != nil {
			return nil, err
		}
		if saved, err = viewerFlags(r.db, &models.DocumentSave{}, "document_id", *viewer, ids); err != nil {
			return nil, err
		}
	}

	out := make(map[uuid.UUID]Overlay, len(ids))
	for _, id := range ids {
		out[id] = Overlay{
			LikesCount:    likes[id],
			SavesCount:    saves[id],
			CommentsCount: comments[id],
			IsLiked:       liked[id],
			IsSaved:       saved[id],
		}
	}
	return out, nil
}

func (r *OverlayResolver) Bugs(viewer *uuid.UUID, ids []uuid.UUID) (map[uuid.UUID]BugOverlay, error) {
	upvotes, err := countByTarget(r.db, &models.BugUpvote{}, "bug_id", ids)
	if err != nil {
		return nil, err
	}

	upvoted := map[uuid.UUID]bool{}
	if viewer != nil {
		if upvoted, err = viewerFlags(r.db, &models.BugUpvote{}, "bug_id", *viewer, ids); err != nil {
			return nil, err
		}
	}

	out := make(map[uuid.UUID]BugOverlay, len(ids))
	for _, id := range ids {
		out[id] = BugOverlay{UpvotesCount: upvotes[id], IsUpvoted: upvoted[id]}
	}
	return out, nil
}

// FollowedAuthors reports which of the given authors the viewer follows,
// computed once per distinct author rather than per item. Anonymous
// viewers get an empty map without touching the follows table.
func (r *OverlayResolver) FollowedAuthors(viewer *uuid.UUID, authorIDs []uuid.UUID) (map[uuid.UUID]bool, error) {
	out := make(map[uuid.UUID]bool)
	if viewer == nil || len(authorIDs) == 0 {
		return out, nil
	}

	distinct := dedupeIDs(authorIDs)
	var followed []uuid.UUID
	err := r.db.Model(&models.Follow{}).
		Where("follower_id = ? AND following_id IN ?", *viewer, distinct).
		Pluck("following_id", &followed).Error
	if err != nil {
		return nil, err
	}
	for _, id := range followed {
		out[id] = true
	}
	return out, nil
}

type countRow struct {
	TargetID uuid.UUID `gorm:"column:target_id"`
	N        int64     `gorm:"column:n"`
}

// countByTarget aggregates junction rows per target id. Targets with no
// rows are simply absent from the map and read back as zero.
func countByTarget(db *gorm.DB, model interface{}, col string, ids []uuid.UUID) (map[uuid.UUID]int64, error) {
	out := make(map[uuid.UUID]int64, len(ids))
	if len(ids) == 0 {
		return out, nil
	}

	var rows []countRow
	err := db.Model(model).
		Select(col + " AS target_id, COUNT(*) AS n").
		Where(col+" IN ?", ids).
		Group(col).
		Find(&rows).Error
	if err != nil {
		return nil, err
	}
	for _, row := range rows {
		out[row.TargetID] = row.N
	}
	return out, nil
}

// viewerFlags returns the subset of target ids the viewer has a junction
// row for.
func viewerFlags(db *gorm.DB, model interface{}, col string, viewer uuid.UUID, ids []uuid.UUID) (map[uuid.UUID]bool, error) {
	out := make(map[uuid.UUID]bool, len(ids))
	if len(ids) == 0 {
		return out, nil
	}

	var hits []uuid.UUID
	err := db.Model(model).
		Where("user_id = ? AND "+col+" IN ?", viewer, ids).
		Pluck(col, &hits).Error
	if err != nil {
		return nil, err
	}
	for _, id := range hits {
		out[id] = true
	}
	return out, nil
}

func dedupeIDs(ids []uuid.UUID) []uuid.UUID {
	seen := make(map[uuid.UUID]struct{}, len(ids))
	out := make([]uuid.UUID, 0, len(ids))
	for _, id := range ids {
		if _, ok := seen[id]; ok {
			continue
		}
		seen[id] = struct{}{}
		out = append(out, id)
	}
	return out
}
