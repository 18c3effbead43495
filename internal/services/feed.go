package services

import (
	"gorm.io/gorm"
)

// fetchPage runs one offset-paginated feed query: items ordered by
// creation time descending, skip = page*limit, hasMore computed from a
// separate count under the same filter. Offset paging drifts when rows
// are inserted between page loads; that is an accepted property of a
// social feed, so callers must not compensate for it.
func fetchPage[T any](db *gorm.DB, page, limit int, filter func(*gorm.DB) *gorm.DB, preloads ...string) ([]T, bool, error) {
	if page < 0 {
		page = 0
	}
	if limit < 1 {
		limit = 10
	}

	var total int64
	if err := filter(db.Model(new(T))).Count(&total).Error; err != nil {
		return nil, false, err
	}

	q := filter(db)
	for _, p := range preloads {
		q = q.Preload(p)
	}

	var items []T
	err := q.Order("created_at DESC").
		Offset(page * limit).
		Limit(limit).
		Find(&items).Error
	if err != nil {
		return nil, false, err
	}

	hasMore := int64(page*limit+limit) < total
	return items, hasMore, nil
}

func noFilter(q *gorm.DB) *gorm.DB { return q }
