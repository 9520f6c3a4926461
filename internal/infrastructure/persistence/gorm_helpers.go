package persistence

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/sabbir073/Complete-Political-website-sub006/internal/pkg/apperr"
	"github.com/sabbir073/Complete-Political-website-sub006/internal/pkg/pagination"

	"gorm.io/gorm"
)

// wrapError maps GORM errors onto the application sentinels
func wrapError(err error, op, entity string) error {
	switch {
	case errors.Is(err, gorm.ErrRecordNotFound):
		return fmt.Errorf("%s %s: %w", op, entity, apperr.ErrNotFound)
	case errors.Is(err, gorm.ErrDuplicatedKey):
		return fmt.Errorf("%w: %s already exists", apperr.ErrConflict, entity)
	default:
		return fmt.Errorf("failed to %s %s: %w", op, entity, err)
	}
}

// findPage counts the rows matched by base and loads one page of them.
// base must be a reusable session (see gorm.Session).
func findPage[M any](base *gorm.DB, p pagination.Params, order string) ([]*M, int64, error) {
	p = p.Normalized()

	var total int64
	if err := base.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	var rows []*M
	if total == 0 {
		return rows, 0, nil
	}

	if err := base.Order(order).Offset(p.Offset()).Limit(p.Limit).Find(&rows).Error; err != nil {
		return nil, 0, err
	}
	return rows, total, nil
}

// getOne loads the first row matching column = value
func getOne[M any](ctx context.Context, db *gorm.DB, entity, column, value string) (*M, error) {
	var model M
	if err := db.WithContext(ctx).Where(column+" = ?", value).First(&model).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperr.NotFound(entity, value)
		}
		return nil, wrapError(err, "fetch", entity)
	}
	return &model, nil
}

// deleteByID deletes (or soft deletes) the row with id
func deleteByID[M any](ctx context.Context, db *gorm.DB, entity, id string) error {
	result := db.WithContext(ctx).Where("id = ?", id).Delete(new(M))
	if result.Error != nil {
		return wrapError(result.Error, "delete", entity)
	}
	if result.RowsAffected == 0 {
		return apperr.NotFound(entity, id)
	}
	return nil
}

// slugExists checks slug uniqueness, including soft deleted rows that still hold the index
func slugExists[M any](ctx context.Context, db *gorm.DB, slug, excludeID string) (bool, error) {
	query := db.WithContext(ctx).Unscoped().Model(new(M)).Where("slug = ?", slug)
	if excludeID != "" {
		query = query.Where("id <> ?", excludeID)
	}

	var count int64
	if err := query.Count(&count).Error; err != nil {
		return false, fmt.Errorf("failed to check slug: %w", err)
	}
	return count > 0, nil
}

// likePattern escapes LIKE wildcards in a user search term
func likePattern(term string) string {
	escaped := make([]rune, 0, len(term)+2)
	escaped = append(escaped, '%')
	for _, r := range term {
		if r == '%' || r == '_' || r == '\\' {
			escaped = append(escaped, '\\')
		}
		escaped = append(escaped, r)
	}
	return string(append(escaped, '%'))
}

// whereLike adds a case-insensitive substring match over columns
func whereLike(query *gorm.DB, term string, columns ...string) *gorm.DB {
	pattern := strings.ToLower(likePattern(term))

	clauses := make([]string, 0, len(columns))
	args := make([]interface{}, 0, len(columns))
	for _, column := range columns {
		clauses = append(clauses, "LOWER("+column+") LIKE ? ESCAPE '\\'")
		args = append(args, pattern)
	}
	return query.Where("("+strings.Join(clauses, " OR ")+")", args...)
}
