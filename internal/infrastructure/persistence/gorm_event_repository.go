package persistence

import (
	"context"
	"time"

	"github.com/sabbir073/Complete-Political-website-sub006/internal/domain/events"
	"github.com/sabbir073/Complete-Political-website-sub006/internal/infrastructure/persistence/models"
	"github.com/sabbir073/Complete-Political-website-sub006/internal/pkg/logger"

	"gorm.io/gorm"
)

type gormEventRepository struct {
	db     *gorm.DB
	logger logger.Logger
}

// NewGormEventRepository creates a new GORM-based EventRepository implementation
func NewGormEventRepository(db *gorm.DB, logger logger.Logger) (events.EventRepository, error) {
	return &gormEventRepository{db: db, logger: logger}, nil
}

func (r *gormEventRepository) Create(ctx context.Context, event *events.Event) error {
	if err := event.Validate(); err != nil {
		return err
	}

	model := &models.EventModel{}
	model.FromDomain(event)
	if err := r.db.WithContext(ctx).Create(model).Error; err != nil {
		return wrapError(err, "create", "event")
	}
	event.CreatedAt, event.UpdatedAt = model.CreatedAt, model.UpdatedAt

	r.logger.Info("event created", "id", event.ID, "slug", event.Slug)
	return nil
}

func (r *gormEventRepository) List(ctx context.Context, query *events.EventQuery) ([]*events.Event, int64, error) {
	if err := query.Validate(); err != nil {
		return nil, 0, err
	}

	now := query.Now
	if now.IsZero() {
		now = time.Now()
	}
	now = now.UTC()

	dbQuery := r.db.WithContext(ctx).Model(&models.EventModel{})
	if query.Status != "" {
		dbQuery = dbQuery.Where("status = ?", query.Status)
	}

	order := "starts_at DESC"
	switch query.Scope {
	case events.ScopeUpcoming:
		dbQuery = dbQuery.Where("starts_at >= ?", now)
		order = "starts_at ASC"
	case events.ScopePast:
		dbQuery = dbQuery.Where("starts_at < ?", now)
	}

	rows, total, err := findPage[models.EventModel](dbQuery.Session(&gorm.Session{}), query.Params, order)
	if err != nil {
		return nil, 0, wrapError(err, "list", "events")
	}

	result := make([]*events.Event, len(rows))
	for i, row := range rows {
		result[i] = row.ToDomain()
	}
	return result, total, nil
}

func (r *gormEventRepository) GetByID(ctx context.Context, id string) (*events.Event, error) {
	model, err := getOne[models.EventModel](ctx, r.db, "event", "id", id)
	if err != nil {
		return nil, err
	}
	return model.ToDomain(), nil
}

func (r *gormEventRepository) GetBySlug(ctx context.Context, slug string) (*events.Event, error) {
	model, err := getOne[models.EventModel](ctx, r.db, "event", "slug", slug)
	if err != nil {
		return nil, err
	}
	return model.ToDomain(), nil
}

func (r *gormEventRepository) Update(ctx context.Context, event *events.Event) error {
	if err := event.Validate(); err != nil {
		return err
	}

	model := &models.EventModel{}
	model.FromDomain(event)
	if err := r.db.WithContext(ctx).Save(model).Error; err != nil {
		return wrapError(err, "update", "event")
	}
	event.UpdatedAt = model.UpdatedAt

	r.logger.Info("event updated", "id", event.ID)
	return nil
}

func (r *gormEventRepository) DeleteByID(ctx context.Context, id string) error {
	if err := deleteByID[models.EventModel](ctx, r.db, "event", id); err != nil {
		return err
	}
	r.logger.Info("event deleted", "id", id)
	return nil
}

func (r *gormEventRepository) SlugExists(ctx context.Context, slug, excludeID string) (bool, error) {
	return slugExists[models.EventModel](ctx, r.db, slug, excludeID)
}
