package persistence

import (
	"context"

	"github.com/sabbir073/Complete-Political-website-sub006/internal/domain/promises"
	"github.com/sabbir073/Complete-Political-website-sub006/internal/infrastructure/persistence/models"
	"github.com/sabbir073/Complete-Political-website-sub006/internal/pkg/logger"

	"gorm.io/gorm"
)

type gormPromiseRepository struct {
	db     *gorm.DB
	logger logger.Logger
}

// NewGormPromiseRepository creates a new GORM-based PromiseRepository implementation
func NewGormPromiseRepository(db *gorm.DB, logger logger.Logger) (promises.PromiseRepository, error) {
	return &gormPromiseRepository{db: db, logger: logger}, nil
}

func (r *gormPromiseRepository) Create(ctx context.Context, promise *promises.Promise) error {
	if err := promise.Validate(); err != nil {
		return err
	}

	model := &models.PromiseModel{}
	model.FromDomain(promise)
	if err := r.db.WithContext(ctx).Create(model).Error; err != nil {
		return wrapError(err, "create", "promise")
	}
	promise.CreatedAt, promise.UpdatedAt = model.CreatedAt, model.UpdatedAt

	r.logger.Info("promise created", "id", promise.ID, "status", promise.Status)
	return nil
}

func (r *gormPromiseRepository) List(ctx context.Context, query *promises.PromiseQuery) ([]*promises.Promise, int64, error) {
	if err := query.Validate(); err != nil {
		return nil, 0, err
	}

	dbQuery := r.db.WithContext(ctx).Model(&models.PromiseModel{})
	if query.Status != "" {
		dbQuery = dbQuery.Where("status = ?", query.Status)
	}
	if query.CategoryID != "" {
		dbQuery = dbQuery.Where("category_id = ?", query.CategoryID)
	}

	rows, total, err := findPage[models.PromiseModel](dbQuery.Session(&gorm.Session{}), query.Params, "created_at DESC")
	if err != nil {
		return nil, 0, wrapError(err, "list", "promises")
	}

	result := make([]*promises.Promise, len(rows))
	for i, row := range rows {
		result[i] = row.ToDomain()
	}
	return result, total, nil
}

func (r *gormPromiseRepository) GetByID(ctx context.Context, id string) (*promises.Promise, error) {
	model, err := getOne[models.PromiseModel](ctx, r.db, "promise", "id", id)
	if err != nil {
		return nil, err
	}
	return model.ToDomain(), nil
}

func (r *gormPromiseRepository) Update(ctx context.Context, promise *promises.Promise) error {
	if err := promise.Validate(); err != nil {
		return err
	}

	model := &models.PromiseModel{}
	model.FromDomain(promise)
	if err := r.db.WithContext(ctx).Save(model).Error; err != nil {
		return wrapError(err, "update", "promise")
	}
	promise.UpdatedAt = model.UpdatedAt

	r.logger.Info("promise updated", "id", promise.ID, "status", promise.Status)
	return nil
}

func (r *gormPromiseRepository) DeleteByID(ctx context.Context, id string) error {
	if err := deleteByID[models.PromiseModel](ctx, r.db, "promise", id); err != nil {
		return err
	}
	r.logger.Info("promise deleted", "id", id)
	return nil
}
