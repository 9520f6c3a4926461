package persistence

import (
	"context"

	"github.com/sabbir073/Complete-Political-website-sub006/internal/domain/categories"
	"github.com/sabbir073/Complete-Political-website-sub006/internal/infrastructure/persistence/models"
	"github.com/sabbir073/Complete-Political-website-sub006/internal/pkg/logger"

	"gorm.io/gorm"
)

type gormCategoryRepository struct {
	db     *gorm.DB
	logger logger.Logger
}

// NewGormCategoryRepository creates a new GORM-based CategoryRepository implementation
func NewGormCategoryRepository(db *gorm.DB, logger logger.Logger) (categories.CategoryRepository, error) {
	return &gormCategoryRepository{db: db, logger: logger}, nil
}

func (r *gormCategoryRepository) Create(ctx context.Context, category *categories.Category) error {
	if err := category.Validate(); err != nil {
		return err
	}

	model := &models.CategoryModel{}
	model.FromDomain(category)
	if err := r.db.WithContext(ctx).Create(model).Error; err != nil {
		return wrapError(err, "create", "category")
	}
	category.CreatedAt, category.UpdatedAt = model.CreatedAt, model.UpdatedAt

	r.logger.Info("category created", "id", category.ID, "slug", category.Slug)
	return nil
}

func (r *gormCategoryRepository) List(ctx context.Context, categoryType string) ([]*categories.Category, error) {
	dbQuery := r.db.WithContext(ctx).Model(&models.CategoryModel{})
	if categoryType != "" {
		dbQuery = dbQuery.Where("type = ?", categoryType)
	}

	var rows []*models.CategoryModel
	if err := dbQuery.Order("name_en ASC").Find(&rows).Error; err != nil {
		return nil, wrapError(err, "list", "categories")
	}

	result := make([]*categories.Category, len(rows))
	for i, row := range rows {
		result[i] = row.ToDomain()
	}
	return result, nil
}

func (r *gormCategoryRepository) GetByID(ctx context.Context, id string) (*categories.Category, error) {
	model, err := getOne[models.CategoryModel](ctx, r.db, "category", "id", id)
	if err != nil {
		return nil, err
	}
	return model.ToDomain(), nil
}

func (r *gormCategoryRepository) Update(ctx context.Context, category *categories.Category) error {
	if err := category.Validate(); err != nil {
		return err
	}

	model := &models.CategoryModel{}
	model.FromDomain(category)
	if err := r.db.WithContext(ctx).Save(model).Error; err != nil {
		return wrapError(err, "update", "category")
	}
	category.UpdatedAt = model.UpdatedAt

	r.logger.Info("category updated", "id", category.ID)
	return nil
}

func (r *gormCategoryRepository) DeleteByID(ctx context.Context, id string) error {
	if err := deleteByID[models.CategoryModel](ctx, r.db, "category", id); err != nil {
		return err
	}
	r.logger.Info("category deleted", "id", id)
	return nil
}

func (r *gormCategoryRepository) SlugExists(ctx context.Context, slug, excludeID string) (bool, error) {
	return slugExists[models.CategoryModel](ctx, r.db, slug, excludeID)
}
