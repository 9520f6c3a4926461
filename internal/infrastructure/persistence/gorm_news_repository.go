package persistence

import (
	"context"

	"github.com/sabbir073/Complete-Political-website-sub006/internal/domain/news"
	"github.com/sabbir073/Complete-Political-website-sub006/internal/infrastructure/persistence/models"
	"github.com/sabbir073/Complete-Political-website-sub006/internal/pkg/apperr"
	"github.com/sabbir073/Complete-Political-website-sub006/internal/pkg/logger"

	"gorm.io/gorm"
)

type gormNewsRepository struct {
	db     *gorm.DB
	logger logger.Logger
}

// NewGormNewsRepository creates a new GORM-based ArticleRepository implementation
func NewGormNewsRepository(db *gorm.DB, logger logger.Logger) (news.ArticleRepository, error) {
	return &gormNewsRepository{db: db, logger: logger}, nil
}

func (r *gormNewsRepository) Create(ctx context.Context, article *news.Article) error {
	if err := article.Validate(); err != nil {
		return err
	}

	model := &models.NewsArticleModel{}
	model.FromDomain(article)
	if err := r.db.WithContext(ctx).Create(model).Error; err != nil {
		return wrapError(err, "create", "news article")
	}
	article.CreatedAt, article.UpdatedAt = model.CreatedAt, model.UpdatedAt

	r.logger.Info("news article created", "id", article.ID, "slug", article.Slug, "status", article.Status)
	return nil
}

func (r *gormNewsRepository) List(ctx context.Context, query *news.ArticleQuery) ([]*news.Article, int64, error) {
	if err := query.Validate(); err != nil {
		return nil, 0, err
	}

	dbQuery := r.db.WithContext(ctx).Model(&models.NewsArticleModel{})
	if query.Status != "" {
		dbQuery = dbQuery.Where("status = ?", query.Status)
	}
	if query.CategoryID != "" {
		dbQuery = dbQuery.Where("category_id = ?", query.CategoryID)
	}
	if query.Featured != nil {
		dbQuery = dbQuery.Where("is_featured = ?", *query.Featured)
	}
	if query.Search != "" {
		dbQuery = whereLike(dbQuery, query.Search, "title_en", "title_bn")
	}

	order := "created_at DESC"
	if query.Status == news.StatusPublished {
		order = "published_at DESC"
	}

	rows, total, err := findPage[models.NewsArticleModel](dbQuery.Session(&gorm.Session{}), query.Params, order)
	if err != nil {
		return nil, 0, wrapError(err, "list", "news articles")
	}

	articles := make([]*news.Article, len(rows))
	for i, row := range rows {
		articles[i] = row.ToDomain()
	}
	return articles, total, nil
}

func (r *gormNewsRepository) GetByID(ctx context.Context, id string) (*news.Article, error) {
	model, err := getOne[models.NewsArticleModel](ctx, r.db, "news article", "id", id)
	if err != nil {
		return nil, err
	}
	return model.ToDomain(), nil
}

func (r *gormNewsRepository) GetBySlug(ctx context.Context, slug string) (*news.Article, error) {
	model, err := getOne[models.NewsArticleModel](ctx, r.db, "news article", "slug", slug)
	if err != nil {
		return nil, err
	}
	return model.ToDomain(), nil
}

func (r *gormNewsRepository) Update(ctx context.Context, article *news.Article) error {
	if err := article.Validate(); err != nil {
		return err
	}

	model := &models.NewsArticleModel{}
	model.FromDomain(article)
	if err := r.db.WithContext(ctx).Save(model).Error; err != nil {
		return wrapError(err, "update", "news article")
	}
	article.UpdatedAt = model.UpdatedAt

	r.logger.Info("news article updated", "id", article.ID, "status", article.Status)
	return nil
}

func (r *gormNewsRepository) DeleteByID(ctx context.Context, id string) error {
	if err := deleteByID[models.NewsArticleModel](ctx, r.db, "news article", id); err != nil {
		return err
	}
	r.logger.Info("news article deleted", "id", id)
	return nil
}

func (r *gormNewsRepository) SlugExists(ctx context.Context, slug, excludeID string) (bool, error) {
	return slugExists[models.NewsArticleModel](ctx, r.db, slug, excludeID)
}

func (r *gormNewsRepository) IncrementViews(ctx context.Context, id string) error {
	result := r.db.WithContext(ctx).Model(&models.NewsArticleModel{}).
		Where("id = ?", id).
		UpdateColumn("view_count", gorm.Expr("view_count + ?", 1))
	if result.Error != nil {
		return wrapError(result.Error, "count view of", "news article")
	}
	if result.RowsAffected == 0 {
		return apperr.NotFound("news article", id)
	}
	return nil
}
