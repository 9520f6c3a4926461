package persistence

import (
	"context"
	"time"

	"github.com/sabbir073/Complete-Political-website-sub006/internal/domain/seo"
	"github.com/sabbir073/Complete-Political-website-sub006/internal/infrastructure/persistence/models"

	"gorm.io/gorm"
)

type gormSitemapRepository struct {
	db *gorm.DB
}

// NewGormSitemapRepository creates a new GORM-based SitemapRepository implementation
func NewGormSitemapRepository(db *gorm.DB) (seo.SitemapRepository, error) {
	return &gormSitemapRepository{db: db}, nil
}

type sitemapRow struct {
	Slug      string
	UpdatedAt time.Time
}

type sitemapSource struct {
	model      interface{}
	status     string
	prefix     string
	changeFreq string
	priority   float64
}

var sitemapSources = []sitemapSource{
	{model: &models.NewsArticleModel{}, status: "published", prefix: "/news/", changeFreq: "weekly", priority: 0.8},
	{model: &models.EventModel{}, status: "published", prefix: "/events/", changeFreq: "weekly", priority: 0.7},
	{model: &models.AlbumModel{}, status: "published", prefix: "/gallery/", changeFreq: "monthly", priority: 0.6},
	{model: &models.ProductModel{}, status: "active", prefix: "/store/", changeFreq: "weekly", priority: 0.5},
	{model: &models.ChallengeModel{}, status: "active", prefix: "/challenges/", changeFreq: "daily", priority: 0.6},
}

func (r *gormSitemapRepository) ListEntries(ctx context.Context) ([]seo.SitemapEntry, error) {
	var entries []seo.SitemapEntry
	for _, source := range sitemapSources {
		var rows []sitemapRow
		err := r.db.WithContext(ctx).Model(source.model).
			Select("slug", "updated_at").
			Where("status = ?", source.status).
			Order("updated_at DESC").
			Scan(&rows).Error
		if err != nil {
			return nil, wrapError(err, "list", "sitemap entries")
		}

		for _, row := range rows {
			entries = append(entries, seo.SitemapEntry{
				Path:       source.prefix + row.Slug,
				LastMod:    row.UpdatedAt,
				ChangeFreq: source.changeFreq,
				Priority:   source.priority,
			})
		}
	}
	return entries, nil
}
