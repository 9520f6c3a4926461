package app

import (
	"context"
	"fmt"
	"time"

	"github.com/sabbir073/Complete-Political-website-sub006/internal/domain/news"
	"github.com/sabbir073/Complete-Political-website-sub006/internal/pkg/apperr"
	"github.com/sabbir073/Complete-Political-website-sub006/internal/pkg/logger"

	"github.com/google/uuid"
)

// newsService implements the ArticleService interface
type newsService struct {
	repo   news.ArticleRepository
	logger logger.Logger
}

// NewNewsService creates a new instance of ArticleService
func NewNewsService(repo news.ArticleRepository, logger logger.Logger) (news.ArticleService, error) {
	return &newsService{repo: repo, logger: logger}, nil
}

// stampPublished sets published_at the first time an article is published
func stampPublished(article *news.Article) {
	if article.Status == news.StatusPublished && article.PublishedAt == nil {
		now := time.Now().UTC()
		article.PublishedAt = &now
	}
}

func (s *newsService) Create(ctx context.Context, article *news.Article) (*news.Article, error) {
	article.ID = uuid.NewString()
	article.ViewCount = 0

	slug, err := uniqueSlug(ctx, s.repo.SlugExists, article.Slug, article.TitleEn, "")
	if err != nil {
		return nil, fmt.Errorf("failed to generate slug: %w", err)
	}
	article.Slug = slug
	stampPublished(article)

	if err := s.repo.Create(ctx, article); err != nil {
		return nil, err
	}
	return article, nil
}

func (s *newsService) Update(ctx context.Context, article *news.Article) (*news.Article, error) {
	existing, err := s.repo.GetByID(ctx, article.ID)
	if err != nil {
		return nil, err
	}

	if article.Slug != existing.Slug {
		slug, err := uniqueSlug(ctx, s.repo.SlugExists, article.Slug, article.TitleEn, article.ID)
		if err != nil {
			return nil, fmt.Errorf("failed to generate slug: %w", err)
		}
		article.Slug = slug
	}
	if article.PublishedAt == nil {
		article.PublishedAt = existing.PublishedAt
	}
	article.ViewCount = existing.ViewCount
	article.AuthorID = existing.AuthorID
	article.CreatedAt = existing.CreatedAt
	stampPublished(article)

	if err := s.repo.Update(ctx, article); err != nil {
		return nil, err
	}
	return article, nil
}

func (s *newsService) GetByID(ctx context.Context, id string) (*news.Article, error) {
	return s.repo.GetByID(ctx, id)
}

func (s *newsService) DeleteByID(ctx context.Context, id string) error {
	return s.repo.DeleteByID(ctx, id)
}

func (s *newsService) List(ctx context.Context, query *news.ArticleQuery) ([]*news.Article, int64, error) {
	return s.repo.List(ctx, query)
}

func (s *newsService) ListPublished(ctx context.Context, query *news.ArticleQuery) ([]*news.Article, int64, error) {
	query.Status = news.StatusPublished
	return s.repo.List(ctx, query)
}

func (s *newsService) ViewPublished(ctx context.Context, slug string) (*news.Article, error) {
	article, err := s.repo.GetBySlug(ctx, slug)
	if err != nil {
		return nil, err
	}
	if article.Status != news.StatusPublished {
		return nil, apperr.NotFound("news article", slug)
	}

	if err := s.repo.IncrementViews(ctx, article.ID); err != nil {
		s.logger.Warn("failed to count article view", "id", article.ID, "error", err)
	} else {
		article.ViewCount++
	}
	return article, nil
}
