package news

import "context"

// ArticleService manages news articles
type ArticleService interface {
	// Create assigns an id and a unique slug, and stamps published_at when publishing.
	Create(ctx context.Context, article *Article) (*Article, error)
	Update(ctx context.Context, article *Article) (*Article, error)
	GetByID(ctx context.Context, id string) (*Article, error)
	DeleteByID(ctx context.Context, id string) error
	// List returns a page of articles in any status, newest first.
	List(ctx context.Context, query *ArticleQuery) ([]*Article, int64, error)
	// ListPublished returns a page of published articles.
	ListPublished(ctx context.Context, query *ArticleQuery) ([]*Article, int64, error)
	// ViewPublished returns a published article by slug and counts the view.
	ViewPublished(ctx context.Context, slug string) (*Article, error)
}

// ArticleRepository defines the interface for Article persistence
type ArticleRepository interface {
	Create(ctx context.Context, article *Article) error
	List(ctx context.Context, query *ArticleQuery) ([]*Article, int64, error)
	GetByID(ctx context.Context, id string) (*Article, error)
	GetBySlug(ctx context.Context, slug string) (*Article, error)
	Update(ctx context.Context, article *Article) error
	DeleteByID(ctx context.Context, id string) error
	SlugExists(ctx context.Context, slug, excludeID string) (bool, error)
	IncrementViews(ctx context.Context, id string) error
}
