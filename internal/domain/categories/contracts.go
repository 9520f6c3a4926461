package categories

import "context"

// CategoryService manages categories
type CategoryService interface {
	// Create generates a slug when none is set and persists the category.
	Create(ctx context.Context, category *Category) (*Category, error)
	// List returns all categories, optionally scoped to a type.
	List(ctx context.Context, categoryType string) ([]*Category, error)
	GetByID(ctx context.Context, id string) (*Category, error)
	Update(ctx context.Context, category *Category) (*Category, error)
	DeleteByID(ctx context.Context, id string) error
}

// CategoryRepository defines the interface for Category persistence
type CategoryRepository interface {
	Create(ctx context.Context, category *Category) error
	List(ctx context.Context, categoryType string) ([]*Category, error)
	GetByID(ctx context.Context, id string) (*Category, error)
	Update(ctx context.Context, category *Category) error
	DeleteByID(ctx context.Context, id string) error
	// SlugExists reports whether slug is taken by a row other than excludeID.
	SlugExists(ctx context.Context, slug, excludeID string) (bool, error)
}
