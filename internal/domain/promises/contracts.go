package promises

import "context"

// PromiseService manages promises
type PromiseService interface {
	Create(ctx context.Context, promise *Promise) (*Promise, error)
	Update(ctx context.Context, promise *Promise) (*Promise, error)
	GetByID(ctx context.Context, id string) (*Promise, error)
	DeleteByID(ctx context.Context, id string) error
	List(ctx context.Context, query *PromiseQuery) ([]*Promise, int64, error)
}

// PromiseRepository defines the interface for Promise persistence
type PromiseRepository interface {
	Create(ctx context.Context, promise *Promise) error
	List(ctx context.Context, query *PromiseQuery) ([]*Promise, int64, error)
	GetByID(ctx context.Context, id string) (*Promise, error)
	Update(ctx context.Context, promise *Promise) error
	DeleteByID(ctx context.Context, id string) error
}
