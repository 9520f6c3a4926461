package store

import "context"

// ProductService manages the catalogue
type ProductService interface {
	Create(ctx context.Context, product *Product) (*Product, error)
	Update(ctx context.Context, product *Product) (*Product, error)
	GetByID(ctx context.Context, id string) (*Product, error)
	DeleteByID(ctx context.Context, id string) error
	List(ctx context.Context, query *ProductQuery) ([]*Product, int64, error)
	ListActive(ctx context.Context, query *ProductQuery) ([]*Product, int64, error)
	GetActiveBySlug(ctx context.Context, slug string) (*Product, error)
}

// OrderService places and manages orders
type OrderService interface {
	// Place checks and decrements stock, prices the items from the catalogue and
	// stores the order in one transaction. Insufficient stock is apperr.ErrConflict.
	Place(ctx context.Context, request *OrderRequest) (*Order, error)
	List(ctx context.Context, query *OrderQuery) ([]*Order, int64, error)
	GetByID(ctx context.Context, id string) (*Order, error)
	// UpdateStatus moves an order along; cancelling restores the reserved stock.
	UpdateStatus(ctx context.Context, id, status string) (*Order, error)
}

// ProductRepository defines the interface for Product persistence
type ProductRepository interface {
	Create(ctx context.Context, product *Product) error
	List(ctx context.Context, query *ProductQuery) ([]*Product, int64, error)
	GetByID(ctx context.Context, id string) (*Product, error)
	GetBySlug(ctx context.Context, slug string) (*Product, error)
	Update(ctx context.Context, product *Product) error
	DeleteByID(ctx context.Context, id string) error
	SlugExists(ctx context.Context, slug, excludeID string) (bool, error)
	// AdjustStock adds delta to the stock; it fails with apperr.ErrConflict if the result would be negative.
	AdjustStock(ctx context.Context, id string, delta int) error
}

// OrderRepository defines the interface for Order persistence
type OrderRepository interface {
	Create(ctx context.Context, order *Order) error
	List(ctx context.Context, query *OrderQuery) ([]*Order, int64, error)
	GetByID(ctx context.Context, id string) (*Order, error)
	Update(ctx context.Context, order *Order) error
}

// Transactor runs fn with repositories bound to a single database transaction.
// The transaction commits when fn returns nil and rolls back otherwise.
type Transactor interface {
	WithinTransaction(ctx context.Context, fn func(ctx context.Context, products ProductRepository, orders OrderRepository) error) error
}
