package persistence

import (
	"context"
	"fmt"

	"github.com/sabbir073/Complete-Political-website-sub006/internal/domain/store"
	"github.com/sabbir073/Complete-Political-website-sub006/internal/infrastructure/persistence/models"
	"github.com/sabbir073/Complete-Political-website-sub006/internal/pkg/apperr"
	"github.com/sabbir073/Complete-Political-website-sub006/internal/pkg/logger"

	"gorm.io/gorm"
)

type gormProductRepository struct {
	db     *gorm.DB
	logger logger.Logger
}

// NewGormProductRepository creates a new GORM-based ProductRepository implementation
func NewGormProductRepository(db *gorm.DB, logger logger.Logger) (store.ProductRepository, error) {
	return &gormProductRepository{db: db, logger: logger}, nil
}

func (r *gormProductRepository) Create(ctx context.Context, product *store.Product) error {
	if err := product.Validate(); err != nil {
		return err
	}

	model := &models.ProductModel{}
	model.FromDomain(product)
	if err := r.db.WithContext(ctx).Create(model).Error; err != nil {
		return wrapError(err, "create", "product")
	}
	product.CreatedAt, product.UpdatedAt = model.CreatedAt, model.UpdatedAt

	r.logger.Info("product created", "id", product.ID, "slug", product.Slug, "stock", product.Stock)
	return nil
}

func (r *gormProductRepository) List(ctx context.Context, query *store.ProductQuery) ([]*store.Product, int64, error) {
	if err := query.Validate(); err != nil {
		return nil, 0, err
	}

	dbQuery := r.db.WithContext(ctx).Model(&models.ProductModel{})
	if query.Status != "" {
		dbQuery = dbQuery.Where("status = ?", query.Status)
	}
	if query.Search != "" {
		dbQuery = whereLike(dbQuery, query.Search, "name_en", "name_bn")
	}

	rows, total, err := findPage[models.ProductModel](dbQuery.Session(&gorm.Session{}), query.Params, "created_at DESC")
	if err != nil {
		return nil, 0, wrapError(err, "list", "products")
	}

	result := make([]*store.Product, len(rows))
	for i, row := range rows {
		result[i] = row.ToDomain()
	}
	return result, total, nil
}

func (r *gormProductRepository) GetByID(ctx context.Context, id string) (*store.Product, error) {
	model, err := getOne[models.ProductModel](ctx, r.db, "product", "id", id)
	if err != nil {
		return nil, err
	}
	return model.ToDomain(), nil
}

func (r *gormProductRepository) GetBySlug(ctx context.Context, slug string) (*store.Product, error) {
	model, err := getOne[models.ProductModel](ctx, r.db, "product", "slug", slug)
	if err != nil {
		return nil, err
	}
	return model.ToDomain(), nil
}

func (r *gormProductRepository) Update(ctx context.Context, product *store.Product) error {
	if err := product.Validate(); err != nil {
		return err
	}

	model := &models.ProductModel{}
	model.FromDomain(product)
	if err := r.db.WithContext(ctx).Save(model).Error; err != nil {
		return wrapError(err, "update", "product")
	}
	product.UpdatedAt = model.UpdatedAt

	r.logger.Info("product updated", "id", product.ID)
	return nil
}

func (r *gormProductRepository) DeleteByID(ctx context.Context, id string) error {
	if err := deleteByID[models.ProductModel](ctx, r.db, "product", id); err != nil {
		return err
	}
	r.logger.Info("product deleted", "id", id)
	return nil
}

func (r *gormProductRepository) SlugExists(ctx context.Context, slug, excludeID string) (bool, error) {
	return slugExists[models.ProductModel](ctx, r.db, slug, excludeID)
}

// AdjustStock applies delta in a single conditional UPDATE so concurrent orders cannot oversell
func (r *gormProductRepository) AdjustStock(ctx context.Context, id string, delta int) error {
	result := r.db.WithContext(ctx).Model(&models.ProductModel{}).
		Where("id = ? AND stock + ? >= 0", id, delta).
		UpdateColumn("stock", gorm.Expr("stock + ?", delta))
	if result.Error != nil {
		return wrapError(result.Error, "adjust stock of", "product")
	}
	if result.RowsAffected == 0 {
		if _, err := r.GetByID(ctx, id); err != nil {
			return err
		}
		return fmt.Errorf("%w: insufficient stock for product %s", apperr.ErrConflict, id)
	}
	return nil
}

type gormOrderRepository struct {
	db     *gorm.DB
	logger logger.Logger
}

// NewGormOrderRepository creates a new GORM-based OrderRepository implementation
func NewGormOrderRepository(db *gorm.DB, logger logger.Logger) (store.OrderRepository, error) {
	return &gormOrderRepository{db: db, logger: logger}, nil
}

func (r *gormOrderRepository) Create(ctx context.Context, order *store.Order) error {
	if err := order.Validate(); err != nil {
		return err
	}

	model := &models.OrderModel{}
	model.FromDomain(order)
	if err := r.db.WithContext(ctx).Create(model).Error; err != nil {
		return wrapError(err, "create", "order")
	}
	order.CreatedAt, order.UpdatedAt = model.CreatedAt, model.UpdatedAt

	r.logger.Info("order created", "id", order.ID, "order_number", order.OrderNumber, "total", order.Total)
	return nil
}

func (r *gormOrderRepository) List(ctx context.Context, query *store.OrderQuery) ([]*store.Order, int64, error) {
	if err := query.Validate(); err != nil {
		return nil, 0, err
	}

	dbQuery := r.db.WithContext(ctx).Model(&models.OrderModel{})
	if query.Status != "" {
		dbQuery = dbQuery.Where("status = ?", query.Status)
	}
	if query.Phone != "" {
		dbQuery = dbQuery.Where("phone = ?", query.Phone)
	}

	rows, total, err := findPage[models.OrderModel](dbQuery.Session(&gorm.Session{}), query.Params, "created_at DESC")
	if err != nil {
		return nil, 0, wrapError(err, "list", "orders")
	}

	result := make([]*store.Order, len(rows))
	for i, row := range rows {
		result[i] = row.ToDomain()
	}
	return result, total, nil
}

func (r *gormOrderRepository) GetByID(ctx context.Context, id string) (*store.Order, error) {
	model, err := getOne[models.OrderModel](ctx, r.db, "order", "id", id)
	if err != nil {
		return nil, err
	}
	return model.ToDomain(), nil
}

func (r *gormOrderRepository) Update(ctx context.Context, order *store.Order) error {
	if err := order.Validate(); err != nil {
		return err
	}

	model := &models.OrderModel{}
	model.FromDomain(order)
	if err := r.db.WithContext(ctx).Save(model).Error; err != nil {
		return wrapError(err, "update", "order")
	}
	order.UpdatedAt = model.UpdatedAt

	r.logger.Info("order updated", "id", order.ID, "status", order.Status)
	return nil
}

type gormTransactor struct {
	db     *gorm.DB
	logger logger.Logger
}

// NewGormTransactor creates a store.Transactor backed by db.Transaction
func NewGormTransactor(db *gorm.DB, logger logger.Logger) (store.Transactor, error) {
	return &gormTransactor{db: db, logger: logger}, nil
}

func (t *gormTransactor) WithinTransaction(ctx context.Context, fn func(ctx context.Context, products store.ProductRepository, orders store.OrderRepository) error) error {
	return t.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		products := &gormProductRepository{db: tx, logger: t.logger}
		orders := &gormOrderRepository{db: tx, logger: t.logger}
		return fn(ctx, products, orders)
	})
}
