//go:build integration
// +build integration

package persistence

import (
	"context"
	"errors"
	"testing"

	"github.com/sabbir073/Complete-Political-website-sub006/internal/domain/store"
	"github.com/sabbir073/Complete-Political-website-sub006/internal/pkg/apperr"
	"github.com/sabbir073/Complete-Political-website-sub006/internal/pkg/config"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestOrder(product *store.Product, quantity int) *store.Order {
	return &store.Order{
		ID:           uuid.NewString(),
		OrderNumber:  "ORD-20260101-" + uuid.NewString()[:6],
		CustomerName: "Rahim Uddin",
		Phone:        "8801712345678",
		Address:      "House 4, Road 2, Sadar",
		Items: []*store.OrderItem{{
			ProductID:   product.ID,
			ProductName: product.NameEn,
			Quantity:    quantity,
			UnitPrice:   product.Price,
		}},
		Total:  product.Price * int64(quantity),
		Status: store.OrderPending,
	}
}

func TestProductSqliteRepository_AdjustStock(t *testing.T) {
	ctx := SetupTestDB(t, config.SqliteDbType)

	product := CreateTestProduct(t, "cap", 3)
	require.NoError(t, ctx.ProductRepo.Create(context.Background(), product))

	require.NoError(t, ctx.ProductRepo.AdjustStock(context.Background(), product.ID, -3))

	err := ctx.ProductRepo.AdjustStock(context.Background(), product.ID, -1)
	assert.ErrorIs(t, err, apperr.ErrConflict)

	require.NoError(t, ctx.ProductRepo.AdjustStock(context.Background(), product.ID, 5))
	fetched, err := ctx.ProductRepo.GetByID(context.Background(), product.ID)
	require.NoError(t, err)
	assert.Equal(t, 5, fetched.Stock)
}

func TestProductSqliteRepository_AdjustStock_UnknownProduct(t *testing.T) {
	ctx := SetupTestDB(t, config.SqliteDbType)

	err := ctx.ProductRepo.AdjustStock(context.Background(), uuid.NewString(), -1)
	assert.ErrorIs(t, err, apperr.ErrNotFound)
}

func TestProductSqliteRepository_SlugExistsAfterSoftDelete(t *testing.T) {
	ctx := SetupTestDB(t, config.SqliteDbType)

	product := CreateTestProduct(t, "mug", 1)
	require.NoError(t, ctx.ProductRepo.Create(context.Background(), product))
	require.NoError(t, ctx.ProductRepo.DeleteByID(context.Background(), product.ID))

	_, err := ctx.ProductRepo.GetBySlug(context.Background(), "mug")
	assert.ErrorIs(t, err, apperr.ErrNotFound)

	exists, err := ctx.ProductRepo.SlugExists(context.Background(), "mug", "")
	require.NoError(t, err)
	assert.True(t, exists)
}

func TestTransactor_CommitsOrderAndStock(t *testing.T) {
	ctx := SetupTestDB(t, config.SqliteDbType)

	product := CreateTestProduct(t, "flag", 4)
	require.NoError(t, ctx.ProductRepo.Create(context.Background(), product))
	order := newTestOrder(product, 3)

	err := ctx.Transactor.WithinTransaction(context.Background(), func(txCtx context.Context, products store.ProductRepository, orders store.OrderRepository) error {
		if err := products.AdjustStock(txCtx, product.ID, -3); err != nil {
			return err
		}
		return orders.Create(txCtx, order)
	})
	require.NoError(t, err)

	fetched, err := ctx.ProductRepo.GetByID(context.Background(), product.ID)
	require.NoError(t, err)
	assert.Equal(t, 1, fetched.Stock)

	stored, err := ctx.OrderRepo.GetByID(context.Background(), order.ID)
	require.NoError(t, err)
	require.Len(t, stored.Items, 1)
	assert.Equal(t, 3, stored.Items[0].Quantity)
	assert.Equal(t, order.Total, stored.Total)
}

func TestTransactor_RollsBackOnError(t *testing.T) {
	ctx := SetupTestDB(t, config.SqliteDbType)

	product := CreateTestProduct(t, "poster", 2)
	require.NoError(t, ctx.ProductRepo.Create(context.Background(), product))

	failure := errors.New("payment step failed")
	err := ctx.Transactor.WithinTransaction(context.Background(), func(txCtx context.Context, products store.ProductRepository, _ store.OrderRepository) error {
		if err := products.AdjustStock(txCtx, product.ID, -2); err != nil {
			return err
		}
		return failure
	})
	assert.ErrorIs(t, err, failure)

	fetched, err := ctx.ProductRepo.GetByID(context.Background(), product.ID)
	require.NoError(t, err)
	assert.Equal(t, 2, fetched.Stock)
}

func TestOrderSqliteRepository_ListByStatusAndPhone(t *testing.T) {
	ctx := SetupTestDB(t, config.SqliteDbType)

	product := CreateTestProduct(t, "sticker", 10)
	require.NoError(t, ctx.ProductRepo.Create(context.Background(), product))

	pending := newTestOrder(product, 1)
	require.NoError(t, ctx.OrderRepo.Create(context.Background(), pending))

	shipped := newTestOrder(product, 2)
	shipped.Phone = "8801812345678"
	shipped.Status = store.OrderShipped
	require.NoError(t, ctx.OrderRepo.Create(context.Background(), shipped))

	query := store.NewOrderQuery()
	query.Status = store.OrderShipped
	orders, total, err := ctx.OrderRepo.List(context.Background(), query)
	require.NoError(t, err)
	assert.Equal(t, int64(1), total)
	require.Len(t, orders, 1)
	assert.Equal(t, shipped.ID, orders[0].ID)

	query = store.NewOrderQuery()
	query.Phone = "8801712345678"
	orders, _, err = ctx.OrderRepo.List(context.Background(), query)
	require.NoError(t, err)
	require.Len(t, orders, 1)
	assert.Equal(t, pending.ID, orders[0].ID)
}
