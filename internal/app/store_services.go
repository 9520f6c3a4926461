package app

import (
	"context"
	"errors"
	"fmt"
	"slices"
	"time"

	"github.com/sabbir073/Complete-Political-website-sub006/internal/domain/store"
	"github.com/sabbir073/Complete-Political-website-sub006/internal/pkg/apperr"
	"github.com/sabbir073/Complete-Political-website-sub006/internal/pkg/logger"
	"github.com/sabbir073/Complete-Political-website-sub006/internal/pkg/validators"

	"github.com/google/uuid"
)

// productService implements the ProductService interface
type productService struct {
	repo   store.ProductRepository
	logger logger.Logger
}

// NewProductService creates a new instance of ProductService
func NewProductService(repo store.ProductRepository, logger logger.Logger) (store.ProductService, error) {
	return &productService{repo: repo, logger: logger}, nil
}

func (s *productService) Create(ctx context.Context, product *store.Product) (*store.Product, error) {
	product.ID = uuid.NewString()

	slug, err := uniqueSlug(ctx, s.repo.SlugExists, product.Slug, product.NameEn, "")
	if err != nil {
		return nil, fmt.Errorf("failed to generate slug: %w", err)
	}
	product.Slug = slug

	if err := s.repo.Create(ctx, product); err != nil {
		return nil, err
	}
	return product, nil
}

func (s *productService) Update(ctx context.Context, product *store.Product) (*store.Product, error) {
	existing, err := s.repo.GetByID(ctx, product.ID)
	if err != nil {
		return nil, err
	}

	if product.Slug != existing.Slug {
		slug, err := uniqueSlug(ctx, s.repo.SlugExists, product.Slug, product.NameEn, product.ID)
		if err != nil {
			return nil, fmt.Errorf("failed to generate slug: %w", err)
		}
		product.Slug = slug
	}
	product.CreatedAt = existing.CreatedAt

	if err := s.repo.Update(ctx, product); err != nil {
		return nil, err
	}
	return product, nil
}

func (s *productService) GetByID(ctx context.Context, id string) (*store.Product, error) {
	return s.repo.GetByID(ctx, id)
}

func (s *productService) DeleteByID(ctx context.Context, id string) error {
	return s.repo.DeleteByID(ctx, id)
}

func (s *productService) List(ctx context.Context, query *store.ProductQuery) ([]*store.Product, int64, error) {
	return s.repo.List(ctx, query)
}

func (s *productService) ListActive(ctx context.Context, query *store.ProductQuery) ([]*store.Product, int64, error) {
	query.Status = store.ProductActive
	return s.repo.List(ctx, query)
}

func (s *productService) GetActiveBySlug(ctx context.Context, slug string) (*store.Product, error) {
	product, err := s.repo.GetBySlug(ctx, slug)
	if err != nil {
		return nil, err
	}
	if product.Status != store.ProductActive {
		return nil, apperr.NotFound("product", slug)
	}
	return product, nil
}

// orderTransitions lists the statuses an order may move to from each status
var orderTransitions = map[string][]string{
	store.OrderPending:   {store.OrderConfirmed, store.OrderCancelled},
	store.OrderConfirmed: {store.OrderShipped, store.OrderCancelled},
	store.OrderShipped:   {store.OrderDelivered},
}

// orderService implements the OrderService interface
type orderService struct {
	orders     store.OrderRepository
	transactor store.Transactor
	logger     logger.Logger
}

// NewOrderService creates a new instance of OrderService
func NewOrderService(orders store.OrderRepository, transactor store.Transactor, logger logger.Logger) (store.OrderService, error) {
	return &orderService{orders: orders, transactor: transactor, logger: logger}, nil
}

// mergeItems folds repeated products into a single line, keeping first-seen order
func mergeItems(items []store.OrderRequestItem) ([]store.OrderRequestItem, error) {
	merged := make([]store.OrderRequestItem, 0, len(items))
	index := make(map[string]int, len(items))
	for _, item := range items {
		if i, ok := index[item.ProductID]; ok {
			merged[i].Quantity += item.Quantity
			continue
		}
		index[item.ProductID] = len(merged)
		merged = append(merged, item)
	}
	for _, item := range merged {
		if item.Quantity > store.MaxOrderQuantity {
			return nil, apperr.Validation(fmt.Sprintf("quantity for product %s exceeds %d", item.ProductID, store.MaxOrderQuantity))
		}
	}
	return merged, nil
}

func (s *orderService) Place(ctx context.Context, request *store.OrderRequest) (*store.Order, error) {
	if err := request.Validate(); err != nil {
		return nil, err
	}
	phone, err := validators.NormalizeBDPhone(request.Phone)
	if err != nil {
		return nil, err
	}
	items, err := mergeItems(request.Items)
	if err != nil {
		return nil, err
	}
	orderNumber, err := newReferenceCode(store.OrderNumberPrefix, time.Now())
	if err != nil {
		return nil, err
	}

	order := &store.Order{
		ID:           uuid.NewString(),
		OrderNumber:  orderNumber,
		CustomerName: request.CustomerName,
		Phone:        phone,
		Email:        request.Email,
		Address:      request.Address,
		Note:         request.Note,
		Status:       store.OrderPending,
	}

	err = s.transactor.WithinTransaction(ctx, func(ctx context.Context, products store.ProductRepository, orders store.OrderRepository) error {
		order.Items = make([]*store.OrderItem, 0, len(items))
		order.Total = 0

		for _, item := range items {
			product, err := products.GetByID(ctx, item.ProductID)
			if err != nil {
				return err
			}
			if product.Status != store.ProductActive {
				return apperr.NotFound("product", item.ProductID)
			}
			if err := products.AdjustStock(ctx, product.ID, -item.Quantity); err != nil {
				return err
			}

			order.Items = append(order.Items, &store.OrderItem{
				ProductID:   product.ID,
				ProductName: product.NameEn,
				Quantity:    item.Quantity,
				UnitPrice:   product.Price,
			})
			order.Total += product.Price * int64(item.Quantity)
		}

		return orders.Create(ctx, order)
	})
	if err != nil {
		return nil, err
	}

	s.logger.Info("order placed", "order_number", order.OrderNumber, "total", order.Total)
	return order, nil
}

func (s *orderService) List(ctx context.Context, query *store.OrderQuery) ([]*store.Order, int64, error) {
	if query.Phone != "" {
		if phone, err := validators.NormalizeBDPhone(query.Phone); err == nil {
			query.Phone = phone
		}
	}
	return s.orders.List(ctx, query)
}

func (s *orderService) GetByID(ctx context.Context, id string) (*store.Order, error) {
	return s.orders.GetByID(ctx, id)
}

func (s *orderService) UpdateStatus(ctx context.Context, id, status string) (*store.Order, error) {
	if !isOrderStatus(status) {
		return nil, apperr.Validation(fmt.Sprintf("unknown order status %q", status))
	}

	var order *store.Order
	err := s.transactor.WithinTransaction(ctx, func(ctx context.Context, products store.ProductRepository, orders store.OrderRepository) error {
		var err error
		order, err = orders.GetByID(ctx, id)
		if err != nil {
			return err
		}
		if order.Status == status {
			return nil
		}
		if !canTransition(order.Status, status) {
			return apperr.Conflict(fmt.Sprintf("order cannot move from %s to %s", order.Status, status))
		}

		if status == store.OrderCancelled {
			for _, item := range order.Items {
				if err := products.AdjustStock(ctx, item.ProductID, item.Quantity); err != nil {
					if errors.Is(err, apperr.ErrNotFound) {
						s.logger.Warn("product gone, stock not restored", "product_id", item.ProductID)
						continue
					}
					return err
				}
			}
		}

		order.Status = status
		return orders.Update(ctx, order)
	})
	if err != nil {
		return nil, err
	}
	return order, nil
}

func canTransition(from, to string) bool {
	return slices.Contains(orderTransitions[from], to)
}

func isOrderStatus(status string) bool {
	switch status {
	case store.OrderPending, store.OrderConfirmed, store.OrderShipped, store.OrderDelivered, store.OrderCancelled:
		return true
	}
	return false
}
