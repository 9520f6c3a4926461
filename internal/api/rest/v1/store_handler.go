package v1

import (
	"net/http"

	"github.com/sabbir073/Complete-Political-website-sub006/internal/domain/store"

	"github.com/gin-gonic/gin"
)

// ProductHandler defines the interface for store product endpoints
type ProductHandler interface {
	ListActive(ctx *gin.Context)
	GetActiveBySlug(ctx *gin.Context)
	List(ctx *gin.Context)
	GetByID(ctx *gin.Context)
	Create(ctx *gin.Context)
	Update(ctx *gin.Context)
	DeleteByID(ctx *gin.Context)
}

type productHandler struct {
	productService store.ProductService
}

// NewProductHandler creates a new ProductHandler
func NewProductHandler(productService store.ProductService) ProductHandler {
	return &productHandler{productService: productService}
}

func productQuery(ctx *gin.Context) *store.ProductQuery {
	query := store.NewProductQuery()
	query.Params = pageParams(ctx)
	query.Status = ctx.Query("status")
	query.Search = ctx.Query("search")
	return query
}

// ListActive lists products on sale
func (handler *productHandler) ListActive(ctx *gin.Context) {
	query := productQuery(ctx)
	list, total, err := handler.productService.ListActive(ctx, query)
	if err != nil {
		respondError(ctx, err)
		return
	}
	respondList(ctx, list, query.Params, total)
}

// GetActiveBySlug returns a product on sale
func (handler *productHandler) GetActiveBySlug(ctx *gin.Context) {
	product, err := handler.productService.GetActiveBySlug(ctx, ctx.Param("slug"))
	if err != nil {
		respondError(ctx, err)
		return
	}
	respond(ctx, http.StatusOK, product)
}

// List lists products in any status
func (handler *productHandler) List(ctx *gin.Context) {
	query := productQuery(ctx)
	list, total, err := handler.productService.List(ctx, query)
	if err != nil {
		respondError(ctx, err)
		return
	}
	respondList(ctx, list, query.Params, total)
}

// GetByID returns a product by id
func (handler *productHandler) GetByID(ctx *gin.Context) {
	product, err := handler.productService.GetByID(ctx, ctx.Param("id"))
	if err != nil {
		respondError(ctx, err)
		return
	}
	respond(ctx, http.StatusOK, product)
}

// Create creates a product
func (handler *productHandler) Create(ctx *gin.Context) {
	var product store.Product
	if !bindJSON(ctx, &product) {
		return
	}
	created, err := handler.productService.Create(ctx, &product)
	if err != nil {
		respondError(ctx, err)
		return
	}
	respond(ctx, http.StatusCreated, created)
}

// Update replaces a product
func (handler *productHandler) Update(ctx *gin.Context) {
	var product store.Product
	if !bindJSON(ctx, &product) {
		return
	}
	product.ID = ctx.Param("id")

	updated, err := handler.productService.Update(ctx, &product)
	if err != nil {
		respondError(ctx, err)
		return
	}
	respond(ctx, http.StatusOK, updated)
}

// DeleteByID deletes a product
func (handler *productHandler) DeleteByID(ctx *gin.Context) {
	if err := handler.productService.DeleteByID(ctx, ctx.Param("id")); err != nil {
		respondError(ctx, err)
		return
	}
	ctx.Status(http.StatusNoContent)
}

// OrderHandler defines the interface for store order endpoints
type OrderHandler interface {
	Place(ctx *gin.Context)
	List(ctx *gin.Context)
	GetByID(ctx *gin.Context)
	UpdateStatus(ctx *gin.Context)
}

type orderHandler struct {
	orderService store.OrderService
}

// NewOrderHandler creates a new OrderHandler
func NewOrderHandler(orderService store.OrderService) OrderHandler {
	return &orderHandler{orderService: orderService}
}

// Place places an order, reserving stock at the current prices
func (handler *orderHandler) Place(ctx *gin.Context) {
	var request store.OrderRequest
	if !bindJSON(ctx, &request) {
		return
	}
	order, err := handler.orderService.Place(ctx, &request)
	if err != nil {
		respondError(ctx, err)
		return
	}
	respond(ctx, http.StatusCreated, order)
}

// List lists orders, optionally filtered by status and phone
func (handler *orderHandler) List(ctx *gin.Context) {
	query := store.NewOrderQuery()
	query.Params = pageParams(ctx)
	query.Status = ctx.Query("status")
	query.Phone = ctx.Query("phone")

	list, total, err := handler.orderService.List(ctx, query)
	if err != nil {
		respondError(ctx, err)
		return
	}
	respondList(ctx, list, query.Params, total)
}

// GetByID returns an order by id
func (handler *orderHandler) GetByID(ctx *gin.Context) {
	order, err := handler.orderService.GetByID(ctx, ctx.Param("id"))
	if err != nil {
		respondError(ctx, err)
		return
	}
	respond(ctx, http.StatusOK, order)
}

// UpdateStatus moves an order along its fulfilment states
func (handler *orderHandler) UpdateStatus(ctx *gin.Context) {
	var request StatusRequest
	if !bindJSON(ctx, &request) {
		return
	}
	if err := request.Validate(); err != nil {
		respondError(ctx, err)
		return
	}

	order, err := handler.orderService.UpdateStatus(ctx, ctx.Param("id"), request.Status)
	if err != nil {
		respondError(ctx, err)
		return
	}
	respond(ctx, http.StatusOK, order)
}
