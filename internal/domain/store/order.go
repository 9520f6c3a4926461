package store

import (
	"time"

	"github.com/sabbir073/Complete-Political-website-sub006/internal/pkg/pagination"
	"github.com/sabbir073/Complete-Political-website-sub006/internal/pkg/validators"
)

// Order statuses
const (
	OrderPending   = "pending"
	OrderConfirmed = "confirmed"
	OrderShipped   = "shipped"
	OrderDelivered = "delivered"
	OrderCancelled = "cancelled"
)

// OrderNumberPrefix starts every order number
const OrderNumberPrefix = "ORD"

// MaxOrderQuantity caps a single line item
const MaxOrderQuantity = 100

// Order is a store order. Total is in minor units.
type Order struct {
	ID           string       `json:"id" validate:"required,uuid4"`
	OrderNumber  string       `json:"order_number" validate:"required,max=32"`
	CustomerName string       `json:"customer_name" validate:"required,max=120"`
	Phone        string       `json:"phone" validate:"required,bdphone"`
	Email        string       `json:"email,omitempty" validate:"omitempty,email"`
	Address      string       `json:"address" validate:"required,max=500"`
	Note         string       `json:"note,omitempty" validate:"max=1000"`
	Items        []*OrderItem `json:"items" validate:"required,min=1,dive"`
	Total        int64        `json:"total" validate:"gte=0"`
	Status       string       `json:"status" validate:"required,oneof=pending confirmed shipped delivered cancelled"`
	CreatedAt    time.Time    `json:"created_at"`
	UpdatedAt    time.Time    `json:"updated_at"`
}

// Validate for validating Order struct
func (o *Order) Validate() error {
	return validators.ValidateStruct(o)
}

// OrderItem is one line of an order, priced when the order was placed
type OrderItem struct {
	ProductID   string `json:"product_id" validate:"required,uuid4"`
	ProductName string `json:"product_name"`
	Quantity    int    `json:"quantity" validate:"required,min=1,max=100"`
	UnitPrice   int64  `json:"unit_price" validate:"gte=0"`
}

// OrderRequest is what a customer submits; prices come from the catalogue, never the client
type OrderRequest struct {
	CustomerName string             `json:"customer_name" validate:"required,max=120"`
	Phone        string             `json:"phone" validate:"required,bdphone"`
	Email        string             `json:"email" validate:"omitempty,email"`
	Address      string             `json:"address" validate:"required,max=500"`
	Note         string             `json:"note" validate:"max=1000"`
	Items        []OrderRequestItem `json:"items" validate:"required,min=1,max=50,dive"`
}

// OrderRequestItem is a requested product and quantity
type OrderRequestItem struct {
	ProductID string `json:"product_id" validate:"required,uuid4"`
	Quantity  int    `json:"quantity" validate:"required,min=1,max=100"`
}

// Validate for validating OrderRequest struct
func (r *OrderRequest) Validate() error {
	return validators.ValidateStruct(r)
}

// OrderQuery filters order listings
type OrderQuery struct {
	pagination.Params
	Status string `validate:"omitempty,oneof=pending confirmed shipped delivered cancelled"`
	Phone  string
}

// NewOrderQuery creates an OrderQuery with default pagination
func NewOrderQuery() *OrderQuery {
	return &OrderQuery{Params: pagination.New(0, 0)}
}

// Validate for validating OrderQuery struct
func (q *OrderQuery) Validate() error {
	return validators.ValidateStruct(q)
}
