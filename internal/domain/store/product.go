package store

import (
	"time"

	"github.com/sabbir073/Complete-Political-website-sub006/internal/pkg/pagination"
	"github.com/sabbir073/Complete-Political-website-sub006/internal/pkg/validators"
)

// Product statuses
const (
	ProductActive   = "active"
	ProductInactive = "inactive"
)

// Product is campaign merchandise. Price is in minor units (poisha).
type Product struct {
	ID            string    `json:"id" validate:"required,uuid4"`
	Slug          string    `json:"slug" validate:"required,slug,max=200"`
	NameEn        string    `json:"name_en" validate:"required,max=255"`
	NameBn        string    `json:"name_bn" validate:"max=255"`
	DescriptionEn string    `json:"description_en"`
	DescriptionBn string    `json:"description_bn"`
	Price         int64     `json:"price" validate:"gte=0"`
	Stock         int       `json:"stock" validate:"gte=0"`
	Images        []string  `json:"images" validate:"omitempty,max=10,dive,url"`
	Status        string    `json:"status" validate:"required,oneof=active inactive"`
	CreatedAt     time.Time `json:"created_at"`
	UpdatedAt     time.Time `json:"updated_at"`
}

// Validate for validating Product struct
func (p *Product) Validate() error {
	return validators.ValidateStruct(p)
}

// ProductQuery filters product listings
type ProductQuery struct {
	pagination.Params
	Status string `validate:"omitempty,oneof=active inactive"`
	Search string `validate:"max=100"`
}

// NewProductQuery creates a ProductQuery with default pagination
func NewProductQuery() *ProductQuery {
	return &ProductQuery{Params: pagination.New(0, 0)}
}

// Validate for validating ProductQuery struct
func (q *ProductQuery) Validate() error {
	return validators.ValidateStruct(q)
}
