package models

import (
	"github.com/sabbir073/Complete-Political-website-sub006/internal/domain/store"

	"gorm.io/datatypes"
)

// ProductModel is the GORM database model for store products
type ProductModel struct {
	SoftDeleteBase
	Slug          string                      `gorm:"not null;uniqueIndex;type:varchar(200)"`
	NameEn        string                      `gorm:"not null;type:varchar(255)"`
	NameBn        string                      `gorm:"type:varchar(255)"`
	DescriptionEn string                      `gorm:"type:text"`
	DescriptionBn string                      `gorm:"type:text"`
	Price         int64                       `gorm:"not null"`
	Stock         int                         `gorm:"not null;default:0"`
	Images        datatypes.JSONSlice[string] `gorm:"type:json"`
	Status        string                      `gorm:"not null;index;type:varchar(20)"`
}

// TableName specifies the table name for GORM
func (ProductModel) TableName() string {
	return "products"
}

// ToDomain converts GORM model to domain entity
func (m *ProductModel) ToDomain() *store.Product {
	images := []string(m.Images)
	if images == nil {
		images = []string{}
	}
	return &store.Product{
		ID:            m.ID,
		Slug:          m.Slug,
		NameEn:        m.NameEn,
		NameBn:        m.NameBn,
		DescriptionEn: m.DescriptionEn,
		DescriptionBn: m.DescriptionBn,
		Price:         m.Price,
		Stock:         m.Stock,
		Images:        images,
		Status:        m.Status,
		CreatedAt:     m.CreatedAt,
		UpdatedAt:     m.UpdatedAt,
	}
}

// FromDomain converts domain entity to GORM model
func (m *ProductModel) FromDomain(p *store.Product) {
	m.ID = p.ID
	m.Slug = p.Slug
	m.NameEn = p.NameEn
	m.NameBn = p.NameBn
	m.DescriptionEn = p.DescriptionEn
	m.DescriptionBn = p.DescriptionBn
	m.Price = p.Price
	m.Stock = p.Stock
	m.Images = datatypes.JSONSlice[string](p.Images)
	m.Status = p.Status
	m.CreatedAt = p.CreatedAt
	m.UpdatedAt = p.UpdatedAt
}

// OrderItemJSON is the stored form of an order line
type OrderItemJSON struct {
	ProductID   string `json:"product_id"`
	ProductName string `json:"product_name"`
	Quantity    int    `json:"quantity"`
	UnitPrice   int64  `json:"unit_price"`
}

// OrderModel is the GORM database model for store orders
type OrderModel struct {
	Base
	OrderNumber  string                             `gorm:"not null;uniqueIndex;type:varchar(32)"`
	CustomerName string                             `gorm:"not null;type:varchar(120)"`
	Phone        string                             `gorm:"not null;index;type:varchar(20)"`
	Email        string                             `gorm:"type:varchar(255)"`
	Address      string                             `gorm:"not null;type:varchar(500)"`
	Note         string                             `gorm:"type:text"`
	Items        datatypes.JSONSlice[OrderItemJSON] `gorm:"type:json;not null"`
	Total        int64                              `gorm:"not null"`
	Status       string                             `gorm:"not null;index;type:varchar(20)"`
}

// TableName specifies the table name for GORM
func (OrderModel) TableName() string {
	return "orders"
}

// ToDomain converts GORM model to domain entity
func (m *OrderModel) ToDomain() *store.Order {
	items := make([]*store.OrderItem, 0, len(m.Items))
	for _, it := range m.Items {
		items = append(items, &store.OrderItem{
			ProductID:   it.ProductID,
			ProductName: it.ProductName,
			Quantity:    it.Quantity,
			UnitPrice:   it.UnitPrice,
		})
	}
	return &store.Order{
		ID:           m.ID,
		OrderNumber:  m.OrderNumber,
		CustomerName: m.CustomerName,
		Phone:        m.Phone,
		Email:        m.Email,
		Address:      m.Address,
		Note:         m.Note,
		Items:        items,
		Total:        m.Total,
		Status:       m.Status,
		CreatedAt:    m.CreatedAt,
		UpdatedAt:    m.UpdatedAt,
	}
}

// FromDomain converts domain entity to GORM model
func (m *OrderModel) FromDomain(o *store.Order) {
	items := make(datatypes.JSONSlice[OrderItemJSON], 0, len(o.Items))
	for _, it := range o.Items {
		items = append(items, OrderItemJSON{
			ProductID:   it.ProductID,
			ProductName: it.ProductName,
			Quantity:    it.Quantity,
			UnitPrice:   it.UnitPrice,
		})
	}
	m.ID = o.ID
	m.OrderNumber = o.OrderNumber
	m.CustomerName = o.CustomerName
	m.Phone = o.Phone
	m.Email = o.Email
	m.Address = o.Address
	m.Note = o.Note
	m.Items = items
	m.Total = o.Total
	m.Status = o.Status
	m.CreatedAt = o.CreatedAt
	m.UpdatedAt = o.UpdatedAt
}
