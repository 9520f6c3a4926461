package models

import (
	"github.com/sabbir073/Complete-Political-website-sub006/internal/domain/categories"
)

// CategoryModel is the GORM database model for categories
type CategoryModel struct {
	SoftDeleteBase
	Slug   string `gorm:"not null;uniqueIndex;type:varchar(120)"`
	NameEn string `gorm:"not null;type:varchar(120)"`
	NameBn string `gorm:"not null;type:varchar(120)"`
	Type   string `gorm:"not null;index;type:varchar(20)"`
}

// TableName specifies the table name for GORM
func (CategoryModel) TableName() string {
	return "categories"
}

// ToDomain converts GORM model to domain entity
func (m *CategoryModel) ToDomain() *categories.Category {
	return &categories.Category{
		ID:        m.ID,
		Slug:      m.Slug,
		NameEn:    m.NameEn,
		NameBn:    m.NameBn,
		Type:      m.Type,
		CreatedAt: m.CreatedAt,
		UpdatedAt: m.UpdatedAt,
	}
}

// FromDomain converts domain entity to GORM model
func (m *CategoryModel) FromDomain(c *categories.Category) {
	m.ID = c.ID
	m.Slug = c.Slug
	m.NameEn = c.NameEn
	m.NameBn = c.NameBn
	m.Type = c.Type
	m.CreatedAt = c.CreatedAt
	m.UpdatedAt = c.UpdatedAt
}
