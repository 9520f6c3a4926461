package models

import (
	"time"

	"github.com/sabbir073/Complete-Political-website-sub006/internal/domain/users"
)

// UserModel is the GORM database model for admin console accounts
type UserModel struct {
	Base
	Email        string `gorm:"not null;uniqueIndex;type:varchar(255)"`
	Name         string `gorm:"not null;type:varchar(120)"`
	PasswordHash string `gorm:"not null;type:varchar(255)"`
	Role         string `gorm:"not null;index;type:varchar(20)"`
	IsActive     bool   `gorm:"not null;default:true"`
	LastLoginAt  *time.Time
}

// TableName specifies the table name for GORM
func (UserModel) TableName() string {
	return "users"
}

// ToDomain converts GORM model to domain entity
func (m *UserModel) ToDomain() *users.User {
	return &users.User{
		ID:           m.ID,
		Email:        m.Email,
		Name:         m.Name,
		PasswordHash: m.PasswordHash,
		Role:         m.Role,
		IsActive:     m.IsActive,
		LastLoginAt:  m.LastLoginAt,
		CreatedAt:    m.CreatedAt,
		UpdatedAt:    m.UpdatedAt,
	}
}

// FromDomain converts domain entity to GORM model
func (m *UserModel) FromDomain(u *users.User) {
	m.ID = u.ID
	m.Email = u.Email
	m.Name = u.Name
	m.PasswordHash = u.PasswordHash
	m.Role = u.Role
	m.IsActive = u.IsActive
	m.LastLoginAt = u.LastLoginAt
	m.CreatedAt = u.CreatedAt
	m.UpdatedAt = u.UpdatedAt
}
