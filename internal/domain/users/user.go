package users

import (
	"slices"
	"time"

	"github.com/sabbir073/Complete-Political-website-sub006/internal/pkg/pagination"
	"github.com/sabbir073/Complete-Political-website-sub006/internal/pkg/validators"
)

// Admin console roles
const (
	RoleAdmin     = "admin"
	RoleEditor    = "editor"
	RoleModerator = "moderator"
)

// MinPasswordLength is the shortest accepted password
const MinPasswordLength = 8

// User is an admin console account
type User struct {
	ID           string     `json:"id" validate:"required,uuid4"`
	Email        string     `json:"email" validate:"required,email,max=255"`
	Name         string     `json:"name" validate:"required,max=120"`
	PasswordHash string     `json:"-" validate:"required"`
	Role         string     `json:"role" validate:"required,oneof=admin editor moderator"`
	IsActive     bool       `json:"is_active"`
	LastLoginAt  *time.Time `json:"last_login_at,omitempty"`
	CreatedAt    time.Time  `json:"created_at"`
	UpdatedAt    time.Time  `json:"updated_at"`
}

// Validate for validating User struct
func (u *User) Validate() error {
	return validators.ValidateStruct(u)
}

// HasRole reports whether the user holds one of roles
func (u *User) HasRole(roles ...string) bool {
	return slices.Contains(roles, u.Role)
}

// NewUser is the input for creating an account
type NewUser struct {
	Email    string `json:"email" validate:"required,email,max=255"`
	Name     string `json:"name" validate:"required,max=120"`
	Password string `json:"password" validate:"required,min=8,max=72"`
	Role     string `json:"role" validate:"required,oneof=admin editor moderator"`
}

// Validate for validating NewUser struct
func (n *NewUser) Validate() error {
	return validators.ValidateStruct(n)
}

// UserUpdate changes an account; nil fields are left untouched
type UserUpdate struct {
	Name     *string `json:"name" validate:"omitempty,max=120"`
	Role     *string `json:"role" validate:"omitempty,oneof=admin editor moderator"`
	IsActive *bool   `json:"is_active"`
	Password *string `json:"password" validate:"omitempty,min=8,max=72"`
}

// Validate for validating UserUpdate struct
func (u *UserUpdate) Validate() error {
	return validators.ValidateStruct(u)
}

// UserQuery filters user listings
type UserQuery struct {
	pagination.Params
	Role string `validate:"omitempty,oneof=admin editor moderator"`
}

// NewUserQuery creates a UserQuery with default pagination
func NewUserQuery() *UserQuery {
	return &UserQuery{Params: pagination.New(0, 0)}
}

// Validate for validating UserQuery struct
func (q *UserQuery) Validate() error {
	return validators.ValidateStruct(q)
}

// Session is the result of a successful login
type Session struct {
	Token     string    `json:"token"`
	ExpiresAt time.Time `json:"expires_at"`
	User      *User     `json:"user"`
}
