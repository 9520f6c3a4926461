package v1

import (
	"github.com/sabbir073/Complete-Political-website-sub006/internal/pkg/validators"
)

// LoginRequest is the body of POST /auth/login
type LoginRequest struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

// Validate for validating LoginRequest struct
func (r *LoginRequest) Validate() error {
	return validators.ValidateStruct(r)
}

// StatusRequest is the body of moderation endpoints that only change a status
type StatusRequest struct {
	Status string `json:"status" validate:"required,max=20"`
}

// Validate for validating StatusRequest struct
func (r *StatusRequest) Validate() error {
	return validators.ValidateStruct(r)
}

// HealthResponse is the body of GET /health
type HealthResponse struct {
	Status   string `json:"status"`
	Database string `json:"database"`
}
