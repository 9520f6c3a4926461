package volunteers

import (
	"time"

	"github.com/sabbir073/Complete-Political-website-sub006/internal/pkg/pagination"
	"github.com/sabbir073/Complete-Political-website-sub006/internal/pkg/validators"
)

// Volunteer statuses
const (
	StatusPending  = "pending"
	StatusApproved = "approved"
	StatusRejected = "rejected"
)

// Volunteer is a campaign volunteer registration
type Volunteer struct {
	ID        string    `json:"id" validate:"required,uuid4"`
	Name      string    `json:"name" validate:"required,max=120"`
	Phone     string    `json:"phone" validate:"required,bdphone"`
	Email     string    `json:"email,omitempty" validate:"omitempty,email"`
	Area      string    `json:"area" validate:"required,max=120"`
	Skills    string    `json:"skills" validate:"max=1000"`
	PhotoURL  string    `json:"photo_url,omitempty" validate:"omitempty,url"`
	Status    string    `json:"status" validate:"required,oneof=pending approved rejected"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// Validate for validating Volunteer struct
func (v *Volunteer) Validate() error {
	return validators.ValidateStruct(v)
}

// VolunteerQuery filters volunteer listings
type VolunteerQuery struct {
	pagination.Params
	Status string `validate:"omitempty,oneof=pending approved rejected"`
	Area   string `validate:"max=120"`
}

// NewVolunteerQuery creates a VolunteerQuery with default pagination
func NewVolunteerQuery() *VolunteerQuery {
	return &VolunteerQuery{Params: pagination.New(0, 0)}
}

// Validate for validating VolunteerQuery struct
func (q *VolunteerQuery) Validate() error {
	return validators.ValidateStruct(q)
}
