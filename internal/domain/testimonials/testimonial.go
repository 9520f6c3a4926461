package testimonials

import (
	"time"

	"github.com/sabbir073/Complete-Political-website-sub006/internal/pkg/pagination"
	"github.com/sabbir073/Complete-Political-website-sub006/internal/pkg/validators"
)

// Testimonial statuses
const (
	StatusPending  = "pending"
	StatusApproved = "approved"
	StatusRejected = "rejected"
)

// Testimonial is a supporter quote submitted from the public site
type Testimonial struct {
	ID          string    `json:"id" validate:"required,uuid4"`
	Name        string    `json:"name" validate:"required,max=120"`
	Designation string    `json:"designation" validate:"max=120"`
	Content     string    `json:"content" validate:"required,max=2000"`
	PhotoURL    string    `json:"photo_url" validate:"omitempty,url"`
	VideoURL    string    `json:"video_url" validate:"omitempty,url"`
	Rating      int       `json:"rating" validate:"required,min=1,max=5"`
	Status      string    `json:"status" validate:"required,oneof=pending approved rejected"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

// Validate for validating Testimonial struct
func (t *Testimonial) Validate() error {
	return validators.ValidateStruct(t)
}

// TestimonialQuery filters testimonial listings
type TestimonialQuery struct {
	pagination.Params
	Status string `validate:"omitempty,oneof=pending approved rejected"`
}

// NewTestimonialQuery creates a TestimonialQuery with default pagination
func NewTestimonialQuery() *TestimonialQuery {
	return &TestimonialQuery{Params: pagination.New(0, 0)}
}

// Validate for validating TestimonialQuery struct
func (q *TestimonialQuery) Validate() error {
	return validators.ValidateStruct(q)
}
