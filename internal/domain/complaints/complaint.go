package complaints

import (
	"time"

	"github.com/sabbir073/Complete-Political-website-sub006/internal/pkg/pagination"
	"github.com/sabbir073/Complete-Political-website-sub006/internal/pkg/validators"
)

// Complaint statuses
const (
	StatusPending  = "pending"
	StatusInReview = "in_review"
	StatusResolved = "resolved"
	StatusRejected = "rejected"
)

// TrackingPrefix starts every complaint tracking id
const TrackingPrefix = "CMP"

// Complaint is a constituent's grievance
type Complaint struct {
	ID            string    `json:"id" validate:"required,uuid4"`
	TrackingID    string    `json:"tracking_id" validate:"required,max=32"`
	Name          string    `json:"name" validate:"required,max=120"`
	Phone         string    `json:"phone" validate:"required,bdphone"`
	Email         string    `json:"email,omitempty" validate:"omitempty,email"`
	Area          string    `json:"area" validate:"max=120"`
	Category      string    `json:"category" validate:"required,max=60"`
	Subject       string    `json:"subject" validate:"required,max=255"`
	Description   string    `json:"description" validate:"required,max=5000"`
	AttachmentURL string    `json:"attachment_url,omitempty" validate:"omitempty,url"`
	Status        string    `json:"status" validate:"required,oneof=pending in_review resolved rejected"`
	AdminNote     string    `json:"admin_note,omitempty" validate:"max=2000"`
	CreatedAt     time.Time `json:"created_at"`
	UpdatedAt     time.Time `json:"updated_at"`
}

// Validate for validating Complaint struct
func (c *Complaint) Validate() error {
	return validators.ValidateStruct(c)
}

// Tracking is the public view of a complaint and carries no personal data
type Tracking struct {
	TrackingID string    `json:"tracking_id"`
	Category   string    `json:"category"`
	Status     string    `json:"status"`
	CreatedAt  time.Time `json:"created_at"`
	UpdatedAt  time.Time `json:"updated_at"`
}

// ToTracking strips personal data from the complaint
func (c *Complaint) ToTracking() *Tracking {
	return &Tracking{
		TrackingID: c.TrackingID,
		Category:   c.Category,
		Status:     c.Status,
		CreatedAt:  c.CreatedAt,
		UpdatedAt:  c.UpdatedAt,
	}
}

// ComplaintQuery filters complaint listings
type ComplaintQuery struct {
	pagination.Params
	Status   string `validate:"omitempty,oneof=pending in_review resolved rejected"`
	Category string `validate:"max=60"`
	Search   string `validate:"max=100"`
}

// NewComplaintQuery creates a ComplaintQuery with default pagination
func NewComplaintQuery() *ComplaintQuery {
	return &ComplaintQuery{Params: pagination.New(0, 0)}
}

// Validate for validating ComplaintQuery struct
func (q *ComplaintQuery) Validate() error {
	return validators.ValidateStruct(q)
}

// StatusUpdate is a moderator's status change with an optional note
type StatusUpdate struct {
	Status    string `json:"status" validate:"required,oneof=pending in_review resolved rejected"`
	AdminNote string `json:"admin_note" validate:"max=2000"`
}

// Validate for validating StatusUpdate struct
func (u *StatusUpdate) Validate() error {
	return validators.ValidateStruct(u)
}
