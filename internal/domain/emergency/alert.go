package emergency

import (
	"time"

	"github.com/sabbir073/Complete-Political-website-sub006/internal/pkg/pagination"
	"github.com/sabbir073/Complete-Political-website-sub006/internal/pkg/validators"
)

// Alert statuses
const (
	StatusNew          = "new"
	StatusAcknowledged = "acknowledged"
	StatusResolved     = "resolved"
)

// Alert is an SOS raised from the public site
type Alert struct {
	ID        string    `json:"id" validate:"required,uuid4"`
	Name      string    `json:"name" validate:"max=120"`
	Phone     string    `json:"phone" validate:"required,bdphone"`
	Latitude  *float64  `json:"latitude,omitempty" validate:"omitempty,latitude"`
	Longitude *float64  `json:"longitude,omitempty" validate:"omitempty,longitude"`
	Message   string    `json:"message" validate:"max=2000"`
	AudioURL  string    `json:"audio_url,omitempty" validate:"omitempty,url"`
	Status    string    `json:"status" validate:"required,oneof=new acknowledged resolved"`
	AdminNote string    `json:"admin_note,omitempty" validate:"max=2000"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// Validate for validating Alert struct
func (a *Alert) Validate() error {
	return validators.ValidateStruct(a)
}

// AlertQuery filters alert listings
type AlertQuery struct {
	pagination.Params
	Status string `validate:"omitempty,oneof=new acknowledged resolved"`
}

// NewAlertQuery creates an AlertQuery with default pagination
func NewAlertQuery() *AlertQuery {
	return &AlertQuery{Params: pagination.New(0, 0)}
}

// Validate for validating AlertQuery struct
func (q *AlertQuery) Validate() error {
	return validators.ValidateStruct(q)
}

// StatusUpdate is a responder's status change
type StatusUpdate struct {
	Status    string `json:"status" validate:"required,oneof=new acknowledged resolved"`
	AdminNote string `json:"admin_note" validate:"max=2000"`
}

// Validate for validating StatusUpdate struct
func (u *StatusUpdate) Validate() error {
	return validators.ValidateStruct(u)
}
