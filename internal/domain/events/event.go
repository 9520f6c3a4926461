package events

import (
	"time"

	"github.com/sabbir073/Complete-Political-website-sub006/internal/pkg/apperr"
	"github.com/sabbir073/Complete-Political-website-sub006/internal/pkg/pagination"
	"github.com/sabbir073/Complete-Political-website-sub006/internal/pkg/validators"
)

// Event statuses
const (
	StatusDraft     = "draft"
	StatusPublished = "published"
	StatusCancelled = "cancelled"
)

// Listing scopes
const (
	ScopeUpcoming = "upcoming"
	ScopePast     = "past"
)

// Event is a scheduled campaign event
type Event struct {
	ID            string     `json:"id" validate:"required,uuid4"`
	Slug          string     `json:"slug" validate:"required,slug,max=200"`
	TitleEn       string     `json:"title_en" validate:"required,max=255"`
	TitleBn       string     `json:"title_bn" validate:"max=255"`
	DescriptionEn string     `json:"description_en"`
	DescriptionBn string     `json:"description_bn"`
	LocationEn    string     `json:"location_en" validate:"max=255"`
	LocationBn    string     `json:"location_bn" validate:"max=255"`
	StartsAt      time.Time  `json:"starts_at" validate:"required"`
	EndsAt        *time.Time `json:"ends_at,omitempty"`
	CategoryID    *string    `json:"category_id,omitempty" validate:"omitempty,uuid4"`
	ImageURL      string     `json:"image_url" validate:"omitempty,url"`
	Status        string     `json:"status" validate:"required,oneof=draft published cancelled"`
	CreatedAt     time.Time  `json:"created_at"`
	UpdatedAt     time.Time  `json:"updated_at"`
}

// Validate for validating Event struct
func (e *Event) Validate() error {
	if err := validators.ValidateStruct(e); err != nil {
		return err
	}
	if e.EndsAt != nil && e.EndsAt.Before(e.StartsAt) {
		return apperr.Validation("ends_at must not be before starts_at")
	}
	return nil
}

// EventQuery filters event listings
type EventQuery struct {
	pagination.Params
	Scope  string `validate:"omitempty,oneof=upcoming past"`
	Status string `validate:"omitempty,oneof=draft published cancelled"`
	// Now is the reference time for Scope; zero means time.Now().
	Now time.Time
}

// NewEventQuery creates an EventQuery with default pagination
func NewEventQuery() *EventQuery {
	return &EventQuery{Params: pagination.New(0, 0)}
}

// Validate for validating EventQuery struct
func (q *EventQuery) Validate() error {
	return validators.ValidateStruct(q)
}
