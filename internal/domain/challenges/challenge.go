package challenges

import (
	"time"

	"github.com/sabbir073/Complete-Political-website-sub006/internal/pkg/apperr"
	"github.com/sabbir073/Complete-Political-website-sub006/internal/pkg/pagination"
	"github.com/sabbir073/Complete-Political-website-sub006/internal/pkg/validators"
)

// Challenge statuses
const (
	StatusDraft  = "draft"
	StatusActive = "active"
	StatusClosed = "closed"
)

// Submission statuses
const (
	SubmissionPending  = "pending"
	SubmissionApproved = "approved"
	SubmissionRejected = "rejected"
)

// Challenge is a public participation campaign with a submission window
type Challenge struct {
	ID            string    `json:"id" validate:"required,uuid4"`
	Slug          string    `json:"slug" validate:"required,slug,max=200"`
	TitleEn       string    `json:"title_en" validate:"required,max=255"`
	TitleBn       string    `json:"title_bn" validate:"max=255"`
	DescriptionEn string    `json:"description_en"`
	DescriptionBn string    `json:"description_bn"`
	ImageURL      string    `json:"image_url,omitempty" validate:"omitempty,url"`
	StartsAt      time.Time `json:"starts_at" validate:"required"`
	EndsAt        time.Time `json:"ends_at" validate:"required"`
	Status        string    `json:"status" validate:"required,oneof=draft active closed"`
	CreatedAt     time.Time `json:"created_at"`
	UpdatedAt     time.Time `json:"updated_at"`
}

// Validate for validating Challenge struct
func (c *Challenge) Validate() error {
	if err := validators.ValidateStruct(c); err != nil {
		return err
	}
	if !c.EndsAt.After(c.StartsAt) {
		return apperr.Validation("ends_at must be after starts_at")
	}
	return nil
}

// AcceptsSubmissions reports whether the challenge is active and now is inside its window
func (c *Challenge) AcceptsSubmissions(now time.Time) bool {
	return c.Status == StatusActive && !now.Before(c.StartsAt) && now.Before(c.EndsAt)
}

// Submission is a participant's entry to a challenge
type Submission struct {
	ID          string    `json:"id" validate:"required,uuid4"`
	ChallengeID string    `json:"challenge_id" validate:"required,uuid4"`
	Name        string    `json:"name" validate:"required,max=120"`
	Phone       string    `json:"phone" validate:"required,bdphone"`
	MediaURL    string    `json:"media_url" validate:"required,url"`
	Description string    `json:"description" validate:"max=2000"`
	Status      string    `json:"status" validate:"required,oneof=pending approved rejected"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

// Validate for validating Submission struct
func (s *Submission) Validate() error {
	return validators.ValidateStruct(s)
}

// ChallengeQuery filters challenge listings
type ChallengeQuery struct {
	pagination.Params
	Status string `validate:"omitempty,oneof=draft active closed"`
}

// NewChallengeQuery creates a ChallengeQuery with default pagination
func NewChallengeQuery() *ChallengeQuery {
	return &ChallengeQuery{Params: pagination.New(0, 0)}
}

// Validate for validating ChallengeQuery struct
func (q *ChallengeQuery) Validate() error {
	return validators.ValidateStruct(q)
}

// SubmissionQuery filters submission listings
type SubmissionQuery struct {
	pagination.Params
	ChallengeID string `validate:"omitempty,uuid4"`
	Status      string `validate:"omitempty,oneof=pending approved rejected"`
}

// NewSubmissionQuery creates a SubmissionQuery with default pagination
func NewSubmissionQuery() *SubmissionQuery {
	return &SubmissionQuery{Params: pagination.New(0, 0)}
}

// Validate for validating SubmissionQuery struct
func (q *SubmissionQuery) Validate() error {
	return validators.ValidateStruct(q)
}
