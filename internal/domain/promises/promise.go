package promises

import (
	"time"

	"github.com/sabbir073/Complete-Political-website-sub006/internal/pkg/pagination"
	"github.com/sabbir073/Complete-Political-website-sub006/internal/pkg/validators"
)

// Promise statuses
const (
	StatusPending    = "pending"
	StatusInProgress = "in_progress"
	StatusCompleted  = "completed"
)

// Promise is an election pledge with tracked progress
type Promise struct {
	ID            string     `json:"id" validate:"required,uuid4"`
	TitleEn       string     `json:"title_en" validate:"required,max=255"`
	TitleBn       string     `json:"title_bn" validate:"max=255"`
	DescriptionEn string     `json:"description_en"`
	DescriptionBn string     `json:"description_bn"`
	CategoryID    *string    `json:"category_id,omitempty" validate:"omitempty,uuid4"`
	Progress      int        `json:"progress" validate:"gte=0,lte=100"`
	TargetDate    *time.Time `json:"target_date,omitempty"`
	Status        string     `json:"status" validate:"required,oneof=pending in_progress completed"`
	CreatedAt     time.Time  `json:"created_at"`
	UpdatedAt     time.Time  `json:"updated_at"`
}

// Normalize clamps progress to 0..100 and pins completed promises to 100
func (p *Promise) Normalize() {
	switch {
	case p.Progress < 0:
		p.Progress = 0
	case p.Progress > 100:
		p.Progress = 100
	}
	if p.Status == StatusCompleted {
		p.Progress = 100
	}
}

// Validate for validating Promise struct
func (p *Promise) Validate() error {
	return validators.ValidateStruct(p)
}

// PromiseQuery filters promise listings
type PromiseQuery struct {
	pagination.Params
	Status     string `validate:"omitempty,oneof=pending in_progress completed"`
	CategoryID string `validate:"omitempty,uuid4"`
}

// NewPromiseQuery creates a PromiseQuery with default pagination
func NewPromiseQuery() *PromiseQuery {
	return &PromiseQuery{Params: pagination.New(0, 0)}
}

// Validate for validating PromiseQuery struct
func (q *PromiseQuery) Validate() error {
	return validators.ValidateStruct(q)
}
