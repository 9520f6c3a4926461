package achievements

import (
	"time"

	"github.com/sabbir073/Complete-Political-website-sub006/internal/pkg/pagination"
	"github.com/sabbir073/Complete-Political-website-sub006/internal/pkg/validators"
)

// Achievement statuses
const (
	StatusDraft     = "draft"
	StatusPublished = "published"
)

// Achievement is a delivered project shown on the public site
type Achievement struct {
	ID            string     `json:"id" validate:"required,uuid4"`
	TitleEn       string     `json:"title_en" validate:"required,max=255"`
	TitleBn       string     `json:"title_bn" validate:"max=255"`
	DescriptionEn string     `json:"description_en"`
	DescriptionBn string     `json:"description_bn"`
	CategoryID    *string    `json:"category_id,omitempty" validate:"omitempty,uuid4"`
	ImageURL      string     `json:"image_url" validate:"omitempty,url"`
	AchievedAt    *time.Time `json:"achieved_at,omitempty"`
	IsFeatured    bool       `json:"is_featured"`
	Status        string     `json:"status" validate:"required,oneof=draft published"`
	CreatedAt     time.Time  `json:"created_at"`
	UpdatedAt     time.Time  `json:"updated_at"`
}

// Validate for validating Achievement struct
func (a *Achievement) Validate() error {
	return validators.ValidateStruct(a)
}

// AchievementQuery filters achievement listings
type AchievementQuery struct {
	pagination.Params
	Status     string `validate:"omitempty,oneof=draft published"`
	CategoryID string `validate:"omitempty,uuid4"`
	Featured   *bool
}

// NewAchievementQuery creates an AchievementQuery with default pagination
func NewAchievementQuery() *AchievementQuery {
	return &AchievementQuery{Params: pagination.New(0, 0)}
}

// Validate for validating AchievementQuery struct
func (q *AchievementQuery) Validate() error {
	return validators.ValidateStruct(q)
}
