package categories

import (
	"time"

	"github.com/sabbir073/Complete-Political-website-sub006/internal/pkg/validators"
)

// Category types
const (
	TypeNews        = "news"
	TypeEvent       = "event"
	TypeGallery     = "gallery"
	TypePromise     = "promise"
	TypeAchievement = "achievement"
)

// Category groups content of a single type
type Category struct {
	ID        string    `json:"id" validate:"required,uuid4"`
	Slug      string    `json:"slug" validate:"required,slug,max=120"`
	NameEn    string    `json:"name_en" validate:"required,max=120"`
	NameBn    string    `json:"name_bn" validate:"required,max=120"`
	Type      string    `json:"type" validate:"required,oneof=news event gallery promise achievement"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// Validate for validating Category struct
func (c *Category) Validate() error {
	return validators.ValidateStruct(c)
}
