package gallery

import (
	"time"

	"github.com/sabbir073/Complete-Political-website-sub006/internal/pkg/pagination"
	"github.com/sabbir073/Complete-Political-website-sub006/internal/pkg/validators"
)

// Album statuses
const (
	StatusDraft     = "draft"
	StatusPublished = "published"
)

// Album is a published set of photos
type Album struct {
	ID         string    `json:"id" validate:"required,uuid4"`
	Slug       string    `json:"slug" validate:"required,slug,max=200"`
	TitleEn    string    `json:"title_en" validate:"required,max=255"`
	TitleBn    string    `json:"title_bn" validate:"max=255"`
	CoverImage string    `json:"cover_image" validate:"omitempty,url"`
	CategoryID *string   `json:"category_id,omitempty" validate:"omitempty,uuid4"`
	Status     string    `json:"status" validate:"required,oneof=draft published"`
	Photos     []*Photo  `json:"photos,omitempty" validate:"-"`
	CreatedAt  time.Time `json:"created_at"`
	UpdatedAt  time.Time `json:"updated_at"`
}

// Validate for validating Album struct
func (a *Album) Validate() error {
	return validators.ValidateStruct(a)
}

// Photo belongs to an album and is ordered by SortOrder
type Photo struct {
	ID        string    `json:"id" validate:"required,uuid4"`
	AlbumID   string    `json:"album_id" validate:"required,uuid4"`
	ImageURL  string    `json:"image_url" validate:"required,url"`
	CaptionEn string    `json:"caption_en" validate:"max=500"`
	CaptionBn string    `json:"caption_bn" validate:"max=500"`
	SortOrder int       `json:"sort_order" validate:"gte=0"`
	CreatedAt time.Time `json:"created_at"`
}

// Validate for validating Photo struct
func (p *Photo) Validate() error {
	return validators.ValidateStruct(p)
}

// AlbumQuery filters album listings
type AlbumQuery struct {
	pagination.Params
	Status string `validate:"omitempty,oneof=draft published"`
}

// NewAlbumQuery creates an AlbumQuery with default pagination
func NewAlbumQuery() *AlbumQuery {
	return &AlbumQuery{Params: pagination.New(0, 0)}
}

// Validate for validating AlbumQuery struct
func (q *AlbumQuery) Validate() error {
	return validators.ValidateStruct(q)
}
