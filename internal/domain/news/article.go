package news

import (
	"time"

	"github.com/sabbir073/Complete-Political-website-sub006/internal/pkg/pagination"
	"github.com/sabbir073/Complete-Political-website-sub006/internal/pkg/validators"
)

// Article statuses
const (
	StatusDraft     = "draft"
	StatusPublished = "published"
	StatusArchived  = "archived"
)

// Article is a bilingual news post
type Article struct {
	ID            string     `json:"id" validate:"required,uuid4"`
	Slug          string     `json:"slug" validate:"required,slug,max=200"`
	TitleEn       string     `json:"title_en" validate:"required,max=255"`
	TitleBn       string     `json:"title_bn" validate:"max=255"`
	ExcerptEn     string     `json:"excerpt_en" validate:"max=500"`
	ExcerptBn     string     `json:"excerpt_bn" validate:"max=500"`
	ContentEn     string     `json:"content_en"`
	ContentBn     string     `json:"content_bn"`
	CategoryID    *string    `json:"category_id,omitempty" validate:"omitempty,uuid4"`
	FeaturedImage string     `json:"featured_image" validate:"omitempty,url"`
	IsFeatured    bool       `json:"is_featured"`
	ViewCount     int64      `json:"view_count"`
	Status        string     `json:"status" validate:"required,oneof=draft published archived"`
	PublishedAt   *time.Time `json:"published_at,omitempty"`
	AuthorID      *string    `json:"author_id,omitempty" validate:"omitempty,uuid4"`
	CreatedAt     time.Time  `json:"created_at"`
	UpdatedAt     time.Time  `json:"updated_at"`
}

// Validate for validating Article struct
func (a *Article) Validate() error {
	return validators.ValidateStruct(a)
}

// ArticleQuery filters article listings
type ArticleQuery struct {
	pagination.Params
	Status     string `validate:"omitempty,oneof=draft published archived"`
	CategoryID string `validate:"omitempty,uuid4"`
	Featured   *bool
	Search     string `validate:"max=100"`
}

// NewArticleQuery creates an ArticleQuery with default pagination
func NewArticleQuery() *ArticleQuery {
	return &ArticleQuery{Params: pagination.New(0, 0)}
}

// Validate for validating ArticleQuery struct
func (q *ArticleQuery) Validate() error {
	return validators.ValidateStruct(q)
}
