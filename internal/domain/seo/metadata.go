package seo

import (
	"time"

	"github.com/sabbir073/Complete-Political-website-sub006/internal/pkg/validators"
)

// Supported languages
const (
	LangEn = "en"
	LangBn = "bn"
)

// Metadata is the head data for a public page
type Metadata struct {
	Title       string            `json:"title"`
	Description string            `json:"description"`
	Canonical   string            `json:"canonical"`
	Image       string            `json:"image,omitempty"`
	Type        string            `json:"type"`
	Locale      string            `json:"locale"`
	Alternates  map[string]string `json:"alternates"`
	JSONLD      map[string]any    `json:"json_ld"`
}

// MetadataQuery selects a page and language
type MetadataQuery struct {
	Path string `validate:"required,startswith=/,max=512"`
	Lang string `validate:"omitempty,oneof=en bn"`
}

// Validate for validating MetadataQuery struct
func (q *MetadataQuery) Validate() error {
	return validators.ValidateStruct(q)
}

// StaticPage is a configured non-entity page
type StaticPage struct {
	Path          string
	TitleEn       string
	TitleBn       string
	DescriptionEn string
	DescriptionBn string
	ChangeFreq    string
	Priority      float64
}

// SitemapEntry is one url element of the sitemap
type SitemapEntry struct {
	Path       string
	LastMod    time.Time
	ChangeFreq string
	Priority   float64
}
