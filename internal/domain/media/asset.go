package media

import (
	"time"

	"github.com/sabbir073/Complete-Political-website-sub006/internal/pkg/pagination"
	"github.com/sabbir073/Complete-Political-website-sub006/internal/pkg/validators"
)

// MediaAsset records an object promoted to storage
type MediaAsset struct {
	ID          string    `json:"id" validate:"required,uuid4"`
	Key         string    `json:"key" validate:"required,max=512"`
	URL         string    `json:"url" validate:"required,url"`
	Purpose     string    `json:"purpose" validate:"required,max=40"`
	FileName    string    `json:"file_name" validate:"required,max=255"`
	ContentType string    `json:"content_type" validate:"required,max=120"`
	Size        int64     `json:"size" validate:"gte=0"`
	UploaderID  *string   `json:"uploader_id,omitempty" validate:"omitempty,uuid4"`
	CreatedAt   time.Time `json:"created_at"`
}

// Validate for validating MediaAsset struct
func (m *MediaAsset) Validate() error {
	return validators.ValidateStruct(m)
}

// MediaQuery filters the admin media library
type MediaQuery struct {
	pagination.Params
	Purpose     string `validate:"max=40"`
	ContentType string `validate:"max=120"`
}

// NewMediaQuery creates a MediaQuery with default pagination
func NewMediaQuery() *MediaQuery {
	return &MediaQuery{Params: pagination.New(0, 0)}
}

// Validate for validating MediaQuery struct
func (q *MediaQuery) Validate() error {
	return validators.ValidateStruct(q)
}
