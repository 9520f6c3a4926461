package media

import (
	"github.com/sabbir073/Complete-Political-website-sub006/internal/pkg/validators"
)

// S3 multipart limits
const (
	MinPartSize = int64(5) << 20
	MaxParts    = 10000
)

// Part is an uploaded multipart part
type Part struct {
	PartNumber int32  `json:"part_number" validate:"required,min=1,max=10000"`
	ETag       string `json:"etag" validate:"required"`
	Size       int64  `json:"size,omitempty"`
}

// PresignedPart is a URL the client PUTs one part to
type PresignedPart struct {
	PartNumber int32  `json:"part_number"`
	URL        string `json:"url"`
}

// ObjectInfo describes a stored object
type ObjectInfo struct {
	Size        int64
	ContentType string
}

// MultipartInit starts a multipart upload
type MultipartInit struct {
	FileName    string `json:"file_name" validate:"required,max=255"`
	ContentType string `json:"content_type" validate:"required,max=120"`
	Size        int64  `json:"size" validate:"required,min=1"`
}

// Validate for validating MultipartInit struct
func (m *MultipartInit) Validate() error {
	return validators.ValidateStruct(m)
}

// MultipartSession is returned to the client after init
type MultipartSession struct {
	UploadID string          `json:"upload_id"`
	Key      string          `json:"key"`
	PartSize int64           `json:"part_size"`
	Parts    []PresignedPart `json:"parts"`
}

// PresignRequest asks for fresh part URLs
type PresignRequest struct {
	Key         string  `json:"key" validate:"required"`
	UploadID    string  `json:"upload_id" validate:"required"`
	PartNumbers []int32 `json:"part_numbers" validate:"required,min=1,max=10000,dive,min=1,max=10000"`
}

// Validate for validating PresignRequest struct
func (r *PresignRequest) Validate() error {
	return validators.ValidateStruct(r)
}

// CompleteRequest finishes a multipart upload; when Parts is empty the server lists them
type CompleteRequest struct {
	Key      string `json:"key" validate:"required"`
	UploadID string `json:"upload_id" validate:"required"`
	FileName string `json:"file_name" validate:"max=255"`
	Parts    []Part `json:"parts" validate:"omitempty,dive"`
}

// Validate for validating CompleteRequest struct
func (r *CompleteRequest) Validate() error {
	return validators.ValidateStruct(r)
}

// MultipartRef identifies an in-flight multipart upload
type MultipartRef struct {
	Key      string `json:"key" form:"key" validate:"required"`
	UploadID string `json:"upload_id" form:"upload_id" validate:"required"`
}

// Validate for validating MultipartRef struct
func (r *MultipartRef) Validate() error {
	return validators.ValidateStruct(r)
}

// ChunkMeta is fixed by the first chunk of a chunked upload
type ChunkMeta struct {
	UploadID    string
	Purpose     string
	FileName    string
	ContentType string
	TotalChunks int
}

// ChunkUpload is one application level chunk
type ChunkUpload struct {
	UploadID    string `validate:"required,max=128"`
	ChunkIndex  int    `validate:"gte=0"`
	TotalChunks int    `validate:"required,min=1,max=10000"`
	FileName    string `validate:"required,max=255"`
	ContentType string `validate:"max=120"`
	Data        []byte `validate:"required"`
	UploaderID  *string
}

// Validate for validating ChunkUpload struct
func (c *ChunkUpload) Validate() error {
	return validators.ValidateStruct(c)
}

// ChunkProgress reports a chunked upload's state
type ChunkProgress struct {
	UploadID string `json:"upload_id"`
	Purpose  string `json:"purpose"`
	Received int    `json:"received"`
	Total    int    `json:"total"`
	Bytes    int64  `json:"bytes"`
	// Complete is true only on the Put that filled the last slot.
	Complete bool `json:"complete"`
}

// AssembledUpload is a finished chunked upload, merged in index order
type AssembledUpload struct {
	Meta ChunkMeta
	Data []byte
}

// ChunkResult is the outcome of storing a chunk; Asset is set once the file was promoted
type ChunkResult struct {
	Progress *ChunkProgress `json:"progress"`
	Asset    *MediaAsset    `json:"asset,omitempty"`
}
