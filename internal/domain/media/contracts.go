package media

import (
	"context"
	"io"
	"mime/multipart"
)

// UploadService runs the single-shot, chunked and multipart upload flows
type UploadService interface {
	// Upload sniffs, checks and stores a form file, then records a MediaAsset.
	Upload(ctx context.Context, purpose string, file *multipart.FileHeader, uploaderID *string) (*MediaAsset, error)
	// UploadChunk stores one chunk; the call that completes the set promotes the merged file.
	UploadChunk(ctx context.Context, purpose string, chunk *ChunkUpload) (*ChunkResult, error)
	ChunkStatus(ctx context.Context, purpose, uploadID string) (*ChunkProgress, error)
	AbortChunks(ctx context.Context, purpose, uploadID string) error
	// InitMultipart creates the upload, picks a part size and presigns every part.
	InitMultipart(ctx context.Context, purpose string, init *MultipartInit) (*MultipartSession, error)
	PresignParts(ctx context.Context, purpose string, request *PresignRequest) ([]PresignedPart, error)
	ListParts(ctx context.Context, purpose string, ref *MultipartRef) ([]Part, error)
	// CompleteMultipart sorts and validates the parts, completes the upload and records a MediaAsset.
	CompleteMultipart(ctx context.Context, purpose string, request *CompleteRequest, uploaderID *string) (*MediaAsset, error)
	AbortMultipart(ctx context.Context, purpose string, ref *MultipartRef) error
}

// MediaService manages the media library
type MediaService interface {
	List(ctx context.Context, query *MediaQuery) ([]*MediaAsset, int64, error)
	GetByID(ctx context.Context, id string) (*MediaAsset, error)
	// DeleteByID removes the stored object and its record.
	DeleteByID(ctx context.Context, id string) error
}

// MediaRepository defines the interface for MediaAsset persistence
type MediaRepository interface {
	Create(ctx context.Context, asset *MediaAsset) error
	List(ctx context.Context, query *MediaQuery) ([]*MediaAsset, int64, error)
	GetByID(ctx context.Context, id string) (*MediaAsset, error)
	DeleteByID(ctx context.Context, id string) error
}

// ObjectStore is an S3 compatible object storage connector
type ObjectStore interface {
	PutObject(ctx context.Context, key, contentType string, body io.Reader, size int64) error
	HeadObject(ctx context.Context, key string) (*ObjectInfo, error)
	DeleteObject(ctx context.Context, key string) error
	CreateMultipartUpload(ctx context.Context, key, contentType string) (string, error)
	PresignUploadPart(ctx context.Context, key, uploadID string, partNumber int32) (string, error)
	ListParts(ctx context.Context, key, uploadID string) ([]Part, error)
	CompleteMultipartUpload(ctx context.Context, key, uploadID string, parts []Part) error
	AbortMultipartUpload(ctx context.Context, key, uploadID string) error
	// PublicURL returns the CDN URL for key.
	PublicURL(key string) string
}

// ChunkStore tracks in-flight chunked uploads in memory
type ChunkStore interface {
	// Put stores data in slot index. The first chunk fixes meta; a later mismatch,
	// an index outside [0,TotalChunks) or a total above maxBytes is apperr.ErrValidation.
	Put(meta ChunkMeta, index int, data []byte, maxBytes int64) (*ChunkProgress, error)
	Status(uploadID string) (*ChunkProgress, error)
	// Take removes a complete upload and returns its slots merged in index order.
	Take(uploadID string) (*AssembledUpload, error)
	Abort(uploadID string) error
}
