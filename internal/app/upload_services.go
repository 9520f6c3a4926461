package app

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"io"
	"mime/multipart"
	"path"
	"path/filepath"
	"sort"
	"strings"
	"time"

	"github.com/sabbir073/Complete-Political-website-sub006/internal/domain/media"
	"github.com/sabbir073/Complete-Political-website-sub006/internal/pkg/apperr"
	"github.com/sabbir073/Complete-Political-website-sub006/internal/pkg/config"
	"github.com/sabbir073/Complete-Political-website-sub006/internal/pkg/logger"

	"github.com/gabriel-vasile/mimetype"
	"github.com/google/uuid"
	"golang.org/x/sync/errgroup"
)

// uploadService implements the UploadService interface
type uploadService struct {
	store    media.ObjectStore
	chunks   media.ChunkStore
	repo     media.MediaRepository
	settings *config.UploadSettings
	now      func() time.Time
	logger   logger.Logger
}

// NewUploadService creates a new instance of UploadService
func NewUploadService(store media.ObjectStore, chunks media.ChunkStore, repo media.MediaRepository, settings *config.UploadSettings, logger logger.Logger) (media.UploadService, error) {
	if settings.PresignConcurrency < 1 {
		return nil, fmt.Errorf("presign concurrency must be positive")
	}
	return &uploadService{
		store:    store,
		chunks:   chunks,
		repo:     repo,
		settings: settings,
		now:      time.Now,
		logger:   logger,
	}, nil
}

// objectKey builds <purpose>/<yyyy>/<mm>/<uuid><ext>
func objectKey(purpose string, now time.Time, ext string) string {
	now = now.UTC()
	return fmt.Sprintf("%s/%04d/%02d/%s%s", purpose, now.Year(), int(now.Month()), uuid.NewString(), ext)
}

// keyExtension prefers the sniffed type's extension and falls back to the file name's
func keyExtension(mtype *mimetype.MIME, fileName string) string {
	if mtype != nil && mtype.Extension() != "" {
		return mtype.Extension()
	}
	ext := strings.ToLower(filepath.Ext(fileName))
	if len(ext) > 10 {
		return ""
	}
	for _, r := range ext[min(1, len(ext)):] {
		if (r < 'a' || r > 'z') && (r < '0' || r > '9') {
			return ""
		}
	}
	return ext
}

// baseContentType drops MIME parameters such as charset
func baseContentType(mtype *mimetype.MIME) string {
	ct := mtype.String()
	if i := strings.IndexByte(ct, ';'); i >= 0 {
		ct = ct[:i]
	}
	return ct
}

// partSize picks a part size of at least the configured size and MinPartSize
// that keeps the upload within MaxParts, rounded up to a whole MiB
func partSize(size, configured int64) int64 {
	part := max(configured, media.MinPartSize)
	if (size+part-1)/part <= media.MaxParts {
		return part
	}
	const mib = int64(1) << 20
	part = (size + media.MaxParts - 1) / media.MaxParts
	return (part + mib - 1) / mib * mib
}

// sortParts orders parts by number and requires the sequence 1..n without gaps
func sortParts(parts []media.Part) ([]media.Part, error) {
	if len(parts) == 0 {
		return nil, apperr.Validation("no parts were uploaded")
	}
	if len(parts) > media.MaxParts {
		return nil, apperr.Validation(fmt.Sprintf("at most %d parts are allowed", media.MaxParts))
	}

	sorted := make([]media.Part, len(parts))
	copy(sorted, parts)
	sort.Slice(sorted, func(i, j int) bool { return sorted[i].PartNumber < sorted[j].PartNumber })

	for i, part := range sorted {
		if part.PartNumber != int32(i+1) {
			return nil, apperr.Validation(fmt.Sprintf("parts must be contiguous from 1: expected part %d, got %d", i+1, part.PartNumber))
		}
		if strings.TrimSpace(part.ETag) == "" {
			return nil, apperr.Validation(fmt.Sprintf("part %d has no etag", part.PartNumber))
		}
	}
	return sorted, nil
}

func (s *uploadService) Upload(ctx context.Context, purpose string, file *multipart.FileHeader, uploaderID *string) (*media.MediaAsset, error) {
	policy, err := media.LookupPolicy(purpose)
	if err != nil {
		return nil, err
	}
	if file == nil {
		return nil, apperr.Validation("file is required")
	}
	if file.Size > policy.MaxSize {
		return nil, policy.Check("", file.Size)
	}

	f, err := file.Open()
	if err != nil {
		return nil, fmt.Errorf("failed to open upload: %w", err)
	}
	defer f.Close()

	mtype, err := mimetype.DetectReader(f)
	if err != nil {
		return nil, fmt.Errorf("failed to detect content type: %w", err)
	}
	if _, err := f.Seek(0, io.SeekStart); err != nil {
		return nil, fmt.Errorf("failed to rewind upload: %w", err)
	}

	return s.promote(ctx, policy, file.Filename, mtype, f, file.Size, uploaderID)
}

// promote checks the sniffed type, stores the object and records the asset
func (s *uploadService) promote(ctx context.Context, policy media.Policy, fileName string, mtype *mimetype.MIME, body io.Reader, size int64, uploaderID *string) (*media.MediaAsset, error) {
	contentType := baseContentType(mtype)
	if err := policy.Check(contentType, size); err != nil {
		return nil, err
	}

	key := objectKey(policy.Purpose, s.now(), keyExtension(mtype, fileName))
	if err := s.store.PutObject(ctx, key, contentType, body, size); err != nil {
		return nil, fmt.Errorf("failed to store object: %w", err)
	}

	asset := &media.MediaAsset{
		ID:          uuid.NewString(),
		Key:         key,
		URL:         s.store.PublicURL(key),
		Purpose:     policy.Purpose,
		FileName:    displayName(fileName, key),
		ContentType: contentType,
		Size:        size,
		UploaderID:  uploaderID,
	}
	if err := s.recordAsset(ctx, asset); err != nil {
		return nil, err
	}
	return asset, nil
}

// recordAsset persists the asset and removes the object when that fails
func (s *uploadService) recordAsset(ctx context.Context, asset *media.MediaAsset) error {
	if err := s.repo.Create(ctx, asset); err != nil {
		if delErr := s.store.DeleteObject(context.WithoutCancel(ctx), asset.Key); delErr != nil {
			s.logger.Error("failed to remove orphaned object", "key", asset.Key, "error", delErr)
		}
		return err
	}
	s.logger.Info("upload stored", "purpose", asset.Purpose, "key", asset.Key, "size", asset.Size)
	return nil
}

func displayName(fileName, key string) string {
	name := strings.TrimSpace(filepath.Base(strings.ReplaceAll(fileName, "\\", "/")))
	if name == "" || name == "." || name == "/" {
		name = path.Base(key)
	}
	if len(name) > 255 {
		name = name[len(name)-255:]
	}
	return name
}

func (s *uploadService) UploadChunk(ctx context.Context, purpose string, chunk *media.ChunkUpload) (*media.ChunkResult, error) {
	policy, err := media.LookupPolicy(purpose)
	if err != nil {
		return nil, err
	}
	if err := chunk.Validate(); err != nil {
		return nil, err
	}
	if int64(len(chunk.Data)) > s.settings.MaxChunkSize {
		return nil, apperr.Validation(fmt.Sprintf("chunk exceeds %d bytes", s.settings.MaxChunkSize))
	}

	meta := media.ChunkMeta{
		UploadID:    chunk.UploadID,
		Purpose:     purpose,
		FileName:    chunk.FileName,
		ContentType: chunk.ContentType,
		TotalChunks: chunk.TotalChunks,
	}
	progress, err := s.chunks.Put(meta, chunk.ChunkIndex, chunk.Data, policy.MaxSize)
	if err != nil {
		return nil, err
	}
	if !progress.Complete {
		return &media.ChunkResult{Progress: progress}, nil
	}

	assembled, err := s.chunks.Take(chunk.UploadID)
	if err != nil {
		return nil, err
	}

	mtype := mimetype.Detect(assembled.Data)
	asset, err := s.promote(ctx, policy, assembled.Meta.FileName, mtype, bytes.NewReader(assembled.Data), int64(len(assembled.Data)), chunk.UploaderID)
	if err != nil {
		return nil, err
	}
	return &media.ChunkResult{Progress: progress, Asset: asset}, nil
}

// ownedProgress hides uploads that belong to another purpose
func (s *uploadService) ownedProgress(purpose, uploadID string) (*media.ChunkProgress, error) {
	if _, err := media.LookupPolicy(purpose); err != nil {
		return nil, err
	}
	progress, err := s.chunks.Status(uploadID)
	if err != nil {
		return nil, err
	}
	if progress.Purpose != purpose {
		return nil, apperr.NotFound("upload", uploadID)
	}
	return progress, nil
}

func (s *uploadService) ChunkStatus(ctx context.Context, purpose, uploadID string) (*media.ChunkProgress, error) {
	return s.ownedProgress(purpose, uploadID)
}

func (s *uploadService) AbortChunks(ctx context.Context, purpose, uploadID string) error {
	if _, err := s.ownedProgress(purpose, uploadID); err != nil {
		return err
	}
	return s.chunks.Abort(uploadID)
}

func (s *uploadService) InitMultipart(ctx context.Context, purpose string, init *media.MultipartInit) (*media.MultipartSession, error) {
	policy, err := media.LookupPolicy(purpose)
	if err != nil {
		return nil, err
	}
	if err := init.Validate(); err != nil {
		return nil, err
	}
	if err := policy.Check(init.ContentType, init.Size); err != nil {
		return nil, err
	}

	ext := keyExtension(nil, init.FileName)
	if ext == "" {
		if mtype := mimetype.Lookup(init.ContentType); mtype != nil {
			ext = mtype.Extension()
		}
	}
	key := objectKey(purpose, s.now(), ext)

	uploadID, err := s.store.CreateMultipartUpload(ctx, key, init.ContentType)
	if err != nil {
		return nil, fmt.Errorf("failed to create multipart upload: %w", err)
	}

	size := partSize(init.Size, s.settings.PartSize)
	count := int32((init.Size + size - 1) / size)
	numbers := make([]int32, count)
	for i := range numbers {
		numbers[i] = int32(i + 1)
	}

	parts, err := s.presign(ctx, key, uploadID, numbers)
	if err != nil {
		if abortErr := s.store.AbortMultipartUpload(context.WithoutCancel(ctx), key, uploadID); abortErr != nil {
			s.logger.Error("failed to abort multipart upload", "key", key, "error", abortErr)
		}
		return nil, err
	}

	s.logger.Info("multipart upload started", "purpose", purpose, "key", key, "parts", count, "part_size", size)
	return &media.MultipartSession{UploadID: uploadID, Key: key, PartSize: size, Parts: parts}, nil
}

// presign signs every part URL with bounded concurrency
func (s *uploadService) presign(ctx context.Context, key, uploadID string, numbers []int32) ([]media.PresignedPart, error) {
	parts := make([]media.PresignedPart, len(numbers))

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(s.settings.PresignConcurrency)
	for i, number := range numbers {
		i, number := i, number
		g.Go(func() error {
			url, err := s.store.PresignUploadPart(gctx, key, uploadID, number)
			if err != nil {
				return fmt.Errorf("failed to presign part %d: %w", number, err)
			}
			parts[i] = media.PresignedPart{PartNumber: number, URL: url}
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}
	return parts, nil
}

func checkOwnership(policy media.Policy, key string) error {
	if !policy.OwnsKey(key) {
		return apperr.Validation(fmt.Sprintf("key does not belong to %s uploads", policy.Purpose))
	}
	return nil
}

func (s *uploadService) PresignParts(ctx context.Context, purpose string, request *media.PresignRequest) ([]media.PresignedPart, error) {
	policy, err := media.LookupPolicy(purpose)
	if err != nil {
		return nil, err
	}
	if err := request.Validate(); err != nil {
		return nil, err
	}
	if err := checkOwnership(policy, request.Key); err != nil {
		return nil, err
	}
	return s.presign(ctx, request.Key, request.UploadID, request.PartNumbers)
}

func (s *uploadService) ListParts(ctx context.Context, purpose string, ref *media.MultipartRef) ([]media.Part, error) {
	policy, err := media.LookupPolicy(purpose)
	if err != nil {
		return nil, err
	}
	if err := ref.Validate(); err != nil {
		return nil, err
	}
	if err := checkOwnership(policy, ref.Key); err != nil {
		return nil, err
	}
	return s.store.ListParts(ctx, ref.Key, ref.UploadID)
}

func (s *uploadService) CompleteMultipart(ctx context.Context, purpose string, request *media.CompleteRequest, uploaderID *string) (*media.MediaAsset, error) {
	policy, err := media.LookupPolicy(purpose)
	if err != nil {
		return nil, err
	}
	if err := request.Validate(); err != nil {
		return nil, err
	}
	if err := checkOwnership(policy, request.Key); err != nil {
		return nil, err
	}

	parts := request.Parts
	if len(parts) == 0 {
		parts, err = s.store.ListParts(ctx, request.Key, request.UploadID)
		if err != nil {
			return nil, err
		}
	}
	parts, err = sortParts(parts)
	if err != nil {
		return nil, err
	}

	if err := s.store.CompleteMultipartUpload(ctx, request.Key, request.UploadID, parts); err != nil {
		return nil, fmt.Errorf("failed to complete multipart upload: %w", err)
	}

	info, err := s.store.HeadObject(ctx, request.Key)
	if err != nil {
		return nil, fmt.Errorf("failed to inspect completed object: %w", err)
	}
	if err := policy.Check(info.ContentType, info.Size); err != nil {
		if delErr := s.store.DeleteObject(context.WithoutCancel(ctx), request.Key); delErr != nil {
			s.logger.Error("failed to remove rejected object", "key", request.Key, "error", delErr)
		}
		return nil, err
	}

	asset := &media.MediaAsset{
		ID:          uuid.NewString(),
		Key:         request.Key,
		URL:         s.store.PublicURL(request.Key),
		Purpose:     purpose,
		FileName:    displayName(request.FileName, request.Key),
		ContentType: info.ContentType,
		Size:        info.Size,
		UploaderID:  uploaderID,
	}
	if err := s.recordAsset(ctx, asset); err != nil {
		return nil, err
	}
	return asset, nil
}

func (s *uploadService) AbortMultipart(ctx context.Context, purpose string, ref *media.MultipartRef) error {
	policy, err := media.LookupPolicy(purpose)
	if err != nil {
		return err
	}
	if err := ref.Validate(); err != nil {
		return err
	}
	if err := checkOwnership(policy, ref.Key); err != nil {
		return err
	}
	return s.store.AbortMultipartUpload(ctx, ref.Key, ref.UploadID)
}

// mediaService implements the MediaService interface
type mediaService struct {
	repo   media.MediaRepository
	store  media.ObjectStore
	logger logger.Logger
}

// NewMediaService creates a new instance of MediaService
func NewMediaService(repo media.MediaRepository, store media.ObjectStore, logger logger.Logger) (media.MediaService, error) {
	return &mediaService{repo: repo, store: store, logger: logger}, nil
}

func (s *mediaService) List(ctx context.Context, query *media.MediaQuery) ([]*media.MediaAsset, int64, error) {
	return s.repo.List(ctx, query)
}

func (s *mediaService) GetByID(ctx context.Context, id string) (*media.MediaAsset, error) {
	return s.repo.GetByID(ctx, id)
}

func (s *mediaService) DeleteByID(ctx context.Context, id string) error {
	asset, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return err
	}

	if err := s.store.DeleteObject(ctx, asset.Key); err != nil && !errors.Is(err, apperr.ErrNotFound) {
		return fmt.Errorf("failed to delete object: %w", err)
	}
	return s.repo.DeleteByID(ctx, id)
}
