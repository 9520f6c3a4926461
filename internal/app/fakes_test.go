//go:build unit || integration
// +build unit integration

package app

import (
	"bytes"
	"context"
	"crypto/md5"
	"encoding/hex"
	"fmt"
	"io"
	"sort"
	"sync"
	"time"

	"github.com/sabbir073/Complete-Political-website-sub006/internal/domain/media"
	"github.com/sabbir073/Complete-Political-website-sub006/internal/pkg/apperr"
	"github.com/sabbir073/Complete-Political-website-sub006/internal/pkg/config"
)

var testAuthSettings = &config.AuthSettings{
	JWTSecret:  "0123456789abcdef0123456789abcdef",
	Issuer:     "campaign-test",
	SessionTTL: time.Hour,
	CookieName: "campaign_session",
}

type memObject struct {
	data        []byte
	contentType string
}

type memUpload struct {
	key         string
	contentType string
	parts       map[int32][]byte
}

// memObjectStore is an in-memory media.ObjectStore
type memObjectStore struct {
	mu      sync.Mutex
	objects map[string]memObject
	uploads map[string]*memUpload
	nextID  int
	// failPresign makes PresignUploadPart fail for this part number.
	failPresign int32
	aborted     []string
}

func newMemObjectStore() *memObjectStore {
	return &memObjectStore{
		objects: make(map[string]memObject),
		uploads: make(map[string]*memUpload),
	}
}

func etagOf(data []byte) string {
	sum := md5.Sum(data)
	return "\"" + hex.EncodeToString(sum[:]) + "\""
}

func (m *memObjectStore) PutObject(ctx context.Context, key, contentType string, body io.Reader, size int64) error {
	data, err := io.ReadAll(body)
	if err != nil {
		return err
	}
	if int64(len(data)) != size {
		return fmt.Errorf("size mismatch: declared %d, read %d", size, len(data))
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	m.objects[key] = memObject{data: data, contentType: contentType}
	return nil
}

func (m *memObjectStore) HeadObject(ctx context.Context, key string) (*media.ObjectInfo, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	obj, ok := m.objects[key]
	if !ok {
		return nil, apperr.NotFound("object", key)
	}
	return &media.ObjectInfo{Size: int64(len(obj.data)), ContentType: obj.contentType}, nil
}

func (m *memObjectStore) DeleteObject(ctx context.Context, key string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	delete(m.objects, key)
	return nil
}

func (m *memObjectStore) CreateMultipartUpload(ctx context.Context, key, contentType string) (string, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.nextID++
	id := fmt.Sprintf("upload-%d", m.nextID)
	m.uploads[id] = &memUpload{key: key, contentType: contentType, parts: make(map[int32][]byte)}
	return id, nil
}

func (m *memObjectStore) PresignUploadPart(ctx context.Context, key, uploadID string, partNumber int32) (string, error) {
	if partNumber == m.failPresign {
		return "", fmt.Errorf("presign failed for part %d", partNumber)
	}
	return fmt.Sprintf("https://s3.test/%s?partNumber=%d&uploadId=%s", key, partNumber, uploadID), nil
}

// uploadPart stands in for the client PUT to a presigned URL
func (m *memObjectStore) uploadPart(uploadID string, partNumber int32, data []byte) media.Part {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.uploads[uploadID].parts[partNumber] = data
	return media.Part{PartNumber: partNumber, ETag: etagOf(data), Size: int64(len(data))}
}

func (m *memObjectStore) ListParts(ctx context.Context, key, uploadID string) ([]media.Part, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	upload, ok := m.uploads[uploadID]
	if !ok || upload.key != key {
		return nil, apperr.NotFound("multipart upload", uploadID)
	}
	parts := make([]media.Part, 0, len(upload.parts))
	for n, data := range upload.parts {
		parts = append(parts, media.Part{PartNumber: n, ETag: etagOf(data), Size: int64(len(data))})
	}
	sort.Slice(parts, func(i, j int) bool { return parts[i].PartNumber < parts[j].PartNumber })
	return parts, nil
}

func (m *memObjectStore) CompleteMultipartUpload(ctx context.Context, key, uploadID string, parts []media.Part) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	upload, ok := m.uploads[uploadID]
	if !ok || upload.key != key {
		return apperr.NotFound("multipart upload", uploadID)
	}
	var buf bytes.Buffer
	for _, p := range parts {
		data, ok := upload.parts[p.PartNumber]
		if !ok || etagOf(data) != p.ETag {
			return fmt.Errorf("invalid part %d", p.PartNumber)
		}
		buf.Write(data)
	}
	m.objects[key] = memObject{data: buf.Bytes(), contentType: upload.contentType}
	delete(m.uploads, uploadID)
	return nil
}

func (m *memObjectStore) AbortMultipartUpload(ctx context.Context, key, uploadID string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if _, ok := m.uploads[uploadID]; !ok {
		return apperr.NotFound("multipart upload", uploadID)
	}
	delete(m.uploads, uploadID)
	m.aborted = append(m.aborted, uploadID)
	return nil
}

func (m *memObjectStore) PublicURL(key string) string {
	return "https://cdn.example.com/" + key
}

func (m *memObjectStore) object(key string) (memObject, bool) {
	m.mu.Lock()
	defer m.mu.Unlock()
	obj, ok := m.objects[key]
	return obj, ok
}

// memMediaRepo is an in-memory media.MediaRepository
type memMediaRepo struct {
	mu     sync.Mutex
	assets map[string]*media.MediaAsset
	err    error
}

func newMemMediaRepo() *memMediaRepo {
	return &memMediaRepo{assets: make(map[string]*media.MediaAsset)}
}

func (r *memMediaRepo) Create(ctx context.Context, asset *media.MediaAsset) error {
	if r.err != nil {
		return r.err
	}
	if err := asset.Validate(); err != nil {
		return err
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	r.assets[asset.ID] = asset
	return nil
}

func (r *memMediaRepo) List(ctx context.Context, query *media.MediaQuery) ([]*media.MediaAsset, int64, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	assets := make([]*media.MediaAsset, 0, len(r.assets))
	for _, a := range r.assets {
		assets = append(assets, a)
	}
	return assets, int64(len(assets)), nil
}

func (r *memMediaRepo) GetByID(ctx context.Context, id string) (*media.MediaAsset, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	a, ok := r.assets[id]
	if !ok {
		return nil, apperr.NotFound("media asset", id)
	}
	return a, nil
}

func (r *memMediaRepo) DeleteByID(ctx context.Context, id string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.assets[id]; !ok {
		return apperr.NotFound("media asset", id)
	}
	delete(r.assets, id)
	return nil
}
