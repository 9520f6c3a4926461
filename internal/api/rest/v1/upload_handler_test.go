//go:build unit
// +build unit

package v1

import (
	"net/http"
	"testing"

	"github.com/sabbir073/Complete-Political-website-sub006/internal/domain/media"
	"github.com/sabbir073/Complete-Political-website-sub006/internal/pkg/apperr"
	"github.com/sabbir073/Complete-Political-website-sub006/internal/pkg/testutil"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

const testChunkLimit = 1 << 10

func purposeParam(purpose string) gin.Param {
	return gin.Param{Key: "purpose", Value: purpose}
}

func TestUploadHandler_Upload(t *testing.T) {
	t.Run("anonymous public upload", func(t *testing.T) {
		mockService := new(MockUploadService)
		handler := NewUploadHandler(mockService, testChunkLimit)

		asset := &media.MediaAsset{ID: "m1", Key: "volunteer-photo/2026/10/x.png", URL: "https://cdn.example.com/volunteer-photo/2026/10/x.png"}
		mockService.On("Upload", mock.Anything, media.PurposeVolunteerPhoto, mock.AnythingOfType("*multipart.FileHeader"), (*string)(nil)).
			Return(asset, nil)

		req := testutil.NewMultipartRequest(t, http.MethodPost, "/uploads/volunteer-photo", nil,
			testutil.FormFile{Field: "file", FileName: "me.png", Content: testutil.PNGBytes})
		c, w := newTestContext(req, purposeParam(media.PurposeVolunteerPhoto))
		handler.Upload(c)

		assert.Equal(t, http.StatusCreated, w.Code)
		assert.Contains(t, w.Body.String(), asset.URL)
		mockService.AssertExpectations(t)
	})

	t.Run("uploader recorded", func(t *testing.T) {
		mockService := new(MockUploadService)
		handler := NewUploadHandler(mockService, testChunkLimit)

		mockService.On("Upload", mock.Anything, media.PurposeMedia, mock.Anything, mock.MatchedBy(func(id *string) bool {
			return id != nil && *id == editorUser.ID
		})).Return(&media.MediaAsset{ID: "m2"}, nil)

		req := testutil.NewMultipartRequest(t, http.MethodPost, "/uploads/media", nil,
			testutil.FormFile{Field: "file", FileName: "doc.pdf", Content: testutil.PDFBytes})
		c, w := newTestContext(req, purposeParam(media.PurposeMedia))
		withUser(c, editorUser)
		handler.Upload(c)

		assert.Equal(t, http.StatusCreated, w.Code)
		mockService.AssertExpectations(t)
	})

	t.Run("missing file", func(t *testing.T) {
		mockService := new(MockUploadService)
		handler := NewUploadHandler(mockService, testChunkLimit)

		req := testutil.NewMultipartRequest(t, http.MethodPost, "/uploads/media", map[string]string{"note": "x"})
		c, w := newTestContext(req, purposeParam(media.PurposeMedia))
		handler.Upload(c)

		assert.Equal(t, http.StatusBadRequest, w.Code)
		mockService.AssertNotCalled(t, "Upload", mock.Anything, mock.Anything, mock.Anything, mock.Anything)
	})

	t.Run("policy rejection", func(t *testing.T) {
		mockService := new(MockUploadService)
		handler := NewUploadHandler(mockService, testChunkLimit)
		mockService.On("Upload", mock.Anything, media.PurposeSOSAudio, mock.Anything, mock.Anything).
			Return(nil, apperr.Validation("content type text/plain is not allowed for sos-audio"))

		req := testutil.NewMultipartRequest(t, http.MethodPost, "/uploads/sos-audio", nil,
			testutil.FormFile{Field: "file", FileName: "note.txt", Content: testutil.TextBytes})
		c, w := newTestContext(req, purposeParam(media.PurposeSOSAudio))
		handler.Upload(c)

		assert.Equal(t, http.StatusBadRequest, w.Code)
		assert.Contains(t, decodeEnvelope(t, w).Error, "not allowed")
	})
}

func chunkForm(index string) map[string]string {
	return map[string]string{
		"upload_id":    "up-1",
		"chunk_index":  index,
		"total_chunks": "2",
		"file_name":    "clip.mp4",
		"content_type": "video/mp4",
	}
}

func TestUploadHandler_UploadChunk(t *testing.T) {
	t.Run("partial chunk is accepted", func(t *testing.T) {
		mockService := new(MockUploadService)
		handler := NewUploadHandler(mockService, testChunkLimit)

		mockService.On("UploadChunk", mock.Anything, media.PurposeTestimonialVideo, mock.MatchedBy(func(c *media.ChunkUpload) bool {
			return c.UploadID == "up-1" && c.ChunkIndex == 1 && c.TotalChunks == 2 && string(c.Data) == "tail" && c.UploaderID == nil
		})).Return(&media.ChunkResult{Progress: &media.ChunkProgress{UploadID: "up-1", Received: 1, Total: 2}}, nil)

		req := testutil.NewMultipartRequest(t, http.MethodPost, "/uploads/testimonial-video/chunks", chunkForm("1"),
			testutil.FormFile{Field: "chunk", FileName: "blob", Content: []byte("tail")})
		c, w := newTestContext(req, purposeParam(media.PurposeTestimonialVideo))
		handler.UploadChunk(c)

		assert.Equal(t, http.StatusAccepted, w.Code)
		mockService.AssertExpectations(t)
	})

	t.Run("oversized chunk rejected before the service", func(t *testing.T) {
		mockService := new(MockUploadService)
		handler := NewUploadHandler(mockService, testChunkLimit)

		req := testutil.NewMultipartRequest(t, http.MethodPost, "/uploads/testimonial-video/chunks", chunkForm("0"),
			testutil.FormFile{Field: "chunk", FileName: "blob", Content: make([]byte, testChunkLimit+1)})
		c, w := newTestContext(req, purposeParam(media.PurposeTestimonialVideo))
		handler.UploadChunk(c)

		assert.Equal(t, http.StatusBadRequest, w.Code)
		assert.Equal(t, "chunk exceeds 1024 bytes", decodeEnvelope(t, w).Error)
		mockService.AssertNotCalled(t, "UploadChunk", mock.Anything, mock.Anything, mock.Anything)
	})

	t.Run("oversized request body rejected while parsing", func(t *testing.T) {
		mockService := new(MockUploadService)
		handler := NewUploadHandler(mockService, testChunkLimit)

		req := testutil.NewMultipartRequest(t, http.MethodPost, "/uploads/testimonial-video/chunks", chunkForm("0"),
			testutil.FormFile{Field: "chunk", FileName: "blob", Content: make([]byte, testChunkLimit+chunkFormOverhead)})
		c, w := newTestContext(req, purposeParam(media.PurposeTestimonialVideo))
		handler.UploadChunk(c)

		assert.Equal(t, http.StatusBadRequest, w.Code)
		assert.Equal(t, "chunk exceeds 1024 bytes", decodeEnvelope(t, w).Error)
		mockService.AssertNotCalled(t, "UploadChunk", mock.Anything, mock.Anything, mock.Anything)
	})

	t.Run("final chunk creates the asset", func(t *testing.T) {
		mockService := new(MockUploadService)
		handler := NewUploadHandler(mockService, testChunkLimit)

		mockService.On("UploadChunk", mock.Anything, media.PurposeTestimonialVideo, mock.Anything).
			Return(&media.ChunkResult{
				Progress: &media.ChunkProgress{UploadID: "up-1", Received: 2, Total: 2, Complete: true},
				Asset:    &media.MediaAsset{ID: "m3", Key: "testimonial-video/2026/10/a.mp4"},
			}, nil)

		req := testutil.NewMultipartRequest(t, http.MethodPost, "/uploads/testimonial-video/chunks", chunkForm("0"),
			testutil.FormFile{Field: "chunk", FileName: "blob", Content: []byte("head")})
		c, w := newTestContext(req, purposeParam(media.PurposeTestimonialVideo))
		handler.UploadChunk(c)

		assert.Equal(t, http.StatusCreated, w.Code)
		assert.Contains(t, w.Body.String(), "testimonial-video/2026/10/a.mp4")
	})

	t.Run("non numeric index", func(t *testing.T) {
		mockService := new(MockUploadService)
		handler := NewUploadHandler(mockService, testChunkLimit)

		req := testutil.NewMultipartRequest(t, http.MethodPost, "/uploads/testimonial-video/chunks", chunkForm("first"),
			testutil.FormFile{Field: "chunk", FileName: "blob", Content: []byte("head")})
		c, w := newTestContext(req, purposeParam(media.PurposeTestimonialVideo))
		handler.UploadChunk(c)

		assert.Equal(t, http.StatusBadRequest, w.Code)
		assert.Equal(t, "chunk_index must be a number", decodeEnvelope(t, w).Error)
	})

	t.Run("metadata mismatch is a conflict", func(t *testing.T) {
		mockService := new(MockUploadService)
		handler := NewUploadHandler(mockService, testChunkLimit)
		mockService.On("UploadChunk", mock.Anything, mock.Anything, mock.Anything).
			Return(nil, apperr.Conflict("total_chunks does not match the first chunk"))

		req := testutil.NewMultipartRequest(t, http.MethodPost, "/uploads/testimonial-video/chunks", chunkForm("0"),
			testutil.FormFile{Field: "chunk", FileName: "blob", Content: []byte("head")})
		c, w := newTestContext(req, purposeParam(media.PurposeTestimonialVideo))
		handler.UploadChunk(c)

		assert.Equal(t, http.StatusConflict, w.Code)
	})
}

func TestUploadHandler_ChunkStatusAndAbort(t *testing.T) {
	mockService := new(MockUploadService)
	handler := NewUploadHandler(mockService, testChunkLimit)

	mockService.On("ChunkStatus", mock.Anything, media.PurposeMedia, "up-9").
		Return(&media.ChunkProgress{UploadID: "up-9", Received: 3, Total: 5}, nil)
	mockService.On("AbortChunks", mock.Anything, media.PurposeMedia, "gone").
		Return(apperr.NotFound("upload", "gone"))

	c, w := newTestContext(newJSONRequest(t, http.MethodGet, "/uploads/media/chunks/up-9", nil),
		purposeParam(media.PurposeMedia), gin.Param{Key: "uploadId", Value: "up-9"})
	handler.ChunkStatus(c)
	assert.Equal(t, http.StatusOK, w.Code)
	var progress media.ChunkProgress
	decodeData(t, decodeEnvelope(t, w), &progress)
	assert.Equal(t, 3, progress.Received)

	c, w = newTestContext(newJSONRequest(t, http.MethodDelete, "/uploads/media/chunks/gone", nil),
		purposeParam(media.PurposeMedia), gin.Param{Key: "uploadId", Value: "gone"})
	handler.AbortChunks(c)
	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestUploadHandler_Multipart(t *testing.T) {
	t.Run("init", func(t *testing.T) {
		mockService := new(MockUploadService)
		handler := NewUploadHandler(mockService, testChunkLimit)

		session := &media.MultipartSession{
			UploadID: "s3-up",
			Key:      "media/2026/10/v.mp4",
			PartSize: media.MinPartSize,
			Parts:    []media.PresignedPart{{PartNumber: 1, URL: "https://s3/presigned/1"}},
		}
		mockService.On("InitMultipart", mock.Anything, media.PurposeMedia, mock.MatchedBy(func(i *media.MultipartInit) bool {
			return i.FileName == "v.mp4" && i.Size == 1024
		})).Return(session, nil)

		body := map[string]any{"file_name": "v.mp4", "content_type": "video/mp4", "size": 1024}
		c, w := newTestContext(newJSONRequest(t, http.MethodPost, "/uploads/media/multipart", body), purposeParam(media.PurposeMedia))
		handler.InitMultipart(c)

		assert.Equal(t, http.StatusCreated, w.Code)
		var got media.MultipartSession
		decodeData(t, decodeEnvelope(t, w), &got)
		assert.Equal(t, "s3-up", got.UploadID)
		assert.Len(t, got.Parts, 1)
	})

	t.Run("list parts reads the query", func(t *testing.T) {
		mockService := new(MockUploadService)
		handler := NewUploadHandler(mockService, testChunkLimit)

		mockService.On("ListParts", mock.Anything, media.PurposeMedia, &media.MultipartRef{Key: "media/2026/10/v.mp4", UploadID: "s3-up"}).
			Return([]media.Part{{PartNumber: 1, ETag: "\"e1\""}}, nil)

		c, w := newTestContext(newJSONRequest(t, http.MethodGet, "/uploads/media/multipart/parts?key=media/2026/10/v.mp4&upload_id=s3-up", nil),
			purposeParam(media.PurposeMedia))
		handler.ListParts(c)

		assert.Equal(t, http.StatusOK, w.Code)
		mockService.AssertExpectations(t)
	})

	t.Run("complete records the uploader", func(t *testing.T) {
		mockService := new(MockUploadService)
		handler := NewUploadHandler(mockService, testChunkLimit)

		mockService.On("CompleteMultipart", mock.Anything, media.PurposeMedia, mock.MatchedBy(func(r *media.CompleteRequest) bool {
			return r.UploadID == "s3-up" && len(r.Parts) == 2
		}), mock.MatchedBy(func(id *string) bool { return id != nil && *id == adminUser.ID })).
			Return(&media.MediaAsset{ID: "m4", Key: "media/2026/10/v.mp4"}, nil)

		body := map[string]any{
			"key":       "media/2026/10/v.mp4",
			"upload_id": "s3-up",
			"parts":     []map[string]any{{"part_number": 2, "etag": "b"}, {"part_number": 1, "etag": "a"}},
		}
		c, w := newTestContext(newJSONRequest(t, http.MethodPost, "/uploads/media/multipart/complete", body), purposeParam(media.PurposeMedia))
		withUser(c, adminUser)
		handler.CompleteMultipart(c)

		assert.Equal(t, http.StatusCreated, w.Code)
		mockService.AssertExpectations(t)
	})

	t.Run("abort", func(t *testing.T) {
		mockService := new(MockUploadService)
		handler := NewUploadHandler(mockService, testChunkLimit)
		mockService.On("AbortMultipart", mock.Anything, media.PurposeMedia, mock.Anything).Return(nil)

		body := map[string]string{"key": "media/2026/10/v.mp4", "upload_id": "s3-up"}
		c, _ := newTestContext(newJSONRequest(t, http.MethodPost, "/uploads/media/multipart/abort", body), purposeParam(media.PurposeMedia))
		handler.AbortMultipart(c)

		assert.Equal(t, http.StatusNoContent, c.Writer.Status())
	})
}
