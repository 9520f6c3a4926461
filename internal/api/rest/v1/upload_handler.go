package v1

import (
	"errors"
	"fmt"
	"io"
	"net/http"
	"strconv"

	"github.com/sabbir073/Complete-Political-website-sub006/internal/domain/media"
	"github.com/sabbir073/Complete-Political-website-sub006/internal/pkg/apperr"

	"github.com/gin-gonic/gin"
)

// UploadHandler defines the interface for the single-shot, chunked and multipart upload flows
type UploadHandler interface {
	Upload(ctx *gin.Context)
	UploadChunk(ctx *gin.Context)
	ChunkStatus(ctx *gin.Context)
	AbortChunks(ctx *gin.Context)
	InitMultipart(ctx *gin.Context)
	PresignParts(ctx *gin.Context)
	ListParts(ctx *gin.Context)
	CompleteMultipart(ctx *gin.Context)
	AbortMultipart(ctx *gin.Context)
}

// chunkFormOverhead covers the multipart boundaries and text fields around a chunk
const chunkFormOverhead = 64 << 10

type uploadHandler struct {
	uploadService media.UploadService
	maxChunkSize  int64
}

// NewUploadHandler creates a new UploadHandler; a maxChunkSize of zero leaves chunk bodies unbounded
func NewUploadHandler(uploadService media.UploadService, maxChunkSize int64) UploadHandler {
	return &uploadHandler{uploadService: uploadService, maxChunkSize: maxChunkSize}
}

// Upload stores the "file" form field in one request
func (handler *uploadHandler) Upload(ctx *gin.Context) {
	file, err := ctx.FormFile("file")
	if err != nil {
		respondError(ctx, apperr.Validation("a file is required in the file field"))
		return
	}

	asset, err := handler.uploadService.Upload(ctx, ctx.Param("purpose"), file, currentUserID(ctx))
	if err != nil {
		respondError(ctx, err)
		return
	}
	respond(ctx, http.StatusCreated, asset)
}

// UploadChunk stores one chunk and promotes the file once every chunk has arrived
func (handler *uploadHandler) UploadChunk(ctx *gin.Context) {
	chunk, err := handler.readChunk(ctx)
	if err != nil {
		respondError(ctx, err)
		return
	}
	chunk.UploaderID = currentUserID(ctx)

	result, err := handler.uploadService.UploadChunk(ctx, ctx.Param("purpose"), chunk)
	if err != nil {
		respondError(ctx, err)
		return
	}

	status := http.StatusAccepted
	if result.Asset != nil {
		status = http.StatusCreated
	}
	respond(ctx, status, result)
}

func (handler *uploadHandler) readChunk(ctx *gin.Context) (*media.ChunkUpload, error) {
	if handler.maxChunkSize > 0 {
		ctx.Request.Body = http.MaxBytesReader(ctx.Writer, ctx.Request.Body, handler.maxChunkSize+chunkFormOverhead)
	}
	if _, err := ctx.MultipartForm(); err != nil {
		var tooLarge *http.MaxBytesError
		if errors.As(err, &tooLarge) {
			return nil, handler.chunkTooLarge()
		}
		return nil, apperr.Validation("chunks must be sent as multipart/form-data")
	}

	index, err := strconv.Atoi(ctx.PostForm("chunk_index"))
	if err != nil {
		return nil, apperr.Validation("chunk_index must be a number")
	}
	total, err := strconv.Atoi(ctx.PostForm("total_chunks"))
	if err != nil {
		return nil, apperr.Validation("total_chunks must be a number")
	}

	header, err := ctx.FormFile("chunk")
	if err != nil {
		return nil, apperr.Validation("a chunk is required in the chunk field")
	}
	if handler.maxChunkSize > 0 && header.Size > handler.maxChunkSize {
		return nil, handler.chunkTooLarge()
	}
	file, err := header.Open()
	if err != nil {
		return nil, err
	}
	defer file.Close()

	data, err := io.ReadAll(file)
	if err != nil {
		return nil, err
	}

	return &media.ChunkUpload{
		UploadID:    ctx.PostForm("upload_id"),
		ChunkIndex:  index,
		TotalChunks: total,
		FileName:    ctx.PostForm("file_name"),
		ContentType: ctx.PostForm("content_type"),
		Data:        data,
	}, nil
}

func (handler *uploadHandler) chunkTooLarge() error {
	return apperr.Validation(fmt.Sprintf("chunk exceeds %d bytes", handler.maxChunkSize))
}

// ChunkStatus reports how many chunks of an upload have arrived
func (handler *uploadHandler) ChunkStatus(ctx *gin.Context) {
	progress, err := handler.uploadService.ChunkStatus(ctx, ctx.Param("purpose"), ctx.Param("uploadId"))
	if err != nil {
		respondError(ctx, err)
		return
	}
	respond(ctx, http.StatusOK, progress)
}

// AbortChunks drops a chunked upload
func (handler *uploadHandler) AbortChunks(ctx *gin.Context) {
	if err := handler.uploadService.AbortChunks(ctx, ctx.Param("purpose"), ctx.Param("uploadId")); err != nil {
		respondError(ctx, err)
		return
	}
	ctx.Status(http.StatusNoContent)
}

// InitMultipart starts an S3 multipart upload and presigns every part
func (handler *uploadHandler) InitMultipart(ctx *gin.Context) {
	var init media.MultipartInit
	if !bindJSON(ctx, &init) {
		return
	}
	session, err := handler.uploadService.InitMultipart(ctx, ctx.Param("purpose"), &init)
	if err != nil {
		respondError(ctx, err)
		return
	}
	respond(ctx, http.StatusCreated, session)
}

// PresignParts returns fresh URLs for the requested parts
func (handler *uploadHandler) PresignParts(ctx *gin.Context) {
	var request media.PresignRequest
	if !bindJSON(ctx, &request) {
		return
	}
	parts, err := handler.uploadService.PresignParts(ctx, ctx.Param("purpose"), &request)
	if err != nil {
		respondError(ctx, err)
		return
	}
	respond(ctx, http.StatusOK, parts)
}

// ListParts lists the parts S3 has received
func (handler *uploadHandler) ListParts(ctx *gin.Context) {
	var ref media.MultipartRef
	if err := ctx.ShouldBindQuery(&ref); err != nil {
		abortWith(ctx, http.StatusBadRequest, "invalid query parameters")
		return
	}
	parts, err := handler.uploadService.ListParts(ctx, ctx.Param("purpose"), &ref)
	if err != nil {
		respondError(ctx, err)
		return
	}
	respond(ctx, http.StatusOK, parts)
}

// CompleteMultipart assembles the parts and records the asset
func (handler *uploadHandler) CompleteMultipart(ctx *gin.Context) {
	var request media.CompleteRequest
	if !bindJSON(ctx, &request) {
		return
	}
	asset, err := handler.uploadService.CompleteMultipart(ctx, ctx.Param("purpose"), &request, currentUserID(ctx))
	if err != nil {
		respondError(ctx, err)
		return
	}
	respond(ctx, http.StatusCreated, asset)
}

// AbortMultipart aborts an S3 multipart upload
func (handler *uploadHandler) AbortMultipart(ctx *gin.Context) {
	var ref media.MultipartRef
	if !bindJSON(ctx, &ref) {
		return
	}
	if err := handler.uploadService.AbortMultipart(ctx, ctx.Param("purpose"), &ref); err != nil {
		respondError(ctx, err)
		return
	}
	ctx.Status(http.StatusNoContent)
}
