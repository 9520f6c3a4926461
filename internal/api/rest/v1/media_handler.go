package v1

import (
	"net/http"

	"github.com/sabbir073/Complete-Political-website-sub006/internal/domain/media"

	"github.com/gin-gonic/gin"
)

// MediaHandler defines the interface for the media library endpoints
type MediaHandler interface {
	List(ctx *gin.Context)
	GetByID(ctx *gin.Context)
	DeleteByID(ctx *gin.Context)
}

type mediaHandler struct {
	mediaService media.MediaService
}

// NewMediaHandler creates a new MediaHandler
func NewMediaHandler(mediaService media.MediaService) MediaHandler {
	return &mediaHandler{mediaService: mediaService}
}

// List lists uploaded assets, optionally by purpose and content type
func (handler *mediaHandler) List(ctx *gin.Context) {
	query := media.NewMediaQuery()
	query.Params = pageParams(ctx)
	query.Purpose = ctx.Query("purpose")
	query.ContentType = ctx.Query("content_type")

	list, total, err := handler.mediaService.List(ctx, query)
	if err != nil {
		respondError(ctx, err)
		return
	}
	respondList(ctx, list, query.Params, total)
}

// GetByID returns an asset by id
func (handler *mediaHandler) GetByID(ctx *gin.Context) {
	asset, err := handler.mediaService.GetByID(ctx, ctx.Param("id"))
	if err != nil {
		respondError(ctx, err)
		return
	}
	respond(ctx, http.StatusOK, asset)
}

// DeleteByID deletes an asset and its stored object
func (handler *mediaHandler) DeleteByID(ctx *gin.Context) {
	if err := handler.mediaService.DeleteByID(ctx, ctx.Param("id")); err != nil {
		respondError(ctx, err)
		return
	}
	ctx.Status(http.StatusNoContent)
}
