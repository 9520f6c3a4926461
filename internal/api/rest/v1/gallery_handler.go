package v1

import (
	"net/http"

	"github.com/sabbir073/Complete-Political-website-sub006/internal/domain/gallery"

	"github.com/gin-gonic/gin"
)

// GalleryHandler defines the interface for album and photo endpoints
type GalleryHandler interface {
	ListPublished(ctx *gin.Context)
	GetPublishedBySlug(ctx *gin.Context)
	List(ctx *gin.Context)
	GetByID(ctx *gin.Context)
	Create(ctx *gin.Context)
	Update(ctx *gin.Context)
	DeleteByID(ctx *gin.Context)
	AddPhoto(ctx *gin.Context)
	DeletePhoto(ctx *gin.Context)
}

type galleryHandler struct {
	albumService gallery.AlbumService
}

// NewGalleryHandler creates a new GalleryHandler
func NewGalleryHandler(albumService gallery.AlbumService) GalleryHandler {
	return &galleryHandler{albumService: albumService}
}

func albumQuery(ctx *gin.Context) *gallery.AlbumQuery {
	query := gallery.NewAlbumQuery()
	query.Params = pageParams(ctx)
	query.Status = ctx.Query("status")
	return query
}

// ListPublished lists published albums
func (handler *galleryHandler) ListPublished(ctx *gin.Context) {
	query := albumQuery(ctx)
	albums, total, err := handler.albumService.ListPublished(ctx, query)
	if err != nil {
		respondError(ctx, err)
		return
	}
	respondList(ctx, albums, query.Params, total)
}

// GetPublishedBySlug returns a published album with its photos in order
func (handler *galleryHandler) GetPublishedBySlug(ctx *gin.Context) {
	album, err := handler.albumService.GetPublishedBySlug(ctx, ctx.Param("slug"))
	if err != nil {
		respondError(ctx, err)
		return
	}
	respond(ctx, http.StatusOK, album)
}

// List lists albums in any status
func (handler *galleryHandler) List(ctx *gin.Context) {
	query := albumQuery(ctx)
	albums, total, err := handler.albumService.List(ctx, query)
	if err != nil {
		respondError(ctx, err)
		return
	}
	respondList(ctx, albums, query.Params, total)
}

// GetByID returns an album with its photos
func (handler *galleryHandler) GetByID(ctx *gin.Context) {
	album, err := handler.albumService.GetByID(ctx, ctx.Param("id"))
	if err != nil {
		respondError(ctx, err)
		return
	}
	respond(ctx, http.StatusOK, album)
}

// Create creates an album
func (handler *galleryHandler) Create(ctx *gin.Context) {
	var album gallery.Album
	if !bindJSON(ctx, &album) {
		return
	}
	created, err := handler.albumService.Create(ctx, &album)
	if err != nil {
		respondError(ctx, err)
		return
	}
	respond(ctx, http.StatusCreated, created)
}

// Update replaces an album's fields, leaving its photos alone
func (handler *galleryHandler) Update(ctx *gin.Context) {
	var album gallery.Album
	if !bindJSON(ctx, &album) {
		return
	}
	album.ID = ctx.Param("id")
	album.Photos = nil

	updated, err := handler.albumService.Update(ctx, &album)
	if err != nil {
		respondError(ctx, err)
		return
	}
	respond(ctx, http.StatusOK, updated)
}

// DeleteByID deletes an album
func (handler *galleryHandler) DeleteByID(ctx *gin.Context) {
	if err := handler.albumService.DeleteByID(ctx, ctx.Param("id")); err != nil {
		respondError(ctx, err)
		return
	}
	ctx.Status(http.StatusNoContent)
}

// AddPhoto appends a photo to the end of an album
func (handler *galleryHandler) AddPhoto(ctx *gin.Context) {
	var photo gallery.Photo
	if !bindJSON(ctx, &photo) {
		return
	}
	photo.AlbumID = ctx.Param("id")

	created, err := handler.albumService.AddPhoto(ctx, &photo)
	if err != nil {
		respondError(ctx, err)
		return
	}
	respond(ctx, http.StatusCreated, created)
}

// DeletePhoto removes a photo from an album
func (handler *galleryHandler) DeletePhoto(ctx *gin.Context) {
	if err := handler.albumService.DeletePhoto(ctx, ctx.Param("id"), ctx.Param("photoId")); err != nil {
		respondError(ctx, err)
		return
	}
	ctx.Status(http.StatusNoContent)
}
