package v1

import (
	"net/http"

	"github.com/sabbir073/Complete-Political-website-sub006/internal/domain/seo"

	"github.com/gin-gonic/gin"
)

// SEOHandler defines the interface for page metadata and sitemap endpoints
type SEOHandler interface {
	Metadata(ctx *gin.Context)
	Sitemap(ctx *gin.Context)
}

type seoHandler struct {
	seoService seo.SEOService
}

// NewSEOHandler creates a new SEOHandler
func NewSEOHandler(seoService seo.SEOService) SEOHandler {
	return &seoHandler{seoService: seoService}
}

// Metadata returns the head tags for ?path= in ?lang=
func (handler *seoHandler) Metadata(ctx *gin.Context) {
	query := &seo.MetadataQuery{
		Path: ctx.Query("path"),
		Lang: ctx.Query("lang"),
	}
	metadata, err := handler.seoService.Metadata(ctx, query)
	if err != nil {
		respondError(ctx, err)
		return
	}
	respond(ctx, http.StatusOK, metadata)
}

// Sitemap serves sitemap.xml
func (handler *seoHandler) Sitemap(ctx *gin.Context) {
	body, err := handler.seoService.Sitemap(ctx)
	if err != nil {
		respondError(ctx, err)
		return
	}
	ctx.Data(http.StatusOK, "application/xml; charset=utf-8", body)
}
