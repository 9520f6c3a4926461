package v1

import (
	"net/http"

	"github.com/sabbir073/Complete-Political-website-sub006/internal/domain/news"
	"github.com/sabbir073/Complete-Political-website-sub006/internal/pkg/strutil"

	"github.com/gin-gonic/gin"
)

// NewsHandler defines the interface for news article endpoints
type NewsHandler interface {
	ListPublished(ctx *gin.Context)
	ViewBySlug(ctx *gin.Context)
	List(ctx *gin.Context)
	GetByID(ctx *gin.Context)
	Create(ctx *gin.Context)
	Update(ctx *gin.Context)
	DeleteByID(ctx *gin.Context)
}

type newsHandler struct {
	articleService news.ArticleService
}

// NewNewsHandler creates a new NewsHandler
func NewNewsHandler(articleService news.ArticleService) NewsHandler {
	return &newsHandler{articleService: articleService}
}

func articleQuery(ctx *gin.Context) *news.ArticleQuery {
	query := news.NewArticleQuery()
	query.Params = pageParams(ctx)
	query.Status = ctx.Query("status")
	query.CategoryID = ctx.Query("category_id")
	query.Featured = strutil.ConvertToBoolPtr(ctx.Query("featured"))
	query.Search = ctx.Query("search")
	return query
}

// ListPublished lists published articles, newest first
func (handler *newsHandler) ListPublished(ctx *gin.Context) {
	query := articleQuery(ctx)
	articles, total, err := handler.articleService.ListPublished(ctx, query)
	if err != nil {
		respondError(ctx, err)
		return
	}
	respondList(ctx, articles, query.Params, total)
}

// ViewBySlug returns a published article and counts the view
func (handler *newsHandler) ViewBySlug(ctx *gin.Context) {
	article, err := handler.articleService.ViewPublished(ctx, ctx.Param("slug"))
	if err != nil {
		respondError(ctx, err)
		return
	}
	respond(ctx, http.StatusOK, article)
}

// List lists articles in any status
func (handler *newsHandler) List(ctx *gin.Context) {
	query := articleQuery(ctx)
	articles, total, err := handler.articleService.List(ctx, query)
	if err != nil {
		respondError(ctx, err)
		return
	}
	respondList(ctx, articles, query.Params, total)
}

// GetByID returns an article by id
func (handler *newsHandler) GetByID(ctx *gin.Context) {
	article, err := handler.articleService.GetByID(ctx, ctx.Param("id"))
	if err != nil {
		respondError(ctx, err)
		return
	}
	respond(ctx, http.StatusOK, article)
}

// Create creates an article authored by the current user
func (handler *newsHandler) Create(ctx *gin.Context) {
	var article news.Article
	if !bindJSON(ctx, &article) {
		return
	}
	article.AuthorID = currentUserID(ctx)

	created, err := handler.articleService.Create(ctx, &article)
	if err != nil {
		respondError(ctx, err)
		return
	}
	respond(ctx, http.StatusCreated, created)
}

// Update replaces the editable fields of an article
func (handler *newsHandler) Update(ctx *gin.Context) {
	var article news.Article
	if !bindJSON(ctx, &article) {
		return
	}
	article.ID = ctx.Param("id")

	updated, err := handler.articleService.Update(ctx, &article)
	if err != nil {
		respondError(ctx, err)
		return
	}
	respond(ctx, http.StatusOK, updated)
}

// DeleteByID deletes an article
func (handler *newsHandler) DeleteByID(ctx *gin.Context) {
	if err := handler.articleService.DeleteByID(ctx, ctx.Param("id")); err != nil {
		respondError(ctx, err)
		return
	}
	ctx.Status(http.StatusNoContent)
}
