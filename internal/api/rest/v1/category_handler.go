package v1

import (
	"net/http"

	"github.com/sabbir073/Complete-Political-website-sub006/internal/domain/categories"

	"github.com/gin-gonic/gin"
)

// CategoryHandler defines the interface for category endpoints
type CategoryHandler interface {
	List(ctx *gin.Context)
	GetByID(ctx *gin.Context)
	Create(ctx *gin.Context)
	Update(ctx *gin.Context)
	DeleteByID(ctx *gin.Context)
}

type categoryHandler struct {
	categoryService categories.CategoryService
}

// NewCategoryHandler creates a new CategoryHandler
func NewCategoryHandler(categoryService categories.CategoryService) CategoryHandler {
	return &categoryHandler{categoryService: categoryService}
}

// List lists the categories of the ?type= content type, or all of them
func (handler *categoryHandler) List(ctx *gin.Context) {
	list, err := handler.categoryService.List(ctx, ctx.Query("type"))
	if err != nil {
		respondError(ctx, err)
		return
	}
	respond(ctx, http.StatusOK, list)
}

// GetByID returns a category by id
func (handler *categoryHandler) GetByID(ctx *gin.Context) {
	category, err := handler.categoryService.GetByID(ctx, ctx.Param("id"))
	if err != nil {
		respondError(ctx, err)
		return
	}
	respond(ctx, http.StatusOK, category)
}

// Create creates a category
func (handler *categoryHandler) Create(ctx *gin.Context) {
	var category categories.Category
	if !bindJSON(ctx, &category) {
		return
	}
	created, err := handler.categoryService.Create(ctx, &category)
	if err != nil {
		respondError(ctx, err)
		return
	}
	respond(ctx, http.StatusCreated, created)
}

// Update replaces a category
func (handler *categoryHandler) Update(ctx *gin.Context) {
	var category categories.Category
	if !bindJSON(ctx, &category) {
		return
	}
	category.ID = ctx.Param("id")

	updated, err := handler.categoryService.Update(ctx, &category)
	if err != nil {
		respondError(ctx, err)
		return
	}
	respond(ctx, http.StatusOK, updated)
}

// DeleteByID deletes a category
func (handler *categoryHandler) DeleteByID(ctx *gin.Context) {
	if err := handler.categoryService.DeleteByID(ctx, ctx.Param("id")); err != nil {
		respondError(ctx, err)
		return
	}
	ctx.Status(http.StatusNoContent)
}
