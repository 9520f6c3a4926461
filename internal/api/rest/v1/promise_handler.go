package v1

import (
	"net/http"

	"github.com/sabbir073/Complete-Political-website-sub006/internal/domain/achievements"
	"github.com/sabbir073/Complete-Political-website-sub006/internal/domain/promises"
	"github.com/sabbir073/Complete-Political-website-sub006/internal/pkg/strutil"

	"github.com/gin-gonic/gin"
)

// PromiseHandler defines the interface for promise endpoints
type PromiseHandler interface {
	List(ctx *gin.Context)
	GetByID(ctx *gin.Context)
	Create(ctx *gin.Context)
	Update(ctx *gin.Context)
	DeleteByID(ctx *gin.Context)
}

type promiseHandler struct {
	promiseService promises.PromiseService
}

// NewPromiseHandler creates a new PromiseHandler
func NewPromiseHandler(promiseService promises.PromiseService) PromiseHandler {
	return &promiseHandler{promiseService: promiseService}
}

// List lists promises, optionally filtered by status and category. Promises are always public.
func (handler *promiseHandler) List(ctx *gin.Context) {
	query := promises.NewPromiseQuery()
	query.Params = pageParams(ctx)
	query.Status = ctx.Query("status")
	query.CategoryID = ctx.Query("category_id")

	list, total, err := handler.promiseService.List(ctx, query)
	if err != nil {
		respondError(ctx, err)
		return
	}
	respondList(ctx, list, query.Params, total)
}

// GetByID returns a promise by id
func (handler *promiseHandler) GetByID(ctx *gin.Context) {
	promise, err := handler.promiseService.GetByID(ctx, ctx.Param("id"))
	if err != nil {
		respondError(ctx, err)
		return
	}
	respond(ctx, http.StatusOK, promise)
}

// Create creates a promise
func (handler *promiseHandler) Create(ctx *gin.Context) {
	var promise promises.Promise
	if !bindJSON(ctx, &promise) {
		return
	}
	created, err := handler.promiseService.Create(ctx, &promise)
	if err != nil {
		respondError(ctx, err)
		return
	}
	respond(ctx, http.StatusCreated, created)
}

// Update replaces a promise
func (handler *promiseHandler) Update(ctx *gin.Context) {
	var promise promises.Promise
	if !bindJSON(ctx, &promise) {
		return
	}
	promise.ID = ctx.Param("id")

	updated, err := handler.promiseService.Update(ctx, &promise)
	if err != nil {
		respondError(ctx, err)
		return
	}
	respond(ctx, http.StatusOK, updated)
}

// DeleteByID deletes a promise
func (handler *promiseHandler) DeleteByID(ctx *gin.Context) {
	if err := handler.promiseService.DeleteByID(ctx, ctx.Param("id")); err != nil {
		respondError(ctx, err)
		return
	}
	ctx.Status(http.StatusNoContent)
}

// AchievementHandler defines the interface for achievement endpoints
type AchievementHandler interface {
	ListPublished(ctx *gin.Context)
	List(ctx *gin.Context)
	GetByID(ctx *gin.Context)
	Create(ctx *gin.Context)
	Update(ctx *gin.Context)
	DeleteByID(ctx *gin.Context)
}

type achievementHandler struct {
	achievementService achievements.AchievementService
}

// NewAchievementHandler creates a new AchievementHandler
func NewAchievementHandler(achievementService achievements.AchievementService) AchievementHandler {
	return &achievementHandler{achievementService: achievementService}
}

func achievementQuery(ctx *gin.Context) *achievements.AchievementQuery {
	query := achievements.NewAchievementQuery()
	query.Params = pageParams(ctx)
	query.Status = ctx.Query("status")
	query.CategoryID = ctx.Query("category_id")
	query.Featured = strutil.ConvertToBoolPtr(ctx.Query("featured"))
	return query
}

// ListPublished lists published achievements
func (handler *achievementHandler) ListPublished(ctx *gin.Context) {
	query := achievementQuery(ctx)
	list, total, err := handler.achievementService.ListPublished(ctx, query)
	if err != nil {
		respondError(ctx, err)
		return
	}
	respondList(ctx, list, query.Params, total)
}

// List lists achievements in any status
func (handler *achievementHandler) List(ctx *gin.Context) {
	query := achievementQuery(ctx)
	list, total, err := handler.achievementService.List(ctx, query)
	if err != nil {
		respondError(ctx, err)
		return
	}
	respondList(ctx, list, query.Params, total)
}

// GetByID returns an achievement by id
func (handler *achievementHandler) GetByID(ctx *gin.Context) {
	achievement, err := handler.achievementService.GetByID(ctx, ctx.Param("id"))
	if err != nil {
		respondError(ctx, err)
		return
	}
	respond(ctx, http.StatusOK, achievement)
}

// Create creates an achievement
func (handler *achievementHandler) Create(ctx *gin.Context) {
	var achievement achievements.Achievement
	if !bindJSON(ctx, &achievement) {
		return
	}
	created, err := handler.achievementService.Create(ctx, &achievement)
	if err != nil {
		respondError(ctx, err)
		return
	}
	respond(ctx, http.StatusCreated, created)
}

// Update replaces an achievement
func (handler *achievementHandler) Update(ctx *gin.Context) {
	var achievement achievements.Achievement
	if !bindJSON(ctx, &achievement) {
		return
	}
	achievement.ID = ctx.Param("id")

	updated, err := handler.achievementService.Update(ctx, &achievement)
	if err != nil {
		respondError(ctx, err)
		return
	}
	respond(ctx, http.StatusOK, updated)
}

// DeleteByID deletes an achievement
func (handler *achievementHandler) DeleteByID(ctx *gin.Context) {
	if err := handler.achievementService.DeleteByID(ctx, ctx.Param("id")); err != nil {
		respondError(ctx, err)
		return
	}
	ctx.Status(http.StatusNoContent)
}
