package v1

import (
	"net/http"

	"github.com/sabbir073/Complete-Political-website-sub006/internal/domain/events"

	"github.com/gin-gonic/gin"
)

// EventHandler defines the interface for event endpoints
type EventHandler interface {
	ListPublished(ctx *gin.Context)
	GetPublishedBySlug(ctx *gin.Context)
	List(ctx *gin.Context)
	GetByID(ctx *gin.Context)
	Create(ctx *gin.Context)
	Update(ctx *gin.Context)
	DeleteByID(ctx *gin.Context)
}

type eventHandler struct {
	eventService events.EventService
}

// NewEventHandler creates a new EventHandler
func NewEventHandler(eventService events.EventService) EventHandler {
	return &eventHandler{eventService: eventService}
}

func eventQuery(ctx *gin.Context) *events.EventQuery {
	query := events.NewEventQuery()
	query.Params = pageParams(ctx)
	query.Scope = ctx.Query("scope")
	query.Status = ctx.Query("status")
	return query
}

// ListPublished lists published events, optionally scoped to upcoming or past
func (handler *eventHandler) ListPublished(ctx *gin.Context) {
	query := eventQuery(ctx)
	list, total, err := handler.eventService.ListPublished(ctx, query)
	if err != nil {
		respondError(ctx, err)
		return
	}
	respondList(ctx, list, query.Params, total)
}

// GetPublishedBySlug returns a published event
func (handler *eventHandler) GetPublishedBySlug(ctx *gin.Context) {
	event, err := handler.eventService.GetPublishedBySlug(ctx, ctx.Param("slug"))
	if err != nil {
		respondError(ctx, err)
		return
	}
	respond(ctx, http.StatusOK, event)
}

// List lists events in any status
func (handler *eventHandler) List(ctx *gin.Context) {
	query := eventQuery(ctx)
	list, total, err := handler.eventService.List(ctx, query)
	if err != nil {
		respondError(ctx, err)
		return
	}
	respondList(ctx, list, query.Params, total)
}

// GetByID returns an event by id
func (handler *eventHandler) GetByID(ctx *gin.Context) {
	event, err := handler.eventService.GetByID(ctx, ctx.Param("id"))
	if err != nil {
		respondError(ctx, err)
		return
	}
	respond(ctx, http.StatusOK, event)
}

// Create creates an event
func (handler *eventHandler) Create(ctx *gin.Context) {
	var event events.Event
	if !bindJSON(ctx, &event) {
		return
	}
	created, err := handler.eventService.Create(ctx, &event)
	if err != nil {
		respondError(ctx, err)
		return
	}
	respond(ctx, http.StatusCreated, created)
}

// Update replaces an event
func (handler *eventHandler) Update(ctx *gin.Context) {
	var event events.Event
	if !bindJSON(ctx, &event) {
		return
	}
	event.ID = ctx.Param("id")

	updated, err := handler.eventService.Update(ctx, &event)
	if err != nil {
		respondError(ctx, err)
		return
	}
	respond(ctx, http.StatusOK, updated)
}

// DeleteByID deletes an event
func (handler *eventHandler) DeleteByID(ctx *gin.Context) {
	if err := handler.eventService.DeleteByID(ctx, ctx.Param("id")); err != nil {
		respondError(ctx, err)
		return
	}
	ctx.Status(http.StatusNoContent)
}
