package v1

import (
	"net/http"

	"github.com/sabbir073/Complete-Political-website-sub006/internal/domain/volunteers"

	"github.com/gin-gonic/gin"
)

// VolunteerHandler defines the interface for volunteer endpoints
type VolunteerHandler interface {
	Register(ctx *gin.Context)
	List(ctx *gin.Context)
	SetStatus(ctx *gin.Context)
	DeleteByID(ctx *gin.Context)
}

type volunteerHandler struct {
	volunteerService volunteers.VolunteerService
}

// NewVolunteerHandler creates a new VolunteerHandler
func NewVolunteerHandler(volunteerService volunteers.VolunteerService) VolunteerHandler {
	return &volunteerHandler{volunteerService: volunteerService}
}

// Register stores a volunteer sign up
func (handler *volunteerHandler) Register(ctx *gin.Context) {
	var volunteer volunteers.Volunteer
	if !bindJSON(ctx, &volunteer) {
		return
	}
	created, err := handler.volunteerService.Register(ctx, &volunteer)
	if err != nil {
		respondError(ctx, err)
		return
	}
	respond(ctx, http.StatusCreated, created)
}

// List lists volunteers, optionally filtered by status and area
func (handler *volunteerHandler) List(ctx *gin.Context) {
	query := volunteers.NewVolunteerQuery()
	query.Params = pageParams(ctx)
	query.Status = ctx.Query("status")
	query.Area = ctx.Query("area")

	list, total, err := handler.volunteerService.List(ctx, query)
	if err != nil {
		respondError(ctx, err)
		return
	}
	respondList(ctx, list, query.Params, total)
}

// SetStatus approves or rejects a volunteer
func (handler *volunteerHandler) SetStatus(ctx *gin.Context) {
	var request StatusRequest
	if !bindJSON(ctx, &request) {
		return
	}
	if err := request.Validate(); err != nil {
		respondError(ctx, err)
		return
	}

	volunteer, err := handler.volunteerService.SetStatus(ctx, ctx.Param("id"), request.Status)
	if err != nil {
		respondError(ctx, err)
		return
	}
	respond(ctx, http.StatusOK, volunteer)
}

// DeleteByID deletes a volunteer
func (handler *volunteerHandler) DeleteByID(ctx *gin.Context) {
	if err := handler.volunteerService.DeleteByID(ctx, ctx.Param("id")); err != nil {
		respondError(ctx, err)
		return
	}
	ctx.Status(http.StatusNoContent)
}
