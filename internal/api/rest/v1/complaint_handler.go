package v1

import (
	"net/http"

	"github.com/sabbir073/Complete-Political-website-sub006/internal/domain/complaints"

	"github.com/gin-gonic/gin"
)

// ComplaintHandler defines the interface for complaint endpoints
type ComplaintHandler interface {
	Submit(ctx *gin.Context)
	Track(ctx *gin.Context)
	List(ctx *gin.Context)
	GetByID(ctx *gin.Context)
	UpdateStatus(ctx *gin.Context)
}

type complaintHandler struct {
	complaintService complaints.ComplaintService
}

// NewComplaintHandler creates a new ComplaintHandler
func NewComplaintHandler(complaintService complaints.ComplaintService) ComplaintHandler {
	return &complaintHandler{complaintService: complaintService}
}

// Submit files a complaint and returns its tracking id
func (handler *complaintHandler) Submit(ctx *gin.Context) {
	var complaint complaints.Complaint
	if !bindJSON(ctx, &complaint) {
		return
	}
	created, err := handler.complaintService.Submit(ctx, &complaint)
	if err != nil {
		respondError(ctx, err)
		return
	}
	respond(ctx, http.StatusCreated, created.ToTracking())
}

// Track returns the public status of a complaint without personal data
func (handler *complaintHandler) Track(ctx *gin.Context) {
	tracking, err := handler.complaintService.Track(ctx, ctx.Param("trackingId"))
	if err != nil {
		respondError(ctx, err)
		return
	}
	respond(ctx, http.StatusOK, tracking)
}

// List lists complaints
func (handler *complaintHandler) List(ctx *gin.Context) {
	query := complaints.NewComplaintQuery()
	query.Params = pageParams(ctx)
	query.Status = ctx.Query("status")
	query.Category = ctx.Query("category")
	query.Search = ctx.Query("search")

	list, total, err := handler.complaintService.List(ctx, query)
	if err != nil {
		respondError(ctx, err)
		return
	}
	respondList(ctx, list, query.Params, total)
}

// GetByID returns a complaint with its personal data
func (handler *complaintHandler) GetByID(ctx *gin.Context) {
	complaint, err := handler.complaintService.GetByID(ctx, ctx.Param("id"))
	if err != nil {
		respondError(ctx, err)
		return
	}
	respond(ctx, http.StatusOK, complaint)
}

// UpdateStatus changes the status and admin note of a complaint
func (handler *complaintHandler) UpdateStatus(ctx *gin.Context) {
	var update complaints.StatusUpdate
	if !bindJSON(ctx, &update) {
		return
	}
	complaint, err := handler.complaintService.UpdateStatus(ctx, ctx.Param("id"), &update)
	if err != nil {
		respondError(ctx, err)
		return
	}
	respond(ctx, http.StatusOK, complaint)
}
