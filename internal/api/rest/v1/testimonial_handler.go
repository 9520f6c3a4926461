package v1

import (
	"net/http"

	"github.com/sabbir073/Complete-Political-website-sub006/internal/domain/testimonials"

	"github.com/gin-gonic/gin"
)

// TestimonialHandler defines the interface for testimonial endpoints
type TestimonialHandler interface {
	ListApproved(ctx *gin.Context)
	Submit(ctx *gin.Context)
	List(ctx *gin.Context)
	SetStatus(ctx *gin.Context)
	DeleteByID(ctx *gin.Context)
}

type testimonialHandler struct {
	testimonialService testimonials.TestimonialService
}

// NewTestimonialHandler creates a new TestimonialHandler
func NewTestimonialHandler(testimonialService testimonials.TestimonialService) TestimonialHandler {
	return &testimonialHandler{testimonialService: testimonialService}
}

// ListApproved lists approved testimonials
func (handler *testimonialHandler) ListApproved(ctx *gin.Context) {
	query := testimonials.NewTestimonialQuery()
	query.Params = pageParams(ctx)

	list, total, err := handler.testimonialService.ListApproved(ctx, query)
	if err != nil {
		respondError(ctx, err)
		return
	}
	respondList(ctx, list, query.Params, total)
}

// Submit stores a public testimonial for moderation
func (handler *testimonialHandler) Submit(ctx *gin.Context) {
	var testimonial testimonials.Testimonial
	if !bindJSON(ctx, &testimonial) {
		return
	}
	created, err := handler.testimonialService.Submit(ctx, &testimonial)
	if err != nil {
		respondError(ctx, err)
		return
	}
	respond(ctx, http.StatusCreated, created)
}

// List lists testimonials for moderation
func (handler *testimonialHandler) List(ctx *gin.Context) {
	query := testimonials.NewTestimonialQuery()
	query.Params = pageParams(ctx)
	query.Status = ctx.Query("status")

	list, total, err := handler.testimonialService.List(ctx, query)
	if err != nil {
		respondError(ctx, err)
		return
	}
	respondList(ctx, list, query.Params, total)
}

// SetStatus approves or rejects a testimonial
func (handler *testimonialHandler) SetStatus(ctx *gin.Context) {
	var request StatusRequest
	if !bindJSON(ctx, &request) {
		return
	}
	if err := request.Validate(); err != nil {
		respondError(ctx, err)
		return
	}

	testimonial, err := handler.testimonialService.SetStatus(ctx, ctx.Param("id"), request.Status)
	if err != nil {
		respondError(ctx, err)
		return
	}
	respond(ctx, http.StatusOK, testimonial)
}

// DeleteByID deletes a testimonial
func (handler *testimonialHandler) DeleteByID(ctx *gin.Context) {
	if err := handler.testimonialService.DeleteByID(ctx, ctx.Param("id")); err != nil {
		respondError(ctx, err)
		return
	}
	ctx.Status(http.StatusNoContent)
}
