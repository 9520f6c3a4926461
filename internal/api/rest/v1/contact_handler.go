package v1

import (
	"net/http"

	"github.com/sabbir073/Complete-Political-website-sub006/internal/domain/contact"

	"github.com/gin-gonic/gin"
)

// ContactHandler defines the interface for contact message endpoints
type ContactHandler interface {
	Submit(ctx *gin.Context)
	List(ctx *gin.Context)
	SetStatus(ctx *gin.Context)
	DeleteByID(ctx *gin.Context)
}

type contactHandler struct {
	messageService contact.MessageService
}

// NewContactHandler creates a new ContactHandler
func NewContactHandler(messageService contact.MessageService) ContactHandler {
	return &contactHandler{messageService: messageService}
}

// Submit stores a contact form message
func (handler *contactHandler) Submit(ctx *gin.Context) {
	var message contact.Message
	if !bindJSON(ctx, &message) {
		return
	}
	created, err := handler.messageService.Submit(ctx, &message)
	if err != nil {
		respondError(ctx, err)
		return
	}
	respond(ctx, http.StatusCreated, created)
}

// List lists contact messages
func (handler *contactHandler) List(ctx *gin.Context) {
	query := contact.NewMessageQuery()
	query.Params = pageParams(ctx)
	query.Status = ctx.Query("status")

	list, total, err := handler.messageService.List(ctx, query)
	if err != nil {
		respondError(ctx, err)
		return
	}
	respondList(ctx, list, query.Params, total)
}

// SetStatus marks a message read or replied
func (handler *contactHandler) SetStatus(ctx *gin.Context) {
	var request StatusRequest
	if !bindJSON(ctx, &request) {
		return
	}
	if err := request.Validate(); err != nil {
		respondError(ctx, err)
		return
	}

	message, err := handler.messageService.SetStatus(ctx, ctx.Param("id"), request.Status)
	if err != nil {
		respondError(ctx, err)
		return
	}
	respond(ctx, http.StatusOK, message)
}

// DeleteByID deletes a message
func (handler *contactHandler) DeleteByID(ctx *gin.Context) {
	if err := handler.messageService.DeleteByID(ctx, ctx.Param("id")); err != nil {
		respondError(ctx, err)
		return
	}
	ctx.Status(http.StatusNoContent)
}
