package v1

import (
	"net/http"

	"github.com/sabbir073/Complete-Political-website-sub006/internal/domain/emergency"

	"github.com/gin-gonic/gin"
)

// EmergencyHandler defines the interface for SOS alert endpoints
type EmergencyHandler interface {
	Raise(ctx *gin.Context)
	List(ctx *gin.Context)
	UpdateStatus(ctx *gin.Context)
}

type emergencyHandler struct {
	alertService emergency.AlertService
}

// NewEmergencyHandler creates a new EmergencyHandler
func NewEmergencyHandler(alertService emergency.AlertService) EmergencyHandler {
	return &emergencyHandler{alertService: alertService}
}

// Raise records an SOS alert and notifies the emergency contacts
func (handler *emergencyHandler) Raise(ctx *gin.Context) {
	var alert emergency.Alert
	if !bindJSON(ctx, &alert) {
		return
	}
	created, err := handler.alertService.Raise(ctx, &alert)
	if err != nil {
		respondError(ctx, err)
		return
	}
	respond(ctx, http.StatusCreated, gin.H{"id": created.ID, "status": created.Status})
}

// List lists SOS alerts
func (handler *emergencyHandler) List(ctx *gin.Context) {
	query := emergency.NewAlertQuery()
	query.Params = pageParams(ctx)
	query.Status = ctx.Query("status")

	list, total, err := handler.alertService.List(ctx, query)
	if err != nil {
		respondError(ctx, err)
		return
	}
	respondList(ctx, list, query.Params, total)
}

// UpdateStatus acknowledges or resolves an alert
func (handler *emergencyHandler) UpdateStatus(ctx *gin.Context) {
	var update emergency.StatusUpdate
	if !bindJSON(ctx, &update) {
		return
	}
	alert, err := handler.alertService.UpdateStatus(ctx, ctx.Param("id"), &update)
	if err != nil {
		respondError(ctx, err)
		return
	}
	respond(ctx, http.StatusOK, alert)
}
