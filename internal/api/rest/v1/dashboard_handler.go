package v1

import (
	"context"
	"net/http"

	"github.com/sabbir073/Complete-Political-website-sub006/internal/domain/dashboard"

	"github.com/gin-gonic/gin"
)

// DashboardHandler defines the interface for the admin dashboard
type DashboardHandler interface {
	Stats(ctx *gin.Context)
}

type dashboardHandler struct {
	dashboardService dashboard.DashboardService
}

// NewDashboardHandler creates a new DashboardHandler
func NewDashboardHandler(dashboardService dashboard.DashboardService) DashboardHandler {
	return &dashboardHandler{dashboardService: dashboardService}
}

// Stats returns the moderation queue counters
func (handler *dashboardHandler) Stats(ctx *gin.Context) {
	stats, err := handler.dashboardService.Stats(ctx)
	if err != nil {
		respondError(ctx, err)
		return
	}
	respond(ctx, http.StatusOK, stats)
}

// PingFunc checks a dependency, typically the database connection pool
type PingFunc func(ctx context.Context) error

// HealthHandler defines the interface for the liveness endpoint
type HealthHandler interface {
	Health(ctx *gin.Context)
}

type healthHandler struct {
	ping PingFunc
}

// NewHealthHandler creates a new HealthHandler
func NewHealthHandler(ping PingFunc) HealthHandler {
	return &healthHandler{ping: ping}
}

// Health reports 503 when the database is unreachable
func (handler *healthHandler) Health(ctx *gin.Context) {
	if handler.ping != nil {
		if err := handler.ping(ctx); err != nil {
			_ = ctx.Error(err)
			ctx.JSON(http.StatusServiceUnavailable, Response{
				Success: false,
				Data:    HealthResponse{Status: "degraded", Database: "unreachable"},
				Error:   "database unreachable",
			})
			return
		}
	}
	respond(ctx, http.StatusOK, HealthResponse{Status: "ok", Database: "ok"})
}
