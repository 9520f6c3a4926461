package app

import (
	"context"

	"github.com/sabbir073/Complete-Political-website-sub006/internal/domain/dashboard"
	"github.com/sabbir073/Complete-Political-website-sub006/internal/pkg/logger"
)

// dashboardService implements the DashboardService interface
type dashboardService struct {
	repo   dashboard.StatsRepository
	logger logger.Logger
}

// NewDashboardService creates a new instance of DashboardService
func NewDashboardService(repo dashboard.StatsRepository, logger logger.Logger) (dashboard.DashboardService, error) {
	return &dashboardService{repo: repo, logger: logger}, nil
}

func (s *dashboardService) Stats(ctx context.Context) (*dashboard.Stats, error) {
	return s.repo.Collect(ctx)
}
