package app

import (
	"context"

	"github.com/sabbir073/Complete-Political-website-sub006/internal/domain/achievements"
	"github.com/sabbir073/Complete-Political-website-sub006/internal/domain/promises"
	"github.com/sabbir073/Complete-Political-website-sub006/internal/pkg/logger"

	"github.com/google/uuid"
)

// promiseService implements the PromiseService interface
type promiseService struct {
	repo   promises.PromiseRepository
	logger logger.Logger
}

// NewPromiseService creates a new instance of PromiseService
func NewPromiseService(repo promises.PromiseRepository, logger logger.Logger) (promises.PromiseService, error) {
	return &promiseService{repo: repo, logger: logger}, nil
}

func (s *promiseService) Create(ctx context.Context, promise *promises.Promise) (*promises.Promise, error) {
	promise.ID = uuid.NewString()
	promise.Normalize()

	if err := s.repo.Create(ctx, promise); err != nil {
		return nil, err
	}
	return promise, nil
}

func (s *promiseService) Update(ctx context.Context, promise *promises.Promise) (*promises.Promise, error) {
	existing, err := s.repo.GetByID(ctx, promise.ID)
	if err != nil {
		return nil, err
	}
	promise.CreatedAt = existing.CreatedAt
	promise.Normalize()

	if err := s.repo.Update(ctx, promise); err != nil {
		return nil, err
	}
	return promise, nil
}

func (s *promiseService) GetByID(ctx context.Context, id string) (*promises.Promise, error) {
	return s.repo.GetByID(ctx, id)
}

func (s *promiseService) DeleteByID(ctx context.Context, id string) error {
	return s.repo.DeleteByID(ctx, id)
}

func (s *promiseService) List(ctx context.Context, query *promises.PromiseQuery) ([]*promises.Promise, int64, error) {
	return s.repo.List(ctx, query)
}

// achievementService implements the AchievementService interface
type achievementService struct {
	repo   achievements.AchievementRepository
	logger logger.Logger
}

// NewAchievementService creates a new instance of AchievementService
func NewAchievementService(repo achievements.AchievementRepository, logger logger.Logger) (achievements.AchievementService, error) {
	return &achievementService{repo: repo, logger: logger}, nil
}

func (s *achievementService) Create(ctx context.Context, achievement *achievements.Achievement) (*achievements.Achievement, error) {
	achievement.ID = uuid.NewString()

	if err := s.repo.Create(ctx, achievement); err != nil {
		return nil, err
	}
	return achievement, nil
}

func (s *achievementService) Update(ctx context.Context, achievement *achievements.Achievement) (*achievements.Achievement, error) {
	existing, err := s.repo.GetByID(ctx, achievement.ID)
	if err != nil {
		return nil, err
	}
	achievement.CreatedAt = existing.CreatedAt

	if err := s.repo.Update(ctx, achievement); err != nil {
		return nil, err
	}
	return achievement, nil
}

func (s *achievementService) GetByID(ctx context.Context, id string) (*achievements.Achievement, error) {
	return s.repo.GetByID(ctx, id)
}

func (s *achievementService) DeleteByID(ctx context.Context, id string) error {
	return s.repo.DeleteByID(ctx, id)
}

func (s *achievementService) List(ctx context.Context, query *achievements.AchievementQuery) ([]*achievements.Achievement, int64, error) {
	return s.repo.List(ctx, query)
}

func (s *achievementService) ListPublished(ctx context.Context, query *achievements.AchievementQuery) ([]*achievements.Achievement, int64, error) {
	query.Status = achievements.StatusPublished
	return s.repo.List(ctx, query)
}
