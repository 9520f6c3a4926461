package app

import (
	"context"
	"fmt"

	"github.com/sabbir073/Complete-Political-website-sub006/internal/domain/events"
	"github.com/sabbir073/Complete-Political-website-sub006/internal/pkg/apperr"
	"github.com/sabbir073/Complete-Political-website-sub006/internal/pkg/logger"

	"github.com/google/uuid"
)

// eventService implements the EventService interface
type eventService struct {
	repo   events.EventRepository
	logger logger.Logger
}

// NewEventService creates a new instance of EventService
func NewEventService(repo events.EventRepository, logger logger.Logger) (events.EventService, error) {
	return &eventService{repo: repo, logger: logger}, nil
}

func (s *eventService) Create(ctx context.Context, event *events.Event) (*events.Event, error) {
	event.ID = uuid.NewString()

	slug, err := uniqueSlug(ctx, s.repo.SlugExists, event.Slug, event.TitleEn, "")
	if err != nil {
		return nil, fmt.Errorf("failed to generate slug: %w", err)
	}
	event.Slug = slug

	if err := s.repo.Create(ctx, event); err != nil {
		return nil, err
	}
	return event, nil
}

func (s *eventService) Update(ctx context.Context, event *events.Event) (*events.Event, error) {
	existing, err := s.repo.GetByID(ctx, event.ID)
	if err != nil {
		return nil, err
	}

	if event.Slug != existing.Slug {
		slug, err := uniqueSlug(ctx, s.repo.SlugExists, event.Slug, event.TitleEn, event.ID)
		if err != nil {
			return nil, fmt.Errorf("failed to generate slug: %w", err)
		}
		event.Slug = slug
	}
	event.CreatedAt = existing.CreatedAt

	if err := s.repo.Update(ctx, event); err != nil {
		return nil, err
	}
	return event, nil
}

func (s *eventService) GetByID(ctx context.Context, id string) (*events.Event, error) {
	return s.repo.GetByID(ctx, id)
}

func (s *eventService) DeleteByID(ctx context.Context, id string) error {
	return s.repo.DeleteByID(ctx, id)
}

func (s *eventService) List(ctx context.Context, query *events.EventQuery) ([]*events.Event, int64, error) {
	return s.repo.List(ctx, query)
}

func (s *eventService) ListPublished(ctx context.Context, query *events.EventQuery) ([]*events.Event, int64, error) {
	query.Status = events.StatusPublished
	return s.repo.List(ctx, query)
}

func (s *eventService) GetPublishedBySlug(ctx context.Context, slug string) (*events.Event, error) {
	event, err := s.repo.GetBySlug(ctx, slug)
	if err != nil {
		return nil, err
	}
	if event.Status != events.StatusPublished {
		return nil, apperr.NotFound("event", slug)
	}
	return event, nil
}
