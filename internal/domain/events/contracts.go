package events

import "context"

// EventService manages events
type EventService interface {
	Create(ctx context.Context, event *Event) (*Event, error)
	Update(ctx context.Context, event *Event) (*Event, error)
	GetByID(ctx context.Context, id string) (*Event, error)
	DeleteByID(ctx context.Context, id string) error
	List(ctx context.Context, query *EventQuery) ([]*Event, int64, error)
	// ListPublished orders upcoming events ascending and past events descending by starts_at.
	ListPublished(ctx context.Context, query *EventQuery) ([]*Event, int64, error)
	GetPublishedBySlug(ctx context.Context, slug string) (*Event, error)
}

// EventRepository defines the interface for Event persistence
type EventRepository interface {
	Create(ctx context.Context, event *Event) error
	List(ctx context.Context, query *EventQuery) ([]*Event, int64, error)
	GetByID(ctx context.Context, id string) (*Event, error)
	GetBySlug(ctx context.Context, slug string) (*Event, error)
	Update(ctx context.Context, event *Event) error
	DeleteByID(ctx context.Context, id string) error
	SlugExists(ctx context.Context, slug, excludeID string) (bool, error)
}
