package volunteers

import "context"

// VolunteerService handles registrations and moderation
type VolunteerService interface {
	// Register stores a pending registration; a phone number can register once.
	Register(ctx context.Context, volunteer *Volunteer) (*Volunteer, error)
	List(ctx context.Context, query *VolunteerQuery) ([]*Volunteer, int64, error)
	SetStatus(ctx context.Context, id, status string) (*Volunteer, error)
	DeleteByID(ctx context.Context, id string) error
}

// VolunteerRepository defines the interface for Volunteer persistence
type VolunteerRepository interface {
	Create(ctx context.Context, volunteer *Volunteer) error
	List(ctx context.Context, query *VolunteerQuery) ([]*Volunteer, int64, error)
	GetByID(ctx context.Context, id string) (*Volunteer, error)
	Update(ctx context.Context, volunteer *Volunteer) error
	DeleteByID(ctx context.Context, id string) error
}
