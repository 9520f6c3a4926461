package testimonials

import "context"

// TestimonialService handles public submissions and moderation
type TestimonialService interface {
	// Submit stores a new testimonial as pending regardless of the status sent.
	Submit(ctx context.Context, testimonial *Testimonial) (*Testimonial, error)
	List(ctx context.Context, query *TestimonialQuery) ([]*Testimonial, int64, error)
	ListApproved(ctx context.Context, query *TestimonialQuery) ([]*Testimonial, int64, error)
	SetStatus(ctx context.Context, id, status string) (*Testimonial, error)
	DeleteByID(ctx context.Context, id string) error
}

// TestimonialRepository defines the interface for Testimonial persistence
type TestimonialRepository interface {
	Create(ctx context.Context, testimonial *Testimonial) error
	List(ctx context.Context, query *TestimonialQuery) ([]*Testimonial, int64, error)
	GetByID(ctx context.Context, id string) (*Testimonial, error)
	Update(ctx context.Context, testimonial *Testimonial) error
	DeleteByID(ctx context.Context, id string) error
}
