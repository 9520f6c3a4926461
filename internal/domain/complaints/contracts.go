package complaints

import "context"

// ComplaintService handles complaint intake, tracking and moderation
type ComplaintService interface {
	// Submit assigns a tracking id, stores the complaint as pending and sends an SMS confirmation.
	Submit(ctx context.Context, complaint *Complaint) (*Complaint, error)
	Track(ctx context.Context, trackingID string) (*Tracking, error)
	List(ctx context.Context, query *ComplaintQuery) ([]*Complaint, int64, error)
	GetByID(ctx context.Context, id string) (*Complaint, error)
	// UpdateStatus changes status and note; a status change notifies the submitter by SMS.
	UpdateStatus(ctx context.Context, id string, update *StatusUpdate) (*Complaint, error)
}

// ComplaintRepository defines the interface for Complaint persistence
type ComplaintRepository interface {
	Create(ctx context.Context, complaint *Complaint) error
	List(ctx context.Context, query *ComplaintQuery) ([]*Complaint, int64, error)
	GetByID(ctx context.Context, id string) (*Complaint, error)
	GetByTrackingID(ctx context.Context, trackingID string) (*Complaint, error)
	Update(ctx context.Context, complaint *Complaint) error
}
