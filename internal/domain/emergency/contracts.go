package emergency

import "context"

// AlertService handles SOS alerts
type AlertService interface {
	// Raise stores the alert and notifies the emergency contacts by SMS.
	// Notification failures are logged and never fail the call.
	Raise(ctx context.Context, alert *Alert) (*Alert, error)
	List(ctx context.Context, query *AlertQuery) ([]*Alert, int64, error)
	UpdateStatus(ctx context.Context, id string, update *StatusUpdate) (*Alert, error)
}

// AlertRepository defines the interface for Alert persistence
type AlertRepository interface {
	Create(ctx context.Context, alert *Alert) error
	List(ctx context.Context, query *AlertQuery) ([]*Alert, int64, error)
	GetByID(ctx context.Context, id string) (*Alert, error)
	Update(ctx context.Context, alert *Alert) error
}
