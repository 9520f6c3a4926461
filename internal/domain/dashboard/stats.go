package dashboard

import "context"

// Stats are the admin console counters
type Stats struct {
	PendingComplaints           int64 `json:"pending_complaints"`
	PendingTestimonials         int64 `json:"pending_testimonials"`
	PendingQuestions            int64 `json:"pending_questions"`
	PendingVolunteers           int64 `json:"pending_volunteers"`
	PendingChallengeSubmissions int64 `json:"pending_challenge_submissions"`
	UnreadMessages              int64 `json:"unread_messages"`
	NewSOSAlerts                int64 `json:"new_sos_alerts"`
	PendingOrders               int64 `json:"pending_orders"`
	PublishedNews               int64 `json:"published_news"`
}

// DashboardService returns the admin counters
type DashboardService interface {
	Stats(ctx context.Context) (*Stats, error)
}

// StatsRepository counts rows by status
type StatsRepository interface {
	Collect(ctx context.Context) (*Stats, error)
}
