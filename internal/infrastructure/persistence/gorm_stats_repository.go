package persistence

import (
	"context"

	"github.com/sabbir073/Complete-Political-website-sub006/internal/domain/dashboard"
	"github.com/sabbir073/Complete-Political-website-sub006/internal/infrastructure/persistence/models"

	"gorm.io/gorm"
)

type gormStatsRepository struct {
	db *gorm.DB
}

// NewGormStatsRepository creates a new GORM-based StatsRepository implementation
func NewGormStatsRepository(db *gorm.DB) (dashboard.StatsRepository, error) {
	return &gormStatsRepository{db: db}, nil
}

func (r *gormStatsRepository) Collect(ctx context.Context) (*dashboard.Stats, error) {
	stats := &dashboard.Stats{}

	counters := []struct {
		model  interface{}
		status string
		dest   *int64
	}{
		{&models.ComplaintModel{}, "pending", &stats.PendingComplaints},
		{&models.TestimonialModel{}, "pending", &stats.PendingTestimonials},
		{&models.QuestionModel{}, "pending", &stats.PendingQuestions},
		{&models.VolunteerModel{}, "pending", &stats.PendingVolunteers},
		{&models.ChallengeSubmissionModel{}, "pending", &stats.PendingChallengeSubmissions},
		{&models.ContactMessageModel{}, "unread", &stats.UnreadMessages},
		{&models.SOSAlertModel{}, "new", &stats.NewSOSAlerts},
		{&models.OrderModel{}, "pending", &stats.PendingOrders},
		{&models.NewsArticleModel{}, "published", &stats.PublishedNews},
	}

	for _, counter := range counters {
		if err := r.db.WithContext(ctx).Model(counter.model).Where("status = ?", counter.status).Count(counter.dest).Error; err != nil {
			return nil, wrapError(err, "count", "dashboard stats")
		}
	}
	return stats, nil
}
