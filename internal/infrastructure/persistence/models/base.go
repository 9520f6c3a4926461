package models

import (
	"time"

	"gorm.io/gorm"
)

// Base holds the columns every table shares
type Base struct {
	ID        string    `gorm:"primaryKey;type:uuid"`
	CreatedAt time.Time `gorm:"not null"`
	UpdatedAt time.Time `gorm:"not null"`
}

// SoftDeleteBase is Base for content tables that are soft deleted
type SoftDeleteBase struct {
	Base
	DeletedAt gorm.DeletedAt `gorm:"index"`
}

// utc normalizes a timestamp before it is stored; SQLite compares times as text
func utc(t time.Time) time.Time {
	return t.UTC()
}

func utcPtr(t *time.Time) *time.Time {
	if t == nil {
		return nil
	}
	u := t.UTC()
	return &u
}

// All returns every model in migration order
func All() []interface{} {
	return []interface{}{
		&UserModel{},
		&CategoryModel{},
		&NewsArticleModel{},
		&EventModel{},
		&AlbumModel{},
		&PhotoModel{},
		&PromiseModel{},
		&AchievementModel{},
		&TestimonialModel{},
		&QuestionModel{},
		&ComplaintModel{},
		&ContactMessageModel{},
		&ProductModel{},
		&OrderModel{},
		&VoterModel{},
		&ChallengeModel{},
		&ChallengeSubmissionModel{},
		&SOSAlertModel{},
		&VolunteerModel{},
		&MediaAssetModel{},
	}
}
