package models

import (
	"time"

	"github.com/sabbir073/Complete-Political-website-sub006/internal/domain/events"
)

// EventModel is the GORM database model for events
type EventModel struct {
	SoftDeleteBase
	Slug          string     `gorm:"not null;uniqueIndex;type:varchar(200)"`
	TitleEn       string     `gorm:"not null;type:varchar(255)"`
	TitleBn       string     `gorm:"type:varchar(255)"`
	DescriptionEn string     `gorm:"type:text"`
	DescriptionBn string     `gorm:"type:text"`
	LocationEn    string     `gorm:"type:varchar(255)"`
	LocationBn    string     `gorm:"type:varchar(255)"`
	StartsAt      time.Time  `gorm:"not null;index"`
	EndsAt        *time.Time `gorm:"index"`
	CategoryID    *string    `gorm:"type:uuid;index"`
	ImageURL      string     `gorm:"type:varchar(1024)"`
	Status        string     `gorm:"not null;index;type:varchar(20)"`
}

// TableName specifies the table name for GORM
func (EventModel) TableName() string {
	return "events"
}

// ToDomain converts GORM model to domain entity
func (m *EventModel) ToDomain() *events.Event {
	return &events.Event{
		ID:            m.ID,
		Slug:          m.Slug,
		TitleEn:       m.TitleEn,
		TitleBn:       m.TitleBn,
		DescriptionEn: m.DescriptionEn,
		DescriptionBn: m.DescriptionBn,
		LocationEn:    m.LocationEn,
		LocationBn:    m.LocationBn,
		StartsAt:      m.StartsAt,
		EndsAt:        m.EndsAt,
		CategoryID:    m.CategoryID,
		ImageURL:      m.ImageURL,
		Status:        m.Status,
		CreatedAt:     m.CreatedAt,
		UpdatedAt:     m.UpdatedAt,
	}
}

// FromDomain converts domain entity to GORM model
func (m *EventModel) FromDomain(e *events.Event) {
	m.ID = e.ID
	m.Slug = e.Slug
	m.TitleEn = e.TitleEn
	m.TitleBn = e.TitleBn
	m.DescriptionEn = e.DescriptionEn
	m.DescriptionBn = e.DescriptionBn
	m.LocationEn = e.LocationEn
	m.LocationBn = e.LocationBn
	m.StartsAt = utc(e.StartsAt)
	m.EndsAt = utcPtr(e.EndsAt)
	m.CategoryID = e.CategoryID
	m.ImageURL = e.ImageURL
	m.Status = e.Status
	m.CreatedAt = e.CreatedAt
	m.UpdatedAt = e.UpdatedAt
}
