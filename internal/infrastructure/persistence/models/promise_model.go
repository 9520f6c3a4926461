package models

import (
	"time"

	"github.com/sabbir073/Complete-Political-website-sub006/internal/domain/achievements"
	"github.com/sabbir073/Complete-Political-website-sub006/internal/domain/promises"
)

// PromiseModel is the GORM database model for election promises
type PromiseModel struct {
	SoftDeleteBase
	TitleEn       string     `gorm:"not null;type:varchar(255)"`
	TitleBn       string     `gorm:"type:varchar(255)"`
	DescriptionEn string     `gorm:"type:text"`
	DescriptionBn string     `gorm:"type:text"`
	CategoryID    *string    `gorm:"type:uuid;index"`
	Progress      int        `gorm:"not null;default:0"`
	TargetDate    *time.Time `gorm:"index"`
	Status        string     `gorm:"not null;index;type:varchar(20)"`
}

// TableName specifies the table name for GORM
func (PromiseModel) TableName() string {
	return "promises"
}

// ToDomain converts GORM model to domain entity
func (m *PromiseModel) ToDomain() *promises.Promise {
	return &promises.Promise{
		ID:            m.ID,
		TitleEn:       m.TitleEn,
		TitleBn:       m.TitleBn,
		DescriptionEn: m.DescriptionEn,
		DescriptionBn: m.DescriptionBn,
		CategoryID:    m.CategoryID,
		Progress:      m.Progress,
		TargetDate:    m.TargetDate,
		Status:        m.Status,
		CreatedAt:     m.CreatedAt,
		UpdatedAt:     m.UpdatedAt,
	}
}

// FromDomain converts domain entity to GORM model
func (m *PromiseModel) FromDomain(p *promises.Promise) {
	m.ID = p.ID
	m.TitleEn = p.TitleEn
	m.TitleBn = p.TitleBn
	m.DescriptionEn = p.DescriptionEn
	m.DescriptionBn = p.DescriptionBn
	m.CategoryID = p.CategoryID
	m.Progress = p.Progress
	m.TargetDate = utcPtr(p.TargetDate)
	m.Status = p.Status
	m.CreatedAt = p.CreatedAt
	m.UpdatedAt = p.UpdatedAt
}

// AchievementModel is the GORM database model for achievements
type AchievementModel struct {
	SoftDeleteBase
	TitleEn       string     `gorm:"not null;type:varchar(255)"`
	TitleBn       string     `gorm:"type:varchar(255)"`
	DescriptionEn string     `gorm:"type:text"`
	DescriptionBn string     `gorm:"type:text"`
	CategoryID    *string    `gorm:"type:uuid;index"`
	ImageURL      string     `gorm:"type:varchar(1024)"`
	AchievedAt    *time.Time `gorm:"index"`
	IsFeatured    bool       `gorm:"not null;default:false"`
	Status        string     `gorm:"not null;index;type:varchar(20)"`
}

// TableName specifies the table name for GORM
func (AchievementModel) TableName() string {
	return "achievements"
}

// ToDomain converts GORM model to domain entity
func (m *AchievementModel) ToDomain() *achievements.Achievement {
	return &achievements.Achievement{
		ID:            m.ID,
		TitleEn:       m.TitleEn,
		TitleBn:       m.TitleBn,
		DescriptionEn: m.DescriptionEn,
		DescriptionBn: m.DescriptionBn,
		CategoryID:    m.CategoryID,
		ImageURL:      m.ImageURL,
		AchievedAt:    m.AchievedAt,
		IsFeatured:    m.IsFeatured,
		Status:        m.Status,
		CreatedAt:     m.CreatedAt,
		UpdatedAt:     m.UpdatedAt,
	}
}

// FromDomain converts domain entity to GORM model
func (m *AchievementModel) FromDomain(a *achievements.Achievement) {
	m.ID = a.ID
	m.TitleEn = a.TitleEn
	m.TitleBn = a.TitleBn
	m.DescriptionEn = a.DescriptionEn
	m.DescriptionBn = a.DescriptionBn
	m.CategoryID = a.CategoryID
	m.ImageURL = a.ImageURL
	m.AchievedAt = utcPtr(a.AchievedAt)
	m.IsFeatured = a.IsFeatured
	m.Status = a.Status
	m.CreatedAt = a.CreatedAt
	m.UpdatedAt = a.UpdatedAt
}
