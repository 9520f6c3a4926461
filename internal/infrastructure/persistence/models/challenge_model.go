package models

import (
	"time"

	"github.com/sabbir073/Complete-Political-website-sub006/internal/domain/challenges"
)

// ChallengeModel is the GORM database model for challenges
type ChallengeModel struct {
	SoftDeleteBase
	Slug          string    `gorm:"not null;uniqueIndex;type:varchar(200)"`
	TitleEn       string    `gorm:"not null;type:varchar(255)"`
	TitleBn       string    `gorm:"type:varchar(255)"`
	DescriptionEn string    `gorm:"type:text"`
	DescriptionBn string    `gorm:"type:text"`
	ImageURL      string    `gorm:"type:varchar(1024)"`
	StartsAt      time.Time `gorm:"not null"`
	EndsAt        time.Time `gorm:"not null"`
	Status        string    `gorm:"not null;index;type:varchar(20)"`
}

// TableName specifies the table name for GORM
func (ChallengeModel) TableName() string {
	return "challenges"
}

// ToDomain converts GORM model to domain entity
func (m *ChallengeModel) ToDomain() *challenges.Challenge {
	return &challenges.Challenge{
		ID:            m.ID,
		Slug:          m.Slug,
		TitleEn:       m.TitleEn,
		TitleBn:       m.TitleBn,
		DescriptionEn: m.DescriptionEn,
		DescriptionBn: m.DescriptionBn,
		ImageURL:      m.ImageURL,
		StartsAt:      m.StartsAt,
		EndsAt:        m.EndsAt,
		Status:        m.Status,
		CreatedAt:     m.CreatedAt,
		UpdatedAt:     m.UpdatedAt,
	}
}

// FromDomain converts domain entity to GORM model
func (m *ChallengeModel) FromDomain(c *challenges.Challenge) {
	m.ID = c.ID
	m.Slug = c.Slug
	m.TitleEn = c.TitleEn
	m.TitleBn = c.TitleBn
	m.DescriptionEn = c.DescriptionEn
	m.DescriptionBn = c.DescriptionBn
	m.ImageURL = c.ImageURL
	m.StartsAt = utc(c.StartsAt)
	m.EndsAt = utc(c.EndsAt)
	m.Status = c.Status
	m.CreatedAt = c.CreatedAt
	m.UpdatedAt = c.UpdatedAt
}

// ChallengeSubmissionModel is the GORM database model for challenge entries
type ChallengeSubmissionModel struct {
	Base
	ChallengeID string `gorm:"not null;index;type:uuid"`
	Name        string `gorm:"not null;type:varchar(120)"`
	Phone       string `gorm:"not null;type:varchar(20)"`
	MediaURL    string `gorm:"not null;type:varchar(1024)"`
	Description string `gorm:"type:text"`
	Status      string `gorm:"not null;index;type:varchar(20)"`
}

// TableName specifies the table name for GORM
func (ChallengeSubmissionModel) TableName() string {
	return "challenge_submissions"
}

// ToDomain converts GORM model to domain entity
func (m *ChallengeSubmissionModel) ToDomain() *challenges.Submission {
	return &challenges.Submission{
		ID:          m.ID,
		ChallengeID: m.ChallengeID,
		Name:        m.Name,
		Phone:       m.Phone,
		MediaURL:    m.MediaURL,
		Description: m.Description,
		Status:      m.Status,
		CreatedAt:   m.CreatedAt,
		UpdatedAt:   m.UpdatedAt,
	}
}

// FromDomain converts domain entity to GORM model
func (m *ChallengeSubmissionModel) FromDomain(s *challenges.Submission) {
	m.ID = s.ID
	m.ChallengeID = s.ChallengeID
	m.Name = s.Name
	m.Phone = s.Phone
	m.MediaURL = s.MediaURL
	m.Description = s.Description
	m.Status = s.Status
	m.CreatedAt = s.CreatedAt
	m.UpdatedAt = s.UpdatedAt
}
