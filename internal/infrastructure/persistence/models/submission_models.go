package models

import (
	"time"

	"github.com/sabbir073/Complete-Political-website-sub006/internal/domain/ama"
	"github.com/sabbir073/Complete-Political-website-sub006/internal/domain/complaints"
	"github.com/sabbir073/Complete-Political-website-sub006/internal/domain/contact"
	"github.com/sabbir073/Complete-Political-website-sub006/internal/domain/emergency"
	"github.com/sabbir073/Complete-Political-website-sub006/internal/domain/testimonials"
	"github.com/sabbir073/Complete-Political-website-sub006/internal/domain/volunteers"
)

// TestimonialModel is the GORM database model for testimonials
type TestimonialModel struct {
	SoftDeleteBase
	Name        string `gorm:"not null;type:varchar(120)"`
	Designation string `gorm:"type:varchar(120)"`
	Content     string `gorm:"not null;type:text"`
	PhotoURL    string `gorm:"type:varchar(1024)"`
	VideoURL    string `gorm:"type:varchar(1024)"`
	Rating      int    `gorm:"not null"`
	Status      string `gorm:"not null;index;type:varchar(20)"`
}

// TableName specifies the table name for GORM
func (TestimonialModel) TableName() string {
	return "testimonials"
}

// ToDomain converts GORM model to domain entity
func (m *TestimonialModel) ToDomain() *testimonials.Testimonial {
	return &testimonials.Testimonial{
		ID:          m.ID,
		Name:        m.Name,
		Designation: m.Designation,
		Content:     m.Content,
		PhotoURL:    m.PhotoURL,
		VideoURL:    m.VideoURL,
		Rating:      m.Rating,
		Status:      m.Status,
		CreatedAt:   m.CreatedAt,
		UpdatedAt:   m.UpdatedAt,
	}
}

// FromDomain converts domain entity to GORM model
func (m *TestimonialModel) FromDomain(t *testimonials.Testimonial) {
	m.ID = t.ID
	m.Name = t.Name
	m.Designation = t.Designation
	m.Content = t.Content
	m.PhotoURL = t.PhotoURL
	m.VideoURL = t.VideoURL
	m.Rating = t.Rating
	m.Status = t.Status
	m.CreatedAt = t.CreatedAt
	m.UpdatedAt = t.UpdatedAt
}

// QuestionModel is the GORM database model for AMA questions
type QuestionModel struct {
	Base
	Name       string     `gorm:"not null;type:varchar(120)"`
	Email      string     `gorm:"type:varchar(255)"`
	Phone      string     `gorm:"type:varchar(20)"`
	Question   string     `gorm:"not null;type:text"`
	AnswerEn   string     `gorm:"type:text"`
	AnswerBn   string     `gorm:"type:text"`
	Status     string     `gorm:"not null;index;type:varchar(20)"`
	AnsweredAt *time.Time `gorm:"index"`
	AnsweredBy *string    `gorm:"type:uuid"`
}

// TableName specifies the table name for GORM
func (QuestionModel) TableName() string {
	return "ama_questions"
}

// ToDomain converts GORM model to domain entity
func (m *QuestionModel) ToDomain() *ama.Question {
	return &ama.Question{
		ID:         m.ID,
		Name:       m.Name,
		Email:      m.Email,
		Phone:      m.Phone,
		Question:   m.Question,
		AnswerEn:   m.AnswerEn,
		AnswerBn:   m.AnswerBn,
		Status:     m.Status,
		AnsweredAt: m.AnsweredAt,
		AnsweredBy: m.AnsweredBy,
		CreatedAt:  m.CreatedAt,
		UpdatedAt:  m.UpdatedAt,
	}
}

// FromDomain converts domain entity to GORM model
func (m *QuestionModel) FromDomain(q *ama.Question) {
	m.ID = q.ID
	m.Name = q.Name
	m.Email = q.Email
	m.Phone = q.Phone
	m.Question = q.Question
	m.AnswerEn = q.AnswerEn
	m.AnswerBn = q.AnswerBn
	m.Status = q.Status
	m.AnsweredAt = utcPtr(q.AnsweredAt)
	m.AnsweredBy = q.AnsweredBy
	m.CreatedAt = q.CreatedAt
	m.UpdatedAt = q.UpdatedAt
}

// ComplaintModel is the GORM database model for complaints
type ComplaintModel struct {
	Base
	TrackingID    string `gorm:"not null;uniqueIndex;type:varchar(32)"`
	Name          string `gorm:"not null;type:varchar(120)"`
	Phone         string `gorm:"not null;type:varchar(20)"`
	Email         string `gorm:"type:varchar(255)"`
	Area          string `gorm:"type:varchar(120)"`
	Category      string `gorm:"not null;index;type:varchar(60)"`
	Subject       string `gorm:"not null;type:varchar(255)"`
	Description   string `gorm:"not null;type:text"`
	AttachmentURL string `gorm:"type:varchar(1024)"`
	Status        string `gorm:"not null;index;type:varchar(20)"`
	AdminNote     string `gorm:"type:text"`
}

// TableName specifies the table name for GORM
func (ComplaintModel) TableName() string {
	return "complaints"
}

// ToDomain converts GORM model to domain entity
func (m *ComplaintModel) ToDomain() *complaints.Complaint {
	return &complaints.Complaint{
		ID:            m.ID,
		TrackingID:    m.TrackingID,
		Name:          m.Name,
		Phone:         m.Phone,
		Email:         m.Email,
		Area:          m.Area,
		Category:      m.Category,
		Subject:       m.Subject,
		Description:   m.Description,
		AttachmentURL: m.AttachmentURL,
		Status:        m.Status,
		AdminNote:     m.AdminNote,
		CreatedAt:     m.CreatedAt,
		UpdatedAt:     m.UpdatedAt,
	}
}

// FromDomain converts domain entity to GORM model
func (m *ComplaintModel) FromDomain(c *complaints.Complaint) {
	m.ID = c.ID
	m.TrackingID = c.TrackingID
	m.Name = c.Name
	m.Phone = c.Phone
	m.Email = c.Email
	m.Area = c.Area
	m.Category = c.Category
	m.Subject = c.Subject
	m.Description = c.Description
	m.AttachmentURL = c.AttachmentURL
	m.Status = c.Status
	m.AdminNote = c.AdminNote
	m.CreatedAt = c.CreatedAt
	m.UpdatedAt = c.UpdatedAt
}

// ContactMessageModel is the GORM database model for contact messages
type ContactMessageModel struct {
	Base
	Name    string `gorm:"not null;type:varchar(120)"`
	Email   string `gorm:"not null;type:varchar(255)"`
	Phone   string `gorm:"type:varchar(20)"`
	Subject string `gorm:"not null;type:varchar(255)"`
	Message string `gorm:"not null;type:text"`
	Status  string `gorm:"not null;index;type:varchar(20)"`
}

// TableName specifies the table name for GORM
func (ContactMessageModel) TableName() string {
	return "contact_messages"
}

// ToDomain converts GORM model to domain entity
func (m *ContactMessageModel) ToDomain() *contact.Message {
	return &contact.Message{
		ID:        m.ID,
		Name:      m.Name,
		Email:     m.Email,
		Phone:     m.Phone,
		Subject:   m.Subject,
		Message:   m.Message,
		Status:    m.Status,
		CreatedAt: m.CreatedAt,
		UpdatedAt: m.UpdatedAt,
	}
}

// FromDomain converts domain entity to GORM model
func (m *ContactMessageModel) FromDomain(c *contact.Message) {
	m.ID = c.ID
	m.Name = c.Name
	m.Email = c.Email
	m.Phone = c.Phone
	m.Subject = c.Subject
	m.Message = c.Message
	m.Status = c.Status
	m.CreatedAt = c.CreatedAt
	m.UpdatedAt = c.UpdatedAt
}

// SOSAlertModel is the GORM database model for emergency alerts
type SOSAlertModel struct {
	Base
	Name      string   `gorm:"type:varchar(120)"`
	Phone     string   `gorm:"not null;type:varchar(20)"`
	Latitude  *float64 `gorm:"type:double precision"`
	Longitude *float64 `gorm:"type:double precision"`
	Message   string   `gorm:"type:text"`
	AudioURL  string   `gorm:"type:varchar(1024)"`
	Status    string   `gorm:"not null;index;type:varchar(20)"`
	AdminNote string   `gorm:"type:text"`
}

// TableName specifies the table name for GORM
func (SOSAlertModel) TableName() string {
	return "sos_alerts"
}

// ToDomain converts GORM model to domain entity
func (m *SOSAlertModel) ToDomain() *emergency.Alert {
	return &emergency.Alert{
		ID:        m.ID,
		Name:      m.Name,
		Phone:     m.Phone,
		Latitude:  m.Latitude,
		Longitude: m.Longitude,
		Message:   m.Message,
		AudioURL:  m.AudioURL,
		Status:    m.Status,
		AdminNote: m.AdminNote,
		CreatedAt: m.CreatedAt,
		UpdatedAt: m.UpdatedAt,
	}
}

// FromDomain converts domain entity to GORM model
func (m *SOSAlertModel) FromDomain(a *emergency.Alert) {
	m.ID = a.ID
	m.Name = a.Name
	m.Phone = a.Phone
	m.Latitude = a.Latitude
	m.Longitude = a.Longitude
	m.Message = a.Message
	m.AudioURL = a.AudioURL
	m.Status = a.Status
	m.AdminNote = a.AdminNote
	m.CreatedAt = a.CreatedAt
	m.UpdatedAt = a.UpdatedAt
}

// VolunteerModel is the GORM database model for volunteers
type VolunteerModel struct {
	Base
	Name     string `gorm:"not null;type:varchar(120)"`
	Phone    string `gorm:"not null;uniqueIndex;type:varchar(20)"`
	Email    string `gorm:"type:varchar(255)"`
	Area     string `gorm:"not null;index;type:varchar(120)"`
	Skills   string `gorm:"type:text"`
	PhotoURL string `gorm:"type:varchar(1024)"`
	Status   string `gorm:"not null;index;type:varchar(20)"`
}

// TableName specifies the table name for GORM
func (VolunteerModel) TableName() string {
	return "volunteers"
}

// ToDomain converts GORM model to domain entity
func (m *VolunteerModel) ToDomain() *volunteers.Volunteer {
	return &volunteers.Volunteer{
		ID:        m.ID,
		Name:      m.Name,
		Phone:     m.Phone,
		Email:     m.Email,
		Area:      m.Area,
		Skills:    m.Skills,
		PhotoURL:  m.PhotoURL,
		Status:    m.Status,
		CreatedAt: m.CreatedAt,
		UpdatedAt: m.UpdatedAt,
	}
}

// FromDomain converts domain entity to GORM model
func (m *VolunteerModel) FromDomain(v *volunteers.Volunteer) {
	m.ID = v.ID
	m.Name = v.Name
	m.Phone = v.Phone
	m.Email = v.Email
	m.Area = v.Area
	m.Skills = v.Skills
	m.PhotoURL = v.PhotoURL
	m.Status = v.Status
	m.CreatedAt = v.CreatedAt
	m.UpdatedAt = v.UpdatedAt
}
