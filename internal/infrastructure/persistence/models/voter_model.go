package models

import (
	"time"

	"github.com/sabbir073/Complete-Political-website-sub006/internal/domain/voters"
)

// VoterModel is the GORM database model for the electoral roll
type VoterModel struct {
	Base
	VoterNumber   string     `gorm:"not null;uniqueIndex;type:varchar(20)"`
	NameEn        string     `gorm:"index;type:varchar(120)"`
	NameBn        string     `gorm:"index;type:varchar(120)"`
	FatherName    string     `gorm:"type:varchar(120)"`
	MotherName    string     `gorm:"type:varchar(120)"`
	DateOfBirth   *time.Time `gorm:"type:date"`
	Gender        string     `gorm:"type:varchar(10)"`
	Ward          string     `gorm:"index;type:varchar(20)"`
	Union         string     `gorm:"column:union_name;type:varchar(120)"`
	PollingCenter string     `gorm:"type:varchar(255)"`
	Address       string     `gorm:"type:varchar(500)"`
}

// TableName specifies the table name for GORM
func (VoterModel) TableName() string {
	return "voters"
}

// ToDomain converts GORM model to domain entity
func (m *VoterModel) ToDomain() *voters.Voter {
	return &voters.Voter{
		ID:            m.ID,
		VoterNumber:   m.VoterNumber,
		NameEn:        m.NameEn,
		NameBn:        m.NameBn,
		FatherName:    m.FatherName,
		MotherName:    m.MotherName,
		DateOfBirth:   m.DateOfBirth,
		Gender:        m.Gender,
		Ward:          m.Ward,
		Union:         m.Union,
		PollingCenter: m.PollingCenter,
		Address:       m.Address,
		CreatedAt:     m.CreatedAt,
		UpdatedAt:     m.UpdatedAt,
	}
}

// FromDomain converts domain entity to GORM model
func (m *VoterModel) FromDomain(v *voters.Voter) {
	m.ID = v.ID
	m.VoterNumber = v.VoterNumber
	m.NameEn = v.NameEn
	m.NameBn = v.NameBn
	m.FatherName = v.FatherName
	m.MotherName = v.MotherName
	m.DateOfBirth = v.DateOfBirth
	m.Gender = v.Gender
	m.Ward = v.Ward
	m.Union = v.Union
	m.PollingCenter = v.PollingCenter
	m.Address = v.Address
	m.CreatedAt = v.CreatedAt
	m.UpdatedAt = v.UpdatedAt
}
