package models

import (
	"time"

	"github.com/sabbir073/Complete-Political-website-sub006/internal/domain/media"
)

// MediaAssetModel is the GORM database model for stored objects (infrastructure concern)
type MediaAssetModel struct {
	ID          string    `gorm:"primaryKey;type:uuid"`
	Key         string    `gorm:"not null;uniqueIndex;type:varchar(512)"`
	URL         string    `gorm:"not null;type:varchar(1024)"`
	Purpose     string    `gorm:"not null;index;type:varchar(40)"`
	FileName    string    `gorm:"not null;type:varchar(255)"`
	ContentType string    `gorm:"not null;type:varchar(120)"`
	Size        int64     `gorm:"not null"`
	UploaderID  *string   `gorm:"type:uuid;index"`
	CreatedAt   time.Time `gorm:"not null;index"`
}

// TableName specifies the table name for GORM
func (MediaAssetModel) TableName() string {
	return "media_assets"
}

// ToDomain converts GORM model to domain entity
func (m *MediaAssetModel) ToDomain() *media.MediaAsset {
	return &media.MediaAsset{
		ID:          m.ID,
		Key:         m.Key,
		URL:         m.URL,
		Purpose:     m.Purpose,
		FileName:    m.FileName,
		ContentType: m.ContentType,
		Size:        m.Size,
		UploaderID:  m.UploaderID,
		CreatedAt:   m.CreatedAt,
	}
}

// FromDomain converts domain entity to GORM model
func (m *MediaAssetModel) FromDomain(a *media.MediaAsset) {
	m.ID = a.ID
	m.Key = a.Key
	m.URL = a.URL
	m.Purpose = a.Purpose
	m.FileName = a.FileName
	m.ContentType = a.ContentType
	m.Size = a.Size
	m.UploaderID = a.UploaderID
	m.CreatedAt = a.CreatedAt
}
