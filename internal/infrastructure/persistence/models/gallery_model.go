package models

import (
	"time"

	"github.com/sabbir073/Complete-Political-website-sub006/internal/domain/gallery"
)

// AlbumModel is the GORM database model for photo albums
type AlbumModel struct {
	SoftDeleteBase
	Slug       string        `gorm:"not null;uniqueIndex;type:varchar(200)"`
	TitleEn    string        `gorm:"not null;type:varchar(255)"`
	TitleBn    string        `gorm:"type:varchar(255)"`
	CoverImage string        `gorm:"type:varchar(1024)"`
	CategoryID *string       `gorm:"type:uuid;index"`
	Status     string        `gorm:"not null;index;type:varchar(20)"`
	Photos     []*PhotoModel `gorm:"foreignKey:AlbumID;constraint:OnDelete:CASCADE"`
}

// TableName specifies the table name for GORM
func (AlbumModel) TableName() string {
	return "albums"
}

// ToDomain converts GORM model to domain entity
func (m *AlbumModel) ToDomain() *gallery.Album {
	album := &gallery.Album{
		ID:         m.ID,
		Slug:       m.Slug,
		TitleEn:    m.TitleEn,
		TitleBn:    m.TitleBn,
		CoverImage: m.CoverImage,
		CategoryID: m.CategoryID,
		Status:     m.Status,
		CreatedAt:  m.CreatedAt,
		UpdatedAt:  m.UpdatedAt,
	}
	for _, p := range m.Photos {
		album.Photos = append(album.Photos, p.ToDomain())
	}
	return album
}

// FromDomain converts domain entity to GORM model; photos are persisted separately
func (m *AlbumModel) FromDomain(a *gallery.Album) {
	m.ID = a.ID
	m.Slug = a.Slug
	m.TitleEn = a.TitleEn
	m.TitleBn = a.TitleBn
	m.CoverImage = a.CoverImage
	m.CategoryID = a.CategoryID
	m.Status = a.Status
	m.CreatedAt = a.CreatedAt
	m.UpdatedAt = a.UpdatedAt
}

// PhotoModel is the GORM database model for album photos
type PhotoModel struct {
	ID        string    `gorm:"primaryKey;type:uuid"`
	AlbumID   string    `gorm:"not null;index:idx_photos_album_order;type:uuid"`
	ImageURL  string    `gorm:"not null;type:varchar(1024)"`
	CaptionEn string    `gorm:"type:varchar(500)"`
	CaptionBn string    `gorm:"type:varchar(500)"`
	SortOrder int       `gorm:"not null;default:0;index:idx_photos_album_order"`
	CreatedAt time.Time `gorm:"not null"`
}

// TableName specifies the table name for GORM
func (PhotoModel) TableName() string {
	return "photos"
}

// ToDomain converts GORM model to domain entity
func (m *PhotoModel) ToDomain() *gallery.Photo {
	return &gallery.Photo{
		ID:        m.ID,
		AlbumID:   m.AlbumID,
		ImageURL:  m.ImageURL,
		CaptionEn: m.CaptionEn,
		CaptionBn: m.CaptionBn,
		SortOrder: m.SortOrder,
		CreatedAt: m.CreatedAt,
	}
}

// FromDomain converts domain entity to GORM model
func (m *PhotoModel) FromDomain(p *gallery.Photo) {
	m.ID = p.ID
	m.AlbumID = p.AlbumID
	m.ImageURL = p.ImageURL
	m.CaptionEn = p.CaptionEn
	m.CaptionBn = p.CaptionBn
	m.SortOrder = p.SortOrder
	m.CreatedAt = p.CreatedAt
}
