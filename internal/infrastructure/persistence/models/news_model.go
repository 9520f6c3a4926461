package models

import (
	"time"

	"github.com/sabbir073/Complete-Political-website-sub006/internal/domain/news"
)

// NewsArticleModel is the GORM database model for news articles
type NewsArticleModel struct {
	SoftDeleteBase
	Slug          string     `gorm:"not null;uniqueIndex;type:varchar(200)"`
	TitleEn       string     `gorm:"not null;type:varchar(255)"`
	TitleBn       string     `gorm:"type:varchar(255)"`
	ExcerptEn     string     `gorm:"type:varchar(500)"`
	ExcerptBn     string     `gorm:"type:varchar(500)"`
	ContentEn     string     `gorm:"type:text"`
	ContentBn     string     `gorm:"type:text"`
	CategoryID    *string    `gorm:"type:uuid;index"`
	FeaturedImage string     `gorm:"type:varchar(1024)"`
	IsFeatured    bool       `gorm:"not null;default:false;index"`
	ViewCount     int64      `gorm:"not null;default:0"`
	Status        string     `gorm:"not null;index;type:varchar(20)"`
	PublishedAt   *time.Time `gorm:"index"`
	AuthorID      *string    `gorm:"type:uuid;index"`
}

// TableName specifies the table name for GORM
func (NewsArticleModel) TableName() string {
	return "news_articles"
}

// ToDomain converts GORM model to domain entity
func (m *NewsArticleModel) ToDomain() *news.Article {
	return &news.Article{
		ID:            m.ID,
		Slug:          m.Slug,
		TitleEn:       m.TitleEn,
		TitleBn:       m.TitleBn,
		ExcerptEn:     m.ExcerptEn,
		ExcerptBn:     m.ExcerptBn,
		ContentEn:     m.ContentEn,
		ContentBn:     m.ContentBn,
		CategoryID:    m.CategoryID,
		FeaturedImage: m.FeaturedImage,
		IsFeatured:    m.IsFeatured,
		ViewCount:     m.ViewCount,
		Status:        m.Status,
		PublishedAt:   m.PublishedAt,
		AuthorID:      m.AuthorID,
		CreatedAt:     m.CreatedAt,
		UpdatedAt:     m.UpdatedAt,
	}
}

// FromDomain converts domain entity to GORM model
func (m *NewsArticleModel) FromDomain(a *news.Article) {
	m.ID = a.ID
	m.Slug = a.Slug
	m.TitleEn = a.TitleEn
	m.TitleBn = a.TitleBn
	m.ExcerptEn = a.ExcerptEn
	m.ExcerptBn = a.ExcerptBn
	m.ContentEn = a.ContentEn
	m.ContentBn = a.ContentBn
	m.CategoryID = a.CategoryID
	m.FeaturedImage = a.FeaturedImage
	m.IsFeatured = a.IsFeatured
	m.ViewCount = a.ViewCount
	m.Status = a.Status
	m.PublishedAt = utcPtr(a.PublishedAt)
	m.AuthorID = a.AuthorID
	m.CreatedAt = a.CreatedAt
	m.UpdatedAt = a.UpdatedAt
}
