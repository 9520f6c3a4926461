package seo

import "context"

// SEOService builds page metadata and the sitemap
type SEOService interface {
	// Metadata resolves static pages from the page table and dynamic pages from their entity.
	// An unknown page or entity is apperr.ErrNotFound.
	Metadata(ctx context.Context, query *MetadataQuery) (*Metadata, error)
	// Sitemap renders the sitemap XML document.
	Sitemap(ctx context.Context) ([]byte, error)
}

// SitemapRepository lists public content for the sitemap
type SitemapRepository interface {
	// ListEntries returns published news, events and albums plus active products and challenges.
	ListEntries(ctx context.Context) ([]SitemapEntry, error)
}
