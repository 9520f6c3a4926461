package app

import (
	"bytes"
	"context"
	"encoding/xml"
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/sabbir073/Complete-Political-website-sub006/internal/domain/challenges"
	"github.com/sabbir073/Complete-Political-website-sub006/internal/domain/events"
	"github.com/sabbir073/Complete-Political-website-sub006/internal/domain/gallery"
	"github.com/sabbir073/Complete-Political-website-sub006/internal/domain/news"
	"github.com/sabbir073/Complete-Political-website-sub006/internal/domain/seo"
	"github.com/sabbir073/Complete-Political-website-sub006/internal/domain/store"
	"github.com/sabbir073/Complete-Political-website-sub006/internal/pkg/apperr"
	"github.com/sabbir073/Complete-Political-website-sub006/internal/pkg/config"
	"github.com/sabbir073/Complete-Political-website-sub006/internal/pkg/logger"
	"github.com/sabbir073/Complete-Political-website-sub006/internal/pkg/strutil"
)

// SEOSources are the repositories dynamic pages resolve against
type SEOSources struct {
	News       news.ArticleRepository
	Events     events.EventRepository
	Albums     gallery.AlbumRepository
	Products   store.ProductRepository
	Challenges challenges.ChallengeRepository
	Sitemap    seo.SitemapRepository
}

// page is the language-independent view of a resolved page
type page struct {
	titleEn, titleBn             string
	descriptionEn, descriptionBn string
	image                        string
	kind                         string
	jsonLD                       map[string]any
}

// seoService implements the SEOService interface
type seoService struct {
	site    *config.SiteSettings
	pages   map[string]seo.StaticPage
	order   []seo.StaticPage
	sources SEOSources
	logger  logger.Logger
}

// NewSEOService creates a new instance of SEOService
func NewSEOService(site *config.SiteSettings, pages []seo.StaticPage, sources SEOSources, logger logger.Logger) (seo.SEOService, error) {
	index := make(map[string]seo.StaticPage, len(pages))
	for _, p := range pages {
		if _, dup := index[p.Path]; dup {
			return nil, fmt.Errorf("duplicate static page %s", p.Path)
		}
		index[p.Path] = p
	}
	return &seoService{site: site, pages: index, order: pages, sources: sources, logger: logger}, nil
}

func (s *seoService) absolute(path string) string {
	return strings.TrimRight(s.site.BaseURL, "/") + path
}

func (s *seoService) Metadata(ctx context.Context, query *seo.MetadataQuery) (*seo.Metadata, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}
	lang := query.Lang
	if lang == "" {
		lang = seo.LangEn
	}
	path := "/" + strings.Trim(query.Path, "/")
	if i := strings.IndexAny(path, "?#"); i >= 0 {
		path = path[:i]
	}

	p, err := s.resolve(ctx, path)
	if err != nil {
		return nil, err
	}

	siteName := s.site.NameEn
	title, description := p.titleEn, p.descriptionEn
	locale := "en_US"
	if lang == seo.LangBn {
		siteName = s.site.NameBn
		title = strutil.FirstNonEmpty(p.titleBn, p.titleEn)
		description = strutil.FirstNonEmpty(p.descriptionBn, p.descriptionEn)
		locale = "bn_BD"
	}
	if description == "" {
		description = s.site.DescriptionEn
		if lang == seo.LangBn {
			description = strutil.FirstNonEmpty(s.site.DescriptionBn, s.site.DescriptionEn)
		}
	}
	if path != "/" {
		title = title + " | " + siteName
	} else {
		title = siteName
	}

	canonical := s.absolute(path)
	meta := &seo.Metadata{
		Title:       title,
		Description: truncate(description, 160),
		Canonical:   canonical,
		Image:       strutil.FirstNonEmpty(p.image, s.site.DefaultImage),
		Type:        p.kind,
		Locale:      locale,
		Alternates: map[string]string{
			seo.LangEn: canonical,
			seo.LangBn: canonical + "?lang=bn",
		},
		JSONLD: p.jsonLD,
	}
	if lang == seo.LangBn {
		meta.Canonical = meta.Alternates[seo.LangBn]
	}
	if meta.JSONLD == nil {
		meta.JSONLD = map[string]any{
			"@context": "https://schema.org",
			"@type":    "WebPage",
			"name":     title,
			"url":      meta.Canonical,
		}
	}
	return meta, nil
}

// truncate shortens text to at most n runes
func truncate(text string, n int) string {
	runes := []rune(strings.TrimSpace(text))
	if len(runes) <= n {
		return string(runes)
	}
	return strings.TrimSpace(string(runes[:n-1])) + "…"
}

func (s *seoService) resolve(ctx context.Context, path string) (*page, error) {
	if sp, ok := s.pages[path]; ok {
		return &page{
			titleEn:       sp.TitleEn,
			titleBn:       sp.TitleBn,
			descriptionEn: sp.DescriptionEn,
			descriptionBn: sp.DescriptionBn,
			kind:          "website",
		}, nil
	}

	segments := strings.Split(strings.TrimPrefix(path, "/"), "/")
	if len(segments) != 2 || segments[1] == "" {
		return nil, apperr.NotFound("page", path)
	}
	section, slug := segments[0], segments[1]

	switch section {
	case "news":
		article, err := s.sources.News.GetBySlug(ctx, slug)
		if err != nil {
			return nil, err
		}
		if article.Status != news.StatusPublished {
			return nil, apperr.NotFound("news article", slug)
		}
		ld := map[string]any{
			"@context": "https://schema.org",
			"@type":    "NewsArticle",
			"headline": article.TitleEn,
			"url":      s.absolute(path),
		}
		if article.PublishedAt != nil {
			ld["datePublished"] = article.PublishedAt.UTC().Format(time.RFC3339)
		}
		ld["dateModified"] = article.UpdatedAt.UTC().Format(time.RFC3339)
		if article.FeaturedImage != "" {
			ld["image"] = article.FeaturedImage
		}
		return &page{
			titleEn: article.TitleEn, titleBn: article.TitleBn,
			descriptionEn: article.ExcerptEn, descriptionBn: article.ExcerptBn,
			image: article.FeaturedImage, kind: "article", jsonLD: ld,
		}, nil

	case "events":
		event, err := s.sources.Events.GetBySlug(ctx, slug)
		if err != nil {
			return nil, err
		}
		if event.Status != events.StatusPublished {
			return nil, apperr.NotFound("event", slug)
		}
		ld := map[string]any{
			"@context":  "https://schema.org",
			"@type":     "Event",
			"name":      event.TitleEn,
			"startDate": event.StartsAt.UTC().Format(time.RFC3339),
			"location":  map[string]any{"@type": "Place", "name": event.LocationEn},
			"url":       s.absolute(path),
		}
		if event.EndsAt != nil {
			ld["endDate"] = event.EndsAt.UTC().Format(time.RFC3339)
		}
		return &page{
			titleEn: event.TitleEn, titleBn: event.TitleBn,
			descriptionEn: event.DescriptionEn, descriptionBn: event.DescriptionBn,
			image: event.ImageURL, kind: "article", jsonLD: ld,
		}, nil

	case "gallery":
		album, err := s.sources.Albums.GetBySlug(ctx, slug)
		if err != nil {
			return nil, err
		}
		if album.Status != gallery.StatusPublished {
			return nil, apperr.NotFound("album", slug)
		}
		return &page{
			titleEn: album.TitleEn, titleBn: album.TitleBn,
			image: album.CoverImage, kind: "website",
			jsonLD: map[string]any{
				"@context": "https://schema.org",
				"@type":    "ImageGallery",
				"name":     album.TitleEn,
				"url":      s.absolute(path),
			},
		}, nil

	case "store":
		product, err := s.sources.Products.GetBySlug(ctx, slug)
		if err != nil {
			return nil, err
		}
		if product.Status != store.ProductActive {
			return nil, apperr.NotFound("product", slug)
		}
		var image string
		if len(product.Images) > 0 {
			image = product.Images[0]
		}
		availability := "https://schema.org/InStock"
		if product.Stock == 0 {
			availability = "https://schema.org/OutOfStock"
		}
		return &page{
			titleEn: product.NameEn, titleBn: product.NameBn,
			descriptionEn: product.DescriptionEn, descriptionBn: product.DescriptionBn,
			image: image, kind: "product",
			jsonLD: map[string]any{
				"@context": "https://schema.org",
				"@type":    "Product",
				"name":     product.NameEn,
				"offers": map[string]any{
					"@type":         "Offer",
					"priceCurrency": "BDT",
					"price":         strconv.FormatFloat(float64(product.Price)/100, 'f', 2, 64),
					"availability":  availability,
				},
			},
		}, nil

	case "challenges":
		challenge, err := s.sources.Challenges.GetBySlug(ctx, slug)
		if err != nil {
			return nil, err
		}
		if challenge.Status == challenges.StatusDraft {
			return nil, apperr.NotFound("challenge", slug)
		}
		return &page{
			titleEn: challenge.TitleEn, titleBn: challenge.TitleBn,
			descriptionEn: challenge.DescriptionEn, descriptionBn: challenge.DescriptionBn,
			image: challenge.ImageURL, kind: "website",
		}, nil
	}

	return nil, apperr.NotFound("page", path)
}

type sitemapURL struct {
	Loc        string `xml:"loc"`
	LastMod    string `xml:"lastmod,omitempty"`
	ChangeFreq string `xml:"changefreq,omitempty"`
	Priority   string `xml:"priority,omitempty"`
}

type sitemapURLSet struct {
	XMLName xml.Name     `xml:"urlset"`
	XMLNS   string       `xml:"xmlns,attr"`
	URLs    []sitemapURL `xml:"url"`
}

func (s *seoService) Sitemap(ctx context.Context) ([]byte, error) {
	entries, err := s.sources.Sitemap.ListEntries(ctx)
	if err != nil {
		return nil, err
	}

	set := sitemapURLSet{
		XMLNS: "http://www.sitemaps.org/schemas/sitemap/0.9",
		URLs:  make([]sitemapURL, 0, len(s.order)+len(entries)),
	}
	for _, p := range s.order {
		set.URLs = append(set.URLs, sitemapURL{
			Loc:        s.absolute(p.Path),
			ChangeFreq: p.ChangeFreq,
			Priority:   formatPriority(p.Priority),
		})
	}
	for _, e := range entries {
		u := sitemapURL{
			Loc:        s.absolute(e.Path),
			ChangeFreq: e.ChangeFreq,
			Priority:   formatPriority(e.Priority),
		}
		if !e.LastMod.IsZero() {
			u.LastMod = e.LastMod.UTC().Format(time.DateOnly)
		}
		set.URLs = append(set.URLs, u)
	}

	var buf bytes.Buffer
	buf.WriteString(xml.Header)
	enc := xml.NewEncoder(&buf)
	enc.Indent("", "  ")
	if err := enc.Encode(set); err != nil {
		return nil, fmt.Errorf("failed to encode sitemap: %w", err)
	}
	return buf.Bytes(), nil
}

func formatPriority(p float64) string {
	if p <= 0 {
		return ""
	}
	return strconv.FormatFloat(min(p, 1), 'f', 1, 64)
}
