// Package pagination normalizes page/limit query parameters and builds response metadata.
package pagination

const (
	DefaultPage  = 1
	DefaultLimit = 10
	MaxLimit     = 100
	// MaxPage keeps (page-1)*limit well inside int on 32-bit platforms
	MaxPage = 1_000_000
)

// Params is a normalized page request
type Params struct {
	Page  int
	Limit int
}

// New normalizes page and limit: page defaults to 1 and is capped at MaxPage, limit defaults to 10 and is clamped to 1..100
func New(page, limit int) Params {
	switch {
	case page < 1:
		page = DefaultPage
	case page > MaxPage:
		page = MaxPage
	}
	switch {
	case limit == 0:
		limit = DefaultLimit
	case limit < 1:
		limit = 1
	case limit > MaxLimit:
		limit = MaxLimit
	}
	return Params{Page: page, Limit: limit}
}

// Offset returns the number of rows to skip
func (p Params) Offset() int {
	n := p.Normalized()
	return (n.Page - 1) * n.Limit
}

// Normalized returns p with defaults applied, for params built as struct literals
func (p Params) Normalized() Params {
	return New(p.Page, p.Limit)
}

// Meta is the pagination block of a list response
type Meta struct {
	Page       int   `json:"page"`
	Limit      int   `json:"limit"`
	Total      int64 `json:"total"`
	TotalPages int   `json:"total_pages"`
}

// NewMeta computes the metadata for a page of total rows
func NewMeta(p Params, total int64) Meta {
	p = p.Normalized()
	pages := 0
	if total > 0 {
		pages = int((total + int64(p.Limit) - 1) / int64(p.Limit))
	}
	return Meta{
		Page:       p.Page,
		Limit:      p.Limit,
		Total:      total,
		TotalPages: pages,
	}
}
