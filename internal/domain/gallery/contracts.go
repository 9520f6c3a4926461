package gallery

import "context"

// AlbumService manages albums and their photos
type AlbumService interface {
	Create(ctx context.Context, album *Album) (*Album, error)
	Update(ctx context.Context, album *Album) (*Album, error)
	GetByID(ctx context.Context, id string) (*Album, error)
	DeleteByID(ctx context.Context, id string) error
	List(ctx context.Context, query *AlbumQuery) ([]*Album, int64, error)
	ListPublished(ctx context.Context, query *AlbumQuery) ([]*Album, int64, error)
	// GetPublishedBySlug returns the album with its photos in sort order.
	GetPublishedBySlug(ctx context.Context, slug string) (*Album, error)
	// AddPhoto appends a photo after the album's last one.
	AddPhoto(ctx context.Context, photo *Photo) (*Photo, error)
	DeletePhoto(ctx context.Context, albumID, photoID string) error
}

// AlbumRepository defines the interface for Album and Photo persistence
type AlbumRepository interface {
	Create(ctx context.Context, album *Album) error
	List(ctx context.Context, query *AlbumQuery) ([]*Album, int64, error)
	GetByID(ctx context.Context, id string) (*Album, error)
	// GetBySlug loads the album with photos ordered by sort_order.
	GetBySlug(ctx context.Context, slug string) (*Album, error)
	Update(ctx context.Context, album *Album) error
	DeleteByID(ctx context.Context, id string) error
	SlugExists(ctx context.Context, slug, excludeID string) (bool, error)
	AddPhoto(ctx context.Context, photo *Photo) error
	// NextSortOrder returns max(sort_order)+1 for the album, or 0 when it is empty.
	NextSortOrder(ctx context.Context, albumID string) (int, error)
	DeletePhoto(ctx context.Context, albumID, photoID string) error
}
