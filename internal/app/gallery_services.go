package app

import (
	"context"
	"fmt"

	"github.com/sabbir073/Complete-Political-website-sub006/internal/domain/gallery"
	"github.com/sabbir073/Complete-Political-website-sub006/internal/pkg/apperr"
	"github.com/sabbir073/Complete-Political-website-sub006/internal/pkg/logger"

	"github.com/google/uuid"
)

// albumService implements the AlbumService interface
type albumService struct {
	repo   gallery.AlbumRepository
	logger logger.Logger
}

// NewAlbumService creates a new instance of AlbumService
func NewAlbumService(repo gallery.AlbumRepository, logger logger.Logger) (gallery.AlbumService, error) {
	return &albumService{repo: repo, logger: logger}, nil
}

func (s *albumService) Create(ctx context.Context, album *gallery.Album) (*gallery.Album, error) {
	album.ID = uuid.NewString()
	album.Photos = nil

	slug, err := uniqueSlug(ctx, s.repo.SlugExists, album.Slug, album.TitleEn, "")
	if err != nil {
		return nil, fmt.Errorf("failed to generate slug: %w", err)
	}
	album.Slug = slug

	if err := s.repo.Create(ctx, album); err != nil {
		return nil, err
	}
	return album, nil
}

func (s *albumService) Update(ctx context.Context, album *gallery.Album) (*gallery.Album, error) {
	existing, err := s.repo.GetByID(ctx, album.ID)
	if err != nil {
		return nil, err
	}

	if album.Slug != existing.Slug {
		slug, err := uniqueSlug(ctx, s.repo.SlugExists, album.Slug, album.TitleEn, album.ID)
		if err != nil {
			return nil, fmt.Errorf("failed to generate slug: %w", err)
		}
		album.Slug = slug
	}
	album.CreatedAt = existing.CreatedAt

	if err := s.repo.Update(ctx, album); err != nil {
		return nil, err
	}
	album.Photos = existing.Photos
	return album, nil
}

func (s *albumService) GetByID(ctx context.Context, id string) (*gallery.Album, error) {
	return s.repo.GetByID(ctx, id)
}

func (s *albumService) DeleteByID(ctx context.Context, id string) error {
	return s.repo.DeleteByID(ctx, id)
}

func (s *albumService) List(ctx context.Context, query *gallery.AlbumQuery) ([]*gallery.Album, int64, error) {
	return s.repo.List(ctx, query)
}

func (s *albumService) ListPublished(ctx context.Context, query *gallery.AlbumQuery) ([]*gallery.Album, int64, error) {
	query.Status = gallery.StatusPublished
	return s.repo.List(ctx, query)
}

func (s *albumService) GetPublishedBySlug(ctx context.Context, slug string) (*gallery.Album, error) {
	album, err := s.repo.GetBySlug(ctx, slug)
	if err != nil {
		return nil, err
	}
	if album.Status != gallery.StatusPublished {
		return nil, apperr.NotFound("album", slug)
	}
	return album, nil
}

func (s *albumService) AddPhoto(ctx context.Context, photo *gallery.Photo) (*gallery.Photo, error) {
	if _, err := s.repo.GetByID(ctx, photo.AlbumID); err != nil {
		return nil, err
	}

	next, err := s.repo.NextSortOrder(ctx, photo.AlbumID)
	if err != nil {
		return nil, err
	}
	photo.ID = uuid.NewString()
	photo.SortOrder = next

	if err := s.repo.AddPhoto(ctx, photo); err != nil {
		return nil, err
	}
	return photo, nil
}

func (s *albumService) DeletePhoto(ctx context.Context, albumID, photoID string) error {
	return s.repo.DeletePhoto(ctx, albumID, photoID)
}
