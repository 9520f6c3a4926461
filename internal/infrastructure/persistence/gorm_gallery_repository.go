package persistence

import (
	"context"
	"errors"

	"github.com/sabbir073/Complete-Political-website-sub006/internal/domain/gallery"
	"github.com/sabbir073/Complete-Political-website-sub006/internal/infrastructure/persistence/models"
	"github.com/sabbir073/Complete-Political-website-sub006/internal/pkg/apperr"
	"github.com/sabbir073/Complete-Political-website-sub006/internal/pkg/logger"

	"gorm.io/gorm"
)

type gormAlbumRepository struct {
	db     *gorm.DB
	logger logger.Logger
}

// NewGormAlbumRepository creates a new GORM-based AlbumRepository implementation
func NewGormAlbumRepository(db *gorm.DB, logger logger.Logger) (gallery.AlbumRepository, error) {
	return &gormAlbumRepository{db: db, logger: logger}, nil
}

func orderedPhotos(db *gorm.DB) *gorm.DB {
	return db.Order("sort_order ASC, created_at ASC")
}

func (r *gormAlbumRepository) Create(ctx context.Context, album *gallery.Album) error {
	if err := album.Validate(); err != nil {
		return err
	}

	model := &models.AlbumModel{}
	model.FromDomain(album)
	if err := r.db.WithContext(ctx).Omit("Photos").Create(model).Error; err != nil {
		return wrapError(err, "create", "album")
	}
	album.CreatedAt, album.UpdatedAt = model.CreatedAt, model.UpdatedAt

	r.logger.Info("album created", "id", album.ID, "slug", album.Slug)
	return nil
}

func (r *gormAlbumRepository) List(ctx context.Context, query *gallery.AlbumQuery) ([]*gallery.Album, int64, error) {
	if err := query.Validate(); err != nil {
		return nil, 0, err
	}

	dbQuery := r.db.WithContext(ctx).Model(&models.AlbumModel{})
	if query.Status != "" {
		dbQuery = dbQuery.Where("status = ?", query.Status)
	}

	rows, total, err := findPage[models.AlbumModel](dbQuery.Session(&gorm.Session{}), query.Params, "created_at DESC")
	if err != nil {
		return nil, 0, wrapError(err, "list", "albums")
	}

	albums := make([]*gallery.Album, len(rows))
	for i, row := range rows {
		albums[i] = row.ToDomain()
	}
	return albums, total, nil
}

func (r *gormAlbumRepository) getWithPhotos(ctx context.Context, column, value string) (*gallery.Album, error) {
	var model models.AlbumModel
	err := r.db.WithContext(ctx).
		Preload("Photos", orderedPhotos).
		Where(column+" = ?", value).
		First(&model).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperr.NotFound("album", value)
		}
		return nil, wrapError(err, "fetch", "album")
	}
	return model.ToDomain(), nil
}

func (r *gormAlbumRepository) GetByID(ctx context.Context, id string) (*gallery.Album, error) {
	return r.getWithPhotos(ctx, "id", id)
}

func (r *gormAlbumRepository) GetBySlug(ctx context.Context, slug string) (*gallery.Album, error) {
	return r.getWithPhotos(ctx, "slug", slug)
}

func (r *gormAlbumRepository) Update(ctx context.Context, album *gallery.Album) error {
	if err := album.Validate(); err != nil {
		return err
	}

	model := &models.AlbumModel{}
	model.FromDomain(album)
	if err := r.db.WithContext(ctx).Omit("Photos").Save(model).Error; err != nil {
		return wrapError(err, "update", "album")
	}
	album.UpdatedAt = model.UpdatedAt

	r.logger.Info("album updated", "id", album.ID)
	return nil
}

func (r *gormAlbumRepository) DeleteByID(ctx context.Context, id string) error {
	if err := deleteByID[models.AlbumModel](ctx, r.db, "album", id); err != nil {
		return err
	}
	r.logger.Info("album deleted", "id", id)
	return nil
}

func (r *gormAlbumRepository) SlugExists(ctx context.Context, slug, excludeID string) (bool, error) {
	return slugExists[models.AlbumModel](ctx, r.db, slug, excludeID)
}

func (r *gormAlbumRepository) AddPhoto(ctx context.Context, photo *gallery.Photo) error {
	if err := photo.Validate(); err != nil {
		return err
	}

	model := &models.PhotoModel{}
	model.FromDomain(photo)
	if err := r.db.WithContext(ctx).Create(model).Error; err != nil {
		return wrapError(err, "create", "photo")
	}
	photo.CreatedAt = model.CreatedAt

	r.logger.Info("photo added", "album_id", photo.AlbumID, "id", photo.ID, "sort_order", photo.SortOrder)
	return nil
}

func (r *gormAlbumRepository) NextSortOrder(ctx context.Context, albumID string) (int, error) {
	var next int
	err := r.db.WithContext(ctx).Model(&models.PhotoModel{}).
		Where("album_id = ?", albumID).
		Select("COALESCE(MAX(sort_order) + 1, 0)").
		Scan(&next).Error
	if err != nil {
		return 0, wrapError(err, "compute sort order for", "photo")
	}
	return next, nil
}

func (r *gormAlbumRepository) DeletePhoto(ctx context.Context, albumID, photoID string) error {
	result := r.db.WithContext(ctx).
		Where("id = ? AND album_id = ?", photoID, albumID).
		Delete(&models.PhotoModel{})
	if result.Error != nil {
		return wrapError(result.Error, "delete", "photo")
	}
	if result.RowsAffected == 0 {
		return apperr.NotFound("photo", photoID)
	}

	r.logger.Info("photo deleted", "album_id", albumID, "id", photoID)
	return nil
}
