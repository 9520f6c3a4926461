package persistence

import (
	"context"

	"github.com/sabbir073/Complete-Political-website-sub006/internal/domain/media"
	"github.com/sabbir073/Complete-Political-website-sub006/internal/infrastructure/persistence/models"
	"github.com/sabbir073/Complete-Political-website-sub006/internal/pkg/logger"

	"gorm.io/gorm"
)

type gormMediaRepository struct {
	db     *gorm.DB
	logger logger.Logger
}

// NewGormMediaRepository creates a new GORM-based MediaRepository implementation
func NewGormMediaRepository(db *gorm.DB, logger logger.Logger) (media.MediaRepository, error) {
	return &gormMediaRepository{
		db:     db,
		logger: logger,
	}, nil
}

func (r *gormMediaRepository) Create(ctx context.Context, asset *media.MediaAsset) error {
	// Validate domain entity (business rules)
	if err := asset.Validate(); err != nil {
		return err
	}

	model := &models.MediaAssetModel{}
	model.FromDomain(asset)

	if err := r.db.WithContext(ctx).Create(model).Error; err != nil {
		return wrapError(err, "create", "media asset")
	}
	asset.CreatedAt = model.CreatedAt

	r.logger.Info("media asset created", "id", asset.ID, "key", asset.Key, "purpose", asset.Purpose)
	return nil
}

func (r *gormMediaRepository) List(ctx context.Context, query *media.MediaQuery) ([]*media.MediaAsset, int64, error) {
	if err := query.Validate(); err != nil {
		return nil, 0, err
	}

	dbQuery := r.db.WithContext(ctx).Model(&models.MediaAssetModel{})

	// Apply filters
	if query.Purpose != "" {
		dbQuery = dbQuery.Where("purpose = ?", query.Purpose)
	}
	if query.ContentType != "" {
		dbQuery = dbQuery.Where("content_type LIKE ?", query.ContentType+"%")
	}

	rows, total, err := findPage[models.MediaAssetModel](dbQuery.Session(&gorm.Session{}), query.Params, "created_at DESC")
	if err != nil {
		return nil, 0, wrapError(err, "list", "media assets")
	}

	assets := make([]*media.MediaAsset, len(rows))
	for i, row := range rows {
		assets[i] = row.ToDomain()
	}
	return assets, total, nil
}

func (r *gormMediaRepository) GetByID(ctx context.Context, id string) (*media.MediaAsset, error) {
	model, err := getOne[models.MediaAssetModel](ctx, r.db, "media asset", "id", id)
	if err != nil {
		return nil, err
	}
	return model.ToDomain(), nil
}

func (r *gormMediaRepository) DeleteByID(ctx context.Context, id string) error {
	if err := deleteByID[models.MediaAssetModel](ctx, r.db, "media asset", id); err != nil {
		return err
	}

	r.logger.Info("media asset deleted", "id", id)
	return nil
}
