package persistence

import (
	"context"

	"github.com/sabbir073/Complete-Political-website-sub006/internal/domain/achievements"
	"github.com/sabbir073/Complete-Political-website-sub006/internal/infrastructure/persistence/models"
	"github.com/sabbir073/Complete-Political-website-sub006/internal/pkg/logger"

	"gorm.io/gorm"
)

type gormAchievementRepository struct {
	db     *gorm.DB
	logger logger.Logger
}

// NewGormAchievementRepository creates a new GORM-based AchievementRepository implementation
func NewGormAchievementRepository(db *gorm.DB, logger logger.Logger) (achievements.AchievementRepository, error) {
	return &gormAchievementRepository{db: db, logger: logger}, nil
}

func (r *gormAchievementRepository) Create(ctx context.Context, achievement *achievements.Achievement) error {
	if err := achievement.Validate(); err != nil {
		return err
	}

	model := &models.AchievementModel{}
	model.FromDomain(achievement)
	if err := r.db.WithContext(ctx).Create(model).Error; err != nil {
		return wrapError(err, "create", "achievement")
	}
	achievement.CreatedAt, achievement.UpdatedAt = model.CreatedAt, model.UpdatedAt

	r.logger.Info("achievement created", "id", achievement.ID, "status", achievement.Status)
	return nil
}

func (r *gormAchievementRepository) List(ctx context.Context, query *achievements.AchievementQuery) ([]*achievements.Achievement, int64, error) {
	if err := query.Validate(); err != nil {
		return nil, 0, err
	}

	dbQuery := r.db.WithContext(ctx).Model(&models.AchievementModel{})
	if query.Status != "" {
		dbQuery = dbQuery.Where("status = ?", query.Status)
	}
	if query.CategoryID != "" {
		dbQuery = dbQuery.Where("category_id = ?", query.CategoryID)
	}
	if query.Featured != nil {
		dbQuery = dbQuery.Where("is_featured = ?", *query.Featured)
	}

	rows, total, err := findPage[models.AchievementModel](dbQuery.Session(&gorm.Session{}), query.Params, "achieved_at DESC, created_at DESC")
	if err != nil {
		return nil, 0, wrapError(err, "list", "achievements")
	}

	result := make([]*achievements.Achievement, len(rows))
	for i, row := range rows {
		result[i] = row.ToDomain()
	}
	return result, total, nil
}

func (r *gormAchievementRepository) GetByID(ctx context.Context, id string) (*achievements.Achievement, error) {
	model, err := getOne[models.AchievementModel](ctx, r.db, "achievement", "id", id)
	if err != nil {
		return nil, err
	}
	return model.ToDomain(), nil
}

func (r *gormAchievementRepository) Update(ctx context.Context, achievement *achievements.Achievement) error {
	if err := achievement.Validate(); err != nil {
		return err
	}

	model := &models.AchievementModel{}
	model.FromDomain(achievement)
	if err := r.db.WithContext(ctx).Save(model).Error; err != nil {
		return wrapError(err, "update", "achievement")
	}
	achievement.UpdatedAt = model.UpdatedAt

	r.logger.Info("achievement updated", "id", achievement.ID, "status", achievement.Status)
	return nil
}

func (r *gormAchievementRepository) DeleteByID(ctx context.Context, id string) error {
	if err := deleteByID[models.AchievementModel](ctx, r.db, "achievement", id); err != nil {
		return err
	}
	r.logger.Info("achievement deleted", "id", id)
	return nil
}
