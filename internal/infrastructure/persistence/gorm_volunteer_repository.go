package persistence

import (
	"context"

	"github.com/sabbir073/Complete-Political-website-sub006/internal/domain/volunteers"
	"github.com/sabbir073/Complete-Political-website-sub006/internal/infrastructure/persistence/models"
	"github.com/sabbir073/Complete-Political-website-sub006/internal/pkg/logger"

	"gorm.io/gorm"
)

type gormVolunteerRepository struct {
	db     *gorm.DB
	logger logger.Logger
}

// NewGormVolunteerRepository creates a new GORM-based VolunteerRepository implementation
func NewGormVolunteerRepository(db *gorm.DB, logger logger.Logger) (volunteers.VolunteerRepository, error) {
	return &gormVolunteerRepository{db: db, logger: logger}, nil
}

func (r *gormVolunteerRepository) Create(ctx context.Context, volunteer *volunteers.Volunteer) error {
	if err := volunteer.Validate(); err != nil {
		return err
	}

	model := &models.VolunteerModel{}
	model.FromDomain(volunteer)
	if err := r.db.WithContext(ctx).Create(model).Error; err != nil {
		return wrapError(err, "create", "volunteer")
	}
	volunteer.CreatedAt, volunteer.UpdatedAt = model.CreatedAt, model.UpdatedAt

	r.logger.Info("volunteer created", "id", volunteer.ID, "status", volunteer.Status)
	return nil
}

func (r *gormVolunteerRepository) List(ctx context.Context, query *volunteers.VolunteerQuery) ([]*volunteers.Volunteer, int64, error) {
	if err := query.Validate(); err != nil {
		return nil, 0, err
	}

	dbQuery := r.db.WithContext(ctx).Model(&models.VolunteerModel{})
	if query.Status != "" {
		dbQuery = dbQuery.Where("status = ?", query.Status)
	}
	if query.Area != "" {
		dbQuery = whereLike(dbQuery, query.Area, "area")
	}

	rows, total, err := findPage[models.VolunteerModel](dbQuery.Session(&gorm.Session{}), query.Params, "created_at DESC")
	if err != nil {
		return nil, 0, wrapError(err, "list", "volunteers")
	}

	result := make([]*volunteers.Volunteer, len(rows))
	for i, row := range rows {
		result[i] = row.ToDomain()
	}
	return result, total, nil
}

func (r *gormVolunteerRepository) GetByID(ctx context.Context, id string) (*volunteers.Volunteer, error) {
	model, err := getOne[models.VolunteerModel](ctx, r.db, "volunteer", "id", id)
	if err != nil {
		return nil, err
	}
	return model.ToDomain(), nil
}

func (r *gormVolunteerRepository) Update(ctx context.Context, volunteer *volunteers.Volunteer) error {
	if err := volunteer.Validate(); err != nil {
		return err
	}

	model := &models.VolunteerModel{}
	model.FromDomain(volunteer)
	if err := r.db.WithContext(ctx).Save(model).Error; err != nil {
		return wrapError(err, "update", "volunteer")
	}
	volunteer.UpdatedAt = model.UpdatedAt

	r.logger.Info("volunteer updated", "id", volunteer.ID, "status", volunteer.Status)
	return nil
}

func (r *gormVolunteerRepository) DeleteByID(ctx context.Context, id string) error {
	if err := deleteByID[models.VolunteerModel](ctx, r.db, "volunteer", id); err != nil {
		return err
	}
	r.logger.Info("volunteer deleted", "id", id)
	return nil
}
