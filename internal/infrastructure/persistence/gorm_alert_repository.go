package persistence

import (
	"context"

	"github.com/sabbir073/Complete-Political-website-sub006/internal/domain/emergency"
	"github.com/sabbir073/Complete-Political-website-sub006/internal/infrastructure/persistence/models"
	"github.com/sabbir073/Complete-Political-website-sub006/internal/pkg/logger"

	"gorm.io/gorm"
)

type gormAlertRepository struct {
	db     *gorm.DB
	logger logger.Logger
}

// NewGormAlertRepository creates a new GORM-based AlertRepository implementation
func NewGormAlertRepository(db *gorm.DB, logger logger.Logger) (emergency.AlertRepository, error) {
	return &gormAlertRepository{db: db, logger: logger}, nil
}

func (r *gormAlertRepository) Create(ctx context.Context, alert *emergency.Alert) error {
	if err := alert.Validate(); err != nil {
		return err
	}

	model := &models.SOSAlertModel{}
	model.FromDomain(alert)
	if err := r.db.WithContext(ctx).Create(model).Error; err != nil {
		return wrapError(err, "create", "sos alert")
	}
	alert.CreatedAt, alert.UpdatedAt = model.CreatedAt, model.UpdatedAt

	r.logger.Info("sos alert created", "id", alert.ID, "status", alert.Status)
	return nil
}

func (r *gormAlertRepository) List(ctx context.Context, query *emergency.AlertQuery) ([]*emergency.Alert, int64, error) {
	if err := query.Validate(); err != nil {
		return nil, 0, err
	}

	dbQuery := r.db.WithContext(ctx).Model(&models.SOSAlertModel{})
	if query.Status != "" {
		dbQuery = dbQuery.Where("status = ?", query.Status)
	}

	rows, total, err := findPage[models.SOSAlertModel](dbQuery.Session(&gorm.Session{}), query.Params, "created_at DESC")
	if err != nil {
		return nil, 0, wrapError(err, "list", "sos alerts")
	}

	result := make([]*emergency.Alert, len(rows))
	for i, row := range rows {
		result[i] = row.ToDomain()
	}
	return result, total, nil
}

func (r *gormAlertRepository) GetByID(ctx context.Context, id string) (*emergency.Alert, error) {
	model, err := getOne[models.SOSAlertModel](ctx, r.db, "sos alert", "id", id)
	if err != nil {
		return nil, err
	}
	return model.ToDomain(), nil
}

func (r *gormAlertRepository) Update(ctx context.Context, alert *emergency.Alert) error {
	if err := alert.Validate(); err != nil {
		return err
	}

	model := &models.SOSAlertModel{}
	model.FromDomain(alert)
	if err := r.db.WithContext(ctx).Save(model).Error; err != nil {
		return wrapError(err, "update", "sos alert")
	}
	alert.UpdatedAt = model.UpdatedAt

	r.logger.Info("sos alert updated", "id", alert.ID, "status", alert.Status)
	return nil
}
