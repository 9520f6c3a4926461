package persistence

import (
	"context"

	"github.com/sabbir073/Complete-Political-website-sub006/internal/domain/complaints"
	"github.com/sabbir073/Complete-Political-website-sub006/internal/infrastructure/persistence/models"
	"github.com/sabbir073/Complete-Political-website-sub006/internal/pkg/logger"

	"gorm.io/gorm"
)

type gormComplaintRepository struct {
	db     *gorm.DB
	logger logger.Logger
}

// NewGormComplaintRepository creates a new GORM-based ComplaintRepository implementation
func NewGormComplaintRepository(db *gorm.DB, logger logger.Logger) (complaints.ComplaintRepository, error) {
	return &gormComplaintRepository{db: db, logger: logger}, nil
}

func (r *gormComplaintRepository) Create(ctx context.Context, complaint *complaints.Complaint) error {
	if err := complaint.Validate(); err != nil {
		return err
	}

	model := &models.ComplaintModel{}
	model.FromDomain(complaint)
	if err := r.db.WithContext(ctx).Create(model).Error; err != nil {
		return wrapError(err, "create", "complaint")
	}
	complaint.CreatedAt, complaint.UpdatedAt = model.CreatedAt, model.UpdatedAt

	r.logger.Info("complaint created", "id", complaint.ID, "tracking_id", complaint.TrackingID, "category", complaint.Category)
	return nil
}

func (r *gormComplaintRepository) List(ctx context.Context, query *complaints.ComplaintQuery) ([]*complaints.Complaint, int64, error) {
	if err := query.Validate(); err != nil {
		return nil, 0, err
	}

	dbQuery := r.db.WithContext(ctx).Model(&models.ComplaintModel{})
	if query.Status != "" {
		dbQuery = dbQuery.Where("status = ?", query.Status)
	}
	if query.Category != "" {
		dbQuery = dbQuery.Where("category = ?", query.Category)
	}
	if query.Search != "" {
		dbQuery = whereLike(dbQuery, query.Search, "tracking_id", "name", "subject", "phone")
	}

	rows, total, err := findPage[models.ComplaintModel](dbQuery.Session(&gorm.Session{}), query.Params, "created_at DESC")
	if err != nil {
		return nil, 0, wrapError(err, "list", "complaints")
	}

	result := make([]*complaints.Complaint, len(rows))
	for i, row := range rows {
		result[i] = row.ToDomain()
	}
	return result, total, nil
}

func (r *gormComplaintRepository) GetByID(ctx context.Context, id string) (*complaints.Complaint, error) {
	model, err := getOne[models.ComplaintModel](ctx, r.db, "complaint", "id", id)
	if err != nil {
		return nil, err
	}
	return model.ToDomain(), nil
}

func (r *gormComplaintRepository) GetByTrackingID(ctx context.Context, trackingID string) (*complaints.Complaint, error) {
	model, err := getOne[models.ComplaintModel](ctx, r.db, "complaint", "tracking_id", trackingID)
	if err != nil {
		return nil, err
	}
	return model.ToDomain(), nil
}

func (r *gormComplaintRepository) Update(ctx context.Context, complaint *complaints.Complaint) error {
	if err := complaint.Validate(); err != nil {
		return err
	}

	model := &models.ComplaintModel{}
	model.FromDomain(complaint)
	if err := r.db.WithContext(ctx).Save(model).Error; err != nil {
		return wrapError(err, "update", "complaint")
	}
	complaint.UpdatedAt = model.UpdatedAt

	r.logger.Info("complaint updated", "id", complaint.ID, "status", complaint.Status)
	return nil
}
