package persistence

import (
	"context"

	"github.com/sabbir073/Complete-Political-website-sub006/internal/domain/testimonials"
	"github.com/sabbir073/Complete-Political-website-sub006/internal/infrastructure/persistence/models"
	"github.com/sabbir073/Complete-Political-website-sub006/internal/pkg/logger"

	"gorm.io/gorm"
)

type gormTestimonialRepository struct {
	db     *gorm.DB
	logger logger.Logger
}

// NewGormTestimonialRepository creates a new GORM-based TestimonialRepository implementation
func NewGormTestimonialRepository(db *gorm.DB, logger logger.Logger) (testimonials.TestimonialRepository, error) {
	return &gormTestimonialRepository{db: db, logger: logger}, nil
}

func (r *gormTestimonialRepository) Create(ctx context.Context, testimonial *testimonials.Testimonial) error {
	if err := testimonial.Validate(); err != nil {
		return err
	}

	model := &models.TestimonialModel{}
	model.FromDomain(testimonial)
	if err := r.db.WithContext(ctx).Create(model).Error; err != nil {
		return wrapError(err, "create", "testimonial")
	}
	testimonial.CreatedAt, testimonial.UpdatedAt = model.CreatedAt, model.UpdatedAt

	r.logger.Info("testimonial created", "id", testimonial.ID, "status", testimonial.Status)
	return nil
}

func (r *gormTestimonialRepository) List(ctx context.Context, query *testimonials.TestimonialQuery) ([]*testimonials.Testimonial, int64, error) {
	if err := query.Validate(); err != nil {
		return nil, 0, err
	}

	dbQuery := r.db.WithContext(ctx).Model(&models.TestimonialModel{})
	if query.Status != "" {
		dbQuery = dbQuery.Where("status = ?", query.Status)
	}

	rows, total, err := findPage[models.TestimonialModel](dbQuery.Session(&gorm.Session{}), query.Params, "created_at DESC")
	if err != nil {
		return nil, 0, wrapError(err, "list", "testimonials")
	}

	result := make([]*testimonials.Testimonial, len(rows))
	for i, row := range rows {
		result[i] = row.ToDomain()
	}
	return result, total, nil
}

func (r *gormTestimonialRepository) GetByID(ctx context.Context, id string) (*testimonials.Testimonial, error) {
	model, err := getOne[models.TestimonialModel](ctx, r.db, "testimonial", "id", id)
	if err != nil {
		return nil, err
	}
	return model.ToDomain(), nil
}

func (r *gormTestimonialRepository) Update(ctx context.Context, testimonial *testimonials.Testimonial) error {
	if err := testimonial.Validate(); err != nil {
		return err
	}

	model := &models.TestimonialModel{}
	model.FromDomain(testimonial)
	if err := r.db.WithContext(ctx).Save(model).Error; err != nil {
		return wrapError(err, "update", "testimonial")
	}
	testimonial.UpdatedAt = model.UpdatedAt

	r.logger.Info("testimonial updated", "id", testimonial.ID, "status", testimonial.Status)
	return nil
}

func (r *gormTestimonialRepository) DeleteByID(ctx context.Context, id string) error {
	if err := deleteByID[models.TestimonialModel](ctx, r.db, "testimonial", id); err != nil {
		return err
	}
	r.logger.Info("testimonial deleted", "id", id)
	return nil
}
