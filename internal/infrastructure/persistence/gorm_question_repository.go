package persistence

import (
	"context"

	"github.com/sabbir073/Complete-Political-website-sub006/internal/domain/ama"
	"github.com/sabbir073/Complete-Political-website-sub006/internal/infrastructure/persistence/models"
	"github.com/sabbir073/Complete-Political-website-sub006/internal/pkg/logger"

	"gorm.io/gorm"
)

type gormQuestionRepository struct {
	db     *gorm.DB
	logger logger.Logger
}

// NewGormQuestionRepository creates a new GORM-based QuestionRepository implementation
func NewGormQuestionRepository(db *gorm.DB, logger logger.Logger) (ama.QuestionRepository, error) {
	return &gormQuestionRepository{db: db, logger: logger}, nil
}

func (r *gormQuestionRepository) Create(ctx context.Context, question *ama.Question) error {
	if err := question.Validate(); err != nil {
		return err
	}

	model := &models.QuestionModel{}
	model.FromDomain(question)
	if err := r.db.WithContext(ctx).Create(model).Error; err != nil {
		return wrapError(err, "create", "question")
	}
	question.CreatedAt, question.UpdatedAt = model.CreatedAt, model.UpdatedAt

	r.logger.Info("question created", "id", question.ID, "status", question.Status)
	return nil
}

func (r *gormQuestionRepository) List(ctx context.Context, query *ama.QuestionQuery) ([]*ama.Question, int64, error) {
	if err := query.Validate(); err != nil {
		return nil, 0, err
	}

	dbQuery := r.db.WithContext(ctx).Model(&models.QuestionModel{})
	if query.Status != "" {
		dbQuery = dbQuery.Where("status = ?", query.Status)
	}

	rows, total, err := findPage[models.QuestionModel](dbQuery.Session(&gorm.Session{}), query.Params, "created_at DESC")
	if err != nil {
		return nil, 0, wrapError(err, "list", "questions")
	}

	result := make([]*ama.Question, len(rows))
	for i, row := range rows {
		result[i] = row.ToDomain()
	}
	return result, total, nil
}

func (r *gormQuestionRepository) GetByID(ctx context.Context, id string) (*ama.Question, error) {
	model, err := getOne[models.QuestionModel](ctx, r.db, "question", "id", id)
	if err != nil {
		return nil, err
	}
	return model.ToDomain(), nil
}

func (r *gormQuestionRepository) Update(ctx context.Context, question *ama.Question) error {
	if err := question.Validate(); err != nil {
		return err
	}

	model := &models.QuestionModel{}
	model.FromDomain(question)
	if err := r.db.WithContext(ctx).Save(model).Error; err != nil {
		return wrapError(err, "update", "question")
	}
	question.UpdatedAt = model.UpdatedAt

	r.logger.Info("question updated", "id", question.ID, "status", question.Status)
	return nil
}

func (r *gormQuestionRepository) DeleteByID(ctx context.Context, id string) error {
	if err := deleteByID[models.QuestionModel](ctx, r.db, "question", id); err != nil {
		return err
	}
	r.logger.Info("question deleted", "id", id)
	return nil
}
