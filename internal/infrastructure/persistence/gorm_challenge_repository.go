package persistence

import (
	"context"

	"github.com/sabbir073/Complete-Political-website-sub006/internal/domain/challenges"
	"github.com/sabbir073/Complete-Political-website-sub006/internal/infrastructure/persistence/models"
	"github.com/sabbir073/Complete-Political-website-sub006/internal/pkg/logger"

	"gorm.io/gorm"
)

type gormChallengeRepository struct {
	db     *gorm.DB
	logger logger.Logger
}

// NewGormChallengeRepository creates a new GORM-based ChallengeRepository implementation
func NewGormChallengeRepository(db *gorm.DB, logger logger.Logger) (challenges.ChallengeRepository, error) {
	return &gormChallengeRepository{db: db, logger: logger}, nil
}

func (r *gormChallengeRepository) Create(ctx context.Context, challenge *challenges.Challenge) error {
	if err := challenge.Validate(); err != nil {
		return err
	}

	model := &models.ChallengeModel{}
	model.FromDomain(challenge)
	if err := r.db.WithContext(ctx).Create(model).Error; err != nil {
		return wrapError(err, "create", "challenge")
	}
	challenge.CreatedAt, challenge.UpdatedAt = model.CreatedAt, model.UpdatedAt

	r.logger.Info("challenge created", "id", challenge.ID, "slug", challenge.Slug)
	return nil
}

func (r *gormChallengeRepository) List(ctx context.Context, query *challenges.ChallengeQuery) ([]*challenges.Challenge, int64, error) {
	if err := query.Validate(); err != nil {
		return nil, 0, err
	}

	dbQuery := r.db.WithContext(ctx).Model(&models.ChallengeModel{})
	if query.Status != "" {
		dbQuery = dbQuery.Where("status = ?", query.Status)
	}

	rows, total, err := findPage[models.ChallengeModel](dbQuery.Session(&gorm.Session{}), query.Params, "starts_at DESC")
	if err != nil {
		return nil, 0, wrapError(err, "list", "challenges")
	}

	result := make([]*challenges.Challenge, len(rows))
	for i, row := range rows {
		result[i] = row.ToDomain()
	}
	return result, total, nil
}

func (r *gormChallengeRepository) GetByID(ctx context.Context, id string) (*challenges.Challenge, error) {
	model, err := getOne[models.ChallengeModel](ctx, r.db, "challenge", "id", id)
	if err != nil {
		return nil, err
	}
	return model.ToDomain(), nil
}

func (r *gormChallengeRepository) GetBySlug(ctx context.Context, slug string) (*challenges.Challenge, error) {
	model, err := getOne[models.ChallengeModel](ctx, r.db, "challenge", "slug", slug)
	if err != nil {
		return nil, err
	}
	return model.ToDomain(), nil
}

func (r *gormChallengeRepository) Update(ctx context.Context, challenge *challenges.Challenge) error {
	if err := challenge.Validate(); err != nil {
		return err
	}

	model := &models.ChallengeModel{}
	model.FromDomain(challenge)
	if err := r.db.WithContext(ctx).Save(model).Error; err != nil {
		return wrapError(err, "update", "challenge")
	}
	challenge.UpdatedAt = model.UpdatedAt

	r.logger.Info("challenge updated", "id", challenge.ID, "status", challenge.Status)
	return nil
}

func (r *gormChallengeRepository) DeleteByID(ctx context.Context, id string) error {
	if err := deleteByID[models.ChallengeModel](ctx, r.db, "challenge", id); err != nil {
		return err
	}
	r.logger.Info("challenge deleted", "id", id)
	return nil
}

func (r *gormChallengeRepository) SlugExists(ctx context.Context, slug, excludeID string) (bool, error) {
	return slugExists[models.ChallengeModel](ctx, r.db, slug, excludeID)
}

func (r *gormChallengeRepository) CreateSubmission(ctx context.Context, submission *challenges.Submission) error {
	if err := submission.Validate(); err != nil {
		return err
	}

	model := &models.ChallengeSubmissionModel{}
	model.FromDomain(submission)
	if err := r.db.WithContext(ctx).Create(model).Error; err != nil {
		return wrapError(err, "create", "challenge submission")
	}
	submission.CreatedAt, submission.UpdatedAt = model.CreatedAt, model.UpdatedAt

	r.logger.Info("challenge submission created", "id", submission.ID, "challenge_id", submission.ChallengeID)
	return nil
}

func (r *gormChallengeRepository) ListSubmissions(ctx context.Context, query *challenges.SubmissionQuery) ([]*challenges.Submission, int64, error) {
	if err := query.Validate(); err != nil {
		return nil, 0, err
	}

	dbQuery := r.db.WithContext(ctx).Model(&models.ChallengeSubmissionModel{})
	if query.ChallengeID != "" {
		dbQuery = dbQuery.Where("challenge_id = ?", query.ChallengeID)
	}
	if query.Status != "" {
		dbQuery = dbQuery.Where("status = ?", query.Status)
	}

	rows, total, err := findPage[models.ChallengeSubmissionModel](dbQuery.Session(&gorm.Session{}), query.Params, "created_at DESC")
	if err != nil {
		return nil, 0, wrapError(err, "list", "challenge submissions")
	}

	result := make([]*challenges.Submission, len(rows))
	for i, row := range rows {
		result[i] = row.ToDomain()
	}
	return result, total, nil
}

func (r *gormChallengeRepository) GetSubmissionByID(ctx context.Context, id string) (*challenges.Submission, error) {
	model, err := getOne[models.ChallengeSubmissionModel](ctx, r.db, "challenge submission", "id", id)
	if err != nil {
		return nil, err
	}
	return model.ToDomain(), nil
}

func (r *gormChallengeRepository) UpdateSubmission(ctx context.Context, submission *challenges.Submission) error {
	if err := submission.Validate(); err != nil {
		return err
	}

	model := &models.ChallengeSubmissionModel{}
	model.FromDomain(submission)
	if err := r.db.WithContext(ctx).Save(model).Error; err != nil {
		return wrapError(err, "update", "challenge submission")
	}
	submission.UpdatedAt = model.UpdatedAt

	r.logger.Info("challenge submission updated", "id", submission.ID, "status", submission.Status)
	return nil
}
