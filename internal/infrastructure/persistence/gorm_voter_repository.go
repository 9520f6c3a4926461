package persistence

import (
	"context"

	"github.com/sabbir073/Complete-Political-website-sub006/internal/domain/voters"
	"github.com/sabbir073/Complete-Political-website-sub006/internal/infrastructure/persistence/models"
	"github.com/sabbir073/Complete-Political-website-sub006/internal/pkg/logger"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// upsertBatchSize bounds the rows per INSERT statement during bulk imports
const upsertBatchSize = 500

type gormVoterRepository struct {
	db     *gorm.DB
	logger logger.Logger
}

// NewGormVoterRepository creates a new GORM-based VoterRepository implementation
func NewGormVoterRepository(db *gorm.DB, logger logger.Logger) (voters.VoterRepository, error) {
	return &gormVoterRepository{db: db, logger: logger}, nil
}

func (r *gormVoterRepository) Create(ctx context.Context, voter *voters.Voter) error {
	if err := voter.Validate(); err != nil {
		return err
	}

	model := &models.VoterModel{}
	model.FromDomain(voter)
	if err := r.db.WithContext(ctx).Create(model).Error; err != nil {
		return wrapError(err, "create", "voter")
	}
	voter.CreatedAt, voter.UpdatedAt = model.CreatedAt, model.UpdatedAt

	r.logger.Info("voter created", "id", voter.ID, "voter_number", voter.VoterNumber)
	return nil
}

func (r *gormVoterRepository) List(ctx context.Context, query *voters.VoterQuery) ([]*voters.Voter, int64, error) {
	if err := query.Validate(); err != nil {
		return nil, 0, err
	}

	dbQuery := r.db.WithContext(ctx).Model(&models.VoterModel{})
	if query.Ward != "" {
		dbQuery = dbQuery.Where("ward = ?", query.Ward)
	}
	if query.Union != "" {
		dbQuery = dbQuery.Where("union_name = ?", query.Union)
	}

	rows, total, err := findPage[models.VoterModel](dbQuery.Session(&gorm.Session{}), query.Params, "voter_number ASC")
	if err != nil {
		return nil, 0, wrapError(err, "list", "voters")
	}

	result := make([]*voters.Voter, len(rows))
	for i, row := range rows {
		result[i] = row.ToDomain()
	}
	return result, total, nil
}

// Search matches an exact voter number, or a name substring in either language
func (r *gormVoterRepository) Search(ctx context.Context, query *voters.SearchQuery, limit int) ([]*voters.Voter, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	dbQuery := r.db.WithContext(ctx).Model(&models.VoterModel{})
	if query.VoterNumber != "" {
		dbQuery = dbQuery.Where("voter_number = ?", query.VoterNumber)
	} else {
		dbQuery = whereLike(dbQuery, query.Name, "name_en", "name_bn")
	}
	if query.Ward != "" {
		dbQuery = dbQuery.Where("ward = ?", query.Ward)
	}

	var rows []*models.VoterModel
	if err := dbQuery.Order("voter_number ASC").Limit(limit).Find(&rows).Error; err != nil {
		return nil, wrapError(err, "search", "voters")
	}

	result := make([]*voters.Voter, len(rows))
	for i, row := range rows {
		result[i] = row.ToDomain()
	}
	return result, nil
}

func (r *gormVoterRepository) GetByID(ctx context.Context, id string) (*voters.Voter, error) {
	model, err := getOne[models.VoterModel](ctx, r.db, "voter", "id", id)
	if err != nil {
		return nil, err
	}
	return model.ToDomain(), nil
}

func (r *gormVoterRepository) Update(ctx context.Context, voter *voters.Voter) error {
	if err := voter.Validate(); err != nil {
		return err
	}

	model := &models.VoterModel{}
	model.FromDomain(voter)
	if err := r.db.WithContext(ctx).Save(model).Error; err != nil {
		return wrapError(err, "update", "voter")
	}
	voter.UpdatedAt = model.UpdatedAt

	r.logger.Info("voter updated", "id", voter.ID)
	return nil
}

func (r *gormVoterRepository) DeleteByID(ctx context.Context, id string) error {
	if err := deleteByID[models.VoterModel](ctx, r.db, "voter", id); err != nil {
		return err
	}
	r.logger.Info("voter deleted", "id", id)
	return nil
}

func (r *gormVoterRepository) UpsertBatch(ctx context.Context, batch []*voters.Voter) error {
	if len(batch) == 0 {
		return nil
	}

	rows := make([]*models.VoterModel, len(batch))
	for i, voter := range batch {
		rows[i] = &models.VoterModel{}
		rows[i].FromDomain(voter)
	}

	err := r.db.WithContext(ctx).
		Clauses(clause.OnConflict{
			Columns: []clause.Column{{Name: "voter_number"}},
			DoUpdates: clause.AssignmentColumns([]string{
				"name_en", "name_bn", "father_name", "mother_name", "date_of_birth",
				"gender", "ward", "union_name", "polling_center", "address", "updated_at",
			}),
		}).
		CreateInBatches(rows, upsertBatchSize).Error
	if err != nil {
		return wrapError(err, "upsert", "voters")
	}

	r.logger.Info("voters upserted", "count", len(rows))
	return nil
}
