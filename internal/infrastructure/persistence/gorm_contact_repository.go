package persistence

import (
	"context"

	"github.com/sabbir073/Complete-Political-website-sub006/internal/domain/contact"
	"github.com/sabbir073/Complete-Political-website-sub006/internal/infrastructure/persistence/models"
	"github.com/sabbir073/Complete-Political-website-sub006/internal/pkg/logger"

	"gorm.io/gorm"
)

type gormMessageRepository struct {
	db     *gorm.DB
	logger logger.Logger
}

// NewGormMessageRepository creates a new GORM-based MessageRepository implementation
func NewGormMessageRepository(db *gorm.DB, logger logger.Logger) (contact.MessageRepository, error) {
	return &gormMessageRepository{db: db, logger: logger}, nil
}

func (r *gormMessageRepository) Create(ctx context.Context, message *contact.Message) error {
	if err := message.Validate(); err != nil {
		return err
	}

	model := &models.ContactMessageModel{}
	model.FromDomain(message)
	if err := r.db.WithContext(ctx).Create(model).Error; err != nil {
		return wrapError(err, "create", "contact message")
	}
	message.CreatedAt, message.UpdatedAt = model.CreatedAt, model.UpdatedAt

	r.logger.Info("contact message created", "id", message.ID, "status", message.Status)
	return nil
}

func (r *gormMessageRepository) List(ctx context.Context, query *contact.MessageQuery) ([]*contact.Message, int64, error) {
	if err := query.Validate(); err != nil {
		return nil, 0, err
	}

	dbQuery := r.db.WithContext(ctx).Model(&models.ContactMessageModel{})
	if query.Status != "" {
		dbQuery = dbQuery.Where("status = ?", query.Status)
	}

	rows, total, err := findPage[models.ContactMessageModel](dbQuery.Session(&gorm.Session{}), query.Params, "created_at DESC")
	if err != nil {
		return nil, 0, wrapError(err, "list", "contact messages")
	}

	result := make([]*contact.Message, len(rows))
	for i, row := range rows {
		result[i] = row.ToDomain()
	}
	return result, total, nil
}

func (r *gormMessageRepository) GetByID(ctx context.Context, id string) (*contact.Message, error) {
	model, err := getOne[models.ContactMessageModel](ctx, r.db, "contact message", "id", id)
	if err != nil {
		return nil, err
	}
	return model.ToDomain(), nil
}

func (r *gormMessageRepository) Update(ctx context.Context, message *contact.Message) error {
	if err := message.Validate(); err != nil {
		return err
	}

	model := &models.ContactMessageModel{}
	model.FromDomain(message)
	if err := r.db.WithContext(ctx).Save(model).Error; err != nil {
		return wrapError(err, "update", "contact message")
	}
	message.UpdatedAt = model.UpdatedAt

	r.logger.Info("contact message updated", "id", message.ID, "status", message.Status)
	return nil
}

func (r *gormMessageRepository) DeleteByID(ctx context.Context, id string) error {
	if err := deleteByID[models.ContactMessageModel](ctx, r.db, "contact message", id); err != nil {
		return err
	}
	r.logger.Info("contact message deleted", "id", id)
	return nil
}
