package persistence

import (
	"context"
	"strings"

	"github.com/sabbir073/Complete-Political-website-sub006/internal/domain/users"
	"github.com/sabbir073/Complete-Political-website-sub006/internal/infrastructure/persistence/models"
	"github.com/sabbir073/Complete-Political-website-sub006/internal/pkg/logger"

	"gorm.io/gorm"
)

type gormUserRepository struct {
	db     *gorm.DB
	logger logger.Logger
}

// NewGormUserRepository creates a new GORM-based UserRepository implementation
func NewGormUserRepository(db *gorm.DB, logger logger.Logger) (users.UserRepository, error) {
	return &gormUserRepository{db: db, logger: logger}, nil
}

func (r *gormUserRepository) Create(ctx context.Context, user *users.User) error {
	user.Email = strings.ToLower(strings.TrimSpace(user.Email))
	if err := user.Validate(); err != nil {
		return err
	}

	model := &models.UserModel{}
	model.FromDomain(user)
	if err := r.db.WithContext(ctx).Create(model).Error; err != nil {
		return wrapError(err, "create", "user")
	}
	user.CreatedAt, user.UpdatedAt = model.CreatedAt, model.UpdatedAt

	r.logger.Info("user created", "id", user.ID, "role", user.Role)
	return nil
}

func (r *gormUserRepository) List(ctx context.Context, query *users.UserQuery) ([]*users.User, int64, error) {
	if err := query.Validate(); err != nil {
		return nil, 0, err
	}

	dbQuery := r.db.WithContext(ctx).Model(&models.UserModel{})
	if query.Role != "" {
		dbQuery = dbQuery.Where("role = ?", query.Role)
	}

	rows, total, err := findPage[models.UserModel](dbQuery.Session(&gorm.Session{}), query.Params, "created_at ASC")
	if err != nil {
		return nil, 0, wrapError(err, "list", "users")
	}

	result := make([]*users.User, len(rows))
	for i, row := range rows {
		result[i] = row.ToDomain()
	}
	return result, total, nil
}

func (r *gormUserRepository) GetByID(ctx context.Context, id string) (*users.User, error) {
	model, err := getOne[models.UserModel](ctx, r.db, "user", "id", id)
	if err != nil {
		return nil, err
	}
	return model.ToDomain(), nil
}

func (r *gormUserRepository) GetByEmail(ctx context.Context, email string) (*users.User, error) {
	model, err := getOne[models.UserModel](ctx, r.db, "user", "email", strings.ToLower(strings.TrimSpace(email)))
	if err != nil {
		return nil, err
	}
	return model.ToDomain(), nil
}

func (r *gormUserRepository) Update(ctx context.Context, user *users.User) error {
	user.Email = strings.ToLower(strings.TrimSpace(user.Email))
	if err := user.Validate(); err != nil {
		return err
	}

	model := &models.UserModel{}
	model.FromDomain(user)
	if err := r.db.WithContext(ctx).Save(model).Error; err != nil {
		return wrapError(err, "update", "user")
	}
	user.UpdatedAt = model.UpdatedAt

	r.logger.Info("user updated", "id", user.ID)
	return nil
}

func (r *gormUserRepository) DeleteByID(ctx context.Context, id string) error {
	if err := deleteByID[models.UserModel](ctx, r.db, "user", id); err != nil {
		return err
	}
	r.logger.Info("user deleted", "id", id)
	return nil
}
