package app

import (
	"context"
	"fmt"

	"github.com/sabbir073/Complete-Political-website-sub006/internal/domain/categories"
	"github.com/sabbir073/Complete-Political-website-sub006/internal/pkg/logger"

	"github.com/google/uuid"
)

// categoryService implements the CategoryService interface
type categoryService struct {
	repo   categories.CategoryRepository
	logger logger.Logger
}

// NewCategoryService creates a new instance of CategoryService
func NewCategoryService(repo categories.CategoryRepository, logger logger.Logger) (categories.CategoryService, error) {
	return &categoryService{repo: repo, logger: logger}, nil
}

func (s *categoryService) Create(ctx context.Context, category *categories.Category) (*categories.Category, error) {
	category.ID = uuid.NewString()

	slug, err := uniqueSlug(ctx, s.repo.SlugExists, category.Slug, category.NameEn, "")
	if err != nil {
		return nil, fmt.Errorf("failed to generate slug: %w", err)
	}
	category.Slug = slug

	if err := s.repo.Create(ctx, category); err != nil {
		return nil, err
	}
	return category, nil
}

func (s *categoryService) List(ctx context.Context, categoryType string) ([]*categories.Category, error) {
	return s.repo.List(ctx, categoryType)
}

func (s *categoryService) GetByID(ctx context.Context, id string) (*categories.Category, error) {
	return s.repo.GetByID(ctx, id)
}

func (s *categoryService) Update(ctx context.Context, category *categories.Category) (*categories.Category, error) {
	existing, err := s.repo.GetByID(ctx, category.ID)
	if err != nil {
		return nil, err
	}

	if category.Slug != existing.Slug {
		slug, err := uniqueSlug(ctx, s.repo.SlugExists, category.Slug, category.NameEn, category.ID)
		if err != nil {
			return nil, fmt.Errorf("failed to generate slug: %w", err)
		}
		category.Slug = slug
	}
	category.CreatedAt = existing.CreatedAt

	if err := s.repo.Update(ctx, category); err != nil {
		return nil, err
	}
	return category, nil
}

func (s *categoryService) DeleteByID(ctx context.Context, id string) error {
	return s.repo.DeleteByID(ctx, id)
}
