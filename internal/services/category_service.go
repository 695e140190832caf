package services

import (
	"context"
	"strings"

	"github.com/google/uuid"

	"dailydilli/internal/models/db_models"
	"dailydilli/internal/repositories"
	"dailydilli/pkg/utils"
)

type CategoryServiceInterface interface {
	CreateCategory(ctx context.Context, name string) (*db_models.Category, error)
	UpdateCategory(ctx context.Context, id uuid.UUID, name string) (*db_models.Category, error)
	DeleteCategory(ctx context.Context, id uuid.UUID) error
	GetCategory(ctx context.Context, id uuid.UUID) (*db_models.Category, error)
	ListCategories(ctx context.Context) ([]db_models.Category, error)
}

type CategoryService struct {
	categoryRepo repositories.CategoryRepository
}

func NewCategoryService(categoryRepo repositories.CategoryRepository) CategoryServiceInterface {
	return &CategoryService{categoryRepo: categoryRepo}
}

func (s *CategoryService) CreateCategory(ctx context.Context, name string) (*db_models.Category, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return nil, utils.ErrInvalidInput
	}

	existing, err := s.categoryRepo.FindByName(ctx, name)
	if err != nil {
		return nil, err
	}
	if existing != nil {
		return nil, utils.ErrCategoryExists
	}

	category := &db_models.Category{Name: name}
	if err := s.categoryRepo.Create(ctx, category); err != nil {
		return nil, err
	}
	return category, nil
}

func (s *CategoryService) UpdateCategory(ctx context.Context, id uuid.UUID, name string) (*db_models.Category, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return nil, utils.ErrInvalidInput
	}

	category, err := s.categoryRepo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if category == nil {
		return nil, utils.ErrCategoryNotFound
	}

	clash, err := s.categoryRepo.FindByName(ctx, name)
	if err != nil {
		return nil, err
	}
	if clash != nil && clash.ID != id {
		return nil, utils.ErrCategoryExists
	}

	category.Name = name
	if err := s.categoryRepo.Update(ctx, category); err != nil {
		return nil, err
	}
	return category, nil
}

func (s *CategoryService) DeleteCategory(ctx context.Context, id uuid.UUID) error {
	category, err := s.categoryRepo.FindByID(ctx, id)
	if err != nil {
		return err
	}
	if category == nil {
		return utils.ErrCategoryNotFound
	}
	return s.categoryRepo.Delete(ctx, id)
}

func (s *CategoryService) GetCategory(ctx context.Context, id uuid.UUID) (*db_models.Category, error) {
	category, err := s.categoryRepo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if category == nil {
		return nil, utils.ErrCategoryNotFound
	}
	return category, nil
}

func (s *CategoryService) ListCategories(ctx context.Context) ([]db_models.Category, error) {
	return s.categoryRepo.List(ctx)
}
