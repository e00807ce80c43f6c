package service

import (
	"context"
	"fmt"

	"github.com/MKhiriev/go-market-keeper/internal/logger"
	"github.com/MKhiriev/go-market-keeper/internal/store"
	"github.com/MKhiriev/go-market-keeper/models"
)

type categoryService struct {
	categoryRepository store.CategoryRepository

	logger *logger.Logger
}

func NewCategoryService(categoryRepository store.CategoryRepository, logger *logger.Logger) CategoryService {
	return &categoryService{
		categoryRepository: categoryRepository,
		logger:             logger,
	}
}

func (s *categoryService) CreateCategory(ctx context.Context, input models.CategoryInput) (models.Category, error) {
	if input.Name == "" {
		return models.Category{}, ErrInvalidDataProvided
	}

	category, err := s.categoryRepository.Create(ctx, input.Name)
	if err != nil {
		return models.Category{}, fmt.Errorf("category creation ended with error: %w", err)
	}

	return category, nil
}

func (s *categoryService) GetCategory(ctx context.Context, categoryID int64) (models.Category, error) {
	return s.categoryRepository.FindByID(ctx, categoryID)
}

func (s *categoryService) ListCategories(ctx context.Context) ([]models.Category, error) {
	return s.categoryRepository.List(ctx)
}

func (s *categoryService) RenameCategory(ctx context.Context, categoryID int64, input models.CategoryInput) (models.Category, error) {
	if input.Name == "" {
		return models.Category{}, ErrInvalidDataProvided
	}

	category, err := s.categoryRepository.Rename(ctx, categoryID, input.Name)
	if err != nil {
		return models.Category{}, fmt.Errorf("category rename ended with error: %w", err)
	}

	return category, nil
}

func (s *categoryService) DeleteCategory(ctx context.Context, categoryID int64) error {
	return s.categoryRepository.Delete(ctx, categoryID)
}
