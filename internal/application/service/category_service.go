package service

import (
	"context"

	"github.com/google/uuid"

	"github.com/freshbasket/storefront-api/internal/domain/entity"
	"github.com/freshbasket/storefront-api/internal/domain/repository"
	"github.com/freshbasket/storefront-api/pkg/apperror"
	"github.com/freshbasket/storefront-api/pkg/utils"
)

// CategoryService handles product category operations
type CategoryService struct {
	categoryRepo repository.CategoryRepository
}

// NewCategoryService creates a new category service
func NewCategoryService(categoryRepo repository.CategoryRepository) *CategoryService {
	return &CategoryService{categoryRepo: categoryRepo}
}

// CreateCategoryInput represents the create category input
type CreateCategoryInput struct {
	ParentID  *uuid.UUID
	Name      string
	ImageURL  *string
	SortOrder int
}

// CreateCategory creates a new category
func (s *CategoryService) CreateCategory(ctx context.Context, input *CreateCategoryInput) (*entity.Category, error) {
	if input.ParentID != nil {
		parent, err := s.categoryRepo.GetByID(ctx, *input.ParentID)
		if err != nil {
			return nil, err
		}
		if parent == nil {
			return nil, apperror.NewNotFoundError("Parent category")
		}
	}

	slug := utils.Slugify(input.Name)
	existing, err := s.categoryRepo.GetBySlug(ctx, slug)
	if err != nil {
		return nil, err
	}
	if existing != nil {
		return nil, apperror.NewConflictError("A category with this name already exists")
	}

	category := &entity.Category{
		ParentID:  input.ParentID,
		Name:      input.Name,
		Slug:      slug,
		ImageURL:  input.ImageURL,
		IsActive:  true,
		SortOrder: input.SortOrder,
	}

	if err := s.categoryRepo.Create(ctx, category); err != nil {
		return nil, err
	}

	return category, nil
}

// GetCategory retrieves a category by ID
func (s *CategoryService) GetCategory(ctx context.Context, id uuid.UUID) (*entity.Category, error) {
	category, err := s.categoryRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if category == nil {
		return nil, apperror.NewNotFoundError("Category")
	}
	return category, nil
}

// ListCategories lists all categories ordered by sort order
func (s *CategoryService) ListCategories(ctx context.Context) ([]entity.Category, error) {
	return s.categoryRepo.List(ctx)
}

// UpdateCategoryInput represents the update category input
type UpdateCategoryInput struct {
	ID        uuid.UUID
	ParentID  *uuid.UUID
	Name      *string
	ImageURL  *string
	IsActive  *bool
	SortOrder *int
}

// UpdateCategory updates an existing category
func (s *CategoryService) UpdateCategory(ctx context.Context, input *UpdateCategoryInput) (*entity.Category, error) {
	category, err := s.categoryRepo.GetByID(ctx, input.ID)
	if err != nil {
		return nil, err
	}
	if category == nil {
		return nil, apperror.NewNotFoundError("Category")
	}

	if input.ParentID != nil {
		if *input.ParentID == category.ID {
			return nil, apperror.NewUnprocessableError("Category cannot be its own parent")
		}
		parent, err := s.categoryRepo.GetByID(ctx, *input.ParentID)
		if err != nil {
			return nil, err
		}
		if parent == nil {
			return nil, apperror.NewNotFoundError("Parent category")
		}
		category.ParentID = input.ParentID
	}
	if input.Name != nil && *input.Name != category.Name {
		slug := utils.Slugify(*input.Name)
		existing, err := s.categoryRepo.GetBySlug(ctx, slug)
		if err != nil {
			return nil, err
		}
		if existing != nil && existing.ID != category.ID {
			return nil, apperror.NewConflictError("A category with this name already exists")
		}
		category.Name = *input.Name
		category.Slug = slug
	}
	if input.ImageURL != nil {
		category.ImageURL = input.ImageURL
	}
	if input.IsActive != nil {
		category.IsActive = *input.IsActive
	}
	if input.SortOrder != nil {
		category.SortOrder = *input.SortOrder
	}

	if err := s.categoryRepo.Update(ctx, category); err != nil {
		return nil, err
	}

	return category, nil
}

// DeleteCategory soft-deletes a category
func (s *CategoryService) DeleteCategory(ctx context.Context, id uuid.UUID) error {
	category, err := s.categoryRepo.GetByID(ctx, id)
	if err != nil {
		return err
	}
	if category == nil {
		return apperror.NewNotFoundError("Category")
	}
	return s.categoryRepo.Delete(ctx, id)
}
