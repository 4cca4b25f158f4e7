package service

import (
	"context"

	"github.com/google/uuid"

	"github.com/freshbasket/storefront-api/internal/domain/entity"
	"github.com/freshbasket/storefront-api/internal/domain/repository"
	"github.com/freshbasket/storefront-api/pkg/apperror"
	"github.com/freshbasket/storefront-api/pkg/pagination"
	"github.com/freshbasket/storefront-api/pkg/utils"
)

// ProductService handles catalog product operations
type ProductService struct {
	productRepo  repository.ProductRepository
	categoryRepo repository.CategoryRepository
}

// NewProductService creates a new product service
func NewProductService(productRepo repository.ProductRepository, categoryRepo repository.CategoryRepository) *ProductService {
	return &ProductService{
		productRepo:  productRepo,
		categoryRepo: categoryRepo,
	}
}

// CreateProductInput represents the create product input
type CreateProductInput struct {
	CategoryID        *uuid.UUID
	Name              string
	SKU               string
	Description       string
	ShortDescription  *string
	Brand             *string
	Price             int64 // cents
	CompareAtPrice    *int64
	Stock             int
	LowStockThreshold *int
	PrimaryImageURL   *string
	IsActive          *bool
	IsFeatured        bool
	IsBestseller      bool
	IsNewArrival      bool
}

// CreateProduct creates a new catalog product
func (s *ProductService) CreateProduct(ctx context.Context, input *CreateProductInput) (*entity.Product, error) {
	if input.Price <= 0 {
		return nil, apperror.NewUnprocessableError("Price must be greater than zero")
	}
	if input.Stock < 0 {
		return nil, apperror.NewUnprocessableError("Stock cannot be negative")
	}

	if input.CategoryID != nil {
		category, err := s.categoryRepo.GetByID(ctx, *input.CategoryID)
		if err != nil {
			return nil, err
		}
		if category == nil {
			return nil, apperror.NewNotFoundError("Category")
		}
	}

	sku := input.SKU
	if sku == "" {
		sku = utils.GenerateSKU()
	} else {
		existing, err := s.productRepo.GetBySKU(ctx, sku)
		if err != nil {
			return nil, err
		}
		if existing != nil {
			return nil, apperror.NewConflictError("A product with this SKU already exists")
		}
	}

	slug, err := s.uniqueSlug(ctx, input.Name)
	if err != nil {
		return nil, err
	}

	product := &entity.Product{
		CategoryID:       input.CategoryID,
		Name:             input.Name,
		Slug:             slug,
		SKU:              sku,
		Description:      input.Description,
		ShortDescription: input.ShortDescription,
		Brand:            input.Brand,
		Price:            input.Price,
		CompareAtPrice:   input.CompareAtPrice,
		Stock:            input.Stock,
		PrimaryImageURL:  input.PrimaryImageURL,
		IsActive:         true,
		IsFeatured:       input.IsFeatured,
		IsBestseller:     input.IsBestseller,
		IsNewArrival:     input.IsNewArrival,
	}
	if input.LowStockThreshold != nil {
		product.LowStockThreshold = *input.LowStockThreshold
	} else {
		product.LowStockThreshold = 10
	}
	if input.IsActive != nil {
		product.IsActive = *input.IsActive
	}

	if err := s.productRepo.Create(ctx, product); err != nil {
		return nil, err
	}

	return product, nil
}

// GetProduct retrieves a product by ID
func (s *ProductService) GetProduct(ctx context.Context, id uuid.UUID) (*entity.Product, error) {
	product, err := s.productRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if product == nil {
		return nil, apperror.NewNotFoundError("Product")
	}
	return product, nil
}

// GetProductBySlug retrieves an active product by slug and records the view.
// Used by the public product page.
func (s *ProductService) GetProductBySlug(ctx context.Context, slug string) (*entity.Product, error) {
	product, err := s.productRepo.GetBySlug(ctx, slug)
	if err != nil {
		return nil, err
	}
	if product == nil || !product.IsActive {
		return nil, apperror.NewNotFoundError("Product")
	}

	// View tracking is best-effort
	_ = s.productRepo.IncrementViewCount(ctx, product.ID)

	return product, nil
}

// ListProducts lists products with filtering and pagination
func (s *ProductService) ListProducts(ctx context.Context, params *repository.ProductFilterParams) (*pagination.PaginatedResult[entity.Product], error) {
	products, total, err := s.productRepo.List(ctx, params)
	if err != nil {
		return nil, err
	}

	pag := pagination.NewPagination(params.Pagination.Page, params.Pagination.PerPage, total)
	return pagination.NewPaginatedResult(products, pag), nil
}

// GetRelatedProducts returns active products from the same category
func (s *ProductService) GetRelatedProducts(ctx context.Context, productID uuid.UUID, limit int) ([]entity.Product, error) {
	if limit <= 0 || limit > 20 {
		limit = 8
	}
	return s.productRepo.GetRelated(ctx, productID, limit)
}

// GetLowStockProducts returns products at or below their low stock threshold
func (s *ProductService) GetLowStockProducts(ctx context.Context) ([]entity.Product, error) {
	return s.productRepo.GetLowStock(ctx)
}

// UpdateProductInput represents the update product input
type UpdateProductInput struct {
	ID                uuid.UUID
	CategoryID        *uuid.UUID
	Name              *string
	Description       *string
	ShortDescription  *string
	Brand             *string
	Price             *int64 // cents
	CompareAtPrice    *int64
	Stock             *int
	LowStockThreshold *int
	PrimaryImageURL   *string
	IsActive          *bool
	IsFeatured        *bool
	IsBestseller      *bool
	IsNewArrival      *bool
}

// UpdateProduct updates an existing product
func (s *ProductService) UpdateProduct(ctx context.Context, input *UpdateProductInput) (*entity.Product, error) {
	product, err := s.productRepo.GetByID(ctx, input.ID)
	if err != nil {
		return nil, err
	}
	if product == nil {
		return nil, apperror.NewNotFoundError("Product")
	}

	if input.CategoryID != nil {
		category, err := s.categoryRepo.GetByID(ctx, *input.CategoryID)
		if err != nil {
			return nil, err
		}
		if category == nil {
			return nil, apperror.NewNotFoundError("Category")
		}
		product.CategoryID = input.CategoryID
	}
	if input.Name != nil && *input.Name != product.Name {
		slug, err := s.uniqueSlug(ctx, *input.Name)
		if err != nil {
			return nil, err
		}
		product.Name = *input.Name
		product.Slug = slug
	}
	if input.Description != nil {
		product.Description = *input.Description
	}
	if input.ShortDescription != nil {
		product.ShortDescription = input.ShortDescription
	}
	if input.Brand != nil {
		product.Brand = input.Brand
	}
	if input.Price != nil {
		if *input.Price <= 0 {
			return nil, apperror.NewUnprocessableError("Price must be greater than zero")
		}
		product.Price = *input.Price
	}
	if input.CompareAtPrice != nil {
		product.CompareAtPrice = input.CompareAtPrice
	}
	if input.Stock != nil {
		if *input.Stock < 0 {
			return nil, apperror.NewUnprocessableError("Stock cannot be negative")
		}
		product.Stock = *input.Stock
	}
	if input.LowStockThreshold != nil {
		product.LowStockThreshold = *input.LowStockThreshold
	}
	if input.PrimaryImageURL != nil {
		product.PrimaryImageURL = input.PrimaryImageURL
	}
	if input.IsActive != nil {
		product.IsActive = *input.IsActive
	}
	if input.IsFeatured != nil {
		product.IsFeatured = *input.IsFeatured
	}
	if input.IsBestseller != nil {
		product.IsBestseller = *input.IsBestseller
	}
	if input.IsNewArrival != nil {
		product.IsNewArrival = *input.IsNewArrival
	}

	if err := s.productRepo.Update(ctx, product); err != nil {
		return nil, err
	}

	return product, nil
}

// BulkImportError records why one row of a bulk import was skipped
type BulkImportError struct {
	Index   int    `json:"index"`
	Name    string `json:"name"`
	Message string `json:"message"`
}

// BulkImportResult summarizes a bulk product import
type BulkImportResult struct {
	Created int               `json:"created"`
	Skipped int               `json:"skipped"`
	Errors  []BulkImportError `json:"errors,omitempty"`
}

// BulkImportProducts creates products row by row. Rows that fail validation
// are skipped and reported; the rest are still created.
func (s *ProductService) BulkImportProducts(ctx context.Context, inputs []*CreateProductInput) (*BulkImportResult, error) {
	result := &BulkImportResult{}
	for i, input := range inputs {
		if _, err := s.CreateProduct(ctx, input); err != nil {
			result.Skipped++
			result.Errors = append(result.Errors, BulkImportError{
				Index:   i,
				Name:    input.Name,
				Message: apperror.GetAppError(err).Message,
			})
			continue
		}
		result.Created++
	}
	return result, nil
}

// DeleteProduct soft-deletes a product
func (s *ProductService) DeleteProduct(ctx context.Context, id uuid.UUID) error {
	product, err := s.productRepo.GetByID(ctx, id)
	if err != nil {
		return err
	}
	if product == nil {
		return apperror.NewNotFoundError("Product")
	}
	return s.productRepo.Delete(ctx, id)
}

// uniqueSlug derives a slug from the name, suffixing on collision
func (s *ProductService) uniqueSlug(ctx context.Context, name string) (string, error) {
	slug := utils.Slugify(name)
	existing, err := s.productRepo.GetBySlug(ctx, slug)
	if err != nil {
		return "", err
	}
	if existing == nil {
		return slug, nil
	}
	return slug + "-" + uuid.NewString()[:6], nil
}
