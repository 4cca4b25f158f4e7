package repository

import (
	"context"

	"github.com/google/uuid"

	"github.com/freshbasket/storefront-api/internal/domain/entity"
	"github.com/freshbasket/storefront-api/pkg/pagination"
)

// ProductRepository defines the interface for product data operations
type ProductRepository interface {
	Create(ctx context.Context, product *entity.Product) error
	CreateBatch(ctx context.Context, products []entity.Product) error
	GetByID(ctx context.Context, id uuid.UUID) (*entity.Product, error)
	// GetByIDs retrieves multiple products by their IDs in a single query (prevents N+1)
	GetByIDs(ctx context.Context, ids []uuid.UUID) ([]entity.Product, error)
	GetBySlug(ctx context.Context, slug string) (*entity.Product, error)
	GetBySKU(ctx context.Context, sku string) (*entity.Product, error)
	Update(ctx context.Context, product *entity.Product) error
	Delete(ctx context.Context, id uuid.UUID) error
	List(ctx context.Context, params *ProductFilterParams) ([]entity.Product, int64, error)
	// GetRelated returns active products sharing the given product's category
	GetRelated(ctx context.Context, productID uuid.UUID, limit int) ([]entity.Product, error)
	GetLowStock(ctx context.Context) ([]entity.Product, error)
	// IncrementViewCount bumps the view counter without touching updated_at
	IncrementViewCount(ctx context.Context, id uuid.UUID) error
	// UpdateRating replaces the denormalized rating aggregate
	UpdateRating(ctx context.Context, id uuid.UUID, average float64, count int) error
}

// ProductFilterParams contains filtering parameters for product queries
type ProductFilterParams struct {
	Pagination      *pagination.PaginationParams
	Search          string
	CategoryID      *uuid.UUID
	Featured        *bool
	Bestseller      *bool
	NewArrival      *bool
	MinPrice        *int64 // cents
	MaxPrice        *int64 // cents
	InStockOnly     bool
	IncludeInactive bool // staff listings include inactive products
	SortBy          string
	SortOrder       string
}

// CategoryRepository defines the interface for category data operations
type CategoryRepository interface {
	Create(ctx context.Context, category *entity.Category) error
	GetByID(ctx context.Context, id uuid.UUID) (*entity.Category, error)
	GetBySlug(ctx context.Context, slug string) (*entity.Category, error)
	Update(ctx context.Context, category *entity.Category) error
	Delete(ctx context.Context, id uuid.UUID) error
	List(ctx context.Context) ([]entity.Category, error)
}
