package repository

import (
	"context"

	"github.com/google/uuid"

	"github.com/freshbasket/storefront-api/internal/domain/entity"
	"github.com/freshbasket/storefront-api/pkg/pagination"
)

// ReviewRepository defines the interface for review data operations
type ReviewRepository interface {
	Create(ctx context.Context, review *entity.Review) error
	GetByID(ctx context.Context, id uuid.UUID) (*entity.Review, error)
	GetByProductAndUser(ctx context.Context, productID, userID uuid.UUID) (*entity.Review, error)
	Update(ctx context.Context, review *entity.Review) error
	Delete(ctx context.Context, id uuid.UUID) error
	ListByProduct(ctx context.Context, productID uuid.UUID, approvedOnly bool, params *pagination.PaginationParams) ([]entity.Review, int64, error)
	// RatingAggregate returns the average rating and count of approved reviews
	RatingAggregate(ctx context.Context, productID uuid.UUID) (float64, int, error)
}
