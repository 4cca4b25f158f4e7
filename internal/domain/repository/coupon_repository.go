package repository

import (
	"context"

	"github.com/google/uuid"

	"github.com/freshbasket/storefront-api/internal/domain/entity"
)

// CouponRepository defines the interface for coupon data operations
type CouponRepository interface {
	Create(ctx context.Context, coupon *entity.Coupon) error
	GetByID(ctx context.Context, id uuid.UUID) (*entity.Coupon, error)
	// GetByCode resolves a coupon by its (upper-cased) code with scoping preloaded
	GetByCode(ctx context.Context, code string) (*entity.Coupon, error)
	Update(ctx context.Context, coupon *entity.Coupon) error
	Delete(ctx context.Context, id uuid.UUID) error
	List(ctx context.Context, activeOnly bool) ([]entity.Coupon, error)
	// IncrementUsage bumps the usage counter after a settlement applies the coupon
	IncrementUsage(ctx context.Context, code string) error
}
