package repository

import (
	"context"

	"github.com/google/uuid"

	"github.com/freshbasket/storefront-api/internal/domain/entity"
)

// WishlistRepository defines the interface for wishlist data operations
type WishlistRepository interface {
	Add(ctx context.Context, item *entity.WishlistItem) error
	Remove(ctx context.Context, userID, productID uuid.UUID) error
	Exists(ctx context.Context, userID, productID uuid.UUID) (bool, error)
	Count(ctx context.Context, userID uuid.UUID) (int64, error)
	// ListProducts returns the active products on the user's wishlist,
	// most recently added first
	ListProducts(ctx context.Context, userID uuid.UUID) ([]entity.Product, error)
}
