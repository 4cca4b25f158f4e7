package service

import (
	"context"

	"github.com/google/uuid"

	"github.com/freshbasket/storefront-api/internal/domain/entity"
	"github.com/freshbasket/storefront-api/internal/domain/repository"
	"github.com/freshbasket/storefront-api/pkg/apperror"
)

// WishlistService manages the products a customer has saved for later
type WishlistService struct {
	wishlistRepo repository.WishlistRepository
	productRepo  repository.ProductRepository
}

// NewWishlistService creates a new wishlist service
func NewWishlistService(wishlistRepo repository.WishlistRepository, productRepo repository.ProductRepository) *WishlistService {
	return &WishlistService{
		wishlistRepo: wishlistRepo,
		productRepo:  productRepo,
	}
}

// GetWishlist returns the active products on the user's wishlist
func (s *WishlistService) GetWishlist(ctx context.Context, userID uuid.UUID) ([]entity.Product, error) {
	return s.wishlistRepo.ListProducts(ctx, userID)
}

// AddToWishlist saves a product to the user's wishlist and returns the new
// wishlist size. Adding a product twice is rejected.
func (s *WishlistService) AddToWishlist(ctx context.Context, userID, productID uuid.UUID) (int64, error) {
	product, err := s.productRepo.GetByID(ctx, productID)
	if err != nil {
		return 0, err
	}
	if product == nil {
		return 0, apperror.NewNotFoundError("Product")
	}

	exists, err := s.wishlistRepo.Exists(ctx, userID, productID)
	if err != nil {
		return 0, err
	}
	if exists {
		return 0, apperror.NewBadRequestError("Product already in wishlist")
	}

	if err := s.wishlistRepo.Add(ctx, &entity.WishlistItem{UserID: userID, ProductID: productID}); err != nil {
		return 0, err
	}

	return s.wishlistRepo.Count(ctx, userID)
}

// RemoveFromWishlist drops a product from the user's wishlist and returns the
// remaining wishlist size. Removing a product that is not on the wishlist is
// a no-op.
func (s *WishlistService) RemoveFromWishlist(ctx context.Context, userID, productID uuid.UUID) (int64, error) {
	if err := s.wishlistRepo.Remove(ctx, userID, productID); err != nil {
		return 0, err
	}
	return s.wishlistRepo.Count(ctx, userID)
}
