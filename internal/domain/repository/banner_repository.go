package repository

import (
	"context"

	"github.com/google/uuid"

	"github.com/freshbasket/storefront-api/internal/domain/entity"
)

// BannerRepository defines the interface for banner data operations
type BannerRepository interface {
	Create(ctx context.Context, banner *entity.Banner) error
	GetByID(ctx context.Context, id uuid.UUID) (*entity.Banner, error)
	Update(ctx context.Context, banner *entity.Banner) error
	Delete(ctx context.Context, id uuid.UUID) error
	// ListLive returns banners currently displayable for a placement, ordered
	// by sort order. An empty placement returns all live banners.
	ListLive(ctx context.Context, placement string) ([]entity.Banner, error)
	ListAll(ctx context.Context) ([]entity.Banner, error)
	IncrementClickCount(ctx context.Context, id uuid.UUID) error
	IncrementImpressionCount(ctx context.Context, id uuid.UUID) error
}
