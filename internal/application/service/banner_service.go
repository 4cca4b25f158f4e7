package service

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/freshbasket/storefront-api/internal/domain/entity"
	"github.com/freshbasket/storefront-api/internal/domain/repository"
	"github.com/freshbasket/storefront-api/pkg/apperror"
)

var bannerPlacements = map[string]bool{
	"home_hero":       true,
	"home_secondary":  true,
	"category_top":    true,
	"product_sidebar": true,
	"checkout":        true,
}

// BannerService handles promotional banners
type BannerService struct {
	bannerRepo repository.BannerRepository
}

// NewBannerService creates a new banner service
func NewBannerService(bannerRepo repository.BannerRepository) *BannerService {
	return &BannerService{bannerRepo: bannerRepo}
}

// CreateBannerInput represents the create banner input
type CreateBannerInput struct {
	Title          string
	Subtitle       *string
	ImageURL       string
	MobileImageURL *string
	LinkURL        *string
	LinkText       *string
	Placement      string
	SortOrder      int
	StartDate      time.Time
	EndDate        *time.Time
}

// CreateBanner creates a new banner
func (s *BannerService) CreateBanner(ctx context.Context, input *CreateBannerInput) (*entity.Banner, error) {
	if input.Title == "" {
		return nil, apperror.NewUnprocessableError("Title is required")
	}
	if input.ImageURL == "" {
		return nil, apperror.NewUnprocessableError("Image URL is required")
	}
	placement := input.Placement
	if placement == "" {
		placement = "home_hero"
	}
	if !bannerPlacements[placement] {
		return nil, apperror.NewUnprocessableError("Invalid banner placement")
	}
	if input.EndDate != nil && !input.EndDate.After(input.StartDate) {
		return nil, apperror.NewUnprocessableError("End date must be after start date")
	}

	banner := &entity.Banner{
		Title:          input.Title,
		Subtitle:       input.Subtitle,
		ImageURL:       input.ImageURL,
		MobileImageURL: input.MobileImageURL,
		LinkURL:        input.LinkURL,
		LinkText:       input.LinkText,
		Placement:      placement,
		SortOrder:      input.SortOrder,
		StartDate:      input.StartDate,
		EndDate:        input.EndDate,
		IsActive:       true,
	}

	if err := s.bannerRepo.Create(ctx, banner); err != nil {
		return nil, err
	}

	return banner, nil
}

// GetLiveBanners returns the banners currently displayable for a placement
// and records an impression for each
func (s *BannerService) GetLiveBanners(ctx context.Context, placement string) ([]entity.Banner, error) {
	if placement != "" && !bannerPlacements[placement] {
		return nil, apperror.NewUnprocessableError("Invalid banner placement")
	}

	banners, err := s.bannerRepo.ListLive(ctx, placement)
	if err != nil {
		return nil, err
	}

	// Impression tracking is best-effort
	for i := range banners {
		_ = s.bannerRepo.IncrementImpressionCount(ctx, banners[i].ID)
	}

	return banners, nil
}

// ListBanners returns all banners for staff management
func (s *BannerService) ListBanners(ctx context.Context) ([]entity.Banner, error) {
	return s.bannerRepo.ListAll(ctx)
}

// RecordClick bumps a banner's click counter
func (s *BannerService) RecordClick(ctx context.Context, id uuid.UUID) error {
	banner, err := s.bannerRepo.GetByID(ctx, id)
	if err != nil {
		return err
	}
	if banner == nil {
		return apperror.NewNotFoundError("Banner")
	}
	return s.bannerRepo.IncrementClickCount(ctx, id)
}

// UpdateBannerInput represents the update banner input
type UpdateBannerInput struct {
	ID             uuid.UUID
	Title          *string
	Subtitle       *string
	ImageURL       *string
	MobileImageURL *string
	LinkURL        *string
	LinkText       *string
	Placement      *string
	SortOrder      *int
	StartDate      *time.Time
	EndDate        *time.Time
	IsActive       *bool
}

// UpdateBanner updates an existing banner
func (s *BannerService) UpdateBanner(ctx context.Context, input *UpdateBannerInput) (*entity.Banner, error) {
	banner, err := s.bannerRepo.GetByID(ctx, input.ID)
	if err != nil {
		return nil, err
	}
	if banner == nil {
		return nil, apperror.NewNotFoundError("Banner")
	}

	if input.Title != nil {
		banner.Title = *input.Title
	}
	if input.Subtitle != nil {
		banner.Subtitle = input.Subtitle
	}
	if input.ImageURL != nil {
		banner.ImageURL = *input.ImageURL
	}
	if input.MobileImageURL != nil {
		banner.MobileImageURL = input.MobileImageURL
	}
	if input.LinkURL != nil {
		banner.LinkURL = input.LinkURL
	}
	if input.LinkText != nil {
		banner.LinkText = input.LinkText
	}
	if input.Placement != nil {
		if !bannerPlacements[*input.Placement] {
			return nil, apperror.NewUnprocessableError("Invalid banner placement")
		}
		banner.Placement = *input.Placement
	}
	if input.SortOrder != nil {
		banner.SortOrder = *input.SortOrder
	}
	if input.StartDate != nil {
		banner.StartDate = *input.StartDate
	}
	if input.EndDate != nil {
		banner.EndDate = input.EndDate
	}
	if input.IsActive != nil {
		banner.IsActive = *input.IsActive
	}

	if err := s.bannerRepo.Update(ctx, banner); err != nil {
		return nil, err
	}

	return banner, nil
}

// DeleteBanner soft-deletes a banner
func (s *BannerService) DeleteBanner(ctx context.Context, id uuid.UUID) error {
	banner, err := s.bannerRepo.GetByID(ctx, id)
	if err != nil {
		return err
	}
	if banner == nil {
		return apperror.NewNotFoundError("Banner")
	}
	return s.bannerRepo.Delete(ctx, id)
}
