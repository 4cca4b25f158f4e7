package repository

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/freshbasket/storefront-api/internal/domain/entity"
	domainRepo "github.com/freshbasket/storefront-api/internal/domain/repository"
)

type bannerRepository struct {
	db *gorm.DB
}

// NewBannerRepository creates a new banner repository
func NewBannerRepository(db *gorm.DB) domainRepo.BannerRepository {
	return &bannerRepository{db: db}
}

func (r *bannerRepository) Create(ctx context.Context, banner *entity.Banner) error {
	return r.db.WithContext(ctx).Create(banner).Error
}

func (r *bannerRepository) GetByID(ctx context.Context, id uuid.UUID) (*entity.Banner, error) {
	var banner entity.Banner
	err := r.db.WithContext(ctx).First(&banner, "id = ?", id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	return &banner, err
}

func (r *bannerRepository) Update(ctx context.Context, banner *entity.Banner) error {
	return r.db.WithContext(ctx).Save(banner).Error
}

func (r *bannerRepository) Delete(ctx context.Context, id uuid.UUID) error {
	return r.db.WithContext(ctx).Delete(&entity.Banner{}, "id = ?", id).Error
}

func (r *bannerRepository) ListLive(ctx context.Context, placement string) ([]entity.Banner, error) {
	now := time.Now()
	query := r.db.WithContext(ctx).
		Where("is_active = ? AND start_date <= ? AND (end_date IS NULL OR end_date >= ?)", true, now, now)

	if placement != "" {
		query = query.Where("placement = ?", placement)
	}

	var banners []entity.Banner
	err := query.Order("sort_order ASC, created_at DESC").Find(&banners).Error
	return banners, err
}

func (r *bannerRepository) ListAll(ctx context.Context) ([]entity.Banner, error) {
	var banners []entity.Banner
	err := r.db.WithContext(ctx).
		Order("placement ASC, sort_order ASC").
		Find(&banners).Error
	return banners, err
}

func (r *bannerRepository) IncrementClickCount(ctx context.Context, id uuid.UUID) error {
	return r.db.WithContext(ctx).Model(&entity.Banner{}).
		Where("id = ?", id).
		UpdateColumn("click_count", gorm.Expr("click_count + 1")).Error
}

func (r *bannerRepository) IncrementImpressionCount(ctx context.Context, id uuid.UUID) error {
	return r.db.WithContext(ctx).Model(&entity.Banner{}).
		Where("id = ?", id).
		UpdateColumn("impression_count", gorm.Expr("impression_count + 1")).Error
}
