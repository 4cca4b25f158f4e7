package repository

import (
	"context"
	"errors"
	"strings"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/freshbasket/storefront-api/internal/domain/entity"
	domainRepo "github.com/freshbasket/storefront-api/internal/domain/repository"
)

type couponRepository struct {
	db *gorm.DB
}

// NewCouponRepository creates a new coupon repository
func NewCouponRepository(db *gorm.DB) domainRepo.CouponRepository {
	return &couponRepository{db: db}
}

func (r *couponRepository) Create(ctx context.Context, coupon *entity.Coupon) error {
	return r.db.WithContext(ctx).Create(coupon).Error
}

func (r *couponRepository) GetByID(ctx context.Context, id uuid.UUID) (*entity.Coupon, error) {
	var coupon entity.Coupon
	err := r.db.WithContext(ctx).
		Preload("ApplicableProducts").
		Preload("ApplicableCategories").
		First(&coupon, "id = ?", id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	return &coupon, err
}

func (r *couponRepository) GetByCode(ctx context.Context, code string) (*entity.Coupon, error) {
	var coupon entity.Coupon
	err := r.db.WithContext(ctx).
		Preload("ApplicableProducts").
		Preload("ApplicableCategories").
		First(&coupon, "code = ?", strings.ToUpper(strings.TrimSpace(code))).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	return &coupon, err
}

func (r *couponRepository) Update(ctx context.Context, coupon *entity.Coupon) error {
	return r.db.WithContext(ctx).Save(coupon).Error
}

func (r *couponRepository) Delete(ctx context.Context, id uuid.UUID) error {
	return r.db.WithContext(ctx).Delete(&entity.Coupon{}, "id = ?", id).Error
}

func (r *couponRepository) List(ctx context.Context, activeOnly bool) ([]entity.Coupon, error) {
	var coupons []entity.Coupon
	query := r.db.WithContext(ctx).Model(&entity.Coupon{})
	if activeOnly {
		query = query.Where("is_active = ?", true)
	}
	err := query.Order("created_at DESC").Find(&coupons).Error
	return coupons, err
}

func (r *couponRepository) IncrementUsage(ctx context.Context, code string) error {
	return r.db.WithContext(ctx).Model(&entity.Coupon{}).
		Where("code = ?", strings.ToUpper(strings.TrimSpace(code))).
		UpdateColumn("usage_count", gorm.Expr("usage_count + 1")).Error
}
