package service

import (
	"context"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/freshbasket/storefront-api/internal/domain/entity"
	"github.com/freshbasket/storefront-api/internal/domain/enum"
	"github.com/freshbasket/storefront-api/internal/domain/pricing"
	"github.com/freshbasket/storefront-api/internal/domain/repository"
	"github.com/freshbasket/storefront-api/pkg/apperror"
)

// CouponService handles coupon management and checkout validation
type CouponService struct {
	couponRepo  repository.CouponRepository
	productRepo repository.ProductRepository
	engine      *pricing.Engine
}

// NewCouponService creates a new coupon service
func NewCouponService(couponRepo repository.CouponRepository, productRepo repository.ProductRepository, engine *pricing.Engine) *CouponService {
	return &CouponService{
		couponRepo:  couponRepo,
		productRepo: productRepo,
		engine:      engine,
	}
}

// CreateCouponInput represents the create coupon input
type CreateCouponInput struct {
	Code                  string
	Description           *string
	Type                  enum.DiscountType
	Value                 int64 // whole percent or cents depending on type
	MinPurchaseAmount     int64 // cents
	MaxDiscountAmount     *int64
	StartDate             time.Time
	ExpiryDate            time.Time
	UsageLimit            *int
	PerUserLimit          int
	ApplicableProductIDs  []uuid.UUID
	ApplicableCategoryIDs []uuid.UUID
}

// CreateCoupon creates a new coupon
func (s *CouponService) CreateCoupon(ctx context.Context, input *CreateCouponInput) (*entity.Coupon, error) {
	code := strings.ToUpper(strings.TrimSpace(input.Code))
	if code == "" {
		return nil, apperror.NewUnprocessableError("Coupon code is required")
	}
	if input.Type == enum.DiscountTypePercentage && (input.Value <= 0 || input.Value > 100) {
		return nil, apperror.NewUnprocessableError("Percentage value must be between 1 and 100")
	}
	if input.Type == enum.DiscountTypeFixed && input.Value <= 0 {
		return nil, apperror.NewUnprocessableError("Fixed discount must be greater than zero")
	}
	if !input.ExpiryDate.After(input.StartDate) {
		return nil, apperror.NewUnprocessableError("Expiry date must be after start date")
	}

	existing, err := s.couponRepo.GetByCode(ctx, code)
	if err != nil {
		return nil, err
	}
	if existing != nil {
		return nil, apperror.NewConflictError("A coupon with this code already exists")
	}

	coupon := &entity.Coupon{
		Code:              code,
		Description:       input.Description,
		Type:              input.Type,
		Value:             input.Value,
		MinPurchaseAmount: input.MinPurchaseAmount,
		MaxDiscountAmount: input.MaxDiscountAmount,
		StartDate:         input.StartDate,
		ExpiryDate:        input.ExpiryDate,
		UsageLimit:        input.UsageLimit,
		PerUserLimit:      input.PerUserLimit,
		IsActive:          true,
	}
	if coupon.PerUserLimit <= 0 {
		coupon.PerUserLimit = 1
	}

	if len(input.ApplicableProductIDs) > 0 {
		products, err := s.productRepo.GetByIDs(ctx, input.ApplicableProductIDs)
		if err != nil {
			return nil, err
		}
		if len(products) != len(input.ApplicableProductIDs) {
			return nil, apperror.NewUnprocessableError("One or more applicable products do not exist")
		}
		coupon.ApplicableProducts = products
	}
	for _, categoryID := range input.ApplicableCategoryIDs {
		coupon.ApplicableCategories = append(coupon.ApplicableCategories, entity.Category{ID: categoryID})
	}

	if err := s.couponRepo.Create(ctx, coupon); err != nil {
		return nil, err
	}

	return coupon, nil
}

// GetCoupon retrieves a coupon by ID
func (s *CouponService) GetCoupon(ctx context.Context, id uuid.UUID) (*entity.Coupon, error) {
	coupon, err := s.couponRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if coupon == nil {
		return nil, apperror.NewNotFoundError("Coupon")
	}
	return coupon, nil
}

// ListCoupons lists coupons, optionally restricted to active ones
func (s *CouponService) ListCoupons(ctx context.Context, activeOnly bool) ([]entity.Coupon, error) {
	return s.couponRepo.List(ctx, activeOnly)
}

// UpdateCouponInput represents the update coupon input
type UpdateCouponInput struct {
	ID                uuid.UUID
	Description       *string
	Value             *int64
	MinPurchaseAmount *int64
	MaxDiscountAmount *int64
	StartDate         *time.Time
	ExpiryDate        *time.Time
	UsageLimit        *int
	PerUserLimit      *int
	IsActive          *bool
}

// UpdateCoupon updates an existing coupon. The code and type are immutable
// once issued.
func (s *CouponService) UpdateCoupon(ctx context.Context, input *UpdateCouponInput) (*entity.Coupon, error) {
	coupon, err := s.couponRepo.GetByID(ctx, input.ID)
	if err != nil {
		return nil, err
	}
	if coupon == nil {
		return nil, apperror.NewNotFoundError("Coupon")
	}

	if input.Description != nil {
		coupon.Description = input.Description
	}
	if input.Value != nil {
		if coupon.Type == enum.DiscountTypePercentage && (*input.Value <= 0 || *input.Value > 100) {
			return nil, apperror.NewUnprocessableError("Percentage value must be between 1 and 100")
		}
		if coupon.Type == enum.DiscountTypeFixed && *input.Value <= 0 {
			return nil, apperror.NewUnprocessableError("Fixed discount must be greater than zero")
		}
		coupon.Value = *input.Value
	}
	if input.MinPurchaseAmount != nil {
		coupon.MinPurchaseAmount = *input.MinPurchaseAmount
	}
	if input.MaxDiscountAmount != nil {
		coupon.MaxDiscountAmount = input.MaxDiscountAmount
	}
	if input.StartDate != nil {
		coupon.StartDate = *input.StartDate
	}
	if input.ExpiryDate != nil {
		coupon.ExpiryDate = *input.ExpiryDate
	}
	if !coupon.ExpiryDate.After(coupon.StartDate) {
		return nil, apperror.NewUnprocessableError("Expiry date must be after start date")
	}
	if input.UsageLimit != nil {
		coupon.UsageLimit = input.UsageLimit
	}
	if input.PerUserLimit != nil && *input.PerUserLimit > 0 {
		coupon.PerUserLimit = *input.PerUserLimit
	}
	if input.IsActive != nil {
		coupon.IsActive = *input.IsActive
	}

	if err := s.couponRepo.Update(ctx, coupon); err != nil {
		return nil, err
	}

	return coupon, nil
}

// DeleteCoupon soft-deletes a coupon
func (s *CouponService) DeleteCoupon(ctx context.Context, id uuid.UUID) error {
	coupon, err := s.couponRepo.GetByID(ctx, id)
	if err != nil {
		return err
	}
	if coupon == nil {
		return apperror.NewNotFoundError("Coupon")
	}
	return s.couponRepo.Delete(ctx, id)
}

// ValidateCoupon prices the given cart with the coupon applied and reports
// the resulting discount. Returns the engine's reason when the coupon cannot
// apply.
func (s *CouponService) ValidateCoupon(ctx context.Context, code string, lines []pricing.CartLine) (*pricing.Quote, error) {
	if strings.TrimSpace(code) == "" {
		return nil, apperror.NewUnprocessableError("Coupon code is required")
	}
	if len(lines) == 0 {
		return nil, apperror.NewUnprocessableError("Cart is empty")
	}

	quote, err := s.engine.Quote(ctx, &pricing.QuoteRequest{
		Lines:      lines,
		CouponCode: code,
	})
	if err != nil {
		return nil, err
	}
	return quote, nil
}
