package request

import (
	"time"

	"github.com/google/uuid"
)

// CreateCouponRequest represents a coupon creation request.
// DiscountValue is a whole percent for percentage coupons and a decimal
// currency amount for fixed coupons.
type CreateCouponRequest struct {
	Code                  string      `json:"code" binding:"required,min=3,max=50"`
	Description           *string     `json:"description" binding:"omitempty,max=500"`
	DiscountType          string      `json:"discount_type" binding:"required,oneof=percentage fixed"`
	DiscountValue         float64     `json:"discount_value" binding:"required,gt=0"`
	MinPurchaseAmount     float64     `json:"min_purchase_amount" binding:"min=0"`
	MaxDiscountAmount     *float64    `json:"max_discount_amount" binding:"omitempty,gt=0"`
	StartDate             time.Time   `json:"start_date" binding:"required"`
	ExpiryDate            time.Time   `json:"expiry_date" binding:"required"`
	UsageLimit            *int        `json:"usage_limit" binding:"omitempty,gt=0"`
	PerUserLimit          int         `json:"per_user_limit" binding:"omitempty,gt=0"`
	ApplicableProductIDs  []uuid.UUID `json:"applicable_product_ids"`
	ApplicableCategoryIDs []uuid.UUID `json:"applicable_category_ids"`
}

// UpdateCouponRequest represents a coupon update request
type UpdateCouponRequest struct {
	Description       *string    `json:"description" binding:"omitempty,max=500"`
	DiscountValue     *float64   `json:"discount_value" binding:"omitempty,gt=0"`
	MinPurchaseAmount *float64   `json:"min_purchase_amount" binding:"omitempty,min=0"`
	MaxDiscountAmount *float64   `json:"max_discount_amount" binding:"omitempty,gt=0"`
	StartDate         *time.Time `json:"start_date"`
	ExpiryDate        *time.Time `json:"expiry_date"`
	UsageLimit        *int       `json:"usage_limit" binding:"omitempty,gt=0"`
	PerUserLimit      *int       `json:"per_user_limit" binding:"omitempty,gt=0"`
	IsActive          *bool      `json:"is_active"`
}

// ValidateCouponRequest represents a checkout coupon validation request
type ValidateCouponRequest struct {
	Code  string            `json:"code" binding:"required"`
	Items []CartItemRequest `json:"items" binding:"required,min=1,dive"`
}
