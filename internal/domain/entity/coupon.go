package entity

import (
	"encoding/json"
	"strings"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/freshbasket/storefront-api/internal/domain/enum"
)

// Coupon represents a discount code redeemable at checkout
type Coupon struct {
	ID          uuid.UUID         `gorm:"type:uuid;primary_key" json:"id"`
	Code        string            `gorm:"size:50;unique;not null" json:"code"`
	Description *string           `gorm:"size:500" json:"description,omitempty"`
	Type        enum.DiscountType `gorm:"default:0" json:"discount_type"`
	// Value is a whole percent for percentage coupons and cents for fixed coupons.
	Value             int64          `gorm:"not null" json:"-"`
	MinPurchaseAmount int64          `gorm:"default:0" json:"-"` // Stored in cents
	MaxDiscountAmount *int64         `json:"-"`                  // Stored in cents
	StartDate         time.Time      `gorm:"not null" json:"start_date"`
	ExpiryDate        time.Time      `gorm:"not null" json:"expiry_date"`
	UsageLimit        *int           `json:"usage_limit,omitempty"`
	UsageCount        int            `gorm:"default:0" json:"usage_count"`
	PerUserLimit      int            `gorm:"default:1" json:"per_user_limit"`
	IsActive          bool           `gorm:"default:true" json:"is_active"`
	CreatedAt         time.Time      `json:"created_at"`
	UpdatedAt         time.Time      `json:"updated_at"`
	DeletedAt         gorm.DeletedAt `gorm:"index" json:"-"`

	// Scoping: empty means the coupon applies to the whole catalog
	ApplicableProducts   []Product  `gorm:"many2many:coupon_applicable_products" json:"applicable_products,omitempty"`
	ApplicableCategories []Category `gorm:"many2many:coupon_applicable_categories" json:"applicable_categories,omitempty"`
}

// BeforeCreate generates a UUID and normalizes the code before creating a coupon
func (c *Coupon) BeforeCreate(tx *gorm.DB) error {
	if c.ID == uuid.Nil {
		c.ID = uuid.New()
	}
	c.Code = strings.ToUpper(strings.TrimSpace(c.Code))
	return nil
}

// TableName returns the table name for the Coupon model
func (Coupon) TableName() string {
	return "coupons"
}

// IsValid reports whether the coupon is redeemable at the given instant.
// A coupon is valid when it is active, inside its validity window, and
// has usage headroom.
func (c *Coupon) IsValid(now time.Time) bool {
	if !c.IsActive {
		return false
	}
	if now.Before(c.StartDate) || now.After(c.ExpiryDate) {
		return false
	}
	if c.UsageLimit != nil && c.UsageCount >= *c.UsageLimit {
		return false
	}
	return true
}

// MarshalJSON custom marshaler to convert cent amounts to decimals for API responses
func (c Coupon) MarshalJSON() ([]byte, error) {
	type Alias Coupon
	var maxDiscount *float64
	if c.MaxDiscountAmount != nil {
		v := float64(*c.MaxDiscountAmount) / 100
		maxDiscount = &v
	}
	value := float64(c.Value)
	if c.Type == enum.DiscountTypeFixed {
		value = float64(c.Value) / 100
	}
	return json.Marshal(&struct {
		Alias
		Value             float64  `json:"discount_value"`
		MinPurchaseAmount float64  `json:"min_purchase_amount"`
		MaxDiscountAmount *float64 `json:"max_discount_amount,omitempty"`
	}{
		Alias:             Alias(c),
		Value:             value,
		MinPurchaseAmount: float64(c.MinPurchaseAmount) / 100,
		MaxDiscountAmount: maxDiscount,
	})
}
