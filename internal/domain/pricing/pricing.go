package pricing

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/freshbasket/storefront-api/internal/domain/enum"
)

// CartLine is one product/quantity entry submitted for checkout.
// Lines are supplied by the caller per request and are not persisted here.
type CartLine struct {
	ProductID uuid.UUID
	Quantity  int
}

// ProductSnapshot is the catalog state of a product read fresh at
// order-creation time. Prices and stock from the client's cart are never
// trusted; every quote re-reads them through CatalogLookup.
type ProductSnapshot struct {
	ID              uuid.UUID
	Name            string
	SKU             string
	UnitPrice       int64 // cents
	StockAvailable  int
	CategoryID      *uuid.UUID
	PrimaryImageURL *string
	Active          bool
}

// CouponSnapshot is the coupon state read at quote time
type CouponSnapshot struct {
	Code              string
	Type              enum.DiscountType
	Value             int64 // whole percent for percentage coupons, cents for fixed
	MinPurchaseAmount int64 // cents
	MaxDiscountAmount *int64
	StartDate         time.Time
	ExpiryDate        time.Time
	UsageLimit        *int
	UsageCount        int
	Active            bool

	// Scoping: when either list is non-empty, at least one cart line must match
	ApplicableProducts   []uuid.UUID
	ApplicableCategories []uuid.UUID
}

// IsValid reports whether the coupon is redeemable at the given instant
func (c *CouponSnapshot) IsValid(now time.Time) bool {
	if !c.Active {
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

// CatalogLookup supplies product snapshots to the engine.
// Implementations return (nil, nil) when the product does not exist.
type CatalogLookup interface {
	ProductSnapshot(ctx context.Context, id uuid.UUID) (*ProductSnapshot, error)
}

// CouponLookup supplies coupon snapshots to the engine.
// Implementations return (nil, nil) when the code does not exist.
type CouponLookup interface {
	CouponSnapshot(ctx context.Context, code string) (*CouponSnapshot, error)
}

// Policy holds the pricing policy constants. All monetary values are cents.
type Policy struct {
	// FreeShippingThreshold is the subtotal at or above which shipping is free.
	FreeShippingThreshold int64
	// FlatShippingCost is charged below the free-shipping threshold.
	FlatShippingCost int64
	// TaxRateBasisPoints is the flat tax applied to the subtotal (500 = 5%).
	TaxRateBasisPoints int64
	// RedemptionCapBasisPoints caps loyalty redemption as a share of the
	// subtotal (1000 = 10%).
	RedemptionCapBasisPoints int64
	// PointValue is the cent value of one loyalty point.
	PointValue int64
	// EarnDivisor is the number of cents of final total that earns one point.
	EarnDivisor int64
	// ReverseLoyaltyOnCancel controls whether cancelling an order reverses its
	// loyalty ledger effects. Off by default: points stay with the customer.
	ReverseLoyaltyOnCancel bool
}

// DefaultPolicy returns the standard storefront pricing policy:
// free shipping at 500, flat 50 below it, 5% tax, redemption capped at 10%
// of subtotal, 1 point worth 1 currency unit, 1 point earned per 100 spent.
func DefaultPolicy() Policy {
	return Policy{
		FreeShippingThreshold:    50000,
		FlatShippingCost:         5000,
		TaxRateBasisPoints:       500,
		RedemptionCapBasisPoints: 1000,
		PointValue:               100,
		EarnDivisor:              10000,
		ReverseLoyaltyOnCancel:   false,
	}
}

// QuoteRequest is a validated checkout request
type QuoteRequest struct {
	Lines          []CartLine
	CouponCode     string // empty means no coupon
	LoyaltyBalance int64  // points owned by the user right now
	RedeemPoints   bool   // caller opts in to spending points
}

// QuoteLine is one priced cart line inside a quote
type QuoteLine struct {
	ProductID   uuid.UUID
	ProductName string
	SKU         string
	ImageURL    *string
	Quantity    int
	UnitPrice   int64 // cents
	LineTotal   int64 // cents
}

// Quote is the computed, not-yet-committed pricing result for a cart.
// Invariant: Total = SubTotal - Discount - RedemptionValue + ShippingCost + Tax,
// and Total >= 0.
type Quote struct {
	Lines           []QuoteLine
	SubTotal        int64
	Discount        int64
	CouponCode      string // empty when no coupon applied
	PointsRedeemed  int64  // points
	RedemptionValue int64  // cents deducted by redemption
	PointsEarned    int64  // points awarded from the final total
	ShippingCost    int64
	Tax             int64
	Total           int64
}
