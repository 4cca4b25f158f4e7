package pricing

import (
	"context"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/freshbasket/storefront-api/internal/domain/enum"
)

// Engine computes order quotes and settlement plans. It performs no writes:
// quoting reads through the catalog and coupon lookups, and settlement
// produces a declarative plan that a transactional writer applies as a unit.
type Engine struct {
	policy  Policy
	catalog CatalogLookup
	coupons CouponLookup
	now     func() time.Time
}

// NewEngine creates a pricing engine with the given policy and lookups
func NewEngine(policy Policy, catalog CatalogLookup, coupons CouponLookup) *Engine {
	return &Engine{
		policy:  policy,
		catalog: catalog,
		coupons: coupons,
		now:     time.Now,
	}
}

// NewEngineWithClock creates an engine with a fixed clock, for tests
func NewEngineWithClock(policy Policy, catalog CatalogLookup, coupons CouponLookup, now func() time.Time) *Engine {
	e := NewEngine(policy, catalog, coupons)
	e.now = now
	return e
}

// Policy returns the engine's pricing policy
func (e *Engine) Policy() Policy {
	return e.policy
}

// Quote transforms a validated cart, optional coupon and loyalty-redemption
// request into a Quote. Product prices and stock are re-read through the
// catalog lookup; a quote either succeeds completely or fails with a typed
// error and no partial result. Quoting mutates nothing, so identical inputs
// against unchanged state produce identical quotes.
func (e *Engine) Quote(ctx context.Context, req *QuoteRequest) (*Quote, error) {
	if len(req.Lines) == 0 {
		return nil, newInvalidInput("Cart must contain at least one item")
	}
	if req.LoyaltyBalance < 0 {
		return nil, newInvalidInput("Loyalty balance cannot be negative")
	}

	// Price every line against the current catalog state
	lines := make([]QuoteLine, 0, len(req.Lines))
	snapshots := make([]*ProductSnapshot, 0, len(req.Lines))
	var subTotal int64

	for _, line := range req.Lines {
		if line.Quantity <= 0 {
			return nil, newInvalidInput("Item quantity must be positive")
		}

		product, err := e.catalog.ProductSnapshot(ctx, line.ProductID)
		if err != nil {
			return nil, err
		}
		if product == nil || !product.Active {
			return nil, newNotFound(line.ProductID.String())
		}
		if line.Quantity > product.StockAvailable {
			return nil, newOutOfStock(product.Name, line.Quantity, product.StockAvailable)
		}

		lineTotal := product.UnitPrice * int64(line.Quantity)
		subTotal += lineTotal

		lines = append(lines, QuoteLine{
			ProductID:   product.ID,
			ProductName: product.Name,
			SKU:         product.SKU,
			ImageURL:    product.PrimaryImageURL,
			Quantity:    line.Quantity,
			UnitPrice:   product.UnitPrice,
			LineTotal:   lineTotal,
		})
		snapshots = append(snapshots, product)
	}

	// Coupon discount
	var discount int64
	var couponCode string
	if code := strings.ToUpper(strings.TrimSpace(req.CouponCode)); code != "" {
		coupon, err := e.coupons.CouponSnapshot(ctx, code)
		if err != nil {
			return nil, err
		}
		if coupon == nil {
			return nil, newCouponNotFound(code)
		}
		discount, err = e.couponDiscount(coupon, subTotal, snapshots)
		if err != nil {
			return nil, err
		}
		couponCode = coupon.Code
	}

	// Loyalty redemption, capped at a share of the subtotal
	var pointsRedeemed int64
	if req.RedeemPoints && req.LoyaltyBalance > 0 {
		capPoints := subTotal * e.policy.RedemptionCapBasisPoints / 10000 / e.policy.PointValue
		pointsRedeemed = req.LoyaltyBalance
		if capPoints < pointsRedeemed {
			pointsRedeemed = capPoints
		}
	}
	redemptionValue := pointsRedeemed * e.policy.PointValue

	// Shipping and tax
	var shippingCost int64
	if subTotal < e.policy.FreeShippingThreshold {
		shippingCost = e.policy.FlatShippingCost
	}
	tax := subTotal * e.policy.TaxRateBasisPoints / 10000

	total := subTotal - discount - redemptionValue + shippingCost + tax
	if total < 0 {
		// Should not occur given the clamps above, checked defensively
		return nil, newInvalidTotal(total)
	}

	// Points are earned from the final total, so redeeming points reduces
	// the points earned on the same order
	pointsEarned := total / e.policy.EarnDivisor

	return &Quote{
		Lines:           lines,
		SubTotal:        subTotal,
		Discount:        discount,
		CouponCode:      couponCode,
		PointsRedeemed:  pointsRedeemed,
		RedemptionValue: redemptionValue,
		PointsEarned:    pointsEarned,
		ShippingCost:    shippingCost,
		Tax:             tax,
		Total:           total,
	}, nil
}

// couponDiscount validates the coupon against the cart and returns the
// discount in cents, clamped so it never exceeds the subtotal.
func (e *Engine) couponDiscount(coupon *CouponSnapshot, subTotal int64, products []*ProductSnapshot) (int64, error) {
	if !coupon.IsValid(e.now()) {
		return 0, newCouponInvalid(coupon.Code)
	}
	if subTotal < coupon.MinPurchaseAmount {
		return 0, newCouponBelowMinimum(coupon.Code, coupon.MinPurchaseAmount)
	}

	if len(coupon.ApplicableProducts) > 0 || len(coupon.ApplicableCategories) > 0 {
		if !couponApplies(coupon, products) {
			return 0, newCouponNotApplicable(coupon.Code)
		}
	}

	var discount int64
	switch coupon.Type {
	case enum.DiscountTypeFixed:
		discount = coupon.Value
	default: // percentage
		discount = subTotal * coupon.Value / 100
		if coupon.MaxDiscountAmount != nil && discount > *coupon.MaxDiscountAmount {
			discount = *coupon.MaxDiscountAmount
		}
	}

	if discount > subTotal {
		discount = subTotal
	}
	if discount < 0 {
		discount = 0
	}
	return discount, nil
}

// couponApplies reports whether at least one cart product matches the
// coupon's product or category scope
func couponApplies(coupon *CouponSnapshot, products []*ProductSnapshot) bool {
	productSet := make(map[uuid.UUID]struct{}, len(coupon.ApplicableProducts))
	for _, id := range coupon.ApplicableProducts {
		productSet[id] = struct{}{}
	}
	categorySet := make(map[uuid.UUID]struct{}, len(coupon.ApplicableCategories))
	for _, id := range coupon.ApplicableCategories {
		categorySet[id] = struct{}{}
	}

	for _, p := range products {
		if _, ok := productSet[p.ID]; ok {
			return true
		}
		if p.CategoryID != nil {
			if _, ok := categorySet[*p.CategoryID]; ok {
				return true
			}
		}
	}
	return false
}
