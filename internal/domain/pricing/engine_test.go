package pricing

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/freshbasket/storefront-api/internal/domain/enum"
)

// fakeCatalog implements CatalogLookup for testing
type fakeCatalog struct {
	products map[uuid.UUID]*ProductSnapshot
}

func (f *fakeCatalog) ProductSnapshot(_ context.Context, id uuid.UUID) (*ProductSnapshot, error) {
	return f.products[id], nil
}

// fakeCoupons implements CouponLookup for testing
type fakeCoupons struct {
	coupons map[string]*CouponSnapshot
}

func (f *fakeCoupons) CouponSnapshot(_ context.Context, code string) (*CouponSnapshot, error) {
	return f.coupons[code], nil
}

var testNow = time.Date(2026, 3, 15, 12, 0, 0, 0, time.UTC)

func newTestEngine(products map[uuid.UUID]*ProductSnapshot, coupons map[string]*CouponSnapshot) *Engine {
	if coupons == nil {
		coupons = map[string]*CouponSnapshot{}
	}
	return NewEngineWithClock(
		DefaultPolicy(),
		&fakeCatalog{products: products},
		&fakeCoupons{coupons: coupons},
		func() time.Time { return testNow },
	)
}

func product(priceCents int64, stock int) *ProductSnapshot {
	return &ProductSnapshot{
		ID:             uuid.New(),
		Name:           "Organic Almonds",
		SKU:            "GR-ORG-TEST01",
		UnitPrice:      priceCents,
		StockAvailable: stock,
		Active:         true,
	}
}

func windowCoupon(code string, typ enum.DiscountType, value int64) *CouponSnapshot {
	return &CouponSnapshot{
		Code:       code,
		Type:       typ,
		Value:      value,
		StartDate:  testNow.Add(-24 * time.Hour),
		ExpiryDate: testNow.Add(24 * time.Hour),
		Active:     true,
	}
}

func TestQuote_FreeShippingAboveThreshold(t *testing.T) {
	p := product(100000, 10) // 1000.00
	engine := newTestEngine(map[uuid.UUID]*ProductSnapshot{p.ID: p}, nil)

	quote, err := engine.Quote(context.Background(), &QuoteRequest{
		Lines: []CartLine{{ProductID: p.ID, Quantity: 1}},
	})

	require.NoError(t, err)
	assert.Equal(t, int64(100000), quote.SubTotal)
	assert.Equal(t, int64(0), quote.Discount)
	assert.Equal(t, int64(0), quote.ShippingCost)
	assert.Equal(t, int64(5000), quote.Tax)
	assert.Equal(t, int64(105000), quote.Total)
}

func TestQuote_FlatShippingBelowThreshold(t *testing.T) {
	p := product(40000, 5) // 400.00
	engine := newTestEngine(map[uuid.UUID]*ProductSnapshot{p.ID: p}, nil)

	quote, err := engine.Quote(context.Background(), &QuoteRequest{
		Lines: []CartLine{{ProductID: p.ID, Quantity: 1}},
	})

	require.NoError(t, err)
	assert.Equal(t, int64(40000), quote.SubTotal)
	assert.Equal(t, int64(5000), quote.ShippingCost)
	assert.Equal(t, int64(2000), quote.Tax)
	assert.Equal(t, int64(47000), quote.Total)
}

func TestQuote_PercentageCouponWithMaxClamp(t *testing.T) {
	p := product(100000, 10)
	maxDiscount := int64(25000)
	coupon := windowCoupon("WELCOME25", enum.DiscountTypePercentage, 25)
	coupon.MinPurchaseAmount = 50000
	coupon.MaxDiscountAmount = &maxDiscount

	engine := newTestEngine(
		map[uuid.UUID]*ProductSnapshot{p.ID: p},
		map[string]*CouponSnapshot{"WELCOME25": coupon},
	)

	quote, err := engine.Quote(context.Background(), &QuoteRequest{
		Lines:      []CartLine{{ProductID: p.ID, Quantity: 1}},
		CouponCode: "welcome25", // codes normalize to upper case
	})

	require.NoError(t, err)
	assert.Equal(t, int64(25000), quote.Discount)
	assert.Equal(t, int64(0), quote.ShippingCost)
	assert.Equal(t, int64(5000), quote.Tax)
	assert.Equal(t, int64(80000), quote.Total)
	assert.Equal(t, "WELCOME25", quote.CouponCode)
}

func TestQuote_LoyaltyRedemptionCappedAtTenPercent(t *testing.T) {
	p := product(100000, 10)
	engine := newTestEngine(map[uuid.UUID]*ProductSnapshot{p.ID: p}, nil)

	quote, err := engine.Quote(context.Background(), &QuoteRequest{
		Lines:          []CartLine{{ProductID: p.ID, Quantity: 1}},
		LoyaltyBalance: 500,
		RedeemPoints:   true,
	})

	require.NoError(t, err)
	assert.Equal(t, int64(100), quote.PointsRedeemed)
	assert.Equal(t, int64(10000), quote.RedemptionValue)
	assert.Equal(t, int64(95000), quote.Total)
	// Earning computes from the post-redemption total
	assert.Equal(t, int64(9), quote.PointsEarned)
}

func TestQuote_RedemptionLimitedByBalance(t *testing.T) {
	p := product(100000, 10)
	engine := newTestEngine(map[uuid.UUID]*ProductSnapshot{p.ID: p}, nil)

	quote, err := engine.Quote(context.Background(), &QuoteRequest{
		Lines:          []CartLine{{ProductID: p.ID, Quantity: 1}},
		LoyaltyBalance: 30,
		RedeemPoints:   true,
	})

	require.NoError(t, err)
	assert.Equal(t, int64(30), quote.PointsRedeemed)
	assert.LessOrEqual(t, quote.PointsRedeemed, int64(30))
}

func TestQuote_NoRedemptionWithoutOptIn(t *testing.T) {
	p := product(100000, 10)
	engine := newTestEngine(map[uuid.UUID]*ProductSnapshot{p.ID: p}, nil)

	quote, err := engine.Quote(context.Background(), &QuoteRequest{
		Lines:          []CartLine{{ProductID: p.ID, Quantity: 1}},
		LoyaltyBalance: 500,
		RedeemPoints:   false,
	})

	require.NoError(t, err)
	assert.Equal(t, int64(0), quote.PointsRedeemed)
	assert.Equal(t, int64(0), quote.RedemptionValue)
}

func TestQuote_OutOfStock(t *testing.T) {
	p := product(10000, 3)
	engine := newTestEngine(map[uuid.UUID]*ProductSnapshot{p.ID: p}, nil)

	_, err := engine.Quote(context.Background(), &QuoteRequest{
		Lines: []CartLine{{ProductID: p.ID, Quantity: 5}},
	})

	require.Error(t, err)
	assert.True(t, IsCode(err, CodeOutOfStock))
}

func TestQuote_MissingProduct(t *testing.T) {
	engine := newTestEngine(map[uuid.UUID]*ProductSnapshot{}, nil)

	_, err := engine.Quote(context.Background(), &QuoteRequest{
		Lines: []CartLine{{ProductID: uuid.New(), Quantity: 1}},
	})

	require.Error(t, err)
	assert.True(t, IsCode(err, CodeNotFound))
}

func TestQuote_InactiveProduct(t *testing.T) {
	p := product(10000, 3)
	p.Active = false
	engine := newTestEngine(map[uuid.UUID]*ProductSnapshot{p.ID: p}, nil)

	_, err := engine.Quote(context.Background(), &QuoteRequest{
		Lines: []CartLine{{ProductID: p.ID, Quantity: 1}},
	})

	require.Error(t, err)
	assert.True(t, IsCode(err, CodeNotFound))
}

func TestQuote_CouponBelowMinimum(t *testing.T) {
	p := product(90000, 10) // 900.00
	coupon := windowCoupon("FLAT100", enum.DiscountTypeFixed, 10000)
	coupon.MinPurchaseAmount = 100000

	engine := newTestEngine(
		map[uuid.UUID]*ProductSnapshot{p.ID: p},
		map[string]*CouponSnapshot{"FLAT100": coupon},
	)

	_, err := engine.Quote(context.Background(), &QuoteRequest{
		Lines:      []CartLine{{ProductID: p.ID, Quantity: 1}},
		CouponCode: "FLAT100",
	})

	require.Error(t, err)
	assert.True(t, IsCode(err, CodeCouponBelowMinimum))
}

func TestQuote_CouponExpired(t *testing.T) {
	p := product(100000, 10)
	coupon := windowCoupon("OLD", enum.DiscountTypeFixed, 5000)
	coupon.ExpiryDate = testNow.Add(-time.Hour)

	engine := newTestEngine(
		map[uuid.UUID]*ProductSnapshot{p.ID: p},
		map[string]*CouponSnapshot{"OLD": coupon},
	)

	_, err := engine.Quote(context.Background(), &QuoteRequest{
		Lines:      []CartLine{{ProductID: p.ID, Quantity: 1}},
		CouponCode: "OLD",
	})

	require.Error(t, err)
	assert.True(t, IsCode(err, CodeCouponInvalid))
}

func TestQuote_CouponUsageExhausted(t *testing.T) {
	p := product(100000, 10)
	limit := 5
	coupon := windowCoupon("MAXED", enum.DiscountTypeFixed, 5000)
	coupon.UsageLimit = &limit
	coupon.UsageCount = 5

	engine := newTestEngine(
		map[uuid.UUID]*ProductSnapshot{p.ID: p},
		map[string]*CouponSnapshot{"MAXED": coupon},
	)

	_, err := engine.Quote(context.Background(), &QuoteRequest{
		Lines:      []CartLine{{ProductID: p.ID, Quantity: 1}},
		CouponCode: "MAXED",
	})

	require.Error(t, err)
	assert.True(t, IsCode(err, CodeCouponInvalid))
}

func TestQuote_UnknownCouponCode(t *testing.T) {
	p := product(100000, 10)
	engine := newTestEngine(map[uuid.UUID]*ProductSnapshot{p.ID: p}, nil)

	_, err := engine.Quote(context.Background(), &QuoteRequest{
		Lines:      []CartLine{{ProductID: p.ID, Quantity: 1}},
		CouponCode: "NOPE",
	})

	require.Error(t, err)
	assert.True(t, IsCode(err, CodeNotFound))
}

func TestQuote_CouponScopedToOtherProducts(t *testing.T) {
	p := product(100000, 10)
	coupon := windowCoupon("SCOPED", enum.DiscountTypeFixed, 5000)
	coupon.ApplicableProducts = []uuid.UUID{uuid.New()}

	engine := newTestEngine(
		map[uuid.UUID]*ProductSnapshot{p.ID: p},
		map[string]*CouponSnapshot{"SCOPED": coupon},
	)

	_, err := engine.Quote(context.Background(), &QuoteRequest{
		Lines:      []CartLine{{ProductID: p.ID, Quantity: 1}},
		CouponCode: "SCOPED",
	})

	require.Error(t, err)
	assert.True(t, IsCode(err, CodeCouponNotApplicable))
}

func TestQuote_CouponScopedByCategoryMatches(t *testing.T) {
	categoryID := uuid.New()
	p := product(100000, 10)
	p.CategoryID = &categoryID
	coupon := windowCoupon("CATEGORY", enum.DiscountTypeFixed, 5000)
	coupon.ApplicableCategories = []uuid.UUID{categoryID}

	engine := newTestEngine(
		map[uuid.UUID]*ProductSnapshot{p.ID: p},
		map[string]*CouponSnapshot{"CATEGORY": coupon},
	)

	quote, err := engine.Quote(context.Background(), &QuoteRequest{
		Lines:      []CartLine{{ProductID: p.ID, Quantity: 1}},
		CouponCode: "CATEGORY",
	})

	require.NoError(t, err)
	assert.Equal(t, int64(5000), quote.Discount)
}

func TestQuote_FixedDiscountNeverExceedsSubtotal(t *testing.T) {
	p := product(3000, 10) // 30.00
	coupon := windowCoupon("BIG", enum.DiscountTypeFixed, 10000)

	engine := newTestEngine(
		map[uuid.UUID]*ProductSnapshot{p.ID: p},
		map[string]*CouponSnapshot{"BIG": coupon},
	)

	quote, err := engine.Quote(context.Background(), &QuoteRequest{
		Lines:      []CartLine{{ProductID: p.ID, Quantity: 1}},
		CouponCode: "BIG",
	})

	require.NoError(t, err)
	assert.Equal(t, quote.SubTotal, quote.Discount)
	assert.GreaterOrEqual(t, quote.Total, int64(0))
}

func TestQuote_SubtotalIsExactLineSum(t *testing.T) {
	p1 := product(33333, 10)
	p2 := product(10001, 10)
	engine := newTestEngine(map[uuid.UUID]*ProductSnapshot{p1.ID: p1, p2.ID: p2}, nil)

	quote, err := engine.Quote(context.Background(), &QuoteRequest{
		Lines: []CartLine{
			{ProductID: p1.ID, Quantity: 3},
			{ProductID: p2.ID, Quantity: 7},
		},
	})

	require.NoError(t, err)
	var sum int64
	for _, line := range quote.Lines {
		assert.Equal(t, line.UnitPrice*int64(line.Quantity), line.LineTotal)
		sum += line.LineTotal
	}
	assert.Equal(t, sum, quote.SubTotal)
	assert.Equal(t, quote.SubTotal-quote.Discount-quote.RedemptionValue+quote.ShippingCost+quote.Tax, quote.Total)
}

func TestQuote_Idempotent(t *testing.T) {
	p := product(55500, 10)
	coupon := windowCoupon("TEN", enum.DiscountTypePercentage, 10)
	engine := newTestEngine(
		map[uuid.UUID]*ProductSnapshot{p.ID: p},
		map[string]*CouponSnapshot{"TEN": coupon},
	)

	req := &QuoteRequest{
		Lines:          []CartLine{{ProductID: p.ID, Quantity: 2}},
		CouponCode:     "TEN",
		LoyaltyBalance: 42,
		RedeemPoints:   true,
	}

	first, err := engine.Quote(context.Background(), req)
	require.NoError(t, err)
	second, err := engine.Quote(context.Background(), req)
	require.NoError(t, err)
	assert.Equal(t, first, second)
}

func TestQuote_EmptyCart(t *testing.T) {
	engine := newTestEngine(map[uuid.UUID]*ProductSnapshot{}, nil)

	_, err := engine.Quote(context.Background(), &QuoteRequest{})

	require.Error(t, err)
	assert.True(t, IsCode(err, CodeInvalidInput))
}

func TestSettle_LedgerSequencing(t *testing.T) {
	p := product(100000, 10)
	engine := newTestEngine(map[uuid.UUID]*ProductSnapshot{p.ID: p}, nil)

	quote, err := engine.Quote(context.Background(), &QuoteRequest{
		Lines:          []CartLine{{ProductID: p.ID, Quantity: 2}},
		LoyaltyBalance: 500,
		RedeemPoints:   true,
	})
	require.NoError(t, err)

	userID := uuid.New()
	plan := engine.Settle(quote, userID, "ORD-TEST0001", 500)

	require.Len(t, plan.StockDecrements, 1)
	assert.Equal(t, p.ID, plan.StockDecrements[0].ProductID)
	assert.Equal(t, 2, plan.StockDecrements[0].Quantity)

	// Redemption entry first, then earn, each with sequential balanceAfter
	require.Len(t, plan.LedgerEntries, 2)
	redeem, earn := plan.LedgerEntries[0], plan.LedgerEntries[1]
	assert.Equal(t, enum.LoyaltyTypeRedeemed, redeem.Type)
	assert.Equal(t, -quote.PointsRedeemed, redeem.Points)
	assert.Equal(t, 500-quote.PointsRedeemed, redeem.BalanceAfter)
	assert.Equal(t, enum.LoyaltyTypeEarned, earn.Type)
	assert.Equal(t, quote.PointsEarned, earn.Points)
	assert.Equal(t, 500-quote.PointsRedeemed+quote.PointsEarned, earn.BalanceAfter)

	assert.Equal(t, quote.PointsEarned-quote.PointsRedeemed, plan.BalanceDelta)
}

func TestSettle_EarnOnlyWhenNoRedemption(t *testing.T) {
	p := product(100000, 10)
	engine := newTestEngine(map[uuid.UUID]*ProductSnapshot{p.ID: p}, nil)

	quote, err := engine.Quote(context.Background(), &QuoteRequest{
		Lines: []CartLine{{ProductID: p.ID, Quantity: 1}},
	})
	require.NoError(t, err)

	plan := engine.Settle(quote, uuid.New(), "ORD-TEST0002", 0)

	require.Len(t, plan.LedgerEntries, 1)
	assert.Equal(t, enum.LoyaltyTypeEarned, plan.LedgerEntries[0].Type)
	assert.Equal(t, quote.PointsEarned, plan.LedgerEntries[0].BalanceAfter)
}

func TestRestore_StockOnly(t *testing.T) {
	engine := newTestEngine(nil, nil)
	productID := uuid.New()

	plan := engine.Restore(RestorationRequest{
		OrderNumber:    "ORD-TEST0003",
		Lines:          []CartLine{{ProductID: productID, Quantity: 4}},
		PointsUsed:     100,
		PointsEarned:   9,
		LoyaltyBalance: 200,
	})

	require.Len(t, plan.StockIncrements, 1)
	assert.Equal(t, 4, plan.StockIncrements[0].Quantity)
	// Default policy leaves the loyalty ledger untouched on cancellation
	assert.Empty(t, plan.LedgerEntries)
	assert.Equal(t, int64(0), plan.BalanceDelta)
}

func TestRestore_ReversesLoyaltyWhenPolicyEnabled(t *testing.T) {
	policy := DefaultPolicy()
	policy.ReverseLoyaltyOnCancel = true
	engine := NewEngineWithClock(policy, &fakeCatalog{}, &fakeCoupons{}, func() time.Time { return testNow })

	plan := engine.Restore(RestorationRequest{
		OrderNumber:    "ORD-TEST0004",
		Lines:          []CartLine{{ProductID: uuid.New(), Quantity: 1}},
		PointsUsed:     100,
		PointsEarned:   9,
		LoyaltyBalance: 209,
	})

	require.Len(t, plan.LedgerEntries, 2)
	assert.Equal(t, int64(-9), plan.LedgerEntries[0].Points)
	assert.Equal(t, int64(200), plan.LedgerEntries[0].BalanceAfter)
	assert.Equal(t, int64(100), plan.LedgerEntries[1].Points)
	assert.Equal(t, int64(300), plan.LedgerEntries[1].BalanceAfter)
	assert.Equal(t, int64(91), plan.BalanceDelta)
}
