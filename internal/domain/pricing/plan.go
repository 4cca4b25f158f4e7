package pricing

import (
	"fmt"

	"github.com/google/uuid"

	"github.com/freshbasket/storefront-api/internal/domain/enum"
)

// StockAdjustment is a per-product quantity change. Settlement decrements
// stock and increments total sales by Quantity; restoration does the inverse.
type StockAdjustment struct {
	ProductID uuid.UUID
	Quantity  int
}

// LedgerAppend describes one loyalty ledger entry to create. BalanceAfter is
// precomputed so the audit trail reconstructs even though entries within one
// settlement share a timestamp.
type LedgerAppend struct {
	Type         enum.LoyaltyType
	Points       int64 // signed: negative for redemptions
	Description  string
	BalanceAfter int64
}

// SettlementPlan is the declarative set of side effects required to commit a
// quote: the order record, the stock decrements, the coupon usage increment,
// and the loyalty balance and ledger mutations. The plan is applied atomically
// by the settlement writer; the engine itself never executes it.
type SettlementPlan struct {
	UserID      uuid.UUID
	OrderNumber string
	Quote       *Quote

	// StockDecrements follow cart-line order
	StockDecrements []StockAdjustment

	// CouponCode, when non-empty, has its usage count incremented
	CouponCode string

	// BalanceDelta is the net loyalty point change for the user
	BalanceDelta int64

	// LedgerEntries are appended in order: redemption first, then earning,
	// so each BalanceAfter reflects the adjustments applied in sequence
	LedgerEntries []LedgerAppend
}

// RestorationPlan is the stock-side inverse of a settlement, produced when an
// order is cancelled. Loyalty entries are only reversed when the policy says
// so; by default cancellation leaves the ledger untouched.
type RestorationPlan struct {
	StockIncrements []StockAdjustment
	BalanceDelta    int64
	LedgerEntries   []LedgerAppend
}

// Settle produces the atomic mutation set for a successful quote. balance is
// the user's loyalty balance at settlement time and seeds the sequential
// BalanceAfter values: redemption applies first, then the earn award.
func (e *Engine) Settle(quote *Quote, userID uuid.UUID, orderNumber string, balance int64) *SettlementPlan {
	plan := &SettlementPlan{
		UserID:      userID,
		OrderNumber: orderNumber,
		Quote:       quote,
		CouponCode:  quote.CouponCode,
	}

	for _, line := range quote.Lines {
		plan.StockDecrements = append(plan.StockDecrements, StockAdjustment{
			ProductID: line.ProductID,
			Quantity:  line.Quantity,
		})
	}

	running := balance
	if quote.PointsRedeemed > 0 {
		running -= quote.PointsRedeemed
		plan.LedgerEntries = append(plan.LedgerEntries, LedgerAppend{
			Type:         enum.LoyaltyTypeRedeemed,
			Points:       -quote.PointsRedeemed,
			Description:  fmt.Sprintf("Redeemed for order %s", orderNumber),
			BalanceAfter: running,
		})
	}
	if quote.PointsEarned > 0 {
		running += quote.PointsEarned
		plan.LedgerEntries = append(plan.LedgerEntries, LedgerAppend{
			Type:         enum.LoyaltyTypeEarned,
			Points:       quote.PointsEarned,
			Description:  fmt.Sprintf("Earned from order %s", orderNumber),
			BalanceAfter: running,
		})
	}
	plan.BalanceDelta = running - balance

	return plan
}

// RestorationRequest captures the settled effects of an order being cancelled
type RestorationRequest struct {
	OrderNumber    string
	UserID         uuid.UUID
	Lines          []CartLine
	PointsUsed     int64
	PointsEarned   int64
	LoyaltyBalance int64 // current balance, consulted only when reversal is enabled
}

// Restore produces the stock restoration for a cancelled order: each line's
// quantity returns to stock and leaves total sales. Loyalty effects are
// reversed only under Policy.ReverseLoyaltyOnCancel.
func (e *Engine) Restore(req RestorationRequest) *RestorationPlan {
	plan := &RestorationPlan{}

	for _, line := range req.Lines {
		plan.StockIncrements = append(plan.StockIncrements, StockAdjustment{
			ProductID: line.ProductID,
			Quantity:  line.Quantity,
		})
	}

	if !e.policy.ReverseLoyaltyOnCancel {
		return plan
	}

	running := req.LoyaltyBalance
	if req.PointsEarned > 0 {
		running -= req.PointsEarned
		plan.LedgerEntries = append(plan.LedgerEntries, LedgerAppend{
			Type:         enum.LoyaltyTypeAdjusted,
			Points:       -req.PointsEarned,
			Description:  fmt.Sprintf("Reversed points earned on cancelled order %s", req.OrderNumber),
			BalanceAfter: running,
		})
	}
	if req.PointsUsed > 0 {
		running += req.PointsUsed
		plan.LedgerEntries = append(plan.LedgerEntries, LedgerAppend{
			Type:         enum.LoyaltyTypeAdjusted,
			Points:       req.PointsUsed,
			Description:  fmt.Sprintf("Refunded points redeemed on cancelled order %s", req.OrderNumber),
			BalanceAfter: running,
		})
	}
	plan.BalanceDelta = running - req.LoyaltyBalance

	return plan
}
