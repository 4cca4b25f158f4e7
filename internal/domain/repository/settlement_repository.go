package repository

import (
	"context"

	"github.com/freshbasket/storefront-api/internal/domain/entity"
	"github.com/freshbasket/storefront-api/internal/domain/pricing"
)

// SettlementRepository applies pricing engine plans as single database
// transactions. This is the only write path for checkout and cancellation
// side effects: the order record, stock decrements, coupon usage, loyalty
// balance and ledger all commit or roll back together. Stock decrements are
// conditional at write time, so two concurrent checkouts cannot oversell.
type SettlementRepository interface {
	// ApplySettlement persists the order and applies the plan's mutations
	// atomically. Returns pricing.CodeOutOfStock when a conditional stock
	// decrement finds insufficient stock at commit time.
	ApplySettlement(ctx context.Context, order *entity.Order, plan *pricing.SettlementPlan) error

	// ApplyRestoration marks the order cancelled and restores stock (and,
	// when the plan says so, loyalty) atomically.
	ApplyRestoration(ctx context.Context, order *entity.Order, plan *pricing.RestorationPlan) error
}
