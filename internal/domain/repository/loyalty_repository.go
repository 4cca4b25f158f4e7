package repository

import (
	"context"

	"github.com/google/uuid"

	"github.com/freshbasket/storefront-api/internal/domain/entity"
	"github.com/freshbasket/storefront-api/pkg/pagination"
)

// LoyaltyRepository defines the interface for the loyalty ledger.
// Ledger entries are append-only: there is deliberately no update or delete.
type LoyaltyRepository interface {
	AppendEntry(ctx context.Context, entry *entity.LoyaltyTransaction) error
	ListByUser(ctx context.Context, userID uuid.UUID, params *pagination.PaginationParams) ([]entity.LoyaltyTransaction, int64, error)
	// AdjustBalance applies a signed delta to the user's balance and returns
	// the new balance, used to populate BalanceAfter on manual adjustments
	AdjustBalance(ctx context.Context, userID uuid.UUID, delta int64) (int64, error)
}
