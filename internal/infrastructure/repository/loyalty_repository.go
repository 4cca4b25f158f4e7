package repository

import (
	"context"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/freshbasket/storefront-api/internal/domain/entity"
	domainRepo "github.com/freshbasket/storefront-api/internal/domain/repository"
	"github.com/freshbasket/storefront-api/pkg/pagination"
)

type loyaltyRepository struct {
	db *gorm.DB
}

// NewLoyaltyRepository creates a new loyalty ledger repository
func NewLoyaltyRepository(db *gorm.DB) domainRepo.LoyaltyRepository {
	return &loyaltyRepository{db: db}
}

func (r *loyaltyRepository) AppendEntry(ctx context.Context, entry *entity.LoyaltyTransaction) error {
	return r.db.WithContext(ctx).Create(entry).Error
}

func (r *loyaltyRepository) ListByUser(ctx context.Context, userID uuid.UUID, params *pagination.PaginationParams) ([]entity.LoyaltyTransaction, int64, error) {
	var entries []entity.LoyaltyTransaction
	var total int64

	query := r.db.WithContext(ctx).Model(&entity.LoyaltyTransaction{}).
		Where("user_id = ?", userID)

	if err := query.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	params.Validate()
	err := query.Offset(params.Offset()).Limit(params.PerPage).
		Order("created_at DESC").
		Find(&entries).Error

	return entries, total, err
}

// AdjustBalance applies the delta and the ledger append in one transaction
// so BalanceAfter always matches the stored balance.
func (r *loyaltyRepository) AdjustBalance(ctx context.Context, userID uuid.UUID, delta int64) (int64, error) {
	var newBalance int64
	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Model(&entity.User{}).
			Where("id = ?", userID).
			UpdateColumn("loyalty_points", gorm.Expr("loyalty_points + ?", delta)).Error; err != nil {
			return err
		}
		return tx.Model(&entity.User{}).
			Where("id = ?", userID).
			Pluck("loyalty_points", &newBalance).Error
	})
	return newBalance, err
}
