package repository

import (
	"context"
	"fmt"

	"gorm.io/gorm"

	"github.com/freshbasket/storefront-api/internal/domain/entity"
	"github.com/freshbasket/storefront-api/internal/domain/pricing"
	domainRepo "github.com/freshbasket/storefront-api/internal/domain/repository"
)

type settlementRepository struct {
	db *gorm.DB
}

// NewSettlementRepository creates a new settlement repository
func NewSettlementRepository(db *gorm.DB) domainRepo.SettlementRepository {
	return &settlementRepository{db: db}
}

// ApplySettlement commits a checkout in one transaction: the order row with
// its items, conditional stock decrements, coupon usage, loyalty balance and
// ledger entries. The decrement is guarded by stock >= quantity so a
// concurrent checkout that raced this one rolls everything back instead of
// overselling.
func (r *settlementRepository) ApplySettlement(ctx context.Context, order *entity.Order, plan *pricing.SettlementPlan) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(order).Error; err != nil {
			return err
		}

		for _, dec := range plan.StockDecrements {
			result := tx.Model(&entity.Product{}).
				Where("id = ? AND stock >= ?", dec.ProductID, dec.Quantity).
				Updates(map[string]interface{}{
					"stock":       gorm.Expr("stock - ?", dec.Quantity),
					"total_sales": gorm.Expr("total_sales + ?", dec.Quantity),
				})
			if result.Error != nil {
				return result.Error
			}
			if result.RowsAffected == 0 {
				return &pricing.Error{
					Code:    pricing.CodeOutOfStock,
					Message: fmt.Sprintf("Insufficient stock for product %s", dec.ProductID),
				}
			}
		}

		if plan.CouponCode != "" {
			if err := tx.Model(&entity.Coupon{}).
				Where("code = ?", plan.CouponCode).
				UpdateColumn("usage_count", gorm.Expr("usage_count + 1")).Error; err != nil {
				return err
			}
		}

		if plan.BalanceDelta != 0 {
			if err := tx.Model(&entity.User{}).
				Where("id = ?", plan.UserID).
				UpdateColumn("loyalty_points", gorm.Expr("loyalty_points + ?", plan.BalanceDelta)).Error; err != nil {
				return err
			}
		}

		for _, e := range plan.LedgerEntries {
			orderID := order.ID
			entry := entity.LoyaltyTransaction{
				UserID:       plan.UserID,
				Type:         e.Type,
				Points:       e.Points,
				Description:  e.Description,
				OrderID:      &orderID,
				BalanceAfter: e.BalanceAfter,
			}
			if err := tx.Create(&entry).Error; err != nil {
				return err
			}
		}

		history := entity.OrderStatusHistory{
			OrderID:   order.ID,
			Status:    order.Status,
			UpdatedBy: plan.UserID,
		}
		return tx.Create(&history).Error
	})
}

// ApplyRestoration commits a cancellation in one transaction: the order row
// update, stock restoration, and any loyalty reversal the plan carries.
func (r *settlementRepository) ApplyRestoration(ctx context.Context, order *entity.Order, plan *pricing.RestorationPlan) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Save(order).Error; err != nil {
			return err
		}

		for _, inc := range plan.StockIncrements {
			if err := tx.Model(&entity.Product{}).
				Where("id = ?", inc.ProductID).
				Updates(map[string]interface{}{
					"stock":       gorm.Expr("stock + ?", inc.Quantity),
					"total_sales": gorm.Expr("total_sales - ?", inc.Quantity),
				}).Error; err != nil {
				return err
			}
		}

		if plan.BalanceDelta != 0 {
			if err := tx.Model(&entity.User{}).
				Where("id = ?", order.UserID).
				UpdateColumn("loyalty_points", gorm.Expr("loyalty_points + ?", plan.BalanceDelta)).Error; err != nil {
				return err
			}
		}

		for _, e := range plan.LedgerEntries {
			orderID := order.ID
			entry := entity.LoyaltyTransaction{
				UserID:       order.UserID,
				Type:         e.Type,
				Points:       e.Points,
				Description:  e.Description,
				OrderID:      &orderID,
				BalanceAfter: e.BalanceAfter,
			}
			if err := tx.Create(&entry).Error; err != nil {
				return err
			}
		}

		history := entity.OrderStatusHistory{
			OrderID:   order.ID,
			Status:    order.Status,
			Note:      order.CancelReason,
			UpdatedBy: order.UserID,
		}
		return tx.Create(&history).Error
	})
}
