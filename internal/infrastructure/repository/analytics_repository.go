package repository

import (
	"context"
	"database/sql"
	"time"

	"gorm.io/gorm"

	"github.com/freshbasket/storefront-api/internal/domain/enum"
	domainRepo "github.com/freshbasket/storefront-api/internal/domain/repository"
)

type analyticsRepository struct {
	db *gorm.DB
}

// NewAnalyticsRepository creates a new analytics repository
func NewAnalyticsRepository(db *gorm.DB) domainRepo.AnalyticsRepository {
	return &analyticsRepository{db: db}
}

// settledStatuses are the order statuses that count toward revenue.
// Cancelled and returned orders are excluded.
func settledStatuses() []enum.OrderStatus {
	return []enum.OrderStatus{
		enum.OrderStatusPending,
		enum.OrderStatusConfirmed,
		enum.OrderStatusProcessing,
		enum.OrderStatusShipped,
		enum.OrderStatusDelivered,
	}
}

func (r *analyticsRepository) GetTotalRevenue(ctx context.Context) (float64, error) {
	var revenue float64
	err := r.db.WithContext(ctx).Raw(`
		SELECT COALESCE(SUM(total), 0) / 100.0
		FROM orders
		WHERE status IN ? AND deleted_at IS NULL
	`, settledStatuses()).Scan(&revenue).Error

	return revenue, err
}

func (r *analyticsRepository) GetRevenueSince(ctx context.Context, since time.Time) (float64, error) {
	var revenue float64
	err := r.db.WithContext(ctx).Raw(`
		SELECT COALESCE(SUM(total), 0) / 100.0
		FROM orders
		WHERE status IN ? AND created_at >= ? AND deleted_at IS NULL
	`, settledStatuses(), since).Scan(&revenue).Error

	return revenue, err
}

func (r *analyticsRepository) GetOrderCountSince(ctx context.Context, since time.Time) (int64, error) {
	var count int64
	err := r.db.WithContext(ctx).Raw(`
		SELECT COUNT(*)
		FROM orders
		WHERE status IN ? AND created_at >= ? AND deleted_at IS NULL
	`, settledStatuses(), since).Scan(&count).Error

	return count, err
}

func (r *analyticsRepository) GetOrdersByStatus(ctx context.Context) ([]domainRepo.StatusCountResult, error) {
	var rows []struct {
		Status enum.OrderStatus
		Count  int64
	}

	err := r.db.WithContext(ctx).Raw(`
		SELECT status, COUNT(*) as count
		FROM orders
		WHERE deleted_at IS NULL
		GROUP BY status
		ORDER BY status
	`).Scan(&rows).Error
	if err != nil {
		return nil, err
	}

	results := make([]domainRepo.StatusCountResult, 0, len(rows))
	for _, row := range rows {
		results = append(results, domainRepo.StatusCountResult{
			Status: row.Status.String(),
			Count:  row.Count,
		})
	}
	return results, nil
}

func (r *analyticsRepository) GetDailySales(ctx context.Context, days int) ([]domainRepo.DailySalesResult, error) {
	results := make([]domainRepo.DailySalesResult, 0, days)
	now := time.Now()

	// Generate dates for the last N days and get sales for each
	for i := days - 1; i >= 0; i-- {
		date := now.AddDate(0, 0, -i)
		startOfDay := time.Date(date.Year(), date.Month(), date.Day(), 0, 0, 0, 0, date.Location())
		endOfDay := startOfDay.Add(24 * time.Hour)

		var row struct {
			Revenue sql.NullFloat64
			Count   int64
		}
		err := r.db.WithContext(ctx).Raw(`
			SELECT COALESCE(SUM(total), 0) / 100.0 as revenue, COUNT(*) as count
			FROM orders
			WHERE status IN ?
			AND created_at >= ? AND created_at < ?
			AND deleted_at IS NULL
		`, settledStatuses(), startOfDay, endOfDay).Scan(&row).Error

		if err != nil {
			return nil, err
		}

		rev := 0.0
		if row.Revenue.Valid {
			rev = row.Revenue.Float64
		}

		results = append(results, domainRepo.DailySalesResult{
			Date:       startOfDay,
			Revenue:    rev,
			OrderCount: int(row.Count),
		})
	}

	return results, nil
}

func (r *analyticsRepository) GetTopProducts(ctx context.Context, limit int) ([]domainRepo.TopProductResult, error) {
	var results []domainRepo.TopProductResult

	err := r.db.WithContext(ctx).Raw(`
		SELECT
			p.id as product_id,
			p.name as product_name,
			p.sku as product_sku,
			COALESCE(SUM(oi.quantity), 0) as quantity_sold,
			COALESCE(SUM(oi.line_total), 0) / 100.0 as revenue
		FROM order_items oi
		JOIN products p ON p.id = oi.product_id
		JOIN orders o ON o.id = oi.order_id
		WHERE o.status IN ? AND o.deleted_at IS NULL
		GROUP BY p.id, p.name, p.sku
		ORDER BY revenue DESC
		LIMIT ?
	`, settledStatuses(), limit).Scan(&results).Error

	if err != nil {
		return nil, err
	}

	return results, nil
}

func (r *analyticsRepository) GetSalesByCategory(ctx context.Context) ([]domainRepo.CategorySalesResult, error) {
	var results []domainRepo.CategorySalesResult

	// First get total sales for percentage calculation
	var totalSales float64
	err := r.db.WithContext(ctx).Raw(`
		SELECT COALESCE(SUM(oi.line_total), 0) / 100.0
		FROM order_items oi
		JOIN orders o ON o.id = oi.order_id
		WHERE o.status IN ? AND o.deleted_at IS NULL
	`, settledStatuses()).Scan(&totalSales).Error
	if err != nil {
		return nil, err
	}

	err = r.db.WithContext(ctx).Raw(`
		SELECT
			COALESCE(c.id, '00000000-0000-0000-0000-000000000000') as category_id,
			COALESCE(c.name, 'Uncategorized') as category_name,
			COALESCE(SUM(oi.line_total), 0) / 100.0 as total_sales,
			COUNT(DISTINCT o.id) as order_count
		FROM order_items oi
		JOIN products p ON p.id = oi.product_id
		LEFT JOIN categories c ON c.id = p.category_id
		JOIN orders o ON o.id = oi.order_id
		WHERE o.status IN ? AND o.deleted_at IS NULL
		GROUP BY c.id, c.name
		ORDER BY total_sales DESC
	`, settledStatuses()).Scan(&results).Error

	if err != nil {
		return nil, err
	}

	for i := range results {
		if totalSales > 0 {
			results[i].Percentage = (results[i].TotalSales / totalSales) * 100
		}
	}

	return results, nil
}

func (r *analyticsRepository) GetTopCustomers(ctx context.Context, limit int) ([]domainRepo.TopCustomerResult, error) {
	var results []domainRepo.TopCustomerResult

	err := r.db.WithContext(ctx).Raw(`
		SELECT
			u.id as user_id,
			u.first_name || ' ' || u.last_name as customer_name,
			COALESCE(SUM(o.total), 0) / 100.0 as total_spent,
			COUNT(o.id) as order_count
		FROM orders o
		JOIN users u ON u.id = o.user_id
		WHERE o.status IN ? AND o.deleted_at IS NULL
		GROUP BY u.id, u.first_name, u.last_name
		ORDER BY total_spent DESC
		LIMIT ?
	`, settledStatuses(), limit).Scan(&results).Error

	if err != nil {
		return nil, err
	}

	return results, nil
}

func (r *analyticsRepository) GetLoyaltyPointsOutstanding(ctx context.Context) (int64, error) {
	var points int64
	err := r.db.WithContext(ctx).Raw(`
		SELECT COALESCE(SUM(loyalty_points), 0)
		FROM users
		WHERE deleted_at IS NULL
	`).Scan(&points).Error

	return points, err
}
