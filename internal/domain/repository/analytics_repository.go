package repository

import (
	"context"
	"time"

	"github.com/google/uuid"
)

// TopProductResult represents a top selling product
type TopProductResult struct {
	ProductID    uuid.UUID `json:"product_id"`
	ProductName  string    `json:"product_name"`
	ProductSKU   string    `json:"product_sku"`
	QuantitySold int       `json:"quantity_sold"`
	Revenue      float64   `json:"revenue"`
}

// CategorySalesResult represents sales aggregated by category
type CategorySalesResult struct {
	CategoryID   uuid.UUID `json:"category_id"`
	CategoryName string    `json:"category_name"`
	TotalSales   float64   `json:"total_sales"`
	OrderCount   int       `json:"order_count"`
	Percentage   float64   `json:"percentage"`
}

// TopCustomerResult represents a customer ranked by spend
type TopCustomerResult struct {
	UserID       uuid.UUID `json:"user_id"`
	CustomerName string    `json:"customer_name"`
	TotalSpent   float64   `json:"total_spent"`
	OrderCount   int       `json:"order_count"`
}

// DailySalesResult represents revenue for a single day
type DailySalesResult struct {
	Date       time.Time `json:"date"`
	Revenue    float64   `json:"revenue"`
	OrderCount int       `json:"order_count"`
}

// StatusCountResult represents how many orders sit in each status
type StatusCountResult struct {
	Status string `json:"status"`
	Count  int64  `json:"count"`
}

// AnalyticsRepository defines the interface for dashboard aggregations
type AnalyticsRepository interface {
	GetTotalRevenue(ctx context.Context) (float64, error)
	GetRevenueSince(ctx context.Context, since time.Time) (float64, error)
	GetOrderCountSince(ctx context.Context, since time.Time) (int64, error)
	GetOrdersByStatus(ctx context.Context) ([]StatusCountResult, error)
	GetDailySales(ctx context.Context, days int) ([]DailySalesResult, error)
	GetTopProducts(ctx context.Context, limit int) ([]TopProductResult, error)
	GetSalesByCategory(ctx context.Context) ([]CategorySalesResult, error)
	GetTopCustomers(ctx context.Context, limit int) ([]TopCustomerResult, error)
	GetLoyaltyPointsOutstanding(ctx context.Context) (int64, error)
}
