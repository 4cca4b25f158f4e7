package service

import (
	"context"
	"time"

	"github.com/freshbasket/storefront-api/internal/domain/entity"
	"github.com/freshbasket/storefront-api/internal/domain/repository"
)

// DashboardService provides storefront admin statistics
type DashboardService struct {
	analyticsRepo repository.AnalyticsRepository
	productRepo   repository.ProductRepository
	userRepo      repository.UserRepository
}

// NewDashboardService creates a new dashboard service
func NewDashboardService(
	analyticsRepo repository.AnalyticsRepository,
	productRepo repository.ProductRepository,
	userRepo repository.UserRepository,
) *DashboardService {
	return &DashboardService{
		analyticsRepo: analyticsRepo,
		productRepo:   productRepo,
		userRepo:      userRepo,
	}
}

// DashboardStats represents dashboard statistics
type DashboardStats struct {
	TotalRevenue            float64                          `json:"total_revenue"`
	MonthlyRevenue          float64                          `json:"monthly_revenue"`
	MonthlyOrders           int64                            `json:"monthly_orders"`
	RevenueGrowth           float64                          `json:"revenue_growth"`
	NewCustomersThisMonth   int64                            `json:"new_customers_this_month"`
	LowStockCount           int64                            `json:"low_stock_count"`
	LoyaltyPointsOutstanding int64                           `json:"loyalty_points_outstanding"`
	OrdersByStatus          []repository.StatusCountResult   `json:"orders_by_status"`
	DailySales              []repository.DailySalesResult    `json:"daily_sales"`
	TopProducts             []repository.TopProductResult    `json:"top_products"`
	SalesByCategory         []repository.CategorySalesResult `json:"sales_by_category"`
	TopCustomers            []repository.TopCustomerResult   `json:"top_customers"`
}

// GetDashboardStats returns the admin dashboard aggregates
func (s *DashboardService) GetDashboardStats(ctx context.Context) (*DashboardStats, error) {
	stats := &DashboardStats{}

	totalRevenue, err := s.analyticsRepo.GetTotalRevenue(ctx)
	if err != nil {
		return nil, err
	}
	stats.TotalRevenue = totalRevenue

	now := time.Now()
	monthStart := time.Date(now.Year(), now.Month(), 1, 0, 0, 0, 0, now.Location())
	previousMonthStart := monthStart.AddDate(0, -1, 0)

	monthlyRevenue, err := s.analyticsRepo.GetRevenueSince(ctx, monthStart)
	if err != nil {
		return nil, err
	}
	stats.MonthlyRevenue = monthlyRevenue

	monthlyOrders, err := s.analyticsRepo.GetOrderCountSince(ctx, monthStart)
	if err != nil {
		return nil, err
	}
	stats.MonthlyOrders = monthlyOrders

	previousRevenue, err := s.analyticsRepo.GetRevenueSince(ctx, previousMonthStart)
	if err != nil {
		return nil, err
	}
	previousRevenue -= monthlyRevenue
	if previousRevenue > 0 {
		stats.RevenueGrowth = (monthlyRevenue - previousRevenue) / previousRevenue * 100
	}

	newCustomers, err := s.userRepo.CountCreatedSince(ctx, monthStart)
	if err != nil {
		return nil, err
	}
	stats.NewCustomersThisMonth = newCustomers

	lowStock, err := s.productRepo.GetLowStock(ctx)
	if err != nil {
		return nil, err
	}
	stats.LowStockCount = int64(len(lowStock))

	outstanding, err := s.analyticsRepo.GetLoyaltyPointsOutstanding(ctx)
	if err != nil {
		return nil, err
	}
	stats.LoyaltyPointsOutstanding = outstanding

	byStatus, err := s.analyticsRepo.GetOrdersByStatus(ctx)
	if err != nil {
		return nil, err
	}
	stats.OrdersByStatus = byStatus

	dailySales, err := s.analyticsRepo.GetDailySales(ctx, 30)
	if err != nil {
		return nil, err
	}
	stats.DailySales = dailySales

	topProducts, err := s.analyticsRepo.GetTopProducts(ctx, 10)
	if err != nil {
		return nil, err
	}
	stats.TopProducts = topProducts

	byCategory, err := s.analyticsRepo.GetSalesByCategory(ctx)
	if err != nil {
		return nil, err
	}
	stats.SalesByCategory = byCategory

	topCustomers, err := s.analyticsRepo.GetTopCustomers(ctx, 10)
	if err != nil {
		return nil, err
	}
	stats.TopCustomers = topCustomers

	return stats, nil
}

// GetLowStockProducts returns products needing restock for the dashboard
func (s *DashboardService) GetLowStockProducts(ctx context.Context) ([]entity.Product, error) {
	return s.productRepo.GetLowStock(ctx)
}
