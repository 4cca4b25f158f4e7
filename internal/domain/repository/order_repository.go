package repository

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/freshbasket/storefront-api/internal/domain/entity"
	"github.com/freshbasket/storefront-api/internal/domain/enum"
	"github.com/freshbasket/storefront-api/pkg/pagination"
)

// OrderRepository defines the interface for order data operations
type OrderRepository interface {
	GetByID(ctx context.Context, id uuid.UUID) (*entity.Order, error)
	GetByOrderNumber(ctx context.Context, orderNumber string) (*entity.Order, error)
	// GetWithItems loads an order with its line items and status history
	GetWithItems(ctx context.Context, id uuid.UUID) (*entity.Order, error)
	Update(ctx context.Context, order *entity.Order) error
	List(ctx context.Context, params *OrderFilterParams) ([]entity.Order, int64, error)
	ListByUser(ctx context.Context, userID uuid.UUID, status *enum.OrderStatus, params *pagination.PaginationParams) ([]entity.Order, int64, error)
	// AppendStatusHistory records a status transition; history rows are append-only
	AppendStatusHistory(ctx context.Context, history *entity.OrderStatusHistory) error
	// HasDeliveredOrderWithProduct reports whether the user has a delivered
	// order containing the product (verified-purchase check for reviews)
	HasDeliveredOrderWithProduct(ctx context.Context, userID, productID uuid.UUID) (bool, error)
}

// OrderFilterParams contains filtering parameters for staff order queries
type OrderFilterParams struct {
	Pagination    *pagination.PaginationParams
	Search        string // matches order number or tracking number
	Status        *enum.OrderStatus
	PaymentStatus *enum.PaymentStatus
	UserID        *uuid.UUID
	StartDate     *time.Time
	EndDate       *time.Time
	SortBy        string
	SortOrder     string
}
