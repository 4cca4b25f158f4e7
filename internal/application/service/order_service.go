package service

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/freshbasket/storefront-api/internal/domain/entity"
	"github.com/freshbasket/storefront-api/internal/domain/enum"
	"github.com/freshbasket/storefront-api/internal/domain/pricing"
	"github.com/freshbasket/storefront-api/internal/domain/repository"
	"github.com/freshbasket/storefront-api/pkg/apperror"
	"github.com/freshbasket/storefront-api/pkg/email"
	"github.com/freshbasket/storefront-api/pkg/pagination"
	"github.com/freshbasket/storefront-api/pkg/utils"
)

// OrderService handles checkout, order lifecycle and cancellation
type OrderService struct {
	engine         *pricing.Engine
	orderRepo      repository.OrderRepository
	userRepo       repository.UserRepository
	settlementRepo repository.SettlementRepository
	emailService   *email.EmailService
	packingSlips   *PackingSlipService
}

// NewOrderService creates a new order service
func NewOrderService(
	engine *pricing.Engine,
	orderRepo repository.OrderRepository,
	userRepo repository.UserRepository,
	settlementRepo repository.SettlementRepository,
	emailService *email.EmailService,
	packingSlips *PackingSlipService,
) *OrderService {
	return &OrderService{
		engine:         engine,
		orderRepo:      orderRepo,
		userRepo:       userRepo,
		settlementRepo: settlementRepo,
		emailService:   emailService,
		packingSlips:   packingSlips,
	}
}

// CheckoutItemInput is one cart line submitted at checkout
type CheckoutItemInput struct {
	ProductID uuid.UUID
	Quantity  int
}

// QuoteInput carries the cart state for a price preview
type QuoteInput struct {
	UserID       uuid.UUID
	Items        []CheckoutItemInput
	CouponCode   string
	RedeemPoints bool
}

// CheckoutInput carries everything needed to place an order
type CheckoutInput struct {
	UserID          uuid.UUID
	Items           []CheckoutItemInput
	CouponCode      string
	RedeemPoints    bool
	PaymentMethod   string
	ShippingAddress entity.Address
	BillingAddress  entity.Address
}

// GetQuote prices the cart without committing anything. The storefront calls
// this to render the order summary before the customer confirms.
func (s *OrderService) GetQuote(ctx context.Context, input *QuoteInput) (*pricing.Quote, error) {
	balance, err := s.userRepo.GetLoyaltyBalance(ctx, input.UserID)
	if err != nil {
		return nil, err
	}

	return s.engine.Quote(ctx, &pricing.QuoteRequest{
		Lines:          toCartLines(input.Items),
		CouponCode:     input.CouponCode,
		LoyaltyBalance: balance,
		RedeemPoints:   input.RedeemPoints,
	})
}

// Checkout prices the cart and commits the order atomically. A quote that
// succeeded can still fail settlement if stock moved in between; the whole
// settlement rolls back in that case and the customer sees an out-of-stock
// error rather than a partially placed order.
func (s *OrderService) Checkout(ctx context.Context, input *CheckoutInput) (*entity.Order, error) {
	balance, err := s.userRepo.GetLoyaltyBalance(ctx, input.UserID)
	if err != nil {
		return nil, err
	}

	quote, err := s.engine.Quote(ctx, &pricing.QuoteRequest{
		Lines:          toCartLines(input.Items),
		CouponCode:     input.CouponCode,
		LoyaltyBalance: balance,
		RedeemPoints:   input.RedeemPoints,
	})
	if err != nil {
		return nil, err
	}

	orderNumber := utils.GenerateOrderNumber()
	plan := s.engine.Settle(quote, input.UserID, orderNumber, balance)

	order := orderFromQuote(quote, input, orderNumber)
	if err := s.settlementRepo.ApplySettlement(ctx, order, plan); err != nil {
		return nil, err
	}

	s.sendConfirmationEmail(ctx, order, quote)

	return s.orderRepo.GetWithItems(ctx, order.ID)
}

// GetOrder retrieves an order, enforcing ownership for non-staff callers
func (s *OrderService) GetOrder(ctx context.Context, orderID, userID uuid.UUID, isStaff bool) (*entity.Order, error) {
	order, err := s.orderRepo.GetWithItems(ctx, orderID)
	if err != nil {
		return nil, err
	}
	if order == nil {
		return nil, apperror.NewNotFoundError("Order")
	}
	if !isStaff && order.UserID != userID {
		return nil, apperror.ErrForbidden
	}
	return order, nil
}

// ListMyOrders lists the caller's own orders
func (s *OrderService) ListMyOrders(ctx context.Context, userID uuid.UUID, status *enum.OrderStatus, params *pagination.PaginationParams) (*pagination.PaginatedResult[entity.Order], error) {
	orders, total, err := s.orderRepo.ListByUser(ctx, userID, status, params)
	if err != nil {
		return nil, err
	}

	pag := pagination.NewPagination(params.Page, params.PerPage, total)
	return pagination.NewPaginatedResult(orders, pag), nil
}

// ListOrders lists all orders with filtering (staff)
func (s *OrderService) ListOrders(ctx context.Context, params *repository.OrderFilterParams) (*pagination.PaginatedResult[entity.Order], error) {
	orders, total, err := s.orderRepo.List(ctx, params)
	if err != nil {
		return nil, err
	}

	pag := pagination.NewPagination(params.Pagination.Page, params.Pagination.PerPage, total)
	return pagination.NewPaginatedResult(orders, pag), nil
}

// UpdateStatusInput represents a staff status transition request
type UpdateStatusInput struct {
	OrderID        uuid.UUID
	Status         enum.OrderStatus
	Note           *string
	TrackingNumber *string
	Carrier        *string
	UpdatedBy      uuid.UUID
}

// UpdateStatus moves an order along its lifecycle. Transitions outside the
// state machine are rejected; cancellation must go through CancelOrder so
// stock is restored.
func (s *OrderService) UpdateStatus(ctx context.Context, input *UpdateStatusInput) (*entity.Order, error) {
	order, err := s.orderRepo.GetWithItems(ctx, input.OrderID)
	if err != nil {
		return nil, err
	}
	if order == nil {
		return nil, apperror.NewNotFoundError("Order")
	}

	if input.Status == enum.OrderStatusCancelled {
		return nil, apperror.NewBadRequestError("Use the cancel endpoint to cancel orders")
	}

	if !order.Status.CanTransitionTo(input.Status) {
		return nil, apperror.NewConflictError(fmt.Sprintf(
			"Cannot move order from %s to %s", order.Status, input.Status))
	}

	order.Status = input.Status
	if input.TrackingNumber != nil {
		order.TrackingNumber = input.TrackingNumber
	}
	if input.Carrier != nil {
		order.Carrier = input.Carrier
	}
	if input.Status == enum.OrderStatusDelivered {
		now := time.Now()
		order.DeliveredAt = &now
	}

	if err := s.orderRepo.Update(ctx, order); err != nil {
		return nil, err
	}

	history := &entity.OrderStatusHistory{
		OrderID:   order.ID,
		Status:    input.Status,
		Note:      input.Note,
		UpdatedBy: input.UpdatedBy,
	}
	if err := s.orderRepo.AppendStatusHistory(ctx, history); err != nil {
		return nil, err
	}

	// Warehouse picks from a printed slip once the order enters processing
	if input.Status == enum.OrderStatusProcessing && s.packingSlips != nil {
		_ = s.packingSlips.PrintPackingSlip(order)
	}

	return order, nil
}

// CancelOrderInput represents a cancellation request
type CancelOrderInput struct {
	OrderID uuid.UUID
	UserID  uuid.UUID
	Reason  string
	IsStaff bool
}

// CancelOrder cancels an order and restores its stock. Only pending and
// confirmed orders can be cancelled; later stages must go through returns.
// Loyalty effects are reversed only when the pricing policy enables it.
func (s *OrderService) CancelOrder(ctx context.Context, input *CancelOrderInput) (*entity.Order, error) {
	order, err := s.orderRepo.GetWithItems(ctx, input.OrderID)
	if err != nil {
		return nil, err
	}
	if order == nil {
		return nil, apperror.NewNotFoundError("Order")
	}
	if !input.IsStaff && order.UserID != input.UserID {
		return nil, apperror.ErrForbidden
	}
	if !order.Status.IsCancellable() {
		return nil, apperror.ErrNotCancellable
	}

	balance, err := s.userRepo.GetLoyaltyBalance(ctx, order.UserID)
	if err != nil {
		return nil, err
	}

	lines := make([]pricing.CartLine, 0, len(order.Items))
	for _, item := range order.Items {
		lines = append(lines, pricing.CartLine{
			ProductID: item.ProductID,
			Quantity:  item.Quantity,
		})
	}

	plan := s.engine.Restore(pricing.RestorationRequest{
		OrderNumber:    order.OrderNumber,
		UserID:         order.UserID,
		Lines:          lines,
		PointsUsed:     order.LoyaltyPointsUsed,
		PointsEarned:   order.LoyaltyPointsEarned,
		LoyaltyBalance: balance,
	})

	order.Status = enum.OrderStatusCancelled
	if input.Reason != "" {
		reason := input.Reason
		order.CancelReason = &reason
	}

	if err := s.settlementRepo.ApplyRestoration(ctx, order, plan); err != nil {
		return nil, err
	}

	return order, nil
}

func toCartLines(items []CheckoutItemInput) []pricing.CartLine {
	lines := make([]pricing.CartLine, 0, len(items))
	for _, item := range items {
		lines = append(lines, pricing.CartLine{
			ProductID: item.ProductID,
			Quantity:  item.Quantity,
		})
	}
	return lines
}

func orderFromQuote(quote *pricing.Quote, input *CheckoutInput, orderNumber string) *entity.Order {
	order := &entity.Order{
		OrderNumber:         orderNumber,
		UserID:              input.UserID,
		Status:              enum.OrderStatusPending,
		PaymentStatus:       enum.PaymentStatusPending,
		PaymentMethod:       input.PaymentMethod,
		SubTotal:            quote.SubTotal,
		Discount:            quote.Discount,
		LoyaltyPointsUsed:   quote.PointsRedeemed,
		LoyaltyPointsEarned: quote.PointsEarned,
		ShippingCost:        quote.ShippingCost,
		Tax:                 quote.Tax,
		Total:               quote.Total,
		ShippingAddress:     input.ShippingAddress,
		BillingAddress:      input.BillingAddress,
	}
	if quote.CouponCode != "" {
		code := quote.CouponCode
		order.CouponCode = &code
	}

	for _, line := range quote.Lines {
		order.Items = append(order.Items, entity.OrderItem{
			ProductID:   line.ProductID,
			ProductName: line.ProductName,
			SKU:         line.SKU,
			ImageURL:    line.ImageURL,
			Quantity:    line.Quantity,
			UnitPrice:   line.UnitPrice,
			LineTotal:   line.LineTotal,
		})
	}

	return order
}

func (s *OrderService) sendConfirmationEmail(ctx context.Context, order *entity.Order, quote *pricing.Quote) {
	user, err := s.userRepo.GetByID(ctx, order.UserID)
	if err != nil || user == nil {
		return
	}

	data := email.OrderConfirmationData{
		CustomerName:  user.FirstName,
		OrderNumber:   order.OrderNumber,
		SubTotal:      formatCents(quote.SubTotal),
		Discount:      formatCents(quote.Discount),
		LoyaltyCredit: formatCents(quote.RedemptionValue),
		Shipping:      formatCents(quote.ShippingCost),
		Tax:           formatCents(quote.Tax),
		Total:         formatCents(quote.Total),
		PointsEarned:  quote.PointsEarned,
	}
	for _, line := range quote.Lines {
		data.Lines = append(data.Lines, email.OrderLine{
			ProductName: line.ProductName,
			Quantity:    line.Quantity,
			LineTotal:   formatCents(line.LineTotal),
		})
	}

	// Confirmation email is best-effort; the order is already committed
	_ = s.emailService.SendOrderConfirmationEmail(user.Email, data)
}

func formatCents(cents int64) string {
	return fmt.Sprintf("%.2f", float64(cents)/100)
}
