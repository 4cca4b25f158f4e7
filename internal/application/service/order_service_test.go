package service

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/freshbasket/storefront-api/internal/domain/entity"
	"github.com/freshbasket/storefront-api/internal/domain/enum"
	"github.com/freshbasket/storefront-api/internal/domain/pricing"
	"github.com/freshbasket/storefront-api/internal/domain/repository"
	"github.com/freshbasket/storefront-api/pkg/apperror"
	"github.com/freshbasket/storefront-api/pkg/email"
	"github.com/freshbasket/storefront-api/pkg/pagination"
)

// catalogStub implements pricing.CatalogLookup for testing
type catalogStub struct {
	products map[uuid.UUID]*pricing.ProductSnapshot
}

func (s *catalogStub) ProductSnapshot(_ context.Context, id uuid.UUID) (*pricing.ProductSnapshot, error) {
	return s.products[id], nil
}

// couponStub implements pricing.CouponLookup for testing
type couponStub struct {
	coupons map[string]*pricing.CouponSnapshot
}

func (s *couponStub) CouponSnapshot(_ context.Context, code string) (*pricing.CouponSnapshot, error) {
	return s.coupons[code], nil
}

// fakeUserRepo implements repository.UserRepository with a fixed loyalty
// balance and an in-memory user map
type fakeUserRepo struct {
	balance int64
	users   map[uuid.UUID]*entity.User
}

func (f *fakeUserRepo) Create(context.Context, *entity.User) error { return nil }
func (f *fakeUserRepo) GetByID(_ context.Context, id uuid.UUID) (*entity.User, error) {
	return f.users[id], nil
}
func (f *fakeUserRepo) GetByEmail(context.Context, string) (*entity.User, error) { return nil, nil }
func (f *fakeUserRepo) Update(context.Context, *entity.User) error               { return nil }
func (f *fakeUserRepo) Delete(context.Context, uuid.UUID) error                  { return nil }
func (f *fakeUserRepo) List(context.Context, *pagination.PaginationParams, string) ([]entity.User, int64, error) {
	return nil, 0, nil
}
func (f *fakeUserRepo) GetWithRoles(context.Context, uuid.UUID) (*entity.User, error) {
	return nil, nil
}
func (f *fakeUserRepo) AssignRole(context.Context, uuid.UUID, uint) error { return nil }
func (f *fakeUserRepo) RemoveRole(context.Context, uuid.UUID, uint) error { return nil }
func (f *fakeUserRepo) GetLoyaltyBalance(context.Context, uuid.UUID) (int64, error) {
	return f.balance, nil
}
func (f *fakeUserRepo) CountCreatedSince(context.Context, time.Time) (int64, error) { return 0, nil }

// fakeOrderRepo implements repository.OrderRepository backed by a map
type fakeOrderRepo struct {
	orders  map[uuid.UUID]*entity.Order
	history []entity.OrderStatusHistory
}

func newFakeOrderRepo() *fakeOrderRepo {
	return &fakeOrderRepo{orders: make(map[uuid.UUID]*entity.Order)}
}

func (f *fakeOrderRepo) GetByID(_ context.Context, id uuid.UUID) (*entity.Order, error) {
	return f.orders[id], nil
}
func (f *fakeOrderRepo) GetByOrderNumber(_ context.Context, number string) (*entity.Order, error) {
	for _, o := range f.orders {
		if o.OrderNumber == number {
			return o, nil
		}
	}
	return nil, nil
}
func (f *fakeOrderRepo) GetWithItems(_ context.Context, id uuid.UUID) (*entity.Order, error) {
	return f.orders[id], nil
}
func (f *fakeOrderRepo) Update(_ context.Context, order *entity.Order) error {
	f.orders[order.ID] = order
	return nil
}
func (f *fakeOrderRepo) List(context.Context, *repository.OrderFilterParams) ([]entity.Order, int64, error) {
	return nil, 0, nil
}
func (f *fakeOrderRepo) ListByUser(context.Context, uuid.UUID, *enum.OrderStatus, *pagination.PaginationParams) ([]entity.Order, int64, error) {
	return nil, 0, nil
}
func (f *fakeOrderRepo) AppendStatusHistory(_ context.Context, h *entity.OrderStatusHistory) error {
	f.history = append(f.history, *h)
	return nil
}
func (f *fakeOrderRepo) HasDeliveredOrderWithProduct(context.Context, uuid.UUID, uuid.UUID) (bool, error) {
	return false, nil
}

// fakeSettlementRepo implements repository.SettlementRepository, recording
// the plans it is asked to apply
type fakeSettlementRepo struct {
	orderRepo      *fakeOrderRepo
	settlementErr  error
	settlements    []*pricing.SettlementPlan
	restorations   []*pricing.RestorationPlan
	restoredOrders []*entity.Order
}

func (f *fakeSettlementRepo) ApplySettlement(_ context.Context, order *entity.Order, plan *pricing.SettlementPlan) error {
	if f.settlementErr != nil {
		return f.settlementErr
	}
	if order.ID == uuid.Nil {
		order.ID = uuid.New()
	}
	f.settlements = append(f.settlements, plan)
	f.orderRepo.orders[order.ID] = order
	return nil
}

func (f *fakeSettlementRepo) ApplyRestoration(_ context.Context, order *entity.Order, plan *pricing.RestorationPlan) error {
	f.restorations = append(f.restorations, plan)
	f.restoredOrders = append(f.restoredOrders, order)
	f.orderRepo.orders[order.ID] = order
	return nil
}

type orderFixture struct {
	service    *OrderService
	orderRepo  *fakeOrderRepo
	settleRepo *fakeSettlementRepo
	userRepo   *fakeUserRepo
}

func newOrderFixture(products map[uuid.UUID]*pricing.ProductSnapshot, balance int64) *orderFixture {
	engine := pricing.NewEngine(
		pricing.DefaultPolicy(),
		&catalogStub{products: products},
		&couponStub{coupons: map[string]*pricing.CouponSnapshot{}},
	)

	orderRepo := newFakeOrderRepo()
	settleRepo := &fakeSettlementRepo{orderRepo: orderRepo}
	userRepo := &fakeUserRepo{balance: balance}

	svc := NewOrderService(engine, orderRepo, userRepo, settleRepo,
		email.NewEmailService(email.EmailConfig{}), nil)

	return &orderFixture{
		service:    svc,
		orderRepo:  orderRepo,
		settleRepo: settleRepo,
		userRepo:   userRepo,
	}
}

func testProduct(priceCents int64, stock int) *pricing.ProductSnapshot {
	return &pricing.ProductSnapshot{
		ID:             uuid.New(),
		Name:           "Cold Pressed Olive Oil",
		SKU:            "GR-OIL-500ML",
		UnitPrice:      priceCents,
		StockAvailable: stock,
		Active:         true,
	}
}

func TestCheckout_PlacesOrder(t *testing.T) {
	p := testProduct(20000, 10) // 200.00
	fx := newOrderFixture(map[uuid.UUID]*pricing.ProductSnapshot{p.ID: p}, 0)
	userID := uuid.New()

	order, err := fx.service.Checkout(context.Background(), &CheckoutInput{
		UserID:        userID,
		Items:         []CheckoutItemInput{{ProductID: p.ID, Quantity: 2}},
		PaymentMethod: "card",
		ShippingAddress: entity.Address{
			FullName: "Jane Wanjiru",
			Line1:    "14 Riverside Drive",
			City:     "Nairobi",
			Country:  "KE",
		},
	})

	require.NoError(t, err)
	require.NotNil(t, order)
	assert.NotEmpty(t, order.OrderNumber)
	assert.Equal(t, userID, order.UserID)
	assert.Equal(t, enum.OrderStatusPending, order.Status)
	assert.Equal(t, int64(40000), order.SubTotal)
	// 40000 subtotal + 5000 flat shipping + 5% tax on subtotal
	assert.Equal(t, int64(47000), order.Total)
	require.Len(t, order.Items, 1)
	assert.Equal(t, 2, order.Items[0].Quantity)
	assert.Equal(t, p.SKU, order.Items[0].SKU)

	require.Len(t, fx.settleRepo.settlements, 1)
	plan := fx.settleRepo.settlements[0]
	require.Len(t, plan.StockDecrements, 1)
	assert.Equal(t, p.ID, plan.StockDecrements[0].ProductID)
	assert.Equal(t, 2, plan.StockDecrements[0].Quantity)
}

func TestCheckout_OutOfStock(t *testing.T) {
	p := testProduct(20000, 1)
	fx := newOrderFixture(map[uuid.UUID]*pricing.ProductSnapshot{p.ID: p}, 0)

	_, err := fx.service.Checkout(context.Background(), &CheckoutInput{
		UserID: uuid.New(),
		Items:  []CheckoutItemInput{{ProductID: p.ID, Quantity: 3}},
	})

	require.Error(t, err)
	var pricingErr *pricing.Error
	require.True(t, errors.As(err, &pricingErr))
	assert.Equal(t, pricing.CodeOutOfStock, pricingErr.Code)
	assert.Empty(t, fx.settleRepo.settlements)
}

func TestCheckout_RedemptionKeptOutOfDiscount(t *testing.T) {
	p := testProduct(100000, 10) // 1000.00, free shipping
	fx := newOrderFixture(map[uuid.UUID]*pricing.ProductSnapshot{p.ID: p}, 500)

	order, err := fx.service.Checkout(context.Background(), &CheckoutInput{
		UserID:       uuid.New(),
		Items:        []CheckoutItemInput{{ProductID: p.ID, Quantity: 1}},
		RedeemPoints: true,
	})

	require.NoError(t, err)
	// Redemption capped at 10% of the 100000 subtotal, 100 points at 100 each
	assert.Equal(t, int64(0), order.Discount)
	assert.Equal(t, int64(100), order.LoyaltyPointsUsed)
	assert.Equal(t, int64(95000), order.Total)

	redeemed := order.LoyaltyPointsUsed * pricing.DefaultPolicy().PointValue
	assert.Equal(t, order.SubTotal-order.Discount-redeemed+order.ShippingCost+order.Tax, order.Total)
}

func TestCheckout_SettlementFailurePropagates(t *testing.T) {
	p := testProduct(20000, 5)
	fx := newOrderFixture(map[uuid.UUID]*pricing.ProductSnapshot{p.ID: p}, 0)
	fx.settleRepo.settlementErr = &pricing.Error{Code: pricing.CodeOutOfStock, Message: "stock moved during checkout"}

	_, err := fx.service.Checkout(context.Background(), &CheckoutInput{
		UserID: uuid.New(),
		Items:  []CheckoutItemInput{{ProductID: p.ID, Quantity: 2}},
	})

	require.Error(t, err)
	var pricingErr *pricing.Error
	require.True(t, errors.As(err, &pricingErr))
	assert.Equal(t, pricing.CodeOutOfStock, pricingErr.Code)
}

func TestGetOrder_OwnershipEnforced(t *testing.T) {
	fx := newOrderFixture(nil, 0)
	owner := uuid.New()
	order := &entity.Order{ID: uuid.New(), UserID: owner, Status: enum.OrderStatusPending}
	fx.orderRepo.orders[order.ID] = order

	_, err := fx.service.GetOrder(context.Background(), order.ID, uuid.New(), false)
	assert.ErrorIs(t, err, apperror.ErrForbidden)

	got, err := fx.service.GetOrder(context.Background(), order.ID, uuid.New(), true)
	require.NoError(t, err)
	assert.Equal(t, order.ID, got.ID)

	got, err = fx.service.GetOrder(context.Background(), order.ID, owner, false)
	require.NoError(t, err)
	assert.Equal(t, order.ID, got.ID)
}

func TestUpdateStatus_ValidTransition(t *testing.T) {
	fx := newOrderFixture(nil, 0)
	order := &entity.Order{ID: uuid.New(), UserID: uuid.New(), Status: enum.OrderStatusPending}
	fx.orderRepo.orders[order.ID] = order

	note := "payment confirmed by finance"
	updated, err := fx.service.UpdateStatus(context.Background(), &UpdateStatusInput{
		OrderID:   order.ID,
		Status:    enum.OrderStatusConfirmed,
		Note:      &note,
		UpdatedBy: uuid.New(),
	})

	require.NoError(t, err)
	assert.Equal(t, enum.OrderStatusConfirmed, updated.Status)
	require.Len(t, fx.orderRepo.history, 1)
	assert.Equal(t, enum.OrderStatusConfirmed, fx.orderRepo.history[0].Status)
	require.NotNil(t, fx.orderRepo.history[0].Note)
	assert.Equal(t, note, *fx.orderRepo.history[0].Note)
}

func TestUpdateStatus_InvalidTransitionRejected(t *testing.T) {
	fx := newOrderFixture(nil, 0)
	order := &entity.Order{ID: uuid.New(), UserID: uuid.New(), Status: enum.OrderStatusPending}
	fx.orderRepo.orders[order.ID] = order

	_, err := fx.service.UpdateStatus(context.Background(), &UpdateStatusInput{
		OrderID: order.ID,
		Status:  enum.OrderStatusShipped,
	})

	require.Error(t, err)
	appErr := apperror.GetAppError(err)
	require.NotNil(t, appErr)
	assert.Equal(t, 409, appErr.Code)
	assert.Empty(t, fx.orderRepo.history)
}

func TestUpdateStatus_CancellationMustUseCancelEndpoint(t *testing.T) {
	fx := newOrderFixture(nil, 0)
	order := &entity.Order{ID: uuid.New(), UserID: uuid.New(), Status: enum.OrderStatusPending}
	fx.orderRepo.orders[order.ID] = order

	_, err := fx.service.UpdateStatus(context.Background(), &UpdateStatusInput{
		OrderID: order.ID,
		Status:  enum.OrderStatusCancelled,
	})

	require.Error(t, err)
	appErr := apperror.GetAppError(err)
	require.NotNil(t, appErr)
	assert.Equal(t, 400, appErr.Code)
}

func TestUpdateStatus_DeliveredSetsTimestamp(t *testing.T) {
	fx := newOrderFixture(nil, 0)
	order := &entity.Order{ID: uuid.New(), UserID: uuid.New(), Status: enum.OrderStatusShipped}
	fx.orderRepo.orders[order.ID] = order

	updated, err := fx.service.UpdateStatus(context.Background(), &UpdateStatusInput{
		OrderID: order.ID,
		Status:  enum.OrderStatusDelivered,
	})

	require.NoError(t, err)
	require.NotNil(t, updated.DeliveredAt)
	assert.WithinDuration(t, time.Now(), *updated.DeliveredAt, time.Minute)
}

func TestCancelOrder_RestoresStock(t *testing.T) {
	fx := newOrderFixture(nil, 0)
	owner := uuid.New()
	productID := uuid.New()
	order := &entity.Order{
		ID:          uuid.New(),
		OrderNumber: "ORD-20260315-0001",
		UserID:      owner,
		Status:      enum.OrderStatusPending,
		Items: []entity.OrderItem{
			{ProductID: productID, Quantity: 3},
		},
	}
	fx.orderRepo.orders[order.ID] = order

	cancelled, err := fx.service.CancelOrder(context.Background(), &CancelOrderInput{
		OrderID: order.ID,
		UserID:  owner,
		Reason:  "ordered the wrong size",
	})

	require.NoError(t, err)
	assert.Equal(t, enum.OrderStatusCancelled, cancelled.Status)
	require.NotNil(t, cancelled.CancelReason)
	assert.Equal(t, "ordered the wrong size", *cancelled.CancelReason)

	require.Len(t, fx.settleRepo.restorations, 1)
	plan := fx.settleRepo.restorations[0]
	require.Len(t, plan.StockIncrements, 1)
	assert.Equal(t, productID, plan.StockIncrements[0].ProductID)
	assert.Equal(t, 3, plan.StockIncrements[0].Quantity)
}

func TestCancelOrder_RejectsShippedOrder(t *testing.T) {
	fx := newOrderFixture(nil, 0)
	owner := uuid.New()
	order := &entity.Order{ID: uuid.New(), UserID: owner, Status: enum.OrderStatusShipped}
	fx.orderRepo.orders[order.ID] = order

	_, err := fx.service.CancelOrder(context.Background(), &CancelOrderInput{
		OrderID: order.ID,
		UserID:  owner,
	})

	assert.ErrorIs(t, err, apperror.ErrNotCancellable)
	assert.Empty(t, fx.settleRepo.restorations)
}

func TestCancelOrder_OwnershipEnforced(t *testing.T) {
	fx := newOrderFixture(nil, 0)
	order := &entity.Order{ID: uuid.New(), UserID: uuid.New(), Status: enum.OrderStatusPending}
	fx.orderRepo.orders[order.ID] = order

	_, err := fx.service.CancelOrder(context.Background(), &CancelOrderInput{
		OrderID: order.ID,
		UserID:  uuid.New(),
	})

	assert.ErrorIs(t, err, apperror.ErrForbidden)
}
