package handler

import (
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/freshbasket/storefront-api/internal/application/service"
	"github.com/freshbasket/storefront-api/internal/domain/entity"
	"github.com/freshbasket/storefront-api/internal/domain/enum"
	"github.com/freshbasket/storefront-api/internal/domain/pricing"
	"github.com/freshbasket/storefront-api/internal/domain/repository"
	"github.com/freshbasket/storefront-api/internal/presentation/http/dto/request"
	"github.com/freshbasket/storefront-api/internal/presentation/http/dto/response"
	"github.com/freshbasket/storefront-api/pkg/pagination"
)

// OrderHandler handles order HTTP requests
type OrderHandler struct {
	orderService *service.OrderService
}

// NewOrderHandler creates a new order handler
func NewOrderHandler(orderService *service.OrderService) *OrderHandler {
	return &OrderHandler{orderService: orderService}
}

// Quote prices a cart without placing an order
// @Summary Quote cart
// @Tags orders
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body request.QuoteRequest true "Cart"
// @Success 200 {object} response.APIResponse
// @Router /checkout/quote [post]
func (h *OrderHandler) Quote(c *gin.Context) {
	userID := GetUserID(c)
	if userID == nil {
		response.Unauthorized(c, "Authentication required")
		return
	}

	var req request.QuoteRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "Invalid request body")
		return
	}

	quote, err := h.orderService.GetQuote(c.Request.Context(), &service.QuoteInput{
		UserID:       *userID,
		Items:        toCheckoutItems(req.Items),
		CouponCode:   req.CouponCode,
		RedeemPoints: req.RedeemPoints,
	})
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, "Quote computed", quotePayload(quote))
}

// Checkout places an order
// @Summary Checkout
// @Tags orders
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body request.CheckoutRequest true "Checkout data"
// @Success 201 {object} response.APIResponse
// @Router /checkout [post]
func (h *OrderHandler) Checkout(c *gin.Context) {
	userID := GetUserID(c)
	if userID == nil {
		response.Unauthorized(c, "Authentication required")
		return
	}

	var req request.CheckoutRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "Invalid request body")
		return
	}

	shipping := toAddress(req.ShippingAddress)
	billing := shipping
	if req.BillingAddress != nil {
		billing = toAddress(*req.BillingAddress)
	}

	order, err := h.orderService.Checkout(c.Request.Context(), &service.CheckoutInput{
		UserID:          *userID,
		Items:           toCheckoutItems(req.Items),
		CouponCode:      req.CouponCode,
		RedeemPoints:    req.RedeemPoints,
		PaymentMethod:   req.PaymentMethod,
		ShippingAddress: shipping,
		BillingAddress:  billing,
	})
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Created(c, "Order placed", order)
}

// ListMine lists the caller's orders
// @Summary My orders
// @Tags orders
// @Produce json
// @Security BearerAuth
// @Success 200 {object} response.APIResponse
// @Router /orders [get]
func (h *OrderHandler) ListMine(c *gin.Context) {
	userID := GetUserID(c)
	if userID == nil {
		response.Unauthorized(c, "Authentication required")
		return
	}

	var req request.OrderFilterRequest
	if err := c.ShouldBindQuery(&req); err != nil {
		response.BadRequest(c, "Invalid query parameters")
		return
	}

	params := &pagination.PaginationParams{Page: req.Page, PerPage: req.PerPage}
	params.Validate()

	var status *enum.OrderStatus
	if req.Status != "" {
		parsed, ok := enum.ParseOrderStatus(req.Status)
		if !ok {
			response.BadRequest(c, "Invalid order status")
			return
		}
		status = &parsed
	}

	result, err := h.orderService.ListMyOrders(c.Request.Context(), *userID, status, params)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.SuccessWithPagination(c, 200, "Orders retrieved", result)
}

// Get retrieves a single order
// @Summary Get order
// @Tags orders
// @Produce json
// @Security BearerAuth
// @Param id path string true "Order ID"
// @Success 200 {object} response.APIResponse
// @Router /orders/{id} [get]
func (h *OrderHandler) Get(c *gin.Context) {
	userID := GetUserID(c)
	if userID == nil {
		response.Unauthorized(c, "Authentication required")
		return
	}

	orderID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		response.BadRequest(c, "Invalid order ID")
		return
	}

	order, err := h.orderService.GetOrder(c.Request.Context(), orderID, *userID, IsStaff(c))
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, "Order retrieved", order)
}

// Cancel cancels an order, restoring stock
// @Summary Cancel order
// @Tags orders
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path string true "Order ID"
// @Param request body request.CancelOrderRequest false "Cancellation reason"
// @Success 200 {object} response.APIResponse
// @Router /orders/{id}/cancel [post]
func (h *OrderHandler) Cancel(c *gin.Context) {
	userID := GetUserID(c)
	if userID == nil {
		response.Unauthorized(c, "Authentication required")
		return
	}

	orderID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		response.BadRequest(c, "Invalid order ID")
		return
	}

	var req request.CancelOrderRequest
	if err := c.ShouldBindJSON(&req); err != nil && err.Error() != "EOF" {
		response.BadRequest(c, "Invalid request body")
		return
	}

	order, err := h.orderService.CancelOrder(c.Request.Context(), &service.CancelOrderInput{
		OrderID: orderID,
		UserID:  *userID,
		Reason:  req.Reason,
		IsStaff: IsStaff(c),
	})
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, "Order cancelled", order)
}

// ListAll lists all orders for staff
// @Summary List orders
// @Tags orders
// @Produce json
// @Security BearerAuth
// @Success 200 {object} response.APIResponse
// @Router /admin/orders [get]
func (h *OrderHandler) ListAll(c *gin.Context) {
	var req request.OrderFilterRequest
	if err := c.ShouldBindQuery(&req); err != nil {
		response.BadRequest(c, "Invalid query parameters")
		return
	}

	params := &repository.OrderFilterParams{
		Pagination: &pagination.PaginationParams{Page: req.Page, PerPage: req.PerPage},
		Search:     req.Search,
		SortBy:     req.SortBy,
		SortOrder:  req.SortOrder,
	}
	params.Pagination.Validate()

	if req.Status != "" {
		parsed, ok := enum.ParseOrderStatus(req.Status)
		if !ok {
			response.BadRequest(c, "Invalid order status")
			return
		}
		params.Status = &parsed
	}

	result, err := h.orderService.ListOrders(c.Request.Context(), params)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.SuccessWithPagination(c, 200, "Orders retrieved", result)
}

// UpdateStatus moves an order along its lifecycle
// @Summary Update order status
// @Tags orders
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path string true "Order ID"
// @Param request body request.UpdateOrderStatusRequest true "New status"
// @Success 200 {object} response.APIResponse
// @Router /admin/orders/{id}/status [patch]
func (h *OrderHandler) UpdateStatus(c *gin.Context) {
	userID := GetUserID(c)
	if userID == nil {
		response.Unauthorized(c, "Authentication required")
		return
	}

	orderID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		response.BadRequest(c, "Invalid order ID")
		return
	}

	var req request.UpdateOrderStatusRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "Invalid request body")
		return
	}

	status, ok := enum.ParseOrderStatus(req.Status)
	if !ok {
		response.BadRequest(c, "Invalid order status")
		return
	}

	input := &service.UpdateStatusInput{
		OrderID:        orderID,
		Status:         status,
		TrackingNumber: req.TrackingNumber,
		Carrier:        req.Carrier,
		UpdatedBy:      *userID,
	}
	if req.Note != "" {
		input.Note = &req.Note
	}

	order, err := h.orderService.UpdateStatus(c.Request.Context(), input)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, "Order status updated", order)
}

// quotePayload converts the engine's cent amounts to decimals for display
func quotePayload(quote *pricing.Quote) gin.H {
	lines := make([]gin.H, 0, len(quote.Lines))
	for _, line := range quote.Lines {
		lines = append(lines, gin.H{
			"product_id":   line.ProductID,
			"product_name": line.ProductName,
			"sku":          line.SKU,
			"image_url":    line.ImageURL,
			"quantity":     line.Quantity,
			"unit_price":   float64(line.UnitPrice) / 100,
			"line_total":   float64(line.LineTotal) / 100,
		})
	}
	return gin.H{
		"lines":            lines,
		"sub_total":        float64(quote.SubTotal) / 100,
		"discount":         float64(quote.Discount) / 100,
		"coupon_code":      quote.CouponCode,
		"points_redeemed":  quote.PointsRedeemed,
		"redemption_value": float64(quote.RedemptionValue) / 100,
		"points_earned":    quote.PointsEarned,
		"shipping_cost":    float64(quote.ShippingCost) / 100,
		"tax":              float64(quote.Tax) / 100,
		"total":            float64(quote.Total) / 100,
	}
}

func toCheckoutItems(items []request.CartItemRequest) []service.CheckoutItemInput {
	out := make([]service.CheckoutItemInput, 0, len(items))
	for _, item := range items {
		out = append(out, service.CheckoutItemInput{
			ProductID: item.ProductID,
			Quantity:  item.Quantity,
		})
	}
	return out
}

func toAddress(req request.AddressRequest) entity.Address {
	return entity.Address{
		FullName:   req.FullName,
		Line1:      req.Line1,
		Line2:      req.Line2,
		City:       req.City,
		State:      req.State,
		PostalCode: req.PostalCode,
		Country:    req.Country,
		Phone:      req.Phone,
	}
}
