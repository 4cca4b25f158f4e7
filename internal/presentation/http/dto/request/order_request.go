package request

import "github.com/google/uuid"

// CartItemRequest is one cart line in a quote or checkout request
type CartItemRequest struct {
	ProductID uuid.UUID `json:"product_id" binding:"required"`
	Quantity  int       `json:"quantity" binding:"required,gt=0"`
}

// AddressRequest represents a shipping or billing address
type AddressRequest struct {
	FullName   string `json:"full_name" binding:"required,max=255"`
	Line1      string `json:"line1" binding:"required,max=255"`
	Line2      string `json:"line2" binding:"omitempty,max=255"`
	City       string `json:"city" binding:"required,max=100"`
	State      string `json:"state" binding:"required,max=100"`
	PostalCode string `json:"postal_code" binding:"required,max=20"`
	Country    string `json:"country" binding:"required,max=100"`
	Phone      string `json:"phone" binding:"omitempty,max=20"`
}

// QuoteRequest represents a cart pricing preview request
type QuoteRequest struct {
	Items        []CartItemRequest `json:"items" binding:"required,min=1,dive"`
	CouponCode   string            `json:"coupon_code"`
	RedeemPoints bool              `json:"redeem_points"`
}

// CheckoutRequest represents an order placement request
type CheckoutRequest struct {
	Items           []CartItemRequest `json:"items" binding:"required,min=1,dive"`
	CouponCode      string            `json:"coupon_code"`
	RedeemPoints    bool              `json:"redeem_points"`
	PaymentMethod   string            `json:"payment_method" binding:"required,oneof=card mpesa cash_on_delivery"`
	ShippingAddress AddressRequest    `json:"shipping_address" binding:"required"`
	BillingAddress  *AddressRequest   `json:"billing_address"`
}

// UpdateOrderStatusRequest represents a staff order status update
type UpdateOrderStatusRequest struct {
	Status         string  `json:"status" binding:"required"`
	Note           string  `json:"note" binding:"omitempty,max=500"`
	TrackingNumber *string `json:"tracking_number" binding:"omitempty,max=100"`
	Carrier        *string `json:"carrier" binding:"omitempty,max=100"`
}

// CancelOrderRequest represents an order cancellation request
type CancelOrderRequest struct {
	Reason string `json:"reason" binding:"omitempty,max=500"`
}

// OrderFilterRequest represents staff order list filters
type OrderFilterRequest struct {
	Status    string `form:"status"`
	Search    string `form:"search"`
	SortBy    string `form:"sort_by"`
	SortOrder string `form:"sort_order"`
	Page      int    `form:"page"`
	PerPage   int    `form:"per_page"`
}
