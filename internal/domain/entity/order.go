package entity

import (
	"encoding/json"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/freshbasket/storefront-api/internal/domain/enum"
)

// Address holds a shipping or billing address, serialized as JSON on the order
type Address struct {
	FullName   string `json:"full_name"`
	Line1      string `json:"line1"`
	Line2      string `json:"line2,omitempty"`
	City       string `json:"city"`
	State      string `json:"state"`
	PostalCode string `json:"postal_code"`
	Country    string `json:"country"`
	Phone      string `json:"phone,omitempty"`
}

// Order represents a placed customer order
type Order struct {
	ID                  uuid.UUID          `gorm:"type:uuid;primary_key" json:"id"`
	OrderNumber         string             `gorm:"size:50;unique;not null" json:"order_number"`
	UserID              uuid.UUID          `gorm:"type:uuid;not null;index" json:"user_id"`
	Status              enum.OrderStatus   `gorm:"default:0" json:"status"`
	PaymentStatus       enum.PaymentStatus `gorm:"default:0" json:"payment_status"`
	PaymentMethod       string             `gorm:"size:50" json:"payment_method"`
	SubTotal            int64              `gorm:"default:0" json:"-"` // Stored in cents, excluded from JSON
	Discount            int64              `gorm:"default:0" json:"-"` // Stored in cents, excluded from JSON
	CouponCode          *string            `gorm:"size:50" json:"coupon_code,omitempty"`
	LoyaltyPointsUsed   int64              `gorm:"default:0" json:"loyalty_points_used"`
	LoyaltyPointsEarned int64              `gorm:"default:0" json:"loyalty_points_earned"`
	ShippingCost        int64              `gorm:"default:0" json:"-"` // Stored in cents, excluded from JSON
	Tax                 int64              `gorm:"default:0" json:"-"` // Stored in cents, excluded from JSON
	Total               int64              `gorm:"default:0" json:"-"` // Stored in cents, excluded from JSON
	ShippingAddress     Address            `gorm:"serializer:json" json:"shipping_address"`
	BillingAddress      Address            `gorm:"serializer:json" json:"billing_address"`
	TrackingNumber      *string            `gorm:"size:100" json:"tracking_number,omitempty"`
	Carrier             *string            `gorm:"size:100" json:"carrier,omitempty"`
	CancelReason        *string            `gorm:"size:500" json:"cancel_reason,omitempty"`
	DeliveredAt         *time.Time         `json:"delivered_at,omitempty"`
	CreatedAt           time.Time          `json:"created_at"`
	UpdatedAt           time.Time          `json:"updated_at"`
	DeletedAt           gorm.DeletedAt     `gorm:"index" json:"-"`

	// Relationships
	User          User                 `gorm:"foreignKey:UserID" json:"-"`
	Items         []OrderItem          `gorm:"foreignKey:OrderID" json:"items,omitempty"`
	StatusHistory []OrderStatusHistory `gorm:"foreignKey:OrderID" json:"status_history,omitempty"`
}

// MarshalJSON custom marshaler to convert cents to decimal for API responses
func (o Order) MarshalJSON() ([]byte, error) {
	type Alias Order
	return json.Marshal(&struct {
		Alias
		SubTotal     float64 `json:"sub_total"`
		Discount     float64 `json:"discount"`
		ShippingCost float64 `json:"shipping_cost"`
		Tax          float64 `json:"tax"`
		Total        float64 `json:"total"`
	}{
		Alias:        Alias(o),
		SubTotal:     float64(o.SubTotal) / 100,
		Discount:     float64(o.Discount) / 100,
		ShippingCost: float64(o.ShippingCost) / 100,
		Tax:          float64(o.Tax) / 100,
		Total:        float64(o.Total) / 100,
	})
}

// BeforeCreate generates a UUID before creating a new order
func (o *Order) BeforeCreate(tx *gorm.DB) error {
	if o.ID == uuid.Nil {
		o.ID = uuid.New()
	}
	return nil
}

// TableName returns the table name for the Order model
func (Order) TableName() string {
	return "orders"
}

// GetTotalDecimal returns the total as a decimal
func (o *Order) GetTotalDecimal() float64 {
	return float64(o.Total) / 100
}

// OrderItem represents a line item in an order with a price snapshot
// taken at order-creation time
type OrderItem struct {
	ID          uuid.UUID      `gorm:"type:uuid;primary_key" json:"id"`
	OrderID     uuid.UUID      `gorm:"type:uuid;not null;index" json:"order_id"`
	ProductID   uuid.UUID      `gorm:"type:uuid;not null;index" json:"product_id"`
	ProductName string         `gorm:"size:255;not null" json:"product_name"`
	SKU         string         `gorm:"size:100" json:"sku"`
	ImageURL    *string        `gorm:"size:512" json:"image_url,omitempty"`
	Quantity    int            `gorm:"not null" json:"quantity"`
	UnitPrice   int64          `gorm:"not null" json:"-"` // Stored in cents, excluded from JSON
	LineTotal   int64          `gorm:"not null" json:"-"` // Stored in cents, excluded from JSON
	CreatedAt   time.Time      `json:"created_at"`
	UpdatedAt   time.Time      `json:"updated_at"`
	DeletedAt   gorm.DeletedAt `gorm:"index" json:"-"`

	// Relationships
	Order   Order   `gorm:"foreignKey:OrderID" json:"-"`
	Product Product `gorm:"foreignKey:ProductID" json:"product,omitempty"`
}

// MarshalJSON custom marshaler to convert cents to decimal for API responses
func (i OrderItem) MarshalJSON() ([]byte, error) {
	type Alias OrderItem
	return json.Marshal(&struct {
		Alias
		UnitPrice float64 `json:"unit_price"`
		LineTotal float64 `json:"line_total"`
	}{
		Alias:     Alias(i),
		UnitPrice: float64(i.UnitPrice) / 100,
		LineTotal: float64(i.LineTotal) / 100,
	})
}

// BeforeCreate generates a UUID before creating a new order item
func (i *OrderItem) BeforeCreate(tx *gorm.DB) error {
	if i.ID == uuid.Nil {
		i.ID = uuid.New()
	}
	return nil
}

// TableName returns the table name for the OrderItem model
func (OrderItem) TableName() string {
	return "order_items"
}

// OrderStatusHistory is an append-only record of an order status transition.
// Rows are created once and never edited.
type OrderStatusHistory struct {
	ID        uuid.UUID        `gorm:"type:uuid;primary_key" json:"id"`
	OrderID   uuid.UUID        `gorm:"type:uuid;not null;index" json:"order_id"`
	Status    enum.OrderStatus `gorm:"not null" json:"status"`
	Note      *string          `gorm:"size:500" json:"note,omitempty"`
	UpdatedBy uuid.UUID        `gorm:"type:uuid;not null" json:"updated_by"`
	UpdatedAt time.Time        `gorm:"autoCreateTime" json:"updated_at"`
}

// BeforeCreate generates a UUID before creating a status history row
func (h *OrderStatusHistory) BeforeCreate(tx *gorm.DB) error {
	if h.ID == uuid.Nil {
		h.ID = uuid.New()
	}
	return nil
}

// TableName returns the table name for the OrderStatusHistory model
func (OrderStatusHistory) TableName() string {
	return "order_status_history"
}
