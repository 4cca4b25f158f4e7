package enum

import (
	"database/sql/driver"
	"encoding/json"
)

// OrderStatus represents the status of an order
type OrderStatus int

const (
	OrderStatusPending    OrderStatus = 0
	OrderStatusConfirmed  OrderStatus = 1
	OrderStatusProcessing OrderStatus = 2
	OrderStatusShipped    OrderStatus = 3
	OrderStatusDelivered  OrderStatus = 4
	OrderStatusCancelled  OrderStatus = 5
	OrderStatusReturned   OrderStatus = 6
)

var orderStatusNames = [...]string{
	"pending", "confirmed", "processing", "shipped", "delivered", "cancelled", "returned",
}

func (s OrderStatus) String() string {
	if int(s) < 0 || int(s) >= len(orderStatusNames) {
		return "pending"
	}
	return orderStatusNames[s]
}

// ParseOrderStatus converts a status name to an OrderStatus.
// Returns (status, true) on success, (OrderStatusPending, false) otherwise.
func ParseOrderStatus(name string) (OrderStatus, bool) {
	for i, n := range orderStatusNames {
		if n == name {
			return OrderStatus(i), true
		}
	}
	return OrderStatusPending, false
}

// CanTransitionTo reports whether the order status machine permits moving to next.
// Forward flow is pending -> confirmed -> processing -> shipped -> delivered.
// Cancellation is only allowed from pending or confirmed; returns only from delivered.
func (s OrderStatus) CanTransitionTo(next OrderStatus) bool {
	switch next {
	case OrderStatusConfirmed:
		return s == OrderStatusPending
	case OrderStatusProcessing:
		return s == OrderStatusConfirmed
	case OrderStatusShipped:
		return s == OrderStatusProcessing
	case OrderStatusDelivered:
		return s == OrderStatusShipped
	case OrderStatusCancelled:
		return s == OrderStatusPending || s == OrderStatusConfirmed
	case OrderStatusReturned:
		return s == OrderStatusDelivered
	default:
		return false
	}
}

// IsTerminal reports whether no further stock mutation may follow this status.
func (s OrderStatus) IsTerminal() bool {
	return s == OrderStatusCancelled || s == OrderStatusReturned
}

// IsCancellable reports whether the order may still be cancelled.
func (s OrderStatus) IsCancellable() bool {
	return s == OrderStatusPending || s == OrderStatusConfirmed
}

func (s OrderStatus) MarshalJSON() ([]byte, error) {
	return json.Marshal(s.String())
}

func (s *OrderStatus) UnmarshalJSON(data []byte) error {
	var str string
	if err := json.Unmarshal(data, &str); err != nil {
		// Try unmarshaling as int
		var i int
		if err := json.Unmarshal(data, &i); err != nil {
			return err
		}
		*s = OrderStatus(i)
		return nil
	}
	if parsed, ok := ParseOrderStatus(str); ok {
		*s = parsed
	}
	return nil
}

func (s OrderStatus) Value() (driver.Value, error) {
	return int64(s), nil
}

func (s *OrderStatus) Scan(value interface{}) error {
	if value == nil {
		*s = OrderStatusPending
		return nil
	}
	switch v := value.(type) {
	case int64:
		*s = OrderStatus(v)
	case int:
		*s = OrderStatus(v)
	}
	return nil
}
