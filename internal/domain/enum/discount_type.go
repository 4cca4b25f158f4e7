package enum

import (
	"database/sql/driver"
	"encoding/json"
)

// DiscountType represents how a coupon discount is calculated
type DiscountType int

const (
	// DiscountTypePercentage discounts a percentage of the cart subtotal.
	DiscountTypePercentage DiscountType = 0
	// DiscountTypeFixed discounts a fixed currency amount.
	DiscountTypeFixed DiscountType = 1
)

var discountTypeNames = [...]string{"percentage", "fixed"}

func (t DiscountType) String() string {
	if int(t) < 0 || int(t) >= len(discountTypeNames) {
		return "percentage"
	}
	return discountTypeNames[t]
}

// ParseDiscountType resolves a type name to its enum value
func ParseDiscountType(name string) (DiscountType, bool) {
	for i, n := range discountTypeNames {
		if n == name {
			return DiscountType(i), true
		}
	}
	return DiscountTypePercentage, false
}

func (t DiscountType) MarshalJSON() ([]byte, error) {
	return json.Marshal(t.String())
}

func (t *DiscountType) UnmarshalJSON(data []byte) error {
	var str string
	if err := json.Unmarshal(data, &str); err != nil {
		var i int
		if err := json.Unmarshal(data, &i); err != nil {
			return err
		}
		*t = DiscountType(i)
		return nil
	}
	switch str {
	case "percentage":
		*t = DiscountTypePercentage
	case "fixed":
		*t = DiscountTypeFixed
	}
	return nil
}

func (t DiscountType) Value() (driver.Value, error) {
	return int64(t), nil
}

func (t *DiscountType) Scan(value interface{}) error {
	if value == nil {
		*t = DiscountTypePercentage
		return nil
	}
	switch v := value.(type) {
	case int64:
		*t = DiscountType(v)
	case int:
		*t = DiscountType(v)
	}
	return nil
}
