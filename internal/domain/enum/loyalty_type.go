package enum

import (
	"database/sql/driver"
	"encoding/json"
)

// LoyaltyType classifies a loyalty ledger entry
type LoyaltyType int

const (
	LoyaltyTypeEarned   LoyaltyType = 0
	LoyaltyTypeRedeemed LoyaltyType = 1
	LoyaltyTypeExpired  LoyaltyType = 2
	LoyaltyTypeAdjusted LoyaltyType = 3
)

var loyaltyTypeNames = [...]string{"earned", "redeemed", "expired", "adjusted"}

func (t LoyaltyType) String() string {
	if int(t) < 0 || int(t) >= len(loyaltyTypeNames) {
		return "earned"
	}
	return loyaltyTypeNames[t]
}

func (t LoyaltyType) MarshalJSON() ([]byte, error) {
	return json.Marshal(t.String())
}

func (t *LoyaltyType) UnmarshalJSON(data []byte) error {
	var str string
	if err := json.Unmarshal(data, &str); err != nil {
		var i int
		if err := json.Unmarshal(data, &i); err != nil {
			return err
		}
		*t = LoyaltyType(i)
		return nil
	}
	for i, n := range loyaltyTypeNames {
		if n == str {
			*t = LoyaltyType(i)
			break
		}
	}
	return nil
}

func (t LoyaltyType) Value() (driver.Value, error) {
	return int64(t), nil
}

func (t *LoyaltyType) Scan(value interface{}) error {
	if value == nil {
		*t = LoyaltyTypeEarned
		return nil
	}
	switch v := value.(type) {
	case int64:
		*t = LoyaltyType(v)
	case int:
		*t = LoyaltyType(v)
	}
	return nil
}
