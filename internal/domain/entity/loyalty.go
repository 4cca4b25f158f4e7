package entity

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/freshbasket/storefront-api/internal/domain/enum"
)

// LoyaltyTransaction is an immutable ledger entry recording a change to a
// user's loyalty point balance. Entries are appended once and never updated:
// BalanceAfter lets the balance at any point in time be reconstructed.
type LoyaltyTransaction struct {
	ID           uuid.UUID        `gorm:"type:uuid;primary_key" json:"id"`
	UserID       uuid.UUID        `gorm:"type:uuid;not null;index" json:"user_id"`
	Type         enum.LoyaltyType `gorm:"not null" json:"type"`
	Points       int64            `gorm:"not null" json:"points"` // Signed: negative for redemptions
	Description  string           `gorm:"size:500;not null" json:"description"`
	OrderID      *uuid.UUID       `gorm:"type:uuid;index" json:"order_id,omitempty"`
	BalanceAfter int64            `gorm:"not null" json:"balance_after"`
	ExpiresAt    *time.Time       `json:"expires_at,omitempty"`
	CreatedAt    time.Time        `json:"created_at"`

	// Relationships
	User  User   `gorm:"foreignKey:UserID" json:"-"`
	Order *Order `gorm:"foreignKey:OrderID" json:"-"`
}

// BeforeCreate generates a UUID before creating a new ledger entry
func (t *LoyaltyTransaction) BeforeCreate(tx *gorm.DB) error {
	if t.ID == uuid.Nil {
		t.ID = uuid.New()
	}
	return nil
}

// TableName returns the table name for the LoyaltyTransaction model
func (LoyaltyTransaction) TableName() string {
	return "loyalty_transactions"
}
