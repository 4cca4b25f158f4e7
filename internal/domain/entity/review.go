package entity

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Review represents a customer product review
type Review struct {
	ID                 uuid.UUID      `gorm:"type:uuid;primary_key" json:"id"`
	ProductID          uuid.UUID      `gorm:"type:uuid;not null;index:idx_reviews_product_user,unique" json:"product_id"`
	UserID             uuid.UUID      `gorm:"type:uuid;not null;index:idx_reviews_product_user,unique" json:"user_id"`
	OrderID            *uuid.UUID     `gorm:"type:uuid" json:"order_id,omitempty"`
	Rating             int            `gorm:"not null" json:"rating"` // 1..5
	Title              *string        `gorm:"size:255" json:"title,omitempty"`
	Comment            string         `gorm:"type:text" json:"comment"`
	IsVerifiedPurchase bool           `gorm:"default:false" json:"is_verified_purchase"`
	IsApproved         bool           `gorm:"default:false" json:"is_approved"`
	StaffResponse      *string        `gorm:"type:text" json:"staff_response,omitempty"`
	RespondedAt        *time.Time     `json:"responded_at,omitempty"`
	CreatedAt          time.Time      `json:"created_at"`
	UpdatedAt          time.Time      `json:"updated_at"`
	DeletedAt          gorm.DeletedAt `gorm:"index" json:"-"`

	// Relationships
	Product Product `gorm:"foreignKey:ProductID" json:"-"`
	User    User    `gorm:"foreignKey:UserID" json:"user,omitempty"`
}

// BeforeCreate generates a UUID before creating a new review
func (r *Review) BeforeCreate(tx *gorm.DB) error {
	if r.ID == uuid.Nil {
		r.ID = uuid.New()
	}
	return nil
}

// TableName returns the table name for the Review model
func (Review) TableName() string {
	return "reviews"
}
