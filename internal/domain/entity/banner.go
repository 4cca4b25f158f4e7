package entity

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Banner represents a promotional banner shown by the storefront UI
type Banner struct {
	ID              uuid.UUID      `gorm:"type:uuid;primary_key" json:"id"`
	Title           string         `gorm:"size:255;not null" json:"title"`
	Subtitle        *string        `gorm:"size:255" json:"subtitle,omitempty"`
	ImageURL        string         `gorm:"size:512;not null" json:"image_url"`
	MobileImageURL  *string        `gorm:"size:512" json:"mobile_image_url,omitempty"`
	LinkURL         *string        `gorm:"size:512" json:"link_url,omitempty"`
	LinkText        *string        `gorm:"size:100" json:"link_text,omitempty"`
	Placement       string         `gorm:"size:50;default:'home_hero'" json:"placement"` // home_hero, home_secondary, category_top, product_sidebar, checkout
	SortOrder       int            `gorm:"default:0" json:"sort_order"`
	StartDate       time.Time      `gorm:"not null" json:"start_date"`
	EndDate         *time.Time     `json:"end_date,omitempty"`
	IsActive        bool           `gorm:"default:true" json:"is_active"`
	ClickCount      int            `gorm:"default:0" json:"click_count"`
	ImpressionCount int            `gorm:"default:0" json:"impression_count"`
	CreatedAt       time.Time      `json:"created_at"`
	UpdatedAt       time.Time      `json:"updated_at"`
	DeletedAt       gorm.DeletedAt `gorm:"index" json:"-"`
}

// BeforeCreate generates a UUID before creating a new banner
func (b *Banner) BeforeCreate(tx *gorm.DB) error {
	if b.ID == uuid.Nil {
		b.ID = uuid.New()
	}
	return nil
}

// TableName returns the table name for the Banner model
func (Banner) TableName() string {
	return "banners"
}

// IsLive reports whether the banner should currently be displayed
func (b *Banner) IsLive(now time.Time) bool {
	if !b.IsActive || now.Before(b.StartDate) {
		return false
	}
	if b.EndDate != nil && now.After(*b.EndDate) {
		return false
	}
	return true
}
