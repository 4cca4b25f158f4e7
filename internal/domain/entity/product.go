package entity

import (
	"encoding/json"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Product represents an item in the storefront catalog
type Product struct {
	ID                uuid.UUID      `gorm:"type:uuid;primary_key" json:"id"`
	CategoryID        *uuid.UUID     `gorm:"type:uuid;index" json:"category_id,omitempty"`
	Name              string         `gorm:"size:255;not null" json:"name"`
	Slug              string         `gorm:"size:255;unique;not null" json:"slug"`
	SKU               string         `gorm:"size:100;unique;not null" json:"sku"`
	Description       string         `gorm:"type:text" json:"description"`
	ShortDescription  *string        `gorm:"size:500" json:"short_description,omitempty"`
	Brand             *string        `gorm:"size:255" json:"brand,omitempty"`
	Price             int64          `gorm:"not null" json:"-"` // Stored in cents, excluded from JSON
	CompareAtPrice    *int64         `json:"-"`                 // Stored in cents, excluded from JSON
	Stock             int            `gorm:"default:0" json:"stock"`
	LowStockThreshold int            `gorm:"default:10" json:"low_stock_threshold"`
	PrimaryImageURL   *string        `gorm:"size:512" json:"primary_image_url,omitempty"`
	IsActive          bool           `gorm:"default:true" json:"is_active"`
	IsFeatured        bool           `gorm:"default:false" json:"is_featured"`
	IsBestseller      bool           `gorm:"default:false" json:"is_bestseller"`
	IsNewArrival      bool           `gorm:"default:false" json:"is_new_arrival"`
	RatingAverage     float64        `gorm:"default:0" json:"rating_average"`
	RatingCount       int            `gorm:"default:0" json:"rating_count"`
	TotalSales        int            `gorm:"default:0" json:"total_sales"`
	ViewCount         int            `gorm:"default:0" json:"view_count"`
	ExpiryDate        *time.Time     `json:"expiry_date,omitempty"`
	CreatedAt         time.Time      `json:"created_at"`
	UpdatedAt         time.Time      `json:"updated_at"`
	DeletedAt         gorm.DeletedAt `gorm:"index" json:"-"`

	// Relationships
	Category *Category `gorm:"foreignKey:CategoryID" json:"category,omitempty"`
	Reviews  []Review  `gorm:"foreignKey:ProductID" json:"-"`
}

// BeforeCreate generates a UUID before creating a new product
func (p *Product) BeforeCreate(tx *gorm.DB) error {
	if p.ID == uuid.Nil {
		p.ID = uuid.New()
	}
	return nil
}

// TableName returns the table name for the Product model
func (Product) TableName() string {
	return "products"
}

// IsLowStock reports whether the remaining stock is at or below the alert threshold
func (p *Product) IsLowStock() bool {
	return p.Stock <= p.LowStockThreshold
}

// GetPriceDecimal returns the price as a decimal (for display)
func (p *Product) GetPriceDecimal() float64 {
	return float64(p.Price) / 100
}

// SetPriceFromDecimal sets the price from a decimal value
func (p *Product) SetPriceFromDecimal(price float64) {
	p.Price = int64(price * 100)
}

// MarshalJSON custom marshaler to convert cents to decimal for API responses
func (p Product) MarshalJSON() ([]byte, error) {
	type Alias Product
	var compareAt *float64
	if p.CompareAtPrice != nil {
		v := float64(*p.CompareAtPrice) / 100
		compareAt = &v
	}
	return json.Marshal(&struct {
		Alias
		Price          float64  `json:"price"`
		CompareAtPrice *float64 `json:"compare_at_price,omitempty"`
		IsLowStock     bool     `json:"is_low_stock"`
	}{
		Alias:          Alias(p),
		Price:          p.GetPriceDecimal(),
		CompareAtPrice: compareAt,
		IsLowStock:     p.IsLowStock(),
	})
}

// Category represents a product category
type Category struct {
	ID        uuid.UUID      `gorm:"type:uuid;primary_key" json:"id"`
	ParentID  *uuid.UUID     `gorm:"type:uuid;index" json:"parent_id,omitempty"`
	Name      string         `gorm:"size:255;not null" json:"name"`
	Slug      string         `gorm:"size:255;unique;not null" json:"slug"`
	ImageURL  *string        `gorm:"size:512" json:"image_url,omitempty"`
	IsActive  bool           `gorm:"default:true" json:"is_active"`
	SortOrder int            `gorm:"default:0" json:"sort_order"`
	CreatedAt time.Time      `json:"created_at"`
	UpdatedAt time.Time      `json:"updated_at"`
	DeletedAt gorm.DeletedAt `gorm:"index" json:"-"`

	// Relationships
	Parent   *Category `gorm:"foreignKey:ParentID" json:"-"`
	Products []Product `gorm:"foreignKey:CategoryID" json:"-"`
}

// BeforeCreate generates a UUID before creating a new category
func (c *Category) BeforeCreate(tx *gorm.DB) error {
	if c.ID == uuid.Nil {
		c.ID = uuid.New()
	}
	return nil
}

// TableName returns the table name for the Category model
func (Category) TableName() string {
	return "categories"
}
