package request

import "github.com/google/uuid"

// CreateProductRequest represents a product creation request.
// Amounts are decimal currency values.
type CreateProductRequest struct {
	CategoryID        *uuid.UUID `json:"category_id"`
	Name              string     `json:"name" binding:"required,min=2,max=255"`
	SKU               string     `json:"sku" binding:"omitempty,max=100"`
	Description       string     `json:"description"`
	ShortDescription  *string    `json:"short_description" binding:"omitempty,max=500"`
	Brand             *string    `json:"brand" binding:"omitempty,max=255"`
	Price             float64    `json:"price" binding:"required,gt=0"`
	CompareAtPrice    *float64   `json:"compare_at_price" binding:"omitempty,gt=0"`
	Stock             int        `json:"stock" binding:"min=0"`
	LowStockThreshold *int       `json:"low_stock_threshold" binding:"omitempty,min=0"`
	PrimaryImageURL   *string    `json:"primary_image_url" binding:"omitempty,max=512"`
	IsActive          *bool      `json:"is_active"`
	IsFeatured        bool       `json:"is_featured"`
	IsBestseller      bool       `json:"is_bestseller"`
	IsNewArrival      bool       `json:"is_new_arrival"`
}

// BulkImportProductsRequest represents a bulk product import request
type BulkImportProductsRequest struct {
	Products []CreateProductRequest `json:"products" binding:"required,min=1,max=500,dive"`
}

// UpdateProductRequest represents a product update request
type UpdateProductRequest struct {
	CategoryID        *uuid.UUID `json:"category_id"`
	Name              *string    `json:"name" binding:"omitempty,min=2,max=255"`
	Description       *string    `json:"description"`
	ShortDescription  *string    `json:"short_description" binding:"omitempty,max=500"`
	Brand             *string    `json:"brand" binding:"omitempty,max=255"`
	Price             *float64   `json:"price" binding:"omitempty,gt=0"`
	CompareAtPrice    *float64   `json:"compare_at_price" binding:"omitempty,gt=0"`
	Stock             *int       `json:"stock" binding:"omitempty,min=0"`
	LowStockThreshold *int       `json:"low_stock_threshold" binding:"omitempty,min=0"`
	PrimaryImageURL   *string    `json:"primary_image_url" binding:"omitempty,max=512"`
	IsActive          *bool      `json:"is_active"`
	IsFeatured        *bool      `json:"is_featured"`
	IsBestseller      *bool      `json:"is_bestseller"`
	IsNewArrival      *bool      `json:"is_new_arrival"`
}

// ProductFilterRequest represents product filter parameters
type ProductFilterRequest struct {
	Search      string   `form:"search"`
	CategoryID  string   `form:"category_id"`
	Featured    *bool    `form:"featured"`
	Bestseller  *bool    `form:"bestseller"`
	NewArrival  *bool    `form:"new_arrival"`
	MinPrice    *float64 `form:"min_price"`
	MaxPrice    *float64 `form:"max_price"`
	InStockOnly bool     `form:"in_stock_only"`
	SortBy      string   `form:"sort_by"`
	SortOrder   string   `form:"sort_order"`
	Page        int      `form:"page"`
	PerPage     int      `form:"per_page"`
}

// CreateCategoryRequest represents a category creation request
type CreateCategoryRequest struct {
	ParentID  *uuid.UUID `json:"parent_id"`
	Name      string     `json:"name" binding:"required,min=2,max=255"`
	ImageURL  *string    `json:"image_url" binding:"omitempty,max=512"`
	SortOrder int        `json:"sort_order"`
}

// UpdateCategoryRequest represents a category update request
type UpdateCategoryRequest struct {
	ParentID  *uuid.UUID `json:"parent_id"`
	Name      *string    `json:"name" binding:"omitempty,min=2,max=255"`
	ImageURL  *string    `json:"image_url" binding:"omitempty,max=512"`
	IsActive  *bool      `json:"is_active"`
	SortOrder *int       `json:"sort_order"`
}
