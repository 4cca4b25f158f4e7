package request

import "time"

// CreateBannerRequest represents a banner creation request
type CreateBannerRequest struct {
	Title          string     `json:"title" binding:"required,min=2,max=255"`
	Subtitle       *string    `json:"subtitle" binding:"omitempty,max=255"`
	ImageURL       string     `json:"image_url" binding:"required,max=512"`
	MobileImageURL *string    `json:"mobile_image_url" binding:"omitempty,max=512"`
	LinkURL        *string    `json:"link_url" binding:"omitempty,max=512"`
	LinkText       *string    `json:"link_text" binding:"omitempty,max=100"`
	Placement      string     `json:"placement" binding:"omitempty,oneof=home_hero home_secondary category_top product_sidebar checkout"`
	SortOrder      int        `json:"sort_order"`
	StartDate      time.Time  `json:"start_date" binding:"required"`
	EndDate        *time.Time `json:"end_date"`
}

// UpdateBannerRequest represents a banner update request
type UpdateBannerRequest struct {
	Title          *string    `json:"title" binding:"omitempty,min=2,max=255"`
	Subtitle       *string    `json:"subtitle" binding:"omitempty,max=255"`
	ImageURL       *string    `json:"image_url" binding:"omitempty,max=512"`
	MobileImageURL *string    `json:"mobile_image_url" binding:"omitempty,max=512"`
	LinkURL        *string    `json:"link_url" binding:"omitempty,max=512"`
	LinkText       *string    `json:"link_text" binding:"omitempty,max=100"`
	Placement      *string    `json:"placement" binding:"omitempty,oneof=home_hero home_secondary category_top product_sidebar checkout"`
	SortOrder      *int       `json:"sort_order"`
	StartDate      *time.Time `json:"start_date"`
	EndDate        *time.Time `json:"end_date"`
	IsActive       *bool      `json:"is_active"`
}
