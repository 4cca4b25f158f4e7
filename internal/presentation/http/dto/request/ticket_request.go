package request

import "github.com/google/uuid"

// CreateTicketRequest represents a support ticket creation request
type CreateTicketRequest struct {
	GuestEmail *string    `json:"guest_email" binding:"omitempty,email"`
	Subject    string     `json:"subject" binding:"required,min=3,max=255"`
	Category   string     `json:"category" binding:"required,oneof=order product payment shipping return other"`
	Priority   string     `json:"priority" binding:"omitempty,oneof=low medium high urgent"`
	OrderID    *uuid.UUID `json:"order_id"`
	Message    string     `json:"message" binding:"required,max=10000"`
}

// TicketReplyRequest represents a reply to a ticket thread
type TicketReplyRequest struct {
	Message string `json:"message" binding:"required,max=10000"`
}

// UpdateTicketRequest represents a staff ticket update
type UpdateTicketRequest struct {
	Status     *string    `json:"status" binding:"omitempty,oneof=open in_progress waiting_customer resolved closed"`
	Priority   *string    `json:"priority" binding:"omitempty,oneof=low medium high urgent"`
	AssignedTo *uuid.UUID `json:"assigned_to"`
}

// TicketFilterRequest represents staff ticket list filters
type TicketFilterRequest struct {
	Status     string `form:"status"`
	Priority   string `form:"priority"`
	Category   string `form:"category"`
	AssignedTo string `form:"assigned_to"`
	Page       int    `form:"page"`
	PerPage    int    `form:"per_page"`
}
