package entity

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/freshbasket/storefront-api/internal/domain/enum"
)

// Ticket represents a customer support ticket
type Ticket struct {
	ID           uuid.UUID           `gorm:"type:uuid;primary_key" json:"id"`
	TicketNumber string              `gorm:"size:50;unique;not null" json:"ticket_number"`
	UserID       *uuid.UUID          `gorm:"type:uuid;index" json:"user_id,omitempty"`
	GuestEmail   *string             `gorm:"size:255" json:"guest_email,omitempty"`
	Subject      string              `gorm:"size:255;not null" json:"subject"`
	Category     string              `gorm:"size:50;not null" json:"category"` // order, product, payment, shipping, return, other
	Priority     enum.TicketPriority `gorm:"default:1" json:"priority"`
	Status       enum.TicketStatus   `gorm:"default:0" json:"status"`
	OrderID      *uuid.UUID          `gorm:"type:uuid" json:"order_id,omitempty"`
	AssignedTo   *uuid.UUID          `gorm:"type:uuid" json:"assigned_to,omitempty"`
	CreatedAt    time.Time           `json:"created_at"`
	UpdatedAt    time.Time           `json:"updated_at"`
	DeletedAt    gorm.DeletedAt      `gorm:"index" json:"-"`

	// Relationships
	User     *User           `gorm:"foreignKey:UserID" json:"user,omitempty"`
	Order    *Order          `gorm:"foreignKey:OrderID" json:"-"`
	Messages []TicketMessage `gorm:"foreignKey:TicketID" json:"messages,omitempty"`
}

// BeforeCreate generates a UUID before creating a new ticket
func (t *Ticket) BeforeCreate(tx *gorm.DB) error {
	if t.ID == uuid.Nil {
		t.ID = uuid.New()
	}
	return nil
}

// TableName returns the table name for the Ticket model
func (Ticket) TableName() string {
	return "tickets"
}

// TicketMessage is one message in a ticket's reply thread
type TicketMessage struct {
	ID        uuid.UUID  `gorm:"type:uuid;primary_key" json:"id"`
	TicketID  uuid.UUID  `gorm:"type:uuid;not null;index" json:"ticket_id"`
	SenderID  *uuid.UUID `gorm:"type:uuid" json:"sender_id,omitempty"`
	Message   string     `gorm:"type:text;not null" json:"message"`
	IsStaff   bool       `gorm:"default:false" json:"is_staff"`
	CreatedAt time.Time  `json:"created_at"`

	// Relationships
	Ticket Ticket `gorm:"foreignKey:TicketID" json:"-"`
	Sender *User  `gorm:"foreignKey:SenderID" json:"sender,omitempty"`
}

// BeforeCreate generates a UUID before creating a new ticket message
func (m *TicketMessage) BeforeCreate(tx *gorm.DB) error {
	if m.ID == uuid.Nil {
		m.ID = uuid.New()
	}
	return nil
}

// TableName returns the table name for the TicketMessage model
func (TicketMessage) TableName() string {
	return "ticket_messages"
}
