package repository

import (
	"context"

	"github.com/google/uuid"

	"github.com/freshbasket/storefront-api/internal/domain/entity"
	"github.com/freshbasket/storefront-api/internal/domain/enum"
	"github.com/freshbasket/storefront-api/pkg/pagination"
)

// TicketRepository defines the interface for support ticket data operations
type TicketRepository interface {
	Create(ctx context.Context, ticket *entity.Ticket) error
	GetByID(ctx context.Context, id uuid.UUID) (*entity.Ticket, error)
	GetWithMessages(ctx context.Context, id uuid.UUID) (*entity.Ticket, error)
	Update(ctx context.Context, ticket *entity.Ticket) error
	ListByUser(ctx context.Context, userID uuid.UUID, params *pagination.PaginationParams) ([]entity.Ticket, int64, error)
	List(ctx context.Context, params *TicketFilterParams) ([]entity.Ticket, int64, error)
	AppendMessage(ctx context.Context, message *entity.TicketMessage) error
}

// TicketFilterParams contains filtering parameters for staff ticket queries
type TicketFilterParams struct {
	Pagination *pagination.PaginationParams
	Status     *enum.TicketStatus
	Priority   *enum.TicketPriority
	Category   string
	AssignedTo *uuid.UUID
}
