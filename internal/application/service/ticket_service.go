package service

import (
	"context"

	"github.com/google/uuid"

	"github.com/freshbasket/storefront-api/internal/domain/entity"
	"github.com/freshbasket/storefront-api/internal/domain/enum"
	"github.com/freshbasket/storefront-api/internal/domain/repository"
	"github.com/freshbasket/storefront-api/pkg/apperror"
	"github.com/freshbasket/storefront-api/pkg/pagination"
	"github.com/freshbasket/storefront-api/pkg/utils"
)

var ticketCategories = map[string]bool{
	"order":    true,
	"product":  true,
	"payment":  true,
	"shipping": true,
	"return":   true,
	"other":    true,
}

// TicketService handles customer support tickets
type TicketService struct {
	ticketRepo repository.TicketRepository
	orderRepo  repository.OrderRepository
	userRepo   repository.UserRepository
}

// NewTicketService creates a new ticket service
func NewTicketService(ticketRepo repository.TicketRepository, orderRepo repository.OrderRepository, userRepo repository.UserRepository) *TicketService {
	return &TicketService{
		ticketRepo: ticketRepo,
		orderRepo:  orderRepo,
		userRepo:   userRepo,
	}
}

// CreateTicketInput represents the create ticket input
type CreateTicketInput struct {
	UserID     *uuid.UUID
	GuestEmail *string
	Subject    string
	Category   string
	Priority   enum.TicketPriority
	OrderID    *uuid.UUID
	Message    string
}

// CreateTicket opens a new support ticket with its first message
func (s *TicketService) CreateTicket(ctx context.Context, input *CreateTicketInput) (*entity.Ticket, error) {
	if input.Subject == "" {
		return nil, apperror.NewUnprocessableError("Subject is required")
	}
	if input.Message == "" {
		return nil, apperror.NewUnprocessableError("Message is required")
	}
	if !ticketCategories[input.Category] {
		return nil, apperror.NewUnprocessableError("Invalid ticket category")
	}
	if input.UserID == nil && (input.GuestEmail == nil || *input.GuestEmail == "") {
		return nil, apperror.NewUnprocessableError("Either a user or a guest email is required")
	}

	if input.OrderID != nil {
		order, err := s.orderRepo.GetByID(ctx, *input.OrderID)
		if err != nil {
			return nil, err
		}
		if order == nil {
			return nil, apperror.NewNotFoundError("Order")
		}
		if input.UserID != nil && order.UserID != *input.UserID {
			return nil, apperror.ErrForbidden
		}
	}

	ticket := &entity.Ticket{
		TicketNumber: utils.GenerateTicketNumber(),
		UserID:       input.UserID,
		GuestEmail:   input.GuestEmail,
		Subject:      input.Subject,
		Category:     input.Category,
		Priority:     input.Priority,
		Status:       enum.TicketStatusOpen,
		OrderID:      input.OrderID,
	}

	if err := s.ticketRepo.Create(ctx, ticket); err != nil {
		return nil, err
	}

	message := &entity.TicketMessage{
		TicketID: ticket.ID,
		SenderID: input.UserID,
		Message:  input.Message,
	}
	if err := s.ticketRepo.AppendMessage(ctx, message); err != nil {
		return nil, err
	}

	ticket.Messages = []entity.TicketMessage{*message}
	return ticket, nil
}

// GetTicket retrieves a ticket with its message thread. Customers can only
// read their own tickets.
func (s *TicketService) GetTicket(ctx context.Context, ticketID, userID uuid.UUID, isStaff bool) (*entity.Ticket, error) {
	ticket, err := s.ticketRepo.GetWithMessages(ctx, ticketID)
	if err != nil {
		return nil, err
	}
	if ticket == nil {
		return nil, apperror.NewNotFoundError("Ticket")
	}
	if !isStaff && (ticket.UserID == nil || *ticket.UserID != userID) {
		return nil, apperror.ErrForbidden
	}
	return ticket, nil
}

// ListMyTickets lists the tickets opened by a user
func (s *TicketService) ListMyTickets(ctx context.Context, userID uuid.UUID, params *pagination.PaginationParams) (*pagination.PaginatedResult[entity.Ticket], error) {
	tickets, total, err := s.ticketRepo.ListByUser(ctx, userID, params)
	if err != nil {
		return nil, err
	}

	pag := pagination.NewPagination(params.Page, params.PerPage, total)
	return pagination.NewPaginatedResult(tickets, pag), nil
}

// ListTickets lists all tickets with staff filters
func (s *TicketService) ListTickets(ctx context.Context, params *repository.TicketFilterParams) (*pagination.PaginatedResult[entity.Ticket], error) {
	tickets, total, err := s.ticketRepo.List(ctx, params)
	if err != nil {
		return nil, err
	}

	pag := pagination.NewPagination(params.Pagination.Page, params.Pagination.PerPage, total)
	return pagination.NewPaginatedResult(tickets, pag), nil
}

// ReplyInput represents a reply to a ticket thread
type ReplyInput struct {
	TicketID uuid.UUID
	SenderID uuid.UUID
	Message  string
	IsStaff  bool
}

// Reply appends a message to the ticket thread. A staff reply moves an open
// ticket to waiting-customer; a customer reply reopens in-progress handling.
func (s *TicketService) Reply(ctx context.Context, input *ReplyInput) (*entity.TicketMessage, error) {
	if input.Message == "" {
		return nil, apperror.NewUnprocessableError("Message is required")
	}

	ticket, err := s.ticketRepo.GetByID(ctx, input.TicketID)
	if err != nil {
		return nil, err
	}
	if ticket == nil {
		return nil, apperror.NewNotFoundError("Ticket")
	}
	if ticket.Status == enum.TicketStatusClosed {
		return nil, apperror.NewConflictError("Ticket is closed")
	}
	if !input.IsStaff && (ticket.UserID == nil || *ticket.UserID != input.SenderID) {
		return nil, apperror.ErrForbidden
	}

	message := &entity.TicketMessage{
		TicketID: input.TicketID,
		SenderID: &input.SenderID,
		Message:  input.Message,
		IsStaff:  input.IsStaff,
	}
	if err := s.ticketRepo.AppendMessage(ctx, message); err != nil {
		return nil, err
	}

	if input.IsStaff && ticket.Status == enum.TicketStatusOpen {
		ticket.Status = enum.TicketStatusWaitingCustomer
		if err := s.ticketRepo.Update(ctx, ticket); err != nil {
			return nil, err
		}
	} else if !input.IsStaff && ticket.Status == enum.TicketStatusWaitingCustomer {
		ticket.Status = enum.TicketStatusInProgress
		if err := s.ticketRepo.Update(ctx, ticket); err != nil {
			return nil, err
		}
	}

	return message, nil
}

// UpdateTicketInput represents a staff ticket update
type UpdateTicketInput struct {
	TicketID   uuid.UUID
	Status     *enum.TicketStatus
	Priority   *enum.TicketPriority
	AssignedTo *uuid.UUID
}

// UpdateTicket updates ticket status, priority or assignment
func (s *TicketService) UpdateTicket(ctx context.Context, input *UpdateTicketInput) (*entity.Ticket, error) {
	ticket, err := s.ticketRepo.GetByID(ctx, input.TicketID)
	if err != nil {
		return nil, err
	}
	if ticket == nil {
		return nil, apperror.NewNotFoundError("Ticket")
	}

	if input.AssignedTo != nil {
		assignee, err := s.userRepo.GetByID(ctx, *input.AssignedTo)
		if err != nil {
			return nil, err
		}
		if assignee == nil {
			return nil, apperror.NewNotFoundError("Assignee")
		}
		ticket.AssignedTo = input.AssignedTo
		if ticket.Status == enum.TicketStatusOpen {
			ticket.Status = enum.TicketStatusInProgress
		}
	}
	if input.Status != nil {
		ticket.Status = *input.Status
	}
	if input.Priority != nil {
		ticket.Priority = *input.Priority
	}

	if err := s.ticketRepo.Update(ctx, ticket); err != nil {
		return nil, err
	}

	return ticket, nil
}
