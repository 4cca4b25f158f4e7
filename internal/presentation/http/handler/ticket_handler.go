package handler

import (
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/freshbasket/storefront-api/internal/application/service"
	"github.com/freshbasket/storefront-api/internal/domain/enum"
	"github.com/freshbasket/storefront-api/internal/domain/repository"
	"github.com/freshbasket/storefront-api/internal/presentation/http/dto/request"
	"github.com/freshbasket/storefront-api/internal/presentation/http/dto/response"
	"github.com/freshbasket/storefront-api/pkg/pagination"
)

// TicketHandler handles support ticket HTTP requests
type TicketHandler struct {
	ticketService *service.TicketService
}

// NewTicketHandler creates a new ticket handler
func NewTicketHandler(ticketService *service.TicketService) *TicketHandler {
	return &TicketHandler{ticketService: ticketService}
}

// Create opens a support ticket
// @Summary Create ticket
// @Tags tickets
// @Accept json
// @Produce json
// @Param request body request.CreateTicketRequest true "Ticket data"
// @Success 201 {object} response.APIResponse
// @Router /tickets [post]
func (h *TicketHandler) Create(c *gin.Context) {
	var req request.CreateTicketRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "Invalid request body")
		return
	}

	priority := enum.TicketPriorityMedium
	if req.Priority != "" {
		priority, _ = enum.ParseTicketPriority(req.Priority)
	}

	input := &service.CreateTicketInput{
		UserID:     GetUserID(c),
		GuestEmail: req.GuestEmail,
		Subject:    req.Subject,
		Category:   req.Category,
		Priority:   priority,
		OrderID:    req.OrderID,
		Message:    req.Message,
	}

	ticket, err := h.ticketService.CreateTicket(c.Request.Context(), input)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Created(c, "Ticket created", ticket)
}

// ListMine lists the caller's tickets
// @Summary My tickets
// @Tags tickets
// @Produce json
// @Security BearerAuth
// @Success 200 {object} response.APIResponse
// @Router /tickets [get]
func (h *TicketHandler) ListMine(c *gin.Context) {
	userID := GetUserID(c)
	if userID == nil {
		response.Unauthorized(c, "Authentication required")
		return
	}

	var req request.TicketFilterRequest
	if err := c.ShouldBindQuery(&req); err != nil {
		response.BadRequest(c, "Invalid query parameters")
		return
	}

	params := &pagination.PaginationParams{Page: req.Page, PerPage: req.PerPage}
	params.Validate()

	result, err := h.ticketService.ListMyTickets(c.Request.Context(), *userID, params)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.SuccessWithPagination(c, 200, "Tickets retrieved", result)
}

// Get retrieves a ticket with its message thread
// @Summary Get ticket
// @Tags tickets
// @Produce json
// @Security BearerAuth
// @Param id path string true "Ticket ID"
// @Success 200 {object} response.APIResponse
// @Router /tickets/{id} [get]
func (h *TicketHandler) Get(c *gin.Context) {
	userID := GetUserID(c)
	if userID == nil {
		response.Unauthorized(c, "Authentication required")
		return
	}

	ticketID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		response.BadRequest(c, "Invalid ticket ID")
		return
	}

	ticket, err := h.ticketService.GetTicket(c.Request.Context(), ticketID, *userID, IsStaff(c))
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, "Ticket retrieved", ticket)
}

// Reply appends a message to a ticket
// @Summary Reply to ticket
// @Tags tickets
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path string true "Ticket ID"
// @Param request body request.TicketReplyRequest true "Message"
// @Success 201 {object} response.APIResponse
// @Router /tickets/{id}/messages [post]
func (h *TicketHandler) Reply(c *gin.Context) {
	userID := GetUserID(c)
	if userID == nil {
		response.Unauthorized(c, "Authentication required")
		return
	}

	ticketID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		response.BadRequest(c, "Invalid ticket ID")
		return
	}

	var req request.TicketReplyRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "Invalid request body")
		return
	}

	message, err := h.ticketService.Reply(c.Request.Context(), &service.ReplyInput{
		TicketID: ticketID,
		SenderID: *userID,
		Message:  req.Message,
		IsStaff:  IsStaff(c),
	})
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Created(c, "Reply sent", message)
}

// ListAll lists all tickets for staff
// @Summary List tickets
// @Tags tickets
// @Produce json
// @Security BearerAuth
// @Success 200 {object} response.APIResponse
// @Router /admin/tickets [get]
func (h *TicketHandler) ListAll(c *gin.Context) {
	var req request.TicketFilterRequest
	if err := c.ShouldBindQuery(&req); err != nil {
		response.BadRequest(c, "Invalid query parameters")
		return
	}

	params := &repository.TicketFilterParams{
		Pagination: &pagination.PaginationParams{Page: req.Page, PerPage: req.PerPage},
		Category:   req.Category,
	}
	params.Pagination.Validate()

	if req.Status != "" {
		status, ok := enum.ParseTicketStatus(req.Status)
		if !ok {
			response.BadRequest(c, "Invalid ticket status")
			return
		}
		params.Status = &status
	}
	if req.Priority != "" {
		priority, ok := enum.ParseTicketPriority(req.Priority)
		if !ok {
			response.BadRequest(c, "Invalid ticket priority")
			return
		}
		params.Priority = &priority
	}
	if req.AssignedTo != "" {
		assignee, err := uuid.Parse(req.AssignedTo)
		if err != nil {
			response.BadRequest(c, "Invalid assignee ID")
			return
		}
		params.AssignedTo = &assignee
	}

	result, err := h.ticketService.ListTickets(c.Request.Context(), params)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.SuccessWithPagination(c, 200, "Tickets retrieved", result)
}

// Update updates ticket status, priority or assignment
// @Summary Update ticket
// @Tags tickets
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path string true "Ticket ID"
// @Param request body request.UpdateTicketRequest true "Update data"
// @Success 200 {object} response.APIResponse
// @Router /admin/tickets/{id} [patch]
func (h *TicketHandler) Update(c *gin.Context) {
	ticketID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		response.BadRequest(c, "Invalid ticket ID")
		return
	}

	var req request.UpdateTicketRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "Invalid request body")
		return
	}

	input := &service.UpdateTicketInput{
		TicketID:   ticketID,
		AssignedTo: req.AssignedTo,
	}
	if req.Status != nil {
		status, ok := enum.ParseTicketStatus(*req.Status)
		if !ok {
			response.BadRequest(c, "Invalid ticket status")
			return
		}
		input.Status = &status
	}
	if req.Priority != nil {
		priority, ok := enum.ParseTicketPriority(*req.Priority)
		if !ok {
			response.BadRequest(c, "Invalid ticket priority")
			return
		}
		input.Priority = &priority
	}

	ticket, err := h.ticketService.UpdateTicket(c.Request.Context(), input)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, "Ticket updated", ticket)
}
