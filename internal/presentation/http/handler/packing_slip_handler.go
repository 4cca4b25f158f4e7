package handler

import (
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/freshbasket/storefront-api/internal/application/service"
	"github.com/freshbasket/storefront-api/internal/presentation/http/dto/response"
)

// PackingSlipHandler handles warehouse packing slip HTTP requests
type PackingSlipHandler struct {
	packingSlipService *service.PackingSlipService
	orderService       *service.OrderService
}

// NewPackingSlipHandler creates a new packing slip handler
func NewPackingSlipHandler(packingSlipService *service.PackingSlipService, orderService *service.OrderService) *PackingSlipHandler {
	return &PackingSlipHandler{packingSlipService: packingSlipService, orderService: orderService}
}

// PrinterStatus reports receipt printer connectivity
// @Summary Printer status
// @Tags orders
// @Produce json
// @Security BearerAuth
// @Success 200 {object} response.APIResponse
// @Router /admin/printer/status [get]
func (h *PackingSlipHandler) PrinterStatus(c *gin.Context) {
	response.OK(c, "Printer status retrieved", h.packingSlipService.GetStatus())
}

// Print sends an order's packing slip to the warehouse printer
// @Summary Print packing slip
// @Tags orders
// @Security BearerAuth
// @Param id path string true "Order ID"
// @Success 200 {object} response.APIResponse
// @Router /admin/orders/{id}/packing-slip [post]
func (h *PackingSlipHandler) Print(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		response.BadRequest(c, "Invalid order ID")
		return
	}

	userID := GetUserID(c)
	if userID == nil {
		response.Unauthorized(c, "Authentication required")
		return
	}

	order, err := h.orderService.GetOrder(c.Request.Context(), id, *userID, true)
	if err != nil {
		response.Error(c, err)
		return
	}

	if err := h.packingSlipService.PrintPackingSlip(order); err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, "Packing slip sent to printer", nil)
}
