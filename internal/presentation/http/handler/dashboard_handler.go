package handler

import (
	"github.com/gin-gonic/gin"

	"github.com/freshbasket/storefront-api/internal/application/service"
	"github.com/freshbasket/storefront-api/internal/presentation/http/dto/response"
)

// DashboardHandler handles admin dashboard HTTP requests
type DashboardHandler struct {
	dashboardService *service.DashboardService
}

// NewDashboardHandler creates a new dashboard handler
func NewDashboardHandler(dashboardService *service.DashboardService) *DashboardHandler {
	return &DashboardHandler{dashboardService: dashboardService}
}

// Stats returns aggregate sales and customer metrics
// @Summary Dashboard statistics
// @Tags dashboard
// @Produce json
// @Security BearerAuth
// @Success 200 {object} response.APIResponse
// @Router /admin/dashboard [get]
func (h *DashboardHandler) Stats(c *gin.Context) {
	stats, err := h.dashboardService.GetDashboardStats(c.Request.Context())
	if err != nil {
		response.Error(c, err)
		return
	}
	response.OK(c, "Dashboard statistics retrieved", stats)
}

// LowStock lists products at or below their low stock threshold
// @Summary Low stock products
// @Tags dashboard
// @Produce json
// @Security BearerAuth
// @Success 200 {object} response.APIResponse
// @Router /admin/dashboard/low-stock [get]
func (h *DashboardHandler) LowStock(c *gin.Context) {
	products, err := h.dashboardService.GetLowStockProducts(c.Request.Context())
	if err != nil {
		response.Error(c, err)
		return
	}
	response.OK(c, "Low stock products retrieved", products)
}
