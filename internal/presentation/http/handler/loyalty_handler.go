package handler

import (
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/freshbasket/storefront-api/internal/application/service"
	"github.com/freshbasket/storefront-api/internal/presentation/http/dto/request"
	"github.com/freshbasket/storefront-api/internal/presentation/http/dto/response"
	"github.com/freshbasket/storefront-api/pkg/pagination"
)

// LoyaltyHandler handles loyalty point HTTP requests
type LoyaltyHandler struct {
	loyaltyService *service.LoyaltyService
}

// NewLoyaltyHandler creates a new loyalty handler
func NewLoyaltyHandler(loyaltyService *service.LoyaltyService) *LoyaltyHandler {
	return &LoyaltyHandler{loyaltyService: loyaltyService}
}

// Balance returns the caller's current point balance
// @Summary Loyalty balance
// @Tags loyalty
// @Produce json
// @Security BearerAuth
// @Success 200 {object} response.APIResponse
// @Router /loyalty/balance [get]
func (h *LoyaltyHandler) Balance(c *gin.Context) {
	userID := GetUserID(c)
	if userID == nil {
		response.Unauthorized(c, "Authentication required")
		return
	}

	balance, err := h.loyaltyService.GetBalance(c.Request.Context(), *userID)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, "Balance retrieved", gin.H{"balance": balance})
}

// History returns the caller's ledger entries
// @Summary Loyalty history
// @Tags loyalty
// @Produce json
// @Security BearerAuth
// @Success 200 {object} response.APIResponse
// @Router /loyalty/history [get]
func (h *LoyaltyHandler) History(c *gin.Context) {
	userID := GetUserID(c)
	if userID == nil {
		response.Unauthorized(c, "Authentication required")
		return
	}

	page, _ := strconv.Atoi(c.DefaultQuery("page", "1"))
	perPage, _ := strconv.Atoi(c.DefaultQuery("per_page", "20"))
	params := &pagination.PaginationParams{Page: page, PerPage: perPage}
	params.Validate()

	result, err := h.loyaltyService.GetHistory(c.Request.Context(), *userID, params)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.SuccessWithPagination(c, 200, "History retrieved", result)
}

// Adjust applies a manual staff adjustment to a user's balance
// @Summary Adjust loyalty points
// @Tags loyalty
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path string true "User ID"
// @Param request body request.AdjustLoyaltyPointsRequest true "Adjustment"
// @Success 200 {object} response.APIResponse
// @Router /admin/users/{id}/loyalty [post]
func (h *LoyaltyHandler) Adjust(c *gin.Context) {
	targetID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		response.BadRequest(c, "Invalid user ID")
		return
	}

	var req request.AdjustLoyaltyPointsRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "Invalid request body")
		return
	}

	entry, err := h.loyaltyService.AdjustPoints(c.Request.Context(), &service.AdjustPointsInput{
		UserID: targetID,
		Points: req.Points,
		Reason: req.Reason,
	})
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, "Points adjusted", entry)
}
