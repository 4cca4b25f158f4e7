package handler

import (
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/freshbasket/storefront-api/internal/application/service"
	"github.com/freshbasket/storefront-api/internal/domain/enum"
	"github.com/freshbasket/storefront-api/internal/domain/pricing"
	"github.com/freshbasket/storefront-api/internal/presentation/http/dto/request"
	"github.com/freshbasket/storefront-api/internal/presentation/http/dto/response"
)

// CouponHandler handles coupon HTTP requests
type CouponHandler struct {
	couponService *service.CouponService
}

// NewCouponHandler creates a new coupon handler
func NewCouponHandler(couponService *service.CouponService) *CouponHandler {
	return &CouponHandler{couponService: couponService}
}

// Validate previews a coupon's effect on a cart
// @Summary Validate coupon
// @Tags coupons
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body request.ValidateCouponRequest true "Coupon and cart"
// @Success 200 {object} response.APIResponse
// @Router /coupons/validate [post]
func (h *CouponHandler) Validate(c *gin.Context) {
	var req request.ValidateCouponRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "Invalid request body")
		return
	}

	lines := make([]pricing.CartLine, 0, len(req.Items))
	for _, item := range req.Items {
		lines = append(lines, pricing.CartLine{
			ProductID: item.ProductID,
			Quantity:  item.Quantity,
		})
	}

	quote, err := h.couponService.ValidateCoupon(c.Request.Context(), req.Code, lines)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, "Coupon is valid", gin.H{
		"code":     quote.CouponCode,
		"discount": float64(quote.Discount) / 100,
		"total":    float64(quote.Total) / 100,
	})
}

// List lists coupons for staff
// @Summary List coupons
// @Tags coupons
// @Produce json
// @Security BearerAuth
// @Success 200 {object} response.APIResponse
// @Router /admin/coupons [get]
func (h *CouponHandler) List(c *gin.Context) {
	activeOnly := c.Query("active") == "true"
	coupons, err := h.couponService.ListCoupons(c.Request.Context(), activeOnly)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.OK(c, "Coupons retrieved", coupons)
}

// Get retrieves a coupon
// @Summary Get coupon
// @Tags coupons
// @Produce json
// @Security BearerAuth
// @Param id path string true "Coupon ID"
// @Success 200 {object} response.APIResponse
// @Router /admin/coupons/{id} [get]
func (h *CouponHandler) Get(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		response.BadRequest(c, "Invalid coupon ID")
		return
	}

	coupon, err := h.couponService.GetCoupon(c.Request.Context(), id)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.OK(c, "Coupon retrieved", coupon)
}

// Create creates a coupon
// @Summary Create coupon
// @Tags coupons
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body request.CreateCouponRequest true "Coupon data"
// @Success 201 {object} response.APIResponse
// @Router /admin/coupons [post]
func (h *CouponHandler) Create(c *gin.Context) {
	var req request.CreateCouponRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "Invalid request body")
		return
	}

	discountType, ok := enum.ParseDiscountType(req.DiscountType)
	if !ok {
		response.BadRequest(c, "Invalid discount type")
		return
	}

	// Percentage values stay whole numbers; fixed amounts become cents
	value := int64(req.DiscountValue)
	if discountType == enum.DiscountTypeFixed {
		value = toCents(req.DiscountValue)
	}

	coupon, err := h.couponService.CreateCoupon(c.Request.Context(), &service.CreateCouponInput{
		Code:                  req.Code,
		Description:           req.Description,
		Type:                  discountType,
		Value:                 value,
		MinPurchaseAmount:     toCents(req.MinPurchaseAmount),
		MaxDiscountAmount:     toCentsPtr(req.MaxDiscountAmount),
		StartDate:             req.StartDate,
		ExpiryDate:            req.ExpiryDate,
		UsageLimit:            req.UsageLimit,
		PerUserLimit:          req.PerUserLimit,
		ApplicableProductIDs:  req.ApplicableProductIDs,
		ApplicableCategoryIDs: req.ApplicableCategoryIDs,
	})
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Created(c, "Coupon created", coupon)
}

// Update updates a coupon
// @Summary Update coupon
// @Tags coupons
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path string true "Coupon ID"
// @Param request body request.UpdateCouponRequest true "Coupon data"
// @Success 200 {object} response.APIResponse
// @Router /admin/coupons/{id} [put]
func (h *CouponHandler) Update(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		response.BadRequest(c, "Invalid coupon ID")
		return
	}

	var req request.UpdateCouponRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "Invalid request body")
		return
	}

	input := &service.UpdateCouponInput{
		ID:                id,
		Description:       req.Description,
		MinPurchaseAmount: toCentsPtr(req.MinPurchaseAmount),
		MaxDiscountAmount: toCentsPtr(req.MaxDiscountAmount),
		StartDate:         req.StartDate,
		ExpiryDate:        req.ExpiryDate,
		UsageLimit:        req.UsageLimit,
		PerUserLimit:      req.PerUserLimit,
		IsActive:          req.IsActive,
	}
	if req.DiscountValue != nil {
		coupon, err := h.couponService.GetCoupon(c.Request.Context(), id)
		if err != nil {
			response.Error(c, err)
			return
		}
		value := int64(*req.DiscountValue)
		if coupon.Type == enum.DiscountTypeFixed {
			value = toCents(*req.DiscountValue)
		}
		input.Value = &value
	}

	coupon, err := h.couponService.UpdateCoupon(c.Request.Context(), input)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, "Coupon updated", coupon)
}

// Delete deletes a coupon
// @Summary Delete coupon
// @Tags coupons
// @Security BearerAuth
// @Param id path string true "Coupon ID"
// @Success 204
// @Router /admin/coupons/{id} [delete]
func (h *CouponHandler) Delete(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		response.BadRequest(c, "Invalid coupon ID")
		return
	}

	if err := h.couponService.DeleteCoupon(c.Request.Context(), id); err != nil {
		response.Error(c, err)
		return
	}

	response.NoContent(c)
}
