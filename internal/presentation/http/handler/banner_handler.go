package handler

import (
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/freshbasket/storefront-api/internal/application/service"
	"github.com/freshbasket/storefront-api/internal/presentation/http/dto/request"
	"github.com/freshbasket/storefront-api/internal/presentation/http/dto/response"
)

// BannerHandler handles promotional banner HTTP requests
type BannerHandler struct {
	bannerService *service.BannerService
}

// NewBannerHandler creates a new banner handler
func NewBannerHandler(bannerService *service.BannerService) *BannerHandler {
	return &BannerHandler{bannerService: bannerService}
}

// ListLive lists currently displayable banners
// @Summary Live banners
// @Tags banners
// @Produce json
// @Param placement query string false "Placement filter"
// @Success 200 {object} response.APIResponse
// @Router /banners [get]
func (h *BannerHandler) ListLive(c *gin.Context) {
	banners, err := h.bannerService.GetLiveBanners(c.Request.Context(), c.Query("placement"))
	if err != nil {
		response.Error(c, err)
		return
	}
	response.OK(c, "Banners retrieved", banners)
}

// Click records a banner click
// @Summary Record banner click
// @Tags banners
// @Param id path string true "Banner ID"
// @Success 204
// @Router /banners/{id}/click [post]
func (h *BannerHandler) Click(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		response.BadRequest(c, "Invalid banner ID")
		return
	}

	if err := h.bannerService.RecordClick(c.Request.Context(), id); err != nil {
		response.Error(c, err)
		return
	}

	response.NoContent(c)
}

// ListAll lists all banners for staff
// @Summary List banners
// @Tags banners
// @Produce json
// @Security BearerAuth
// @Success 200 {object} response.APIResponse
// @Router /admin/banners [get]
func (h *BannerHandler) ListAll(c *gin.Context) {
	banners, err := h.bannerService.ListBanners(c.Request.Context())
	if err != nil {
		response.Error(c, err)
		return
	}
	response.OK(c, "Banners retrieved", banners)
}

// Create creates a banner
// @Summary Create banner
// @Tags banners
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body request.CreateBannerRequest true "Banner data"
// @Success 201 {object} response.APIResponse
// @Router /admin/banners [post]
func (h *BannerHandler) Create(c *gin.Context) {
	var req request.CreateBannerRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "Invalid request body")
		return
	}

	banner, err := h.bannerService.CreateBanner(c.Request.Context(), &service.CreateBannerInput{
		Title:          req.Title,
		Subtitle:       req.Subtitle,
		ImageURL:       req.ImageURL,
		MobileImageURL: req.MobileImageURL,
		LinkURL:        req.LinkURL,
		LinkText:       req.LinkText,
		Placement:      req.Placement,
		SortOrder:      req.SortOrder,
		StartDate:      req.StartDate,
		EndDate:        req.EndDate,
	})
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Created(c, "Banner created", banner)
}

// Update updates a banner
// @Summary Update banner
// @Tags banners
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path string true "Banner ID"
// @Param request body request.UpdateBannerRequest true "Banner data"
// @Success 200 {object} response.APIResponse
// @Router /admin/banners/{id} [put]
func (h *BannerHandler) Update(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		response.BadRequest(c, "Invalid banner ID")
		return
	}

	var req request.UpdateBannerRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "Invalid request body")
		return
	}

	banner, err := h.bannerService.UpdateBanner(c.Request.Context(), &service.UpdateBannerInput{
		ID:             id,
		Title:          req.Title,
		Subtitle:       req.Subtitle,
		ImageURL:       req.ImageURL,
		MobileImageURL: req.MobileImageURL,
		LinkURL:        req.LinkURL,
		LinkText:       req.LinkText,
		Placement:      req.Placement,
		SortOrder:      req.SortOrder,
		StartDate:      req.StartDate,
		EndDate:        req.EndDate,
		IsActive:       req.IsActive,
	})
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, "Banner updated", banner)
}

// Delete deletes a banner
// @Summary Delete banner
// @Tags banners
// @Security BearerAuth
// @Param id path string true "Banner ID"
// @Success 204
// @Router /admin/banners/{id} [delete]
func (h *BannerHandler) Delete(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		response.BadRequest(c, "Invalid banner ID")
		return
	}

	if err := h.bannerService.DeleteBanner(c.Request.Context(), id); err != nil {
		response.Error(c, err)
		return
	}

	response.NoContent(c)
}
