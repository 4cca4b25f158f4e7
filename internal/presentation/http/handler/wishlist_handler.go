package handler

import (
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/freshbasket/storefront-api/internal/application/service"
	"github.com/freshbasket/storefront-api/internal/presentation/http/dto/response"
)

// WishlistHandler handles wishlist HTTP requests
type WishlistHandler struct {
	wishlistService *service.WishlistService
}

// NewWishlistHandler creates a new wishlist handler
func NewWishlistHandler(wishlistService *service.WishlistService) *WishlistHandler {
	return &WishlistHandler{wishlistService: wishlistService}
}

// List returns the caller's wishlist
// @Summary Get wishlist
// @Tags wishlist
// @Produce json
// @Security BearerAuth
// @Success 200 {object} response.APIResponse
// @Router /wishlist [get]
func (h *WishlistHandler) List(c *gin.Context) {
	userID := GetUserID(c)
	if userID == nil {
		response.Unauthorized(c, "Authentication required")
		return
	}

	products, err := h.wishlistService.GetWishlist(c.Request.Context(), *userID)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, "Wishlist retrieved", products)
}

// Add saves a product to the caller's wishlist
// @Summary Add product to wishlist
// @Tags wishlist
// @Produce json
// @Security BearerAuth
// @Param productId path string true "Product ID"
// @Success 200 {object} response.APIResponse
// @Failure 404 {object} response.APIResponse
// @Router /wishlist/{productId} [post]
func (h *WishlistHandler) Add(c *gin.Context) {
	userID := GetUserID(c)
	if userID == nil {
		response.Unauthorized(c, "Authentication required")
		return
	}

	productID, err := uuid.Parse(c.Param("productId"))
	if err != nil {
		response.BadRequest(c, "Invalid product ID")
		return
	}

	count, err := h.wishlistService.AddToWishlist(c.Request.Context(), *userID, productID)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, "Product added to wishlist", gin.H{"wishlist_count": count})
}

// Remove drops a product from the caller's wishlist
// @Summary Remove product from wishlist
// @Tags wishlist
// @Produce json
// @Security BearerAuth
// @Param productId path string true "Product ID"
// @Success 200 {object} response.APIResponse
// @Router /wishlist/{productId} [delete]
func (h *WishlistHandler) Remove(c *gin.Context) {
	userID := GetUserID(c)
	if userID == nil {
		response.Unauthorized(c, "Authentication required")
		return
	}

	productID, err := uuid.Parse(c.Param("productId"))
	if err != nil {
		response.BadRequest(c, "Invalid product ID")
		return
	}

	count, err := h.wishlistService.RemoveFromWishlist(c.Request.Context(), *userID, productID)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, "Product removed from wishlist", gin.H{"wishlist_count": count})
}
