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

// ReviewHandler handles product review HTTP requests
type ReviewHandler struct {
	reviewService *service.ReviewService
}

// NewReviewHandler creates a new review handler
func NewReviewHandler(reviewService *service.ReviewService) *ReviewHandler {
	return &ReviewHandler{reviewService: reviewService}
}

// ListByProduct lists approved reviews for a product
// @Summary List product reviews
// @Tags reviews
// @Produce json
// @Param id path string true "Product ID"
// @Success 200 {object} response.APIResponse
// @Router /products/{id}/reviews [get]
func (h *ReviewHandler) ListByProduct(c *gin.Context) {
	productID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		response.BadRequest(c, "Invalid product ID")
		return
	}

	page, _ := strconv.Atoi(c.DefaultQuery("page", "1"))
	perPage, _ := strconv.Atoi(c.DefaultQuery("per_page", "20"))
	params := &pagination.PaginationParams{Page: page, PerPage: perPage}
	params.Validate()

	if IsStaff(c) && c.Query("include_pending") == "true" {
		res, err := h.reviewService.ListAllProductReviews(c.Request.Context(), productID, params)
		if err != nil {
			response.Error(c, err)
			return
		}
		response.SuccessWithPagination(c, 200, "Reviews retrieved", res)
		return
	}

	res, err := h.reviewService.ListProductReviews(c.Request.Context(), productID, params)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.SuccessWithPagination(c, 200, "Reviews retrieved", res)
}

// Create creates a review for a product
// @Summary Create review
// @Tags reviews
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path string true "Product ID"
// @Param request body request.CreateReviewRequest true "Review data"
// @Success 201 {object} response.APIResponse
// @Router /products/{id}/reviews [post]
func (h *ReviewHandler) Create(c *gin.Context) {
	userID := GetUserID(c)
	if userID == nil {
		response.Unauthorized(c, "Authentication required")
		return
	}

	productID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		response.BadRequest(c, "Invalid product ID")
		return
	}

	var req request.CreateReviewRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "Invalid request body")
		return
	}

	review, err := h.reviewService.CreateReview(c.Request.Context(), &service.CreateReviewInput{
		ProductID: productID,
		UserID:    *userID,
		Rating:    req.Rating,
		Title:     req.Title,
		Comment:   req.Comment,
	})
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Created(c, "Review submitted for approval", review)
}

// Approve marks a review as approved
// @Summary Approve review
// @Tags reviews
// @Produce json
// @Security BearerAuth
// @Param id path string true "Review ID"
// @Success 200 {object} response.APIResponse
// @Router /admin/reviews/{id}/approve [post]
func (h *ReviewHandler) Approve(c *gin.Context) {
	reviewID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		response.BadRequest(c, "Invalid review ID")
		return
	}

	review, err := h.reviewService.ApproveReview(c.Request.Context(), reviewID)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, "Review approved", review)
}

// Respond attaches a staff response to a review
// @Summary Respond to review
// @Tags reviews
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path string true "Review ID"
// @Param request body request.RespondToReviewRequest true "Response"
// @Success 200 {object} response.APIResponse
// @Router /admin/reviews/{id}/respond [post]
func (h *ReviewHandler) Respond(c *gin.Context) {
	reviewID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		response.BadRequest(c, "Invalid review ID")
		return
	}

	var req request.RespondToReviewRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "Invalid request body")
		return
	}

	review, err := h.reviewService.RespondToReview(c.Request.Context(), &service.RespondToReviewInput{
		ReviewID: reviewID,
		Response: req.Response,
	})
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, "Response saved", review)
}

// Delete removes a review
// @Summary Delete review
// @Tags reviews
// @Security BearerAuth
// @Param id path string true "Review ID"
// @Success 204
// @Router /reviews/{id} [delete]
func (h *ReviewHandler) Delete(c *gin.Context) {
	userID := GetUserID(c)
	if userID == nil {
		response.Unauthorized(c, "Authentication required")
		return
	}

	reviewID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		response.BadRequest(c, "Invalid review ID")
		return
	}

	if err := h.reviewService.DeleteReview(c.Request.Context(), reviewID, *userID, IsStaff(c)); err != nil {
		response.Error(c, err)
		return
	}

	response.NoContent(c)
}
