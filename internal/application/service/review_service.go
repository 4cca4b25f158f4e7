package service

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/freshbasket/storefront-api/internal/domain/entity"
	"github.com/freshbasket/storefront-api/internal/domain/repository"
	"github.com/freshbasket/storefront-api/pkg/apperror"
	"github.com/freshbasket/storefront-api/pkg/pagination"
)

// ReviewService handles product reviews and moderation
type ReviewService struct {
	reviewRepo  repository.ReviewRepository
	productRepo repository.ProductRepository
	orderRepo   repository.OrderRepository
}

// NewReviewService creates a new review service
func NewReviewService(reviewRepo repository.ReviewRepository, productRepo repository.ProductRepository, orderRepo repository.OrderRepository) *ReviewService {
	return &ReviewService{
		reviewRepo:  reviewRepo,
		productRepo: productRepo,
		orderRepo:   orderRepo,
	}
}

// CreateReviewInput represents the create review input
type CreateReviewInput struct {
	ProductID uuid.UUID
	UserID    uuid.UUID
	Rating    int
	Title     *string
	Comment   string
}

// CreateReview creates a review for a product. One review per user per
// product; the verified purchase flag is set when the user has a delivered
// order containing the product.
func (s *ReviewService) CreateReview(ctx context.Context, input *CreateReviewInput) (*entity.Review, error) {
	if input.Rating < 1 || input.Rating > 5 {
		return nil, apperror.NewUnprocessableError("Rating must be between 1 and 5")
	}

	product, err := s.productRepo.GetByID(ctx, input.ProductID)
	if err != nil {
		return nil, err
	}
	if product == nil {
		return nil, apperror.NewNotFoundError("Product")
	}

	existing, err := s.reviewRepo.GetByProductAndUser(ctx, input.ProductID, input.UserID)
	if err != nil {
		return nil, err
	}
	if existing != nil {
		return nil, apperror.NewConflictError("You have already reviewed this product")
	}

	verified, err := s.orderRepo.HasDeliveredOrderWithProduct(ctx, input.UserID, input.ProductID)
	if err != nil {
		return nil, err
	}

	review := &entity.Review{
		ProductID:          input.ProductID,
		UserID:             input.UserID,
		Rating:             input.Rating,
		Title:              input.Title,
		Comment:            input.Comment,
		IsVerifiedPurchase: verified,
	}

	if err := s.reviewRepo.Create(ctx, review); err != nil {
		return nil, err
	}

	return review, nil
}

// ListProductReviews lists approved reviews for a product
func (s *ReviewService) ListProductReviews(ctx context.Context, productID uuid.UUID, params *pagination.PaginationParams) (*pagination.PaginatedResult[entity.Review], error) {
	reviews, total, err := s.reviewRepo.ListByProduct(ctx, productID, true, params)
	if err != nil {
		return nil, err
	}

	pag := pagination.NewPagination(params.Page, params.PerPage, total)
	return pagination.NewPaginatedResult(reviews, pag), nil
}

// ListPendingReviews lists all reviews for a product including unapproved
// ones, for moderation
func (s *ReviewService) ListAllProductReviews(ctx context.Context, productID uuid.UUID, params *pagination.PaginationParams) (*pagination.PaginatedResult[entity.Review], error) {
	reviews, total, err := s.reviewRepo.ListByProduct(ctx, productID, false, params)
	if err != nil {
		return nil, err
	}

	pag := pagination.NewPagination(params.Page, params.PerPage, total)
	return pagination.NewPaginatedResult(reviews, pag), nil
}

// ApproveReview marks a review as approved and refreshes the product's
// denormalized rating aggregate
func (s *ReviewService) ApproveReview(ctx context.Context, reviewID uuid.UUID) (*entity.Review, error) {
	review, err := s.reviewRepo.GetByID(ctx, reviewID)
	if err != nil {
		return nil, err
	}
	if review == nil {
		return nil, apperror.NewNotFoundError("Review")
	}

	if !review.IsApproved {
		review.IsApproved = true
		if err := s.reviewRepo.Update(ctx, review); err != nil {
			return nil, err
		}
		if err := s.refreshProductRating(ctx, review.ProductID); err != nil {
			return nil, err
		}
	}

	return review, nil
}

// RespondToReviewInput represents a staff response to a review
type RespondToReviewInput struct {
	ReviewID uuid.UUID
	Response string
}

// RespondToReview attaches a staff response to a review
func (s *ReviewService) RespondToReview(ctx context.Context, input *RespondToReviewInput) (*entity.Review, error) {
	if input.Response == "" {
		return nil, apperror.NewUnprocessableError("Response text is required")
	}

	review, err := s.reviewRepo.GetByID(ctx, input.ReviewID)
	if err != nil {
		return nil, err
	}
	if review == nil {
		return nil, apperror.NewNotFoundError("Review")
	}

	now := time.Now()
	review.StaffResponse = &input.Response
	review.RespondedAt = &now

	if err := s.reviewRepo.Update(ctx, review); err != nil {
		return nil, err
	}

	return review, nil
}

// DeleteReview removes a review. Customers can only delete their own.
func (s *ReviewService) DeleteReview(ctx context.Context, reviewID, userID uuid.UUID, isStaff bool) error {
	review, err := s.reviewRepo.GetByID(ctx, reviewID)
	if err != nil {
		return err
	}
	if review == nil {
		return apperror.NewNotFoundError("Review")
	}
	if !isStaff && review.UserID != userID {
		return apperror.ErrForbidden
	}

	wasApproved := review.IsApproved
	if err := s.reviewRepo.Delete(ctx, reviewID); err != nil {
		return err
	}
	if wasApproved {
		return s.refreshProductRating(ctx, review.ProductID)
	}
	return nil
}

func (s *ReviewService) refreshProductRating(ctx context.Context, productID uuid.UUID) error {
	average, count, err := s.reviewRepo.RatingAggregate(ctx, productID)
	if err != nil {
		return err
	}
	return s.productRepo.UpdateRating(ctx, productID, average, count)
}
