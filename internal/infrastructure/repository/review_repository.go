package repository

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/freshbasket/storefront-api/internal/domain/entity"
	domainRepo "github.com/freshbasket/storefront-api/internal/domain/repository"
	"github.com/freshbasket/storefront-api/pkg/pagination"
)

type reviewRepository struct {
	db *gorm.DB
}

// NewReviewRepository creates a new review repository
func NewReviewRepository(db *gorm.DB) domainRepo.ReviewRepository {
	return &reviewRepository{db: db}
}

func (r *reviewRepository) Create(ctx context.Context, review *entity.Review) error {
	return r.db.WithContext(ctx).Create(review).Error
}

func (r *reviewRepository) GetByID(ctx context.Context, id uuid.UUID) (*entity.Review, error) {
	var review entity.Review
	err := r.db.WithContext(ctx).First(&review, "id = ?", id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	return &review, err
}

func (r *reviewRepository) GetByProductAndUser(ctx context.Context, productID, userID uuid.UUID) (*entity.Review, error) {
	var review entity.Review
	err := r.db.WithContext(ctx).
		First(&review, "product_id = ? AND user_id = ?", productID, userID).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	return &review, err
}

func (r *reviewRepository) Update(ctx context.Context, review *entity.Review) error {
	return r.db.WithContext(ctx).Save(review).Error
}

func (r *reviewRepository) Delete(ctx context.Context, id uuid.UUID) error {
	return r.db.WithContext(ctx).Delete(&entity.Review{}, "id = ?", id).Error
}

func (r *reviewRepository) ListByProduct(ctx context.Context, productID uuid.UUID, approvedOnly bool, params *pagination.PaginationParams) ([]entity.Review, int64, error) {
	var reviews []entity.Review
	var total int64

	query := r.db.WithContext(ctx).Model(&entity.Review{}).
		Where("product_id = ?", productID)
	if approvedOnly {
		query = query.Where("is_approved = ?", true)
	}

	if err := query.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	params.Validate()
	err := query.Offset(params.Offset()).Limit(params.PerPage).
		Preload("User").
		Order("created_at DESC").
		Find(&reviews).Error

	return reviews, total, err
}

func (r *reviewRepository) RatingAggregate(ctx context.Context, productID uuid.UUID) (float64, int, error) {
	var result struct {
		Average float64
		Count   int
	}
	err := r.db.WithContext(ctx).Model(&entity.Review{}).
		Select("COALESCE(AVG(rating), 0) as average, COUNT(*) as count").
		Where("product_id = ? AND is_approved = ?", productID, true).
		Scan(&result).Error
	return result.Average, result.Count, err
}
