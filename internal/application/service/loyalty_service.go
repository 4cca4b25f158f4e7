package service

import (
	"context"

	"github.com/google/uuid"

	"github.com/freshbasket/storefront-api/internal/domain/entity"
	"github.com/freshbasket/storefront-api/internal/domain/enum"
	"github.com/freshbasket/storefront-api/internal/domain/repository"
	"github.com/freshbasket/storefront-api/pkg/apperror"
	"github.com/freshbasket/storefront-api/pkg/pagination"
)

// LoyaltyService handles loyalty point balances and the ledger
type LoyaltyService struct {
	loyaltyRepo repository.LoyaltyRepository
	userRepo    repository.UserRepository
}

// NewLoyaltyService creates a new loyalty service
func NewLoyaltyService(loyaltyRepo repository.LoyaltyRepository, userRepo repository.UserRepository) *LoyaltyService {
	return &LoyaltyService{
		loyaltyRepo: loyaltyRepo,
		userRepo:    userRepo,
	}
}

// GetBalance returns the user's current loyalty point balance
func (s *LoyaltyService) GetBalance(ctx context.Context, userID uuid.UUID) (int64, error) {
	return s.userRepo.GetLoyaltyBalance(ctx, userID)
}

// GetHistory returns the user's ledger entries, newest first
func (s *LoyaltyService) GetHistory(ctx context.Context, userID uuid.UUID, params *pagination.PaginationParams) (*pagination.PaginatedResult[entity.LoyaltyTransaction], error) {
	entries, total, err := s.loyaltyRepo.ListByUser(ctx, userID, params)
	if err != nil {
		return nil, err
	}

	pag := pagination.NewPagination(params.Page, params.PerPage, total)
	return pagination.NewPaginatedResult(entries, pag), nil
}

// AdjustPointsInput represents a manual staff adjustment
type AdjustPointsInput struct {
	UserID uuid.UUID
	Points int64 // signed
	Reason string
}

// AdjustPoints applies a manual balance correction and records it in the
// ledger. Negative deltas cannot take the balance below zero.
func (s *LoyaltyService) AdjustPoints(ctx context.Context, input *AdjustPointsInput) (*entity.LoyaltyTransaction, error) {
	if input.Points == 0 {
		return nil, apperror.NewUnprocessableError("Adjustment must be non-zero")
	}
	if input.Reason == "" {
		return nil, apperror.NewUnprocessableError("A reason is required for manual adjustments")
	}

	user, err := s.userRepo.GetByID(ctx, input.UserID)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, apperror.NewNotFoundError("User")
	}

	if input.Points < 0 {
		balance, err := s.userRepo.GetLoyaltyBalance(ctx, input.UserID)
		if err != nil {
			return nil, err
		}
		if balance+input.Points < 0 {
			return nil, apperror.NewConflictError("Adjustment would make the balance negative")
		}
	}

	newBalance, err := s.loyaltyRepo.AdjustBalance(ctx, input.UserID, input.Points)
	if err != nil {
		return nil, err
	}

	entry := &entity.LoyaltyTransaction{
		UserID:       input.UserID,
		Type:         enum.LoyaltyTypeAdjusted,
		Points:       input.Points,
		Description:  input.Reason,
		BalanceAfter: newBalance,
	}
	if err := s.loyaltyRepo.AppendEntry(ctx, entry); err != nil {
		return nil, err
	}

	return entry, nil
}
