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

type ticketRepository struct {
	db *gorm.DB
}

// NewTicketRepository creates a new support ticket repository
func NewTicketRepository(db *gorm.DB) domainRepo.TicketRepository {
	return &ticketRepository{db: db}
}

func (r *ticketRepository) Create(ctx context.Context, ticket *entity.Ticket) error {
	return r.db.WithContext(ctx).Create(ticket).Error
}

func (r *ticketRepository) GetByID(ctx context.Context, id uuid.UUID) (*entity.Ticket, error) {
	var ticket entity.Ticket
	err := r.db.WithContext(ctx).First(&ticket, "id = ?", id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	return &ticket, err
}

func (r *ticketRepository) GetWithMessages(ctx context.Context, id uuid.UUID) (*entity.Ticket, error) {
	var ticket entity.Ticket
	err := r.db.WithContext(ctx).
		Preload("Messages", func(db *gorm.DB) *gorm.DB {
			return db.Order("created_at ASC")
		}).
		First(&ticket, "id = ?", id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	return &ticket, err
}

func (r *ticketRepository) Update(ctx context.Context, ticket *entity.Ticket) error {
	return r.db.WithContext(ctx).Save(ticket).Error
}

func (r *ticketRepository) ListByUser(ctx context.Context, userID uuid.UUID, params *pagination.PaginationParams) ([]entity.Ticket, int64, error) {
	var tickets []entity.Ticket
	var total int64

	query := r.db.WithContext(ctx).Model(&entity.Ticket{}).
		Where("user_id = ?", userID)

	if err := query.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	params.Validate()
	err := query.Offset(params.Offset()).Limit(params.PerPage).
		Order("created_at DESC").
		Find(&tickets).Error

	return tickets, total, err
}

func (r *ticketRepository) List(ctx context.Context, params *domainRepo.TicketFilterParams) ([]entity.Ticket, int64, error) {
	var tickets []entity.Ticket
	var total int64

	query := r.db.WithContext(ctx).Model(&entity.Ticket{})

	if params.Status != nil {
		query = query.Where("status = ?", *params.Status)
	}

	if params.Priority != nil {
		query = query.Where("priority = ?", *params.Priority)
	}

	if params.Category != "" {
		query = query.Where("category = ?", params.Category)
	}

	if params.AssignedTo != nil {
		query = query.Where("assigned_to = ?", *params.AssignedTo)
	}

	if err := query.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	params.Pagination.Validate()
	err := query.Offset(params.Pagination.Offset()).Limit(params.Pagination.PerPage).
		Order("created_at DESC").
		Find(&tickets).Error

	return tickets, total, err
}

func (r *ticketRepository) AppendMessage(ctx context.Context, message *entity.TicketMessage) error {
	return r.db.WithContext(ctx).Create(message).Error
}
