package repository

import (
	"context"

	"github.com/google/uuid"

	"github.com/freshbasket/storefront-api/internal/domain/entity"
)

// BackupLogRepository defines the interface for backup log operations
type BackupLogRepository interface {
	Create(ctx context.Context, log *entity.BackupLog) error
	Update(ctx context.Context, log *entity.BackupLog) error
	GetByID(ctx context.Context, id uuid.UUID) (*entity.BackupLog, error)
	ListRecent(ctx context.Context, limit int) ([]entity.BackupLog, error)
}
