package repository

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/freshbasket/storefront-api/internal/domain/entity"
	domainRepo "github.com/freshbasket/storefront-api/internal/domain/repository"
)

type backupLogRepository struct {
	db *gorm.DB
}

// NewBackupLogRepository creates a new backup log repository
func NewBackupLogRepository(db *gorm.DB) domainRepo.BackupLogRepository {
	return &backupLogRepository{db: db}
}

func (r *backupLogRepository) Create(ctx context.Context, log *entity.BackupLog) error {
	return r.db.WithContext(ctx).Create(log).Error
}

func (r *backupLogRepository) Update(ctx context.Context, log *entity.BackupLog) error {
	return r.db.WithContext(ctx).Save(log).Error
}

func (r *backupLogRepository) GetByID(ctx context.Context, id uuid.UUID) (*entity.BackupLog, error) {
	var log entity.BackupLog
	err := r.db.WithContext(ctx).First(&log, "id = ?", id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	return &log, err
}

func (r *backupLogRepository) ListRecent(ctx context.Context, limit int) ([]entity.BackupLog, error) {
	if limit <= 0 {
		limit = 20
	}
	var logs []entity.BackupLog
	err := r.db.WithContext(ctx).
		Order("started_at DESC").
		Limit(limit).
		Find(&logs).Error
	return logs, err
}
