package service

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/freshbasket/storefront-api/internal/config"
	"github.com/freshbasket/storefront-api/internal/domain/entity"
)

type fakeBackupLogRepo struct {
	logs    map[uuid.UUID]*entity.BackupLog
	updates int
}

func newFakeBackupLogRepo() *fakeBackupLogRepo {
	return &fakeBackupLogRepo{logs: map[uuid.UUID]*entity.BackupLog{}}
}

func (r *fakeBackupLogRepo) Create(ctx context.Context, log *entity.BackupLog) error {
	if log.ID == uuid.Nil {
		log.ID = uuid.New()
	}
	r.logs[log.ID] = log
	return nil
}

func (r *fakeBackupLogRepo) Update(ctx context.Context, log *entity.BackupLog) error {
	r.updates++
	r.logs[log.ID] = log
	return nil
}

func (r *fakeBackupLogRepo) GetByID(ctx context.Context, id uuid.UUID) (*entity.BackupLog, error) {
	return r.logs[id], nil
}

func (r *fakeBackupLogRepo) ListRecent(ctx context.Context, limit int) ([]entity.BackupLog, error) {
	out := make([]entity.BackupLog, 0, len(r.logs))
	for _, l := range r.logs {
		out = append(out, *l)
	}
	return out, nil
}

func TestRunBackup_FailureStampsCompletion(t *testing.T) {
	// Empty PATH makes pg_dump unresolvable, forcing the failure path
	t.Setenv("PATH", "")

	repo := newFakeBackupLogRepo()
	svc := NewBackupService(repo, config.DatabaseConfig{Name: "storefront"}, config.BackupConfig{
		Directory: t.TempDir(),
	})

	backupLog, err := svc.RunBackup(context.Background(), "manual", nil)
	require.Error(t, err)
	require.NotNil(t, backupLog)

	assert.Equal(t, "failed", backupLog.Status)
	require.NotNil(t, backupLog.Error)
	require.NotNil(t, backupLog.CompletedAt)
	assert.False(t, backupLog.CompletedAt.Before(backupLog.StartedAt))
	assert.Equal(t, 1, repo.updates)
}
