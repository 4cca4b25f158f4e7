package service

import (
	"context"
	"fmt"
	"log"
	"os"
	"os/exec"
	"path/filepath"
	"sort"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/freshbasket/storefront-api/internal/config"
	"github.com/freshbasket/storefront-api/internal/domain/entity"
	"github.com/freshbasket/storefront-api/internal/domain/repository"
	"github.com/freshbasket/storefront-api/pkg/apperror"
)

// BackupService runs scheduled pg_dump backups of the storefront database
// and records each attempt in the backup log.
type BackupService struct {
	backupRepo repository.BackupLogRepository
	dbCfg      config.DatabaseConfig
	cfg        config.BackupConfig
	stop       chan struct{}
}

// NewBackupService creates a new backup service
func NewBackupService(backupRepo repository.BackupLogRepository, dbCfg config.DatabaseConfig, cfg config.BackupConfig) *BackupService {
	return &BackupService{
		backupRepo: backupRepo,
		dbCfg:      dbCfg,
		cfg:        cfg,
		stop:       make(chan struct{}),
	}
}

// Start launches the periodic backup loop. No-op when backups are disabled.
func (s *BackupService) Start() {
	if !s.cfg.Enabled {
		return
	}
	interval := time.Duration(s.cfg.IntervalHours) * time.Hour
	if interval <= 0 {
		interval = 24 * time.Hour
	}

	go func() {
		ticker := time.NewTicker(interval)
		defer ticker.Stop()
		for {
			select {
			case <-ticker.C:
				if _, err := s.RunBackup(context.Background(), "automatic", nil); err != nil {
					log.Printf("Scheduled backup failed: %v", err)
				}
			case <-s.stop:
				return
			}
		}
	}()
}

// Stop terminates the backup loop
func (s *BackupService) Stop() {
	close(s.stop)
}

// RunBackup performs a single database backup via pg_dump
func (s *BackupService) RunBackup(ctx context.Context, backupType string, triggeredBy *uuid.UUID) (*entity.BackupLog, error) {
	dir := s.cfg.Directory
	if dir == "" {
		dir = "backups"
	}
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("failed to create backup directory: %w", err)
	}

	fileName := fmt.Sprintf("%s-%s.sql", s.dbCfg.Name, time.Now().Format("20060102-150405"))
	filePath := filepath.Join(dir, fileName)

	backupLog := &entity.BackupLog{
		FileName:    fileName,
		Status:      "in_progress",
		Type:        backupType,
		TriggeredBy: triggeredBy,
		StartedAt:   time.Now(),
	}
	if err := s.backupRepo.Create(ctx, backupLog); err != nil {
		return nil, err
	}

	cmd := exec.CommandContext(ctx, "pg_dump",
		"-h", s.dbCfg.Host,
		"-p", s.dbCfg.Port,
		"-U", s.dbCfg.User,
		"-d", s.dbCfg.Name,
		"-f", filePath,
	)
	cmd.Env = append(os.Environ(), "PGPASSWORD="+s.dbCfg.Password)

	out, runErr := cmd.CombinedOutput()
	now := time.Now()
	backupLog.CompletedAt = &now
	if runErr != nil {
		msg := strings.TrimSpace(fmt.Sprintf("%v: %s", runErr, out))
		if len(msg) > 1000 {
			msg = msg[:1000]
		}
		backupLog.Status = "failed"
		backupLog.Error = &msg
		_ = s.backupRepo.Update(ctx, backupLog)
		return backupLog, fmt.Errorf("pg_dump failed: %w", runErr)
	}

	if info, err := os.Stat(filePath); err == nil {
		backupLog.FileSize = info.Size()
	}
	backupLog.Status = "success"
	if err := s.backupRepo.Update(ctx, backupLog); err != nil {
		return nil, err
	}

	s.pruneOldBackups(dir)

	return backupLog, nil
}

// ListBackups returns the most recent backup attempts
func (s *BackupService) ListBackups(ctx context.Context, limit int) ([]entity.BackupLog, error) {
	if limit <= 0 || limit > 100 {
		limit = 20
	}
	return s.backupRepo.ListRecent(ctx, limit)
}

// GetBackup returns a single backup log entry
func (s *BackupService) GetBackup(ctx context.Context, id uuid.UUID) (*entity.BackupLog, error) {
	backupLog, err := s.backupRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if backupLog == nil {
		return nil, apperror.NewNotFoundError("Backup")
	}
	return backupLog, nil
}

// pruneOldBackups removes dump files beyond the retention count, oldest first
func (s *BackupService) pruneOldBackups(dir string) {
	keep := s.cfg.KeepLast
	if keep <= 0 {
		return
	}

	entries, err := os.ReadDir(dir)
	if err != nil {
		return
	}

	var dumps []string
	for _, entry := range entries {
		if !entry.IsDir() && strings.HasSuffix(entry.Name(), ".sql") {
			dumps = append(dumps, entry.Name())
		}
	}
	if len(dumps) <= keep {
		return
	}

	// Timestamped names sort chronologically
	sort.Strings(dumps)
	for _, name := range dumps[:len(dumps)-keep] {
		if err := os.Remove(filepath.Join(dir, name)); err != nil {
			log.Printf("Failed to prune backup %s: %v", name, err)
		}
	}
}
