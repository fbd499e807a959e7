// Package scheduler runs periodic automatic backups when enabled.
package scheduler

import (
	"context"
	"fmt"
	"sync"

	"github.com/robfig/cron/v3"
	"github.com/rs/zerolog"

	"github.com/arssetima/codex/internal/backup"
	"github.com/arssetima/codex/internal/config"
	"github.com/arssetima/codex/internal/database"
	"github.com/arssetima/codex/internal/entities"
)

// BackupScheduler exports a snapshot to the backup directory on a cron
// schedule and records the last run's outcome in the store's key/value
// table.
type BackupScheduler struct {
	store   *database.Store
	backups *backup.Service
	files   *backup.FileStore
	cfg     config.Backup
	log     zerolog.Logger

	cron      *cron.Cron
	mu        sync.Mutex
	isRunning bool
}

func NewBackupScheduler(
	store *database.Store,
	backups *backup.Service,
	files *backup.FileStore,
	cfg config.Backup,
	log zerolog.Logger,
) *BackupScheduler {
	return &BackupScheduler{
		store:   store,
		backups: backups,
		files:   files,
		cfg:     cfg,
		log:     log,
		cron:    cron.New(),
	}
}

// ValidateCronSchedule checks a standard 5-field cron expression.
func ValidateCronSchedule(schedule string) error {
	_, err := cron.ParseStandard(schedule)
	return err
}

// Start begins the schedule if automatic backups are enabled. Calling it
// on a running scheduler is a no-op.
func (s *BackupScheduler) Start(ctx context.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.isRunning {
		return nil
	}
	if !s.cfg.AutoEnabled {
		s.log.Info().Msg("automatic backups disabled")
		return nil
	}
	if err := ValidateCronSchedule(s.cfg.Schedule); err != nil {
		return fmt.Errorf("invalid backup schedule %q: %w", s.cfg.Schedule, err)
	}

	if _, err := s.cron.AddFunc(s.cfg.Schedule, s.RunBackup); err != nil {
		return fmt.Errorf("schedule backup job: %w", err)
	}
	s.cron.Start()
	s.isRunning = true
	s.log.Info().Str("schedule", s.cfg.Schedule).Msg("automatic backups scheduled")

	go func() {
		<-ctx.Done()
		s.Stop()
	}()
	return nil
}

// Stop halts the schedule. A backup already in flight finishes.
func (s *BackupScheduler) Stop() {
	s.mu.Lock()
	defer s.mu.Unlock()

	if !s.isRunning {
		return
	}
	<-s.cron.Stop().Done()
	s.isRunning = false
	s.log.Info().Msg("automatic backups stopped")
}

// RunBackup performs one export/write cycle and records its outcome.
func (s *BackupScheduler) RunBackup() {
	snapshot, err := s.backups.ExportSnapshot()
	if err != nil {
		s.recordOutcome("failed: "+err.Error(), "")
		s.log.Error().Err(err).Msg("scheduled backup export failed")
		return
	}

	path, err := s.files.Write(snapshot)
	if err != nil {
		s.recordOutcome("failed: "+err.Error(), "")
		s.log.Error().Err(err).Msg("scheduled backup write failed")
		return
	}

	s.recordOutcome("success", path)
	s.log.Info().Str("path", path).Msg("scheduled backup written")
}

func (s *BackupScheduler) recordOutcome(status, path string) {
	// Status bookkeeping is advisory; a failed write here must not fail
	// the backup itself.
	if err := s.store.SetMeta(database.MetaLastBackupAt, entities.Now()); err != nil {
		s.log.Warn().Err(err).Msg("could not record backup time")
		return
	}
	_ = s.store.SetMeta(database.MetaLastBackupStatus, status)
	_ = s.store.SetMeta(database.MetaLastBackupPath, path)
}
