// Package entrypoint assembles the persistence core: configuration,
// logging, the record store, the typed encyclopedia, settings, backups and
// the seed loader. There is exactly one App per process, built at start
// and passed to whatever shell hosts it.
package entrypoint

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/rs/zerolog"

	"github.com/arssetima/codex/internal/backup"
	"github.com/arssetima/codex/internal/config"
	"github.com/arssetima/codex/internal/database"
	"github.com/arssetima/codex/internal/encyclopedia"
	"github.com/arssetima/codex/internal/logging"
	"github.com/arssetima/codex/internal/scheduler"
	"github.com/arssetima/codex/internal/seed"
	"github.com/arssetima/codex/internal/settingsstore"
	"github.com/arssetima/codex/internal/stats"
)

// App owns every service of the core and their shared store handle.
type App struct {
	Config       *config.Config
	Log          zerolog.Logger
	Store        *database.Store
	Encyclopedia *encyclopedia.Encyclopedia
	Settings     *settingsstore.SettingsStore
	Backups      *backup.Service
	BackupFiles  *backup.FileStore
	Stats        *stats.Service

	backupScheduler *scheduler.BackupScheduler
}

// New wires the core together and runs first-launch seeding. A store that
// cannot be opened fails startup with database.ErrStorageUnavailable
// wrapped in the returned error.
func New(cfg *config.Config) (*App, error) {
	log := logging.New(cfg.Logging.Level)

	store, err := database.New(cfg.Database.Path, log)
	if err != nil {
		return nil, fmt.Errorf("initialize store: %w", err)
	}

	backups := backup.NewService(store, log)
	app := &App{
		Config:       cfg,
		Log:          log,
		Store:        store,
		Encyclopedia: encyclopedia.New(store, log),
		Settings:     settingsstore.New(cfg.Settings.Path, log),
		Backups:      backups,
		BackupFiles:  backup.NewFileStore(cfg.Backup.Dir, cfg.Backup.Compress),
		Stats:        stats.NewService(store),
	}
	app.backupScheduler = scheduler.NewBackupScheduler(store, backups, app.BackupFiles, cfg.Backup, log)

	if cfg.Seed.Enabled {
		loader := seed.NewLoader(store, backups, log)
		if err := loader.LoadIfEmpty(); err != nil {
			// First-launch seeding is a convenience; an empty universe is
			// still a working one.
			log.Warn().Err(err).Msg("seed loading failed")
		}
	}

	return app, nil
}

// Start launches the background schedulers.
func (a *App) Start(ctx context.Context) error {
	return a.backupScheduler.Start(ctx)
}

// Shutdown stops background work and closes the store.
func (a *App) Shutdown() {
	a.backupScheduler.Stop()
	if err := a.Store.Close(); err != nil {
		a.Log.Warn().Err(err).Msg("store close failed")
	}
}

// Run blocks until SIGINT/SIGTERM, then shuts down within the configured
// timeout.
func Run(cfg *config.Config, version string) error {
	app, err := New(cfg)
	if err != nil {
		return err
	}
	app.Log.Info().Str("version", version).Msg("starting codex")

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	if err := app.Start(ctx); err != nil {
		app.Shutdown()
		return err
	}

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	timeout := time.Duration(cfg.Global.ShutdownTimeoutInSeconds) * time.Second
	app.Log.Info().Dur("timeout", timeout).Msg("shutting down")
	cancel()

	done := make(chan struct{})
	go func() {
		app.Shutdown()
		close(done)
	}()
	select {
	case <-done:
	case <-time.After(timeout):
		app.Log.Warn().Msg("shutdown timed out")
	}
	return nil
}
