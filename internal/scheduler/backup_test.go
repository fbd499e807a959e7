package scheduler

import (
	"context"
	"os"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/arssetima/codex/internal/backup"
	"github.com/arssetima/codex/internal/config"
	"github.com/arssetima/codex/internal/database"
)

func setupTestScheduler(t *testing.T, cfg config.Backup) (*BackupScheduler, *database.Store, func()) {
	t.Helper()
	dbPath := "./test_" + t.Name() + ".db"
	store, err := database.New(dbPath, zerolog.Nop())
	require.NoError(t, err)

	svc := backup.NewService(store, zerolog.Nop())
	files := backup.NewFileStore(cfg.Dir, cfg.Compress)

	cleanup := func() {
		store.Close()
		os.Remove(dbPath)
	}
	return NewBackupScheduler(store, svc, files, cfg, zerolog.Nop()), store, cleanup
}

func TestValidateCronSchedule(t *testing.T) {
	assert.NoError(t, ValidateCronSchedule("0 3 * * *"))
	assert.NoError(t, ValidateCronSchedule("*/15 * * * *"))
	assert.Error(t, ValidateCronSchedule("not a schedule"))
	assert.Error(t, ValidateCronSchedule(""))
}

func TestRunBackup_WritesFileAndRecordsOutcome(t *testing.T) {
	cfg := config.Backup{Dir: t.TempDir(), Schedule: "0 3 * * *"}
	sched, store, cleanup := setupTestScheduler(t, cfg)
	defer cleanup()

	require.NoError(t, store.Insert(database.TableCharacters, database.Record{
		"id": "c1", "name": "Aria",
		"createdAt": "2024-03-01T10:00:00Z", "updatedAt": "2024-03-01T10:00:00Z",
	}))

	sched.RunBackup()

	status, ok, err := store.GetMeta(database.MetaLastBackupStatus)
	require.NoError(t, err)
	require.True(t, ok)
	assert.Equal(t, "success", status)

	path, ok, err := store.GetMeta(database.MetaLastBackupPath)
	require.NoError(t, err)
	require.True(t, ok)
	assert.FileExists(t, path)

	_, ok, err = store.GetMeta(database.MetaLastBackupAt)
	require.NoError(t, err)
	assert.True(t, ok)
}

func TestStart_DisabledIsNoOp(t *testing.T) {
	cfg := config.Backup{Dir: t.TempDir(), AutoEnabled: false, Schedule: "0 3 * * *"}
	sched, _, cleanup := setupTestScheduler(t, cfg)
	defer cleanup()

	require.NoError(t, sched.Start(context.Background()))
	sched.Stop() // stopping a never-started scheduler must not hang
}

func TestStart_InvalidSchedule(t *testing.T) {
	cfg := config.Backup{Dir: t.TempDir(), AutoEnabled: true, Schedule: "nope"}
	sched, _, cleanup := setupTestScheduler(t, cfg)
	defer cleanup()

	assert.Error(t, sched.Start(context.Background()))
}

func TestStartStop(t *testing.T) {
	cfg := config.Backup{Dir: t.TempDir(), AutoEnabled: true, Schedule: "0 3 * * *"}
	sched, _, cleanup := setupTestScheduler(t, cfg)
	defer cleanup()

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	require.NoError(t, sched.Start(ctx))
	require.NoError(t, sched.Start(ctx)) // second start is a no-op
	sched.Stop()
}
