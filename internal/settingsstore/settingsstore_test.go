package settingsstore

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/arssetima/codex/internal/entities"
)

func setupTestStore(t *testing.T) *SettingsStore {
	t.Helper()
	path := filepath.Join(t.TempDir(), "settings.json")
	return New(path, zerolog.Nop())
}

func strPtr(s string) *string { return &s }
func intPtr(n int) *int       { return &n }
func boolPtr(b bool) *bool    { return &b }

func TestLoad_FirstLaunchDefaults(t *testing.T) {
	store := setupTestStore(t)

	settings := store.Load()
	assert.Equal(t, entities.AppSettings{
		Theme:         "dark",
		FontSize:      "medium",
		DailyWordGoal: 1000,
		Notifications: true,
	}, settings)
}

func TestSave_PartialMerge(t *testing.T) {
	store := setupTestStore(t)

	require.NoError(t, store.Save(entities.SettingsPatch{Theme: strPtr("light")}))
	require.NoError(t, store.Save(entities.SettingsPatch{DailyWordGoal: intPtr(2500)}))

	settings := store.Load()
	assert.Equal(t, "light", settings.Theme)
	assert.Equal(t, 2500, settings.DailyWordGoal)
	// Unpatched fields keep their defaults.
	assert.Equal(t, "medium", settings.FontSize)
	assert.True(t, settings.Notifications)
}

func TestSave_DisableNotifications(t *testing.T) {
	store := setupTestStore(t)

	require.NoError(t, store.Save(entities.SettingsPatch{Notifications: boolPtr(false)}))
	assert.False(t, store.Load().Notifications)
}

func TestLoad_CorruptFileFallsBackToDefaults(t *testing.T) {
	path := filepath.Join(t.TempDir(), "settings.json")
	require.NoError(t, os.WriteFile(path, []byte("{{{ not json"), 0o644))

	store := New(path, zerolog.Nop())
	assert.Equal(t, entities.DefaultSettings(), store.Load())
}

func TestSave_CreatesParentDirectory(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", "dir", "settings.json")
	store := New(path, zerolog.Nop())

	require.NoError(t, store.Save(entities.SettingsPatch{Theme: strPtr("light")}))
	assert.Equal(t, "light", store.Load().Theme)
}
