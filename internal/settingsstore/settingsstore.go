// Package settingsstore persists user preferences as a single JSON
// document in its own file, deliberately outside the relational store.
// App preferences travel with the environment, not with backups.
package settingsstore

import (
	"fmt"
	"os"
	"path/filepath"

	json "github.com/goccy/go-json"
	"github.com/rs/zerolog"

	"github.com/arssetima/codex/internal/entities"
)

// SettingsStore reads and writes the singleton settings record.
type SettingsStore struct {
	path string
	log  zerolog.Logger
}

func New(path string, log zerolog.Logger) *SettingsStore {
	return &SettingsStore{path: path, log: log}
}

// Load returns the persisted settings. It never fails: a missing file is
// first launch, and an unreadable or corrupt one falls back to defaults
// rather than blocking the app on its preferences.
func (s *SettingsStore) Load() entities.AppSettings {
	data, err := os.ReadFile(s.path)
	if err != nil {
		if !os.IsNotExist(err) {
			s.log.Warn().Err(err).Str("path", s.path).Msg("settings unreadable, using defaults")
		}
		return entities.DefaultSettings()
	}

	settings := entities.DefaultSettings()
	if err := json.Unmarshal(data, &settings); err != nil {
		s.log.Warn().Err(err).Str("path", s.path).Msg("settings corrupt, using defaults")
		return entities.DefaultSettings()
	}
	return settings
}

// Save merges the patch into the current settings and persists the full
// merged record.
func (s *SettingsStore) Save(patch entities.SettingsPatch) error {
	settings := s.Load()
	settings.Apply(patch)

	data, err := json.MarshalIndent(settings, "", "  ")
	if err != nil {
		return fmt.Errorf("encode settings: %w", err)
	}
	if dir := filepath.Dir(s.path); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return fmt.Errorf("create settings dir: %w", err)
		}
	}
	if err := os.WriteFile(s.path, data, 0o644); err != nil {
		return fmt.Errorf("write settings: %w", err)
	}
	return nil
}
