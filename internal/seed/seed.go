// Package seed loads the bundled starter universe into an empty store on
// first launch.
package seed

import (
	_ "embed"
	"fmt"

	"github.com/rs/zerolog"

	"github.com/arssetima/codex/internal/backup"
	"github.com/arssetima/codex/internal/database"
	"github.com/arssetima/codex/internal/entities"
)

//go:embed seed.json
var seedDocument []byte

// Loader checks for the first-launch condition and runs the bundled
// snapshot through the backup upsert path.
type Loader struct {
	store   *database.Store
	backups *backup.Service
	log     zerolog.Logger
}

func NewLoader(store *database.Store, backups *backup.Service, log zerolog.Logger) *Loader {
	return &Loader{store: store, backups: backups, log: log}
}

// LoadIfEmpty seeds the store when the characters table is empty — the
// original first-launch heuristic — and records a marker. A store with any
// character rows is left untouched.
func (l *Loader) LoadIfEmpty() error {
	characters, err := l.store.GetAll(database.TableCharacters)
	if err != nil {
		return fmt.Errorf("check first launch: %w", err)
	}
	if len(characters) > 0 {
		return nil
	}

	snapshot, err := backup.ParseSnapshot(seedDocument)
	if err != nil {
		return fmt.Errorf("parse bundled seed: %w", err)
	}

	result, err := l.backups.LoadSeed(snapshot)
	if err != nil {
		return err
	}
	if result.RowsFailed > 0 {
		l.log.Warn().Int("failed", result.RowsFailed).Msg("some seed rows did not load")
	}

	return l.store.SetMeta(database.MetaSeedLoadedAt, entities.Now())
}
