// Package backup serializes the whole store into a single portable
// snapshot document and restores from one. Restore is best-effort: a
// malformed row is logged and skipped so a partially corrupt backup still
// recovers everything else.
package backup

import (
	"errors"
	"fmt"

	json "github.com/goccy/go-json"
	"github.com/rs/zerolog"

	"github.com/arssetima/codex/internal/database"
	"github.com/arssetima/codex/internal/entities"
	"github.com/arssetima/codex/internal/fieldcodec"
)

// ErrInvalidBackupFormat means the snapshot document is malformed at the
// top level. Import aborts before touching any table.
var ErrInvalidBackupFormat = errors.New("invalid backup format")

// Result counts the rows an import or seed run touched. A run with failed
// rows still reports overall success; partial recovery is the point.
type Result struct {
	RowsImported int `json:"rows_imported"`
	RowsFailed   int `json:"rows_failed"`
}

// Service reads and writes snapshots through the record store.
type Service struct {
	store *database.Store
	log   zerolog.Logger
}

func NewService(store *database.Store, log zerolog.Logger) *Service {
	return &Service{store: store, log: log}
}

// ExportSnapshot reads every entity table in full and assembles the backup
// document. Rows are exported exactly as stored; list cells stay encoded.
func (s *Service) ExportSnapshot() (*entities.Snapshot, error) {
	snapshot := &entities.Snapshot{
		Version:    entities.SnapshotVersion,
		ExportDate: entities.Now(),
	}
	for _, table := range database.EntityTables() {
		rows, err := s.store.GetAll(table)
		if err != nil {
			return nil, fmt.Errorf("export %s: %w", table, err)
		}
		if rows == nil {
			rows = []database.Record{}
		}
		snapshot.Put(table, rows)
	}
	return snapshot, nil
}

// ImportSnapshot restores a snapshot by per-row upsert. The only structural
// validation is the presence of version and exportDate; a missing pair
// aborts with ErrInvalidBackupFormat before anything is written. Row
// failures are logged and counted, never propagated.
func (s *Service) ImportSnapshot(snapshot *entities.Snapshot) (Result, error) {
	if snapshot == nil || snapshot.Version == "" || snapshot.ExportDate == "" {
		return Result{}, ErrInvalidBackupFormat
	}
	result := s.importTables(snapshot)
	s.log.Info().
		Int("imported", result.RowsImported).
		Int("failed", result.RowsFailed).
		Msg("backup import completed")
	return result, nil
}

// LoadSeed runs the bundled first-launch snapshot through the same upsert
// loop. The bundle is trusted, so the top-level validation is skipped.
func (s *Service) LoadSeed(snapshot *entities.Snapshot) (Result, error) {
	if snapshot == nil {
		return Result{}, nil
	}
	result := s.importTables(snapshot)
	s.log.Info().
		Int("imported", result.RowsImported).
		Int("failed", result.RowsFailed).
		Msg("seed data loaded")
	return result, nil
}

func (s *Service) importTables(snapshot *entities.Snapshot) Result {
	var result Result
	for _, table := range snapshot.Tables() {
		for _, row := range table.Rows {
			if err := s.upsertRow(table.Name, row); err != nil {
				result.RowsFailed++
				s.log.Warn().
					Str("table", table.Name).
					Str("id", fieldcodec.DecodeString(row["id"])).
					Err(err).
					Msg("row import failed")
				continue
			}
			result.RowsImported++
		}
	}
	return result
}

// upsertRow looks the row up by id and updates or inserts accordingly.
// The lookup/write pair is not wrapped in a transaction; under a single
// writer that is fine, under concurrent imports the same id could be
// decided "absent" twice. Known gap, inherited from the data this format
// comes from.
func (s *Service) upsertRow(table string, row database.Record) error {
	id, ok := row["id"].(string)
	if !ok || id == "" {
		return fmt.Errorf("row has no id")
	}

	_, exists, err := s.store.GetByID(table, id)
	if err != nil {
		return err
	}
	if exists {
		return s.store.Update(table, id, row)
	}
	return s.store.Insert(table, row)
}

// ParseSnapshot decodes a snapshot document. Unknown top-level keys are
// ignored so documents from newer app versions keep importing.
func ParseSnapshot(data []byte) (*entities.Snapshot, error) {
	var snapshot entities.Snapshot
	if err := json.Unmarshal(data, &snapshot); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidBackupFormat, err)
	}
	return &snapshot, nil
}

// EncodeSnapshot serializes a snapshot the way the historical exporter did:
// indented JSON.
func EncodeSnapshot(snapshot *entities.Snapshot) ([]byte, error) {
	return json.MarshalIndent(snapshot, "", "  ")
}
