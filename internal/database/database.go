// Package database implements the embedded record store: one SQLite file,
// a declared table set, and generic table-agnostic CRUD over flat records.
//
// The store stays deliberately generic (table name as a parameter) instead
// of growing nine near-identical per-entity implementations; typed access
// lives at the encyclopedia boundary. Rows are flat column→scalar maps; the
// field codec owns the encoding of structured values into cells.
//
// # Usage
//
//	store, err := database.New(cfg.Database.Path, log)
//	rows, err := store.GetAll(database.TableCharacters)
package database

import (
	"errors"
	"fmt"
	"sort"
	"strings"

	"github.com/mattn/go-sqlite3"
	"github.com/rs/zerolog"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// Record is one flat row: column name → scalar (string, number or nil).
type Record = map[string]any

type Store struct {
	db  *gorm.DB
	log zerolog.Logger
}

// New opens (or creates) the database file and ensures every declared table
// exists. Safe to call on every app start. Open or DDL failures wrap
// ErrStorageUnavailable.
func New(path string, log zerolog.Logger) (*Store, error) {
	db, err := gorm.Open(sqlite.Open(path), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	if err != nil {
		return nil, fmt.Errorf("%w: open %s: %v", ErrStorageUnavailable, path, err)
	}

	store := &Store{db: db, log: log}
	if err := store.createTables(); err != nil {
		return nil, err
	}

	log.Info().Str("path", path).Msg("database initialized")
	return store, nil
}

func (s *Store) Close() error {
	sqlDB, err := s.db.DB()
	if err != nil {
		return err
	}
	return sqlDB.Close()
}

func (s *Store) createTables() error {
	for _, table := range schema {
		if err := s.db.Exec(table.createDDL()).Error; err != nil {
			return fmt.Errorf("%w: create table %s: %v", ErrStorageUnavailable, table.Name, err)
		}
	}
	return nil
}

// Insert adds one row. The record must carry every required column of the
// table; columns outside the declared set are dropped so documents from
// newer app versions keep importing. Fails with ErrDuplicateKey when the id
// already exists.
func (s *Store) Insert(tableName string, rec Record) error {
	table, err := lookupTable(tableName)
	if err != nil {
		return err
	}
	if missing := table.missingRequired(rec); len(missing) > 0 {
		return fmt.Errorf("%w: %s requires %s", ErrConstraintViolation, tableName, strings.Join(missing, ", "))
	}

	columns, values := declaredColumns(table, rec)
	placeholders := strings.TrimSuffix(strings.Repeat("?, ", len(columns)), ", ")
	stmt := fmt.Sprintf("INSERT INTO %q (%s) VALUES (%s)",
		tableName, strings.Join(columns, ", "), placeholders)

	if err := s.db.Exec(stmt, values...).Error; err != nil {
		return mapSQLiteError(err)
	}
	return nil
}

// Update replaces only the supplied columns on the row matching id. The id
// column itself is immutable and ignored if supplied. Zero matched rows is
// a successful no-op; callers must not assume existence.
func (s *Store) Update(tableName string, id string, rec Record) error {
	table, err := lookupTable(tableName)
	if err != nil {
		return err
	}

	columns, values := declaredColumns(table, rec)
	assignments := make([]string, 0, len(columns))
	args := make([]any, 0, len(values)+1)
	for i, column := range columns {
		if column == `"id"` || column == `"key"` {
			continue
		}
		assignments = append(assignments, column+" = ?")
		args = append(args, values[i])
	}
	if len(assignments) == 0 {
		return nil
	}
	args = append(args, id)

	stmt := fmt.Sprintf("UPDATE %q SET %s WHERE id = ?", tableName, strings.Join(assignments, ", "))
	if err := s.db.Exec(stmt, args...).Error; err != nil {
		return mapSQLiteError(err)
	}
	return nil
}

// Delete removes the row matching id; no-op if absent.
func (s *Store) Delete(tableName string, id string) error {
	if _, err := lookupTable(tableName); err != nil {
		return err
	}
	stmt := fmt.Sprintf("DELETE FROM %q WHERE id = ?", tableName)
	return s.db.Exec(stmt, id).Error
}

// GetAll returns every row of the table. Order is not guaranteed; callers
// sort by createdAt or a derived score where it matters.
func (s *Store) GetAll(tableName string) ([]Record, error) {
	if _, err := lookupTable(tableName); err != nil {
		return nil, err
	}
	var rows []map[string]any
	if err := s.db.Table(tableName).Find(&rows).Error; err != nil {
		return nil, err
	}
	out := make([]Record, 0, len(rows))
	for _, row := range rows {
		out = append(out, normalizeRecord(row))
	}
	return out, nil
}

// GetByID returns the matching row, or ok=false when no row matches.
// Absence is a result, never an error.
func (s *Store) GetByID(tableName string, id string) (Record, bool, error) {
	if _, err := lookupTable(tableName); err != nil {
		return nil, false, err
	}
	var rows []map[string]any
	if err := s.db.Table(tableName).Where("id = ?", id).Limit(1).Find(&rows).Error; err != nil {
		return nil, false, err
	}
	if len(rows) == 0 {
		return nil, false, nil
	}
	return normalizeRecord(rows[0]), true, nil
}

// ClearAll deletes every row from the nine entity tables. Full resets only.
// The settings table is spared; it carries environment-local state.
func (s *Store) ClearAll() error {
	for _, tableName := range EntityTables() {
		stmt := fmt.Sprintf("DELETE FROM %q", tableName)
		if err := s.db.Exec(stmt).Error; err != nil {
			return fmt.Errorf("clear %s: %w", tableName, err)
		}
	}
	s.log.Info().Msg("all entity tables cleared")
	return nil
}

// declaredColumns filters rec down to the table's declared columns,
// returning quoted column names and their values in a stable order.
func declaredColumns(table Table, rec Record) ([]string, []any) {
	names := make([]string, 0, len(rec))
	for name := range rec {
		if table.hasColumn(name) {
			names = append(names, name)
		}
	}
	sort.Strings(names)

	columns := make([]string, 0, len(names))
	values := make([]any, 0, len(names))
	for _, name := range names {
		columns = append(columns, fmt.Sprintf("%q", name))
		values = append(values, rec[name])
	}
	return columns, values
}

func normalizeRecord(row map[string]any) Record {
	for key, value := range row {
		if raw, ok := value.([]byte); ok {
			row[key] = string(raw)
		}
	}
	return row
}

func mapSQLiteError(err error) error {
	var serr sqlite3.Error
	if errors.As(err, &serr) {
		switch {
		case serr.ExtendedCode == sqlite3.ErrConstraintPrimaryKey,
			serr.ExtendedCode == sqlite3.ErrConstraintUnique:
			return fmt.Errorf("%w: %v", ErrDuplicateKey, err)
		case serr.Code == sqlite3.ErrConstraint:
			return fmt.Errorf("%w: %v", ErrConstraintViolation, err)
		}
	}
	return err
}
