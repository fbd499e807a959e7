package database

// Internal key/value state kept in the settings table: the seed marker and
// the last scheduled-backup status. User preferences live in the JSON
// settings store, not here; the split matches the historical data layout.

// Meta keys written by the core.
const (
	MetaSeedLoadedAt     = "seed_loaded_at"
	MetaLastBackupAt     = "backup_last_run_at"
	MetaLastBackupStatus = "backup_last_status"
	MetaLastBackupPath   = "backup_last_path"
)

// GetMeta reads one key from the settings table. ok=false when unset.
func (s *Store) GetMeta(key string) (string, bool, error) {
	var rows []struct {
		Value string
	}
	err := s.db.Raw(`SELECT value FROM "settings" WHERE key = ?`, key).Scan(&rows).Error
	if err != nil {
		return "", false, err
	}
	if len(rows) == 0 {
		return "", false, nil
	}
	return rows[0].Value, true, nil
}

// SetMeta writes one key, overwriting any previous value.
func (s *Store) SetMeta(key, value string) error {
	stmt := `INSERT INTO "settings" (key, value) VALUES (?, ?)
		ON CONFLICT(key) DO UPDATE SET value = excluded.value`
	return s.db.Exec(stmt, key, value).Error
}
