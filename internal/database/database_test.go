package database

import (
	"os"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// setupTestStore creates a fresh test database
func setupTestStore(t *testing.T) (*Store, func()) {
	t.Helper()
	dbPath := "./test_" + t.Name() + ".db"
	store, err := New(dbPath, zerolog.Nop())
	require.NoError(t, err)

	cleanup := func() {
		store.Close()
		os.Remove(dbPath)
	}
	return store, cleanup
}

func characterRecord(id string) Record {
	return Record{
		"id":        id,
		"name":      "Aria",
		"powers":    `["fire","ice"]`,
		"createdAt": "2024-03-01T10:00:00Z",
		"updatedAt": "2024-03-01T10:00:00Z",
	}
}

func TestNew_IdempotentInitialize(t *testing.T) {
	dbPath := "./test_" + t.Name() + ".db"
	defer os.Remove(dbPath)

	store, err := New(dbPath, zerolog.Nop())
	require.NoError(t, err)
	require.NoError(t, store.Insert(TableCharacters, characterRecord("c1")))
	require.NoError(t, store.Close())

	// Reopening must keep existing rows and not error.
	store, err = New(dbPath, zerolog.Nop())
	require.NoError(t, err)
	defer store.Close()

	rows, err := store.GetAll(TableCharacters)
	require.NoError(t, err)
	assert.Len(t, rows, 1)
}

func TestNew_StorageUnavailable(t *testing.T) {
	_, err := New("./does/not/exist/anywhere.db", zerolog.Nop())
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrStorageUnavailable)
}

func TestStore_InsertAndGetByID(t *testing.T) {
	store, cleanup := setupTestStore(t)
	defer cleanup()

	require.NoError(t, store.Insert(TableCharacters, characterRecord("c1")))

	rec, ok, err := store.GetByID(TableCharacters, "c1")
	require.NoError(t, err)
	require.True(t, ok)
	assert.Equal(t, "Aria", rec["name"])
	assert.Equal(t, `["fire","ice"]`, rec["powers"])
}

func TestStore_Insert_DuplicateKey(t *testing.T) {
	store, cleanup := setupTestStore(t)
	defer cleanup()

	require.NoError(t, store.Insert(TableCharacters, characterRecord("c1")))

	err := store.Insert(TableCharacters, characterRecord("c1"))
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrDuplicateKey)
}

func TestStore_Insert_MissingRequiredColumn(t *testing.T) {
	store, cleanup := setupTestStore(t)
	defer cleanup()

	err := store.Insert(TableLocations, Record{
		"id":        "l1",
		"name":      "Porto Velho",
		"createdAt": "2024-03-01T10:00:00Z",
		"updatedAt": "2024-03-01T10:00:00Z",
		// description missing
	})
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrConstraintViolation)
	assert.Contains(t, err.Error(), "description")

	// Nothing was written.
	rows, err := store.GetAll(TableLocations)
	require.NoError(t, err)
	assert.Empty(t, rows)
}

func TestStore_Insert_NullRequiredColumn(t *testing.T) {
	store, cleanup := setupTestStore(t)
	defer cleanup()

	rec := characterRecord("c1")
	rec["name"] = nil
	err := store.Insert(TableCharacters, rec)
	assert.ErrorIs(t, err, ErrConstraintViolation)
}

func TestStore_Insert_DropsUndeclaredColumns(t *testing.T) {
	store, cleanup := setupTestStore(t)
	defer cleanup()

	rec := characterRecord("c1")
	rec["futureField"] = "from a newer app version"
	require.NoError(t, store.Insert(TableCharacters, rec))

	stored, ok, err := store.GetByID(TableCharacters, "c1")
	require.NoError(t, err)
	require.True(t, ok)
	assert.NotContains(t, stored, "futureField")
}

func TestStore_UnknownTable(t *testing.T) {
	store, cleanup := setupTestStore(t)
	defer cleanup()

	err := store.Insert("villains", characterRecord("v1"))
	assert.ErrorIs(t, err, ErrUnknownTable)

	_, err = store.GetAll("villains; DROP TABLE characters")
	assert.ErrorIs(t, err, ErrUnknownTable)
}

func TestStore_Update_PartialColumns(t *testing.T) {
	store, cleanup := setupTestStore(t)
	defer cleanup()

	require.NoError(t, store.Insert(TableCharacters, characterRecord("c1")))
	require.NoError(t, store.Update(TableCharacters, "c1", Record{"name": "Aria Vane"}))

	rec, ok, err := store.GetByID(TableCharacters, "c1")
	require.NoError(t, err)
	require.True(t, ok)
	assert.Equal(t, "Aria Vane", rec["name"])
	// Untouched columns keep their values.
	assert.Equal(t, `["fire","ice"]`, rec["powers"])
}

func TestStore_Update_MissingRowIsNoOp(t *testing.T) {
	store, cleanup := setupTestStore(t)
	defer cleanup()

	err := store.Update(TableCharacters, "ghost", Record{"name": "Nobody"})
	assert.NoError(t, err)
}

func TestStore_Update_IDIsImmutable(t *testing.T) {
	store, cleanup := setupTestStore(t)
	defer cleanup()

	require.NoError(t, store.Insert(TableCharacters, characterRecord("c1")))
	require.NoError(t, store.Update(TableCharacters, "c1", Record{"id": "c2", "name": "Renamed"}))

	_, ok, err := store.GetByID(TableCharacters, "c2")
	require.NoError(t, err)
	assert.False(t, ok)

	rec, ok, err := store.GetByID(TableCharacters, "c1")
	require.NoError(t, err)
	require.True(t, ok)
	assert.Equal(t, "Renamed", rec["name"])
}

func TestStore_Update_OnlyIDIsNoOp(t *testing.T) {
	store, cleanup := setupTestStore(t)
	defer cleanup()

	require.NoError(t, store.Insert(TableCharacters, characterRecord("c1")))
	assert.NoError(t, store.Update(TableCharacters, "c1", Record{"id": "c2"}))
}

func TestStore_DeleteThenGet(t *testing.T) {
	store, cleanup := setupTestStore(t)
	defer cleanup()

	require.NoError(t, store.Insert(TableCharacters, characterRecord("c1")))
	require.NoError(t, store.Delete(TableCharacters, "c1"))

	_, ok, err := store.GetByID(TableCharacters, "c1")
	require.NoError(t, err)
	assert.False(t, ok)

	// Deleting again is a no-op, never an error.
	assert.NoError(t, store.Delete(TableCharacters, "c1"))
}

func TestStore_GetAll(t *testing.T) {
	store, cleanup := setupTestStore(t)
	defer cleanup()

	require.NoError(t, store.Insert(TableCharacters, characterRecord("c1")))
	require.NoError(t, store.Insert(TableCharacters, characterRecord("c2")))

	rows, err := store.GetAll(TableCharacters)
	require.NoError(t, err)
	assert.Len(t, rows, 2)
}

func TestStore_ClearAll(t *testing.T) {
	store, cleanup := setupTestStore(t)
	defer cleanup()

	require.NoError(t, store.Insert(TableCharacters, characterRecord("c1")))
	require.NoError(t, store.Insert(TableSpells, Record{
		"id":          "s1",
		"name":        "Seventh Power",
		"description": "The unnamed power.",
		"createdAt":   "2024-03-01T10:00:00Z",
		"updatedAt":   "2024-03-01T10:00:00Z",
	}))
	require.NoError(t, store.SetMeta(MetaSeedLoadedAt, "2024-03-01T10:00:00Z"))

	require.NoError(t, store.ClearAll())

	for _, table := range EntityTables() {
		rows, err := store.GetAll(table)
		require.NoError(t, err)
		assert.Empty(t, rows, table)
	}

	// The settings table is environment-local and survives a reset.
	value, ok, err := store.GetMeta(MetaSeedLoadedAt)
	require.NoError(t, err)
	assert.True(t, ok)
	assert.Equal(t, "2024-03-01T10:00:00Z", value)
}

func TestStore_Meta(t *testing.T) {
	store, cleanup := setupTestStore(t)
	defer cleanup()

	_, ok, err := store.GetMeta("unset")
	require.NoError(t, err)
	assert.False(t, ok)

	require.NoError(t, store.SetMeta("backup_last_status", "success"))
	require.NoError(t, store.SetMeta("backup_last_status", "failed: disk full"))

	value, ok, err := store.GetMeta("backup_last_status")
	require.NoError(t, err)
	require.True(t, ok)
	assert.Equal(t, "failed: disk full", value)
}
