package entities

import "github.com/arssetima/codex/internal/database"

// SnapshotVersion is the format tag written on export.
const SnapshotVersion = "1.0.0"

// Snapshot is the full-database backup document. Rows stay flat store
// records rather than typed entities so fields written by newer app
// versions survive an export/import round-trip untouched. Settings are
// environment-local and excluded.
type Snapshot struct {
	Version    string            `json:"version"`
	ExportDate string            `json:"exportDate"`
	Characters []database.Record `json:"characters"`
	Locations  []database.Record `json:"locations"`
	Events     []database.Record `json:"events"`
	Notes      []database.Record `json:"notes"`
	Spells     []database.Record `json:"spells"`
	Items      []database.Record `json:"items"`
	Creatures  []database.Record `json:"creatures"`
	Factions   []database.Record `json:"factions"`
	Chapters   []database.Record `json:"chapters"`
}

// SnapshotTable pairs a table name with its snapshot rows.
type SnapshotTable struct {
	Name string
	Rows []database.Record
}

// Tables lists the nine entity tables in store declaration order.
func (s *Snapshot) Tables() []SnapshotTable {
	return []SnapshotTable{
		{database.TableCharacters, s.Characters},
		{database.TableLocations, s.Locations},
		{database.TableEvents, s.Events},
		{database.TableNotes, s.Notes},
		{database.TableSpells, s.Spells},
		{database.TableItems, s.Items},
		{database.TableCreatures, s.Creatures},
		{database.TableFactions, s.Factions},
		{database.TableChapters, s.Chapters},
	}
}

// Put sets the rows for one entity table. Unknown names are ignored, the
// same stance the importer takes toward unknown document keys.
func (s *Snapshot) Put(table string, rows []database.Record) {
	switch table {
	case database.TableCharacters:
		s.Characters = rows
	case database.TableLocations:
		s.Locations = rows
	case database.TableEvents:
		s.Events = rows
	case database.TableNotes:
		s.Notes = rows
	case database.TableSpells:
		s.Spells = rows
	case database.TableItems:
		s.Items = rows
	case database.TableCreatures:
		s.Creatures = rows
	case database.TableFactions:
		s.Factions = rows
	case database.TableChapters:
		s.Chapters = rows
	}
}
