package database

import (
	"fmt"
	"strings"
)

// Column declares one column of a table. Required columns must be present
// and non-null on insert; the check runs before the statement does.
type Column struct {
	Name       string
	Type       string // "TEXT" or "INTEGER"
	PrimaryKey bool
	Required   bool
}

// Table declares a named table and its full column set.
type Table struct {
	Name    string
	Columns []Column
}

// Table names. The settings table holds internal key/value state and is not
// part of the entity set.
const (
	TableCharacters = "characters"
	TableLocations  = "locations"
	TableEvents     = "events"
	TableNotes      = "notes"
	TableSpells     = "spells"
	TableItems      = "items"
	TableCreatures  = "creatures"
	TableFactions   = "factions"
	TableChapters   = "chapters"
	TableSettings   = "settings"
)

func baseColumns() []Column {
	return []Column{
		{Name: "id", Type: "TEXT", PrimaryKey: true, Required: true},
	}
}

func timestampColumns() []Column {
	return []Column{
		{Name: "createdAt", Type: "TEXT", Required: true},
		{Name: "updatedAt", Type: "TEXT", Required: true},
	}
}

func entityTable(name string, columns ...Column) Table {
	all := baseColumns()
	all = append(all, columns...)
	all = append(all, timestampColumns()...)
	return Table{Name: name, Columns: all}
}

// schema is the complete declared table set. Column names and nullability
// mirror the historical on-device database so existing data files keep
// opening.
var schema = []Table{
	entityTable(TableCharacters,
		Column{Name: "name", Type: "TEXT", Required: true},
		Column{Name: "age", Type: "INTEGER"},
		Column{Name: "appearance", Type: "TEXT"},
		Column{Name: "powers", Type: "TEXT"},
		Column{Name: "goals", Type: "TEXT"},
		Column{Name: "secrets", Type: "TEXT"},
		Column{Name: "relations", Type: "TEXT"},
		Column{Name: "notes", Type: "TEXT"},
		Column{Name: "imageUri", Type: "TEXT"},
		Column{Name: "tags", Type: "TEXT"},
	),
	entityTable(TableLocations,
		Column{Name: "name", Type: "TEXT", Required: true},
		Column{Name: "description", Type: "TEXT", Required: true},
		Column{Name: "imageUri", Type: "TEXT"},
		Column{Name: "coordinates", Type: "TEXT"},
		Column{Name: "relatedCharacters", Type: "TEXT"},
		Column{Name: "tags", Type: "TEXT"},
	),
	entityTable(TableEvents,
		Column{Name: "title", Type: "TEXT", Required: true},
		Column{Name: "date", Type: "TEXT", Required: true},
		Column{Name: "description", Type: "TEXT", Required: true},
		Column{Name: "links", Type: "TEXT"},
		Column{Name: "category", Type: "TEXT"},
		Column{Name: "importance", Type: "TEXT"},
	),
	entityTable(TableNotes,
		Column{Name: "title", Type: "TEXT", Required: true},
		Column{Name: "content", Type: "TEXT", Required: true},
		Column{Name: "category", Type: "TEXT"},
		Column{Name: "priority", Type: "TEXT"},
		Column{Name: "tags", Type: "TEXT"},
		Column{Name: "relatedTo", Type: "TEXT"},
	),
	entityTable(TableSpells,
		Column{Name: "name", Type: "TEXT", Required: true},
		Column{Name: "description", Type: "TEXT", Required: true},
		Column{Name: "type", Type: "TEXT"},
		Column{Name: "level", Type: "INTEGER"},
		Column{Name: "requirements", Type: "TEXT"},
		Column{Name: "effects", Type: "TEXT"},
		Column{Name: "knownBy", Type: "TEXT"},
		Column{Name: "imageUri", Type: "TEXT"},
	),
	entityTable(TableItems,
		Column{Name: "name", Type: "TEXT", Required: true},
		Column{Name: "description", Type: "TEXT", Required: true},
		Column{Name: "type", Type: "TEXT"},
		Column{Name: "rarity", Type: "TEXT"},
		Column{Name: "ownedBy", Type: "TEXT"},
		Column{Name: "powers", Type: "TEXT"},
		Column{Name: "imageUri", Type: "TEXT"},
	),
	entityTable(TableCreatures,
		Column{Name: "name", Type: "TEXT", Required: true},
		Column{Name: "species", Type: "TEXT", Required: true},
		Column{Name: "description", Type: "TEXT", Required: true},
		Column{Name: "abilities", Type: "TEXT"},
		Column{Name: "habitat", Type: "TEXT"},
		Column{Name: "dangerLevel", Type: "TEXT"},
		Column{Name: "imageUri", Type: "TEXT"},
	),
	entityTable(TableFactions,
		Column{Name: "name", Type: "TEXT", Required: true},
		Column{Name: "description", Type: "TEXT", Required: true},
		Column{Name: "leader", Type: "TEXT"},
		Column{Name: "members", Type: "TEXT"},
		Column{Name: "goals", Type: "TEXT"},
		Column{Name: "headquarters", Type: "TEXT"},
		Column{Name: "alignment", Type: "TEXT"},
		Column{Name: "imageUri", Type: "TEXT"},
	),
	entityTable(TableChapters,
		Column{Name: "number", Type: "INTEGER", Required: true},
		Column{Name: "title", Type: "TEXT", Required: true},
		Column{Name: "content", Type: "TEXT", Required: true},
		Column{Name: "wordCount", Type: "INTEGER", Required: true},
		Column{Name: "status", Type: "TEXT"},
		Column{Name: "notes", Type: "TEXT"},
		Column{Name: "targetWordCount", Type: "INTEGER"},
	),
	{
		Name: TableSettings,
		Columns: []Column{
			{Name: "key", Type: "TEXT", PrimaryKey: true, Required: true},
			{Name: "value", Type: "TEXT", Required: true},
		},
	},
}

var schemaByName = func() map[string]Table {
	byName := make(map[string]Table, len(schema))
	for _, table := range schema {
		byName[table.Name] = table
	}
	return byName
}()

// EntityTables returns the nine entity table names in their declaration
// order. The settings table is excluded.
func EntityTables() []string {
	return []string{
		TableCharacters,
		TableLocations,
		TableEvents,
		TableNotes,
		TableSpells,
		TableItems,
		TableCreatures,
		TableFactions,
		TableChapters,
	}
}

func lookupTable(name string) (Table, error) {
	table, ok := schemaByName[name]
	if !ok {
		return Table{}, fmt.Errorf("%w: %s", ErrUnknownTable, name)
	}
	return table, nil
}

func (t Table) createDDL() string {
	defs := make([]string, 0, len(t.Columns))
	for _, col := range t.Columns {
		def := fmt.Sprintf("%q %s", col.Name, col.Type)
		if col.PrimaryKey {
			def += " PRIMARY KEY"
		} else if col.Required {
			def += " NOT NULL"
		}
		defs = append(defs, def)
	}
	return fmt.Sprintf("CREATE TABLE IF NOT EXISTS %q (%s)", t.Name, strings.Join(defs, ", "))
}

func (t Table) hasColumn(name string) bool {
	for _, col := range t.Columns {
		if col.Name == name {
			return true
		}
	}
	return false
}

// missingRequired reports the required columns absent or null in rec.
func (t Table) missingRequired(rec Record) []string {
	var missing []string
	for _, col := range t.Columns {
		if !col.Required {
			continue
		}
		value, ok := rec[col.Name]
		if !ok || value == nil {
			missing = append(missing, col.Name)
		}
	}
	return missing
}
