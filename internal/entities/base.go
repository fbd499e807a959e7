// Package entities defines the typed records of the worldbuilding bible and
// their conversions to and from the flat rows the record store persists.
// The store works on maps; everything outside it works on these types.
package entities

import (
	"time"

	"github.com/arssetima/codex/internal/database"
	"github.com/arssetima/codex/internal/fieldcodec"
)

// BaseEntity carries the columns shared by every entity table. Timestamps
// are ISO-8601 strings; CreatedAt is set once, UpdatedAt on every write.
type BaseEntity struct {
	ID        string `json:"id"`
	CreatedAt string `json:"createdAt"`
	UpdatedAt string `json:"updatedAt"`
}

func (b *BaseEntity) EntityID() string { return b.ID }

// Stamp assigns identity and both timestamps at creation time.
func (b *BaseEntity) Stamp(id, now string) {
	b.ID = id
	b.CreatedAt = now
	b.UpdatedAt = now
}

// Touch refreshes UpdatedAt.
func (b *BaseEntity) Touch(now string) { b.UpdatedAt = now }

// Keyed is the surface the typed boundary needs from any entity.
type Keyed interface {
	EntityID() string
	Stamp(id, now string)
	Touch(now string)
}

// Now returns the canonical timestamp format for entity rows.
func Now() string {
	return time.Now().UTC().Format(time.RFC3339)
}

func (b *BaseEntity) record() database.Record {
	return database.Record{
		"id":        b.ID,
		"createdAt": b.CreatedAt,
		"updatedAt": b.UpdatedAt,
	}
}

func baseFromRecord(rec database.Record) BaseEntity {
	return BaseEntity{
		ID:        fieldcodec.DecodeString(rec["id"]),
		CreatedAt: fieldcodec.DecodeString(rec["createdAt"]),
		UpdatedAt: fieldcodec.DecodeString(rec["updatedAt"]),
	}
}

func optionalInt(rec database.Record, column string) *int {
	if n, ok := fieldcodec.DecodeInt(rec[column]); ok {
		return &n
	}
	return nil
}

func putOptionalInt(rec database.Record, column string, value *int) {
	if value != nil {
		rec[column] = *value
	} else {
		rec[column] = nil
	}
}
