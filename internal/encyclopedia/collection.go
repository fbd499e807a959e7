// Package encyclopedia is the typed edge of the persistence core: callers
// work with entity structs, the generic record store below it works with
// flat rows. One generic collection serves all nine entity kinds instead of
// nine near-identical repositories.
package encyclopedia

import (
	"fmt"
	"sort"

	"github.com/google/uuid"
	"github.com/gookit/validate"
	"github.com/rs/zerolog"

	"github.com/arssetima/codex/internal/database"
	"github.com/arssetima/codex/internal/entities"
	"github.com/arssetima/codex/internal/fieldcodec"
)

// entityPtr is the constraint a collection needs from *T.
type entityPtr[T any] interface {
	*T
	entities.Keyed
	Table() string
	IDPrefix() string
	ToRecord() database.Record
}

// Collection provides typed CRUD for one entity kind.
type Collection[T any, PT entityPtr[T]] struct {
	store      *database.Store
	log        zerolog.Logger
	table      string
	fromRecord func(database.Record) T
}

func newCollection[T any, PT entityPtr[T]](
	store *database.Store,
	log zerolog.Logger,
	fromRecord func(database.Record) T,
) *Collection[T, PT] {
	return &Collection[T, PT]{
		store:      store,
		log:        log,
		table:      PT(new(T)).Table(),
		fromRecord: fromRecord,
	}
}

// Create validates e, assigns id and timestamps, and inserts it. A caller
// that already carries an id (import paths) keeps it.
func (c *Collection[T, PT]) Create(e PT) error {
	if err := validateEntity(e); err != nil {
		return err
	}
	id := e.EntityID()
	if id == "" {
		id = newID(e.IDPrefix())
	}
	e.Stamp(id, entities.Now())
	return c.store.Insert(c.table, e.ToRecord())
}

// Get returns the entity with the given id, or ok=false when absent.
func (c *Collection[T, PT]) Get(id string) (*T, bool, error) {
	rec, ok, err := c.store.GetByID(c.table, id)
	if err != nil || !ok {
		return nil, false, err
	}
	entity := c.fromRecord(rec)
	return &entity, true, nil
}

// List returns every entity of the kind, newest first. Ordering happens
// here, never in the store.
func (c *Collection[T, PT]) List() ([]T, error) {
	rows, err := c.store.GetAll(c.table)
	if err != nil {
		return nil, err
	}
	sort.SliceStable(rows, func(i, j int) bool {
		return fieldcodec.DecodeString(rows[i]["createdAt"]) > fieldcodec.DecodeString(rows[j]["createdAt"])
	})
	out := make([]T, 0, len(rows))
	for _, row := range rows {
		out = append(out, c.fromRecord(row))
	}
	return out, nil
}

// Save writes the full record back, refreshing updatedAt. Saving an entity
// whose row no longer exists is a no-op, per the store's update contract.
func (c *Collection[T, PT]) Save(e PT) error {
	if err := validateEntity(e); err != nil {
		return err
	}
	e.Touch(entities.Now())
	return c.store.Update(c.table, e.EntityID(), e.ToRecord())
}

// Patch updates only the given columns, refreshing updatedAt.
func (c *Collection[T, PT]) Patch(id string, fields database.Record) error {
	patch := make(database.Record, len(fields)+1)
	for column, value := range fields {
		patch[column] = value
	}
	patch["updatedAt"] = entities.Now()
	return c.store.Update(c.table, id, patch)
}

// Delete removes the entity; no-op when absent.
func (c *Collection[T, PT]) Delete(id string) error {
	return c.store.Delete(c.table, id)
}

func validateEntity(e any) error {
	v := validate.Struct(e)
	if !v.Validate() {
		return fmt.Errorf("%w: %s", database.ErrConstraintViolation, v.Errors.One())
	}
	return nil
}

func newID(prefix string) string {
	return prefix + "-" + uuid.NewString()
}
