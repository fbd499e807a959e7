package encyclopedia

import (
	"github.com/rs/zerolog"

	"github.com/arssetima/codex/internal/database"
	"github.com/arssetima/codex/internal/entities"
)

// Encyclopedia bundles the typed collections over one record store.
type Encyclopedia struct {
	Characters *Collection[entities.Character, *entities.Character]
	Locations  *Collection[entities.Location, *entities.Location]
	Events     *Collection[entities.TimelineEvent, *entities.TimelineEvent]
	Notes      *Collection[entities.Note, *entities.Note]
	Spells     *Collection[entities.Spell, *entities.Spell]
	Items      *Collection[entities.Item, *entities.Item]
	Creatures  *Collection[entities.Creature, *entities.Creature]
	Factions   *Collection[entities.Faction, *entities.Faction]
	Chapters   *Collection[entities.Chapter, *entities.Chapter]
}

func New(store *database.Store, log zerolog.Logger) *Encyclopedia {
	return &Encyclopedia{
		Characters: newCollection[entities.Character](store, log, entities.CharacterFromRecord),
		Locations:  newCollection[entities.Location](store, log, entities.LocationFromRecord),
		Events:     newCollection[entities.TimelineEvent](store, log, entities.TimelineEventFromRecord),
		Notes:      newCollection[entities.Note](store, log, entities.NoteFromRecord),
		Spells:     newCollection[entities.Spell](store, log, entities.SpellFromRecord),
		Items:      newCollection[entities.Item](store, log, entities.ItemFromRecord),
		Creatures:  newCollection[entities.Creature](store, log, entities.CreatureFromRecord),
		Factions:   newCollection[entities.Faction](store, log, entities.FactionFromRecord),
		Chapters:   newCollection[entities.Chapter](store, log, entities.ChapterFromRecord),
	}
}
