// Package stats computes the universe summary shown on the home screen.
package stats

import (
	"fmt"

	"github.com/arssetima/codex/internal/database"
	"github.com/arssetima/codex/internal/entities"
	"github.com/arssetima/codex/internal/fieldcodec"
)

type Service struct {
	store *database.Store
}

func NewService(store *database.Store) *Service {
	return &Service{store: store}
}

// Collect counts entities per kind and aggregates the manuscript numbers.
// Chapter word counts are decoded leniently; a row with an unparseable
// count just contributes zero words.
func (s *Service) Collect() (entities.Statistics, error) {
	var statistics entities.Statistics

	counts := map[string]*int{
		database.TableCharacters: &statistics.TotalCharacters,
		database.TableLocations:  &statistics.TotalLocations,
		database.TableEvents:     &statistics.TotalEvents,
		database.TableNotes:      &statistics.TotalNotes,
		database.TableSpells:     &statistics.TotalSpells,
		database.TableItems:      &statistics.TotalItems,
		database.TableCreatures:  &statistics.TotalCreatures,
		database.TableFactions:   &statistics.TotalFactions,
	}
	for table, counter := range counts {
		rows, err := s.store.GetAll(table)
		if err != nil {
			return entities.Statistics{}, fmt.Errorf("count %s: %w", table, err)
		}
		*counter = len(rows)
	}

	chapters, err := s.store.GetAll(database.TableChapters)
	if err != nil {
		return entities.Statistics{}, fmt.Errorf("count chapters: %w", err)
	}
	for _, row := range chapters {
		if words, ok := fieldcodec.DecodeInt(row["wordCount"]); ok {
			statistics.TotalWords += words
		}
		if fieldcodec.DecodeString(row["status"]) == entities.ChapterStatusComplete {
			statistics.CompletedChapters++
		}
	}
	return statistics, nil
}
