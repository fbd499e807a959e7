package entities

import (
	"github.com/arssetima/codex/internal/database"
	"github.com/arssetima/codex/internal/fieldcodec"
)

// EventLinks ties a timeline event to the records it involves.
type EventLinks struct {
	Characters []string `json:"characters,omitempty"`
	Locations  []string `json:"locations,omitempty"`
	Factions   []string `json:"factions,omitempty"`
}

// TimelineEvent is one entry of the universe timeline. Importance is one of
// low, medium, high.
type TimelineEvent struct {
	BaseEntity
	Title       string      `json:"title" validate:"required"`
	Date        string      `json:"date" validate:"required"`
	Description string      `json:"description" validate:"required"`
	Links       *EventLinks `json:"links,omitempty"`
	Category    string      `json:"category,omitempty"`
	Importance  string      `json:"importance,omitempty"`
}

func (e *TimelineEvent) Table() string    { return database.TableEvents }
func (e *TimelineEvent) IDPrefix() string { return "evt" }

func (e *TimelineEvent) ToRecord() database.Record {
	rec := e.BaseEntity.record()
	rec["title"] = e.Title
	rec["date"] = e.Date
	rec["description"] = e.Description
	if e.Links != nil {
		rec["links"] = fieldcodec.EncodeJSON(e.Links)
	} else {
		rec["links"] = nil
	}
	rec["category"] = e.Category
	rec["importance"] = e.Importance
	return rec
}

func TimelineEventFromRecord(rec database.Record) TimelineEvent {
	event := TimelineEvent{
		BaseEntity:  baseFromRecord(rec),
		Title:       fieldcodec.DecodeString(rec["title"]),
		Date:        fieldcodec.DecodeString(rec["date"]),
		Description: fieldcodec.DecodeString(rec["description"]),
		Category:    fieldcodec.DecodeString(rec["category"]),
		Importance:  fieldcodec.DecodeString(rec["importance"]),
	}
	var links EventLinks
	if fieldcodec.DecodeJSON(rec["links"], &links) {
		event.Links = &links
	}
	return event
}
