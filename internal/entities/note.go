package entities

import (
	"github.com/arssetima/codex/internal/database"
	"github.com/arssetima/codex/internal/fieldcodec"
)

// NoteRelations ties a note to the records it is about.
type NoteRelations struct {
	Characters []string `json:"characters,omitempty"`
	Locations  []string `json:"locations,omitempty"`
	Chapters   []string `json:"chapters,omitempty"`
}

// Note is a loose idea or reminder. Priority is one of low, medium, high.
type Note struct {
	BaseEntity
	Title     string         `json:"title" validate:"required"`
	Content   string         `json:"content" validate:"required"`
	Category  string         `json:"category,omitempty"`
	Priority  string         `json:"priority,omitempty"`
	Tags      []string       `json:"tags,omitempty"`
	RelatedTo *NoteRelations `json:"relatedTo,omitempty"`
}

func (n *Note) Table() string    { return database.TableNotes }
func (n *Note) IDPrefix() string { return "note" }

func (n *Note) ToRecord() database.Record {
	rec := n.BaseEntity.record()
	rec["title"] = n.Title
	rec["content"] = n.Content
	rec["category"] = n.Category
	rec["priority"] = n.Priority
	rec["tags"] = fieldcodec.EncodeList(n.Tags)
	if n.RelatedTo != nil {
		rec["relatedTo"] = fieldcodec.EncodeJSON(n.RelatedTo)
	} else {
		rec["relatedTo"] = nil
	}
	return rec
}

func NoteFromRecord(rec database.Record) Note {
	note := Note{
		BaseEntity: baseFromRecord(rec),
		Title:      fieldcodec.DecodeString(rec["title"]),
		Content:    fieldcodec.DecodeString(rec["content"]),
		Category:   fieldcodec.DecodeString(rec["category"]),
		Priority:   fieldcodec.DecodeString(rec["priority"]),
		Tags:       fieldcodec.DecodeList(rec["tags"]),
	}
	var related NoteRelations
	if fieldcodec.DecodeJSON(rec["relatedTo"], &related) {
		note.RelatedTo = &related
	}
	return note
}
