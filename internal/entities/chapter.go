package entities

import (
	"github.com/arssetima/codex/internal/database"
	"github.com/arssetima/codex/internal/fieldcodec"
)

// Chapter statuses.
const (
	ChapterStatusDraft    = "draft"
	ChapterStatusReview   = "review"
	ChapterStatusComplete = "complete"
)

// Chapter is one section of the manuscript. Number and WordCount are
// required by the schema; a missing count decodes to zero rather than
// unset.
type Chapter struct {
	BaseEntity
	Number          int    `json:"number"`
	Title           string `json:"title" validate:"required"`
	Content         string `json:"content" validate:"required"`
	WordCount       int    `json:"wordCount"`
	Status          string `json:"status,omitempty"`
	Notes           string `json:"notes,omitempty"`
	TargetWordCount *int   `json:"targetWordCount,omitempty"`
}

func (c *Chapter) Table() string    { return database.TableChapters }
func (c *Chapter) IDPrefix() string { return "chap" }

func (c *Chapter) ToRecord() database.Record {
	rec := c.BaseEntity.record()
	rec["number"] = c.Number
	rec["title"] = c.Title
	rec["content"] = c.Content
	rec["wordCount"] = c.WordCount
	rec["status"] = c.Status
	rec["notes"] = c.Notes
	putOptionalInt(rec, "targetWordCount", c.TargetWordCount)
	return rec
}

func ChapterFromRecord(rec database.Record) Chapter {
	number, _ := fieldcodec.DecodeInt(rec["number"])
	wordCount, _ := fieldcodec.DecodeInt(rec["wordCount"])
	return Chapter{
		BaseEntity:      baseFromRecord(rec),
		Number:          number,
		Title:           fieldcodec.DecodeString(rec["title"]),
		Content:         fieldcodec.DecodeString(rec["content"]),
		WordCount:       wordCount,
		Status:          fieldcodec.DecodeString(rec["status"]),
		Notes:           fieldcodec.DecodeString(rec["notes"]),
		TargetWordCount: optionalInt(rec, "targetWordCount"),
	}
}
