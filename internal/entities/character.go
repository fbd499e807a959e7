package entities

import (
	"github.com/arssetima/codex/internal/database"
	"github.com/arssetima/codex/internal/fieldcodec"
)

// Character is a person of the universe. Relations holds ids of other
// characters.
type Character struct {
	BaseEntity
	Name       string   `json:"name" validate:"required"`
	Age        *int     `json:"age,omitempty"`
	Appearance string   `json:"appearance,omitempty"`
	Powers     []string `json:"powers,omitempty"`
	Goals      string   `json:"goals,omitempty"`
	Secrets    string   `json:"secrets,omitempty"`
	Relations  []string `json:"relations,omitempty"`
	Notes      string   `json:"notes,omitempty"`
	ImageURI   string   `json:"imageUri,omitempty"`
	Tags       []string `json:"tags,omitempty"`
}

func (c *Character) Table() string    { return database.TableCharacters }
func (c *Character) IDPrefix() string { return "char" }

func (c *Character) ToRecord() database.Record {
	rec := c.BaseEntity.record()
	rec["name"] = c.Name
	putOptionalInt(rec, "age", c.Age)
	rec["appearance"] = c.Appearance
	rec["powers"] = fieldcodec.EncodeList(c.Powers)
	rec["goals"] = c.Goals
	rec["secrets"] = c.Secrets
	rec["relations"] = fieldcodec.EncodeList(c.Relations)
	rec["notes"] = c.Notes
	rec["imageUri"] = c.ImageURI
	rec["tags"] = fieldcodec.EncodeList(c.Tags)
	return rec
}

func CharacterFromRecord(rec database.Record) Character {
	return Character{
		BaseEntity: baseFromRecord(rec),
		Name:       fieldcodec.DecodeString(rec["name"]),
		Age:        optionalInt(rec, "age"),
		Appearance: fieldcodec.DecodeString(rec["appearance"]),
		Powers:     fieldcodec.DecodeList(rec["powers"]),
		Goals:      fieldcodec.DecodeString(rec["goals"]),
		Secrets:    fieldcodec.DecodeString(rec["secrets"]),
		Relations:  fieldcodec.DecodeList(rec["relations"]),
		Notes:      fieldcodec.DecodeString(rec["notes"]),
		ImageURI:   fieldcodec.DecodeString(rec["imageUri"]),
		Tags:       fieldcodec.DecodeList(rec["tags"]),
	}
}
