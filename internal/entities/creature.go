package entities

import (
	"github.com/arssetima/codex/internal/database"
	"github.com/arssetima/codex/internal/fieldcodec"
)

// Creature is a beast or species. DangerLevel is one of low, medium, high,
// extreme.
type Creature struct {
	BaseEntity
	Name        string   `json:"name" validate:"required"`
	Species     string   `json:"species" validate:"required"`
	Description string   `json:"description" validate:"required"`
	Abilities   []string `json:"abilities,omitempty"`
	Habitat     string   `json:"habitat,omitempty"`
	DangerLevel string   `json:"dangerLevel,omitempty"`
	ImageURI    string   `json:"imageUri,omitempty"`
}

func (c *Creature) Table() string    { return database.TableCreatures }
func (c *Creature) IDPrefix() string { return "crea" }

func (c *Creature) ToRecord() database.Record {
	rec := c.BaseEntity.record()
	rec["name"] = c.Name
	rec["species"] = c.Species
	rec["description"] = c.Description
	rec["abilities"] = fieldcodec.EncodeList(c.Abilities)
	rec["habitat"] = c.Habitat
	rec["dangerLevel"] = c.DangerLevel
	rec["imageUri"] = c.ImageURI
	return rec
}

func CreatureFromRecord(rec database.Record) Creature {
	return Creature{
		BaseEntity:  baseFromRecord(rec),
		Name:        fieldcodec.DecodeString(rec["name"]),
		Species:     fieldcodec.DecodeString(rec["species"]),
		Description: fieldcodec.DecodeString(rec["description"]),
		Abilities:   fieldcodec.DecodeList(rec["abilities"]),
		Habitat:     fieldcodec.DecodeString(rec["habitat"]),
		DangerLevel: fieldcodec.DecodeString(rec["dangerLevel"]),
		ImageURI:    fieldcodec.DecodeString(rec["imageUri"]),
	}
}
