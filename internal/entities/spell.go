package entities

import (
	"github.com/arssetima/codex/internal/database"
	"github.com/arssetima/codex/internal/fieldcodec"
)

// Spell is a magic or power of the universe. KnownBy holds character ids.
type Spell struct {
	BaseEntity
	Name         string   `json:"name" validate:"required"`
	Description  string   `json:"description" validate:"required"`
	Type         string   `json:"type,omitempty"`
	Level        *int     `json:"level,omitempty"`
	Requirements string   `json:"requirements,omitempty"`
	Effects      string   `json:"effects,omitempty"`
	KnownBy      []string `json:"knownBy,omitempty"`
	ImageURI     string   `json:"imageUri,omitempty"`
}

func (s *Spell) Table() string    { return database.TableSpells }
func (s *Spell) IDPrefix() string { return "spell" }

func (s *Spell) ToRecord() database.Record {
	rec := s.BaseEntity.record()
	rec["name"] = s.Name
	rec["description"] = s.Description
	rec["type"] = s.Type
	putOptionalInt(rec, "level", s.Level)
	rec["requirements"] = s.Requirements
	rec["effects"] = s.Effects
	rec["knownBy"] = fieldcodec.EncodeList(s.KnownBy)
	rec["imageUri"] = s.ImageURI
	return rec
}

func SpellFromRecord(rec database.Record) Spell {
	return Spell{
		BaseEntity:   baseFromRecord(rec),
		Name:         fieldcodec.DecodeString(rec["name"]),
		Description:  fieldcodec.DecodeString(rec["description"]),
		Type:         fieldcodec.DecodeString(rec["type"]),
		Level:        optionalInt(rec, "level"),
		Requirements: fieldcodec.DecodeString(rec["requirements"]),
		Effects:      fieldcodec.DecodeString(rec["effects"]),
		KnownBy:      fieldcodec.DecodeList(rec["knownBy"]),
		ImageURI:     fieldcodec.DecodeString(rec["imageUri"]),
	}
}
