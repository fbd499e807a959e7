package entities

import (
	"github.com/arssetima/codex/internal/database"
	"github.com/arssetima/codex/internal/fieldcodec"
)

// Coordinates pins a location on the world map.
type Coordinates struct {
	Latitude  float64 `json:"latitude"`
	Longitude float64 `json:"longitude"`
}

type Location struct {
	BaseEntity
	Name              string       `json:"name" validate:"required"`
	Description       string       `json:"description" validate:"required"`
	ImageURI          string       `json:"imageUri,omitempty"`
	Coordinates       *Coordinates `json:"coordinates,omitempty"`
	RelatedCharacters []string     `json:"relatedCharacters,omitempty"`
	Tags              []string     `json:"tags,omitempty"`
}

func (l *Location) Table() string    { return database.TableLocations }
func (l *Location) IDPrefix() string { return "loc" }

func (l *Location) ToRecord() database.Record {
	rec := l.BaseEntity.record()
	rec["name"] = l.Name
	rec["description"] = l.Description
	rec["imageUri"] = l.ImageURI
	if l.Coordinates != nil {
		rec["coordinates"] = fieldcodec.EncodeJSON(l.Coordinates)
	} else {
		rec["coordinates"] = nil
	}
	rec["relatedCharacters"] = fieldcodec.EncodeList(l.RelatedCharacters)
	rec["tags"] = fieldcodec.EncodeList(l.Tags)
	return rec
}

func LocationFromRecord(rec database.Record) Location {
	loc := Location{
		BaseEntity:        baseFromRecord(rec),
		Name:              fieldcodec.DecodeString(rec["name"]),
		Description:       fieldcodec.DecodeString(rec["description"]),
		ImageURI:          fieldcodec.DecodeString(rec["imageUri"]),
		RelatedCharacters: fieldcodec.DecodeList(rec["relatedCharacters"]),
		Tags:              fieldcodec.DecodeList(rec["tags"]),
	}
	var coords Coordinates
	if fieldcodec.DecodeJSON(rec["coordinates"], &coords) {
		loc.Coordinates = &coords
	}
	return loc
}
