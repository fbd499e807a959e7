package entities

import (
	"github.com/arssetima/codex/internal/database"
	"github.com/arssetima/codex/internal/fieldcodec"
)

// Item is an artifact or object. Rarity is one of common, uncommon, rare,
// legendary; OwnedBy holds a character id.
type Item struct {
	BaseEntity
	Name        string   `json:"name" validate:"required"`
	Description string   `json:"description" validate:"required"`
	Type        string   `json:"type,omitempty"`
	Rarity      string   `json:"rarity,omitempty"`
	OwnedBy     string   `json:"ownedBy,omitempty"`
	Powers      []string `json:"powers,omitempty"`
	ImageURI    string   `json:"imageUri,omitempty"`
}

func (i *Item) Table() string    { return database.TableItems }
func (i *Item) IDPrefix() string { return "item" }

func (i *Item) ToRecord() database.Record {
	rec := i.BaseEntity.record()
	rec["name"] = i.Name
	rec["description"] = i.Description
	rec["type"] = i.Type
	rec["rarity"] = i.Rarity
	rec["ownedBy"] = i.OwnedBy
	rec["powers"] = fieldcodec.EncodeList(i.Powers)
	rec["imageUri"] = i.ImageURI
	return rec
}

func ItemFromRecord(rec database.Record) Item {
	return Item{
		BaseEntity:  baseFromRecord(rec),
		Name:        fieldcodec.DecodeString(rec["name"]),
		Description: fieldcodec.DecodeString(rec["description"]),
		Type:        fieldcodec.DecodeString(rec["type"]),
		Rarity:      fieldcodec.DecodeString(rec["rarity"]),
		OwnedBy:     fieldcodec.DecodeString(rec["ownedBy"]),
		Powers:      fieldcodec.DecodeList(rec["powers"]),
		ImageURI:    fieldcodec.DecodeString(rec["imageUri"]),
	}
}
