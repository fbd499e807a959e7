package entities

import (
	"github.com/arssetima/codex/internal/database"
	"github.com/arssetima/codex/internal/fieldcodec"
)

// Faction is an organization. Leader and Members hold character ids,
// Headquarters a location id; Alignment is one of good, neutral, evil.
type Faction struct {
	BaseEntity
	Name         string   `json:"name" validate:"required"`
	Description  string   `json:"description" validate:"required"`
	Leader       string   `json:"leader,omitempty"`
	Members      []string `json:"members,omitempty"`
	Goals        string   `json:"goals,omitempty"`
	Headquarters string   `json:"headquarters,omitempty"`
	Alignment    string   `json:"alignment,omitempty"`
	ImageURI     string   `json:"imageUri,omitempty"`
}

func (f *Faction) Table() string    { return database.TableFactions }
func (f *Faction) IDPrefix() string { return "fac" }

func (f *Faction) ToRecord() database.Record {
	rec := f.BaseEntity.record()
	rec["name"] = f.Name
	rec["description"] = f.Description
	rec["leader"] = f.Leader
	rec["members"] = fieldcodec.EncodeList(f.Members)
	rec["goals"] = f.Goals
	rec["headquarters"] = f.Headquarters
	rec["alignment"] = f.Alignment
	rec["imageUri"] = f.ImageURI
	return rec
}

func FactionFromRecord(rec database.Record) Faction {
	return Faction{
		BaseEntity:   baseFromRecord(rec),
		Name:         fieldcodec.DecodeString(rec["name"]),
		Description:  fieldcodec.DecodeString(rec["description"]),
		Leader:       fieldcodec.DecodeString(rec["leader"]),
		Members:      fieldcodec.DecodeList(rec["members"]),
		Goals:        fieldcodec.DecodeString(rec["goals"]),
		Headquarters: fieldcodec.DecodeString(rec["headquarters"]),
		Alignment:    fieldcodec.DecodeString(rec["alignment"]),
		ImageURI:     fieldcodec.DecodeString(rec["imageUri"]),
	}
}
