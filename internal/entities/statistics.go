package entities

// Statistics summarizes the universe for the home screen.
type Statistics struct {
	TotalCharacters   int `json:"totalCharacters"`
	TotalLocations    int `json:"totalLocations"`
	TotalEvents       int `json:"totalEvents"`
	TotalNotes        int `json:"totalNotes"`
	TotalSpells       int `json:"totalSpells"`
	TotalItems        int `json:"totalItems"`
	TotalCreatures    int `json:"totalCreatures"`
	TotalFactions     int `json:"totalFactions"`
	TotalWords        int `json:"totalWords"`
	CompletedChapters int `json:"completedChapters"`
}
