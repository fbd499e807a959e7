package entities

// AppSettings is the singleton user-preferences record. Created with
// defaults on first launch, mutated by partial updates, never deleted.
type AppSettings struct {
	Theme         string `json:"theme"`         // "light" or "dark"
	FontSize      string `json:"fontSize"`      // "small", "medium", "large"
	DailyWordGoal int    `json:"dailyWordGoal"` // Words per day writing target
	Notifications bool   `json:"notifications"`
}

// DefaultSettings are the documented first-launch values, and the fallback
// for any settings read error.
func DefaultSettings() AppSettings {
	return AppSettings{
		Theme:         "dark",
		FontSize:      "medium",
		DailyWordGoal: 1000,
		Notifications: true,
	}
}

// SettingsPatch is a partial settings update; nil fields are left as-is.
type SettingsPatch struct {
	Theme         *string `json:"theme,omitempty"`
	FontSize      *string `json:"fontSize,omitempty"`
	DailyWordGoal *int    `json:"dailyWordGoal,omitempty"`
	Notifications *bool   `json:"notifications,omitempty"`
}

// Apply merges the patch into s.
func (s *AppSettings) Apply(patch SettingsPatch) {
	if patch.Theme != nil {
		s.Theme = *patch.Theme
	}
	if patch.FontSize != nil {
		s.FontSize = *patch.FontSize
	}
	if patch.DailyWordGoal != nil {
		s.DailyWordGoal = *patch.DailyWordGoal
	}
	if patch.Notifications != nil {
		s.Notifications = *patch.Notifications
	}
}
