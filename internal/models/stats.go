package models

import "time"

// DateLayout is the calendar-date format used for streak bookkeeping and
// task batch dates.
const DateLayout = "2006-01-02"

// Today returns the current calendar date in DateLayout form.
func Today() string {
	return time.Now().Format(DateLayout)
}

// AvatarConfig holds the currently equipped avatar parts, keyed by slot.
// The values are renderer identifiers understood by the avatar service.
type AvatarConfig struct {
	Base        string `json:"base"`
	Clothing    string `json:"clothing"`
	Top         string `json:"top"`
	Accessories string `json:"accessories"`
}

// BoostInventory counts consumable boosts the player owns.
type BoostInventory struct {
	Freeze int `json:"freeze"`
}

// UserPreferences holds dietary restrictions the recipe advisor must
// honor. Allergies behave as a set; disliked recipes are an append-only
// list of titles.
type UserPreferences struct {
	Allergies       []string `json:"allergies"`
	DislikedRecipes []string `json:"dislikedRecipes"`
}

// UserGameStats is the single persisted progression record for the
// household. XP stays in [0,100) after each reward; crossing 100 bumps the
// level exactly once and carries the remainder.
type UserGameStats struct {
	Coins               int             `json:"coins"`
	Streak              int             `json:"streak"`
	Level               int             `json:"level"`
	XP                  int             `json:"xp"`
	LastCleanDate       string          `json:"lastCleanDate"` // YYYY-MM-DD, empty when never cleaned
	Boosts              BoostInventory  `json:"boosts"`
	UnlockedThemes      []string        `json:"unlockedThemes"`
	ActiveTheme         string          `json:"activeTheme"`
	UnlockedAvatarItems []string        `json:"unlockedAvatarItems"`
	Avatar              AvatarConfig    `json:"avatar"`
	Preferences         UserPreferences `json:"preferences"`
}

// DefaultStats returns the seed progression record for a fresh household.
func DefaultStats() UserGameStats {
	return UserGameStats{
		Coins:          100,
		Streak:         0,
		Level:          1,
		XP:             0,
		Boosts:         BoostInventory{Freeze: 1},
		UnlockedThemes: []string{DefaultThemeID},
		ActiveTheme:    DefaultThemeID,
		UnlockedAvatarItems: append([]string(nil),
			DefaultUnlockedAvatarItems...),
		Avatar: DefaultAvatar(),
		Preferences: UserPreferences{
			Allergies:       []string{},
			DislikedRecipes: []string{},
		},
	}
}
