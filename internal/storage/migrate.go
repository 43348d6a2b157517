package storage

import (
	"encoding/json"
	"fmt"
	"log"

	"frigosmart/internal/models"
)

// statsSchemaVersion is the current stats snapshot schema. Older
// snapshots are upgraded through the migration chain once, at load.
const statsSchemaVersion = 1

// statsEnvelope is the persisted form of the stats slice from v1 on.
type statsEnvelope struct {
	SchemaVersion int                  `json:"schemaVersion"`
	Stats         models.UserGameStats `json:"stats"`
}

// statsMigrations[i] upgrades a version-i payload to version i+1.
var statsMigrations = []func(json.RawMessage) (json.RawMessage, error){
	migrateStatsV0ToV1,
}

// decodeStats runs the payload through every pending migration and
// returns the current-version stats.
func decodeStats(data []byte) (models.UserGameStats, error) {
	var probe struct {
		SchemaVersion int `json:"schemaVersion"`
	}
	if err := json.Unmarshal(data, &probe); err != nil {
		return models.UserGameStats{}, fmt.Errorf("storage: probe stats version: %w", err)
	}

	payload := json.RawMessage(data)
	for v := probe.SchemaVersion; v < statsSchemaVersion; v++ {
		upgraded, err := statsMigrations[v](payload)
		if err != nil {
			return models.UserGameStats{}, fmt.Errorf("storage: migrate stats v%d: %w", v, err)
		}
		payload = upgraded
	}

	var env statsEnvelope
	if err := json.Unmarshal(payload, &env); err != nil {
		return models.UserGameStats{}, fmt.Errorf("storage: decode stats: %w", err)
	}
	return env.Stats, nil
}

// legacyStatsV0 is the pre-versioning snapshot shape: a bare stats object
// with the boost counts under "inventory" and, in the oldest records, an
// avatar without clothing/top/accessory slots.
type legacyStatsV0 struct {
	Coins         int    `json:"coins"`
	Streak        int    `json:"streak"`
	Level         int    `json:"level"`
	XP            int    `json:"xp"`
	LastCleanDate string `json:"lastCleanDate"`
	Inventory     struct {
		Freeze int `json:"freeze"`
	} `json:"inventory"`
	UnlockedThemes      []string               `json:"unlockedThemes"`
	ActiveTheme         string                 `json:"activeTheme"`
	UnlockedAvatarItems []string               `json:"unlockedAvatarItems"`
	Avatar              models.AvatarConfig    `json:"avatar"`
	Preferences         models.UserPreferences `json:"preferences"`
}

func migrateStatsV0ToV1(data json.RawMessage) (json.RawMessage, error) {
	var legacy legacyStatsV0
	if err := json.Unmarshal(data, &legacy); err != nil {
		return nil, err
	}

	stats := models.UserGameStats{
		Coins:               legacy.Coins,
		Streak:              legacy.Streak,
		Level:               legacy.Level,
		XP:                  legacy.XP,
		LastCleanDate:       legacy.LastCleanDate,
		Boosts:              models.BoostInventory{Freeze: legacy.Inventory.Freeze},
		UnlockedThemes:      legacy.UnlockedThemes,
		ActiveTheme:         legacy.ActiveTheme,
		UnlockedAvatarItems: legacy.UnlockedAvatarItems,
		Avatar:              legacy.Avatar,
		Preferences:         legacy.Preferences,
	}

	// Records predating the wardrobe feature carry a bare avatar seed.
	// Backfill the missing slots and re-seed the starter unlock set.
	if stats.Avatar.Clothing == "" {
		base := stats.Avatar.Base
		stats.Avatar = models.DefaultAvatar()
		if base != "" {
			stats.Avatar.Base = base
		}
		stats.UnlockedAvatarItems = append([]string(nil), models.DefaultUnlockedAvatarItems...)
	}

	return json.Marshal(statsEnvelope{SchemaVersion: 1, Stats: stats})
}

// StatsSlot persists the stats slice inside its versioned envelope. It is
// the saver injected into the progression engine.
type StatsSlot struct {
	slots *Slots
}

// NewStatsSlot binds the stats slot.
func NewStatsSlot(slots *Slots) *StatsSlot {
	return &StatsSlot{slots: slots}
}

// Save wraps the stats in the current-version envelope and overwrites the
// slot.
func (s *StatsSlot) Save(v interface{}) error {
	stats, ok := v.(models.UserGameStats)
	if !ok {
		return fmt.Errorf("storage: stats slot expects UserGameStats, got %T", v)
	}
	data, err := json.Marshal(statsEnvelope{SchemaVersion: statsSchemaVersion, Stats: stats})
	if err != nil {
		return fmt.Errorf("storage: marshal stats: %w", err)
	}
	return s.slots.Save(KeyStats, data)
}

// Load reads, migrates and returns the stats slice. A missing or corrupt
// slot falls back to the default record.
func (s *StatsSlot) Load() (models.UserGameStats, error) {
	data, ok, err := s.slots.Load(KeyStats)
	if err != nil {
		return models.UserGameStats{}, err
	}
	if !ok {
		return models.DefaultStats(), nil
	}

	stats, err := decodeStats(data)
	if err != nil {
		log.Printf("storage: unreadable stats snapshot, seeding defaults: %v", err)
		return models.DefaultStats(), nil
	}
	return stats, nil
}
