package storage

import (
	"encoding/json"
	"testing"

	"github.com/jinzhu/gorm"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"frigosmart/internal/models"
)

func openTestDB(t *testing.T) *gorm.DB {
	t.Helper()
	db, err := Open(Config{Driver: "sqlite3", DSN: ":memory:"})
	require.NoError(t, err)
	t.Cleanup(func() { db.Close() })
	return db
}

func TestSlotsRoundTrip(t *testing.T) {
	slots := NewSlots(openTestDB(t))

	_, ok, err := slots.Load(KeyShopping)
	require.NoError(t, err)
	assert.False(t, ok, "missing slot reports absent")

	require.NoError(t, slots.Save(KeyShopping, []byte(`[{"id":"1"}]`)))
	data, ok, err := slots.Load(KeyShopping)
	require.NoError(t, err)
	assert.True(t, ok)
	assert.JSONEq(t, `[{"id":"1"}]`, string(data))

	// Saving again overwrites the whole snapshot.
	require.NoError(t, slots.Save(KeyShopping, []byte(`[]`)))
	data, _, err = slots.Load(KeyShopping)
	require.NoError(t, err)
	assert.JSONEq(t, `[]`, string(data))
}

func TestBoundSlotTreatsCorruptionAsAbsent(t *testing.T) {
	slots := NewSlots(openTestDB(t))
	require.NoError(t, slots.Save(KeyShopping, []byte(`{{not json`)))

	var items []models.ShoppingItem
	ok, err := slots.Bind(KeyShopping).Load(&items)
	require.NoError(t, err)
	assert.False(t, ok)
}

func TestLoadInventorySeedsDefaults(t *testing.T) {
	slots := NewSlots(openTestDB(t))

	items, err := LoadInventory(slots)
	require.NoError(t, err)
	require.Len(t, items, 2)
	assert.Equal(t, models.LocationFridge, items[0].Location)
	assert.Equal(t, models.LocationHousehold, items[1].Location)

	// The seed is written back, so a second load returns the same ids.
	again, err := LoadInventory(slots)
	require.NoError(t, err)
	assert.Equal(t, items[0].ID, again[0].ID)
}

func TestStatsSlotRoundTrip(t *testing.T) {
	slots := NewSlots(openTestDB(t))
	slot := NewStatsSlot(slots)

	stats, err := slot.Load()
	require.NoError(t, err)
	assert.Equal(t, models.DefaultStats(), stats, "missing slot falls back to defaults")

	stats.Coins = 250
	stats.Streak = 3
	require.NoError(t, slot.Save(stats))

	got, err := slot.Load()
	require.NoError(t, err)
	assert.Equal(t, 250, got.Coins)
	assert.Equal(t, 3, got.Streak)
}

func TestStatsMigrationV0BackfillsAvatar(t *testing.T) {
	slots := NewSlots(openTestDB(t))

	// A pre-versioning snapshot: boosts under "inventory", avatar with a
	// bare seed and no wardrobe slots.
	legacy := map[string]interface{}{
		"coins":               320,
		"streak":              6,
		"level":               4,
		"xp":                  40,
		"lastCleanDate":       "2026-03-09",
		"inventory":           map[string]int{"freeze": 2},
		"unlockedThemes":      []string{"default", "sunset"},
		"activeTheme":         "sunset",
		"unlockedAvatarItems": []string{"base_aneka"},
		"avatar":              map[string]string{"base": "Aneka"},
		"preferences":         map[string][]string{"allergies": {"Gluten"}, "dislikedRecipes": {}},
	}
	data, err := json.Marshal(legacy)
	require.NoError(t, err)
	require.NoError(t, slots.Save(KeyStats, data))

	stats, err := NewStatsSlot(slots).Load()
	require.NoError(t, err)

	assert.Equal(t, 320, stats.Coins)
	assert.Equal(t, 2, stats.Boosts.Freeze)
	assert.Equal(t, "Aneka", stats.Avatar.Base, "existing base survives the upgrade")
	assert.Equal(t, "blazerAndShirt", stats.Avatar.Clothing)
	assert.Equal(t, models.AccessoryNone, stats.Avatar.Accessories)
	assert.ElementsMatch(t, models.DefaultUnlockedAvatarItems, stats.UnlockedAvatarItems,
		"wardrobe unlock set is re-seeded")
	assert.Equal(t, []string{"Gluten"}, stats.Preferences.Allergies)
}

func TestStatsMigrationV0KeepsModernAvatar(t *testing.T) {
	slots := NewSlots(openTestDB(t))

	legacy := map[string]interface{}{
		"coins":               100,
		"inventory":           map[string]int{"freeze": 1},
		"unlockedAvatarItems": []string{"base_felix", "cloth_hoodie"},
		"avatar": map[string]string{
			"base": "Felix", "clothing": "hoodie",
			"top": "shortHairShortFlat", "accessories": "none",
		},
	}
	data, err := json.Marshal(legacy)
	require.NoError(t, err)
	require.NoError(t, slots.Save(KeyStats, data))

	stats, err := NewStatsSlot(slots).Load()
	require.NoError(t, err)
	assert.Equal(t, "hoodie", stats.Avatar.Clothing)
	assert.Equal(t, []string{"base_felix", "cloth_hoodie"}, stats.UnlockedAvatarItems,
		"a complete avatar keeps its unlock set")
}

func TestCorruptStatsFallsBackToDefaults(t *testing.T) {
	slots := NewSlots(openTestDB(t))
	require.NoError(t, slots.Save(KeyStats, []byte(`not json at all`)))

	stats, err := NewStatsSlot(slots).Load()
	require.NoError(t, err)
	assert.Equal(t, models.DefaultStats(), stats)
}
