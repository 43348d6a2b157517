// Package game owns the household progression state: coins, xp, levels,
// streaks, unlocks and dietary preferences. The engine is an explicitly
// constructed object with an injected persistence port; there is no
// package-level state, so tests build isolated instances.
package game

import (
	"errors"
	"fmt"
	"math/rand"
	"sync"

	"frigosmart/internal/models"
)

const (
	taskXP          = 20
	xpPerLevel      = 100
	gachaRewardMin  = 10
	gachaRewardSpan = 50 // rewards are uniform in [10, 59]
)

var (
	ErrInsufficientCoins = errors.New("game: not enough coins")
	ErrAlreadyOwned      = errors.New("game: item already unlocked")
	ErrUnknownItem       = errors.New("game: unknown catalog item")
	ErrLocked            = errors.New("game: item not unlocked")
)

// Saver mirrors the stats slice to persistent storage.
type Saver interface {
	Save(v interface{}) error
}

// TaskSource marks tasks completed on behalf of the engine. Complete
// reports whether this call transitioned the task; a repeat call on the
// same task returns false.
type TaskSource interface {
	Complete(id string) (models.CleaningTask, bool, error)
}

// Option configures an Engine.
type Option func(*Engine)

// WithToday overrides the calendar-date source, for tests.
func WithToday(today func() string) Option {
	return func(e *Engine) { e.today = today }
}

// WithRoll overrides the gacha random source, for tests.
func WithRoll(roll func(n int) int) Option {
	return func(e *Engine) { e.roll = roll }
}

// Engine applies progression events to a single UserGameStats record and
// mirrors it to storage after every accepted mutation.
type Engine struct {
	mu    sync.RWMutex
	stats models.UserGameStats
	saver Saver
	tasks TaskSource
	today func() string
	roll  func(n int) int
}

// NewEngine creates an engine over the given stats record.
func NewEngine(stats models.UserGameStats, tasks TaskSource, saver Saver, opts ...Option) *Engine {
	e := &Engine{
		stats: stats,
		saver: saver,
		tasks: tasks,
		today: models.Today,
		roll:  rand.Intn,
	}
	for _, o := range opts {
		o(e)
	}
	return e
}

// Stats returns a copy of the current progression record.
func (e *Engine) Stats() models.UserGameStats {
	e.mu.RLock()
	defer e.mu.RUnlock()
	return copyStats(e.stats)
}

// CompleteTask marks the task completed and applies its reward: coins,
// a fixed xp grant with single-step level rollover, and a streak
// extension on the first completion of a new calendar day. Unknown or
// already-completed tasks are a no-op and report applied=false.
func (e *Engine) CompleteTask(taskID string) (applied bool, err error) {
	task, changed, err := e.tasks.Complete(taskID)
	if err != nil {
		return false, fmt.Errorf("game: complete task: %w", err)
	}
	if !changed {
		return false, nil
	}

	e.mu.Lock()
	defer e.mu.Unlock()

	today := e.today()
	if e.stats.LastCleanDate != today {
		e.stats.Streak++
	}
	e.stats.LastCleanDate = today

	// Increments are fixed at 20, so a single rollover step suffices.
	e.stats.XP += taskXP
	if e.stats.XP >= xpPerLevel {
		e.stats.XP -= xpPerLevel
		e.stats.Level++
	}

	e.stats.Coins += task.CoinsReward
	return true, e.persist()
}

// Buy executes a shop purchase. Insufficient coins or an already-owned
// unlock reject the command with no state change. Unlock sets are
// idempotent: a theme or wardrobe entry can be bought at most once.
func (e *Engine) Buy(p Purchase) error {
	e.mu.Lock()
	defer e.mu.Unlock()

	switch cmd := p.(type) {
	case PurchaseBoost:
		if cmd.Boost != BoostFreeze {
			return ErrUnknownItem
		}
		if e.stats.Coins < FreezeBoostCost {
			return ErrInsufficientCoins
		}
		e.stats.Coins -= FreezeBoostCost
		e.stats.Boosts.Freeze++

	case PurchaseTheme:
		theme, ok := models.ThemeByID(cmd.ThemeID)
		if !ok {
			return ErrUnknownItem
		}
		if contains(e.stats.UnlockedThemes, theme.ID) {
			return ErrAlreadyOwned
		}
		if e.stats.Coins < theme.Cost {
			return ErrInsufficientCoins
		}
		e.stats.Coins -= theme.Cost
		e.stats.UnlockedThemes = append(e.stats.UnlockedThemes, theme.ID)
		e.stats.ActiveTheme = theme.ID

	case PurchaseAvatarItem:
		item, ok := models.AvatarItemByID(cmd.ItemID)
		if !ok {
			return ErrUnknownItem
		}
		if contains(e.stats.UnlockedAvatarItems, item.ID) {
			return ErrAlreadyOwned
		}
		if e.stats.Coins < item.Price {
			return ErrInsufficientCoins
		}
		e.stats.Coins -= item.Price
		e.stats.UnlockedAvatarItems = append(e.stats.UnlockedAvatarItems, item.ID)

	default:
		return ErrUnknownItem
	}

	return e.persist()
}

// EquipTheme activates a theme. The engine does not gate on unlock
// status; callers restrict choices to unlocked themes.
func (e *Engine) EquipTheme(themeID string) error {
	e.mu.Lock()
	defer e.mu.Unlock()
	e.stats.ActiveTheme = themeID
	return e.persist()
}

// EquipAvatarItem puts a wardrobe entry on its slot. Entries that are not
// unlocked leave the avatar untouched.
func (e *Engine) EquipAvatarItem(itemID string) error {
	e.mu.Lock()
	defer e.mu.Unlock()

	item, ok := models.AvatarItemByID(itemID)
	if !ok {
		return ErrUnknownItem
	}
	if !contains(e.stats.UnlockedAvatarItems, item.ID) {
		return ErrLocked
	}

	switch item.Type {
	case models.SlotBase:
		e.stats.Avatar.Base = item.RenderValue
	case models.SlotClothing:
		e.stats.Avatar.Clothing = item.RenderValue
	case models.SlotTop:
		e.stats.Avatar.Top = item.RenderValue
	case models.SlotAccessories:
		e.stats.Avatar.Accessories = item.RenderValue
	}
	return e.persist()
}

// UnequipAccessory empties the accessory slot.
func (e *Engine) UnequipAccessory() error {
	e.mu.Lock()
	defer e.mu.Unlock()
	e.stats.Avatar.Accessories = models.AccessoryNone
	return e.persist()
}

// GachaDraw awards a uniform random coin bonus in [10,59]. Draws always
// succeed and cost nothing; any cooldown is the caller's concern.
func (e *Engine) GachaDraw() (int, error) {
	e.mu.Lock()
	defer e.mu.Unlock()
	reward := e.roll(gachaRewardSpan) + gachaRewardMin
	e.stats.Coins += reward
	return reward, e.persist()
}

// ToggleAllergy adds the allergy when absent and removes it when present.
func (e *Engine) ToggleAllergy(name string) error {
	e.mu.Lock()
	defer e.mu.Unlock()

	allergies := e.stats.Preferences.Allergies
	for i, a := range allergies {
		if a == name {
			e.stats.Preferences.Allergies = append(allergies[:i], allergies[i+1:]...)
			return e.persist()
		}
	}
	e.stats.Preferences.Allergies = append(allergies, name)
	return e.persist()
}

// RecordDislike appends a recipe title to the disliked list. Duplicates
// are allowed; the list feeds advisor prompts, not a set-membership check.
func (e *Engine) RecordDislike(recipeTitle string) error {
	e.mu.Lock()
	defer e.mu.Unlock()
	e.stats.Preferences.DislikedRecipes = append(e.stats.Preferences.DislikedRecipes, recipeTitle)
	return e.persist()
}

func (e *Engine) persist() error {
	if e.saver == nil {
		return nil
	}
	return e.saver.Save(e.stats)
}

func contains(set []string, id string) bool {
	for _, s := range set {
		if s == id {
			return true
		}
	}
	return false
}

func copyStats(s models.UserGameStats) models.UserGameStats {
	out := s
	out.UnlockedThemes = append([]string(nil), s.UnlockedThemes...)
	out.UnlockedAvatarItems = append([]string(nil), s.UnlockedAvatarItems...)
	out.Preferences.Allergies = append([]string(nil), s.Preferences.Allergies...)
	out.Preferences.DislikedRecipes = append([]string(nil), s.Preferences.DislikedRecipes...)
	return out
}
