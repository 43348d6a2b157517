// Package tasks owns the daily cleaning-task batch: generation through
// the coach port, the refresh-when-stale policy and one-way completion.
package tasks

import (
	"context"
	"log"
	"sync"

	"github.com/google/uuid"

	"frigosmart/internal/models"
)

// Reward formulas. Weekly missions pay better and scale faster with the
// household level.
const (
	dailyRewardBase  = 15
	weeklyRewardBase = 50
)

// DailyReward returns the coin reward of a daily task at the given level.
func DailyReward(level int) int { return dailyRewardBase + level }

// WeeklyReward returns the coin reward of a weekly task at the given level.
func WeeklyReward(level int) int { return weeklyRewardBase + level*2 }

// Generator supplies task drafts for the given household level.
type Generator interface {
	Generate(ctx context.Context, level int) ([]models.TaskDraft, error)
}

// Saver mirrors the task slice to persistent storage.
type Saver interface {
	Save(v interface{}) error
}

// Option configures a Board.
type Option func(*Board)

// WithToday overrides the calendar-date source, for tests.
func WithToday(today func() string) Option {
	return func(b *Board) { b.today = today }
}

// Board holds the current task batch. All tasks in a batch share one
// date; the batch is replaced wholesale when that date goes stale.
type Board struct {
	mu    sync.RWMutex
	tasks []models.CleaningTask
	gen   Generator
	saver Saver
	today func() string
}

// NewBoard creates a board seeded with the persisted batch.
func NewBoard(tasks []models.CleaningTask, gen Generator, saver Saver, opts ...Option) *Board {
	b := &Board{tasks: tasks, gen: gen, saver: saver, today: models.Today}
	for _, o := range opts {
		o(b)
	}
	return b
}

// Tasks returns a copy of the current batch.
func (b *Board) Tasks() []models.CleaningTask {
	b.mu.RLock()
	defer b.mu.RUnlock()
	return append([]models.CleaningTask(nil), b.tasks...)
}

// Complete marks a task done. The transition is one-way; the boolean
// reports whether this call performed it. Unknown ids report false.
func (b *Board) Complete(id string) (models.CleaningTask, bool, error) {
	b.mu.Lock()
	defer b.mu.Unlock()

	for i := range b.tasks {
		if b.tasks[i].ID != id {
			continue
		}
		if b.tasks[i].Completed {
			return models.CleaningTask{}, false, nil
		}
		b.tasks[i].Completed = true
		return b.tasks[i], true, b.persist()
	}
	return models.CleaningTask{}, false, nil
}

// RefreshIfStale replaces the batch when its stored date no longer
// matches today. A same-day batch is kept as-is, preserving completion
// state through the day.
func (b *Board) RefreshIfStale(ctx context.Context, level int) (bool, error) {
	b.mu.RLock()
	fresh := len(b.tasks) > 0 && b.tasks[0].Date == b.today()
	b.mu.RUnlock()

	if fresh {
		return false, nil
	}
	return true, b.Refresh(ctx, level)
}

// Refresh discards the batch and requests a new one for today. Generator
// failures degrade to the fixed fallback batch; they never surface.
func (b *Board) Refresh(ctx context.Context, level int) error {
	today := b.today()

	drafts, err := b.gen.Generate(ctx, level)
	if err != nil || len(drafts) == 0 {
		if err != nil {
			log.Printf("tasks: generator failed, using fallback batch: %v", err)
		}
		b.mu.Lock()
		defer b.mu.Unlock()
		b.tasks = fallbackBatch(today)
		return b.persist()
	}

	batch := make([]models.CleaningTask, 0, len(drafts))
	for _, d := range drafts {
		reward := DailyReward(level)
		if d.IsWeekly {
			reward = WeeklyReward(level)
		}
		batch = append(batch, models.CleaningTask{
			ID:              uuid.NewString(),
			Title:           d.Title,
			Description:     d.Description,
			DurationMinutes: d.DurationMinutes,
			CoinsReward:     reward,
			IsWeekly:        d.IsWeekly,
			Completed:       false,
			Date:            today,
		})
	}

	b.mu.Lock()
	defer b.mu.Unlock()
	b.tasks = batch
	return b.persist()
}

// fallbackBatch is the fixed offline batch: three daily tasks and one
// weekly, with fixed rewards.
func fallbackBatch(date string) []models.CleaningTask {
	return []models.CleaningTask{
		{ID: uuid.NewString(), Title: "Quick Wipe-Down", Description: "Run a sponge over the kitchen surfaces.", DurationMinutes: 5, CoinsReward: 15, Date: date},
		{ID: uuid.NewString(), Title: "5-Minute Tidy", Description: "Put away five things left lying around.", DurationMinutes: 5, CoinsReward: 15, Date: date},
		{ID: uuid.NewString(), Title: "Floors", Description: "A quick pass with the vacuum.", DurationMinutes: 10, CoinsReward: 20, Date: date},
		{ID: uuid.NewString(), Title: "Deep Clean", Description: "Full bathroom clean.", DurationMinutes: 30, CoinsReward: 60, IsWeekly: true, Date: date},
	}
}

func (b *Board) persist() error {
	if b.saver == nil {
		return nil
	}
	return b.saver.Save(b.tasks)
}
