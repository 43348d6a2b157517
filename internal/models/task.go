package models

// CleaningTask is a single coach mission for the current day. Completed is
// a one-way transition; a task is never un-completed. The whole batch is
// discarded and regenerated when Date no longer matches the current day.
type CleaningTask struct {
	ID              string `json:"id"`
	Title           string `json:"title"`
	Description     string `json:"description"`
	DurationMinutes int    `json:"durationMinutes"`
	CoinsReward     int    `json:"coinsReward"`
	IsWeekly        bool   `json:"isWeekly"`
	Completed       bool   `json:"completed"`
	Date            string `json:"date"` // YYYY-MM-DD
}

// TaskDraft is what the task generator returns before the board derives
// rewards, ids and dates.
type TaskDraft struct {
	Title           string `json:"title"`
	Description     string `json:"description"`
	DurationMinutes int    `json:"duration"`
	IsWeekly        bool   `json:"isWeekly"`
}
