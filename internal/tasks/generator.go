package tasks

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"

	"github.com/tmc/langchaingo/llms"

	"frigosmart/internal/models"
)

// LLMGenerator asks the coach model for a day's batch of cleaning tasks,
// tuned to the household level.
type LLMGenerator struct {
	model llms.LLM
}

// NewLLMGenerator creates a generator over the given model.
func NewLLMGenerator(model llms.LLM) *LLMGenerator {
	return &LLMGenerator{model: model}
}

// Generate requests drafts for the given level. The board turns drafts
// into rewarded, dated tasks.
func (g *LLMGenerator) Generate(ctx context.Context, level int) ([]models.TaskDraft, error) {
	difficulty := "simple, quick starter tasks"
	switch {
	case level > 10:
		difficulty = "expert-level tasks for a spotless home"
	case level > 5:
		difficulty = "slightly more involved upkeep tasks"
	}

	prompt := fmt.Sprintf(`You are Hope, an upbeat AI cleaning coach.
Generate today's task list for a user at level %d: propose %s.
There must be exactly 3 daily tasks and 1 weekly task.
Respond with a JSON array only, no prose, where each element is
{"title": string, "description": string, "duration": minutes as number, "isWeekly": boolean}.`,
		level, difficulty)

	reply, err := g.model.Call(ctx, prompt)
	if err != nil {
		return nil, fmt.Errorf("tasks: generate: %w", err)
	}

	var drafts []models.TaskDraft
	if err := json.Unmarshal([]byte(extractJSON(reply)), &drafts); err != nil {
		return nil, fmt.Errorf("tasks: parse generator reply: %w", err)
	}
	return drafts, nil
}

// extractJSON strips markdown code fences and any prose around the first
// JSON value in an LLM reply.
func extractJSON(reply string) string {
	s := strings.TrimSpace(reply)
	if i := strings.Index(s, "```"); i >= 0 {
		s = s[i+3:]
		s = strings.TrimPrefix(s, "json")
		if j := strings.Index(s, "```"); j >= 0 {
			s = s[:j]
		}
	}
	start := strings.IndexAny(s, "[{")
	if start < 0 {
		return s
	}
	end := strings.LastIndexAny(s, "]}")
	if end < start {
		return s
	}
	return s[start : end+1]
}
