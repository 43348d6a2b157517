// Package advisor is the boundary to the Hope assistant model: recipe
// suggestions from the inventory, a single "save the leftovers" pick, and
// the small-talk chat channel. Every call is best-effort; failures
// degrade to empty results or canned replies and are only logged.
package advisor

import (
	"context"
	"encoding/json"
	"fmt"
	"log"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/tmc/langchaingo/llms"
	"github.com/tmc/langchaingo/schema"

	"frigosmart/internal/freshness"
	"frigosmart/internal/models"
)

// Fallback replies for the chat channel.
const (
	replyEmptyFallback = "Sorry, I hit a little bug! Shall we try again?"
	replyErrorFallback = "I can't be reached right now, try again later!"
)

// chatHistoryLimit caps how many prior turns are replayed to the model.
const chatHistoryLimit = 10

// recipeCount is how many suggestions a full-inventory request asks for.
const recipeCount = 3

// Advisor wraps the assistant model.
type Advisor struct {
	model llms.LLM
	now   func() time.Time
}

// Option configures an Advisor.
type Option func(*Advisor)

// WithClock overrides the time source, for tests.
func WithClock(now func() time.Time) Option {
	return func(a *Advisor) { a.now = now }
}

// New creates an advisor over the given model.
func New(model llms.LLM, opts ...Option) *Advisor {
	a := &Advisor{model: model, now: time.Now}
	for _, o := range opts {
		o(a)
	}
	return a
}

// GenerateRecipes asks for creative recipes built from the inventory,
// honoring the household's allergies and dislikes. An empty inventory
// short-circuits to no suggestions.
func (a *Advisor) GenerateRecipes(ctx context.Context, items []models.InventoryItem, prefs models.UserPreferences) ([]models.Recipe, error) {
	if len(items) == 0 {
		return nil, nil
	}

	reply, err := a.model.Call(ctx, recipesPrompt(items, prefs))
	if err != nil {
		return nil, fmt.Errorf("advisor: generate recipes: %w", err)
	}

	var recipes []models.Recipe
	if err := json.Unmarshal([]byte(extractJSON(reply)), &recipes); err != nil {
		return nil, fmt.Errorf("advisor: parse recipes: %w", err)
	}
	for i := range recipes {
		recipes[i].ID = "recipe-" + uuid.NewString()
	}
	return recipes, nil
}

// SmartSuggestion asks for the one ideal recipe for tonight, built around
// items that expire within the critical window. Returns nil when the
// inventory is empty or the model fails.
func (a *Advisor) SmartSuggestion(ctx context.Context, items []models.InventoryItem, prefs models.UserPreferences) (*models.Recipe, error) {
	if len(items) == 0 {
		return nil, nil
	}

	now := a.now()
	var critical, edible []string
	for _, item := range items {
		if item.Location == models.LocationHousehold {
			continue
		}
		edible = append(edible, item.Name)
		if freshness.DaysLeft(item.ExpiryDate, now) <= 3 {
			critical = append(critical, item.Name)
		}
	}

	reply, err := a.model.Call(ctx, smartPrompt(critical, edible, prefs))
	if err != nil {
		return nil, fmt.Errorf("advisor: smart suggestion: %w", err)
	}

	var recipe models.Recipe
	if err := json.Unmarshal([]byte(extractJSON(reply)), &recipe); err != nil {
		return nil, fmt.Errorf("advisor: parse smart suggestion: %w", err)
	}
	recipe.ID = "smart-recipe-" + uuid.NewString()
	return &recipe, nil
}

// Chat answers one conversational turn given recent history and the
// current inventory. It never fails: model errors come back as a canned
// apology.
func (a *Advisor) Chat(ctx context.Context, history []models.ChatMessage, message string, items []models.InventoryItem) string {
	if n := len(history); n > chatHistoryLimit {
		history = history[n-chatHistoryLimit:]
	}

	content := []llms.MessageContent{
		llms.TextParts(schema.ChatMessageTypeSystem, chatSystemPrompt(items)),
	}
	for _, turn := range history {
		role := schema.ChatMessageTypeHuman
		if turn.Role == models.ChatRoleModel {
			role = schema.ChatMessageTypeAI
		}
		content = append(content, llms.TextParts(role, turn.Text))
	}
	content = append(content, llms.TextParts(schema.ChatMessageTypeHuman, message))

	resp, err := a.model.GenerateContent(ctx, content)
	if err != nil {
		log.Printf("advisor: chat failed: %v", err)
		return replyErrorFallback
	}
	if len(resp.Choices) == 0 || strings.TrimSpace(resp.Choices[0].Content) == "" {
		return replyEmptyFallback
	}
	return resp.Choices[0].Content
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
