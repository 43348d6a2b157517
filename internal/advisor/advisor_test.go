package advisor

import (
	"context"
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"github.com/tmc/langchaingo/llms"

	"frigosmart/internal/models"
)

// MockLLM is a mock implementation of the LLM interface.
type MockLLM struct {
	mock.Mock
}

func (m *MockLLM) Call(ctx context.Context, prompt string, options ...llms.CallOption) (string, error) {
	args := m.Called(ctx, prompt)
	return args.String(0), args.Error(1)
}

func (m *MockLLM) GenerateContent(ctx context.Context, messages []llms.MessageContent, options ...llms.CallOption) (*llms.ContentResponse, error) {
	args := m.Called(ctx, messages)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*llms.ContentResponse), args.Error(1)
}

func textResponse(text string) *llms.ContentResponse {
	return &llms.ContentResponse{
		Choices: []*llms.ContentChoice{{Content: text}},
	}
}

func sampleInventory(now time.Time) []models.InventoryItem {
	return []models.InventoryItem{
		{ID: "1", Name: "Milk", Location: models.LocationFridge, Quantity: 1, Unit: models.UnitLiters, ExpiryDate: now.AddDate(0, 0, 2)},
		{ID: "2", Name: "Rice", Location: models.LocationPantry, Quantity: 1, Unit: models.UnitKilograms, ExpiryDate: now.AddDate(0, 1, 0)},
		{ID: "3", Name: "Cleaning Spray", Location: models.LocationHousehold, Quantity: 1, Unit: models.UnitPiece, ExpiryDate: now.AddDate(0, 0, 1)},
	}
}

func TestGenerateRecipesParsesAndMintsIDs(t *testing.T) {
	mockLLM := new(MockLLM)
	mockLLM.On("Call", mock.Anything, mock.Anything).Return(
		`[{"title":"Rice Pudding","description":"Sweet.","ingredientsUsed":["Milk","Rice"],"missingIngredients":[],"instructions":["Simmer."],"difficulty":"Easy","prepTime":"30 min"}]`, nil)

	adv := New(mockLLM)
	recipes, err := adv.GenerateRecipes(context.Background(), sampleInventory(time.Now()), models.UserPreferences{})
	require.NoError(t, err)
	require.Len(t, recipes, 1)
	assert.Equal(t, "Rice Pudding", recipes[0].Title)
	assert.True(t, len(recipes[0].ID) > len("recipe-"), "advisor re-mints recipe ids")
	assert.Equal(t, models.DifficultyEasy, recipes[0].Difficulty)
}

func TestGenerateRecipesEmptyInventoryShortCircuits(t *testing.T) {
	mockLLM := new(MockLLM)

	adv := New(mockLLM)
	recipes, err := adv.GenerateRecipes(context.Background(), nil, models.UserPreferences{})
	require.NoError(t, err)
	assert.Empty(t, recipes)
	mockLLM.AssertNotCalled(t, "Call")
}

func TestGenerateRecipesPromptCarriesPreferences(t *testing.T) {
	mockLLM := new(MockLLM)
	mockLLM.On("Call", mock.Anything, mock.MatchedBy(func(prompt string) bool {
		return contains(prompt, "Gluten") && contains(prompt, "Liver Stew")
	})).Return(`[]`, nil)

	adv := New(mockLLM)
	prefs := models.UserPreferences{
		Allergies:       []string{"Gluten"},
		DislikedRecipes: []string{"Liver Stew"},
	}
	_, err := adv.GenerateRecipes(context.Background(), sampleInventory(time.Now()), prefs)
	require.NoError(t, err)
	mockLLM.AssertExpectations(t)
}

func TestSmartSuggestionFlagsCriticalItems(t *testing.T) {
	now := time.Date(2026, 3, 10, 0, 0, 0, 0, time.UTC)

	mockLLM := new(MockLLM)
	mockLLM.On("Call", mock.Anything, mock.MatchedBy(func(prompt string) bool {
		// Milk expires in 2 days so it is critical; household items are
		// excluded from both lists.
		return contains(prompt, "URGENT): Milk") && !contains(prompt, "Cleaning Spray")
	})).Return(`{"title":"Milk Soup","description":"Saves your milk.","ingredientsUsed":["Milk"],"missingIngredients":[],"instructions":["Heat."],"difficulty":"Easy","prepTime":"10 min"}`, nil)

	adv := New(mockLLM, WithClock(func() time.Time { return now }))
	recipe, err := adv.SmartSuggestion(context.Background(), sampleInventory(now), models.UserPreferences{})
	require.NoError(t, err)
	require.NotNil(t, recipe)
	assert.Equal(t, "Milk Soup", recipe.Title)
	mockLLM.AssertExpectations(t)
}

func TestSmartSuggestionModelFailure(t *testing.T) {
	mockLLM := new(MockLLM)
	mockLLM.On("Call", mock.Anything, mock.Anything).Return("", errors.New("timeout"))

	adv := New(mockLLM)
	recipe, err := adv.SmartSuggestion(context.Background(), sampleInventory(time.Now()), models.UserPreferences{})
	assert.Error(t, err)
	assert.Nil(t, recipe)
}

func TestChatRepliesAndFallsBack(t *testing.T) {
	mockLLM := new(MockLLM)
	mockLLM.On("GenerateContent", mock.Anything, mock.Anything).Return(textResponse("Let's cook that milk!"), nil).Once()

	adv := New(mockLLM)
	reply := adv.Chat(context.Background(), nil, "dinner ideas?", sampleInventory(time.Now()))
	assert.Equal(t, "Let's cook that milk!", reply)

	failing := new(MockLLM)
	failing.On("GenerateContent", mock.Anything, mock.Anything).Return(nil, errors.New("down"))

	adv = New(failing)
	reply = adv.Chat(context.Background(), nil, "hello", nil)
	assert.Equal(t, replyErrorFallback, reply)
}

func TestChatTrimsHistoryToTen(t *testing.T) {
	mockLLM := new(MockLLM)
	mockLLM.On("GenerateContent", mock.Anything, mock.MatchedBy(func(msgs []llms.MessageContent) bool {
		// 1 system + 10 history + 1 new message.
		return len(msgs) == 12
	})).Return(textResponse("ok"), nil)

	history := make([]models.ChatMessage, 25)
	for i := range history {
		history[i] = models.ChatMessage{Role: models.ChatRoleUser, Text: "msg"}
	}

	adv := New(mockLLM)
	adv.Chat(context.Background(), history, "latest", nil)
	mockLLM.AssertExpectations(t)
}

func TestExtractJSON(t *testing.T) {
	tests := []struct {
		name  string
		reply string
		want  string
	}{
		{"bare array", `[1,2]`, `[1,2]`},
		{"fenced", "```json\n{\"a\":1}\n```", `{"a":1}`},
		{"prose around", "Here you go: {\"a\":1} enjoy", `{"a":1}`},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, extractJSON(tt.reply))
		})
	}
}

func contains(s, sub string) bool {
	return strings.Contains(s, sub)
}
