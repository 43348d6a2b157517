package tasks

import (
	"context"
	"errors"
	"testing"

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

type stubGenerator struct {
	drafts []models.TaskDraft
	err    error
	calls  int
}

func (s *stubGenerator) Generate(ctx context.Context, level int) ([]models.TaskDraft, error) {
	s.calls++
	return s.drafts, s.err
}

func fixedDay(day string) Option {
	return WithToday(func() string { return day })
}

func TestRefreshDerivesRewardsAndDates(t *testing.T) {
	gen := &stubGenerator{drafts: []models.TaskDraft{
		{Title: "Dishes", Description: "Empty the sink.", DurationMinutes: 10},
		{Title: "Windows", Description: "All of them.", DurationMinutes: 45, IsWeekly: true},
	}}
	board := NewBoard(nil, gen, nil, fixedDay("2026-03-10"))

	require.NoError(t, board.Refresh(context.Background(), 3))

	got := board.Tasks()
	require.Len(t, got, 2)
	assert.Equal(t, 18, got[0].CoinsReward, "daily: 15 + level")
	assert.Equal(t, 56, got[1].CoinsReward, "weekly: 50 + 2*level")
	for _, task := range got {
		assert.NotEmpty(t, task.ID)
		assert.False(t, task.Completed)
		assert.Equal(t, "2026-03-10", task.Date)
	}
}

func TestRefreshFallsBackOnGeneratorError(t *testing.T) {
	gen := &stubGenerator{err: errors.New("model unavailable")}
	board := NewBoard(nil, gen, nil, fixedDay("2026-03-10"))

	require.NoError(t, board.Refresh(context.Background(), 1))

	got := board.Tasks()
	require.Len(t, got, 4)

	var weekly int
	rewards := make([]int, 0, 4)
	for _, task := range got {
		rewards = append(rewards, task.CoinsReward)
		if task.IsWeekly {
			weekly++
		}
	}
	assert.Equal(t, 1, weekly, "fallback has 3 daily tasks and 1 weekly")
	assert.Equal(t, []int{15, 15, 20, 60}, rewards)
}

func TestRefreshIfStaleKeepsTodayBatch(t *testing.T) {
	gen := &stubGenerator{}
	seed := []models.CleaningTask{
		{ID: "t1", Title: "Dishes", Date: "2026-03-10", Completed: true},
	}
	board := NewBoard(seed, gen, nil, fixedDay("2026-03-10"))

	refreshed, err := board.RefreshIfStale(context.Background(), 1)
	require.NoError(t, err)
	assert.False(t, refreshed)
	assert.Zero(t, gen.calls)
	assert.True(t, board.Tasks()[0].Completed, "same-day batch keeps completion state")
}

func TestRefreshIfStaleDiscardsYesterdayBatch(t *testing.T) {
	gen := &stubGenerator{drafts: []models.TaskDraft{
		{Title: "Dishes", DurationMinutes: 10},
	}}
	seed := []models.CleaningTask{
		{ID: "t1", Title: "Old Task", Date: "2026-03-09"},
	}
	board := NewBoard(seed, gen, nil, fixedDay("2026-03-10"))

	refreshed, err := board.RefreshIfStale(context.Background(), 1)
	require.NoError(t, err)
	assert.True(t, refreshed)
	assert.Equal(t, 1, gen.calls)

	got := board.Tasks()
	require.Len(t, got, 1)
	assert.Equal(t, "Dishes", got[0].Title)
	assert.Equal(t, "2026-03-10", got[0].Date)
}

func TestRefreshIfStaleGeneratesWhenEmpty(t *testing.T) {
	gen := &stubGenerator{drafts: []models.TaskDraft{{Title: "Dishes"}}}
	board := NewBoard(nil, gen, nil, fixedDay("2026-03-10"))

	refreshed, err := board.RefreshIfStale(context.Background(), 1)
	require.NoError(t, err)
	assert.True(t, refreshed)
}

func TestCompleteIsOneWay(t *testing.T) {
	board := NewBoard([]models.CleaningTask{
		{ID: "t1", Title: "Dishes", Date: "2026-03-10", CoinsReward: 16},
	}, &stubGenerator{}, nil, fixedDay("2026-03-10"))

	task, changed, err := board.Complete("t1")
	require.NoError(t, err)
	assert.True(t, changed)
	assert.Equal(t, 16, task.CoinsReward)

	_, changed, err = board.Complete("t1")
	require.NoError(t, err)
	assert.False(t, changed)

	_, changed, err = board.Complete("unknown")
	require.NoError(t, err)
	assert.False(t, changed)
}

func TestLLMGeneratorParsesFencedReply(t *testing.T) {
	mockLLM := new(MockLLM)
	mockLLM.On("Call", mock.Anything, mock.Anything).Return("```json\n[{\"title\":\"Dust shelves\",\"description\":\"Living room.\",\"duration\":10,\"isWeekly\":false}]\n```", nil)

	gen := NewLLMGenerator(mockLLM)
	drafts, err := gen.Generate(context.Background(), 2)
	require.NoError(t, err)
	require.Len(t, drafts, 1)
	assert.Equal(t, "Dust shelves", drafts[0].Title)
	assert.Equal(t, 10, drafts[0].DurationMinutes)
}

func TestLLMGeneratorPropagatesModelError(t *testing.T) {
	mockLLM := new(MockLLM)
	mockLLM.On("Call", mock.Anything, mock.Anything).Return("", errors.New("rate limited"))

	gen := NewLLMGenerator(mockLLM)
	_, err := gen.Generate(context.Background(), 2)
	assert.Error(t, err)
}
