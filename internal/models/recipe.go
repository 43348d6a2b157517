package models

// Difficulty grades how demanding a suggested recipe is.
type Difficulty string

const (
	DifficultyEasy   Difficulty = "Easy"
	DifficultyMedium Difficulty = "Medium"
	DifficultyHard   Difficulty = "Hard"
)

// Recipe is an advisor suggestion. Recipes are ephemeral: they are shown
// to the user and never persisted.
type Recipe struct {
	ID                 string     `json:"id"`
	Title              string     `json:"title"`
	Description        string     `json:"description"`
	IngredientsUsed    []string   `json:"ingredientsUsed"`
	MissingIngredients []string   `json:"missingIngredients"`
	Instructions       []string   `json:"instructions"`
	Difficulty         Difficulty `json:"difficulty"`
	PrepTime           string     `json:"prepTime"`
}

// ChatRole identifies who produced a chat message.
type ChatRole string

const (
	ChatRoleUser  ChatRole = "user"
	ChatRoleModel ChatRole = "model"
)

// ChatMessage is one turn of the assistant conversation. Only the last
// ten turns are replayed to the advisor.
type ChatMessage struct {
	ID        string   `json:"id"`
	Role      ChatRole `json:"role"`
	Text      string   `json:"text"`
	Timestamp int64    `json:"timestamp"`
}
