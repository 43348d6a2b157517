package advisor

import (
	"fmt"
	"strings"

	"frigosmart/internal/models"
)

const recipeSchemaHint = `Respond with JSON only, matching:
{"title": string, "description": string, "ingredientsUsed": [string],
"missingIngredients": [string], "instructions": [string],
"difficulty": "Easy"|"Medium"|"Hard", "prepTime": string}`

func recipesPrompt(items []models.InventoryItem, prefs models.UserPreferences) string {
	lines := make([]string, 0, len(items))
	for _, item := range items {
		lines = append(lines, fmt.Sprintf("%s (%g %s, expires %s)",
			item.Name, item.Quantity, item.Unit, item.ExpiryDate.Format(models.DateLayout)))
	}

	var b strings.Builder
	b.WriteString("You are Hope, a culinary assistant whose goal is cooking without waste.\n")
	b.WriteString("Suggest recipes from the inventory below. Prioritize short expiry dates.\n\n")
	b.WriteString("STRICT FOOD SAFETY RULES:\n")
	fmt.Fprintf(&b, "1. The user has these allergies: %s. NEVER suggest a recipe containing them or their derivatives.\n", orNone(prefs.Allergies))
	b.WriteString("2. If the inventory contains an allergen, ignore it entirely.\n")
	fmt.Fprintf(&b, "3. Avoid recipes the user dislikes: %s.\n\n", orNone(prefs.DislikedRecipes))
	fmt.Fprintf(&b, "Inventory: %s\n", strings.Join(lines, ", "))
	fmt.Fprintf(&b, "Find %d creative, safe recipes.\n", recipeCount)
	b.WriteString("Respond with a JSON array only; each element matches:\n")
	b.WriteString(recipeSchemaHint)
	return b.String()
}

func smartPrompt(critical, edible []string, prefs models.UserPreferences) string {
	var b strings.Builder
	b.WriteString("You are Hope, an AI that fights food waste. Find THE perfect recipe for tonight.\n")
	b.WriteString("1. Use as many of the critical ingredients (expiring soon) as possible.\n")
	fmt.Fprintf(&b, "2. Strictly respect these allergies: %s. This is vital.\n", orNone(prefs.Allergies))
	fmt.Fprintf(&b, "3. Absolutely avoid dishes similar to ones the user dislikes: %s.\n", orNone(prefs.DislikedRecipes))
	b.WriteString("4. The recipe should be comforting and simple.\n")
	b.WriteString("5. Explain in the description why you picked it (e.g. \"chosen to save your tomatoes!\").\n\n")
	fmt.Fprintf(&b, "Critical ingredients (URGENT): %s\n", orNone(critical))
	fmt.Fprintf(&b, "Rest of the inventory: %s\n", orNone(edible))
	b.WriteString("Suggest ONE ideal, safe recipe.\n")
	b.WriteString(recipeSchemaHint)
	return b.String()
}

func chatSystemPrompt(items []models.InventoryItem) string {
	names := make([]string, 0, len(items))
	for _, item := range items {
		names = append(names, item.Name)
	}

	var b strings.Builder
	b.WriteString("Your name is Hope. You are the AI running the household in the FrigoSmart app.\n")
	b.WriteString("You are friendly, informal, very enthusiastic, and you occasionally joke about chores or food.\n")
	fmt.Fprintf(&b, "You know the user's inventory: %s.\n", orNone(names))
	b.WriteString("If the user asks for meal ideas, use the inventory.\n")
	b.WriteString("If the user lacks motivation, cheer them on for their cleaning.\n")
	b.WriteString("Keep replies short (2-3 sentences max) for a mobile chat.")
	return b.String()
}

func orNone(values []string) string {
	if len(values) == 0 {
		return "none"
	}
	return strings.Join(values, ", ")
}
