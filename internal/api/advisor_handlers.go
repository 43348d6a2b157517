package api

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// GenerateRecipes handles GET requests for recipe suggestions built from
// the current inventory and dietary preferences.
func (s *Server) GenerateRecipes(c *gin.Context) {
	prefs := s.engine.Stats().Preferences
	recipes, err := s.advisor.GenerateRecipes(c.Request.Context(), s.inventory.Items(), prefs)
	if err != nil {
		advisorFailures.WithLabelValues("recipes").Inc()
		c.JSON(http.StatusBadGateway, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"recipes": recipes})
}

// SmartSuggestion handles GET requests for the single anti-waste recipe
// built around soon-to-expire items. No expiring items means no recipe.
func (s *Server) SmartSuggestion(c *gin.Context) {
	prefs := s.engine.Stats().Preferences
	recipe, err := s.advisor.SmartSuggestion(c.Request.Context(), s.inventory.Items(), prefs)
	if err != nil {
		advisorFailures.WithLabelValues("smart").Inc()
		c.JSON(http.StatusBadGateway, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"recipe": recipe})
}
