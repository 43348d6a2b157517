// Package api exposes the household application to its UI over a local
// HTTP API, with a websocket channel for the assistant chat.
package api

import (
	"context"
	"net/http"

	"github.com/gin-gonic/gin"

	"frigosmart/internal/game"
	"frigosmart/internal/inventory"
	"frigosmart/internal/models"
	"frigosmart/internal/scanner"
	"frigosmart/internal/shopping"
	"frigosmart/internal/tasks"
)

// Advisor is the assistant boundary the API depends on.
type Advisor interface {
	GenerateRecipes(ctx context.Context, items []models.InventoryItem, prefs models.UserPreferences) ([]models.Recipe, error)
	SmartSuggestion(ctx context.Context, items []models.InventoryItem, prefs models.UserPreferences) (*models.Recipe, error)
	Chat(ctx context.Context, history []models.ChatMessage, message string, items []models.InventoryItem) string
}

// Server is the main API handler for the household.
type Server struct {
	Router    *gin.Engine
	inventory *inventory.Store
	shopping  *shopping.Store
	engine    *game.Engine
	board     *tasks.Board
	advisor   Advisor
	scanner   *scanner.Scanner
	jwtSecret []byte
}

// NewServer creates a server over the assembled application state.
func NewServer(inv *inventory.Store, shop *shopping.Store, engine *game.Engine, board *tasks.Board, adv Advisor, scan *scanner.Scanner, jwtSecret string) *Server {
	s := &Server{
		Router:    gin.Default(),
		inventory: inv,
		shopping:  shop,
		engine:    engine,
		board:     board,
		advisor:   adv,
		scanner:   scan,
		jwtSecret: []byte(jwtSecret),
	}
	s.setupRoutes()
	return s
}

// setupRoutes configures all API endpoints.
func (s *Server) setupRoutes() {
	s.Router.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok", "message": "FrigoSmart API is running"})
	})

	s.Router.POST("/api/v1/session", s.CreateSession)

	v1 := s.Router.Group("/api/v1")
	v1.Use(s.AuthMiddleware())
	{
		// Inventory
		v1.GET("/inventory", s.ListInventory)
		v1.POST("/inventory", s.AddInventoryItem)
		v1.DELETE("/inventory/:id", s.DeleteInventoryItem)

		// Shopping list
		v1.GET("/shopping", s.GetShoppingList)
		v1.POST("/shopping", s.AddShoppingItem)
		v1.POST("/shopping/:id/toggle", s.ToggleShoppingItem)
		v1.DELETE("/shopping/:id", s.DeleteShoppingItem)
		v1.POST("/shopping/clear-completed", s.ClearCompletedShopping)

		// Coach tasks and progression
		v1.GET("/tasks", s.ListTasks)
		v1.POST("/tasks/:id/complete", s.CompleteTask)
		v1.POST("/tasks/refresh", s.RefreshTasks)
		v1.GET("/stats", s.GetStats)
		v1.POST("/shop/buy", s.BuyItem)
		v1.POST("/themes/equip", s.EquipTheme)
		v1.POST("/avatar/equip", s.EquipAvatarItem)
		v1.POST("/avatar/unequip-accessory", s.UnequipAccessory)
		v1.POST("/gacha", s.GachaDraw)
		v1.POST("/preferences/allergies/toggle", s.ToggleAllergy)
		v1.POST("/preferences/dislikes", s.RecordDislike)

		// Catalogs
		v1.GET("/catalog/avatar", s.GetAvatarCatalog)
		v1.GET("/catalog/themes", s.GetThemeCatalog)

		// Advisor
		v1.GET("/recipes", s.GenerateRecipes)
		v1.GET("/recipes/smart", s.SmartSuggestion)
		v1.GET("/ws", s.HandleChatSocket)

		// Barcode scanner
		v1.POST("/scan/start", s.StartScan)
		v1.POST("/scan/stop", s.StopScan)
		v1.GET("/scan/result", s.ScanResult)
	}
}
