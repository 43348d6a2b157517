package api

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"frigosmart/internal/game"
	"frigosmart/internal/models"
)

// ListTasks handles GET requests for today's cleaning-task batch.
func (s *Server) ListTasks(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"tasks": s.board.Tasks()})
}

// CompleteTask handles POST requests to complete a task and collect its
// reward. Repeat completions report applied=false with unchanged stats.
func (s *Server) CompleteTask(c *gin.Context) {
	applied, err := s.engine.CompleteTask(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	if applied {
		tasksCompleted.Inc()
	}
	c.JSON(http.StatusOK, gin.H{"applied": applied, "stats": s.engine.Stats()})
}

// RefreshTasks handles POST requests to force a new task batch.
func (s *Server) RefreshTasks(c *gin.Context) {
	if err := s.board.Refresh(c.Request.Context(), s.engine.Stats().Level); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"tasks": s.board.Tasks()})
}

// GetStats handles GET requests for the progression record.
func (s *Server) GetStats(c *gin.Context) {
	c.JSON(http.StatusOK, s.engine.Stats())
}

type buyRequest struct {
	Type string `json:"type" binding:"required"`
	ID   string `json:"id"`
}

// BuyItem handles POST requests to spend coins in the shop. The body
// names a purchase category (boost, theme or avatar) and a catalog id.
func (s *Server) BuyItem(c *gin.Context) {
	var req buyRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	var purchase game.Purchase
	switch req.Type {
	case "boost":
		purchase = game.PurchaseBoost{Boost: game.BoostKind(req.ID)}
	case "theme":
		purchase = game.PurchaseTheme{ThemeID: req.ID}
	case "avatar":
		purchase = game.PurchaseAvatarItem{ItemID: req.ID}
	default:
		c.JSON(http.StatusBadRequest, gin.H{"error": "unknown purchase type"})
		return
	}

	if err := s.engine.Buy(purchase); err != nil {
		switch {
		case errors.Is(err, game.ErrUnknownItem):
			c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
		case errors.Is(err, game.ErrInsufficientCoins), errors.Is(err, game.ErrAlreadyOwned):
			c.JSON(http.StatusConflict, gin.H{"error": err.Error()})
		default:
			c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		}
		return
	}

	shopPurchases.WithLabelValues(req.Type).Inc()
	c.JSON(http.StatusOK, s.engine.Stats())
}

type equipRequest struct {
	ID string `json:"id" binding:"required"`
}

// EquipTheme handles POST requests to activate a theme.
func (s *Server) EquipTheme(c *gin.Context) {
	var req equipRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	if err := s.engine.EquipTheme(req.ID); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, s.engine.Stats())
}

// EquipAvatarItem handles POST requests to put a wardrobe entry on.
func (s *Server) EquipAvatarItem(c *gin.Context) {
	var req equipRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	if err := s.engine.EquipAvatarItem(req.ID); err != nil {
		switch {
		case errors.Is(err, game.ErrUnknownItem):
			c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
		case errors.Is(err, game.ErrLocked):
			c.JSON(http.StatusConflict, gin.H{"error": err.Error()})
		default:
			c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		}
		return
	}
	c.JSON(http.StatusOK, s.engine.Stats())
}

// UnequipAccessory handles POST requests to empty the accessory slot.
func (s *Server) UnequipAccessory(c *gin.Context) {
	if err := s.engine.UnequipAccessory(); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, s.engine.Stats())
}

// GachaDraw handles POST requests for the daily coin draw.
func (s *Server) GachaDraw(c *gin.Context) {
	reward, err := s.engine.GachaDraw()
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	gachaDraws.Inc()
	c.JSON(http.StatusOK, gin.H{"reward": reward, "stats": s.engine.Stats()})
}

type allergyRequest struct {
	Name string `json:"name" binding:"required"`
}

// ToggleAllergy handles POST requests to add or remove an allergy.
func (s *Server) ToggleAllergy(c *gin.Context) {
	var req allergyRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	if err := s.engine.ToggleAllergy(req.Name); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, s.engine.Stats())
}

type dislikeRequest struct {
	Title string `json:"title" binding:"required"`
}

// RecordDislike handles POST requests to blacklist a recipe title.
func (s *Server) RecordDislike(c *gin.Context) {
	var req dislikeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	if err := s.engine.RecordDislike(req.Title); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, s.engine.Stats())
}

// GetAvatarCatalog handles GET requests for the wardrobe catalog.
func (s *Server) GetAvatarCatalog(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"items": models.AvatarCatalog})
}

// GetThemeCatalog handles GET requests for the theme catalog.
func (s *Server) GetThemeCatalog(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"themes": models.ThemeCatalog})
}
