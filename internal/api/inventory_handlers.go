package api

import (
	"errors"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"frigosmart/internal/freshness"
	"frigosmart/internal/inventory"
	"frigosmart/internal/models"
)

// inventoryItemView is an inventory item annotated with its freshness
// classification, which the UI renders but never stores.
type inventoryItemView struct {
	models.InventoryItem
	Status   freshness.Status `json:"status"`
	DaysLeft int              `json:"daysLeft"`
}

func inventoryViews(items []models.InventoryItem, now time.Time) []inventoryItemView {
	views := make([]inventoryItemView, 0, len(items))
	for _, item := range items {
		views = append(views, inventoryItemView{
			InventoryItem: item,
			Status:        freshness.Classify(item, now),
			DaysLeft:      freshness.DaysLeft(item.ExpiryDate, now),
		})
	}
	return views
}

// ListInventory handles GET requests for the inventory, with optional
// location and search query filters.
func (s *Server) ListInventory(c *gin.Context) {
	filter := c.DefaultQuery("location", inventory.FilterAll)
	search := c.Query("q")

	items := s.inventory.List(filter, search)
	c.JSON(http.StatusOK, gin.H{"items": inventoryViews(items, time.Now())})
}

// AddInventoryItem handles POST requests to add an item to the inventory.
func (s *Server) AddInventoryItem(c *gin.Context) {
	var draft models.InventoryItemDraft
	if err := c.ShouldBindJSON(&draft); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	item, err := s.inventory.Add(draft, household(c))
	if err != nil {
		switch {
		case errors.Is(err, inventory.ErrNameRequired),
			errors.Is(err, inventory.ErrExpiryRequired),
			errors.Is(err, inventory.ErrBadQuantity),
			errors.Is(err, inventory.ErrBadLocation):
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		default:
			c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		}
		return
	}

	now := time.Now()
	c.JSON(http.StatusCreated, inventoryItemView{
		InventoryItem: item,
		Status:        freshness.Classify(item, now),
		DaysLeft:      freshness.DaysLeft(item.ExpiryDate, now),
	})
}

// DeleteInventoryItem handles DELETE requests for a single item. Unknown
// ids succeed; the item is gone either way.
func (s *Server) DeleteInventoryItem(c *gin.Context) {
	if err := s.inventory.Delete(c.Param("id")); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"status": "deleted"})
}
