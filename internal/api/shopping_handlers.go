package api

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"frigosmart/internal/models"
	"frigosmart/internal/shopping"
)

type addShoppingRequest struct {
	Name       string            `json:"name" binding:"required"`
	Department models.Department `json:"department" binding:"required"`
}

// GetShoppingList handles GET requests for the shopping list, grouped by
// department in display order.
func (s *Server) GetShoppingList(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"groups": s.shopping.Grouped()})
}

// AddShoppingItem handles POST requests to add a shopping list entry.
func (s *Server) AddShoppingItem(c *gin.Context) {
	var req addShoppingRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	item, err := s.shopping.Add(req.Name, req.Department)
	if err != nil {
		if errors.Is(err, shopping.ErrNameRequired) || errors.Is(err, shopping.ErrBadDepartment) {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		} else {
			c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		}
		return
	}
	c.JSON(http.StatusCreated, item)
}

// ToggleShoppingItem handles POST requests to flip an entry's checked state.
func (s *Server) ToggleShoppingItem(c *gin.Context) {
	if err := s.shopping.Toggle(c.Param("id")); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"status": "toggled"})
}

// DeleteShoppingItem handles DELETE requests for a single entry.
func (s *Server) DeleteShoppingItem(c *gin.Context) {
	if err := s.shopping.Delete(c.Param("id")); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"status": "deleted"})
}

// ClearCompletedShopping handles POST requests to drop every checked entry.
func (s *Server) ClearCompletedShopping(c *gin.Context) {
	if err := s.shopping.ClearCompleted(); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"groups": s.shopping.Grouped()})
}
