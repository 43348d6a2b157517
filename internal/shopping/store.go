// Package shopping owns the shopping list collection.
package shopping

import (
	"errors"
	"strings"
	"sync"

	"github.com/google/uuid"

	"frigosmart/internal/models"
)

var (
	ErrNameRequired  = errors.New("shopping: item name is required")
	ErrBadDepartment = errors.New("shopping: unknown department")
)

// Saver mirrors a state slice to persistent storage.
type Saver interface {
	Save(v interface{}) error
}

// Store holds the shopping list in insertion order.
type Store struct {
	mu    sync.RWMutex
	items []models.ShoppingItem
	saver Saver
}

// Group is one department section of the displayed list.
type Group struct {
	Department models.Department     `json:"department"`
	Items      []models.ShoppingItem `json:"items"`
}

// NewStore creates a store seeded with the given items.
func NewStore(items []models.ShoppingItem, saver Saver) *Store {
	return &Store{items: items, saver: saver}
}

// Add appends an unchecked item with a fresh id.
func (s *Store) Add(name string, department models.Department) (models.ShoppingItem, error) {
	if strings.TrimSpace(name) == "" {
		return models.ShoppingItem{}, ErrNameRequired
	}
	if !department.Valid() {
		return models.ShoppingItem{}, ErrBadDepartment
	}

	item := models.ShoppingItem{
		ID:         uuid.NewString(),
		Name:       name,
		Department: department,
		Checked:    false,
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	s.items = append(s.items, item)
	return item, s.persist()
}

// Toggle flips the checked state of the item with the given id. Unknown
// ids are a no-op.
func (s *Store) Toggle(id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	for i := range s.items {
		if s.items[i].ID == id {
			s.items[i].Checked = !s.items[i].Checked
			return s.persist()
		}
	}
	return nil
}

// Delete removes the item with the given id. Unknown ids are a no-op.
func (s *Store) Delete(id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	for i, item := range s.items {
		if item.ID == id {
			s.items = append(s.items[:i], s.items[i+1:]...)
			return s.persist()
		}
	}
	return nil
}

// ClearCompleted removes every checked item, preserving the relative
// order of the remainder.
func (s *Store) ClearCompleted() error {
	s.mu.Lock()
	defer s.mu.Unlock()

	kept := s.items[:0]
	for _, item := range s.items {
		if !item.Checked {
			kept = append(kept, item)
		}
	}
	s.items = kept
	return s.persist()
}

// Grouped partitions the list by department in catalog declaration order.
// Empty departments are omitted.
func (s *Store) Grouped() []Group {
	s.mu.RLock()
	defer s.mu.RUnlock()

	byDept := make(map[models.Department][]models.ShoppingItem)
	for _, item := range s.items {
		byDept[item.Department] = append(byDept[item.Department], item)
	}

	groups := make([]Group, 0, len(byDept))
	for _, dept := range models.Departments {
		if items, ok := byDept[dept]; ok {
			groups = append(groups, Group{Department: dept, Items: items})
		}
	}
	return groups
}

// Items returns a copy of the list in insertion order.
func (s *Store) Items() []models.ShoppingItem {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return append([]models.ShoppingItem(nil), s.items...)
}

func (s *Store) persist() error {
	if s.saver == nil {
		return nil
	}
	return s.saver.Save(s.items)
}
