// Package inventory owns the household inventory collection. Every
// mutation re-serializes the whole collection through the injected saver,
// mirroring it to the persistence slot.
package inventory

import (
	"errors"
	"sort"
	"strings"
	"sync"
	"time"

	"github.com/google/uuid"

	"frigosmart/internal/models"
)

// FilterAll selects every storage location when listing.
const FilterAll = "ALL"

// Validation failures reject the mutation before any state change.
var (
	ErrNameRequired   = errors.New("inventory: item name is required")
	ErrExpiryRequired = errors.New("inventory: expiry date is required")
	ErrBadQuantity    = errors.New("inventory: quantity must be positive")
	ErrBadLocation    = errors.New("inventory: unknown storage location")
)

// Saver mirrors a state slice to persistent storage.
type Saver interface {
	Save(v interface{}) error
}

// Store holds the inventory collection. Newest items sit at the front.
type Store struct {
	mu    sync.RWMutex
	items []models.InventoryItem
	saver Saver
}

// NewStore creates a store seeded with the given items.
func NewStore(items []models.InventoryItem, saver Saver) *Store {
	return &Store{items: items, saver: saver}
}

// Add validates the draft, mints an id, stamps the added date and inserts
// the item at the front of the collection.
func (s *Store) Add(draft models.InventoryItemDraft, ownerID string) (models.InventoryItem, error) {
	if strings.TrimSpace(draft.Name) == "" {
		return models.InventoryItem{}, ErrNameRequired
	}
	if draft.ExpiryDate.IsZero() {
		return models.InventoryItem{}, ErrExpiryRequired
	}
	if draft.Quantity <= 0 {
		return models.InventoryItem{}, ErrBadQuantity
	}
	if !draft.Location.Valid() {
		return models.InventoryItem{}, ErrBadLocation
	}

	item := models.InventoryItem{
		ID:         uuid.NewString(),
		Name:       draft.Name,
		Location:   draft.Location,
		Quantity:   draft.Quantity,
		Unit:       draft.Unit,
		ExpiryDate: draft.ExpiryDate,
		AddedDate:  time.Now(),
		OwnerID:    ownerID,
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	s.items = append([]models.InventoryItem{item}, s.items...)
	return item, s.persist()
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

// List returns items matching the location filter (or FilterAll) whose
// name contains the search text case-insensitively, sorted ascending by
// expiry date. Items added earlier sort first on equal dates.
func (s *Store) List(filter string, search string) []models.InventoryItem {
	s.mu.RLock()
	defer s.mu.RUnlock()

	needle := strings.ToLower(search)
	out := make([]models.InventoryItem, 0, len(s.items))
	for _, item := range s.items {
		if filter != FilterAll && string(item.Location) != filter {
			continue
		}
		if needle != "" && !strings.Contains(strings.ToLower(item.Name), needle) {
			continue
		}
		out = append(out, item)
	}

	sort.SliceStable(out, func(i, j int) bool {
		if !out[i].ExpiryDate.Equal(out[j].ExpiryDate) {
			return out[i].ExpiryDate.Before(out[j].ExpiryDate)
		}
		return out[i].AddedDate.Before(out[j].AddedDate)
	})
	return out
}

// Items returns a copy of the collection in storage order.
func (s *Store) Items() []models.InventoryItem {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return append([]models.InventoryItem(nil), s.items...)
}

// Len returns the number of tracked items.
func (s *Store) Len() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.items)
}

func (s *Store) persist() error {
	if s.saver == nil {
		return nil
	}
	return s.saver.Save(s.items)
}
