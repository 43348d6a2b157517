package storage

import (
	"time"

	"github.com/google/uuid"

	"frigosmart/internal/models"
)

// seedInventory returns the starter items for a household with no saved
// inventory: one short-dated fridge item and one household supply.
func seedInventory(now time.Time) []models.InventoryItem {
	return []models.InventoryItem{
		{
			ID:         uuid.NewString(),
			Name:       "Semi-Skimmed Milk",
			Location:   models.LocationFridge,
			Quantity:   1,
			Unit:       models.UnitLiters,
			ExpiryDate: now.AddDate(0, 0, 2),
			AddedDate:  now,
			OwnerID:    "seed",
		},
		{
			ID:         uuid.NewString(),
			Name:       "Cleaning Spray",
			Location:   models.LocationHousehold,
			Quantity:   1,
			Unit:       models.UnitPiece,
			ExpiryDate: now.AddDate(1, 0, 0),
			AddedDate:  now,
			OwnerID:    "seed",
		},
	}
}

// LoadInventory reads the inventory slice, seeding the starter items when
// the slot is missing or unreadable.
func LoadInventory(slots *Slots) ([]models.InventoryItem, error) {
	var items []models.InventoryItem
	ok, err := slots.Bind(KeyInventory).Load(&items)
	if err != nil {
		return nil, err
	}
	if !ok {
		items = seedInventory(time.Now())
		if err := slots.Bind(KeyInventory).Save(items); err != nil {
			return nil, err
		}
	}
	return items, nil
}

// LoadShopping reads the shopping list. Absence means an empty list.
func LoadShopping(slots *Slots) ([]models.ShoppingItem, error) {
	var items []models.ShoppingItem
	if _, err := slots.Bind(KeyShopping).Load(&items); err != nil {
		return nil, err
	}
	return items, nil
}

// LoadTasks reads the persisted task batch. Absence means no batch; the
// board generates a fresh one on startup.
func LoadTasks(slots *Slots) ([]models.CleaningTask, error) {
	var tasks []models.CleaningTask
	if _, err := slots.Bind(KeyTasks).Load(&tasks); err != nil {
		return nil, err
	}
	return tasks, nil
}
