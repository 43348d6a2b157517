package models

import (
	"time"
)

// StorageLocation identifies where an inventory item is kept in the home.
type StorageLocation string

const (
	LocationFridge    StorageLocation = "fridge"
	LocationFreezer   StorageLocation = "freezer"
	LocationPantry    StorageLocation = "pantry"
	LocationHousehold StorageLocation = "household"
)

// StorageLocations lists every location in display order.
var StorageLocations = []StorageLocation{
	LocationFridge,
	LocationFreezer,
	LocationPantry,
	LocationHousehold,
}

// Valid reports whether the location is one of the known values.
func (l StorageLocation) Valid() bool {
	switch l {
	case LocationFridge, LocationFreezer, LocationPantry, LocationHousehold:
		return true
	}
	return false
}

// Unit is the measurement unit of an inventory item quantity.
type Unit string

const (
	UnitPiece       Unit = "piece"
	UnitGrams       Unit = "g"
	UnitKilograms   Unit = "kg"
	UnitLiters      Unit = "L"
	UnitMilliliters Unit = "ml"
	UnitPack        Unit = "pack"
)

// InventoryItem is a single product tracked in the household inventory.
// Items are never edited in place; a change is a delete followed by a
// re-create.
type InventoryItem struct {
	ID         string          `json:"id"`
	Name       string          `json:"name"`
	Location   StorageLocation `json:"location"`
	Quantity   float64         `json:"quantity"`
	Unit       Unit            `json:"unit"`
	ExpiryDate time.Time       `json:"expiryDate"`
	AddedDate  time.Time       `json:"addedDate"`
	OwnerID    string          `json:"ownerId"`
}

// InventoryItemDraft carries the user-supplied fields of a new item.
// The store assigns the id, the added date and the owner.
type InventoryItemDraft struct {
	Name       string          `json:"name"`
	Location   StorageLocation `json:"location"`
	Quantity   float64         `json:"quantity"`
	Unit       Unit            `json:"unit"`
	ExpiryDate time.Time       `json:"expiryDate"`
}
