package storage

import (
	"encoding/json"
	"fmt"
	"time"

	"github.com/jinzhu/gorm"
)

// Slot keys for the four persisted state slices.
const (
	KeyInventory = "frigosmart_inventory"
	KeyShopping  = "frigosmart_shopping"
	KeyStats     = "frigosmart_stats"
	KeyTasks     = "frigosmart_tasks"
)

// slotRecord is one key-value row holding a serialized slice snapshot.
type slotRecord struct {
	Key       string `gorm:"column:slot_key;primary_key"`
	Value     string `gorm:"type:text"`
	UpdatedAt time.Time
}

// TableName sets the table name for slotRecord.
func (slotRecord) TableName() string {
	return "slots"
}

// Slots reads and writes whole-slice snapshots by key.
type Slots struct {
	db *gorm.DB
}

// NewSlots creates a slot store over an open database.
func NewSlots(db *gorm.DB) *Slots {
	return &Slots{db: db}
}

// Load reads a snapshot. The boolean reports whether the slot exists.
func (s *Slots) Load(key string) ([]byte, bool, error) {
	var rec slotRecord
	err := s.db.Where("slot_key = ?", key).First(&rec).Error
	if gorm.IsRecordNotFoundError(err) {
		return nil, false, nil
	}
	if err != nil {
		return nil, false, fmt.Errorf("storage: load slot %s: %w", key, err)
	}
	return []byte(rec.Value), true, nil
}

// Save overwrites a snapshot.
func (s *Slots) Save(key string, data []byte) error {
	var rec slotRecord
	err := s.db.Where(slotRecord{Key: key}).
		Assign(map[string]interface{}{"value": string(data)}).
		FirstOrCreate(&rec).Error
	if err != nil {
		return fmt.Errorf("storage: save slot %s: %w", key, err)
	}
	return nil
}

// Slot binds one key to JSON serialization, giving the stores a
// single-method saver for their slice.
type Slot struct {
	slots *Slots
	key   string
}

// Bind returns the slot for the given key.
func (s *Slots) Bind(key string) *Slot {
	return &Slot{slots: s, key: key}
}

// Save serializes v and overwrites the slot.
func (s *Slot) Save(v interface{}) error {
	data, err := json.Marshal(v)
	if err != nil {
		return fmt.Errorf("storage: marshal slot %s: %w", s.key, err)
	}
	return s.slots.Save(s.key, data)
}

// Load deserializes the slot into v. The boolean reports whether a valid
// snapshot was found; corrupt snapshots count as absent.
func (s *Slot) Load(v interface{}) (bool, error) {
	data, ok, err := s.slots.Load(s.key)
	if err != nil || !ok {
		return false, err
	}
	if err := json.Unmarshal(data, v); err != nil {
		// Corruption is treated as "no data"; the caller seeds defaults.
		return false, nil
	}
	return true, nil
}
