package inventory

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"frigosmart/internal/models"
)

// recordingSaver counts snapshot writes.
type recordingSaver struct {
	saves int
	last  interface{}
}

func (r *recordingSaver) Save(v interface{}) error {
	r.saves++
	r.last = v
	return nil
}

func draft(name string, loc models.StorageLocation, expiry time.Time) models.InventoryItemDraft {
	return models.InventoryItemDraft{
		Name:       name,
		Location:   loc,
		Quantity:   1,
		Unit:       models.UnitPiece,
		ExpiryDate: expiry,
	}
}

func TestAddAssignsIDAndPrepends(t *testing.T) {
	saver := &recordingSaver{}
	store := NewStore(nil, saver)
	expiry := time.Now().AddDate(0, 0, 5)

	first, err := store.Add(draft("Milk", models.LocationFridge, expiry), "user-1")
	require.NoError(t, err)
	second, err := store.Add(draft("Butter", models.LocationFridge, expiry), "user-1")
	require.NoError(t, err)

	assert.NotEmpty(t, first.ID)
	assert.NotEqual(t, first.ID, second.ID)
	assert.False(t, first.AddedDate.IsZero())
	assert.Equal(t, "user-1", first.OwnerID)

	items := store.Items()
	require.Len(t, items, 2)
	assert.Equal(t, "Butter", items[0].Name, "newest item sits at the front")
	assert.Equal(t, 2, saver.saves)
}

func TestAddValidation(t *testing.T) {
	store := NewStore(nil, &recordingSaver{})
	expiry := time.Now().AddDate(0, 0, 5)

	tests := []struct {
		name  string
		draft models.InventoryItemDraft
		want  error
	}{
		{"missing name", draft("", models.LocationFridge, expiry), ErrNameRequired},
		{"missing expiry", draft("Milk", models.LocationFridge, time.Time{}), ErrExpiryRequired},
		{"zero quantity", models.InventoryItemDraft{Name: "Milk", Location: models.LocationFridge, Unit: models.UnitPiece, ExpiryDate: expiry}, ErrBadQuantity},
		{"bad location", draft("Milk", "garage", expiry), ErrBadLocation},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := store.Add(tt.draft, "user-1")
			assert.ErrorIs(t, err, tt.want)
			assert.Zero(t, store.Len(), "failed add must not mutate the collection")
		})
	}
}

func TestDeleteUnknownIDIsNoop(t *testing.T) {
	saver := &recordingSaver{}
	store := NewStore(nil, saver)
	_, err := store.Add(draft("Milk", models.LocationFridge, time.Now().AddDate(0, 0, 2)), "user-1")
	require.NoError(t, err)

	require.NoError(t, store.Delete("does-not-exist"))
	assert.Equal(t, 1, store.Len())
	assert.Equal(t, 1, saver.saves, "no-op delete does not rewrite the slot")
}

func TestDeleteRemovesItem(t *testing.T) {
	store := NewStore(nil, &recordingSaver{})
	item, err := store.Add(draft("Milk", models.LocationFridge, time.Now().AddDate(0, 0, 2)), "user-1")
	require.NoError(t, err)

	require.NoError(t, store.Delete(item.ID))
	assert.Zero(t, store.Len())
}

func TestListFilterAndSearch(t *testing.T) {
	store := NewStore(nil, &recordingSaver{})
	now := time.Now()

	_, err := store.Add(draft("Milk", models.LocationFridge, now.AddDate(0, 0, 9)), "u")
	require.NoError(t, err)
	_, err = store.Add(draft("Frozen Peas", models.LocationFreezer, now.AddDate(0, 0, 30)), "u")
	require.NoError(t, err)
	_, err = store.Add(draft("Milk Chocolate", models.LocationPantry, now.AddDate(0, 0, 4)), "u")
	require.NoError(t, err)

	all := store.List(FilterAll, "")
	require.Len(t, all, 3)
	assert.Equal(t, "Milk Chocolate", all[0].Name, "earliest expiry first")

	fridge := store.List(string(models.LocationFridge), "")
	require.Len(t, fridge, 1)
	assert.Equal(t, "Milk", fridge[0].Name)

	milk := store.List(FilterAll, "milk")
	require.Len(t, milk, 2)

	none := store.List(FilterAll, "zzz")
	assert.Empty(t, none)
}

func TestListTieBreaksByInsertionOrder(t *testing.T) {
	store := NewStore(nil, &recordingSaver{})
	expiry := time.Date(2026, 6, 1, 0, 0, 0, 0, time.UTC)

	_, err := store.Add(draft("First", models.LocationPantry, expiry), "u")
	require.NoError(t, err)
	_, err = store.Add(draft("Second", models.LocationPantry, expiry), "u")
	require.NoError(t, err)

	got := store.List(FilterAll, "")
	require.Len(t, got, 2)
	assert.Equal(t, "First", got[0].Name)
	assert.Equal(t, "Second", got[1].Name)
}
