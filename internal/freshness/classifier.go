// Package freshness derives the urgency status of inventory items from
// their expiry dates. The status is recomputed on demand and never stored.
package freshness

import (
	"math"
	"time"

	"frigosmart/internal/models"
)

// Status is the derived freshness classification of an inventory item.
type Status string

const (
	StatusHousehold Status = "household"
	StatusExpired   Status = "expired"
	StatusCritical  Status = "critical"
	StatusWarning   Status = "warning"
	StatusFresh     Status = "fresh"
)

const (
	criticalWindowDays = 3
	warningWindowDays  = 7
)

// DaysLeft returns the number of whole days between today and the item's
// expiry date, rounding partial days up. Expiring later today counts as 0;
// a date in the past is negative.
func DaysLeft(expiry, now time.Time) int {
	diff := expiry.Sub(now)
	return int(math.Ceil(diff.Hours() / 24))
}

// Classify returns the freshness status of an item as of now. Household
// supplies never expire; everything else is graded by days left.
func Classify(item models.InventoryItem, now time.Time) Status {
	if item.Location == models.LocationHousehold {
		return StatusHousehold
	}

	days := DaysLeft(item.ExpiryDate, now)
	switch {
	case days < 0:
		return StatusExpired
	case days <= criticalWindowDays:
		return StatusCritical
	case days <= warningWindowDays:
		return StatusWarning
	default:
		return StatusFresh
	}
}
