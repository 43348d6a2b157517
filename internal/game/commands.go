package game

// BoostKind names a purchasable consumable boost.
type BoostKind string

// BoostFreeze protects the daily streak for one missed day.
const BoostFreeze BoostKind = "freeze"

// FreezeBoostCost is the shop price of one streak freeze.
const FreezeBoostCost = 50

// Purchase is a shop command. Exactly one variant exists per purchasable
// category, each carrying only the fields its category needs; invalid
// type/id combinations cannot be expressed.
type Purchase interface {
	isPurchase()
}

// PurchaseBoost buys one consumable boost.
type PurchaseBoost struct {
	Boost BoostKind
}

// PurchaseTheme unlocks a color theme and activates it.
type PurchaseTheme struct {
	ThemeID string
}

// PurchaseAvatarItem unlocks a wardrobe catalog entry without equipping it.
type PurchaseAvatarItem struct {
	ItemID string
}

func (PurchaseBoost) isPurchase()      {}
func (PurchaseTheme) isPurchase()      {}
func (PurchaseAvatarItem) isPurchase() {}
