package models

// AvatarSlot names one of the four customizable avatar parts.
type AvatarSlot string

const (
	SlotBase        AvatarSlot = "base"
	SlotClothing    AvatarSlot = "clothing"
	SlotTop         AvatarSlot = "top"
	SlotAccessories AvatarSlot = "accessories"
)

// AccessoryNone is the render value for an empty accessory slot.
const AccessoryNone = "none"

// AvatarItem is one entry of the immutable wardrobe catalog. Ownership is
// recorded only through UserGameStats.UnlockedAvatarItems.
type AvatarItem struct {
	ID          string     `json:"id"`
	Type        AvatarSlot `json:"type"`
	Name        string     `json:"name"`
	RenderValue string     `json:"renderValue"`
	Price       int        `json:"price"`
	Icon        string     `json:"icon,omitempty"`
}

// AvatarCatalog is the full wardrobe. Free entries are unlocked for every
// new household; priced entries are bought in the shop.
var AvatarCatalog = []AvatarItem{
	{ID: "base_felix", Type: SlotBase, Name: "Felix", RenderValue: "Felix", Price: 0},
	{ID: "base_aneka", Type: SlotBase, Name: "Aneka", RenderValue: "Aneka", Price: 0},
	{ID: "base_jocelyn", Type: SlotBase, Name: "Jocelyn", RenderValue: "Jocelyn", Price: 0},

	{ID: "cloth_blazer", Type: SlotClothing, Name: "Blazer", RenderValue: "blazerAndShirt", Price: 0, Icon: "fa-user-tie"},
	{ID: "cloth_shirt", Type: SlotClothing, Name: "Crew Shirt", RenderValue: "shirtCrewNeck", Price: 0, Icon: "fa-tshirt"},
	{ID: "cloth_hoodie", Type: SlotClothing, Name: "Cool Hoodie", RenderValue: "hoodie", Price: 150, Icon: "fa-user-ninja"},
	{ID: "cloth_overall", Type: SlotClothing, Name: "Overalls", RenderValue: "overall", Price: 200, Icon: "fa-user-astronaut"},
	{ID: "cloth_graphic", Type: SlotClothing, Name: "Graphic Tee", RenderValue: "graphicShirt", Price: 100, Icon: "fa-shirt"},

	{ID: "top_short", Type: SlotTop, Name: "Short Cut", RenderValue: "shortHairShortFlat", Price: 0, Icon: "fa-user"},
	{ID: "top_long", Type: SlotTop, Name: "Long Cut", RenderValue: "longHairMiaWallace", Price: 0, Icon: "fa-user-long-hair"},
	{ID: "top_beanie", Type: SlotTop, Name: "Winter Beanie", RenderValue: "winterHat1", Price: 120, Icon: "fa-hat-winter"},
	{ID: "top_cowboy", Type: SlotTop, Name: "Cowboy Hat", RenderValue: "hatCowboy", Price: 250, Icon: "fa-hat-cowboy"},
	{ID: "top_big_hair", Type: SlotTop, Name: "Max Volume", RenderValue: "longHairBigHair", Price: 180, Icon: "fa-user-punk"},

	{ID: "acc_glasses", Type: SlotAccessories, Name: "Glasses", RenderValue: "prescription02", Price: 80, Icon: "fa-glasses"},
	{ID: "acc_shades", Type: SlotAccessories, Name: "Sunglasses", RenderValue: "sunglasses", Price: 150, Icon: "fa-sunglasses"},
}

// DefaultUnlockedAvatarItems lists the catalog ids every new household
// starts with (all free entries).
var DefaultUnlockedAvatarItems = []string{
	"base_felix", "base_aneka", "base_jocelyn",
	"cloth_blazer", "cloth_shirt",
	"top_short", "top_long",
}

// DefaultAvatar returns the starting avatar configuration.
func DefaultAvatar() AvatarConfig {
	return AvatarConfig{
		Base:        "Felix",
		Clothing:    "blazerAndShirt",
		Top:         "shortHairShortFlat",
		Accessories: AccessoryNone,
	}
}

// AvatarItemByID looks up a catalog entry.
func AvatarItemByID(id string) (AvatarItem, bool) {
	for _, item := range AvatarCatalog {
		if item.ID == id {
			return item, true
		}
	}
	return AvatarItem{}, false
}

// Theme is one purchasable color theme.
type Theme struct {
	ID   string `json:"id"`
	Name string `json:"name"`
	Cost int    `json:"cost"`
}

// DefaultThemeID is the theme every household starts on.
const DefaultThemeID = "default"

// ThemeCatalog lists the purchasable themes.
var ThemeCatalog = []Theme{
	{ID: DefaultThemeID, Name: "Classic", Cost: 0},
	{ID: "sunset", Name: "Sunset Vibe", Cost: 500},
	{ID: "midnight", Name: "Midnight", Cost: 800},
	{ID: "forest", Name: "Zen Forest", Cost: 600},
}

// ThemeByID looks up a theme catalog entry.
func ThemeByID(id string) (Theme, bool) {
	for _, t := range ThemeCatalog {
		if t.ID == id {
			return t, true
		}
	}
	return Theme{}, false
}
