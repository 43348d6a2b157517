package models

// Department is a store department used to group the shopping list.
type Department string

const (
	DeptProduce   Department = "produce"
	DeptDairy     Department = "dairy"
	DeptMeat      Department = "meat_fish"
	DeptBakery    Department = "bakery"
	DeptFrozen    Department = "frozen"
	DeptGrocery   Department = "grocery"
	DeptSweet     Department = "sweet"
	DeptDrinks    Department = "drinks"
	DeptHousehold Department = "household"
	DeptHygiene   Department = "hygiene"
	DeptOther     Department = "other"
)

// Departments lists every department in declaration order. Grouped
// shopping-list views preserve this order.
var Departments = []Department{
	DeptProduce,
	DeptDairy,
	DeptMeat,
	DeptBakery,
	DeptFrozen,
	DeptGrocery,
	DeptSweet,
	DeptDrinks,
	DeptHousehold,
	DeptHygiene,
	DeptOther,
}

// Valid reports whether the department is one of the known values.
func (d Department) Valid() bool {
	for _, dept := range Departments {
		if d == dept {
			return true
		}
	}
	return false
}

// ShoppingItem is a single entry on the shopping list.
type ShoppingItem struct {
	ID         string     `json:"id"`
	Name       string     `json:"name"`
	Department Department `json:"department"`
	Checked    bool       `json:"checked"`
}
