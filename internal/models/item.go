package models

// ItemKind names a class of goods carried in the vehicle.
type ItemKind string

const (
	Oxen     ItemKind = "oxen"
	Clothing ItemKind = "clothing"
	Ammo     ItemKind = "ammo"
	Wheel    ItemKind = "wheel"
	Axle     ItemKind = "axle"
	Tongue   ItemKind = "tongue"
	Food     ItemKind = "food"
	Cash     ItemKind = "cash"
)

// ItemKinds lists every kind in display order.
var ItemKinds = []ItemKind{Oxen, Clothing, Ammo, Wheel, Axle, Tongue, Food, Cash}

var itemNames = map[ItemKind]string{
	Oxen:     "Oxen",
	Clothing: "Sets of clothing",
	Ammo:     "Bullets",
	Wheel:    "Vehicle wheels",
	Axle:     "Vehicle axles",
	Tongue:   "Vehicle tongues",
	Food:     "Pounds of food",
	Cash:     "Money left",
}

var itemUnits = map[ItemKind]string{
	Oxen:     "ox",
	Clothing: "set",
	Ammo:     "bullet",
	Wheel:    "wheel",
	Axle:     "axle",
	Tongue:   "tongue",
	Food:     "pound",
	Cash:     "dollar",
}

// DisplayName is the label used in supply listings.
func (k ItemKind) DisplayName() string {
	if n, ok := itemNames[k]; ok {
		return n
	}
	return string(k)
}

// Unit is the singular unit of one item of this kind.
func (k ItemKind) Unit() string {
	if u, ok := itemUnits[k]; ok {
		return u
	}
	return string(k)
}

// Inventory maps an item kind to the quantity carried. Cash is kept in
// whole dollars.
type Inventory map[ItemKind]int

// Quantity returns the amount carried of kind.
func (inv Inventory) Quantity(kind ItemKind) int {
	return inv[kind]
}

// Add increases kind by n. Negative n is treated as a removal.
func (inv Inventory) Add(kind ItemKind, n int) {
	if n < 0 {
		inv.Remove(kind, -n)
		return
	}
	inv[kind] += n
}

// Remove takes up to n of kind and returns how many were actually removed.
func (inv Inventory) Remove(kind ItemKind, n int) int {
	have := inv[kind]
	if n > have {
		n = have
	}
	if n < 0 {
		n = 0
	}
	inv[kind] = have - n
	return n
}

// Kinds returns the kinds currently carried (quantity > 0) in display order.
func (inv Inventory) Kinds() []ItemKind {
	var kinds []ItemKind
	for _, k := range ItemKinds {
		if inv[k] > 0 {
			kinds = append(kinds, k)
		}
	}
	return kinds
}

// Clear drops every item including cash.
func (inv Inventory) Clear() {
	for k := range inv {
		delete(inv, k)
	}
}
