package game

import (
	"strconv"
	"strings"

	"github.com/tatianab/trail-game/internal/engine"
	"github.com/tatianab/trail-game/internal/models"
	"github.com/tatianab/trail-game/internal/window"
)

// StoreMenu lists the goods for sale.
const StoreMenu window.FormTag = "StoreMenu"

// StoreItem is one line of the store's price list. Goods are sold in
// bundles of Bundle units for Price dollars.
type StoreItem struct {
	Kind   models.ItemKind
	Label  string
	Price  int
	Bundle int
}

// StoreItems is the price list.
var StoreItems = []StoreItem{
	{Kind: models.Oxen, Label: "Oxen (yoke of 2)", Price: 40, Bundle: 2},
	{Kind: models.Food, Label: "Food (100 pounds)", Price: 20, Bundle: 100},
	{Kind: models.Clothing, Label: "Clothing (1 set)", Price: 10, Bundle: 1},
	{Kind: models.Ammo, Label: "Bullets (box of 20)", Price: 2, Bundle: 20},
	{Kind: models.Wheel, Label: "Vehicle wheel", Price: 10, Bundle: 1},
	{Kind: models.Axle, Label: "Vehicle axle", Price: 10, Bundle: 1},
	{Kind: models.Tongue, Label: "Vehicle tongue", Price: 10, Bundle: 1},
}

// StoreInfo is the shared context of the store window.
type StoreInfo struct {
	Eng     *engine.Engine
	Message string
}

func storeWindow(eng *engine.Engine) window.Factory {
	return func() window.Spec {
		return window.Spec{
			Data:    &StoreInfo{Eng: eng},
			Forms:   map[window.FormTag]window.FormFunc{StoreMenu: newStoreMenu},
			Initial: StoreMenu,
		}
	}
}

type storeMenu struct {
	window.Base[StoreInfo]
}

func newStoreMenu(w *window.Window) window.Form {
	return &storeMenu{Base: window.Bind[StoreInfo](w)}
}

func (f *storeMenu) Render() string {
	eng := f.Data.Eng
	inv := eng.Vehicle.Inventory
	var b strings.Builder
	b.WriteString(eng.Trail.Current().Name + " General Store\n")
	b.WriteString(eng.Clock.String() + "\n")
	b.WriteString(rule + "\n")
	for i, item := range StoreItems {
		numbers.Fprintf(&b, "  %d. %-22s %5s  (have %d)\n", i+1, item.Label, dollars(item.Price), inv.Quantity(item.Kind))
	}
	numbers.Fprintf(&b, "  %d. Leave store\n", len(StoreItems)+1)
	b.WriteString(rule + "\n")
	b.WriteString("You have " + dollars(inv.Quantity(models.Cash)) + " to spend.\n")
	if f.Data.Message != "" {
		b.WriteString(f.Data.Message + "\n")
	}
	b.WriteString("\nWhich item would you like to buy?")
	return b.String()
}

func (f *storeMenu) OnInput(line string) error {
	c := choice(line, len(StoreItems)+1)
	switch {
	case c == 0:
		return nil
	case c == len(StoreItems)+1:
		return f.Close()
	}
	f.Data.Message = ""
	return f.SetState(&buyState{Base: f.Base, item: StoreItems[c-1]})
}

// buyState asks how many bundles of one item to buy.
type buyState struct {
	window.Base[StoreInfo]
	item StoreItem
}

func (s *buyState) Render() string {
	return "How many of " + s.item.Label + " would you like? (" + dollars(s.item.Price) + " each)"
}

func (s *buyState) OnInput(line string) error {
	n, err := strconv.Atoi(strings.TrimSpace(line))
	if err != nil || n < 0 {
		return nil
	}
	s.Data.Message = Buy(s.Data.Eng.Vehicle.Inventory, s.item, n)
	s.ClearState()
	return nil
}

// Buy spends cash on n bundles of item and returns a line describing the
// result. Nothing is bought if the cash does not cover the whole order.
func Buy(inv models.Inventory, item StoreItem, n int) string {
	if n == 0 {
		return ""
	}
	cost := item.Price * n
	if cost > inv.Quantity(models.Cash) {
		return "You can't afford that."
	}
	inv.Remove(models.Cash, cost)
	inv.Add(item.Kind, item.Bundle*n)
	return numbers.Sprintf("Bought %d %s for %s.", item.Bundle*n, strings.ToLower(item.Kind.DisplayName()), dollars(cost))
}
