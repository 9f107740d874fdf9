package cli

import (
	"errors"
	"strconv"

	"github.com/tatianab/trail-game/internal/engine"
	"github.com/tatianab/trail-game/internal/game"
	"github.com/tatianab/trail-game/internal/models"
	"github.com/tatianab/trail-game/internal/window"
)

// ErrPulseLimit is returned when an autoplayed game does not finish in
// the allotted number of pulses.
var ErrPulseLimit = errors.New("game did not finish before the pulse limit")

// Party is what the autoplayer types into the new game screens.
type Party struct {
	Profession int
	Names      []string
	Month      int
}

// storeOrder is the autoplayer's shopping list at the first store, as
// pairs of menu choice and bundle count.
var storeOrder = []string{
	"1", "3", // oxen
	"2", "5", // food
	"3", "2", // clothing
	"4", "5", // ammo
	"5", "1",
	"6", "1",
	"7", "1",
}

// lowFood is when the autoplayer goes hunting or restocks.
const lowFood = 100

// autoplayer plays a game without a terminal by answering whatever the
// top window asks. Lines that only make sense together, like a menu
// choice followed by its quantity, are queued.
type autoplayer struct {
	eng   *engine.Engine
	party Party

	queue    []string
	stocked  bool
	lastStop string
	pulses   int
}

func newAutoplayer(eng *engine.Engine, party Party) *autoplayer {
	return &autoplayer{eng: eng, party: party}
}

// run pulses the engine, answering between pulses, until the player
// quits or limit pulses have gone by.
func (a *autoplayer) run(limit int) error {
	for !a.eng.Done() {
		if a.pulses >= limit {
			return ErrPulseLimit
		}
		if line, ok := a.next(); ok {
			if err := a.eng.SendInput(line); err != nil {
				return err
			}
		}
		if err := a.eng.Pulse(); err != nil {
			return err
		}
		a.pulses++
	}
	return nil
}

// next picks the line to type for the current frame, if any.
func (a *autoplayer) next() (string, bool) {
	if len(a.queue) > 0 {
		line := a.queue[0]
		a.queue = a.queue[1:]
		return line, true
	}
	w := a.eng.Windows.Top()
	if w == nil {
		return "", false
	}
	switch w.Tag() {
	case window.NewGame:
		return a.newGame(w.FormTag())
	case window.Store:
		return a.shop(), true
	case window.Travel:
		return a.travel(w.FormTag())
	case window.RiverCrossing:
		if w.HasForm(game.RiverMenu) {
			return a.river(w.Data().(*game.RiverInfo)), true
		}
		return "", true
	case window.ForkInRoad:
		return "1", true
	case window.Settlement:
		return a.settlement(), true
	case window.Hunt:
		if w.HasForm(game.Hunting) {
			return "BANG", true
		}
		return "", true
	case window.Trade:
		return "N", true
	case window.GameOver:
		if w.HasForm(game.PlayAgain) {
			return "N", true
		}
		return "", true
	case window.Landmark, window.RandomEvent:
		return "", true
	}
	return "", false
}

func (a *autoplayer) newGame(form window.FormTag) (string, bool) {
	switch form {
	case game.SelectProfession:
		return strconv.Itoa(a.party.Profession), true
	case game.InputNames:
		a.queue = append(a.queue, a.party.Names...)
		if len(a.party.Names) < game.MaxPartySize {
			a.queue = append(a.queue, "")
		}
		return a.next()
	case game.SelectMonth:
		return strconv.Itoa(a.party.Month), true
	case game.ConfirmParty:
		a.stocked = false
		return "Y", true
	}
	return "", false
}

func (a *autoplayer) shop() string {
	leave := strconv.Itoa(len(game.StoreItems) + 1)
	switch {
	case !a.stocked:
		a.stocked = true
		a.queue = append(a.queue, storeOrder...)
		a.queue = append(a.queue, leave)
		line, _ := a.next()
		return line
	case a.food() < lowFood && a.cash() >= game.StoreItems[1].Price:
		a.queue = append(a.queue, "1", leave)
		return "2"
	}
	return leave
}

func (a *autoplayer) travel(form window.FormTag) (string, bool) {
	inv := a.eng.Vehicle.Inventory
	switch form {
	case game.CommandMenu:
		switch {
		case inv.Quantity(models.Oxen) == 0:
			a.queue = append(a.queue, "9")
			return "6", true
		case a.food() < lowFood && inv.Quantity(models.Ammo) > 0:
			return "8", true
		}
		return "1", true
	case game.LocationArrive:
		return "Y", true
	case game.VehicleStuck:
		return "", true
	}
	return "", false
}

// river fords shallow water and floats anything deeper.
func (a *autoplayer) river(info *game.RiverInfo) string {
	if info.Depth <= 3 {
		return "1"
	}
	return "2"
}

// settlement visits the store once per stop, then leaves.
func (a *autoplayer) settlement() string {
	name := a.eng.Trail.Current().Name
	if a.lastStop != name {
		a.lastStop = name
		return "2"
	}
	return "4"
}

func (a *autoplayer) food() int { return a.eng.Vehicle.Inventory.Quantity(models.Food) }
func (a *autoplayer) cash() int { return a.eng.Vehicle.Inventory.Quantity(models.Cash) }
