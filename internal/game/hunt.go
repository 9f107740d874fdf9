package game

import (
	"strings"

	"github.com/tatianab/trail-game/internal/dice"
	"github.com/tatianab/trail-game/internal/engine"
	"github.com/tatianab/trail-game/internal/models"
	"github.com/tatianab/trail-game/internal/window"
)

// Hunt forms.
const (
	Hunting    window.FormTag = "Hunting"
	HuntResult window.FormTag = "HuntResult"
)

// Hunting rules.
const (
	HuntTicks      = 8
	PreyLifetime   = 2
	CarryLimit     = 100
	HitPercent     = 70
	BulletsPerShot = 1
)

// Prey is an animal that can be shot and how much meat it gives.
type Prey struct {
	Name   string
	Pounds int
}

var preyTable = []Prey{
	{Name: "squirrel", Pounds: 1},
	{Name: "rabbit", Pounds: 2},
	{Name: "duck", Pounds: 3},
	{Name: "deer", Pounds: 50},
	{Name: "bear", Pounds: 100},
	{Name: "buffalo", Pounds: 350},
}

// HuntInfo is the shared context of the hunt window.
type HuntInfo struct {
	Eng    *engine.Engine
	Pounds int
	Shots  int
	Killed []Prey
}

func huntWindow(eng *engine.Engine) window.Factory {
	return func() window.Spec {
		return window.Spec{
			Data: &HuntInfo{Eng: eng},
			Forms: map[window.FormTag]window.FormFunc{
				Hunting:    newHunting,
				HuntResult: newHuntResult,
			},
			Initial: Hunting,
		}
	}
}

// hunting runs a round of HuntTicks logical ticks. Prey appear at random
// and stay for PreyLifetime ticks; typing BANG while one is visible fires.
type hunting struct {
	window.Base[HuntInfo]
	left    int
	prey    *Prey
	seen    int
	message string
}

func newHunting(w *window.Window) window.Form {
	return &hunting{Base: window.Bind[HuntInfo](w), left: HuntTicks}
}

func (f *hunting) Render() string {
	var b strings.Builder
	numbers.Fprintf(&b, "Hunting. Time left: %d\n", f.left)
	numbers.Fprintf(&b, "Bullets: %d\n\n", f.Data.Eng.Vehicle.Inventory.Quantity(models.Ammo))
	if f.prey != nil {
		b.WriteString("You see a " + f.prey.Name + "! Type BANG to shoot.\n")
	} else {
		b.WriteString("You wait quietly...\n")
	}
	if f.message != "" {
		b.WriteString(f.message + "\n")
	}
	return b.String()
}

func (f *hunting) OnTick(systemTick bool) error {
	if systemTick {
		return nil
	}
	r := f.Data.Eng.Rand
	f.left--
	if f.left <= 0 {
		return f.SetForm(HuntResult)
	}
	if f.prey != nil {
		f.seen--
		if f.seen <= 0 {
			f.message = "The " + f.prey.Name + " got away."
			f.prey = nil
		}
		return nil
	}
	if r.Bool() {
		p := preyTable[r.IntN(len(preyTable))]
		f.prey = &p
		f.seen = PreyLifetime
		f.message = ""
	}
	return nil
}

func (f *hunting) OnInput(line string) error {
	if f.prey == nil || window.Normalize(line) != "BANG" {
		return nil
	}
	eng := f.Data.Eng
	if eng.Vehicle.Inventory.Remove(models.Ammo, BulletsPerShot) == 0 {
		f.message = "You are out of bullets."
		return f.SetForm(HuntResult)
	}
	f.Data.Shots++
	if dice.Between(eng.Rand, 0, 100) < HitPercent {
		f.Data.Killed = append(f.Data.Killed, *f.prey)
		f.Data.Pounds += f.prey.Pounds
		f.message = "You shot the " + f.prey.Name + "."
	} else {
		f.message = "You missed the " + f.prey.Name + "."
	}
	f.prey = nil
	return nil
}

// huntResult tallies the meat, keeps what can be carried and spends a day.
type huntResult struct {
	window.Base[HuntInfo]
	carried int
}

func newHuntResult(w *window.Window) window.Form {
	return &huntResult{Base: window.Bind[HuntInfo](w)}
}

func (f *huntResult) OnPostCreate() error {
	f.carried = min(f.Data.Pounds, CarryLimit)
	f.Data.Eng.Vehicle.Inventory.Add(models.Food, f.carried)
	return nil
}

func (f *huntResult) Render() string {
	var b strings.Builder
	switch {
	case f.Data.Pounds == 0:
		b.WriteString("You were unable to shoot any food.\n")
	case f.Data.Pounds > CarryLimit:
		numbers.Fprintf(&b, "From the animals you shot, you got %d pounds of meat.\n", f.Data.Pounds)
		numbers.Fprintf(&b, "However, you were only able to carry %d pounds back to the vehicle.\n", f.carried)
	default:
		numbers.Fprintf(&b, "From the animals you shot, you got %d pounds of meat.\n", f.Data.Pounds)
	}
	b.WriteString("\n" + PressEnter)
	return b.String()
}

func (f *huntResult) OnInput(string) error {
	eng := f.Data.Eng
	if err := f.Close(); err != nil {
		return err
	}
	return eng.TakeTurn()
}
