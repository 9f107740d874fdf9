package game

import (
	"strings"

	"github.com/tatianab/trail-game/internal/engine"
	"github.com/tatianab/trail-game/internal/window"
)

// SettlementMenu is the menu shown inside a fort or town.
const SettlementMenu window.FormTag = "SettlementMenu"

var rumors = []string{
	"A traveler tells you: \"Don't try to ford any river deeper than a few feet.\"",
	"A settler tells you: \"Keep an eye on your oxen. They wander off at night.\"",
	"A trader tells you: \"Buy spare parts while you can. There are few stores ahead.\"",
	"A scout tells you: \"Snow comes early in the mountains. Don't dawdle.\"",
	"A woman tells you: \"Boil your water. The sickness takes the careless first.\"",
}

// SettlementInfo is the shared context of the settlement window.
type SettlementInfo struct {
	Eng     *engine.Engine
	Message string
}

func settlementWindow(eng *engine.Engine) window.Factory {
	return func() window.Spec {
		return window.Spec{
			Data:    &SettlementInfo{Eng: eng},
			Forms:   map[window.FormTag]window.FormFunc{SettlementMenu: newSettlementMenu},
			Initial: SettlementMenu,
		}
	}
}

type settlementMenu struct {
	window.Base[SettlementInfo]
}

func newSettlementMenu(w *window.Window) window.Form {
	return &settlementMenu{Base: window.Bind[SettlementInfo](w)}
}

func (f *settlementMenu) Render() string {
	eng := f.Data.Eng
	loc := eng.Trail.Current()
	var b strings.Builder
	b.WriteString("Welcome to " + loc.Name + "\n")
	b.WriteString(eng.Clock.String() + "\n")
	if loc.Description != "" {
		b.WriteString("\n" + loc.Description + "\n")
	}
	if f.Data.Message != "" {
		b.WriteString("\n" + f.Data.Message + "\n")
	}
	b.WriteString("\n")
	b.WriteString(menu("You may:", []string{"Talk to people", "Buy supplies", "Attempt to trade", "Leave"}))
	return b.String()
}

func (f *settlementMenu) OnInput(line string) error {
	switch choice(line, 4) {
	case 1:
		eng := f.Data.Eng
		if !eng.Trail.Current().ChattingAllowed() {
			f.Data.Message = "There is nobody here to talk to."
			return nil
		}
		f.Data.Message = rumors[eng.Rand.IntN(len(rumors))]
	case 2:
		f.Data.Message = ""
		return f.PushWindow(window.Store)
	case 3:
		f.Data.Message = ""
		return f.PushWindow(window.Trade)
	case 4:
		return f.Close()
	}
	return nil
}
