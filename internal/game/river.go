package game

import (
	"strings"

	"github.com/tatianab/trail-game/internal/dice"
	"github.com/tatianab/trail-game/internal/director"
	"github.com/tatianab/trail-game/internal/engine"
	"github.com/tatianab/trail-game/internal/events"
	"github.com/tatianab/trail-game/internal/models"
	"github.com/tatianab/trail-game/internal/window"
)

// River crossing forms.
const (
	RiverMenu      window.FormTag = "RiverMenu"
	CrossingResult window.FormTag = "CrossingResult"
)

// Crossing is how the party gets over a river.
type Crossing int

const (
	NoCrossing Crossing = iota
	Ford
	Float
	Ferry
	Guide
)

func (c Crossing) String() string {
	switch c {
	case Ford:
		return "ford"
	case Float:
		return "float"
	case Ferry:
		return "ferry"
	case Guide:
		return "guide"
	}
	return "none"
}

// Depth thresholds above which fording washes the vehicle out and floating
// may flood it. Both fire at most once per crossing, after the halfway mark.
const (
	washOutDepth = 3
	floodDepth   = 5
)

// GuideClothing is what a guide charges, in sets of clothing.
const GuideClothing = 3

// RiverInfo is the shared context of the river crossing window. Width and
// depth are in feet.
type RiverInfo struct {
	Eng       *engine.Engine
	Width     int
	Depth     int
	FerryCost int
	Crossing  Crossing
	Message   string
}

func riverWindow(eng *engine.Engine) window.Factory {
	return func() window.Spec {
		return window.Spec{
			Data: &RiverInfo{
				Eng:       eng,
				Width:     dice.Between(eng.Rand, 200, 1200),
				Depth:     dice.Between(eng.Rand, 1, 12),
				FerryCost: dice.Between(eng.Rand, 3, 9),
			},
			Forms: map[window.FormTag]window.FormFunc{
				RiverMenu:      newRiverMenu,
				CrossingResult: newCrossingResult,
			},
			Initial: RiverMenu,
		}
	}
}

type riverMenu struct {
	window.Base[RiverInfo]
	options []command
}

func newRiverMenu(w *window.Window) window.Form {
	return &riverMenu{Base: window.Bind[RiverInfo](w)}
}

func (f *riverMenu) OnPostCreate() error {
	f.options = []command{
		{"attempt to ford the river", func() error { return f.cross(Ford) }},
		{"caulk the vehicle and float it", func() error { return f.cross(Float) }},
	}
	switch f.Data.Eng.Trail.Current().River {
	case models.FerryOption:
		f.options = append(f.options, command{"take a ferry across", func() error {
			return f.SetState(newPayState(f.Base, Ferry))
		}})
	case models.GuideOption:
		f.options = append(f.options, command{"hire a guide to help", func() error {
			return f.SetState(newPayState(f.Base, Guide))
		}})
	}
	f.options = append(f.options,
		command{"wait to see if conditions improve", f.wait},
		command{"get more information", func() error { return f.SetState(&riverInfoState{Base: f.Base}) }},
	)
	return nil
}

func (f *riverMenu) Render() string {
	eng := f.Data.Eng
	var b strings.Builder
	b.WriteString(eng.Trail.Current().Name + "\n")
	b.WriteString(eng.Clock.String() + "\n\n")
	b.WriteString("You must cross the river in order to continue. The river at this point is currently " +
		feet(f.Data.Width) + " across, and " + feet(f.Data.Depth) + " deep in the middle.\n\n")
	if f.Data.Message != "" {
		b.WriteString(f.Data.Message + "\n\n")
	}
	labels := make([]string, len(f.options))
	for i, o := range f.options {
		labels[i] = o.label
	}
	b.WriteString(menu("You may:", labels))
	return b.String()
}

func (f *riverMenu) OnInput(line string) error {
	c := choice(line, len(f.options))
	if c == 0 {
		return nil
	}
	f.Data.Message = ""
	return f.options[c-1].run()
}

func (f *riverMenu) cross(c Crossing) error {
	f.Data.Crossing = c
	return f.SetForm(CrossingResult)
}

// wait spends a day at the bank. The river rises or falls a little.
func (f *riverMenu) wait() error {
	eng := f.Data.Eng
	eng.Vehicle.Status = models.Stopped
	if err := eng.TakeTurn(); err != nil {
		return err
	}
	f.Data.Depth += dice.Between(eng.Rand, -1, 2)
	if f.Data.Depth < 1 {
		f.Data.Depth = 1
	}
	f.Data.Message = "You camp near the river for a day."
	return nil
}

// payState confirms the price of a ferry or a guide.
type payState struct {
	window.Base[RiverInfo]
	crossing Crossing
}

func newPayState(b window.Base[RiverInfo], c Crossing) window.State {
	return &payState{Base: b, crossing: c}
}

func (s *payState) Render() string {
	if s.crossing == Ferry {
		return "The ferry operator says that he will charge you " + dollars(s.Data.FerryCost) +
			" to take your vehicle across.\n\nAre you willing to do this? Y/N"
	}
	return numbers.Sprintf("A guide offers to help you ford the river for %d sets of clothing.\n\nAre you willing to do this? Y/N", GuideClothing)
}

func (s *payState) OnInput(line string) error {
	if !yes(line) {
		s.ClearState()
		return nil
	}
	inv := s.Data.Eng.Vehicle.Inventory
	switch {
	case s.crossing == Ferry && inv.Quantity(models.Cash) < s.Data.FerryCost:
		s.Data.Message = "You do not have enough money to pay the ferry."
		s.ClearState()
		return nil
	case s.crossing == Guide && inv.Quantity(models.Clothing) < GuideClothing:
		s.Data.Message = "You do not have enough clothing to pay the guide."
		s.ClearState()
		return nil
	}
	s.Data.Crossing = s.crossing
	return s.SetForm(CrossingResult)
}

type riverInfoState struct {
	window.Base[RiverInfo]
}

func (s *riverInfoState) Render() string {
	return "To ford a river means to pull your vehicle across a shallow part of it, with the oxen still attached.\n\n" +
		"To caulk the vehicle means to seal it so that no water can get in. The vehicle can then be floated across like a boat.\n\n" +
		"A ferry or a guide costs something, but is the safest way across.\n\n" + PressEnter
}

func (s *riverInfoState) OnInput(string) error {
	s.ClearState()
	return nil
}

// crossingResult moves the party across the river a little on every
// logical tick and rolls for trouble along the way.
type crossingResult struct {
	window.Base[RiverInfo]
	bar      *marquee
	frame    string
	crossed  int
	finished bool
	forced   bool
}

func newCrossingResult(w *window.Window) window.Form {
	bar := newMarquee(12)
	return &crossingResult{Base: window.Bind[RiverInfo](w), bar: bar, frame: bar.String()}
}

func (f *crossingResult) OnPostCreate() error {
	v := f.Data.Eng.Vehicle
	v.Status = models.Stopped
	switch f.Data.Crossing {
	case Ferry:
		v.Inventory.Remove(models.Cash, f.Data.FerryCost)
		f.Data.FerryCost = 0
	case Guide:
		v.Inventory.Remove(models.Clothing, GuideClothing)
	}
	return nil
}

func (f *crossingResult) Render() string {
	eng := f.Data.Eng
	loc := eng.Trail.Current()
	weather := loc.Weather
	if weather == "" {
		weather = models.Clear
	}
	var b strings.Builder
	b.WriteString(f.frame + "\n")
	b.WriteString(rule + "\n")
	b.WriteString(loc.Name + "\n")
	b.WriteString(eng.Clock.String() + "\n")
	b.WriteString("Weather: " + string(weather) + "\n")
	b.WriteString("Health: " + eng.Vehicle.PassengerHealth().String() + "\n")
	b.WriteString("Crossing By: " + f.Data.Crossing.String() + "\n")
	b.WriteString("River width: " + feet(f.Data.Width) + "\n")
	b.WriteString("River crossed: " + feet(f.crossed) + "\n")
	b.WriteString(rule + "\n")
	if f.finished {
		b.WriteString(PressEnter)
	}
	return b.String()
}

func (f *crossingResult) OnTick(systemTick bool) error {
	if systemTick || f.finished {
		return nil
	}
	eng := f.Data.Eng
	width := f.Data.Width

	f.frame = f.bar.Step()
	f.crossed += dice.Between(eng.Rand, 1, width/4)
	if f.crossed >= width {
		f.crossed = width
		f.finished = true
		return nil
	}

	halfway := f.crossed >= width/2
	switch f.Data.Crossing {
	case Ford:
		if f.Data.Depth > washOutDepth && !f.forced && halfway {
			f.forced = true
			return eng.Director.TriggerByName(eng.Vehicle, events.VehicleWashOut)
		}
		_, err := eng.Director.TriggerByCategory(eng.Vehicle, director.RiverCross)
		return err
	case Float:
		if f.Data.Depth > floodDepth && !f.forced && halfway && eng.Rand.Bool() {
			f.forced = true
			return eng.Director.TriggerByName(eng.Vehicle, events.VehicleFloods)
		}
	case Ferry, Guide:
		_, err := eng.Director.TriggerByCategory(eng.Vehicle, director.RiverCross)
		return err
	}
	return nil
}

// OnInput is ignored until the far bank is reached. Then the crossing
// costs a day and the party returns to the trail.
func (f *crossingResult) OnInput(string) error {
	if !f.finished {
		return nil
	}
	eng := f.Data.Eng
	if err := f.Close(); err != nil {
		return err
	}
	return eng.TakeTurn()
}
