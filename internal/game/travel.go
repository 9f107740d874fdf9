package game

import (
	"fmt"
	"strings"

	"github.com/tatianab/trail-game/internal/engine"
	"github.com/tatianab/trail-game/internal/models"
	"github.com/tatianab/trail-game/internal/window"
)

// Travel forms.
const (
	CommandMenu    window.FormTag = "CommandMenu"
	Drive          window.FormTag = "Drive"
	LocationArrive window.FormTag = "LocationArrive"
	VehicleStuck   window.FormTag = "VehicleStuck"
)

// TravelInfo is the shared context of the travel window.
type TravelInfo struct {
	Eng *engine.Engine
	// Message is shown once above the command menu.
	Message string
}

func travelWindow(eng *engine.Engine) window.Factory {
	return func() window.Spec {
		return window.Spec{
			Data: &TravelInfo{Eng: eng},
			Forms: map[window.FormTag]window.FormFunc{
				CommandMenu:    newCommandMenu,
				Drive:          newDrive,
				LocationArrive: newLocationArrive,
				VehicleStuck:   newVehicleStuck,
			},
			Initial: CommandMenu,
		}
	}
}

// command is a labeled menu entry.
type command struct {
	label string
	run   func() error
}

type commandMenu struct {
	window.Base[TravelInfo]
	commands []command
}

func newCommandMenu(w *window.Window) window.Form {
	return &commandMenu{Base: window.Bind[TravelInfo](w)}
}

func (f *commandMenu) OnPostCreate() error {
	eng := f.Data.Eng
	if eng.Vehicle.Status == models.Moving {
		eng.Vehicle.Status = models.Stopped
	}

	f.commands = []command{
		{"Continue on trail", f.continueOn},
		{"Check supplies", func() error { return f.SetState(newSuppliesState(f.Base)) }},
		{"Look at map", func() error { return f.SetState(newMapState(f.Base)) }},
		{"Change pace", func() error { return f.SetState(newPaceState(f.Base)) }},
		{"Change food rations", func() error { return f.SetState(newRationState(f.Base)) }},
		{"Stop to rest", func() error { return f.SetState(newRestState(f.Base)) }},
		{"Attempt to trade", func() error { return f.PushWindow(window.Trade) }},
		{"Hunt for food", f.hunt},
	}
	if eng.Trail.Current().ShoppingAllowed() {
		f.commands = append(f.commands, command{"Buy supplies", func() error { return f.PushWindow(window.Store) }})
	}
	return nil
}

func (f *commandMenu) Render() string {
	var b strings.Builder
	b.WriteString(statusBlock(f.Data.Eng))
	if f.Data.Message != "" {
		b.WriteString(f.Data.Message + "\n")
	}
	labels := make([]string, len(f.commands))
	for i, c := range f.commands {
		labels[i] = c.label
	}
	b.WriteString(menu("You may:", labels))
	return b.String()
}

func (f *commandMenu) OnInput(line string) error {
	c := choice(line, len(f.commands))
	if c == 0 {
		return nil
	}
	f.Data.Message = ""
	return f.commands[c-1].run()
}

func (f *commandMenu) continueOn() error {
	if f.Data.Eng.Vehicle.Inventory.Quantity(models.Oxen) == 0 {
		return f.SetForm(VehicleStuck)
	}
	return f.SetForm(Drive)
}

func (f *commandMenu) hunt() error {
	if f.Data.Eng.Vehicle.Inventory.Quantity(models.Ammo) == 0 {
		f.Data.Message = "You have no bullets to hunt with."
		return nil
	}
	return f.PushWindow(window.Hunt)
}

// drive advances one day per logical tick until the player stops or the
// travel window's form is replaced by an arrival.
type drive struct {
	window.Base[TravelInfo]
	bar   *marquee
	frame string
}

func newDrive(w *window.Window) window.Form {
	bar := newMarquee(12)
	return &drive{Base: window.Bind[TravelInfo](w), bar: bar, frame: bar.String()}
}

func (f *drive) OnPostCreate() error {
	eng := f.Data.Eng
	if eng.Clock.Pace() == models.Paused {
		eng.Clock.SetPace(models.Steady)
	}
	eng.Vehicle.Status = models.Moving
	return nil
}

func (f *drive) Render() string {
	eng := f.Data.Eng
	var b strings.Builder
	b.WriteString(f.frame + "\n")
	b.WriteString(rule + "\n")
	b.WriteString("Date: " + eng.Clock.String() + "\n")
	if eng.Trail.Current().Weather != "" {
		b.WriteString("Weather: " + string(eng.Trail.Current().Weather) + "\n")
	}
	b.WriteString("Health: " + eng.Vehicle.PassengerHealth().String() + "\n")
	b.WriteString("Food: " + numbers.Sprintf("%d pounds", eng.Vehicle.Inventory.Quantity(models.Food)) + "\n")
	if next := eng.Trail.Next(); next != nil {
		b.WriteString("Next landmark: " + miles(eng.Trail.DistanceToNext(eng.Vehicle.DistanceTraveled)) + "\n")
	}
	b.WriteString("Miles traveled: " + miles(eng.Vehicle.DistanceTraveled) + "\n")
	b.WriteString(rule + "\n")
	b.WriteString("Press ENTER to size up the situation")
	return b.String()
}

func (f *drive) OnTick(systemTick bool) error {
	if systemTick {
		f.frame = f.bar.Step()
		return nil
	}
	eng := f.Data.Eng
	if err := eng.TakeTurn(); err != nil {
		return err
	}
	// An arrival replaced this form during the turn.
	if f.Window().Form() != window.Form(f) {
		return nil
	}
	if eng.Vehicle.Status == models.Disabled {
		return f.SetForm(VehicleStuck)
	}
	return nil
}

func (f *drive) OnInput(string) error {
	return f.SetForm(CommandMenu)
}

// locationArrive tells the player where they are. Rivers and forks skip
// the question and open their window straight away.
type locationArrive struct {
	window.Base[TravelInfo]
	loc *models.Location
}

func newLocationArrive(w *window.Window) window.Form {
	return &locationArrive{Base: window.Bind[TravelInfo](w)}
}

func (f *locationArrive) OnPostCreate() error {
	f.loc = f.Data.Eng.Trail.Current()
	f.Data.Eng.Vehicle.Status = models.Stopped
	return nil
}

func (f *locationArrive) forced() window.Tag {
	switch f.loc.Category {
	case models.RiverCrossing:
		return window.RiverCrossing
	case models.ForkInRoad:
		return window.ForkInRoad
	}
	return 0
}

func (f *locationArrive) Render() string {
	if f.forced() != 0 {
		return fmt.Sprintf("You are now at the %s.\n%s", f.loc.Name, PressEnter)
	}
	return fmt.Sprintf("You are now at %s.\nWould you like to look around? Y/N", f.loc.Name)
}

func (f *locationArrive) OnTick(systemTick bool) error {
	if systemTick || f.forced() == 0 {
		return nil
	}
	return f.proceed(f.forced())
}

func (f *locationArrive) OnInput(line string) error {
	if tag := f.forced(); tag != 0 {
		return f.proceed(tag)
	}
	if !yes(line) {
		return f.SetForm(Drive)
	}
	tag := window.Landmark
	if f.loc.Category == models.Settlement {
		tag = window.Settlement
	}
	return f.proceed(tag)
}

// proceed returns the travel window to its menu and opens tag over it.
func (f *locationArrive) proceed(tag window.Tag) error {
	if err := f.SetForm(CommandMenu); err != nil {
		return err
	}
	return f.PushWindow(tag)
}

type vehicleStuck struct {
	window.Base[TravelInfo]
}

func newVehicleStuck(w *window.Window) window.Form {
	return &vehicleStuck{Base: window.Bind[TravelInfo](w)}
}

func (f *vehicleStuck) OnPostCreate() error {
	f.Data.Eng.Vehicle.Status = models.Disabled
	return nil
}

func (f *vehicleStuck) Render() string {
	return "You must trade for an ox\nto be able to continue.\n\n" + PressEnter
}

func (f *vehicleStuck) OnInput(string) error {
	return f.SetForm(CommandMenu)
}
