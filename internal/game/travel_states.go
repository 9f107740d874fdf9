package game

import (
	"strconv"
	"strings"

	"github.com/tatianab/trail-game/internal/models"
	"github.com/tatianab/trail-game/internal/window"
)

// suppliesState lists the inventory until any line is entered.
type suppliesState struct {
	window.Base[TravelInfo]
}

func newSuppliesState(b window.Base[TravelInfo]) window.State {
	return &suppliesState{Base: b}
}

func (s *suppliesState) Render() string {
	inv := s.Data.Eng.Vehicle.Inventory
	var b strings.Builder
	b.WriteString("Your Supplies\n")
	for _, kind := range models.ItemKinds {
		if kind == models.Cash {
			numbers.Fprintf(&b, "  %-20s %s\n", kind.DisplayName(), dollars(inv.Quantity(kind)))
			continue
		}
		numbers.Fprintf(&b, "  %-20s %d\n", kind.DisplayName(), inv.Quantity(kind))
	}
	b.WriteString("\n" + PressEnter)
	return b.String()
}

func (s *suppliesState) OnInput(string) error {
	s.ClearState()
	return nil
}

// mapState shows every location on the route and whether it was reached.
type mapState struct {
	window.Base[TravelInfo]
}

func newMapState(b window.Base[TravelInfo]) window.State {
	return &mapState{Base: b}
}

func (s *mapState) Render() string {
	eng := s.Data.Eng
	var b strings.Builder
	b.WriteString("Trail Map\n")
	for _, loc := range eng.Trail.Locations() {
		mark := " "
		switch loc.Status {
		case models.Arrived:
			mark = "*"
		case models.Departed:
			mark = "x"
		}
		b.WriteString("  [" + mark + "] " + loc.Name + "\n")
	}
	b.WriteString("\n" + miles(eng.Vehicle.DistanceTraveled) + " traveled of " + miles(eng.Trail.Length()) + "\n")
	b.WriteString(PressEnter)
	return b.String()
}

func (s *mapState) OnInput(string) error {
	s.ClearState()
	return nil
}

var paces = []models.Pace{models.Steady, models.Strenuous, models.Grueling}

type paceState struct {
	window.Base[TravelInfo]
}

func newPaceState(b window.Base[TravelInfo]) window.State {
	return &paceState{Base: b}
}

func (s *paceState) Render() string {
	labels := make([]string, len(paces))
	for i, p := range paces {
		labels[i] = p.String()
	}
	return menu("Change pace (currently \""+s.Data.Eng.Clock.Pace().String()+"\")", labels)
}

func (s *paceState) OnInput(line string) error {
	c := choice(line, len(paces))
	if c == 0 {
		return nil
	}
	s.Data.Eng.Clock.SetPace(paces[c-1])
	s.ClearState()
	return nil
}

var rations = []models.Ration{models.Filling, models.Meager, models.BareBones}

type rationState struct {
	window.Base[TravelInfo]
}

func newRationState(b window.Base[TravelInfo]) window.State {
	return &rationState{Base: b}
}

func (s *rationState) Render() string {
	labels := make([]string, len(rations))
	for i, r := range rations {
		labels[i] = r.String()
	}
	return menu("Change food rations (currently \""+s.Data.Eng.Vehicle.Ration.String()+"\")", labels)
}

func (s *rationState) OnInput(line string) error {
	c := choice(line, len(rations))
	if c == 0 {
		return nil
	}
	s.Data.Eng.Vehicle.Ration = rations[c-1]
	s.ClearState()
	return nil
}

// restState asks for a number of days and takes that many turns with the
// vehicle parked.
type restState struct {
	window.Base[TravelInfo]
}

func newRestState(b window.Base[TravelInfo]) window.State {
	return &restState{Base: b}
}

func (s *restState) Render() string {
	return "How many days would you like to rest? (1-9)"
}

func (s *restState) OnInput(line string) error {
	days, err := strconv.Atoi(strings.TrimSpace(line))
	if err != nil || days < 1 || days > 9 {
		return nil
	}
	eng := s.Data.Eng
	s.ClearState()
	for range days {
		eng.Vehicle.Status = models.Stopped
		if err := eng.TakeTurn(); err != nil {
			return err
		}
		if eng.Over() {
			break
		}
	}
	s.Data.Message = numbers.Sprintf("You rested for %d days.", days)
	return nil
}
