// Package engine is the simulation context. It owns the clock, climate,
// trail, vehicle, event director and window stack, and wires the day-end
// pipeline between them.
package engine

import (
	"errors"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/tatianab/trail-game/internal/climate"
	"github.com/tatianab/trail-game/internal/clock"
	"github.com/tatianab/trail-game/internal/dice"
	"github.com/tatianab/trail-game/internal/director"
	"github.com/tatianab/trail-game/internal/events"
	"github.com/tatianab/trail-game/internal/models"
	"github.com/tatianab/trail-game/internal/trail"
	"github.com/tatianab/trail-game/internal/window"
)

// Starting date of every game. StartGame moves it to the chosen month.
const (
	StartYear  = 1848
	StartMonth = time.March
	StartDay   = 1
)

// DefaultLogicalEvery is how many system ticks make one logical tick.
const DefaultLogicalEvery = 10

var tickerPhases = []string{"|", "/", "-", "\\"}

// Options configures New. Zero values select the built-in content and a
// seed of zero.
type Options struct {
	Seed uint64
	// Rand overrides Seed.
	Rand     dice.Source
	Trail    *trail.Trail
	Registry *director.Registry
	// LogicalEvery is the number of system ticks per logical tick.
	LogicalEvery int
	Log          *slog.Logger
}

// Engine holds every simulation component. There is one per game process;
// it is passed explicitly to whatever needs it.
type Engine struct {
	log *slog.Logger

	Rand     dice.Source
	Clock    *clock.Clock
	Climate  *climate.Sim
	Trail    *trail.Trail
	Vehicle  *models.Vehicle
	Director *director.Director
	Windows  *window.Manager
	Journal  *models.Journal
	Info     *models.NewGameInfo

	arrival  []func(loc *models.Location) error
	gameOver []func(r Result)

	logicalEvery int
	ticks        int
	finished     bool
	over         bool
	result       Result
	done         bool
}

// New builds an engine with an empty window stack. Windows must be
// registered on e.Windows before Begin is called.
func New(opts Options) (*Engine, error) {
	log := opts.Log
	if log == nil {
		log = slog.Default()
	}
	r := opts.Rand
	if r == nil {
		r = dice.New(opts.Seed)
	}
	t := opts.Trail
	if t == nil {
		var err error
		if t, err = trail.Default(); err != nil {
			return nil, err
		}
	}
	reg := opts.Registry
	if reg == nil {
		var err error
		if reg, err = events.Registry(); err != nil {
			return nil, err
		}
	}
	every := opts.LogicalEvery
	if every <= 0 {
		every = DefaultLogicalEvery
	}

	e := &Engine{
		log:          log,
		Rand:         r,
		Clock:        clock.New(StartYear, StartMonth, StartDay, models.Paused),
		Climate:      climate.New(r),
		Trail:        t,
		Vehicle:      models.NewVehicle(),
		Windows:      window.NewManager(log),
		Journal:      &models.Journal{},
		logicalEvery: every,
	}
	e.Director = director.New(reg, &director.Env{Rand: r}, e.Windows, log)
	e.Director.Subscribe(func(o director.Outcome) {
		e.Journal.Add(e.Clock.String(), oneLine(o.Text))
	})

	stages := []struct {
		name string
		fn   clock.DayFunc
	}{
		{"climate", e.updateClimate},
		{"vehicle", e.updateVehicle},
		{"arrival", e.checkArrival},
		{"distance", e.accumulateDistance},
	}
	for _, s := range stages {
		e.Clock.OnDayEnd(func(day int) error {
			e.log.Debug("day end", "day", day, "stage", s.name)
			return s.fn(day)
		})
	}
	e.Clock.OnPaceChange(func(p models.Pace) {
		e.log.Debug("pace changed", "pace", p.String())
	})
	return e, nil
}

// Close releases the window stack.
func (e *Engine) Close() {
	e.Windows.Clear()
}

// Begin clears the stack and opens the new game window.
func (e *Engine) Begin() error {
	e.Windows.Clear()
	e.over = false
	e.finished = false
	e.result = Result{}
	return e.Windows.Push(window.NewGame)
}

// StartGame consumes a new-game bundle: it resets the vehicle with the
// starting funds, seats the party with the first name as leader and moves
// the clock to the starting month.
func (e *Engine) StartGame(info *models.NewGameInfo) error {
	if err := info.Validate(); err != nil {
		return err
	}
	funds := info.StartingFunds
	if funds == 0 {
		if p, ok := models.LookupProfession(info.Profession); ok {
			funds = p.Funds
		}
	}

	e.Vehicle.Reset(funds)
	for i, name := range info.PlayerNames {
		e.Vehicle.AddPerson(models.NewPerson(info.Profession, name, i == 0))
	}

	e.Clock.Reset(StartYear, StartMonth, StartDay)
	if info.StartingMonth != 0 {
		e.Clock.SetMonth(info.StartingMonth)
	}
	e.Clock.SetPace(models.Steady)
	e.Trail.Reset()
	e.Journal = &models.Journal{}
	e.Info = info
	e.finished = false
	e.over = false
	e.result = Result{}

	e.Journal.Add(e.Clock.String(), fmt.Sprintf("The %s party of %s leaves %s.",
		info.Profession, strings.Join(info.PlayerNames, ", "), e.Trail.Current().Name))
	e.log.Info("game started", "id", info.ID, "profession", string(info.Profession), "party", len(info.PlayerNames), "funds", funds)
	return nil
}

// TakeTurn advances the simulation one day and then checks whether the
// game has ended.
func (e *Engine) TakeTurn() error {
	if e.over {
		return nil
	}
	if err := e.Clock.TakeTurn(); err != nil {
		return err
	}
	return e.checkGameOver()
}

// OnArrival adds a subscriber run when the party reaches a location.
func (e *Engine) OnArrival(fn func(loc *models.Location) error) {
	e.arrival = append(e.arrival, fn)
}

// OnGameOver adds a subscriber run once when the game ends.
func (e *Engine) OnGameOver(fn func(r Result)) {
	e.gameOver = append(e.gameOver, fn)
}

// Result returns the outcome of a finished game.
func (e *Engine) Result() Result { return e.result }

// Over reports whether the current game has ended.
func (e *Engine) Over() bool { return e.over }

// Quit asks the host loop to exit.
func (e *Engine) Quit() { e.done = true }

// Done reports whether Quit was called.
func (e *Engine) Done() bool { return e.done }

// SendInput hands one line to the active window.
func (e *Engine) SendInput(line string) error {
	return e.Windows.DispatchInput(line)
}

// Tick dispatches one tick to the active window.
func (e *Engine) Tick(systemTick bool) error {
	return e.Windows.DispatchTick(systemTick)
}

// Pulse is called by the host loop on every system tick. Every
// LogicalEvery pulses it also dispatches a logical tick.
func (e *Engine) Pulse() error {
	e.ticks++
	if err := e.Tick(true); err != nil {
		return err
	}
	if e.ticks%e.logicalEvery == 0 {
		return e.Tick(false)
	}
	return nil
}

// StatusLine shows the ticker, the active window and form, and the turn
// count.
func (e *Engine) StatusLine() string {
	phase := tickerPhases[e.ticks%len(tickerPhases)]
	mode := "NONE"
	if top := e.Windows.Top(); top != nil {
		form := string(top.FormTag())
		if form == "" {
			form = "NO FORM"
		}
		mode = fmt.Sprintf("%s(%s)", top.Tag(), form)
	}
	return fmt.Sprintf("[ %s ] - Window: %s - Turns: %04d", phase, mode, e.Clock.Turns())
}

// Render returns the status line followed by the active window's frame.
func (e *Engine) Render() string {
	return e.StatusLine() + "\n" + e.Windows.Render()
}

func (e *Engine) updateClimate(int) error {
	w := e.Climate.Tick(e.Clock.Date().Month(), e.Trail.Current())
	if !w.Severe() {
		return nil
	}
	_, err := e.Director.TriggerByCategory(e.Vehicle, director.Weather)
	return err
}

func (e *Engine) updateVehicle(int) error {
	e.Vehicle.Update(e.Clock.Pace())
	if e.Vehicle.Status == models.Moving {
		for _, c := range []director.Category{director.Vehicle, director.Wild} {
			if _, err := e.Director.TriggerByCategory(e.Vehicle, c); err != nil {
				return err
			}
		}
	}
	for _, p := range e.Vehicle.Living() {
		if _, err := e.Director.TriggerByCategory(p, director.Person); err != nil {
			return err
		}
	}
	return nil
}

func (e *Engine) checkArrival(int) error {
	loc := e.Trail.CheckArrival(e.Vehicle.DistanceTraveled)
	if loc == nil {
		return nil
	}
	e.Journal.Add(e.Clock.String(), "Arrived at "+loc.Name+".")
	e.log.Info("arrived", "location", loc.Name, "category", string(loc.Category), "miles", e.Vehicle.DistanceTraveled)
	if loc.Last {
		e.finished = true
	}
	for _, fn := range e.arrival {
		if err := fn(loc); err != nil {
			return fmt.Errorf("arrival at %s: %w", loc.Name, err)
		}
	}
	return nil
}

func (e *Engine) accumulateDistance(int) error {
	e.Vehicle.DistanceTraveled += e.Vehicle.Mileage
	if total := e.Trail.Length(); e.Vehicle.DistanceTraveled > total {
		e.Vehicle.DistanceTraveled = total
	}
	return nil
}

func (e *Engine) checkGameOver() error {
	leader := e.Vehicle.Leader()
	switch {
	case e.finished:
		e.result = e.buildResult(true, "made it to "+e.Trail.Current().Name)
	case leader == nil || !leader.Alive():
		e.result = e.buildResult(false, "the party leader has died")
	case len(e.Vehicle.Living()) == 0:
		e.result = e.buildResult(false, "everyone in the party has died")
	default:
		return nil
	}

	e.over = true
	e.Journal.Add(e.Clock.String(), "The journey is over: "+e.result.Reason+".")
	e.log.Info("game over", "win", e.result.Win, "reason", e.result.Reason, "points", e.result.Points, "days", e.result.Days)

	if err := e.Windows.Push(window.GameOver); err != nil {
		return err
	}
	for _, fn := range e.gameOver {
		fn(e.result)
	}
	return nil
}

// ErrNotStarted is returned by operations that need a game in progress.
var ErrNotStarted = errors.New("no game in progress")

// SaveJournal writes the journal next to the new-game bundle.
func (e *Engine) SaveJournal() error {
	if e.Info == nil {
		return ErrNotStarted
	}
	return e.Journal.Save(e.Info.ID)
}

func oneLine(s string) string {
	return strings.Join(strings.Fields(s), " ")
}
