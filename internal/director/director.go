// Package director decides whether random events fire and executes them
// against simulation entities.
package director

import (
	"errors"
	"fmt"
	"log/slog"

	"github.com/tatianab/trail-game/internal/dice"
	"github.com/tatianab/trail-game/internal/models"
	"github.com/tatianab/trail-game/internal/window"
)

// ErrEntityMismatch means an event received a target of the wrong kind.
// It is a registry wiring defect.
var ErrEntityMismatch = errors.New("event target has the wrong entity kind")

// TriggerOdds is the denominator of the fixed category roll: a category
// fires when a draw in [0, TriggerOdds) comes up zero.
const TriggerOdds = 100

// Env is what events may read and mutate beyond their target.
type Env struct {
	Rand dice.Source
}

// Event is one concrete, instantiable occurrence.
type Event interface {
	Name() string
	// Execute mutates target and returns text describing what happened.
	Execute(env *Env, target models.Entity) (string, error)
}

// Outcome is the record of one executed event.
type Outcome struct {
	Target models.Entity
	Event  Event
	Text   string
}

// Observer is told about every executed event after its mutation.
type Observer func(o Outcome)

// Pusher opens the window that shows an outcome.
type Pusher interface {
	Push(tag window.Tag) error
}

// Director rolls for and executes events.
type Director struct {
	registry  *Registry
	env       *Env
	windows   Pusher
	observers []Observer
	last      Outcome
	log       *slog.Logger
}

// New returns a director that pushes window.RandomEvent onto windows after
// each execution.
func New(registry *Registry, env *Env, windows Pusher, log *slog.Logger) *Director {
	if log == nil {
		log = slog.Default()
	}
	return &Director{
		registry: registry,
		env:      env,
		windows:  windows,
		log:      log,
	}
}

// Registry returns the event registry.
func (d *Director) Registry() *Registry { return d.registry }

// Subscribe adds an observer. Observers are called in the order added.
func (d *Director) Subscribe(o Observer) {
	d.observers = append(d.observers, o)
}

// Last returns the most recently executed outcome.
func (d *Director) Last() Outcome { return d.last }

// TriggerByCategory draws once from [0, 100). Only a zero fires: one
// Automatic event of c is then picked uniformly and executed against
// target. It reports whether an event fired.
func (d *Director) TriggerByCategory(target models.Entity, c Category) (bool, error) {
	if d.env.Rand.IntN(TriggerOdds) != 0 {
		return false, nil
	}
	desc, err := d.registry.Select(d.env.Rand, c)
	if err != nil {
		return false, err
	}
	d.log.Debug("event rolled", "category", c.String(), "event", desc.Name, "target", target.EntityName())
	return true, d.execute(target, desc.New())
}

// TriggerByName executes the named event without rolling. It is the only
// way a ManualOnly event fires; callers gate their own preconditions.
func (d *Director) TriggerByName(target models.Entity, name string) error {
	desc, ok := d.registry.Lookup(name)
	if !ok {
		return fmt.Errorf("trigger %q: %w", name, ErrUnknownEvent)
	}
	d.log.Debug("event forced", "event", desc.Name, "target", target.EntityName())
	return d.execute(target, desc.New())
}

func (d *Director) execute(target models.Entity, ev Event) error {
	text, err := ev.Execute(d.env, target)
	if err != nil {
		return fmt.Errorf("execute %s: %w", ev.Name(), err)
	}

	d.last = Outcome{Target: target, Event: ev, Text: text}
	if err := d.windows.Push(window.RandomEvent); err != nil {
		return err
	}
	for _, o := range d.observers {
		o(d.last)
	}
	return nil
}

// AsVehicle asserts that target is the vehicle.
func AsVehicle(target models.Entity) (*models.Vehicle, error) {
	v, ok := target.(*models.Vehicle)
	if !ok {
		return nil, fmt.Errorf("want vehicle, got %s: %w", kindOf(target), ErrEntityMismatch)
	}
	return v, nil
}

// AsPerson asserts that target is a party member.
func AsPerson(target models.Entity) (*models.Person, error) {
	p, ok := target.(*models.Person)
	if !ok {
		return nil, fmt.Errorf("want person, got %s: %w", kindOf(target), ErrEntityMismatch)
	}
	return p, nil
}

func kindOf(e models.Entity) string {
	if e == nil {
		return "nil"
	}
	return e.EntityKind().String()
}
