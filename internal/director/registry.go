package director

import (
	"errors"
	"fmt"

	"github.com/tatianab/trail-game/internal/dice"
)

var (
	ErrNoEligibleEvents = errors.New("no automatic events registered")
	ErrUnknownEvent     = errors.New("unknown event")
)

// Descriptor registers one concrete event under a category.
type Descriptor struct {
	Name     string
	Category Category
	Mode     Mode
	New      func() Event

	// RollChance and RollCount describe the event in the catalog. The
	// director does not read them; category rolls use a fixed 1 in 100.
	RollChance float64
	RollCount  int
}

// Registry maps categories to their event descriptors. It is built once
// at startup and not modified afterwards.
type Registry struct {
	byCategory map[Category][]Descriptor
	byName     map[string]Descriptor
}

// NewRegistry validates and indexes descs. Every category that has
// descriptors must have at least one Automatic one.
func NewRegistry(descs ...Descriptor) (*Registry, error) {
	r := &Registry{
		byCategory: make(map[Category][]Descriptor),
		byName:     make(map[string]Descriptor),
	}
	for _, d := range descs {
		if d.Name == "" || d.New == nil {
			return nil, fmt.Errorf("event descriptor %q is incomplete", d.Name)
		}
		if _, dup := r.byName[d.Name]; dup {
			return nil, fmt.Errorf("event %q registered twice", d.Name)
		}
		r.byName[d.Name] = d
		r.byCategory[d.Category] = append(r.byCategory[d.Category], d)
	}
	for c := range r.byCategory {
		if len(r.Automatic(c)) == 0 {
			return nil, fmt.Errorf("category %s: %w", c, ErrNoEligibleEvents)
		}
	}
	return r, nil
}

// Automatic returns the descriptors of c that a category roll may pick,
// in registration order.
func (r *Registry) Automatic(c Category) []Descriptor {
	var out []Descriptor
	for _, d := range r.byCategory[c] {
		if d.Mode == Automatic {
			out = append(out, d)
		}
	}
	return out
}

// Lookup finds a descriptor by event name regardless of mode.
func (r *Registry) Lookup(name string) (Descriptor, bool) {
	d, ok := r.byName[name]
	return d, ok
}

// Select picks one Automatic descriptor of c uniformly. ManualOnly
// descriptors are never candidates.
func (r *Registry) Select(src dice.Source, c Category) (Descriptor, error) {
	pool := r.Automatic(c)
	if len(pool) == 0 {
		return Descriptor{}, fmt.Errorf("category %s: %w", c, ErrNoEligibleEvents)
	}
	return pool[src.IntN(len(pool))], nil
}
