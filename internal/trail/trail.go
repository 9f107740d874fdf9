// Package trail holds the ordered list of locations the party travels
// through and decides when the next one has been reached.
package trail

import (
	_ "embed"
	"fmt"

	"gopkg.in/yaml.v3"

	"github.com/tatianab/trail-game/internal/models"
)

//go:embed oregon.yaml
var oregonTrail []byte

// Catalog is the on-disk shape of a trail definition.
type Catalog struct {
	Name      string             `yaml:"name"`
	Locations []*models.Location `yaml:"locations"`
}

// Trail tracks progress along a route. Distance values are cumulative miles
// from the first location.
type Trail struct {
	Name      string
	locations []*models.Location
	index     int
}

// Default parses the built-in Oregon route.
func Default() (*Trail, error) {
	return Parse(oregonTrail)
}

// Parse loads a trail from yaml and validates every location.
func Parse(data []byte) (*Trail, error) {
	var cat Catalog
	if err := yaml.Unmarshal(data, &cat); err != nil {
		return nil, fmt.Errorf("parse trail: %w", err)
	}
	return New(cat.Name, cat.Locations)
}

// New builds a trail from locations. The first location is the start and
// is marked arrived.
func New(name string, locations []*models.Location) (*Trail, error) {
	if len(locations) == 0 {
		return nil, fmt.Errorf("trail %q has no locations", name)
	}
	for _, loc := range locations {
		if err := loc.Validate(); err != nil {
			return nil, fmt.Errorf("trail %q: %w", name, err)
		}
	}
	t := &Trail{Name: name, locations: locations}
	t.Reset()
	return t, nil
}

// Reset puts the party back at the first location.
func (t *Trail) Reset() {
	for i, loc := range t.locations {
		loc.Status = models.Unreached
		loc.Last = i == len(t.locations)-1
	}
	t.index = 0
	t.locations[0].Status = models.Arrived
}

// Locations returns the route in order.
func (t *Trail) Locations() []*models.Location { return t.locations }

// Current is the last location reached.
func (t *Trail) Current() *models.Location { return t.locations[t.index] }

// Next is the location being traveled toward, or nil at the end.
func (t *Trail) Next() *models.Location {
	if t.index+1 >= len(t.locations) {
		return nil
	}
	return t.locations[t.index+1]
}

// milesTo returns the cumulative distance from the start to location i.
func (t *Trail) milesTo(i int) int {
	total := 0
	for _, loc := range t.locations[1 : i+1] {
		total += loc.Distance
	}
	return total
}

// Length is the total miles of the route.
func (t *Trail) Length() int { return t.milesTo(len(t.locations) - 1) }

// DistanceToNext returns how many miles remain before the next location.
func (t *Trail) DistanceToNext(traveled int) int {
	if t.Next() == nil {
		return 0
	}
	left := t.milesTo(t.index+1) - traveled
	if left < 0 {
		return 0
	}
	return left
}

// CheckArrival advances to the next location if traveled has reached it.
// It returns the location reached, or nil.
func (t *Trail) CheckArrival(traveled int) *models.Location {
	next := t.Next()
	if next == nil || traveled < t.milesTo(t.index+1) {
		return nil
	}
	t.Current().Status = models.Departed
	t.index++
	next.Status = models.Arrived
	return next
}

// ChooseFork splices the chosen branch of the current fork in as the next
// location. The branch replaces the distance the fork would have used.
func (t *Trail) ChooseFork(choice int) (*models.Location, error) {
	fork := t.Current()
	if fork.Category != models.ForkInRoad {
		return nil, fmt.Errorf("%s is not a fork in the road", fork.Name)
	}
	if choice < 0 || choice >= len(fork.Choices) {
		return nil, fmt.Errorf("fork %s has no choice %d", fork.Name, choice)
	}
	branch := fork.Choices[choice]

	rest := append([]*models.Location{branch}, t.locations[t.index+1:]...)
	t.locations = append(t.locations[:t.index+1], rest...)
	fork.Choices = nil
	return branch, nil
}
