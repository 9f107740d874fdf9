package models

import "fmt"

// LocationCategory decides which window opens when a location is reached.
type LocationCategory string

const (
	Landmark      LocationCategory = "landmark"
	Settlement    LocationCategory = "settlement"
	RiverCrossing LocationCategory = "river"
	ForkInRoad    LocationCategory = "fork"
)

// LocationStatus tracks whether the party has been to a location.
type LocationStatus int

const (
	Unreached LocationStatus = iota
	Arrived
	Departed
)

// Weather is the condition a location is experiencing today.
type Weather string

const (
	Clear    Weather = "clear"
	Cloudy   Weather = "cloudy"
	Rain     Weather = "rainy"
	Snow     Weather = "snowy"
	Hot      Weather = "very hot"
	Cold     Weather = "cold"
	Fog      Weather = "foggy"
	Blizzard Weather = "blizzard"
)

// Severe reports whether the weather can trigger weather events.
func (w Weather) Severe() bool {
	return w == Snow || w == Blizzard || w == Hot || w == Fog
}

// RiverOption is the set of crossing choices a river offers.
type RiverOption string

const (
	RiverNone    RiverOption = ""
	FloatAndFord RiverOption = "float_and_ford"
	FerryOption  RiverOption = "ferry"
	GuideOption  RiverOption = "guide"
)

// Location is one point of interest on the trail.
type Location struct {
	Name        string           `yaml:"name"`
	Category    LocationCategory `yaml:"category"`
	Description string           `yaml:"description,omitempty"`
	Climate     string           `yaml:"climate,omitempty"`
	// Distance is the miles from the previous location to this one.
	Distance int         `yaml:"distance"`
	River    RiverOption `yaml:"river,omitempty"`
	Choices  []*Location `yaml:"choices,omitempty"`

	Status  LocationStatus `yaml:"-"`
	Weather Weather        `yaml:"-"`
	Last    bool           `yaml:"-"`
}

func (l *Location) EntityKind() EntityKind { return KindLocation }
func (l *Location) EntityName() string     { return l.Name }

// ShoppingAllowed reports whether a store is open here.
func (l *Location) ShoppingAllowed() bool { return l.Category == Settlement }

// ChattingAllowed reports whether there is anyone to talk to.
func (l *Location) ChattingAllowed() bool { return l.Category == Settlement }

// Validate rejects locations that could never be played.
func (l *Location) Validate() error {
	switch l.Category {
	case Landmark, Settlement:
	case RiverCrossing:
		if l.River == RiverNone {
			return fmt.Errorf("location %q: river crossing without a river option", l.Name)
		}
	case ForkInRoad:
		if len(l.Choices) < 2 {
			return fmt.Errorf("location %q: fork needs at least two choices", l.Name)
		}
		for _, c := range l.Choices {
			if err := c.Validate(); err != nil {
				return err
			}
		}
	default:
		return fmt.Errorf("location %q: unknown category %q", l.Name, l.Category)
	}
	if l.Distance < 0 {
		return fmt.Errorf("location %q: negative distance", l.Name)
	}
	return nil
}
