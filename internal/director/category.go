package director

import "fmt"

// Category scopes which events are eligible for automatic triggering.
type Category int

const (
	Person Category = iota + 1
	Vehicle
	RiverCross
	Weather
	Wild
)

var categoryNames = map[Category]string{
	Person:     "person",
	Vehicle:    "vehicle",
	RiverCross: "river_cross",
	Weather:    "weather",
	Wild:       "wild",
}

func (c Category) String() string {
	if n, ok := categoryNames[c]; ok {
		return n
	}
	return fmt.Sprintf("category(%d)", int(c))
}

// ParseCategory maps a catalog name onto a Category.
func ParseCategory(s string) (Category, error) {
	for c, n := range categoryNames {
		if n == s {
			return c, nil
		}
	}
	return 0, fmt.Errorf("unknown event category %q", s)
}

// Mode restricts how an event may be triggered.
type Mode int

const (
	// Automatic events may be picked by a category roll.
	Automatic Mode = iota
	// ManualOnly events fire only when triggered by name.
	ManualOnly
)

func (m Mode) String() string {
	if m == ManualOnly {
		return "manual_only"
	}
	return "automatic"
}

// ParseMode maps a catalog name onto a Mode. The empty string is Automatic.
func ParseMode(s string) (Mode, error) {
	switch s {
	case "", "automatic":
		return Automatic, nil
	case "manual_only":
		return ManualOnly, nil
	}
	return 0, fmt.Errorf("unknown execution mode %q", s)
}
