// Package events holds the concrete director events and the catalog that
// registers them.
//
// Four families implement director.Event: mileage loss, item destroyer,
// person injury and derelict discovery. Each catalog entry names its
// family with "kind" and carries that family's parameters.
package events

import (
	_ "embed"
	"fmt"

	"gopkg.in/yaml.v3"

	"github.com/tatianab/trail-game/internal/director"
	"github.com/tatianab/trail-game/internal/models"
)

//go:embed events.yaml
var builtin []byte

// Well known event names triggered by name.
const (
	VehicleFloods  = "vehicle_floods"
	VehicleWashOut = "vehicle_wash_out"
)

// Definition is one catalog entry.
type Definition struct {
	Name       string  `yaml:"name"`
	Kind       string  `yaml:"kind"`
	Category   string  `yaml:"category"`
	Mode       string  `yaml:"mode,omitempty"`
	RollChance float64 `yaml:"roll_chance"`
	RollCount  int     `yaml:"roll_count"`

	Text   string `yaml:"text,omitempty"`
	Intro  string `yaml:"intro,omitempty"`
	Miles  int    `yaml:"miles,omitempty"`
	Damage int    `yaml:"damage,omitempty"`

	MaxPercent int    `yaml:"max_percent,omitempty"`
	KillVerb   string `yaml:"kill_verb,omitempty"`
	KillOneIn  int    `yaml:"kill_one_in,omitempty"`

	Injury   string `yaml:"injury,omitempty"`
	Infected bool   `yaml:"infected,omitempty"`

	Food            int  `yaml:"food,omitempty"`
	ContainsFood    bool `yaml:"contains_food,omitempty"`
	ContainsDisease bool `yaml:"contains_disease,omitempty"`
}

type catalog struct {
	Events []Definition `yaml:"events"`
}

var builders = map[string]func(d Definition) func() director.Event{
	"mileage": func(d Definition) func() director.Event {
		return func() director.Event {
			return &MileageLoss{name: d.Name, text: d.Text, miles: d.Miles, damage: d.Damage}
		}
	},
	"destroyer": func(d Definition) func() director.Event {
		return func() director.Event {
			return &ItemDestroyer{
				name:       d.Name,
				intro:      d.Intro,
				miles:      d.Miles,
				maxPercent: d.MaxPercent,
				killVerb:   d.KillVerb,
				killOneIn:  d.KillOneIn,
			}
		}
	},
	"injury": func(d Definition) func() director.Event {
		return func() director.Event {
			return &Injury{name: d.Name, text: d.Text, injury: models.Injury(d.Injury), infected: d.Infected, damage: d.Damage}
		}
	},
	"derelict": func(d Definition) func() director.Event {
		return func() director.Event {
			return &Derelict{name: d.Name, text: d.Text, food: d.Food, containsFood: d.ContainsFood, containsDisease: d.ContainsDisease}
		}
	},
}

// Descriptors converts catalog entries into registry descriptors.
func Descriptors(defs []Definition) ([]director.Descriptor, error) {
	out := make([]director.Descriptor, 0, len(defs))
	for _, d := range defs {
		build, ok := builders[d.Kind]
		if !ok {
			return nil, fmt.Errorf("event %q: unknown kind %q", d.Name, d.Kind)
		}
		c, err := director.ParseCategory(d.Category)
		if err != nil {
			return nil, fmt.Errorf("event %q: %w", d.Name, err)
		}
		m, err := director.ParseMode(d.Mode)
		if err != nil {
			return nil, fmt.Errorf("event %q: %w", d.Name, err)
		}
		out = append(out, director.Descriptor{
			Name:       d.Name,
			Category:   c,
			Mode:       m,
			New:        build(d),
			RollChance: d.RollChance,
			RollCount:  d.RollCount,
		})
	}
	return out, nil
}

// Parse reads a catalog and builds a validated registry from it.
func Parse(data []byte) (*director.Registry, error) {
	var cat catalog
	if err := yaml.Unmarshal(data, &cat); err != nil {
		return nil, fmt.Errorf("parse events: %w", err)
	}
	descs, err := Descriptors(cat.Events)
	if err != nil {
		return nil, err
	}
	return director.NewRegistry(descs...)
}

// Registry builds the registry from the built-in catalog.
func Registry() (*director.Registry, error) {
	return Parse(builtin)
}
