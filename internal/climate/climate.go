// Package climate rolls the daily weather for the location the party is at.
package climate

import (
	"time"

	"github.com/tatianab/trail-game/internal/dice"
	"github.com/tatianab/trail-game/internal/models"
)

// Classification of a region's climate.
const (
	Moderate    = "moderate"
	Continental = "continental"
	Dry         = "dry"
	Polar       = "polar"
)

// monthly average temperature (F) for a moderate climate, January first.
var moderateAverages = [12]int{30, 34, 42, 52, 62, 71, 76, 74, 66, 55, 43, 33}

type profile struct {
	offset     int
	rainChance int
}

var profiles = map[string]profile{
	Moderate:    {offset: 0, rainChance: 25},
	Continental: {offset: -6, rainChance: 18},
	Dry:         {offset: 4, rainChance: 8},
	Polar:       {offset: -20, rainChance: 15},
}

// Sim keeps the last rolled temperature and weather.
type Sim struct {
	rand dice.Source

	Temperature int
	Condition   models.Weather
}

// New returns a climate simulation drawing from r.
func New(r dice.Source) *Sim {
	return &Sim{rand: r, Condition: models.Clear}
}

// Tick rolls today's weather for loc and stores it on the location.
func (s *Sim) Tick(month time.Month, loc *models.Location) models.Weather {
	p, ok := profiles[loc.Climate]
	if !ok {
		p = profiles[Moderate]
	}

	s.Temperature = moderateAverages[month-1] + p.offset + dice.Between(s.rand, -10, 11)

	roll := s.rand.IntN(100)
	var w models.Weather
	switch {
	case roll < p.rainChance && s.Temperature <= 32 && roll < 3:
		w = models.Blizzard
	case roll < p.rainChance && s.Temperature <= 32:
		w = models.Snow
	case roll < p.rainChance:
		w = models.Rain
	case s.Temperature >= 90:
		w = models.Hot
	case s.Temperature <= 20:
		w = models.Cold
	case roll >= 95:
		w = models.Fog
	case roll >= 70:
		w = models.Cloudy
	default:
		w = models.Clear
	}

	s.Condition = w
	loc.Weather = w
	return w
}
