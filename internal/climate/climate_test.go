package climate

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/tatianab/trail-game/internal/dice"
	"github.com/tatianab/trail-game/internal/models"
)

func TestTick_RainInSpring(t *testing.T) {
	loc := &models.Location{Name: "Independence", Climate: Moderate}
	// temperature offset draw 10 -> +0, weather roll 0 -> rain
	s := New(&dice.Sequence{Ints: []int{10, 0}})

	w := s.Tick(time.May, loc)
	assert.Equal(t, models.Rain, w)
	assert.Equal(t, models.Rain, loc.Weather)
	assert.Equal(t, 62, s.Temperature)
}

func TestTick_SnowWhenFreezing(t *testing.T) {
	loc := &models.Location{Name: "South Pass", Climate: Polar}
	s := New(&dice.Sequence{Ints: []int{10, 10}})

	assert.Equal(t, models.Snow, s.Tick(time.January, loc))
}

func TestTick_UnknownClimateFallsBackToModerate(t *testing.T) {
	loc := &models.Location{Name: "Nowhere"}
	s := New(&dice.Sequence{Ints: []int{10, 50}})

	assert.Equal(t, models.Clear, s.Tick(time.May, loc))
}
