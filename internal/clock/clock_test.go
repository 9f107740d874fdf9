package clock

import (
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tatianab/trail-game/internal/models"
)

func TestClock_DayEndOrder(t *testing.T) {
	c := New(1848, time.March, 1, models.Steady)

	var calls []string
	for _, name := range []string{"climate", "vehicle", "arrival", "distance"} {
		c.OnDayEnd(func(int) error {
			calls = append(calls, name)
			return nil
		})
	}

	require.NoError(t, c.TakeTurn())
	assert.Equal(t, []string{"climate", "vehicle", "arrival", "distance"}, calls)
	assert.Equal(t, 1, c.Turns())
	assert.Equal(t, "March 2, 1848", c.String())
}

func TestClock_DayEndErrorStopsPipeline(t *testing.T) {
	c := New(1848, time.March, 1, models.Steady)
	boom := errors.New("boom")
	ran := false
	c.OnDayEnd(func(int) error { return boom })
	c.OnDayEnd(func(int) error {
		ran = true
		return nil
	})

	assert.ErrorIs(t, c.TakeTurn(), boom)
	assert.False(t, ran)
}

func TestClock_MonthAndYearEnd(t *testing.T) {
	c := New(1848, time.December, 30, models.Steady)

	var months []time.Month
	var years []int
	c.OnMonthEnd(func(m time.Month) { months = append(months, m) })
	c.OnYearEnd(func(y int) { years = append(years, y) })

	require.NoError(t, c.TakeTurn())
	assert.Empty(t, months)
	require.NoError(t, c.TakeTurn())
	assert.Equal(t, []time.Month{time.December}, months)
	assert.Equal(t, []int{1848}, years)
}

func TestClock_PaceChange(t *testing.T) {
	c := New(1848, time.March, 1, models.Paused)

	var got []models.Pace
	c.OnPaceChange(func(p models.Pace) { got = append(got, p) })

	c.SetPace(models.Steady)
	c.SetPace(models.Steady)
	c.SetPace(models.Grueling)
	assert.Equal(t, []models.Pace{models.Steady, models.Grueling}, got)
}

func TestClock_SetMonth(t *testing.T) {
	c := New(1848, time.March, 12, models.Paused)
	c.SetMonth(time.June)
	assert.Equal(t, "June 1, 1848", c.String())
}
