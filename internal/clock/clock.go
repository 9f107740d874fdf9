// Package clock advances logical simulation time one day per turn and
// notifies subscribers of day, month and year boundaries.
package clock

import (
	"time"

	"github.com/tatianab/trail-game/internal/models"
)

// DayFunc runs at the end of each day. An error stops the remaining
// subscribers and is returned from TakeTurn.
type DayFunc func(day int) error

// Clock holds the current date, the travel pace and the turn counter.
type Clock struct {
	date  time.Time
	pace  models.Pace
	turns int
	days  int

	dayEnd   []DayFunc
	monthEnd []func(month time.Month)
	yearEnd  []func(year int)
	paceSet  []func(pace models.Pace)
}

// New returns a clock starting on the given date.
func New(year int, month time.Month, day int, pace models.Pace) *Clock {
	return &Clock{
		date: time.Date(year, month, day, 0, 0, 0, 0, time.UTC),
		pace: pace,
	}
}

func (c *Clock) Date() time.Time   { return c.date }
func (c *Clock) Pace() models.Pace { return c.pace }
func (c *Clock) Turns() int        { return c.turns }
func (c *Clock) Days() int         { return c.days }

// String formats the date the way frames show it, e.g. "March 1, 1848".
func (c *Clock) String() string {
	return c.date.Format("January 2, 2006")
}

// OnDayEnd appends a day-end subscriber. Subscribers run in the order they
// were added.
func (c *Clock) OnDayEnd(fn DayFunc) { c.dayEnd = append(c.dayEnd, fn) }

// OnMonthEnd appends a month-end subscriber.
func (c *Clock) OnMonthEnd(fn func(month time.Month)) { c.monthEnd = append(c.monthEnd, fn) }

// OnYearEnd appends a year-end subscriber.
func (c *Clock) OnYearEnd(fn func(year int)) { c.yearEnd = append(c.yearEnd, fn) }

// OnPaceChange appends a subscriber called when the pace changes.
func (c *Clock) OnPaceChange(fn func(pace models.Pace)) { c.paceSet = append(c.paceSet, fn) }

// SetPace changes the travel pace and notifies subscribers if it differs.
func (c *Clock) SetPace(p models.Pace) {
	if p == c.pace {
		return
	}
	c.pace = p
	for _, fn := range c.paceSet {
		fn(p)
	}
}

// SetMonth moves the date to the first day of month in the current year.
func (c *Clock) SetMonth(m time.Month) {
	c.date = time.Date(c.date.Year(), m, 1, 0, 0, 0, 0, time.UTC)
}

// Reset rewinds turn and day counters and moves to the given date.
func (c *Clock) Reset(year int, month time.Month, day int) {
	c.date = time.Date(year, month, day, 0, 0, 0, 0, time.UTC)
	c.turns = 0
	c.days = 0
}

// TakeTurn advances logical time by one day. Day-end subscribers run
// first, then month-end and year-end if the new date crossed them.
func (c *Clock) TakeTurn() error {
	c.turns++
	c.days++

	prev := c.date
	c.date = c.date.AddDate(0, 0, 1)

	for _, fn := range c.dayEnd {
		if err := fn(c.days); err != nil {
			return err
		}
	}
	if c.date.Month() != prev.Month() {
		for _, fn := range c.monthEnd {
			fn(prev.Month())
		}
	}
	if c.date.Year() != prev.Year() {
		for _, fn := range c.yearEnd {
			fn(prev.Year())
		}
	}
	return nil
}
