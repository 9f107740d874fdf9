package engine

import (
	"slices"

	"github.com/tatianab/trail-game/internal/models"
)

// Result describes how a game ended.
type Result struct {
	Win        bool
	Reason     string
	Points     int
	Location   string
	Date       string
	Days       int
	Leader     string
	Profession models.Profession
	Survivors  int
}

// points awarded per surviving party member by health band.
var healthPoints = map[models.HealthLevel]int{
	models.Good:     500,
	models.Fair:     400,
	models.Poor:     300,
	models.VeryPoor: 200,
}

// Score totals the points for arriving with v. The wagon itself is worth
// 50, spare parts and clothing 2 each, oxen 4, every 50 bullets 1, every
// 25 pounds of food 1 and every 5 dollars 1. The sum is multiplied by the
// profession bonus.
func Score(v *models.Vehicle, multiplier int) int {
	total := 50
	for _, p := range v.Living() {
		total += healthPoints[p.Level()]
	}
	inv := v.Inventory
	total += 4 * inv.Quantity(models.Oxen)
	total += 2 * (inv.Quantity(models.Wheel) + inv.Quantity(models.Axle) + inv.Quantity(models.Tongue))
	total += 2 * inv.Quantity(models.Clothing)
	total += inv.Quantity(models.Ammo) / 50
	total += inv.Quantity(models.Food) / 25
	total += inv.Quantity(models.Cash) / 5

	if multiplier < 1 {
		multiplier = 1
	}
	return total * multiplier
}

func (e *Engine) buildResult(win bool, reason string) Result {
	r := Result{
		Win:       win,
		Reason:    reason,
		Location:  e.Trail.Current().Name,
		Date:      e.Clock.String(),
		Days:      e.Clock.Days(),
		Survivors: len(e.Vehicle.Living()),
	}
	if l := e.Vehicle.Leader(); l != nil {
		r.Leader = l.Name
	}
	if e.Info != nil {
		r.Profession = e.Info.Profession
	}
	if win {
		mult := 1
		if p, ok := models.LookupProfession(r.Profession); ok {
			mult = p.Multiplier
		}
		r.Points = Score(e.Vehicle, mult)
	}
	return r
}

// Summary is a copy of a finished game that stays valid after the engine
// starts another one.
type Summary struct {
	Result  Result
	Journal []models.JournalEntry
}

// Summary copies the result and the whole journal.
func (e *Engine) Summary() Summary {
	return Summary{
		Result:  e.result,
		Journal: slices.Clone(e.Journal.Entries),
	}
}
