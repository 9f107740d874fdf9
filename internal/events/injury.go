package events

import (
	"strings"

	"github.com/tatianab/trail-game/internal/director"
	"github.com/tatianab/trail-game/internal/models"
)

// Injury hurts one party member. Targeted at a person it hurts that
// person; targeted at the vehicle it picks a living passenger at random.
type Injury struct {
	name     string
	text     string
	injury   models.Injury
	infected bool
	damage   int
}

func (e *Injury) Name() string { return e.name }

func (e *Injury) Execute(env *director.Env, target models.Entity) (string, error) {
	var p *models.Person
	switch t := target.(type) {
	case *models.Person:
		p = t
	case *models.Vehicle:
		alive := t.Living()
		if len(alive) == 0 {
			return "nobody is left to be hurt.", nil
		}
		p = alive[env.Rand.IntN(len(alive))]
	default:
		_, err := director.AsPerson(target)
		return "", err
	}

	p.Injure(e.injury, e.infected)
	p.Damage(e.damage)
	return strings.ReplaceAll(e.text, "{name}", p.Name), nil
}
