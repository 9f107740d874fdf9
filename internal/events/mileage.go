package events

import (
	"github.com/tatianab/trail-game/internal/director"
	"github.com/tatianab/trail-game/internal/models"
)

// MileageLoss costs the vehicle miles today and optionally hurts everyone
// aboard.
type MileageLoss struct {
	name   string
	text   string
	miles  int
	damage int
}

func (e *MileageLoss) Name() string { return e.name }

func (e *MileageLoss) Execute(env *director.Env, target models.Entity) (string, error) {
	v, err := director.AsVehicle(target)
	if err != nil {
		return "", err
	}
	v.ReduceMileage(e.miles)
	if e.damage > 0 {
		for _, p := range v.Living() {
			p.Damage(e.damage)
		}
	}
	return e.text, nil
}
