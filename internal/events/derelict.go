package events

import (
	"fmt"
	"strings"

	"github.com/tatianab/trail-game/internal/dice"
	"github.com/tatianab/trail-game/internal/director"
	"github.com/tatianab/trail-game/internal/models"
)

var diseases = []models.Injury{models.Dysentery, models.Cholera, models.Typhoid, models.Measles, models.Fever}

// Derelict is a discovery on the trail. Its flags are fixed when the event
// is built: containsFood grants supplies, containsDisease infects someone.
type Derelict struct {
	name            string
	text            string
	food            int
	containsFood    bool
	containsDisease bool
}

func (e *Derelict) Name() string { return e.name }

func (e *Derelict) Execute(env *director.Env, target models.Entity) (string, error) {
	v, err := director.AsVehicle(target)
	if err != nil {
		return "", err
	}

	var b strings.Builder
	b.WriteString(e.text)
	b.WriteString("\n")

	if e.containsFood && e.food > 0 {
		found := dice.Between(env.Rand, e.food/2, e.food+1)
		v.Inventory.Add(models.Food, found)
		fmt.Fprintf(&b, "you gather %d pounds of food.\n", found)
	}
	if e.containsDisease {
		if alive := v.Living(); len(alive) > 0 {
			p := alive[env.Rand.IntN(len(alive))]
			sick := diseases[env.Rand.IntN(len(diseases))]
			p.Injure(sick, true)
			fmt.Fprintf(&b, "%s has caught %s.\n", p.Name, sick)
		}
	}
	if !e.containsFood && !e.containsDisease {
		b.WriteString("there is nothing of use.\n")
	}
	return b.String(), nil
}
