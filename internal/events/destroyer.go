package events

import (
	"fmt"
	"strings"

	"github.com/tatianab/trail-game/internal/dice"
	"github.com/tatianab/trail-game/internal/director"
	"github.com/tatianab/trail-game/internal/models"
)

// Loss is an amount of one item kind removed from the inventory.
type Loss struct {
	Kind     models.ItemKind
	Quantity int
}

// ItemDestroyer removes a random selection of supplies. When anything was
// lost and killVerb is set, every living passenger also risks dying.
type ItemDestroyer struct {
	name       string
	intro      string
	miles      int
	maxPercent int
	killVerb   string
	killOneIn  int
}

func (e *ItemDestroyer) Name() string { return e.name }

func (e *ItemDestroyer) Execute(env *director.Env, target models.Entity) (string, error) {
	v, err := director.AsVehicle(target)
	if err != nil {
		return "", err
	}
	v.ReduceMileage(e.miles)

	var b strings.Builder
	b.WriteString(e.intro)

	lost := DestroyItems(env.Rand, v.Inventory, e.maxPercent)
	if len(lost) == 0 {
		b.WriteString(" no loss of items.\n")
		return b.String(), nil
	}

	b.WriteString(" the loss of:\n")
	for _, l := range lost {
		fmt.Fprintf(&b, "%d %s\n", l.Quantity, strings.ToLower(l.Kind.DisplayName()))
	}
	if e.killVerb != "" {
		for _, p := range v.TryKill(env.Rand, e.killOneIn) {
			fmt.Fprintf(&b, "%s (%s)\n", p.Name, e.killVerb)
		}
	}
	return b.String(), nil
}

// DestroyItems flips a coin for every non-cash kind carried and removes
// between one and maxPercent of each chosen kind.
func DestroyItems(r dice.Source, inv models.Inventory, maxPercent int) []Loss {
	var lost []Loss
	for _, kind := range inv.Kinds() {
		if kind == models.Cash || !r.Bool() {
			continue
		}
		limit := inv.Quantity(kind) * maxPercent / 100
		if limit < 1 {
			limit = 1
		}
		n := inv.Remove(kind, 1+r.IntN(limit))
		if n > 0 {
			lost = append(lost, Loss{Kind: kind, Quantity: n})
		}
	}
	return lost
}
