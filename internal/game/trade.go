package game

import (
	"fmt"
	"strings"

	"github.com/tatianab/trail-game/internal/dice"
	"github.com/tatianab/trail-game/internal/engine"
	"github.com/tatianab/trail-game/internal/models"
	"github.com/tatianab/trail-game/internal/window"
)

// TradeOffer shows what a trader wants.
const TradeOffer window.FormTag = "TradeOffer"

var tradeGoods = []models.ItemKind{models.Oxen, models.Clothing, models.Ammo, models.Wheel, models.Axle, models.Tongue, models.Food}

// Offer is one trader's proposal: they give Give and want Want.
type Offer struct {
	Give    models.ItemKind
	GiveQty int
	Want    models.ItemKind
	WantQty int
}

// NewOffer rolls a trade between two different goods.
func NewOffer(r dice.Source) Offer {
	n := len(tradeGoods)
	i := r.IntN(n)
	give := tradeGoods[i]
	want := tradeGoods[(i+1+r.IntN(n-1))%n]
	return Offer{Give: give, GiveQty: offerQuantity(r, give), Want: want, WantQty: offerQuantity(r, want)}
}

func offerQuantity(r dice.Source, kind models.ItemKind) int {
	switch kind {
	case models.Food:
		return dice.Between(r, 5, 21) * 10
	case models.Ammo:
		return dice.Between(r, 1, 6) * 20
	}
	return dice.Between(r, 1, 4)
}

// Accept performs the trade if inv holds what the trader wants.
func (o Offer) Accept(inv models.Inventory) bool {
	if inv.Quantity(o.Want) < o.WantQty {
		return false
	}
	inv.Remove(o.Want, o.WantQty)
	inv.Add(o.Give, o.GiveQty)
	return true
}

func (o Offer) String() string {
	return numbers.Sprintf("A trader offers you %d %s for %d %s.",
		o.GiveQty, strings.ToLower(o.Give.DisplayName()), o.WantQty, strings.ToLower(o.Want.DisplayName()))
}

// TradeInfo is the shared context of the trade window.
type TradeInfo struct {
	Eng   *engine.Engine
	Offer Offer
}

func tradeWindow(eng *engine.Engine) window.Factory {
	return func() window.Spec {
		return window.Spec{
			Data:    &TradeInfo{Eng: eng, Offer: NewOffer(eng.Rand)},
			Forms:   map[window.FormTag]window.FormFunc{TradeOffer: newTradeOffer},
			Initial: TradeOffer,
		}
	}
}

type tradeOffer struct {
	window.Base[TradeInfo]
	message string
}

func newTradeOffer(w *window.Window) window.Form {
	return &tradeOffer{Base: window.Bind[TradeInfo](w)}
}

func (f *tradeOffer) Render() string {
	if f.message != "" {
		return f.message + "\n\n" + PressEnter
	}
	return fmt.Sprintf("%s\n\nAre you willing to trade? Y/N", f.Data.Offer)
}

func (f *tradeOffer) OnInput(line string) error {
	if f.message != "" || !yes(line) {
		return f.Close()
	}
	if f.Data.Offer.Accept(f.Data.Eng.Vehicle.Inventory) {
		f.message = "You made the trade."
	} else {
		f.message = "You don't have what the trader wants."
	}
	return nil
}
