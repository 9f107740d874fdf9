// Package game holds the concrete windows of the trail simulation and the
// forms and states that run inside them.
//
// Every window's shared context carries the engine, so forms reach the
// simulation through their bound Data rather than a global.
package game

import (
	"strings"

	"golang.org/x/text/language"
	"golang.org/x/text/message"

	"github.com/tatianab/trail-game/internal/engine"
	"github.com/tatianab/trail-game/internal/models"
	"github.com/tatianab/trail-game/internal/window"
)

// PressEnter is the prompt shown by forms that only wait for a line.
const PressEnter = "Press ENTER KEY to continue"

const rule = "--------------------------------"

var numbers = message.NewPrinter(language.English)

func feet(n int) string    { return numbers.Sprintf("%d feet", n) }
func miles(n int) string   { return numbers.Sprintf("%d miles", n) }
func dollars(n int) string { return numbers.Sprintf("$%d", n) }

// Options tunes Register.
type Options struct {
	// SaveBundles writes each new-game bundle under models.SaveDir when
	// the game starts.
	SaveBundles bool
}

// Register installs every window factory on eng's stack and routes arrival
// notifications to the travel window.
func Register(eng *engine.Engine, opts Options) {
	w := eng.Windows
	w.Register(window.Travel, travelWindow(eng))
	w.Register(window.ForkInRoad, forkWindow(eng))
	w.Register(window.Hunt, huntWindow(eng))
	w.Register(window.Landmark, landmarkWindow(eng))
	w.Register(window.NewGame, newGameWindow(eng, opts.SaveBundles))
	w.Register(window.RandomEvent, randomEventWindow(eng))
	w.Register(window.RiverCrossing, riverWindow(eng))
	w.Register(window.Settlement, settlementWindow(eng))
	w.Register(window.Store, storeWindow(eng))
	w.Register(window.Trade, tradeWindow(eng))
	w.Register(window.GameOver, gameOverWindow(eng))

	eng.OnArrival(func(loc *models.Location) error {
		if loc.Last {
			return nil
		}
		travel := eng.Windows.Find(window.Travel)
		if travel == nil {
			return nil
		}
		return travel.SetForm(LocationArrive)
	})
}

// statusBlock is the date, weather and health header shared by the travel
// frames.
func statusBlock(eng *engine.Engine) string {
	var b strings.Builder
	loc := eng.Trail.Current()
	weather := loc.Weather
	if weather == "" {
		weather = models.Clear
	}
	b.WriteString(rule + "\n")
	b.WriteString(loc.Name + "\n")
	b.WriteString(eng.Clock.String() + "\n")
	b.WriteString(rule + "\n")
	b.WriteString("Weather: " + string(weather) + "\n")
	b.WriteString("Health: " + eng.Vehicle.PassengerHealth().String() + "\n")
	b.WriteString("Pace: " + eng.Clock.Pace().String() + "\n")
	b.WriteString("Rations: " + eng.Vehicle.Ration.String() + "\n")
	b.WriteString(rule + "\n")
	return b.String()
}

// menu renders numbered choices.
func menu(title string, choices []string) string {
	var b strings.Builder
	if title != "" {
		b.WriteString(title + "\n\n")
	}
	for i, c := range choices {
		numbers.Fprintf(&b, "  %d. %s\n", i+1, c)
	}
	b.WriteString("\nWhat is your choice?")
	return b.String()
}

// choice parses a menu selection in [1, n]. It returns 0 for anything
// else.
func choice(line string, n int) int {
	line = strings.TrimSpace(line)
	if len(line) != 1 || line[0] < '1' || line[0] > '9' {
		return 0
	}
	c := int(line[0] - '0')
	if c > n {
		return 0
	}
	return c
}

// yes reports whether line is an affirmative answer.
func yes(line string) bool {
	switch window.Normalize(line) {
	case "Y", "YES":
		return true
	}
	return false
}
