package game

import (
	"strings"

	"github.com/tatianab/trail-game/internal/engine"
	"github.com/tatianab/trail-game/internal/window"
)

// Game over forms.
const (
	GameWin     window.FormTag = "GameWin"
	GameFail    window.FormTag = "GameFail"
	FinalPoints window.FormTag = "FinalPoints"
	PlayAgain   window.FormTag = "PlayAgain"
)

// GameOverInfo is the shared context of the game over window.
type GameOverInfo struct {
	Eng    *engine.Engine
	Result engine.Result
}

func gameOverWindow(eng *engine.Engine) window.Factory {
	return func() window.Spec {
		return window.Spec{
			Data: &GameOverInfo{Eng: eng, Result: eng.Result()},
			Forms: map[window.FormTag]window.FormFunc{
				GameWin:     newGameWin,
				GameFail:    newGameFail,
				FinalPoints: newFinalPoints,
				PlayAgain:   newPlayAgain,
			},
			PostCreate: func(w *window.Window) error {
				if w.Data().(*GameOverInfo).Result.Win {
					return w.SetForm(GameWin)
				}
				return w.SetForm(GameFail)
			},
		}
	}
}

type gameWin struct {
	window.Base[GameOverInfo]
}

func newGameWin(w *window.Window) window.Form {
	return &gameWin{Base: window.Bind[GameOverInfo](w)}
}

func (f *gameWin) Render() string {
	return "Congratulations! You have made it to " + f.Data.Result.Location +
		"!\nLet's see how many points you have received.\n\n" + PressEnter
}

func (f *gameWin) OnInput(string) error { return f.SetForm(FinalPoints) }

type gameFail struct {
	window.Base[GameOverInfo]
}

func newGameFail(w *window.Window) window.Form {
	return &gameFail{Base: window.Bind[GameOverInfo](w)}
}

func (f *gameFail) Render() string {
	r := f.Data.Result
	var b strings.Builder
	b.WriteString("Here lies " + r.Leader + "\n")
	b.WriteString(r.Date + " near " + r.Location + "\n\n")
	b.WriteString("The journey is over: " + r.Reason + ".\n\n")
	b.WriteString(PressEnter)
	return b.String()
}

func (f *gameFail) OnInput(string) error { return f.SetForm(PlayAgain) }

type finalPoints struct {
	window.Base[GameOverInfo]
}

func newFinalPoints(w *window.Window) window.Form {
	return &finalPoints{Base: window.Bind[GameOverInfo](w)}
}

func (f *finalPoints) Render() string {
	r := f.Data.Result
	var b strings.Builder
	b.WriteString("Points for arriving in " + r.Location + "\n")
	b.WriteString(rule + "\n")
	numbers.Fprintf(&b, "Survivors: %d\n", r.Survivors)
	numbers.Fprintf(&b, "Days on the trail: %d\n", r.Days)
	numbers.Fprintf(&b, "Total: %d points\n", r.Points)
	b.WriteString(rule + "\n")
	b.WriteString(PressEnter)
	return b.String()
}

func (f *finalPoints) OnInput(string) error { return f.SetForm(PlayAgain) }

type playAgain struct {
	window.Base[GameOverInfo]
}

func newPlayAgain(w *window.Window) window.Form {
	return &playAgain{Base: window.Bind[GameOverInfo](w)}
}

func (f *playAgain) Render() string { return "Would you like to play again? Y/N" }

func (f *playAgain) OnInput(line string) error {
	switch window.Normalize(line) {
	case "Y", "YES":
		return f.Data.Eng.Begin()
	case "N", "NO":
		f.Data.Eng.Quit()
	}
	return nil
}
