package game

import (
	"strings"

	"github.com/tatianab/trail-game/internal/director"
	"github.com/tatianab/trail-game/internal/engine"
	"github.com/tatianab/trail-game/internal/window"
)

// EventResult shows what a director event did.
const EventResult window.FormTag = "EventResult"

// RandomEventInfo is the shared context of the random event window. The
// outcome is captured when the window is pushed, so stacked event windows
// each keep their own text.
type RandomEventInfo struct {
	Eng     *engine.Engine
	Date    string
	Outcome director.Outcome
}

func randomEventWindow(eng *engine.Engine) window.Factory {
	return func() window.Spec {
		return window.Spec{
			Data: &RandomEventInfo{
				Eng:     eng,
				Date:    eng.Clock.String(),
				Outcome: eng.Director.Last(),
			},
			Forms:   map[window.FormTag]window.FormFunc{EventResult: newEventResult},
			Initial: EventResult,
		}
	}
}

type eventResult struct {
	window.Base[RandomEventInfo]
}

func newEventResult(w *window.Window) window.Form {
	return &eventResult{Base: window.Bind[RandomEventInfo](w)}
}

func (f *eventResult) Render() string {
	var b strings.Builder
	b.WriteString(f.Data.Date + "\n")
	b.WriteString(rule + "\n")
	b.WriteString(strings.TrimRight(f.Data.Outcome.Text, "\n") + "\n")
	b.WriteString(rule + "\n")
	b.WriteString(PressEnter)
	return b.String()
}

func (f *eventResult) OnInput(string) error {
	return f.Close()
}
