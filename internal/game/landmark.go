package game

import (
	"github.com/tatianab/trail-game/internal/engine"
	"github.com/tatianab/trail-game/internal/window"
)

// LookAround describes a landmark.
const LookAround window.FormTag = "LookAround"

// LandmarkInfo is the shared context of the landmark window.
type LandmarkInfo struct {
	Eng *engine.Engine
}

func landmarkWindow(eng *engine.Engine) window.Factory {
	return func() window.Spec {
		return window.Spec{
			Data:    &LandmarkInfo{Eng: eng},
			Forms:   map[window.FormTag]window.FormFunc{LookAround: newLookAround},
			Initial: LookAround,
		}
	}
}

type lookAround struct {
	window.Base[LandmarkInfo]
}

func newLookAround(w *window.Window) window.Form {
	return &lookAround{Base: window.Bind[LandmarkInfo](w)}
}

func (f *lookAround) Render() string {
	eng := f.Data.Eng
	loc := eng.Trail.Current()
	desc := loc.Description
	if desc == "" {
		desc = "There is not much to see here."
	}
	return loc.Name + "\n" + eng.Clock.String() + "\n\n" + desc + "\n\n" + PressEnter
}

func (f *lookAround) OnInput(string) error {
	return f.Close()
}
