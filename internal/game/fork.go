package game

import (
	"github.com/tatianab/trail-game/internal/engine"
	"github.com/tatianab/trail-game/internal/window"
)

// ForkMenu asks which branch of a fork to take.
const ForkMenu window.FormTag = "ForkMenu"

// ForkInfo is the shared context of the fork in the road window.
type ForkInfo struct {
	Eng *engine.Engine
}

func forkWindow(eng *engine.Engine) window.Factory {
	return func() window.Spec {
		return window.Spec{
			Data:    &ForkInfo{Eng: eng},
			Forms:   map[window.FormTag]window.FormFunc{ForkMenu: newForkMenu},
			Initial: ForkMenu,
		}
	}
}

type forkMenu struct {
	window.Base[ForkInfo]
}

func newForkMenu(w *window.Window) window.Form {
	return &forkMenu{Base: window.Bind[ForkInfo](w)}
}

func (f *forkMenu) Render() string {
	fork := f.Data.Eng.Trail.Current()
	labels := make([]string, len(fork.Choices))
	for i, c := range fork.Choices {
		labels[i] = c.Name + " (" + miles(c.Distance) + ")"
	}
	return menu("The trail divides here. You may:", labels)
}

func (f *forkMenu) OnInput(line string) error {
	fork := f.Data.Eng.Trail.Current()
	c := choice(line, len(fork.Choices))
	if c == 0 {
		return nil
	}
	if _, err := f.Data.Eng.Trail.ChooseFork(c - 1); err != nil {
		return err
	}
	return f.Close()
}
