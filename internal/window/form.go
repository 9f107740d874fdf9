package window

import (
	"fmt"
	"strings"
)

// Form drives one interaction inside a window. States share the same
// contract.
//
// OnTick receives systemTick=true for cosmetic pulses that must not advance
// simulation time or trigger events, and systemTick=false for logical
// pulses that may do both.
type Form interface {
	OnPostCreate() error
	Render() string
	OnInput(line string) error
	OnTick(systemTick bool) error
}

// State is a short sub-dialog nested inside a form. While a state is
// attached it receives all input, ticks and render calls.
type State interface {
	Form
}

// FormFunc constructs a form bound to w.
type FormFunc func(w *Window) Form

// Base is embedded by forms and states. It binds them to their window and
// to the window's shared context object of type C.
type Base[C any] struct {
	w    *Window
	Data *C
}

// Bind returns a Base for w. The window's context must be a *C; anything
// else is a wiring defect and panics.
func Bind[C any](w *Window) Base[C] {
	data, ok := w.Data().(*C)
	if !ok {
		var want *C
		panic(fmt.Sprintf("window %s carries %T, form expects %T", w.Tag(), w.Data(), want))
	}
	return Base[C]{w: w, Data: data}
}

func (b *Base[C]) Window() *Window              { return b.w }
func (b *Base[C]) OnPostCreate() error          { return nil }
func (b *Base[C]) OnTick(systemTick bool) error { return nil }

// SetForm replaces the window's form.
func (b *Base[C]) SetForm(tag FormTag) error { return b.w.SetForm(tag) }

// ClearForm removes the window's form and any state.
func (b *Base[C]) ClearForm() { b.w.ClearForm() }

// SetState attaches s to the window's form, replacing any current state.
func (b *Base[C]) SetState(s State) error { return b.w.SetState(s) }

// ClearState returns control to the form.
func (b *Base[C]) ClearState() { b.w.ClearState() }

// PushWindow opens another window on top of this one.
func (b *Base[C]) PushWindow(tag Tag) error { return b.w.manager.Push(tag) }

// Close pops this window. It must be the active one.
func (b *Base[C]) Close() error {
	if b.w.manager.Top() != b.w {
		return fmt.Errorf("close %s: %w", b.w.Tag(), ErrNotActive)
	}
	return b.w.manager.Pop()
}

// Normalize trims an input line and upper-cases it for comparison.
func Normalize(line string) string {
	return strings.ToUpper(strings.TrimSpace(line))
}
