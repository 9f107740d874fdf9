package window

import (
	"errors"
	"fmt"
)

var (
	ErrUnknownWindow = errors.New("unknown window")
	ErrUnknownForm   = errors.New("unknown form")
	ErrEmptyStack    = errors.New("window stack is empty")
	ErrNoForm        = errors.New("window has no form")
	ErrNotActive     = errors.New("window is not active")
)

// Spec is what a factory returns to build a window.
type Spec struct {
	// Data is the shared context object every form and state of the window
	// is bound to.
	Data any
	// Forms is the set of forms valid for this window kind.
	Forms map[FormTag]FormFunc
	// Initial, when set, is attached by the post-create hook.
	Initial FormTag
	// PostCreate runs once after the window is placed on the stack and
	// Initial is attached.
	PostCreate func(w *Window) error
}

// Window is one modal context on the stack. It owns at most one form, and
// the form owns at most one state.
type Window struct {
	tag     Tag
	spec    Spec
	manager *Manager

	formTag FormTag
	form    Form
	state   State
}

func (w *Window) Tag() Tag          { return w.tag }
func (w *Window) Data() any         { return w.spec.Data }
func (w *Window) Form() Form        { return w.form }
func (w *Window) FormTag() FormTag  { return w.formTag }
func (w *Window) State() State      { return w.state }
func (w *Window) Manager() *Manager { return w.manager }

// HasForm reports whether t is a valid form for this window kind.
func (w *Window) HasForm(t FormTag) bool {
	_, ok := w.spec.Forms[t]
	return ok
}

// Active reports whether w is the top of its stack.
func (w *Window) Active() bool {
	return w.manager != nil && w.manager.Top() == w
}

func (w *Window) postCreate() error {
	if w.spec.Initial != "" {
		if err := w.SetForm(w.spec.Initial); err != nil {
			return err
		}
	}
	if w.spec.PostCreate != nil {
		return w.spec.PostCreate(w)
	}
	return nil
}

// SetForm resolves tag among the window's forms, constructs it, attaches
// it in place of the current form (dropping any state) and runs its
// post-create hook.
func (w *Window) SetForm(tag FormTag) error {
	fn, ok := w.spec.Forms[tag]
	if !ok {
		return fmt.Errorf("%s: %w %q", w.tag, ErrUnknownForm, tag)
	}
	f := fn(w)
	w.state = nil
	w.form = f
	w.formTag = tag
	if w.manager != nil {
		w.manager.log.Debug("form set", "window", w.tag.String(), "form", string(tag))
	}
	return f.OnPostCreate()
}

// ClearForm drops the form and any state.
func (w *Window) ClearForm() {
	w.form = nil
	w.formTag = ""
	w.state = nil
}

// SetState attaches s to the current form and runs its post-create hook.
func (w *Window) SetState(s State) error {
	if w.form == nil {
		return fmt.Errorf("%s: set state: %w", w.tag, ErrNoForm)
	}
	w.state = s
	return s.OnPostCreate()
}

// ClearState returns control to the form.
func (w *Window) ClearState() { w.state = nil }

// Render returns the state's frame if one is attached, else the form's.
func (w *Window) Render() string {
	switch {
	case w.state != nil:
		return w.state.Render()
	case w.form != nil:
		return w.form.Render()
	}
	return ""
}

// OnInput routes a line to the state if one is attached, else to the form.
func (w *Window) OnInput(line string) error {
	switch {
	case w.state != nil:
		return w.state.OnInput(line)
	case w.form != nil:
		return w.form.OnInput(line)
	}
	return nil
}

// OnTick routes a tick to the state if one is attached, else to the form.
func (w *Window) OnTick(systemTick bool) error {
	switch {
	case w.state != nil:
		return w.state.OnTick(systemTick)
	case w.form != nil:
		return w.form.OnTick(systemTick)
	}
	return nil
}

func (w *Window) destroy() {
	w.ClearForm()
	w.manager = nil
}
