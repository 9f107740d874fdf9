// Package window implements the modal window stack and the two-level
// form/state machine each window runs.
//
// Only the top window of the stack is live: it alone receives input, ticks
// and render calls. Windows beneath it keep their form and state untouched
// until they are on top again.
package window

import (
	"fmt"
	"log/slog"
	"strings"
)

// Factory builds the Spec for one window kind.
type Factory func() Spec

// Manager is the window stack.
type Manager struct {
	factories map[Tag]Factory
	stack     []*Window
	log       *slog.Logger
}

// NewManager returns an empty stack. Factories are added with Register.
func NewManager(log *slog.Logger) *Manager {
	if log == nil {
		log = slog.Default()
	}
	return &Manager{
		factories: make(map[Tag]Factory),
		log:       log,
	}
}

// Register sets the factory for tag.
func (m *Manager) Register(tag Tag, f Factory) {
	m.factories[tag] = f
}

// Push builds the window for tag, places it on top and runs its
// post-create hook. The previous top stays on the stack, suspended. If the
// hook fails the stack is put back the way it was.
func (m *Manager) Push(tag Tag) error {
	f, ok := m.factories[tag]
	if !ok {
		return fmt.Errorf("push: %w %s", ErrUnknownWindow, tag)
	}
	w := &Window{tag: tag, spec: f(), manager: m}
	depth := len(m.stack)
	m.stack = append(m.stack, w)
	m.log.Debug("window pushed", "window", tag.String(), "depth", len(m.stack))

	if err := w.postCreate(); err != nil {
		for len(m.stack) > depth {
			_ = m.Pop()
		}
		return fmt.Errorf("push %s: %w", tag, err)
	}
	return nil
}

// Pop destroys the top window. The window beneath resumes with whatever
// form and state it had; its post-create hook is not run again.
func (m *Manager) Pop() error {
	if len(m.stack) == 0 {
		return ErrEmptyStack
	}
	top := m.stack[len(m.stack)-1]
	m.stack[len(m.stack)-1] = nil
	m.stack = m.stack[:len(m.stack)-1]
	top.destroy()
	m.log.Debug("window popped", "window", top.tag.String(), "depth", len(m.stack))
	return nil
}

// Clear destroys every window.
func (m *Manager) Clear() {
	for len(m.stack) > 0 {
		_ = m.Pop()
	}
}

// Top returns the active window, or nil if the stack is empty.
func (m *Manager) Top() *Window {
	if len(m.stack) == 0 {
		return nil
	}
	return m.stack[len(m.stack)-1]
}

// Find returns the topmost window with tag, or nil.
func (m *Manager) Find(tag Tag) *Window {
	for i := len(m.stack) - 1; i >= 0; i-- {
		if m.stack[i].tag == tag {
			return m.stack[i]
		}
	}
	return nil
}

// Len is the stack depth.
func (m *Manager) Len() int { return len(m.stack) }

// Tags returns the stack from bottom to top.
func (m *Manager) Tags() []Tag {
	tags := make([]Tag, len(m.stack))
	for i, w := range m.stack {
		tags[i] = w.tag
	}
	return tags
}

// DispatchInput trims line and hands it to the active window.
func (m *Manager) DispatchInput(line string) error {
	top := m.Top()
	if top == nil {
		return nil
	}
	return top.OnInput(strings.TrimSpace(line))
}

// DispatchTick hands a tick to the active window.
func (m *Manager) DispatchTick(systemTick bool) error {
	top := m.Top()
	if top == nil {
		return nil
	}
	return top.OnTick(systemTick)
}

// Render returns the active window's frame.
func (m *Manager) Render() string {
	top := m.Top()
	if top == nil {
		return ""
	}
	return top.Render()
}
