// Package tui hosts the engine in a bubbletea program. It pulses the
// engine on a fixed interval, forwards entered lines and draws the active
// frame next to the journey journal.
package tui

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/textinput"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/tatianab/trail-game/internal/engine"
)

// Narrator writes an epilogue for a finished game.
type Narrator interface {
	Epilogue(ctx context.Context, s engine.Summary) (string, error)
}

type sessionState int

const (
	statePlaying sessionState = iota
	stateError
)

const journalLines = 12

type model struct {
	state     sessionState
	engine    *engine.Engine
	narrator  Narrator
	interval  time.Duration
	textInput textinput.Model
	viewport  viewport.Model
	err       error
	width     int
	height    int

	narrating bool
	epilogue  string
}

var (
	statusStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#EEEEEE")).
			Background(lipgloss.Color("#5F5F87")).
			Bold(true).
			PaddingLeft(1)

	gameStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#FFFFFF"))

	helpStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#888888")).
			Italic(true)

	journalStyle = lipgloss.NewStyle().
			Border(lipgloss.NormalBorder(), false, false, false, true).
			BorderForeground(lipgloss.Color("#3C3C3C")).
			PaddingLeft(2).
			Foreground(lipgloss.Color("#AAAAAA"))

	titleStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#FFA500")).
			Bold(true).
			Underline(true)
)

// NewModel returns the program model for eng. narrator may be nil.
func NewModel(eng *engine.Engine, narrator Narrator, interval time.Duration) model {
	ti := textinput.New()
	ti.Placeholder = "Type a choice and press Enter"
	ti.Focus()
	ti.CharLimit = 64
	ti.Width = 40

	return model{
		state:     statePlaying,
		engine:    eng,
		narrator:  narrator,
		interval:  interval,
		textInput: ti,
		viewport:  viewport.New(80, 20),
	}
}

type tickMsg time.Time

type epilogueMsg struct {
	text string
	err  error
}

func (m model) tick() tea.Cmd {
	return tea.Tick(m.interval, func(t time.Time) tea.Msg { return tickMsg(t) })
}

func (m model) Init() tea.Cmd {
	return tea.Batch(textinput.Blink, m.tick())
}

func (m model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmd tea.Cmd

	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.Type {
		case tea.KeyCtrlC, tea.KeyEsc:
			return m, tea.Quit

		case tea.KeyEnter:
			if m.state != statePlaying {
				return m, nil
			}
			line := m.textInput.Value()
			m.textInput.Reset()
			if err := m.engine.SendInput(line); err != nil {
				return m.fail(err), nil
			}
			m.refresh()
			cmd = m.afterStep()
			return m, cmd
		}

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.viewport.Width = int(float64(msg.Width) * 0.70)
		m.viewport.Height = msg.Height - 6
		m.refresh()

	case tickMsg:
		if m.state != statePlaying {
			return m, nil
		}
		if err := m.engine.Pulse(); err != nil {
			return m.fail(err), nil
		}
		m.refresh()
		cmd = m.afterStep()
		return m, tea.Batch(m.tick(), cmd)

	case epilogueMsg:
		m.narrating = false
		if msg.err != nil {
			m.epilogue = "(the narrator is silent: " + msg.err.Error() + ")"
		} else {
			m.epilogue = msg.text
		}
		return m, nil
	}

	if m.state == statePlaying {
		m.textInput, cmd = m.textInput.Update(msg)
		return m, cmd
	}
	return m, nil
}

// afterStep quits when the engine asks to, and starts the epilogue once a
// game has ended.
func (m *model) afterStep() tea.Cmd {
	if m.engine.Done() {
		return tea.Quit
	}
	if !m.engine.Over() {
		m.epilogue = ""
		return nil
	}
	if m.narrator == nil || m.narrating || m.epilogue != "" {
		return nil
	}
	m.narrating = true
	return narrate(m.narrator, m.engine.Summary())
}

// narrate runs off the Update goroutine, so it only sees the copy taken
// when the game ended.
func narrate(n Narrator, s engine.Summary) tea.Cmd {
	return func() tea.Msg {
		ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
		defer cancel()
		text, err := n.Epilogue(ctx, s)
		return epilogueMsg{text: text, err: err}
	}
}

func (m model) fail(err error) model {
	m.err = err
	m.state = stateError
	return m
}

func (m *model) refresh() {
	m.viewport.SetContent(gameStyle.Render(m.engine.Windows.Render()))
}

func (m model) View() string {
	if m.state == stateError {
		return fmt.Sprintf("\n  Error: %v\n\nPress Esc to quit.\n", m.err)
	}

	style := statusStyle
	if m.width > 0 {
		style = style.Width(m.width)
	}
	status := style.Render(m.engine.StatusLine())
	mainView := lipgloss.JoinHorizontal(lipgloss.Top,
		m.viewport.View(),
		m.renderJournal(),
	)
	help := helpStyle.Render("Enter submits a line. Esc quits.")

	return lipgloss.JoinVertical(lipgloss.Left,
		status,
		mainView,
		"\n"+m.textInput.View(),
		"\n"+help,
	)
}

func (m model) renderJournal() string {
	var b strings.Builder
	b.WriteString(titleStyle.Render("JOURNAL") + "\n")
	for _, e := range m.engine.Journal.Tail(journalLines) {
		b.WriteString(e.Date + ": " + e.Text + "\n")
	}
	if m.narrating {
		b.WriteString("\n" + titleStyle.Render("EPILOGUE") + "\nThe narrator is thinking...\n")
	} else if m.epilogue != "" {
		b.WriteString("\n" + titleStyle.Render("EPILOGUE") + "\n" + m.epilogue + "\n")
	}

	width := max(int(float64(m.width)*0.28), 20)
	return journalStyle.Width(width).Height(m.viewport.Height).Render(b.String())
}

// Run opens the new game window and runs the program until the player
// quits.
func Run(eng *engine.Engine, narrator Narrator, interval time.Duration) error {
	if err := eng.Begin(); err != nil {
		return err
	}
	p := tea.NewProgram(NewModel(eng, narrator, interval), tea.WithAltScreen())
	_, err := p.Run()
	return err
}
