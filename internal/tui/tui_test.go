package tui

import (
	"context"
	"io"
	"log/slog"
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tatianab/trail-game/internal/dice"
	"github.com/tatianab/trail-game/internal/engine"
	"github.com/tatianab/trail-game/internal/game"
	"github.com/tatianab/trail-game/internal/models"
	"github.com/tatianab/trail-game/internal/window"
)

type stubNarrator struct {
	calls int
	seen  engine.Summary
}

func (s *stubNarrator) Epilogue(_ context.Context, sum engine.Summary) (string, error) {
	s.calls++
	s.seen = sum
	return "They went west.", nil
}

func newEngine(t *testing.T) *engine.Engine {
	t.Helper()
	eng, err := engine.New(engine.Options{
		Rand:         dice.Constant{Int: 98},
		LogicalEvery: 2,
		Log:          slog.New(slog.NewTextHandler(io.Discard, nil)),
	})
	require.NoError(t, err)
	game.Register(eng, game.Options{})
	require.NoError(t, eng.Begin())
	return eng
}

func enter(t *testing.T, m model, line string) model {
	t.Helper()
	m.textInput.SetValue(line)
	next, _ := m.Update(tea.KeyMsg{Type: tea.KeyEnter})
	return next.(model)
}

func TestModel_EnterSendsLine(t *testing.T) {
	eng := newEngine(t)
	m := NewModel(eng, nil, time.Millisecond)

	m = enter(t, m, "2")
	assert.Equal(t, game.InputNames, eng.Windows.Top().FormTag())
	assert.Empty(t, m.textInput.Value())
	assert.Contains(t, m.View(), "NewGame(InputNames)")
}

func TestModel_TickPulsesEngine(t *testing.T) {
	eng := newEngine(t)
	m := NewModel(eng, nil, time.Millisecond)

	next, cmd := m.Update(tickMsg(time.Now()))
	require.NotNil(t, cmd)
	assert.Contains(t, next.(model).View(), "[ / ]")
}

func TestModel_GameOverStartsNarration(t *testing.T) {
	eng := newEngine(t)
	n := &stubNarrator{}
	m := NewModel(eng, n, time.Millisecond)

	require.NoError(t, eng.StartGame(&models.NewGameInfo{PlayerNames: []string{"Ann"}, Profession: models.Banker}))
	eng.Vehicle.Leader().Kill()
	require.NoError(t, eng.TakeTurn())
	require.Equal(t, window.GameOver, eng.Windows.Top().Tag())

	next, cmd := m.Update(tickMsg(time.Now()))
	m = next.(model)
	require.NotNil(t, cmd)
	assert.True(t, m.narrating)

	next, _ = m.Update(epilogueMsg{text: "They went west."})
	m = next.(model)
	assert.False(t, m.narrating)
	assert.Contains(t, m.View(), "They went west.")
}

func TestModel_QuitWhenEngineDone(t *testing.T) {
	eng := newEngine(t)
	m := NewModel(eng, nil, time.Millisecond)
	eng.Quit()

	_, cmd := m.Update(tickMsg(time.Now()))
	require.NotNil(t, cmd)
}

func TestModel_EpilogueUsesFinishedGame(t *testing.T) {
	eng := newEngine(t)
	n := &stubNarrator{}
	m := NewModel(eng, n, time.Millisecond)

	require.NoError(t, eng.StartGame(&models.NewGameInfo{PlayerNames: []string{"Ann"}, Profession: models.Banker}))
	eng.Vehicle.Leader().Kill()
	require.NoError(t, eng.TakeTurn())
	cmd := m.afterStep()
	require.NotNil(t, cmd)

	done := make(chan tea.Msg)
	go func() { done <- cmd() }()
	for range 50 {
		require.NoError(t, eng.Begin())
		require.NoError(t, eng.StartGame(&models.NewGameInfo{PlayerNames: []string{"Bo"}, Profession: models.Farmer}))
	}
	msg := <-done

	assert.Equal(t, epilogueMsg{text: "They went west."}, msg)
	assert.Equal(t, 1, n.calls)
	assert.Equal(t, "Ann", n.seen.Result.Leader)
	assert.False(t, n.seen.Result.Win)
	assert.Contains(t, n.seen.Journal[0].Text, "Ann")
}
