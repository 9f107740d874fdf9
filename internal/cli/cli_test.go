package cli

import (
	"bytes"
	"context"
	"io"
	"log/slog"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tatianab/trail-game/internal/dice"
	"github.com/tatianab/trail-game/internal/engine"
	"github.com/tatianab/trail-game/internal/game"
	"github.com/tatianab/trail-game/internal/models"
	"github.com/tatianab/trail-game/internal/scores"
	"github.com/tatianab/trail-game/internal/window"
)

// useTempDirs points the save directory and score database at t's
// temporary directory.
func useTempDirs(t *testing.T) string {
	t.Helper()
	dir := t.TempDir()
	t.Setenv("TRAIL_SAVE_DIR", filepath.Join(dir, "saves"))
	t.Setenv("TRAIL_SCORES_DB", filepath.Join(dir, "scores.db"))
	t.Setenv("TRAIL_LOG_FILE", "")
	t.Cleanup(func() { models.SaveDir = ".saves" })
	return dir
}

func execute(t *testing.T, args ...string) (string, error) {
	t.Helper()
	buf := &bytes.Buffer{}
	cmd := NewRootCommand()
	cmd.SetOut(buf)
	cmd.SetErr(io.Discard)
	cmd.SetArgs(args)
	err := cmd.Execute()
	return buf.String(), err
}

func TestRootCommand(t *testing.T) {
	cmd := NewRootCommand()
	require.NotNil(t, cmd)
	assert.Equal(t, "trail", cmd.Use)

	seed := cmd.PersistentFlags().Lookup("seed")
	require.NotNil(t, seed)
	assert.Equal(t, "0", seed.DefValue)
}

func TestCommandPresence(t *testing.T) {
	cmd := NewRootCommand()
	for _, name := range []string{"play", "simulate", "scores", "sessions"} {
		t.Run(name, func(t *testing.T) {
			sub, _, err := cmd.Find([]string{name})
			require.NoError(t, err)
			assert.Equal(t, name, sub.Name())
		})
	}
}

func TestSimulateCommand(t *testing.T) {
	dir := useTempDirs(t)

	out, err := execute(t, "simulate", "--seed", "7", "--record")
	require.NoError(t, err)
	assert.Contains(t, out, "--- Simulating seed 7 ---")
	assert.Contains(t, out, "The banker party of Ann, Ben, Cy leaves Independence.")

	if !strings.Contains(out, "--- Result ---") {
		assert.Contains(t, out, "Stopped after")
		return
	}
	store, err := scores.Open(filepath.Join(dir, "scores.db"))
	require.NoError(t, err)
	defer store.Close()
	top, err := store.Top(context.Background(), 10)
	require.NoError(t, err)
	require.Len(t, top, 1)
	assert.Equal(t, "Ann", top[0].Leader)
	assert.Equal(t, models.Banker, top[0].Profession)
}

func TestSimulateCommandStopsAtPulseLimit(t *testing.T) {
	useTempDirs(t)

	out, err := execute(t, "simulate", "--seed", "3", "--max-pulses", "5")
	require.NoError(t, err)
	assert.Contains(t, out, "Stopped after 5 pulses.")
	assert.NotContains(t, out, "--- Result ---")
}

func TestSimulateCommandKeepsSeedZero(t *testing.T) {
	useTempDirs(t)

	out, err := execute(t, "simulate", "--seed", "0", "--max-pulses", "1")
	require.NoError(t, err)
	assert.Contains(t, out, "--- Simulating seed 0 ---")

	t.Setenv("TRAIL_SEED", "0")
	out, err = execute(t, "simulate", "--max-pulses", "1")
	require.NoError(t, err)
	assert.Contains(t, out, "--- Simulating seed 0 ---")
}

func saveBundle(t *testing.T, dir string, info *models.NewGameInfo) {
	t.Helper()
	models.SaveDir = filepath.Join(dir, "saves")
	require.NoError(t, info.Save())
}

func TestSessionsCommand(t *testing.T) {
	dir := useTempDirs(t)

	out, err := execute(t, "sessions")
	require.NoError(t, err)
	assert.Contains(t, out, "No saved sessions.")

	saveBundle(t, dir, &models.NewGameInfo{
		ID:            "trip-1",
		PlayerNames:   []string{"Dee", "Eve"},
		Profession:    models.Carpenter,
		StartingMonth: time.May,
	})
	out, err = execute(t, "sessions")
	require.NoError(t, err)
	assert.Contains(t, out, "trip-1")
	assert.Contains(t, out, "carpenter")
	assert.Contains(t, out, "May")
	assert.Contains(t, out, "Dee, Eve")
}

func TestSimulateCommandReplaysBundle(t *testing.T) {
	dir := useTempDirs(t)
	saveBundle(t, dir, &models.NewGameInfo{
		ID:            "trip-2",
		PlayerNames:   []string{"Dee", "Eve"},
		Profession:    models.Farmer,
		StartingMonth: time.June,
	})

	out, err := execute(t, "simulate", "--seed", "1", "--bundle", "trip-2", "--max-pulses", "10")
	require.NoError(t, err)
	assert.Contains(t, out, "The farmer party of Dee, Eve leaves Independence.")
	assert.Contains(t, out, "June")

	_, err = execute(t, "simulate", "--bundle", "missing")
	assert.ErrorContains(t, err, "load bundle missing")
}

func TestPartyFromBundle(t *testing.T) {
	p, err := partyFromBundle(&models.NewGameInfo{
		PlayerNames:   []string{"Ann"},
		Profession:    models.Farmer,
		StartingMonth: time.March,
	})
	require.NoError(t, err)
	assert.Equal(t, Party{Profession: 3, Names: []string{"Ann"}, Month: 1}, p)

	_, err = partyFromBundle(&models.NewGameInfo{Profession: "trapper"})
	assert.Error(t, err)
}

func TestSimulateCommandRejectsParty(t *testing.T) {
	useTempDirs(t)

	_, err := execute(t, "simulate", "--profession", "4")
	assert.ErrorContains(t, err, "profession")

	_, err = execute(t, "simulate", "--names", "a,b,c,d,e")
	assert.ErrorContains(t, err, "names")
}

func TestScoresCommand(t *testing.T) {
	dir := useTempDirs(t)

	out, err := execute(t, "scores")
	require.NoError(t, err)
	assert.Contains(t, out, "No games recorded yet.")

	store, err := scores.Open(filepath.Join(dir, "scores.db"))
	require.NoError(t, err)
	ctx := context.Background()
	_, err = store.Record(ctx, "a", engine.Result{Win: true, Points: 1172, Leader: "Ann", Profession: models.Farmer, Days: 150, Location: "Willamette Valley"})
	require.NoError(t, err)
	_, err = store.Record(ctx, "b", engine.Result{Reason: "everyone in the party has died", Leader: "Bo", Profession: models.Banker, Days: 40})
	require.NoError(t, err)
	require.NoError(t, store.Close())

	out, err = execute(t, "scores", "-n", "5")
	require.NoError(t, err)
	lines := strings.Split(strings.TrimSpace(out), "\n")
	require.Len(t, lines, 3)
	assert.Contains(t, lines[1], "Ann")
	assert.Contains(t, lines[1], "1,172")
	assert.Contains(t, lines[1], "arrived at Willamette Valley")
	assert.Contains(t, lines[2], "everyone in the party has died")
}

func newQuietEngine(t *testing.T) *engine.Engine {
	t.Helper()
	eng, err := engine.New(engine.Options{
		Rand:         dice.Constant{Int: 98},
		LogicalEvery: 1,
		Log:          slog.New(slog.NewTextHandler(io.Discard, nil)),
	})
	require.NoError(t, err)
	game.Register(eng, game.Options{})
	require.NoError(t, eng.Begin())
	return eng
}

func TestAutoplayerOutfitsAndLeaves(t *testing.T) {
	eng := newQuietEngine(t)
	a := newAutoplayer(eng, Party{Profession: 1, Names: []string{"Ann", "Ben"}, Month: 2})

	err := a.run(60)
	require.ErrorIs(t, err, ErrPulseLimit)

	require.NotNil(t, eng.Info)
	assert.Equal(t, []string{"Ann", "Ben"}, eng.Info.PlayerNames)
	assert.Equal(t, models.Banker, eng.Info.Profession)
	assert.NotEmpty(t, eng.Info.ID)

	inv := eng.Vehicle.Inventory
	assert.Equal(t, 6, inv.Quantity(models.Oxen))
	assert.Equal(t, 1600-280, inv.Quantity(models.Cash))
	assert.Equal(t, 100, inv.Quantity(models.Ammo))

	assert.Nil(t, eng.Windows.Find(window.NewGame))
	assert.Nil(t, eng.Windows.Find(window.Store))
	assert.NotNil(t, eng.Windows.Find(window.Travel))
	assert.Positive(t, eng.Clock.Days())
	assert.Positive(t, eng.Vehicle.DistanceTraveled)
}

func TestAutoplayerRestsWithoutOxen(t *testing.T) {
	eng := newQuietEngine(t)
	require.NoError(t, eng.StartGame(&models.NewGameInfo{PlayerNames: []string{"Ann"}, Profession: models.Banker}))
	eng.Windows.Clear()
	require.NoError(t, eng.Windows.Push(window.Travel))
	eng.Vehicle.Inventory.Add(models.Food, 500)

	a := newAutoplayer(eng, Party{})
	line, ok := a.next()
	require.True(t, ok)
	assert.Equal(t, "6", line)
	line, ok = a.next()
	require.True(t, ok)
	assert.Equal(t, "9", line)
}

func TestAutoplayerRiverChoice(t *testing.T) {
	a := &autoplayer{}
	assert.Equal(t, "1", a.river(&game.RiverInfo{Depth: 3}))
	assert.Equal(t, "2", a.river(&game.RiverInfo{Depth: 4}))
}

func TestValidateParty(t *testing.T) {
	tests := []struct {
		name  string
		party Party
		ok    bool
	}{
		{"valid", Party{Profession: 3, Names: []string{"Ann"}, Month: 5}, true},
		{"no names", Party{Profession: 1, Month: 1}, false},
		{"blank name", Party{Profession: 1, Names: []string{"Ann", ""}, Month: 1}, false},
		{"bad month", Party{Profession: 1, Names: []string{"Ann"}, Month: 6}, false},
		{"bad profession", Party{Profession: 0, Names: []string{"Ann"}, Month: 1}, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := validateParty(tt.party)
			if tt.ok {
				assert.NoError(t, err)
			} else {
				assert.Error(t, err)
			}
		})
	}
}
