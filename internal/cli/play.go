package cli

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/spf13/cobra"

	"github.com/tatianab/trail-game/internal/engine"
	"github.com/tatianab/trail-game/internal/game"
	"github.com/tatianab/trail-game/internal/narrator"
	"github.com/tatianab/trail-game/internal/scores"
	"github.com/tatianab/trail-game/internal/tui"
)

// NewPlayCommand creates the play command. It is also what the root
// command runs.
func NewPlayCommand(rootOpts *RootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "play",
		Short: "Play the trail in the terminal",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runPlay(cmd, rootOpts)
		},
	}
}

func runPlay(cmd *cobra.Command, opts *RootOptions) error {
	cfg := opts.Config
	log, closeLog, err := newLogger(cfg)
	if err != nil {
		return err
	}
	defer closeLog()
	slog.SetDefault(log)

	eng, err := engine.New(engine.Options{
		Seed:         cfg.Seed,
		LogicalEvery: cfg.LogicalEvery,
		Log:          log,
	})
	if err != nil {
		return err
	}
	defer eng.Close()
	game.Register(eng, game.Options{SaveBundles: true})

	store, err := scores.Open(cfg.ScoresDB)
	if err != nil {
		return fmt.Errorf("open scores: %w", err)
	}
	defer store.Close()
	recordGames(cmd.Context(), eng, store, log)

	var n tui.Narrator
	if cfg.GeminiAPIKey != "" {
		gm, err := narrator.New(cmd.Context(), cfg.GeminiAPIKey)
		if err != nil {
			return fmt.Errorf("create narrator: %w", err)
		}
		defer gm.Close()
		n = gm
	}

	log.Info("starting", "seed", cfg.Seed, "tick", cfg.TickInterval.String(), "narrator", n != nil)
	return tui.Run(eng, n, cfg.TickInterval)
}

// recordGames stores every finished game in the score table and saves
// its journal next to the new-game bundle.
func recordGames(ctx context.Context, eng *engine.Engine, store *scores.Store, log *slog.Logger) {
	if ctx == nil {
		ctx = context.Background()
	}
	eng.OnGameOver(func(r engine.Result) {
		id := ""
		if eng.Info != nil {
			id = eng.Info.ID
		}
		id, err := store.Record(ctx, id, r)
		if err != nil {
			log.Error("record score", "error", err)
			return
		}
		log.Info("score recorded", "id", id, "points", r.Points)
		if eng.Info == nil || eng.Info.ID == "" {
			return
		}
		if err := eng.SaveJournal(); err != nil {
			log.Error("save journal", "error", err)
		}
	})
}
