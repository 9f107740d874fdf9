package cli

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"time"

	"github.com/spf13/cobra"

	"github.com/tatianab/trail-game/internal/engine"
	"github.com/tatianab/trail-game/internal/game"
	"github.com/tatianab/trail-game/internal/models"
	"github.com/tatianab/trail-game/internal/narrator"
	"github.com/tatianab/trail-game/internal/scores"
)

// SimulateOptions holds flags for the simulate command.
type SimulateOptions struct {
	Party     Party
	Bundle    string
	MaxPulses int
	Record    bool
	Narrate   bool
}

// NewSimulateCommand creates the simulate command.
func NewSimulateCommand(rootOpts *RootOptions) *cobra.Command {
	opts := &SimulateOptions{}

	cmd := &cobra.Command{
		Use:   "simulate",
		Short: "Play one game without a terminal and print its journal",
		Long: `Play one game with a simple autoplayer: it stocks up at the first
store, fords shallow rivers, floats deep ones, hunts when food runs low
and never stops to rest unless the oxen are gone.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runSimulate(cmd, rootOpts, opts)
		},
	}

	cmd.Flags().IntVar(&opts.Party.Profession, "profession", 1, "profession menu choice (1-3)")
	cmd.Flags().StringSliceVar(&opts.Party.Names, "names", []string{"Ann", "Ben", "Cy"}, "party names, leader first")
	cmd.Flags().IntVar(&opts.Party.Month, "month", 2, "starting month menu choice (1-5)")
	cmd.Flags().StringVar(&opts.Bundle, "bundle", "", "replay the party of a saved new-game bundle (see sessions)")
	cmd.Flags().IntVar(&opts.MaxPulses, "max-pulses", 200000, "give up after this many pulses")
	cmd.Flags().BoolVar(&opts.Record, "record", false, "store the result in the score table")
	cmd.Flags().BoolVar(&opts.Narrate, "narrate", false, "ask Gemini for an epilogue (needs GEMINI_API_KEY)")

	return cmd
}

func runSimulate(cmd *cobra.Command, rootOpts *RootOptions, opts *SimulateOptions) error {
	cfg := rootOpts.Config
	if opts.Bundle != "" {
		info, err := models.LoadNewGame(opts.Bundle)
		if err != nil {
			return fmt.Errorf("load bundle %s: %w", opts.Bundle, err)
		}
		if opts.Party, err = partyFromBundle(info); err != nil {
			return err
		}
	}
	if err := validateParty(opts.Party); err != nil {
		return err
	}
	log, closeLog, err := newLogger(cfg)
	if err != nil {
		return err
	}
	defer closeLog()

	eng, err := engine.New(engine.Options{
		Seed:         cfg.Seed,
		LogicalEvery: 1,
		Log:          log,
	})
	if err != nil {
		return err
	}
	defer eng.Close()
	game.Register(eng, game.Options{})

	if opts.Record {
		store, err := scores.Open(cfg.ScoresDB)
		if err != nil {
			return fmt.Errorf("open scores: %w", err)
		}
		defer store.Close()
		recordGames(cmd.Context(), eng, store, log)
	}

	out := cmd.OutOrStdout()
	fmt.Fprintf(out, "--- Simulating seed %d ---\n", cfg.Seed)

	if err := eng.Begin(); err != nil {
		return err
	}
	start := time.Now()
	a := newAutoplayer(eng, opts.Party)
	err = a.run(opts.MaxPulses)
	log.Info("simulation finished", "pulses", a.pulses, "elapsed", time.Since(start).String(), "error", err)
	if err != nil && !errors.Is(err, ErrPulseLimit) {
		return err
	}

	printJournal(out, eng.Journal)
	if errors.Is(err, ErrPulseLimit) {
		fmt.Fprintf(out, "\nStopped after %d pulses.\n", a.pulses)
		return nil
	}
	printResult(out, eng.Result())

	if opts.Narrate {
		return narrate(cmd.Context(), out, cfg.GeminiAPIKey, eng, log)
	}
	return nil
}

func validateParty(p Party) error {
	if p.Profession < 1 || p.Profession > len(models.Professions) {
		return fmt.Errorf("profession must be between 1 and %d", len(models.Professions))
	}
	if len(p.Names) == 0 || len(p.Names) > game.MaxPartySize {
		return fmt.Errorf("party needs between 1 and %d names", game.MaxPartySize)
	}
	for _, n := range p.Names {
		if n == "" {
			return errors.New("party names cannot be empty")
		}
	}
	if p.Month < 1 || p.Month > 5 {
		return errors.New("month must be between 1 and 5")
	}
	return nil
}

// partyFromBundle turns a saved bundle back into the menu choices that
// produced it.
func partyFromBundle(info *models.NewGameInfo) (Party, error) {
	p := Party{
		Names: info.PlayerNames,
		Month: int(info.StartingMonth) - int(time.March) + 1,
	}
	for i, prof := range models.Professions {
		if prof.Profession == info.Profession {
			p.Profession = i + 1
		}
	}
	if p.Profession == 0 {
		return Party{}, fmt.Errorf("bundle %s: unknown profession %q", info.ID, info.Profession)
	}
	return p, nil
}

func printJournal(out io.Writer, j *models.Journal) {
	fmt.Fprintln(out, "--- Journal ---")
	for _, e := range j.Entries {
		fmt.Fprintf(out, "%s: %s\n", e.Date, e.Text)
	}
}

func printResult(out io.Writer, r engine.Result) {
	fmt.Fprintln(out, "--- Result ---")
	if r.Win {
		numbers.Fprintf(out, "Arrived at %s on %s with %d survivors: %d points.\n", r.Location, r.Date, r.Survivors, r.Points)
		return
	}
	fmt.Fprintf(out, "Lost near %s on %s: %s.\n", r.Location, r.Date, r.Reason)
}

func narrate(ctx context.Context, out io.Writer, apiKey string, eng *engine.Engine, log *slog.Logger) error {
	if apiKey == "" {
		return errors.New("--narrate needs GEMINI_API_KEY")
	}
	if ctx == nil {
		ctx = context.Background()
	}
	n, err := narrator.New(ctx, apiKey)
	if err != nil {
		return fmt.Errorf("create narrator: %w", err)
	}
	defer n.Close()

	ctx, cancel := context.WithTimeout(ctx, 30*time.Second)
	defer cancel()
	text, err := n.Epilogue(ctx, eng.Summary())
	if err != nil {
		log.Error("epilogue", "error", err)
		return err
	}
	fmt.Fprintf(out, "--- Epilogue ---\n%s\n", text)
	return nil
}
