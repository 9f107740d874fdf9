package cli

import (
	"fmt"
	"io"

	"github.com/spf13/cobra"
	"golang.org/x/text/language"
	"golang.org/x/text/message"

	"github.com/tatianab/trail-game/internal/scores"
)

var numbers = message.NewPrinter(language.English)

// NewScoresCommand creates the scores command.
func NewScoresCommand(rootOpts *RootOptions) *cobra.Command {
	var limit int

	cmd := &cobra.Command{
		Use:   "scores",
		Short: "List the best finished games",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			store, err := scores.Open(rootOpts.Config.ScoresDB)
			if err != nil {
				return fmt.Errorf("open scores: %w", err)
			}
			defer store.Close()

			top, err := store.Top(cmd.Context(), limit)
			if err != nil {
				return err
			}
			printScores(cmd.OutOrStdout(), top)
			return nil
		},
	}

	cmd.Flags().IntVarP(&limit, "limit", "n", 10, "number of games to list")

	return cmd
}

func printScores(out io.Writer, entries []scores.Entry) {
	if len(entries) == 0 {
		fmt.Fprintln(out, "No games recorded yet.")
		return
	}
	numbers.Fprintf(out, "%-4s %-12s %-10s %8s %5s  %s\n", "#", "Leader", "Profession", "Points", "Days", "Outcome")
	for i, e := range entries {
		outcome := "arrived at " + e.Location
		if !e.Win {
			outcome = e.Reason
		}
		numbers.Fprintf(out, "%-4d %-12s %-10s %8d %5d  %s\n", i+1, e.Leader, string(e.Profession), e.Points, e.Days, outcome)
	}
}
