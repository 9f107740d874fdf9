package cli

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/tatianab/trail-game/internal/models"
)

// NewSessionsCommand creates the sessions command.
func NewSessionsCommand(rootOpts *RootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "sessions",
		Short: "List saved new-game bundles",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			ids, err := models.ListSessions()
			if err != nil {
				return err
			}
			out := cmd.OutOrStdout()
			if len(ids) == 0 {
				fmt.Fprintln(out, "No saved sessions.")
				return nil
			}
			for _, id := range ids {
				info, err := models.LoadNewGame(id)
				if err != nil {
					return fmt.Errorf("load %s: %w", id, err)
				}
				fmt.Fprintf(out, "%s  %-10s %-5s %s\n", id, string(info.Profession),
					info.StartingMonth.String()[:3], strings.Join(info.PlayerNames, ", "))
			}
			return nil
		},
	}
}
