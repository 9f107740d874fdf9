// Package cli is the trail command tree. The root command plays the
// game in the terminal; subcommands run a headless game and list the
// best scores.
package cli

import (
	"github.com/spf13/cobra"

	"github.com/tatianab/trail-game/internal/config"
	"github.com/tatianab/trail-game/internal/models"
)

// RootOptions holds global flags for all commands.
type RootOptions struct {
	Seed   uint64
	Config *config.Config
}

// NewRootCommand creates the root command for the trail CLI.
func NewRootCommand() *cobra.Command {
	opts := &RootOptions{}

	cmd := &cobra.Command{
		Use:   "trail",
		Short: "Travel the Oregon Trail in 1848",
		Long: `A turn-based wagon journey from Independence, Missouri to the
Willamette Valley. Buy supplies, cross rivers and keep your party alive.`,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := config.LoadConfig()
			if err != nil {
				return err
			}
			if cmd.Flags().Changed("seed") {
				cfg.Seed = opts.Seed
			}
			models.SaveDir = cfg.SaveDir
			opts.Config = cfg
			return nil
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			return runPlay(cmd, opts)
		},
	}

	cmd.PersistentFlags().Uint64Var(&opts.Seed, "seed", 0, "random seed, overrides TRAIL_SEED; without either a seed is taken from the clock")

	cmd.AddCommand(NewPlayCommand(opts))
	cmd.AddCommand(NewSimulateCommand(opts))
	cmd.AddCommand(NewScoresCommand(opts))
	cmd.AddCommand(NewSessionsCommand(opts))

	return cmd
}
