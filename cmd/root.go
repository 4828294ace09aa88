package cmd

import (
	"github.com/spf13/cobra"

	"almanac/internal/config"
	"almanac/internal/ui"
)

// rootCmd opens the calendar shell; subcommands cover the non-interactive
// surfaces.
var rootCmd = &cobra.Command{
	Use:   "almanac",
	Short: "Terminal calendar for events and tasks",
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := config.Load()
		if err != nil {
			return err
		}
		return ui.Run(cfg)
	},
}

func Execute() error { return rootCmd.Execute() }

func init() {
	rootCmd.AddCommand(agendaCmd, versionCmd)
}
