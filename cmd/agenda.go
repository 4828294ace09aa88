package cmd

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"almanac/internal/api"
	"almanac/internal/config"
	"almanac/internal/store"
)

var agendaDays int

// agendaCmd prints upcoming items without entering the TUI, for scripts and
// shell prompts.
var agendaCmd = &cobra.Command{
	Use:   "agenda",
	Short: "List upcoming events and tasks",
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := config.Load()
		if err != nil {
			return err
		}
		client := api.NewClient(cfg.Server.URL, cfg.Server.Token)
		st := store.New(client, cfg.Location())
		if _, err := st.Load(cmd.Context()); err != nil {
			return err
		}

		now := time.Now().In(cfg.Location())
		items := st.Upcoming(now, time.Duration(agendaDays)*24*time.Hour)
		if len(items) == 0 {
			fmt.Printf("Nothing scheduled in the next %d days.\n", agendaDays)
			return nil
		}

		var lastDay string
		for _, it := range items {
			day := it.Start.Format("Mon Jan 2")
			if day != lastDay {
				fmt.Printf("%s:\n", day)
				lastDay = day
			}
			mark := " "
			if it.Kind == store.KindTask {
				mark = "☐"
				if it.Completed {
					mark = "✓"
				}
			}
			fmt.Printf("  %s %s %s\n", it.Start.Format("15:04"), mark, it.Title)
		}
		return nil
	},
}

func init() {
	agendaCmd.Flags().IntVarP(&agendaDays, "days", "n", 7, "how many days ahead to show")
}
