package cmd

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/avelar/dayline/internal/config"
	"github.com/avelar/dayline/internal/db"
	"github.com/avelar/dayline/internal/timeline"
	"github.com/avelar/dayline/internal/utils"
)

var listDate string

// listCmd prints the laid-out day without the TUI; column assignments
// are rendered as "lane x/y" so overlap handling is visible in scripts
// and quick checks.
var listCmd = &cobra.Command{
	Use:   "list",
	Short: "Print the day's events with their lane layout",
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, _ := config.Load()

		day, err := utils.ResolveDay(listDate, cfg.Location())
		if err != nil {
			return err
		}

		dbh, err := db.Open()
		if err != nil {
			return err
		}
		defer dbh.Close()

		raw, err := db.EventsForDay(dbh, day)
		if err != nil {
			return err
		}
		layout, err := timeline.BuildDay(raw, day, cfg.Timezone)
		if err != nil {
			return err
		}

		if len(layout.Placements) == 0 {
			fmt.Printf("%s: nothing scheduled\n", day)
			return nil
		}

		fmt.Printf("%s — %d events, %d clusters\n", day, len(layout.Placements), len(layout.Clusters))
		for _, p := range layout.Placements {
			span := fmt.Sprintf("%s–%s", p.Start.Format("15:04"), p.End.Format("15:04"))
			if p.AllDay {
				span = "all day    "
			}
			lane := fmt.Sprintf("lane %d/%d", p.Column+1, p.ColumnCount)
			indent := strings.Repeat("  ", p.Column)
			fmt.Printf("  %-12s %-9s %s%s\n", span, lane, indent, p.Title)
		}
		return nil
	},
}

func init() {
	listCmd.Flags().StringVar(&listDate, "date", "", "day to list (default today)")
}
