package cmd

import (
	"fmt"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/avelar/dayline/internal/db"
)

var calendarsCmd = &cobra.Command{
	Use:   "calendars",
	Short: "List calendars and their ranks",
	RunE: func(cmd *cobra.Command, args []string) error {
		dbh, err := db.Open()
		if err != nil {
			return err
		}
		defer dbh.Close()

		cals, err := db.ListCalendars(dbh)
		if err != nil {
			return err
		}
		if len(cals) == 0 {
			fmt.Println("no calendars yet")
			return nil
		}
		for _, c := range cals {
			fmt.Printf("  %-16s rank %-3d %s\n", c.ID, c.Rank, c.Color)
		}
		return nil
	},
}

var setRankCmd = &cobra.Command{
	Use:   "set-rank <id> <rank>",
	Short: "Set a calendar's rank (higher wins layout tie-breaks)",
	Args:  cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		rank, err := strconv.Atoi(args[1])
		if err != nil {
			return fmt.Errorf("bad rank %q: %w", args[1], err)
		}

		dbh, err := db.Open()
		if err != nil {
			return err
		}
		defer dbh.Close()

		return db.SetCalendarRank(dbh, args[0], rank)
	},
}

func init() {
	calendarsCmd.AddCommand(setRankCmd)
}
