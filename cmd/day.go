package cmd

import (
	"github.com/spf13/cobra"

	"github.com/avelar/dayline/internal/config"
	"github.com/avelar/dayline/internal/db"
	"github.com/avelar/dayline/internal/ui"
	"github.com/avelar/dayline/internal/utils"
)

var dayDate string

// dayCmd opens the Bubble Tea day view.
var dayCmd = &cobra.Command{
	Use:   "day",
	Short: "Open the day view",
	RunE:  runDay,
}

func init() {
	dayCmd.Flags().StringVar(&dayDate, "date", "", "day to show (today, tomorrow, 2026-03-02, …)")
}

func runDay(cmd *cobra.Command, args []string) error {
	cfg, _ := config.Load()

	day, err := utils.ResolveDay(dayDate, cfg.Location())
	if err != nil {
		return err
	}

	dbh, err := db.Open()
	if err != nil {
		return err
	}
	defer dbh.Close()

	return ui.Run(dbh, cfg, day)
}
