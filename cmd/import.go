package cmd

import (
	"fmt"
	"os"
	"time"

	"github.com/spf13/cobra"

	"github.com/avelar/dayline/internal/config"
	"github.com/avelar/dayline/internal/db"
	"github.com/avelar/dayline/internal/ics"
)

var (
	importCalendar string
	importRank     int
	importHorizon  int
)

// importCmd ingests an ICS file: recurrences are expanded here, at the
// boundary, so the stored events (and everything downstream) are always
// concrete instances.
var importCmd = &cobra.Command{
	Use:   "import <file.ics>",
	Short: "Import events from an iCalendar file",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, _ := config.Load()
		loc := cfg.Location()

		body, err := os.ReadFile(args[0])
		if err != nil {
			return err
		}
		events, skipped, err := ics.Parse(body)
		if err != nil {
			return fmt.Errorf("parse %s: %w", args[0], err)
		}

		now := time.Now().In(loc)
		horizon := time.Duration(importHorizon) * 24 * time.Hour
		instances := ics.Expand(events, now.Add(-horizon), now.Add(horizon), loc)

		dbh, err := db.Open()
		if err != nil {
			return err
		}
		defer dbh.Close()

		if importCalendar != "" {
			if err := db.EnsureCalendar(dbh, importCalendar); err != nil {
				return err
			}
			if cmd.Flags().Changed("rank") {
				if err := db.SetCalendarRank(dbh, importCalendar, importRank); err != nil {
					return err
				}
			}
		}

		stored := 0
		for _, in := range instances {
			ev := db.Event{
				UID:        in.UID,
				CalendarID: importCalendar,
				Title:      in.Summary,
				Location:   in.Location,
				AllDay:     in.AllDay,
				StartDate:  in.Start.Format("2006-01-02"),
			}
			if in.AllDay {
				ev.EndDate = in.End.AddDate(0, 0, -1).Format("2006-01-02")
			} else {
				ev.StartTime = in.Start.Format("15:04")
				ev.EndDate = in.End.Format("2006-01-02")
				ev.EndTime = in.End.Format("15:04")
			}
			if _, err := db.UpsertEventByUID(dbh, ev); err != nil {
				return err
			}
			stored++
		}

		fmt.Printf("imported %d instances from %d events", stored, len(events))
		if skipped > 0 {
			fmt.Printf(" (%d skipped)", skipped)
		}
		fmt.Println()
		return nil
	},
}

func init() {
	importCmd.Flags().StringVar(&importCalendar, "calendar", "", "calendar id to file events under")
	importCmd.Flags().IntVar(&importRank, "rank", 0, "set the calendar's rank")
	importCmd.Flags().IntVar(&importHorizon, "horizon", 90, "days before/after today to expand recurrences")
}
