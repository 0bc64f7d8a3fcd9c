package cmd

import (
	"fmt"
	"strings"
	"time"

	"github.com/spf13/cobra"

	"github.com/avelar/dayline/internal/config"
	"github.com/avelar/dayline/internal/db"
	"github.com/avelar/dayline/internal/utils"
)

var (
	addDate     string
	addAt       string
	addFor      string
	addCalendar string
	addAllDay   bool
	addLocation string
)

var addCmd = &cobra.Command{
	Use:   "add <title>",
	Short: "Add an event",
	Args:  cobra.MinimumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, _ := config.Load()
		loc := cfg.Location()

		day, err := utils.ResolveDay(addDate, loc)
		if err != nil {
			return err
		}

		ev := db.Event{
			Title:      strings.Join(args, " "),
			CalendarID: addCalendar,
			StartDate:  day,
			AllDay:     addAllDay,
			Location:   addLocation,
		}

		if !addAllDay {
			clock, err := utils.ParseClock(addAt)
			if err != nil {
				return err
			}
			if clock == "" {
				return fmt.Errorf("--at is required for timed events (or pass --all-day)")
			}
			span := time.Hour
			if d, err := utils.ParseSpan(addFor); err != nil {
				return err
			} else if d > 0 {
				span = d
			}

			start, err := time.ParseInLocation("2006-01-02 15:04", day+" "+clock, loc)
			if err != nil {
				return err
			}
			end := start.Add(span)

			ev.StartTime = start.Format("15:04")
			ev.EndDate = end.Format("2006-01-02")
			ev.EndTime = end.Format("15:04")
		}

		dbh, err := db.Open()
		if err != nil {
			return err
		}
		defer dbh.Close()

		if ev.CalendarID != "" {
			if err := db.EnsureCalendar(dbh, ev.CalendarID); err != nil {
				return err
			}
		}
		id, err := db.InsertEvent(dbh, ev)
		if err != nil {
			return err
		}
		fmt.Printf("added event %d on %s\n", id, day)
		return nil
	},
}

func init() {
	addCmd.Flags().StringVar(&addDate, "date", "", "day of the event (default today)")
	addCmd.Flags().StringVar(&addAt, "at", "", "start time, HH:MM")
	addCmd.Flags().StringVar(&addFor, "for", "", "duration, e.g. 45m or 1h30m (default 1h)")
	addCmd.Flags().StringVar(&addCalendar, "calendar", "", "owning calendar id")
	addCmd.Flags().BoolVar(&addAllDay, "all-day", false, "all-day event")
	addCmd.Flags().StringVar(&addLocation, "location", "", "event location")
}
