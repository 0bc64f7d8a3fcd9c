package cmd

import (
	"context"
	"fmt"
	"os/signal"
	"syscall"
	"time"

	"github.com/spf13/cobra"

	"github.com/avelar/dayline/internal/config"
	"github.com/avelar/dayline/internal/db"
	"github.com/avelar/dayline/internal/notify"
	"github.com/avelar/dayline/internal/schedule"
	"github.com/avelar/dayline/internal/timeline"
	"github.com/avelar/dayline/internal/utils"
)

// remindCmd runs in the foreground and fires a desktop notification as
// each of today's remaining events starts. Ctrl-C stops it.
var remindCmd = &cobra.Command{
	Use:   "remind",
	Short: "Watch today's events and notify as each one starts",
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, _ := config.Load()
		loc := cfg.Location()

		day, err := utils.ResolveDay("", loc)
		if err != nil {
			return err
		}

		dbh, err := db.Open()
		if err != nil {
			return err
		}
		raw, err := db.EventsForDay(dbh, day)
		dbh.Close()
		if err != nil {
			return err
		}

		intervals, err := timeline.Normalize(raw, day, cfg.Timezone)
		if err != nil {
			return err
		}
		upcoming := 0
		now := time.Now().In(loc)
		for _, iv := range intervals {
			if iv.Start.After(now) {
				upcoming++
			}
		}
		fmt.Printf("watching %d upcoming events on %s\n", upcoming, day)

		ctx, cancel := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
		defer cancel()

		schedule.Run(ctx, intervals, func(iv timeline.Interval) {
			title, body := notify.FormatEventStart(iv.Title, iv.Start, iv.End)
			_ = notify.Info(title, body)
			fmt.Printf("%s  %s\n", time.Now().In(loc).Format("15:04"), iv.Title)
		})
		return nil
	},
}
