package cmd

import (
	"github.com/spf13/cobra"

	"github.com/avelar/dayline/internal/version"
)

var rootCmd = &cobra.Command{
	Use:     "dayline",
	Short:   "A live timeline of your day in the terminal",
	Version: version.GetVersionInfo(),
	RunE: func(cmd *cobra.Command, args []string) error {
		// Bare `dayline` opens today's day view.
		return runDay(cmd, args)
	},
}

func Execute() error { return rootCmd.Execute() }

func init() {
	rootCmd.AddCommand(dayCmd, addCmd, listCmd, importCmd, calendarsCmd, remindCmd)
}
