package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/subtrack-inc/subtrack/internal/interfaces/cli"
	"github.com/subtrack-inc/subtrack/internal/interfaces/cli/insights"
	"github.com/subtrack-inc/subtrack/internal/interfaces/cli/migrate"
	"github.com/subtrack-inc/subtrack/internal/interfaces/cli/worker"
)

func main() {
	rootCmd := &cobra.Command{
		Use:   "subtrack",
		Short: "SubTrack - subscription expense tracking",
		Long:  `SubTrack tracks recurring subscriptions, processes renewals, and reports spending insights.`,
	}

	rootCmd.AddCommand(
		worker.NewCommand(),
		migrate.NewCommand(),
		insights.NewCommand(),
	)

	rootCmd.SilenceErrors = true

	if err := rootCmd.Execute(); err != nil {
		if appErr := cli.Classify(err); appErr != nil {
			fmt.Fprintln(os.Stderr, appErr.Error())
		}
		os.Exit(1)
	}
}
