package main

import (
	"log/slog"

	"github.com/spf13/cobra"
)

var version = "dev"

func newRootCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "meetprep",
		Short: "Meetprep - AI-assisted meeting preparation",
		Long: `Meetprep prepares you for high-stakes meetings.

It runs a chain of specialist roles over your meeting details and
supporting documents to produce a context analysis, industry analysis,
strategy and agenda, executive brief, rehearsal guide, and follow-up plan.`,
		Version:      version,
		SilenceUsage: true,
	}

	debugLogging := cmd.PersistentFlags().Bool("debug", false, "Enable debug logging")
	cmd.PersistentPreRun = func(cmd *cobra.Command, args []string) {
		if *debugLogging {
			slog.SetLogLoggerLevel(slog.LevelDebug)
		}
	}

	// Add subcommands
	cmd.AddCommand(newPrepareCommand())
	cmd.AddCommand(newSummarizeCommand())
	cmd.AddCommand(newPracticeCommand())
	cmd.AddCommand(newHistoryCommand())
	cmd.AddCommand(newSlidesCommand())

	return cmd
}

func execute() error {
	rootCmd := newRootCommand()
	return rootCmd.Execute()
}
