package main

import (
	"fmt"
	"strconv"

	"github.com/mattn/go-runewidth"
	"github.com/spf13/cobra"

	"github.com/spboyer/meetprep/internal/history"
)

var historyConfigPath string

func newHistoryCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "history",
		Short: "Manage saved preparation results",
	}

	cmd.PersistentFlags().StringVar(&historyConfigPath, "config", "", "Config file (default: ./.meetprep.yaml)")

	cmd.AddCommand(newHistoryListCommand())
	cmd.AddCommand(newHistoryShowCommand())
	cmd.AddCommand(newHistoryClearCommand())

	return cmd
}

func openHistory() (*history.Store, error) {
	cfg, err := loadConfig(historyConfigPath)
	if err != nil {
		return nil, err
	}
	return history.Open(cfg.HistoryPath)
}

func newHistoryListCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List saved results, newest first",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			store, err := openHistory()
			if err != nil {
				return err
			}

			entries := store.Entries()
			if len(entries) == 0 {
				fmt.Fprintln(cmd.OutOrStdout(), "No saved results.")
				return nil
			}

			// Align the objective column on display width, not byte length.
			companyWidth := 0
			for _, e := range entries {
				if w := runewidth.StringWidth(e.Company); w > companyWidth {
					companyWidth = w
				}
			}

			out := cmd.OutOrStdout()
			for i, e := range entries {
				fmt.Fprintf(out, "%2d  %s  %s  %s\n",
					i,
					e.Timestamp.Format("2006-01-02 15:04"),
					runewidth.FillRight(e.Company, companyWidth),
					e.Objective)
			}
			return nil
		},
	}
}

func newHistoryShowCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "show <index>",
		Short: "Print a saved result (0 = newest)",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			index, err := strconv.Atoi(args[0])
			if err != nil {
				return fmt.Errorf("invalid index %q", args[0])
			}

			store, err := openHistory()
			if err != nil {
				return err
			}

			entry, err := store.Get(index)
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			fmt.Fprintf(out, "%s\n\n", entry.Title())
			fmt.Fprintln(out, entry.Result)
			return nil
		},
	}
}

func newHistoryClearCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "clear",
		Short: "Delete all saved results",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			store, err := openHistory()
			if err != nil {
				return err
			}

			n := store.Len()
			if err := store.Clear(); err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Cleared %d saved result(s).\n", n)
			return nil
		},
	}
}
