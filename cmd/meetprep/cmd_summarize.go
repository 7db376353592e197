package main

import (
	"context"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/spf13/cobra"

	"github.com/spboyer/meetprep/internal/history"
	"github.com/spboyer/meetprep/internal/ingest"
	"github.com/spboyer/meetprep/internal/models"
	"github.com/spboyer/meetprep/internal/pipeline"
	"github.com/spboyer/meetprep/internal/prompts"
	"github.com/spboyer/meetprep/internal/roles"
)

var (
	sumCompany    string
	sumObjective  string
	sumAttendees  string
	sumFocus      string
	sumSave       bool
	sumConfigPath string
	sumModel      string
)

func newSummarizeCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "summarize <transcript-file|->",
		Short: "Summarize a meeting transcript",
		Long: `Summarize a meeting transcript into decisions, action items, and risks.

The transcript can be a text, markdown, or PDF file. With --save the
summary is recorded in history alongside full preparation runs.`,
		Args: cobra.ExactArgs(1),
		RunE: summarizeCommandE,
	}

	cmd.Flags().StringVar(&sumCompany, "company", "", "Company or meeting topic")
	cmd.Flags().StringVar(&sumObjective, "objective", "", "Meeting objective, for context")
	cmd.Flags().StringVar(&sumAttendees, "attendees", "", "Attendees with roles")
	cmd.Flags().StringVar(&sumFocus, "focus", "", "Focus areas, for context")
	cmd.Flags().BoolVar(&sumSave, "save", false, "Record the summary in history")
	cmd.Flags().StringVar(&sumConfigPath, "config", "", "Config file (default: ./.meetprep.yaml)")
	cmd.Flags().StringVar(&sumModel, "model", "", "Model to use (overrides config)")

	return cmd
}

func summarizeCommandE(cmd *cobra.Command, args []string) error {
	path := args[0]

	cfg, err := loadConfig(sumConfigPath)
	if err != nil {
		return err
	}

	var data []byte
	name := filepath.Base(path)
	if path == "-" {
		data, err = io.ReadAll(cmd.InOrStdin())
		name = "stdin"
	} else {
		data, err = os.ReadFile(path)
	}
	if err != nil {
		return fmt.Errorf("reading transcript %s: %w", path, err)
	}
	docs := ingest.ExtractDocuments([]ingest.File{{Name: name, Data: data}})
	if len(docs) == 0 {
		return fmt.Errorf("no text could be extracted from %s", path)
	}

	in := prompts.Inputs{
		Company:    sumCompany,
		Objective:  sumObjective,
		Attendees:  sumAttendees,
		FocusAreas: sumFocus,
	}
	if in.Company == "" {
		in.Company = "the meeting"
	}

	reg := roles.NewRegistry(sessionParams(cfg, sumModel))
	task := prompts.TranscriptSummaryTask(reg, in, docs[0].Content)

	eng, err := buildEngine(cfg)
	if err != nil {
		return err
	}

	ctx := context.Background()
	if err := eng.Initialize(ctx); err != nil {
		return fmt.Errorf("initializing engine: %w", err)
	}
	defer eng.Shutdown(ctx) //nolint:errcheck

	out := cmd.OutOrStdout()
	outcome, err := pipeline.One(eng, task,
		pipeline.WithListener(newStageReporter(out).Listen)).Run(ctx)
	if err != nil {
		return err
	}

	summary := outcome.Stages[0].Text
	fmt.Fprintln(out)
	fmt.Fprintln(out, summary)

	if sumSave {
		store, err := history.Open(cfg.HistoryPath)
		if err != nil {
			return err
		}
		entry := models.HistoryEntry{
			Timestamp: time.Now(),
			Company:   in.Company,
			Objective: strings.TrimSpace(sumObjective + " (Transcript Summary)"),
			Attendees: sumAttendees,
			Documents: []string{docs[0].Name},
			Result:    summary,
		}
		if err := store.Append(entry); err != nil {
			fmt.Fprintf(out, "\n[WARN] could not record history: %v\n", err)
			return nil
		}
		fmt.Fprintln(out, "\nSummary recorded in history.")
	}

	return nil
}
