package main

import (
	"context"
	"fmt"
	"os"
	"time"

	"github.com/spf13/cobra"

	"github.com/spboyer/meetprep/internal/assemble"
	"github.com/spboyer/meetprep/internal/config"
	"github.com/spboyer/meetprep/internal/history"
	"github.com/spboyer/meetprep/internal/invite"
	"github.com/spboyer/meetprep/internal/models"
	"github.com/spboyer/meetprep/internal/pipeline"
	"github.com/spboyer/meetprep/internal/prompts"
	"github.com/spboyer/meetprep/internal/roles"
	"github.com/spboyer/meetprep/internal/transcript"
)

var (
	prepCompany       string
	prepObjective     string
	prepAttendees     string
	prepDuration      int
	prepFocus         string
	prepPersonas      string
	prepRehearsal     string
	prepFollowupChans string
	prepDocs          []string
	prepInvitePath    string
	prepNotes         string
	prepOutputPath    string
	prepTranscriptDir string
	prepConfigPath    string
	prepModel         string
	prepNoSearch      bool
	prepNoSave        bool
	prepInteractive   bool
)

func newPrepareCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "prepare",
		Short: "Run the full meeting preparation pipeline",
		Long: `Run the full preparation pipeline for an upcoming meeting.

Six specialist roles run in sequence, each building on the output of the
previous stages: context analysis, industry analysis, strategy and agenda,
executive brief, rehearsal simulation, and follow-up activation.

Supporting documents (text, markdown, or PDF) are summarized into a shared
context block. Details can come from flags, a pasted calendar invite, or
the interactive wizard.`,
		RunE: prepareCommandE,
	}

	cmd.Flags().StringVar(&prepCompany, "company", "", "Company or meeting topic")
	cmd.Flags().StringVar(&prepObjective, "objective", "", "Meeting objective")
	cmd.Flags().StringVar(&prepAttendees, "attendees", "", "Attendees with roles, comma separated")
	cmd.Flags().IntVar(&prepDuration, "duration", 0, "Meeting duration in minutes (default: 60)")
	cmd.Flags().StringVar(&prepFocus, "focus", "", "Focus areas or concerns")
	cmd.Flags().StringVar(&prepPersonas, "personas", "", "Attendee persona notes")
	cmd.Flags().StringVar(&prepRehearsal, "rehearsal-focus", "", "What the rehearsal should emphasize")
	cmd.Flags().StringVar(&prepFollowupChans, "followup-channels", "", "Preferred follow-up channels")
	cmd.Flags().StringArrayVar(&prepDocs, "doc", nil, "Supporting document file (can be repeated)")
	cmd.Flags().StringVar(&prepInvitePath, "invite", "", "Calendar invite text file to pre-fill details from")
	cmd.Flags().StringVar(&prepNotes, "notes", "", "Historical notes to carry into the context")
	cmd.Flags().StringVarP(&prepOutputPath, "output", "o", "", "Write the final document to this file")
	cmd.Flags().StringVar(&prepTranscriptDir, "transcript-dir", "", "Directory to save a JSON run transcript")
	cmd.Flags().StringVar(&prepConfigPath, "config", "", "Config file (default: ./.meetprep.yaml)")
	cmd.Flags().StringVar(&prepModel, "model", "", "Model to use (overrides config)")
	cmd.Flags().BoolVar(&prepNoSearch, "no-search", false, "Disable live web search")
	cmd.Flags().BoolVar(&prepNoSave, "no-save", false, "Do not record the result in history")
	cmd.Flags().BoolVarP(&prepInteractive, "interactive", "i", false, "Collect meeting details with a guided wizard")

	return cmd
}

func prepareCommandE(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig(prepConfigPath)
	if err != nil {
		return err
	}

	in := prompts.Inputs{
		Company:         prepCompany,
		Objective:       prepObjective,
		Attendees:       prepAttendees,
		DurationMinutes: prepDuration,
		FocusAreas:      prepFocus,
		Personas:        prepPersonas,
		RehearsalFocus:  prepRehearsal,
		FollowupChans:   prepFollowupChans,
	}

	if prepInvitePath != "" {
		data, err := os.ReadFile(prepInvitePath)
		if err != nil {
			return fmt.Errorf("reading invite %s: %w", prepInvitePath, err)
		}
		applyInvite(&in, invite.Parse(string(data)))
	}

	if prepInteractive || in.Company == "" || in.Objective == "" {
		if err := runPrepareWizard(cmd.InOrStdin(), cmd.OutOrStdout(), &in); err != nil {
			return err
		}
	}
	if in.Company == "" {
		return fmt.Errorf("a company or meeting topic is required (use --company)")
	}
	if in.Objective == "" {
		return fmt.Errorf("a meeting objective is required (use --objective)")
	}

	if in.DurationMinutes == 0 {
		in.DurationMinutes = config.DefaultDurationMinutes
	}
	in.DurationMinutes = config.ClampDuration(in.DurationMinutes)

	docs, err := readDocuments(prepDocs)
	if err != nil {
		return err
	}

	store, err := history.Open(cfg.HistoryPath)
	if err != nil {
		return err
	}

	notes := prepNotes
	if notes == "" {
		notes = latestNotesFor(store, in.Company)
	}

	searcher := buildSearcher(cfg)
	if prepNoSearch {
		searcher = nil
	}

	digest := assemble.BuildDigest(docs, cfg.Documents.TruncateChars)
	directives := assemble.Directives(assemble.DirectiveInputs{
		LiveIntelligence: *cfg.Directives.LiveIntelligence && searcher != nil,
		Compliance:       *cfg.Directives.Compliance,
		HasNotes:         notes != "",
	})
	cc := prompts.Context{
		Shared:     assemble.SharedContext(digest, notes),
		Digest:     digest,
		Directives: assemble.DirectivesText(directives),
	}

	reg := roles.NewRegistry(sessionParams(cfg, prepModel))
	tasks := prompts.PipelineTasks(reg, in, cc)

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
	fmt.Fprintf(out, "Preparing meeting: %s\n", in.Company)
	fmt.Fprintf(out, "Objective: %s\n", in.Objective)
	fmt.Fprintf(out, "Duration: %d minutes\n", in.DurationMinutes)
	if len(docs) > 0 {
		fmt.Fprintf(out, "Documents: %d\n", len(docs))
	}
	if searcher == nil {
		fmt.Fprintln(out, "Live search: disabled")
	}
	fmt.Fprintln(out)

	opts := []pipeline.Option{
		pipeline.WithListener(newStageReporter(out).Listen),
	}
	if searcher != nil {
		opts = append(opts, pipeline.WithSearcher(searcher))
	}

	outcome, err := pipeline.New(eng, tasks, opts...).Run(ctx)
	if err != nil {
		return err
	}

	fmt.Fprintln(out)
	fmt.Fprintln(out, outcome.Document)

	// Supplementary artifacts are best-effort: a failed write must not
	// cost the run its history entry.
	if prepOutputPath != "" {
		if err := os.WriteFile(prepOutputPath, []byte(outcome.Document), 0o644); err != nil {
			fmt.Fprintf(out, "\n[WARN] could not save output: %v\n", err)
		} else {
			fmt.Fprintf(out, "\nDocument saved to: %s\n", prepOutputPath)
		}
	}

	transcriptDir := prepTranscriptDir
	if transcriptDir == "" {
		transcriptDir = cfg.TranscriptDir
	}
	if transcriptDir != "" {
		tr := transcript.BuildRunTranscript(in, documentNames(docs), outcome)
		if path, err := transcript.Write(transcriptDir, tr); err != nil {
			fmt.Fprintf(out, "[WARN] could not save transcript: %v\n", err)
		} else {
			fmt.Fprintf(out, "Transcript saved to: %s\n", path)
		}
	}

	if !prepNoSave {
		entry := models.HistoryEntry{
			Timestamp:  time.Now(),
			Company:    in.Company,
			Objective:  in.Objective,
			Attendees:  in.Attendees,
			FocusAreas: in.FocusAreas,
			Documents:  documentNames(docs),
			Result:     outcome.Document,
		}
		// History persistence is best-effort: a full run is never failed
		// over a bookkeeping write.
		if err := store.Append(entry); err != nil {
			fmt.Fprintf(out, "[WARN] could not record history: %v\n", err)
		}
	}

	return nil
}

// applyInvite fills inputs the flags left empty.
func applyInvite(in *prompts.Inputs, d invite.Details) {
	if in.Company == "" {
		in.Company = d.Company
	}
	if in.Attendees == "" {
		in.Attendees = d.Attendees
	}
	if in.DurationMinutes == 0 && d.DurationMinutes > 0 {
		in.DurationMinutes = d.DurationMinutes
	}
}

func documentNames(docs []models.Document) []string {
	names := make([]string, 0, len(docs))
	for _, doc := range docs {
		names = append(names, doc.Name)
	}
	return names
}
