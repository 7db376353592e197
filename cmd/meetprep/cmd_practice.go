package main

import (
	"context"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/charmbracelet/huh"
	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/spboyer/meetprep/internal/engine"
	"github.com/spboyer/meetprep/internal/models"
	"github.com/spboyer/meetprep/internal/pipeline"
	"github.com/spboyer/meetprep/internal/practice"
	"github.com/spboyer/meetprep/internal/prompts"
	"github.com/spboyer/meetprep/internal/roles"
	"github.com/spboyer/meetprep/internal/spinner"
)

const (
	practiceActionObjection = "objection"
	practiceActionRespond   = "respond"
	practiceActionLog       = "log"
	practiceActionClear     = "clear"
	practiceActionQuit      = "quit"
)

var (
	pracCompany    string
	pracObjective  string
	pracAttendees  string
	pracFocus      string
	pracConfigPath string
	pracModel      string
)

func newPracticeCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "practice",
		Short: "Run an interactive objection-handling rehearsal",
		Long: `Run an interactive rehearsal session.

The coach raises realistic stakeholder objections one at a time. Respond
to each and receive a score, coaching tips, and a refined sample answer.
The last ten turns of the session are carried into every prompt.`,
		RunE: practiceCommandE,
	}

	cmd.Flags().StringVar(&pracCompany, "company", "", "Company or meeting topic")
	cmd.Flags().StringVar(&pracObjective, "objective", "", "Meeting objective")
	cmd.Flags().StringVar(&pracAttendees, "attendees", "", "Attendees with roles")
	cmd.Flags().StringVar(&pracFocus, "focus", "", "Focus areas or concerns")
	cmd.Flags().StringVar(&pracConfigPath, "config", "", "Config file (default: ./.meetprep.yaml)")
	cmd.Flags().StringVar(&pracModel, "model", "", "Model to use (overrides config)")

	return cmd
}

func practiceCommandE(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig(pracConfigPath)
	if err != nil {
		return err
	}

	in := prompts.Inputs{
		Company:    pracCompany,
		Objective:  pracObjective,
		Attendees:  pracAttendees,
		FocusAreas: pracFocus,
	}
	if in.Company == "" {
		return fmt.Errorf("a company or meeting topic is required (use --company)")
	}

	reg := roles.NewRegistry(sessionParams(cfg, pracModel))

	eng, err := buildEngine(cfg)
	if err != nil {
		return err
	}

	ctx := context.Background()
	if err := eng.Initialize(ctx); err != nil {
		return fmt.Errorf("initializing engine: %w", err)
	}
	defer eng.Shutdown(ctx) //nolint:errcheck

	stdin := cmd.InOrStdin()
	out := cmd.OutOrStdout()
	session := practice.NewSession()

	fmt.Fprintf(out, "Practice session for %s. The coach will challenge you.\n\n", in.Company)

	for {
		action, err := promptPracticeAction(stdin, out, session.Len() > 0)
		if err != nil {
			return err
		}

		switch action {
		case practiceActionObjection:
			objection, err := generateText(ctx, eng, out,
				prompts.ObjectionTask(reg, in, session.Window()), "Thinking of an objection")
			if err != nil {
				return err
			}
			session.Append(practice.RoleCoach, objection)
			fmt.Fprintf(out, "\nCoach: %s\n\n", objection)

		case practiceActionRespond:
			response, err := promptResponse(stdin, out)
			if err != nil {
				return err
			}
			if strings.TrimSpace(response) == "" {
				continue
			}
			session.Append(practice.RoleYou, response)

			feedback, err := generateText(ctx, eng, out,
				prompts.ScoreResponseTask(reg, in, session.Window(), response), "Scoring your response")
			if err != nil {
				return err
			}
			session.Append(practice.RoleCoach, feedback)
			fmt.Fprintf(out, "\n%s\n\n", feedback)

		case practiceActionLog:
			fmt.Fprintf(out, "\n%s\n\n", session.Window())

		case practiceActionClear:
			session.Clear()
			fmt.Fprintln(out, "Session cleared.")

		case practiceActionQuit:
			fmt.Fprintf(out, "Session over after %d turn(s). Good luck in the room.\n", session.Len())
			return nil
		}
	}
}

func promptPracticeAction(in io.Reader, out io.Writer, hasTurns bool) (string, error) {
	options := []huh.Option[string]{
		huh.NewOption("Hear the next objection", practiceActionObjection),
	}
	if hasTurns {
		options = append(options,
			huh.NewOption("Respond to the last objection", practiceActionRespond),
			huh.NewOption("Show the practice log", practiceActionLog),
			huh.NewOption("Clear the session", practiceActionClear),
		)
	}
	options = append(options, huh.NewOption("End the session", practiceActionQuit))

	action := ""
	form := huh.NewForm(huh.NewGroup(
		huh.NewSelect[string]().
			Title("What next?").
			Options(options...).
			Value(&action),
	)).WithInput(in).WithOutput(out)

	if f, ok := in.(*os.File); !ok || !term.IsTerminal(int(f.Fd())) {
		form = form.WithAccessible(true)
	}

	if err := form.Run(); err != nil {
		return "", fmt.Errorf("practice menu failed: %w", err)
	}
	return action, nil
}

func promptResponse(in io.Reader, out io.Writer) (string, error) {
	response := ""
	form := huh.NewForm(huh.NewGroup(
		huh.NewText().
			Title("Your response").
			Value(&response),
	)).WithInput(in).WithOutput(out)

	if f, ok := in.(*os.File); !ok || !term.IsTerminal(int(f.Fd())) {
		form = form.WithAccessible(true)
	}

	if err := form.Run(); err != nil {
		return "", fmt.Errorf("response prompt failed: %w", err)
	}
	return response, nil
}

// generateText runs a single task and returns its text, showing a spinner
// while the backend works.
func generateText(ctx context.Context, eng engine.Engine, out io.Writer, task models.Task, message string) (string, error) {
	stop := spinner.Start(out, message)
	outcome, err := pipeline.One(eng, task).Run(ctx)
	stop()
	if err != nil {
		return "", err
	}
	return outcome.Stages[0].Text, nil
}
