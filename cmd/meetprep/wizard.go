package main

import (
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/charmbracelet/huh"
	"golang.org/x/term"

	"github.com/spboyer/meetprep/internal/config"
	"github.com/spboyer/meetprep/internal/prompts"
)

// runPrepareWizard collects meeting details interactively, pre-populated
// with whatever the flags already provided.
func runPrepareWizard(in io.Reader, out io.Writer, inputs *prompts.Inputs) error {
	duration := ""
	if inputs.DurationMinutes > 0 {
		duration = strconv.Itoa(inputs.DurationMinutes)
	}

	form := huh.NewForm(
		huh.NewGroup(
			huh.NewInput().
				Title("Company or meeting topic").
				Placeholder("Contoso Ltd").
				Value(&inputs.Company).
				Validate(func(s string) error {
					if strings.TrimSpace(s) == "" {
						return fmt.Errorf("company is required")
					}
					return nil
				}),
			huh.NewInput().
				Title("Meeting objective").
				Placeholder("Close the renewal and expand seats").
				Value(&inputs.Objective).
				Validate(func(s string) error {
					if strings.TrimSpace(s) == "" {
						return fmt.Errorf("objective is required")
					}
					return nil
				}),
			huh.NewInput().
				Title("Attendees").
				Description("Names and roles, comma separated").
				Placeholder("Jane Doe (CTO), Raj Patel (VP Eng)").
				Value(&inputs.Attendees),
			huh.NewInput().
				Title("Duration (minutes)").
				Placeholder("60").
				Value(&duration).
				Validate(func(s string) error {
					s = strings.TrimSpace(s)
					if s == "" {
						return nil
					}
					if _, err := strconv.Atoi(s); err != nil {
						return fmt.Errorf("enter a whole number of minutes")
					}
					return nil
				}),
			huh.NewInput().
				Title("Focus areas or concerns").
				Placeholder("pricing pressure, security review").
				Value(&inputs.FocusAreas),
		),
		huh.NewGroup(
			huh.NewText().
				Title("Attendee personas (optional)").
				Description("What does each attendee care about?").
				Value(&inputs.Personas),
			huh.NewInput().
				Title("Rehearsal focus (optional)").
				Placeholder("handling budget objections").
				Value(&inputs.RehearsalFocus),
			huh.NewInput().
				Title("Follow-up channels (optional)").
				Placeholder("email, Teams").
				Value(&inputs.FollowupChans),
		),
	).
		WithInput(in).
		WithOutput(out)

	// Use accessible mode for non-TTY input (e.g., tests, piped input).
	if f, ok := in.(*os.File); !ok || !term.IsTerminal(int(f.Fd())) {
		form = form.WithAccessible(true)
	}

	if err := form.Run(); err != nil {
		return fmt.Errorf("wizard failed: %w", err)
	}

	if d := strings.TrimSpace(duration); d != "" {
		n, err := strconv.Atoi(d)
		if err == nil {
			inputs.DurationMinutes = config.ClampDuration(n)
		}
	}
	return nil
}
