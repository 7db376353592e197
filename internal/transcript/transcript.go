// Package transcript writes JSON run transcripts so a preparation session
// can be audited or replayed later.
package transcript

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"regexp"
	"strings"
	"time"

	"github.com/spboyer/meetprep/internal/pipeline"
	"github.com/spboyer/meetprep/internal/prompts"
)

// RunTranscript is the persisted record of one pipeline run.
type RunTranscript struct {
	Company     string                  `json:"company"`
	Objective   string                  `json:"objective"`
	Attendees   string                  `json:"attendees,omitempty"`
	FocusAreas  string                  `json:"focusAreas,omitempty"`
	Documents   []string                `json:"documents,omitempty"`
	StartedAt   time.Time               `json:"startedAt"`
	CompletedAt time.Time               `json:"completedAt"`
	DurationMs  int64                   `json:"durationMs"`
	Stages      []pipeline.StageOutcome `json:"stages"`
	FinalOutput string                  `json:"finalOutput"`
}

// sanitize replaces characters that are unsafe in filenames.
var unsafeChars = regexp.MustCompile(`[^a-zA-Z0-9_-]`)

func sanitizeName(name string) string {
	s := strings.ToLower(strings.TrimSpace(name))
	s = strings.ReplaceAll(s, " ", "-")
	s = unsafeChars.ReplaceAllString(s, "")
	if s == "" {
		s = "unnamed"
	}
	return s
}

// Filename returns the transcript filename for a company and start time.
func Filename(company string, ts time.Time) string {
	return fmt.Sprintf("%s-%s.json", sanitizeName(company), ts.Format("20060102-150405"))
}

// Write serializes a RunTranscript and writes it to dir.
func Write(dir string, t *RunTranscript) (string, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return "", fmt.Errorf("create transcript dir: %w", err)
	}

	name := Filename(t.Company, t.StartedAt)
	path := filepath.Join(dir, name)

	data, err := json.MarshalIndent(t, "", "  ")
	if err != nil {
		return "", fmt.Errorf("marshal transcript: %w", err)
	}

	if err := os.WriteFile(path, data, 0o644); err != nil {
		return "", fmt.Errorf("write transcript: %w", err)
	}

	return path, nil
}

// BuildRunTranscript constructs a RunTranscript from a pipeline outcome.
func BuildRunTranscript(in prompts.Inputs, docNames []string, outcome *pipeline.Outcome) *RunTranscript {
	return &RunTranscript{
		Company:     in.Company,
		Objective:   in.Objective,
		Attendees:   in.Attendees,
		FocusAreas:  in.FocusAreas,
		Documents:   docNames,
		StartedAt:   outcome.StartedAt,
		CompletedAt: outcome.StartedAt.Add(time.Duration(outcome.DurationMs) * time.Millisecond),
		DurationMs:  outcome.DurationMs,
		Stages:      outcome.Stages,
		FinalOutput: outcome.Document,
	}
}
