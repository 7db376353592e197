// Package assemble builds the shared context block and directive list that
// every pipeline stage consumes. Everything here is pure: the same inputs
// always produce the same text, and nothing is cached between submissions.
package assemble

import (
	"strings"
	"unicode/utf8"

	"github.com/spboyer/meetprep/internal/models"
)

// TruncationMarker is appended whenever text is cut to fit a budget.
const TruncationMarker = "\n\n...[truncated]..."

// Fixed placeholder sentences used when optional inputs are absent.
const (
	NoDocumentsPlaceholder = "No additional supporting documents were provided."
	NoNotesPlaceholder     = "No additional notes were provided."
)

// Directive sentences injected based on active toggles. When none apply,
// FallbackDirective is emitted alone.
const (
	LiveIntelligenceDirective = "Incorporate the most recent news, market movements, and growth signals discovered via live search."
	ComplianceDirective       = "Highlight regulatory, compliance, and localization considerations that could influence the meeting."
	NotesContinuityDirective  = "Bridge insights with the historical notes provided to emphasize continuity and momentum."
	FallbackDirective         = "Focus on actionable intelligence."
)

// Truncate returns text unchanged when it fits within maxChars, otherwise
// a prefix of at most maxChars bytes followed by the truncation marker. The
// cut never splits a rune: it backs off to the previous boundary so the
// result is always valid UTF-8.
func Truncate(text string, maxChars int) string {
	if len(text) <= maxChars {
		return text
	}
	cut := maxChars
	for cut > 0 && !utf8.RuneStart(text[cut]) {
		cut--
	}
	return text[:cut] + TruncationMarker
}

// BuildDigest renders one preview section per supporting document, each
// truncated to the given character budget. With no documents it returns the
// fixed placeholder sentence, never an empty string.
func BuildDigest(docs []models.Document, truncateChars int) string {
	if len(docs) == 0 {
		return NoDocumentsPlaceholder
	}

	sections := make([]string, 0, len(docs))
	for _, doc := range docs {
		sections = append(sections,
			"Document: "+doc.Name+"\nContent Preview:\n"+Truncate(doc.Content, truncateChars))
	}
	return strings.Join(sections, "\n\n")
}

// SharedContext combines the document digest with historical notes into the
// block referenced by every stage description.
func SharedContext(digest, notes string) string {
	if strings.TrimSpace(notes) == "" {
		notes = NoNotesPlaceholder
	}
	return "Supporting documents summary:\n" + digest +
		"\n\nHistorical notes supplied by the team:\n" + notes
}

// DirectiveInputs captures the toggle states that drive directive assembly.
type DirectiveInputs struct {
	LiveIntelligence bool
	Compliance       bool
	HasNotes         bool
}

// Directives returns the ordered list of imperative directive sentences for
// the active toggles. An empty input set yields exactly the fallback
// directive.
func Directives(in DirectiveInputs) []string {
	var out []string
	if in.LiveIntelligence {
		out = append(out, LiveIntelligenceDirective)
	}
	if in.Compliance {
		out = append(out, ComplianceDirective)
	}
	if in.HasNotes {
		out = append(out, NotesContinuityDirective)
	}
	if len(out) == 0 {
		out = append(out, FallbackDirective)
	}
	return out
}

// DirectivesText renders directives as a bulleted block for prompt
// embedding.
func DirectivesText(directives []string) string {
	lines := make([]string, 0, len(directives))
	for _, d := range directives {
		lines = append(lines, "- "+d)
	}
	return strings.Join(lines, "\n")
}
