package assemble

import (
	"strings"
	"testing"
	"unicode/utf8"

	"github.com/spboyer/meetprep/internal/models"
	"github.com/stretchr/testify/require"
)

func TestTruncate_WithinBudget(t *testing.T) {
	require.Equal(t, "short", Truncate("short", 100))
	require.Equal(t, "", Truncate("", 100))

	// Exactly at the budget stays untouched.
	text := strings.Repeat("a", 50)
	require.Equal(t, text, Truncate(text, 50))
}

func TestTruncate_OverBudget(t *testing.T) {
	text := strings.Repeat("x", 200)

	for _, budget := range []int{1, 10, 100, 199} {
		got := Truncate(text, budget)
		require.Equal(t, text[:budget]+TruncationMarker, got)
		require.Len(t, got, budget+len(TruncationMarker))
	}
}

func TestTruncate_NeverSplitsRunes(t *testing.T) {
	// Each rune is 3 bytes, so a 1000-byte budget lands mid-rune (333
	// full runes + 1 stray byte). The cut must back off to the boundary.
	text := strings.Repeat("日", 400)

	got := Truncate(text, 1000)
	require.True(t, utf8.ValidString(got))
	require.Equal(t, strings.Repeat("日", 333)+TruncationMarker, got)

	// A budget on an exact boundary is used in full.
	exact := Truncate(text, 999)
	require.Equal(t, strings.Repeat("日", 333)+TruncationMarker, exact)
}

func TestBuildDigest_NoDocuments(t *testing.T) {
	require.Equal(t, NoDocumentsPlaceholder, BuildDigest(nil, 6000))
	require.Equal(t, NoDocumentsPlaceholder, BuildDigest([]models.Document{}, 6000))
}

func TestBuildDigest_Sections(t *testing.T) {
	docs := []models.Document{
		{Name: "deck.pdf", Content: "quarterly numbers"},
		{Name: "notes.txt", Content: strings.Repeat("n", 5000)},
	}

	digest := BuildDigest(docs, 1000)
	require.Contains(t, digest, "Document: deck.pdf")
	require.Contains(t, digest, "quarterly numbers")
	require.Contains(t, digest, "Document: notes.txt")
	require.Contains(t, digest, TruncationMarker)

	// Input order is preserved.
	require.Less(t, strings.Index(digest, "deck.pdf"), strings.Index(digest, "notes.txt"))
}

func TestSharedContext(t *testing.T) {
	block := SharedContext("the digest", "crm snippets")
	require.Contains(t, block, "the digest")
	require.Contains(t, block, "crm snippets")

	blank := SharedContext("the digest", "   ")
	require.Contains(t, blank, NoNotesPlaceholder)
}

func TestDirectives_Fallback(t *testing.T) {
	got := Directives(DirectiveInputs{})
	require.Equal(t, []string{FallbackDirective}, got)
}

func TestDirectives_Ordering(t *testing.T) {
	got := Directives(DirectiveInputs{LiveIntelligence: true, Compliance: true, HasNotes: true})
	require.Equal(t, []string{
		LiveIntelligenceDirective,
		ComplianceDirective,
		NotesContinuityDirective,
	}, got)

	// No fallback when at least one toggle is active.
	require.NotContains(t, got, FallbackDirective)
}

func TestDirectivesText(t *testing.T) {
	text := DirectivesText([]string{"one", "two"})
	require.Equal(t, "- one\n- two", text)
}
