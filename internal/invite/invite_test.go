package invite

import (
	"strings"
	"testing"
	"unicode/utf8"

	"github.com/stretchr/testify/require"
)

func TestParse_FullInvite(t *testing.T) {
	text := `Subject: Contoso Quarterly Business Review
When: Tuesday, 10:00 AM (60 minutes)
Attendees: Jane Doe (CTO), Raj Patel (VP Eng)
Optional: Sam Lee`

	d := Parse(text)
	require.Equal(t, "Contoso Quarterly Business Review", d.Company)
	require.Equal(t, "Jane Doe (CTO), Raj Patel (VP Eng), Sam Lee", d.Attendees)
	require.Equal(t, 60, d.DurationMinutes)
}

func TestParse_TitlePrefixAndMinsAbbrev(t *testing.T) {
	d := Parse("Title: Fabrikam sync\nWith: Ana\nQuick 30 mins catch-up")
	require.Equal(t, "Fabrikam sync", d.Company)
	require.Equal(t, "Ana", d.Attendees)
	require.Equal(t, 30, d.DurationMinutes)
}

func TestParse_DurationClamped(t *testing.T) {
	require.Equal(t, 15, Parse("Subject: x\n5 minutes").DurationMinutes)
	require.Equal(t, 180, Parse("Subject: x\n500 minutes").DurationMinutes)
}

func TestParse_MissingFields(t *testing.T) {
	d := Parse("just some unstructured text")
	require.Empty(t, d.Company)
	require.Empty(t, d.Attendees)
	require.Zero(t, d.DurationMinutes)
}

func TestParse_FirstSubjectWins(t *testing.T) {
	d := Parse("Subject: first\nSubject: second")
	require.Equal(t, "first", d.Company)
}

func TestParse_LongFieldsClipped(t *testing.T) {
	d := Parse("Subject: " + strings.Repeat("a", 300) + "\nAttendees: " + strings.Repeat("b", 3000))
	require.Len(t, d.Company, 120)
	require.Len(t, d.Attendees, 2000)
}

func TestParse_ClipKeepsValidUTF8(t *testing.T) {
	// "x" plus 3-byte runes: the 120-byte company cap lands mid-rune
	// (1 + 39*3 = 118, two stray bytes) and must back off to the boundary.
	d := Parse("Subject: x" + strings.Repeat("日", 50))
	require.True(t, utf8.ValidString(d.Company))
	require.Equal(t, "x"+strings.Repeat("日", 39), d.Company)
}
