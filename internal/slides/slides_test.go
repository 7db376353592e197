package slides

import (
	"archive/zip"
	"fmt"
	"io"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
)

const sampleDoc = `# Executive Brief

Intro paragraph on the meeting.

## Key Talking Points

- Revenue grew 20%
- Churn dropped below 2%

### Supporting Detail

Deep-dive paragraph.
`

func TestBuildDeck(t *testing.T) {
	deck, err := BuildDeck([]byte(sampleDoc))
	require.NoError(t, err)
	require.Len(t, deck, 2)

	require.Equal(t, "Executive Brief", deck[0].Title)
	require.Equal(t, []string{"Intro paragraph on the meeting."}, deck[0].Bullets)

	require.Equal(t, "Key Talking Points", deck[1].Title)
	// Level-3 headings and their content stay on the current slide.
	require.Equal(t, []string{
		"Revenue grew 20%",
		"Churn dropped below 2%",
		"Supporting Detail",
		"Deep-dive paragraph.",
	}, deck[1].Bullets)
}

func TestBuildDeck_ContentBeforeHeading(t *testing.T) {
	deck, err := BuildDeck([]byte("orphan paragraph\n\n# Later"))
	require.NoError(t, err)
	require.Equal(t, "Overview", deck[0].Title)
	require.Equal(t, []string{"orphan paragraph"}, deck[0].Bullets)
}

func TestBuildDeck_OverflowContinues(t *testing.T) {
	var md strings.Builder
	md.WriteString("# Crowded\n\n")
	for i := 0; i < 11; i++ {
		fmt.Fprintf(&md, "- bullet %d\n", i)
	}

	deck, err := BuildDeck([]byte(md.String()))
	require.NoError(t, err)
	require.Len(t, deck, 2)
	require.Equal(t, "Crowded (cont.)", deck[1].Title)
	require.Len(t, deck[0].Bullets, maxBulletsPerSlide)
	require.Len(t, deck[1].Bullets, 3)
}

func TestBuildDeck_Empty(t *testing.T) {
	_, err := BuildDeck([]byte("   \n"))
	require.ErrorIs(t, err, ErrEmptyDeck)
}

func TestWritePPTX(t *testing.T) {
	deck := []Slide{
		{Title: "Opening & Goals", Bullets: []string{"Align on <scope>", "Confirm \"owners\""}},
		{Title: "Next Steps"},
	}

	path := filepath.Join(t.TempDir(), "deck.pptx")
	require.NoError(t, WritePPTX(path, deck))

	zr, err := zip.OpenReader(path)
	require.NoError(t, err)
	defer zr.Close()

	names := map[string]bool{}
	for _, f := range zr.File {
		names[f.Name] = true
	}
	require.True(t, names["[Content_Types].xml"])
	require.True(t, names["ppt/presentation.xml"])
	require.True(t, names["ppt/slides/slide1.xml"])
	require.True(t, names["ppt/slides/slide2.xml"])
	require.True(t, names["ppt/slideMasters/slideMaster1.xml"])

	// Markup-significant characters are escaped in slide text.
	var slide1 string
	for _, f := range zr.File {
		if f.Name == "ppt/slides/slide1.xml" {
			rc, err := f.Open()
			require.NoError(t, err)
			data, err := io.ReadAll(rc)
			require.NoError(t, err)
			require.NoError(t, rc.Close())
			slide1 = string(data)
		}
	}
	require.Contains(t, slide1, "Opening &amp; Goals")
	require.Contains(t, slide1, "Align on &lt;scope&gt;")
	require.Contains(t, slide1, "Confirm &quot;owners&quot;")
}

func TestWritePPTX_EmptyDeck(t *testing.T) {
	err := WritePPTX(filepath.Join(t.TempDir(), "deck.pptx"), nil)
	require.ErrorIs(t, err, ErrEmptyDeck)
}
