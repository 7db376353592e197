package ingest

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestExtractDocuments_TextFiles(t *testing.T) {
	docs := ExtractDocuments([]File{
		{Name: "a.txt", Data: []byte("  alpha notes  ")},
		{Name: "b.md", Data: []byte("# beta")},
	})

	require.Len(t, docs, 2)
	require.Equal(t, "a.txt", docs[0].Name)
	require.Equal(t, "alpha notes", docs[0].Content)
	require.Equal(t, "b.md", docs[1].Name)
	require.Equal(t, "# beta", docs[1].Content)
}

func TestExtractDocuments_DropsEmptyAndBlank(t *testing.T) {
	docs := ExtractDocuments([]File{
		{Name: "empty.txt", Data: nil},
		{Name: "blank.txt", Data: []byte("   \n\t ")},
		{Name: "keep.txt", Data: []byte("content")},
	})

	require.Len(t, docs, 1)
	require.Equal(t, "keep.txt", docs[0].Name)
}

func TestExtractDocuments_ReplacesIllFormedBytes(t *testing.T) {
	docs := ExtractDocuments([]File{
		{Name: "weird.txt", Data: []byte{'o', 'k', 0xff, 0xfe, '!'}},
	})

	require.Len(t, docs, 1)
	require.Equal(t, "ok��!", docs[0].Content)
}

func TestExtractDocuments_SkipsUnreadablePDF(t *testing.T) {
	docs := ExtractDocuments([]File{
		{Name: "broken.PDF", Data: []byte("this is not a pdf")},
		{Name: "after.txt", Data: []byte("still here")},
	})

	// The broken PDF is skipped without affecting later files.
	require.Len(t, docs, 1)
	require.Equal(t, "after.txt", docs[0].Name)
}

func TestExtractDocuments_PreservesOrder(t *testing.T) {
	files := []File{
		{Name: "1.txt", Data: []byte("one")},
		{Name: "2.txt", Data: []byte("two")},
		{Name: "3.txt", Data: []byte("three")},
		{Name: "4.txt", Data: []byte("four")},
		{Name: "5.txt", Data: []byte("five")},
	}

	docs := ExtractDocuments(files)
	require.Len(t, docs, 5)
	for i, doc := range docs {
		require.Equal(t, files[i].Name, doc.Name)
	}
}

func TestExtractDocuments_NoFiles(t *testing.T) {
	require.Empty(t, ExtractDocuments(nil))
}
