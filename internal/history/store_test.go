package history

import (
	"fmt"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/spboyer/meetprep/internal/models"
	"github.com/stretchr/testify/require"
)

func newEntry(company string) models.HistoryEntry {
	return models.HistoryEntry{
		Timestamp: time.Date(2026, 8, 25, 10, 30, 0, 0, time.UTC),
		Company:   company,
		Objective: "quarterly review",
		Result:    "## Executive Brief\n\n...",
	}
}

func TestStore_AppendAndReload(t *testing.T) {
	path := filepath.Join(t.TempDir(), "history.json")

	s, err := Open(path)
	require.NoError(t, err)
	require.Zero(t, s.Len())

	require.NoError(t, s.Append(newEntry("Contoso")))
	require.NoError(t, s.Append(newEntry("Fabrikam")))

	// Newest first.
	entries := s.Entries()
	require.Len(t, entries, 2)
	require.Equal(t, "Fabrikam", entries[0].Company)
	require.Equal(t, "Contoso", entries[1].Company)

	// A fresh store reads the same file back.
	reloaded, err := Open(path)
	require.NoError(t, err)
	require.Equal(t, entries, reloaded.Entries())
}

func TestStore_CapEvictsOldest(t *testing.T) {
	path := filepath.Join(t.TempDir(), "history.json")
	s, err := Open(path)
	require.NoError(t, err)

	for i := 0; i < 25; i++ {
		require.NoError(t, s.Append(newEntry(fmt.Sprintf("Company %d", i))))
	}

	entries := s.Entries()
	require.Len(t, entries, MaxEntries)
	require.Equal(t, "Company 24", entries[0].Company)
	require.Equal(t, "Company 5", entries[len(entries)-1].Company)
}

func TestStore_MissingFileStartsEmpty(t *testing.T) {
	s, err := Open(filepath.Join(t.TempDir(), "nope", "history.json"))
	require.NoError(t, err)
	require.Zero(t, s.Len())
}

func TestStore_CorruptFileStartsEmpty(t *testing.T) {
	path := filepath.Join(t.TempDir(), "history.json")
	require.NoError(t, os.WriteFile(path, []byte("{not json"), 0o644))

	s, err := Open(path)
	require.NoError(t, err)
	require.Zero(t, s.Len())
}

func TestStore_DropsInvalidEntries(t *testing.T) {
	path := filepath.Join(t.TempDir(), "history.json")

	// Second entry is missing required fields, third has the wrong type for
	// company. Only the first survives.
	raw := `[
		{"timestamp": "2026-08-25T10:30:00Z", "company": "Contoso", "objective": "o", "result": "r"},
		{"timestamp": "2026-08-25T10:30:00Z"},
		{"timestamp": "2026-08-25T10:30:00Z", "company": 42, "objective": "o", "result": "r"}
	]`
	require.NoError(t, os.WriteFile(path, []byte(raw), 0o644))

	s, err := Open(path)
	require.NoError(t, err)
	require.Equal(t, 1, s.Len())

	entry, err := s.Get(0)
	require.NoError(t, err)
	require.Equal(t, "Contoso", entry.Company)
}

func TestStore_ClearPersistsEmptyList(t *testing.T) {
	path := filepath.Join(t.TempDir(), "history.json")
	s, err := Open(path)
	require.NoError(t, err)

	require.NoError(t, s.Append(newEntry("Contoso")))
	require.NoError(t, s.Clear())
	require.Zero(t, s.Len())

	reloaded, err := Open(path)
	require.NoError(t, err)
	require.Zero(t, reloaded.Len())

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	require.JSONEq(t, "[]", string(data))
}

func TestStore_GetOutOfRange(t *testing.T) {
	s, err := Open(filepath.Join(t.TempDir(), "history.json"))
	require.NoError(t, err)

	_, err = s.Get(0)
	require.Error(t, err)
}
