package main

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/spboyer/meetprep/internal/history"
	"github.com/spboyer/meetprep/internal/models"
)

func seedHistory(t *testing.T, cfgPath string) {
	t.Helper()

	store, err := history.Open(historyPathFor(cfgPath))
	require.NoError(t, err)

	require.NoError(t, store.Append(models.HistoryEntry{
		Timestamp: time.Date(2026, 8, 1, 9, 0, 0, 0, time.UTC),
		Company:   "Contoso",
		Objective: "Renewal",
		Result:    "## Executive Brief\n\nRenew with expansion.",
	}))
	require.NoError(t, store.Append(models.HistoryEntry{
		Timestamp: time.Date(2026, 8, 2, 9, 0, 0, 0, time.UTC),
		Company:   "Fabrikam",
		Objective: "Partnership pitch",
		Result:    "## Executive Brief\n\nPropose a pilot.",
	}))
}

func TestHistoryList(t *testing.T) {
	cfgPath := writeTestConfig(t, t.TempDir())
	seedHistory(t, cfgPath)

	out, err := runCommand(t, "history", "list", "--config", cfgPath)
	require.NoError(t, err)

	// Newest first.
	require.Regexp(t, `(?s)Fabrikam.*Contoso`, out)
	require.Contains(t, out, "Partnership pitch")
}

func TestHistoryList_Empty(t *testing.T) {
	cfgPath := writeTestConfig(t, t.TempDir())

	out, err := runCommand(t, "history", "list", "--config", cfgPath)
	require.NoError(t, err)
	require.Contains(t, out, "No saved results.")
}

func TestHistoryShow(t *testing.T) {
	cfgPath := writeTestConfig(t, t.TempDir())
	seedHistory(t, cfgPath)

	out, err := runCommand(t, "history", "show", "1", "--config", cfgPath)
	require.NoError(t, err)
	require.Contains(t, out, "Renew with expansion.")

	_, err = runCommand(t, "history", "show", "9", "--config", cfgPath)
	require.Error(t, err)
}

func TestHistoryClear(t *testing.T) {
	cfgPath := writeTestConfig(t, t.TempDir())
	seedHistory(t, cfgPath)

	out, err := runCommand(t, "history", "clear", "--config", cfgPath)
	require.NoError(t, err)
	require.Contains(t, out, "Cleared 2 saved result(s).")

	store, err := history.Open(historyPathFor(cfgPath))
	require.NoError(t, err)
	require.Zero(t, store.Len())
}
