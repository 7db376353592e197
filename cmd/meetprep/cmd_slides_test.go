package main

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestSlidesCommand_FromFile(t *testing.T) {
	dir := t.TempDir()
	cfgPath := writeTestConfig(t, dir)

	docPath := filepath.Join(dir, "brief.md")
	md := "# Executive Brief\n\n- Renew with expansion\n- Pilot in Q4\n"
	require.NoError(t, os.WriteFile(docPath, []byte(md), 0o644))

	out, err := runCommand(t, "slides", docPath, "--config", cfgPath)
	require.NoError(t, err)
	require.Contains(t, out, "Wrote 1 slide(s)")

	_, err = os.Stat(filepath.Join(dir, "brief.pptx"))
	require.NoError(t, err)
}

func TestSlidesCommand_FromHistory(t *testing.T) {
	dir := t.TempDir()
	cfgPath := writeTestConfig(t, dir)
	seedHistory(t, cfgPath)

	outPath := filepath.Join(dir, "deck.pptx")
	out, err := runCommand(t, "slides", "--from-history", "0", "--config", cfgPath, "-o", outPath)
	require.NoError(t, err)
	require.Contains(t, out, outPath)

	_, err = os.Stat(outPath)
	require.NoError(t, err)
}

func TestSlidesCommand_NoInput(t *testing.T) {
	cfgPath := writeTestConfig(t, t.TempDir())

	_, err := runCommand(t, "slides", "--config", cfgPath)
	require.Error(t, err)
}
