package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestNew_Defaults(t *testing.T) {
	cfg := New()
	require.Equal(t, DefaultEngine, cfg.Engine.Kind)
	require.Equal(t, DefaultModel, cfg.Model)
	require.Equal(t, DefaultTemperature, *cfg.Temperature)
	require.Equal(t, DefaultTruncateChars, cfg.Documents.TruncateChars)
	require.Equal(t, DefaultHistoryPath, cfg.HistoryPath)
	require.True(t, *cfg.Directives.LiveIntelligence)
	require.False(t, *cfg.Directives.Compliance)
}

func TestLoad_MissingFileReturnsDefaults(t *testing.T) {
	cfg, err := Load(filepath.Join(t.TempDir(), "nope.yaml"))
	require.NoError(t, err)
	require.Equal(t, DefaultModel, cfg.Model)
}

func TestLoad_Overlay(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, ".meetprep.yaml")
	content := `
model: gpt-4.1
temperature: 0.2
documents:
  truncate_chars: 9000
history_path: briefs.json
directives:
  live_intelligence: false
`
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))

	cfg, err := Load(path)
	require.NoError(t, err)
	require.Equal(t, "gpt-4.1", cfg.Model)
	require.Equal(t, 0.2, *cfg.Temperature)
	require.Equal(t, 9000, cfg.Documents.TruncateChars)
	require.Equal(t, "briefs.json", cfg.HistoryPath)
	require.False(t, *cfg.Directives.LiveIntelligence)
	// Untouched fields keep defaults.
	require.Equal(t, DefaultEngine, cfg.Engine.Kind)
}

func TestLoad_ClampsTruncateChars(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, ".meetprep.yaml")
	require.NoError(t, os.WriteFile(path, []byte("documents:\n  truncate_chars: 50\n"), 0o644))

	cfg, err := Load(path)
	require.NoError(t, err)
	require.Equal(t, MinTruncateChars, cfg.Documents.TruncateChars)
}

func TestLoad_BadYAML(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, ".meetprep.yaml")
	require.NoError(t, os.WriteFile(path, []byte("model: [unclosed"), 0o644))

	_, err := Load(path)
	require.Error(t, err)
}

func TestClampTruncate(t *testing.T) {
	require.Equal(t, MinTruncateChars, ClampTruncate(0))
	require.Equal(t, 5000, ClampTruncate(5000))
	require.Equal(t, MaxTruncateChars, ClampTruncate(100000))
}

func TestClampDuration(t *testing.T) {
	require.Equal(t, MinDurationMinutes, ClampDuration(5))
	require.Equal(t, 60, ClampDuration(60))
	require.Equal(t, MaxDurationMinutes, ClampDuration(600))
}
