// Package config provides the Config struct and loader for .meetprep.yaml
// configuration files.
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// Default values for configuration. These are the single source of truth —
// New() references them and no other code should duplicate them.
const (
	DefaultEngine      = "openai"
	DefaultModel       = "gpt-4.1-nano"
	DefaultTemperature = 0.7

	DefaultTruncateChars = 6000
	MinTruncateChars     = 1000
	MaxTruncateChars     = 20000

	DefaultDurationMinutes = 60
	MinDurationMinutes     = 15
	MaxDurationMinutes     = 180

	DefaultHistoryPath   = "data/meeting_history.json"
	DefaultTranscriptDir = ""

	// Environment variables holding API credentials. Keys never live in the
	// config file itself.
	OpenAIKeyEnv = "OPENAI_API_KEY"
	SerperKeyEnv = "SERPER_API_KEY"
)

// EngineConfig selects and parameterizes the generation backend.
type EngineConfig struct {
	Kind   string         `yaml:"kind,omitempty"`
	Params map[string]any `yaml:"params,omitempty"`
}

// DocumentsConfig holds document ingestion settings.
type DocumentsConfig struct {
	TruncateChars int `yaml:"truncate_chars,omitempty"`
}

// DirectivesConfig holds the default toggle states for context directives.
type DirectivesConfig struct {
	LiveIntelligence *bool `yaml:"live_intelligence,omitempty"`
	Compliance       *bool `yaml:"compliance,omitempty"`
}

// Config is the top-level configuration loaded from .meetprep.yaml.
type Config struct {
	Engine        EngineConfig     `yaml:"engine,omitempty"`
	Model         string           `yaml:"model,omitempty"`
	Temperature   *float64         `yaml:"temperature,omitempty"`
	Documents     DocumentsConfig  `yaml:"documents,omitempty"`
	Directives    DirectivesConfig `yaml:"directives,omitempty"`
	HistoryPath   string           `yaml:"history_path,omitempty"`
	TranscriptDir string           `yaml:"transcript_dir,omitempty"`
}

// New returns a Config with all hard-coded defaults populated.
func New() *Config {
	temp := DefaultTemperature
	liveIntel := true
	compliance := false
	return &Config{
		Engine:      EngineConfig{Kind: DefaultEngine},
		Model:       DefaultModel,
		Temperature: &temp,
		Documents: DocumentsConfig{
			TruncateChars: DefaultTruncateChars,
		},
		Directives: DirectivesConfig{
			LiveIntelligence: &liveIntel,
			Compliance:       &compliance,
		},
		HistoryPath: DefaultHistoryPath,
	}
}

// Load reads the config file at path and overlays it onto the defaults.
// A missing file is not an error: the defaults are returned unchanged.
func Load(path string) (*Config, error) {
	cfg := New()

	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return cfg, nil
		}
		return nil, fmt.Errorf("reading config %s: %w", path, err)
	}

	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("parsing config %s: %w", path, err)
	}

	cfg.normalize()
	return cfg, nil
}

// Find locates .meetprep.yaml in dir, returning the defaults when absent.
func Find(dir string) (*Config, error) {
	return Load(filepath.Join(dir, ".meetprep.yaml"))
}

func (c *Config) normalize() {
	if c.Engine.Kind == "" {
		c.Engine.Kind = DefaultEngine
	}
	if c.Model == "" {
		c.Model = DefaultModel
	}
	if c.Temperature == nil {
		temp := DefaultTemperature
		c.Temperature = &temp
	}
	if c.Documents.TruncateChars == 0 {
		c.Documents.TruncateChars = DefaultTruncateChars
	}
	c.Documents.TruncateChars = ClampTruncate(c.Documents.TruncateChars)
	if c.HistoryPath == "" {
		c.HistoryPath = DefaultHistoryPath
	}
	if c.Directives.LiveIntelligence == nil {
		v := true
		c.Directives.LiveIntelligence = &v
	}
	if c.Directives.Compliance == nil {
		v := false
		c.Directives.Compliance = &v
	}
}

// ClampTruncate bounds a truncation budget to the supported range.
func ClampTruncate(chars int) int {
	if chars < MinTruncateChars {
		return MinTruncateChars
	}
	if chars > MaxTruncateChars {
		return MaxTruncateChars
	}
	return chars
}

// ClampDuration bounds a meeting duration (minutes) to the supported range.
func ClampDuration(minutes int) int {
	if minutes < MinDurationMinutes {
		return MinDurationMinutes
	}
	if minutes > MaxDurationMinutes {
		return MaxDurationMinutes
	}
	return minutes
}

// OpenAIKey returns the OpenAI API key from the environment.
func (c *Config) OpenAIKey() string { return os.Getenv(OpenAIKeyEnv) }

// SerperKey returns the Serper API key from the environment.
func (c *Config) SerperKey() string { return os.Getenv(SerperKeyEnv) }
