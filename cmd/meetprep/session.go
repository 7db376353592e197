package main

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/spboyer/meetprep/internal/config"
	"github.com/spboyer/meetprep/internal/engine"
	"github.com/spboyer/meetprep/internal/history"
	"github.com/spboyer/meetprep/internal/ingest"
	"github.com/spboyer/meetprep/internal/models"
	"github.com/spboyer/meetprep/internal/search"
)

// loadConfig reads the config file at path, or discovers .meetprep.yaml in
// the working directory when no path is given.
func loadConfig(path string) (*config.Config, error) {
	if path != "" {
		return config.Load(path)
	}
	return config.Find(".")
}

// sessionParams resolves the generation parameters for a run, applying the
// --model flag on top of the config.
func sessionParams(cfg *config.Config, modelOverride string) models.GenerationParams {
	model := cfg.Model
	if modelOverride != "" {
		model = modelOverride
	}
	return models.GenerationParams{
		ModelID:     model,
		Temperature: *cfg.Temperature,
	}
}

// buildEngine creates the generation backend selected by the config. For the
// OpenAI engine the API key falls back to the environment when the config
// params omit it.
func buildEngine(cfg *config.Config) (engine.Engine, error) {
	params := make(map[string]any, len(cfg.Engine.Params)+1)
	for k, v := range cfg.Engine.Params {
		params[k] = v
	}

	if cfg.Engine.Kind == engine.KindOpenAI {
		if key, ok := params["api_key"].(string); !ok || key == "" {
			if envKey := cfg.OpenAIKey(); envKey != "" {
				params["api_key"] = envKey
			}
		}
	}

	eng, err := engine.Create(cfg.Engine.Kind, params)
	if err != nil {
		return nil, fmt.Errorf("creating %s engine: %w", cfg.Engine.Kind, err)
	}
	return eng, nil
}

// buildSearcher wires live search when a Serper key is available. Returns
// nil (search disabled) otherwise.
func buildSearcher(cfg *config.Config) search.Searcher {
	key := cfg.SerperKey()
	if key == "" {
		return nil
	}
	return search.NewSerperClient(key)
}

// readDocuments loads and extracts text from the given file paths.
func readDocuments(paths []string) ([]models.Document, error) {
	files := make([]ingest.File, 0, len(paths))
	for _, path := range paths {
		data, err := os.ReadFile(path)
		if err != nil {
			return nil, fmt.Errorf("reading document %s: %w", path, err)
		}
		files = append(files, ingest.File{Name: filepath.Base(path), Data: data})
	}
	return ingest.ExtractDocuments(files), nil
}

// latestNotesFor returns the result of the most recent history entry for the
// same company, for use as continuity notes. Empty when there is none.
func latestNotesFor(store *history.Store, company string) string {
	for _, entry := range store.Entries() {
		if strings.EqualFold(strings.TrimSpace(entry.Company), strings.TrimSpace(company)) {
			return entry.Result
		}
	}
	return ""
}
