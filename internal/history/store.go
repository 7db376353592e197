// Package history persists completed preparation sessions to a local JSON
// file so prior results can be listed, reviewed, and folded into new runs.
package history

import (
	"bytes"
	"encoding/json"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"sync"

	"github.com/santhosh-tekuri/jsonschema/v6"

	"github.com/spboyer/meetprep/internal/models"
)

// MaxEntries caps how many sessions are retained. Appending past the cap
// evicts the oldest entry.
const MaxEntries = 20

// entrySchema validates persisted entries on load so a hand-edited or
// partially-written file cannot poison the store.
const entrySchema = `{
	"type": "object",
	"required": ["timestamp", "company", "objective", "result"],
	"properties": {
		"timestamp": {"type": "string"},
		"company": {"type": "string", "minLength": 1},
		"objective": {"type": "string"},
		"attendees": {"type": "string"},
		"focusAreas": {"type": "string"},
		"documents": {"type": "array", "items": {"type": "string"}},
		"result": {"type": "string"}
	}
}`

// Store is a file-backed history of preparation sessions, newest first.
// Safe for concurrent use.
type Store struct {
	path string

	mu      sync.Mutex
	entries []models.HistoryEntry
	schema  *jsonschema.Schema
}

// Open creates a store backed by the file at path and loads any existing
// entries. A missing or unreadable file yields an empty store rather than
// an error; only schema compilation can fail.
func Open(path string) (*Store, error) {
	schema, err := compileEntrySchema()
	if err != nil {
		return nil, err
	}

	s := &Store{path: path, schema: schema}
	s.load()
	return s, nil
}

func compileEntrySchema() (*jsonschema.Schema, error) {
	doc, err := jsonschema.UnmarshalJSON(strings.NewReader(entrySchema))
	if err != nil {
		return nil, fmt.Errorf("parsing history entry schema: %w", err)
	}

	compiler := jsonschema.NewCompiler()
	if err := compiler.AddResource("history-entry.json", doc); err != nil {
		return nil, fmt.Errorf("registering history entry schema: %w", err)
	}

	schema, err := compiler.Compile("history-entry.json")
	if err != nil {
		return nil, fmt.Errorf("compiling history entry schema: %w", err)
	}
	return schema, nil
}

// load reads the backing file. Absence and corruption both leave the store
// empty; a fresh run should never be blocked by a damaged history file.
func (s *Store) load() {
	data, err := os.ReadFile(s.path)
	if err != nil {
		if !os.IsNotExist(err) {
			slog.Warn("could not read history file, starting empty", "path", s.path, "error", err)
		}
		return
	}

	var raw []json.RawMessage
	if err := json.Unmarshal(data, &raw); err != nil {
		slog.Warn("history file is not valid JSON, starting empty", "path", s.path, "error", err)
		return
	}

	for i, msg := range raw {
		if err := s.validate(msg); err != nil {
			slog.Warn("dropping invalid history entry", "index", i, "error", err)
			continue
		}

		var entry models.HistoryEntry
		if err := json.Unmarshal(msg, &entry); err != nil {
			slog.Warn("dropping undecodable history entry", "index", i, "error", err)
			continue
		}
		s.entries = append(s.entries, entry)
	}

	if len(s.entries) > MaxEntries {
		s.entries = s.entries[:MaxEntries]
	}
}

func (s *Store) validate(msg json.RawMessage) error {
	value, err := jsonschema.UnmarshalJSON(bytes.NewReader(msg))
	if err != nil {
		return err
	}
	return s.schema.Validate(value)
}

// Entries returns a copy of the stored entries, newest first.
func (s *Store) Entries() []models.HistoryEntry {
	s.mu.Lock()
	defer s.mu.Unlock()

	out := make([]models.HistoryEntry, len(s.entries))
	copy(out, s.entries)
	return out
}

// Len reports how many entries are stored.
func (s *Store) Len() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.entries)
}

// Get returns the entry at index (0 = newest).
func (s *Store) Get(index int) (models.HistoryEntry, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if index < 0 || index >= len(s.entries) {
		return models.HistoryEntry{}, fmt.Errorf("history index %d out of range (have %d entries)", index, len(s.entries))
	}
	return s.entries[index], nil
}

// Append stores a new entry at the front and persists the file, evicting
// the oldest entry past the cap.
func (s *Store) Append(entry models.HistoryEntry) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.entries = append([]models.HistoryEntry{entry}, s.entries...)
	if len(s.entries) > MaxEntries {
		s.entries = s.entries[:MaxEntries]
	}
	return s.persist()
}

// Clear drops every entry and persists the empty list.
func (s *Store) Clear() error {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.entries = nil
	return s.persist()
}

func (s *Store) persist() error {
	if dir := filepath.Dir(s.path); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return fmt.Errorf("creating history directory: %w", err)
		}
	}

	entries := s.entries
	if entries == nil {
		entries = []models.HistoryEntry{}
	}

	data, err := json.MarshalIndent(entries, "", "  ")
	if err != nil {
		return fmt.Errorf("encoding history: %w", err)
	}

	if err := os.WriteFile(s.path, data, 0o644); err != nil {
		return fmt.Errorf("writing history file: %w", err)
	}
	return nil
}
