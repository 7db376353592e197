package models

import (
	"encoding/json"
	"fmt"
	"strings"
)

// StructuredResult is the closed set of text-bearing fields a generation
// backend may hand back instead of a plain string. Fields are consulted in
// declaration order; the first non-blank one wins.
type StructuredResult struct {
	Raw         string `json:"raw,omitempty"`
	FinalOutput string `json:"final_output,omitempty"`
	Result      string `json:"result,omitempty"`
	Output      string `json:"output,omitempty"`
}

func (s StructuredResult) text() string {
	for _, v := range []string{s.Raw, s.FinalOutput, s.Result, s.Output} {
		if strings.TrimSpace(v) != "" {
			return v
		}
	}
	return ""
}

// resultKeys is the priority order used for map-shaped results.
var resultKeys = []string{"raw", "final_output", "result", "output"}

// Exporter is implemented by results that can dump themselves as a map.
type Exporter interface {
	Export() map[string]any
}

// Normalize converts an arbitrary generation result into displayable text.
// It sits on the result-reporting path and is total: it never panics and
// returns "" when nothing textual can be recovered.
func Normalize(result any) string {
	switch v := result.(type) {
	case nil:
		return ""
	case string:
		return v
	case StructuredResult:
		return v.text()
	case *StructuredResult:
		if v == nil {
			return ""
		}
		return v.text()
	case map[string]any:
		if s := textFromMap(v); s != "" {
			return s
		}
		return marshalMap(v)
	}

	if ex, ok := result.(Exporter); ok {
		if m := safeExport(ex); m != nil {
			if s := textFromMap(m); s != "" {
				return s
			}
			if s := marshalMap(m); s != "" {
				return s
			}
		}
	}

	if str, ok := result.(fmt.Stringer); ok {
		return safeString(str)
	}

	return ""
}

func textFromMap(m map[string]any) string {
	for _, key := range resultKeys {
		if v, ok := m[key]; ok {
			if s, ok := v.(string); ok && strings.TrimSpace(s) != "" {
				return s
			}
		}
	}
	return ""
}

func marshalMap(m map[string]any) string {
	data, err := json.MarshalIndent(m, "", "  ")
	if err != nil {
		return ""
	}
	return string(data)
}

func safeExport(ex Exporter) (m map[string]any) {
	defer func() {
		if recover() != nil {
			m = nil
		}
	}()
	return ex.Export()
}

func safeString(s fmt.Stringer) (out string) {
	defer func() {
		if recover() != nil {
			out = ""
		}
	}()
	return s.String()
}
