package engine

import (
	"context"
	"fmt"
	"time"
)

// MockEngine is a simple scripted implementation for tests and dry runs.
type MockEngine struct {
	// Outputs are returned in order, one per Generate call. When exhausted
	// (or empty), a canned response echoing the role is produced.
	Outputs []string

	// FailAt makes the Nth call (1-based) return an error. Zero disables
	// failure injection.
	FailAt int

	// Requests records every request received, in order.
	Requests []*GenerationRequest

	calls int
}

// NewMockEngine creates an engine that answers with the given outputs.
func NewMockEngine(outputs ...string) *MockEngine {
	return &MockEngine{Outputs: outputs}
}

func (m *MockEngine) Initialize(ctx context.Context) error { return nil }

func (m *MockEngine) Generate(ctx context.Context, req *GenerationRequest) (*GenerationResponse, error) {
	start := time.Now()
	m.calls++
	m.Requests = append(m.Requests, req)

	if m.FailAt > 0 && m.calls == m.FailAt {
		return nil, fmt.Errorf("mock backend failure on call %d", m.calls)
	}

	text := fmt.Sprintf("Mock response from %s", req.Role.Name)
	if m.calls-1 < len(m.Outputs) {
		text = m.Outputs[m.calls-1]
	}

	return &GenerationResponse{
		Text:       text,
		ModelID:    req.Role.Params.ModelID,
		DurationMs: time.Since(start).Milliseconds(),
	}, nil
}

func (m *MockEngine) Shutdown(ctx context.Context) error { return nil }

// Calls returns how many Generate calls the engine has served.
func (m *MockEngine) Calls() int { return m.calls }
