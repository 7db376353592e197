// Package engine abstracts the text-generation backend behind a small
// interface so the pipeline can run against OpenAI or a test double.
package engine

import (
	"context"
	"fmt"
	"strings"

	"github.com/spboyer/meetprep/internal/models"
)

// Engine is the interface for executing generation requests.
type Engine interface {
	// Initialize sets up the engine.
	Initialize(ctx context.Context) error

	// Generate runs a single generation request.
	Generate(ctx context.Context, req *GenerationRequest) (*GenerationResponse, error)

	// Shutdown cleans up resources.
	Shutdown(ctx context.Context) error
}

// GenerationRequest carries one task worth of generation work. Prior stage
// outputs are passed explicitly; the engine folds them into the
// conversation rather than relying on any backend-side memory.
type GenerationRequest struct {
	Role           models.Role
	Description    string
	ExpectedOutput string

	// Prior holds the labeled outputs of already-completed stages, oldest
	// first.
	Prior []models.StageOutput

	// SearchDigest holds formatted live-search snippets, or "" when the
	// role has no search capability or search produced nothing.
	SearchDigest string
}

// GenerationResponse is the result of a single generation call.
type GenerationResponse struct {
	Text       string
	ModelID    string
	DurationMs int64
}

// BuildUserPrompt renders the full user message for a request: the task
// description, any live-search snippets, prior stage outputs, and the
// expected-output guidance.
func BuildUserPrompt(req *GenerationRequest) string {
	var sb strings.Builder
	sb.WriteString(req.Description)

	if req.SearchDigest != "" {
		sb.WriteString("\n\nLive search results:\n")
		sb.WriteString(req.SearchDigest)
	}

	for _, prior := range req.Prior {
		fmt.Fprintf(&sb, "\n\nOutput of the %s stage (%s):\n%s", prior.Label, prior.RoleName, prior.Text)
	}

	if req.ExpectedOutput != "" {
		sb.WriteString("\n\nThis is the expected criteria for your final answer:\n")
		sb.WriteString(req.ExpectedOutput)
	}

	return sb.String()
}
