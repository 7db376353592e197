package engine

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/openai/openai-go"
	"github.com/openai/openai-go/option"
)

// OpenAIArgs configures the OpenAI-backed engine.
type OpenAIArgs struct {
	APIKey string `mapstructure:"api_key"`
	// BaseURL points at an OpenAI-compatible endpoint. Empty means the
	// public API.
	BaseURL string `mapstructure:"base_url"`
}

// OpenAIEngine executes generation requests against the OpenAI chat
// completions API. The model and temperature come from each request's role,
// so one engine serves every role in a session.
type OpenAIEngine struct {
	client openai.Client
}

// NewOpenAIEngine creates an engine authenticated with the given key.
func NewOpenAIEngine(args OpenAIArgs) (*OpenAIEngine, error) {
	if args.APIKey == "" {
		return nil, errors.New("openai API key is required")
	}

	opts := []option.RequestOption{option.WithAPIKey(args.APIKey)}
	if args.BaseURL != "" {
		opts = append(opts, option.WithBaseURL(args.BaseURL))
	}

	return &OpenAIEngine{client: openai.NewClient(opts...)}, nil
}

// Initialize implements [Engine]. The OpenAI client needs no setup beyond
// construction.
func (e *OpenAIEngine) Initialize(ctx context.Context) error {
	select {
	case <-ctx.Done():
		return ctx.Err()
	default:
		return nil
	}
}

// Generate implements [Engine].
func (e *OpenAIEngine) Generate(ctx context.Context, req *GenerationRequest) (*GenerationResponse, error) {
	if req == nil {
		return nil, errors.New("nil request passed to OpenAIEngine.Generate")
	}

	start := time.Now()

	completion, err := e.client.Chat.Completions.New(ctx, openai.ChatCompletionNewParams{
		Model: openai.ChatModel(req.Role.Params.ModelID),
		Messages: []openai.ChatCompletionMessageParamUnion{
			openai.SystemMessage(req.Role.SystemPrompt()),
			openai.UserMessage(BuildUserPrompt(req)),
		},
		Temperature: openai.Float(req.Role.Params.Temperature),
	})
	if err != nil {
		return nil, fmt.Errorf("chat completion failed: %w", err)
	}

	if len(completion.Choices) == 0 {
		return nil, errors.New("chat completion returned no choices")
	}

	return &GenerationResponse{
		Text:       completion.Choices[0].Message.Content,
		ModelID:    completion.Model,
		DurationMs: time.Since(start).Milliseconds(),
	}, nil
}

// Shutdown implements [Engine]. Nothing to release.
func (e *OpenAIEngine) Shutdown(ctx context.Context) error {
	return nil
}
