package engine

import (
	"fmt"

	"github.com/go-viper/mapstructure/v2"
)

// Engine kinds accepted by Create.
const (
	KindOpenAI = "openai"
	KindMock   = "mock"
)

// Create builds an engine from a kind plus loosely-typed parameters, as
// found in the config file. Unknown kinds are an error.
func Create(kind string, params map[string]any) (Engine, error) {
	switch kind {
	case KindOpenAI:
		var args OpenAIArgs
		if err := mapstructure.Decode(params, &args); err != nil {
			return nil, fmt.Errorf("decoding openai engine params: %w", err)
		}
		return NewOpenAIEngine(args)
	case KindMock:
		return NewMockEngine(), nil
	default:
		return nil, fmt.Errorf("unknown engine kind %q", kind)
	}
}
