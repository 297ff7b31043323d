package llm

import (
	"fmt"

	"taskflow-server/pkg/anthropic"
	"taskflow-server/pkg/cohere"
	"taskflow-server/pkg/googleai"
	"taskflow-server/pkg/mistral"
	"taskflow-server/pkg/openai"
)

// Tool ids for the provider catalog.
const (
	ToolOpenAI    = "openai"
	ToolAnthropic = "anthropic"
	ToolGoogle    = "google"
	ToolMistral   = "mistral"
	ToolCohere    = "cohere"
)

// Tools returns the static provider catalog served at GET /ai/tools.
func Tools() []ToolInfo {
	return []ToolInfo{
		{ID: ToolOpenAI, Name: "OpenAI"},
		{ID: ToolAnthropic, Name: "Anthropic"},
		{ID: ToolGoogle, Name: "Google Gemini"},
		{ID: ToolMistral, Name: "Mistral"},
		{ID: ToolCohere, Name: "Cohere"},
	}
}

// KnownTool reports whether the tool id is in the catalog.
func KnownTool(toolID string) bool {
	for _, t := range Tools() {
		if t.ID == toolID {
			return true
		}
	}
	return false
}

// New creates a Provider for the given tool id and API key.
// Unknown tool ids are rejected before any network call.
func New(toolID, apiKey string) (Provider, error) {
	switch toolID {
	case ToolOpenAI:
		client, err := openai.New(openai.Config{APIKey: apiKey})
		if err != nil {
			return nil, fmt.Errorf("failed to create openai client: %w", err)
		}
		return NewOpenAIAdapter(client), nil

	case ToolAnthropic:
		client, err := anthropic.New(anthropic.Config{APIKey: apiKey})
		if err != nil {
			return nil, fmt.Errorf("failed to create anthropic client: %w", err)
		}
		return NewAnthropicAdapter(client), nil

	case ToolGoogle:
		client, err := googleai.New(googleai.Config{APIKey: apiKey})
		if err != nil {
			return nil, fmt.Errorf("failed to create googleai client: %w", err)
		}
		return NewGoogleAdapter(client), nil

	case ToolMistral:
		client, err := mistral.New(mistral.Config{APIKey: apiKey})
		if err != nil {
			return nil, fmt.Errorf("failed to create mistral client: %w", err)
		}
		return NewMistralAdapter(client), nil

	case ToolCohere:
		client, err := cohere.New(cohere.Config{APIKey: apiKey})
		if err != nil {
			return nil, fmt.Errorf("failed to create cohere client: %w", err)
		}
		return NewCohereAdapter(client), nil

	default:
		return nil, fmt.Errorf("%w: %q", ErrUnknownTool, toolID)
	}
}
