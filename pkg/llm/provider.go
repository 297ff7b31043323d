package llm

import "context"

// Provider is the uniform surface over one LLM vendor.
type Provider interface {
	// ParseCommand asks the vendor to translate free text into a strict-JSON
	// task command and returns the raw response text.
	ParseCommand(ctx context.Context, text string) (string, error)

	// GeneralChat sends a conversational prompt with no JSON constraint.
	GeneralChat(ctx context.Context, text string) (string, error)

	// Name returns the tool id (e.g. "openai", "anthropic")
	Name() string

	// Model returns the model being used
	Model() string
}

// ToolInfo describes one entry of the provider catalog.
type ToolInfo struct {
	ID   string `json:"id"`
	Name string `json:"name"`
}

// Factory builds a Provider for the given tool id and API key.
// Implementations must reject unknown tool ids before any network call.
type Factory func(toolID, apiKey string) (Provider, error)
