package llm

import (
	"context"
	"errors"

	"taskflow-server/pkg/anthropic"
	"taskflow-server/pkg/cohere"
	"taskflow-server/pkg/googleai"
	"taskflow-server/pkg/mistral"
	"taskflow-server/pkg/openai"
)

// OpenAIAdapter adapts pkg/openai to the Provider interface
type OpenAIAdapter struct {
	client openai.IOpenAI
}

// NewOpenAIAdapter creates a new OpenAI adapter
func NewOpenAIAdapter(client openai.IOpenAI) *OpenAIAdapter {
	return &OpenAIAdapter{client: client}
}

func (a *OpenAIAdapter) ParseCommand(ctx context.Context, text string) (string, error) {
	out, err := a.client.Complete(ctx, &openai.Request{
		System:      ParseSystemPrompt,
		User:        text,
		Temperature: ParseTemperature,
	})
	if err != nil {
		return "", wrapOpenAIErr(a.Name(), err)
	}
	return out, nil
}

func (a *OpenAIAdapter) GeneralChat(ctx context.Context, text string) (string, error) {
	out, err := a.client.Complete(ctx, &openai.Request{
		System: ChatSystemPrompt,
		User:   text,
	})
	if err != nil {
		return "", wrapOpenAIErr(a.Name(), err)
	}
	return out, nil
}

func (a *OpenAIAdapter) Name() string  { return ToolOpenAI }
func (a *OpenAIAdapter) Model() string { return a.client.Model() }

// AnthropicAdapter adapts pkg/anthropic to the Provider interface
type AnthropicAdapter struct {
	client anthropic.IAnthropic
}

// NewAnthropicAdapter creates a new Anthropic adapter
func NewAnthropicAdapter(client anthropic.IAnthropic) *AnthropicAdapter {
	return &AnthropicAdapter{client: client}
}

func (a *AnthropicAdapter) ParseCommand(ctx context.Context, text string) (string, error) {
	out, err := a.client.Complete(ctx, &anthropic.Request{
		System:      ParseSystemPrompt,
		User:        text,
		Temperature: ParseTemperature,
	})
	if err != nil {
		return "", wrapAnthropicErr(a.Name(), err)
	}
	return out, nil
}

func (a *AnthropicAdapter) GeneralChat(ctx context.Context, text string) (string, error) {
	out, err := a.client.Complete(ctx, &anthropic.Request{
		System: ChatSystemPrompt,
		User:   text,
	})
	if err != nil {
		return "", wrapAnthropicErr(a.Name(), err)
	}
	return out, nil
}

func (a *AnthropicAdapter) Name() string  { return ToolAnthropic }
func (a *AnthropicAdapter) Model() string { return a.client.Model() }

// GoogleAdapter adapts pkg/googleai to the Provider interface
type GoogleAdapter struct {
	client googleai.IGoogleAI
}

// NewGoogleAdapter creates a new Gemini adapter
func NewGoogleAdapter(client googleai.IGoogleAI) *GoogleAdapter {
	return &GoogleAdapter{client: client}
}

func (a *GoogleAdapter) ParseCommand(ctx context.Context, text string) (string, error) {
	out, err := a.client.Complete(ctx, &googleai.Request{
		System:      ParseSystemPrompt,
		User:        text,
		Temperature: ParseTemperature,
	})
	if err != nil {
		return "", wrapGoogleErr(a.Name(), err)
	}
	return out, nil
}

func (a *GoogleAdapter) GeneralChat(ctx context.Context, text string) (string, error) {
	out, err := a.client.Complete(ctx, &googleai.Request{
		System: ChatSystemPrompt,
		User:   text,
	})
	if err != nil {
		return "", wrapGoogleErr(a.Name(), err)
	}
	return out, nil
}

func (a *GoogleAdapter) Name() string  { return ToolGoogle }
func (a *GoogleAdapter) Model() string { return a.client.Model() }

// MistralAdapter adapts pkg/mistral to the Provider interface
type MistralAdapter struct {
	client mistral.IMistral
}

// NewMistralAdapter creates a new Mistral adapter
func NewMistralAdapter(client mistral.IMistral) *MistralAdapter {
	return &MistralAdapter{client: client}
}

func (a *MistralAdapter) ParseCommand(ctx context.Context, text string) (string, error) {
	out, err := a.client.Complete(ctx, &mistral.Request{
		System:      ParseSystemPrompt,
		User:        text,
		Temperature: ParseTemperature,
	})
	if err != nil {
		return "", wrapMistralErr(a.Name(), err)
	}
	return out, nil
}

func (a *MistralAdapter) GeneralChat(ctx context.Context, text string) (string, error) {
	out, err := a.client.Complete(ctx, &mistral.Request{
		System: ChatSystemPrompt,
		User:   text,
	})
	if err != nil {
		return "", wrapMistralErr(a.Name(), err)
	}
	return out, nil
}

func (a *MistralAdapter) Name() string  { return ToolMistral }
func (a *MistralAdapter) Model() string { return a.client.Model() }

// CohereAdapter adapts pkg/cohere to the Provider interface
type CohereAdapter struct {
	client cohere.ICohere
}

// NewCohereAdapter creates a new Cohere adapter
func NewCohereAdapter(client cohere.ICohere) *CohereAdapter {
	return &CohereAdapter{client: client}
}

func (a *CohereAdapter) ParseCommand(ctx context.Context, text string) (string, error) {
	out, err := a.client.Complete(ctx, &cohere.Request{
		System:      ParseSystemPrompt,
		User:        text,
		Temperature: ParseTemperature,
	})
	if err != nil {
		return "", wrapCohereErr(a.Name(), err)
	}
	return out, nil
}

func (a *CohereAdapter) GeneralChat(ctx context.Context, text string) (string, error) {
	out, err := a.client.Complete(ctx, &cohere.Request{
		System: ChatSystemPrompt,
		User:   text,
	})
	if err != nil {
		return "", wrapCohereErr(a.Name(), err)
	}
	return out, nil
}

func (a *CohereAdapter) Name() string  { return ToolCohere }
func (a *CohereAdapter) Model() string { return a.client.Model() }

// Error wrapping helpers: surface the vendor HTTP status through ProviderError.

func wrapOpenAIErr(name string, err error) error {
	var apiErr *openai.APIError
	if errors.As(err, &apiErr) {
		return &ProviderError{Provider: name, StatusCode: apiErr.StatusCode, Err: err}
	}
	return &ProviderError{Provider: name, Err: err}
}

func wrapAnthropicErr(name string, err error) error {
	var apiErr *anthropic.APIError
	if errors.As(err, &apiErr) {
		return &ProviderError{Provider: name, StatusCode: apiErr.StatusCode, Err: err}
	}
	return &ProviderError{Provider: name, Err: err}
}

func wrapGoogleErr(name string, err error) error {
	var apiErr *googleai.APIError
	if errors.As(err, &apiErr) {
		return &ProviderError{Provider: name, StatusCode: apiErr.StatusCode, Err: err}
	}
	return &ProviderError{Provider: name, Err: err}
}

func wrapMistralErr(name string, err error) error {
	var apiErr *mistral.APIError
	if errors.As(err, &apiErr) {
		return &ProviderError{Provider: name, StatusCode: apiErr.StatusCode, Err: err}
	}
	return &ProviderError{Provider: name, Err: err}
}

func wrapCohereErr(name string, err error) error {
	var apiErr *cohere.APIError
	if errors.As(err, &apiErr) {
		return &ProviderError{Provider: name, StatusCode: apiErr.StatusCode, Err: err}
	}
	return &ProviderError{Provider: name, Err: err}
}
