package llm_test

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"taskflow-server/pkg/anthropic"
	"taskflow-server/pkg/cohere"
	"taskflow-server/pkg/googleai"
	"taskflow-server/pkg/llm"
	"taskflow-server/pkg/openai"
)

func TestNewRejectsUnknownTool(t *testing.T) {
	_, err := llm.New("grok", "key")
	if !errors.Is(err, llm.ErrUnknownTool) {
		t.Fatalf("expected ErrUnknownTool, got %v", err)
	}
}

func TestNewKnownTools(t *testing.T) {
	for _, tool := range llm.Tools() {
		p, err := llm.New(tool.ID, "test-key")
		if err != nil {
			t.Fatalf("New(%q) error: %v", tool.ID, err)
		}
		if p.Name() != tool.ID {
			t.Errorf("Name() = %q, want %q", p.Name(), tool.ID)
		}
	}
}

func TestKnownTool(t *testing.T) {
	if !llm.KnownTool("mistral") {
		t.Error("expected mistral to be known")
	}
	if llm.KnownTool("llama") {
		t.Error("expected llama to be unknown")
	}
}

func TestOpenAIAdapterWireFormat(t *testing.T) {
	var captured struct {
		Model    string `json:"model"`
		Messages []struct {
			Role    string `json:"role"`
			Content string `json:"content"`
		} `json:"messages"`
	}

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/chat/completions" {
			t.Errorf("unexpected path %s", r.URL.Path)
		}
		if got := r.Header.Get("Authorization"); got != "Bearer sk-test" {
			t.Errorf("Authorization = %q", got)
		}
		_ = json.NewDecoder(r.Body).Decode(&captured)
		_ = json.NewEncoder(w).Encode(map[string]any{
			"choices": []map[string]any{
				{"message": map[string]string{"role": "assistant", "content": `{"action":"list_today"}`}},
			},
		})
	}))
	defer server.Close()

	client, err := openai.New(openai.Config{APIKey: "sk-test", BaseURL: server.URL})
	if err != nil {
		t.Fatalf("openai.New error: %v", err)
	}

	adapter := llm.NewOpenAIAdapter(client)
	out, err := adapter.ParseCommand(context.Background(), "what's due today")
	if err != nil {
		t.Fatalf("ParseCommand error: %v", err)
	}
	if out != `{"action":"list_today"}` {
		t.Errorf("unexpected output %q", out)
	}

	if len(captured.Messages) != 2 {
		t.Fatalf("expected system+user messages, got %d", len(captured.Messages))
	}
	if captured.Messages[0].Role != "system" || captured.Messages[1].Role != "user" {
		t.Errorf("unexpected roles %q, %q", captured.Messages[0].Role, captured.Messages[1].Role)
	}
	if captured.Messages[1].Content != "what's due today" {
		t.Errorf("user content = %q", captured.Messages[1].Content)
	}
}

func TestAnthropicAdapterWireFormat(t *testing.T) {
	var captured struct {
		System    string `json:"system"`
		MaxTokens int    `json:"max_tokens"`
		Messages  []struct {
			Role    string `json:"role"`
			Content string `json:"content"`
		} `json:"messages"`
	}

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if got := r.Header.Get("x-api-key"); got != "ak-test" {
			t.Errorf("x-api-key = %q", got)
		}
		if got := r.Header.Get("anthropic-version"); got == "" {
			t.Error("missing anthropic-version header")
		}
		_ = json.NewDecoder(r.Body).Decode(&captured)
		_ = json.NewEncoder(w).Encode(map[string]any{
			"content": []map[string]string{{"type": "text", "text": "hello"}},
		})
	}))
	defer server.Close()

	client, err := anthropic.New(anthropic.Config{APIKey: "ak-test", BaseURL: server.URL})
	if err != nil {
		t.Fatalf("anthropic.New error: %v", err)
	}

	adapter := llm.NewAnthropicAdapter(client)
	out, err := adapter.GeneralChat(context.Background(), "hi")
	if err != nil {
		t.Fatalf("GeneralChat error: %v", err)
	}
	if out != "hello" {
		t.Errorf("unexpected output %q", out)
	}

	if captured.System == "" {
		t.Error("expected system in dedicated top-level field")
	}
	if captured.MaxTokens == 0 {
		t.Error("expected max_tokens to be set")
	}
	if len(captured.Messages) != 1 || captured.Messages[0].Role != "user" {
		t.Errorf("expected single user message, got %+v", captured.Messages)
	}
}

func TestGoogleAdapterConcatenatesSystem(t *testing.T) {
	var captured struct {
		Contents []struct {
			Role  string `json:"role"`
			Parts []struct {
				Text string `json:"text"`
			} `json:"parts"`
		} `json:"contents"`
	}

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Query().Get("key") != "g-test" {
			t.Errorf("key query = %q", r.URL.Query().Get("key"))
		}
		_ = json.NewDecoder(r.Body).Decode(&captured)
		_ = json.NewEncoder(w).Encode(map[string]any{
			"candidates": []map[string]any{
				{"content": map[string]any{"parts": []map[string]string{{"text": "ok"}}}},
			},
		})
	}))
	defer server.Close()

	client, err := googleai.New(googleai.Config{APIKey: "g-test", BaseURL: server.URL})
	if err != nil {
		t.Fatalf("googleai.New error: %v", err)
	}

	adapter := llm.NewGoogleAdapter(client)
	if _, err := adapter.ParseCommand(context.Background(), "add buy milk"); err != nil {
		t.Fatalf("ParseCommand error: %v", err)
	}

	if len(captured.Contents) != 1 {
		t.Fatalf("expected one content blob, got %d", len(captured.Contents))
	}
	text := captured.Contents[0].Parts[0].Text
	if text == "add buy milk" {
		t.Error("expected system instruction concatenated with user text")
	}
}

func TestCohereAdapterSingleMessage(t *testing.T) {
	var captured struct {
		Message  string `json:"message"`
		Preamble string `json:"preamble"`
	}

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_ = json.NewDecoder(r.Body).Decode(&captured)
		_ = json.NewEncoder(w).Encode(map[string]string{"text": "sure"})
	}))
	defer server.Close()

	client, err := cohere.New(cohere.Config{APIKey: "c-test", BaseURL: server.URL})
	if err != nil {
		t.Fatalf("cohere.New error: %v", err)
	}

	adapter := llm.NewCohereAdapter(client)
	out, err := adapter.GeneralChat(context.Background(), "what's the weather in Paris")
	if err != nil {
		t.Fatalf("GeneralChat error: %v", err)
	}
	if out != "sure" {
		t.Errorf("unexpected output %q", out)
	}
	if captured.Message != "what's the weather in Paris" {
		t.Errorf("message = %q", captured.Message)
	}
	if captured.Preamble == "" {
		t.Error("expected system preamble")
	}
}

func TestProviderErrorCarriesStatus(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, `{"error":"overloaded"}`, http.StatusServiceUnavailable)
	}))
	defer server.Close()

	client, _ := openai.New(openai.Config{APIKey: "sk-test", BaseURL: server.URL})
	adapter := llm.NewOpenAIAdapter(client)

	_, err := adapter.ParseCommand(context.Background(), "hello")
	if err == nil {
		t.Fatal("expected error")
	}

	var provErr *llm.ProviderError
	if !errors.As(err, &provErr) {
		t.Fatalf("expected ProviderError, got %T", err)
	}
	if provErr.StatusCode != http.StatusServiceUnavailable {
		t.Errorf("StatusCode = %d, want 503", provErr.StatusCode)
	}
	if provErr.Provider != "openai" {
		t.Errorf("Provider = %q", provErr.Provider)
	}
}
