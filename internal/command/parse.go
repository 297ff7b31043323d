package command

import (
	"context"
	"encoding/json"
	"fmt"
	"regexp"
	"strings"

	"taskflow-server/internal/model"
	"taskflow-server/pkg/llm"
)

var fencePattern = regexp.MustCompile("(?s)```(?:json)?\\s*(.+?)\\s*```")

// ParseWithTool asks the provider to translate free text into a command,
// then cleans and validates what came back. Provider and schema failures
// are returned as classified *Error values so the caller can pick the
// right fallback.
func ParseWithTool(ctx context.Context, provider llm.Provider, text string) (*model.ChatCommand, error) {
	raw, err := provider.ParseCommand(ctx, text)
	if err != nil {
		return nil, &Error{Kind: KindProviderFailure, Err: err}
	}

	cleaned := sanitizeJSONResponse(raw)

	var cmd model.ChatCommand
	if err := json.Unmarshal([]byte(cleaned), &cmd); err != nil {
		return nil, &Error{Kind: KindSchemaInvalid, Err: fmt.Errorf("malformed provider JSON: %w", err)}
	}

	cmd.Normalize()
	if err := cmd.Validate(); err != nil {
		return nil, &Error{Kind: KindSchemaInvalid, Err: err}
	}
	return &cmd, nil
}

// sanitizeJSONResponse removes markdown code fences and leading/trailing
// prose that LLMs often add around JSON output.
func sanitizeJSONResponse(text string) string {
	matches := fencePattern.FindStringSubmatch(text)
	if len(matches) > 1 {
		return strings.TrimSpace(matches[1])
	}

	start := strings.IndexAny(text, "[{")
	if start == -1 {
		return strings.TrimSpace(text)
	}
	end := strings.LastIndexAny(text, "]}")
	if end == -1 || end < start {
		return strings.TrimSpace(text)
	}
	return strings.TrimSpace(text[start : end+1])
}
