package cohere

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
)

// ICohere is the interface for the Cohere chat client
type ICohere interface {
	Complete(ctx context.Context, req *Request) (string, error)
	Model() string
}

// Client implements ICohere
type Client struct {
	apiKey     string
	model      string
	baseURL    string
	httpClient *http.Client
}

var _ ICohere = (*Client)(nil)

// New creates a new Cohere client
func New(cfg Config) (*Client, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &Client{
		apiKey:     cfg.APIKey,
		model:      cfg.Model,
		baseURL:    cfg.BaseURL,
		httpClient: cfg.HTTPClient,
	}, nil
}

// Complete sends a chat request and returns the reply text.
func (c *Client) Complete(ctx context.Context, req *Request) (string, error) {
	body, err := json.Marshal(chatRequest{
		Model:       c.model,
		Message:     req.User,
		Preamble:    req.System,
		Temperature: req.Temperature,
		MaxTokens:   req.MaxTokens,
	})
	if err != nil {
		return "", fmt.Errorf("cohere: failed to marshal request: %w", err)
	}

	httpReq, err := http.NewRequestWithContext(ctx, http.MethodPost,
		c.baseURL+"/chat", bytes.NewBuffer(body))
	if err != nil {
		return "", fmt.Errorf("cohere: failed to create request: %w", err)
	}
	httpReq.Header.Set("Authorization", "Bearer "+c.apiKey)
	httpReq.Header.Set("Content-Type", "application/json")

	resp, err := c.httpClient.Do(httpReq)
	if err != nil {
		return "", fmt.Errorf("cohere: API call failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		raw, _ := io.ReadAll(resp.Body)
		return "", &APIError{StatusCode: resp.StatusCode, Body: string(raw)}
	}

	var result chatResponse
	if err := json.NewDecoder(resp.Body).Decode(&result); err != nil {
		return "", fmt.Errorf("cohere: failed to decode response: %w", err)
	}

	if result.Text == "" {
		return "", fmt.Errorf("cohere: empty response")
	}
	return result.Text, nil
}

// Model returns the model being used
func (c *Client) Model() string {
	return c.model
}
