package googleai

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
)

// IGoogleAI is the interface for the Gemini generateContent client
type IGoogleAI interface {
	Complete(ctx context.Context, req *Request) (string, error)
	Model() string
}

// Client implements IGoogleAI
type Client struct {
	apiKey     string
	model      string
	baseURL    string
	httpClient *http.Client
}

var _ IGoogleAI = (*Client)(nil)

// New creates a new Gemini client
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

// Complete sends a generateContent request and returns the candidate text.
func (c *Client) Complete(ctx context.Context, req *Request) (string, error) {
	text := req.User
	if req.System != "" {
		text = req.System + "\n\n" + req.User
	}

	genReq := generateRequest{
		Contents: []content{
			{Role: "user", Parts: []part{{Text: text}}},
		},
	}
	if req.Temperature > 0 || req.MaxTokens > 0 {
		genReq.GenerationConfig = &generationConfig{
			Temperature:     req.Temperature,
			MaxOutputTokens: req.MaxTokens,
		}
	}

	body, err := json.Marshal(genReq)
	if err != nil {
		return "", fmt.Errorf("googleai: failed to marshal request: %w", err)
	}

	url := fmt.Sprintf("%s/models/%s:generateContent?key=%s", c.baseURL, c.model, c.apiKey)
	httpReq, err := http.NewRequestWithContext(ctx, http.MethodPost, url, bytes.NewBuffer(body))
	if err != nil {
		return "", fmt.Errorf("googleai: failed to create request: %w", err)
	}
	httpReq.Header.Set("Content-Type", "application/json")

	resp, err := c.httpClient.Do(httpReq)
	if err != nil {
		return "", fmt.Errorf("googleai: API call failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		raw, _ := io.ReadAll(resp.Body)
		return "", &APIError{StatusCode: resp.StatusCode, Body: string(raw)}
	}

	var result generateResponse
	if err := json.NewDecoder(resp.Body).Decode(&result); err != nil {
		return "", fmt.Errorf("googleai: failed to decode response: %w", err)
	}

	if len(result.Candidates) == 0 || len(result.Candidates[0].Content.Parts) == 0 {
		return "", fmt.Errorf("googleai: empty response")
	}
	return result.Candidates[0].Content.Parts[0].Text, nil
}

// Model returns the model being used
func (c *Client) Model() string {
	return c.model
}
