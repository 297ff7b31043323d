package anthropic

import "time"

const (
	// DefaultModel is the default Anthropic model
	DefaultModel = "claude-3-5-haiku-latest"

	// DefaultBaseURL is the default Anthropic API endpoint
	DefaultBaseURL = "https://api.anthropic.com/v1"

	// APIVersion is the anthropic-version header value
	APIVersion = "2023-06-01"

	// DefaultMaxTokens applies when the request does not set a limit;
	// the messages API requires max_tokens.
	DefaultMaxTokens = 1024

	// DefaultTimeout is the default HTTP client timeout
	DefaultTimeout = 30 * time.Second
)
