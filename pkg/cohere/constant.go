package cohere

import "time"

const (
	// DefaultModel is the default Cohere model
	DefaultModel = "command-r"

	// DefaultBaseURL is the default Cohere API endpoint
	DefaultBaseURL = "https://api.cohere.ai/v1"

	// DefaultTimeout is the default HTTP client timeout
	DefaultTimeout = 30 * time.Second
)
