package mistral

import "time"

const (
	// DefaultModel is the default Mistral model
	DefaultModel = "mistral-small-latest"

	// DefaultBaseURL is the default Mistral API endpoint
	DefaultBaseURL = "https://api.mistral.ai/v1"

	// DefaultTimeout is the default HTTP client timeout
	DefaultTimeout = 30 * time.Second
)
