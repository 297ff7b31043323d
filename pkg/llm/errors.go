package llm

import (
	"errors"
	"fmt"
)

// ErrUnknownTool indicates a tool id outside the provider catalog.
var ErrUnknownTool = errors.New("unknown tool")

// ProviderError wraps a vendor failure, carrying the HTTP status when the
// vendor responded non-2xx (StatusCode is 0 for transport-level failures).
type ProviderError struct {
	Provider   string
	StatusCode int
	Err        error
}

func (e *ProviderError) Error() string {
	if e.StatusCode > 0 {
		return fmt.Sprintf("provider %s: status %d: %v", e.Provider, e.StatusCode, e.Err)
	}
	return fmt.Sprintf("provider %s: %v", e.Provider, e.Err)
}

func (e *ProviderError) Unwrap() error {
	return e.Err
}
