package chat

import (
	"errors"
	"fmt"
)

// Domain-specific errors for the chat package.
var (
	ErrMissingText        = errors.New("Missing text")
	ErrGoogleNotConnected = errors.New("Google Tasks not connected.")
	ErrNothingToDelete    = errors.New("no task matched for deletion")
	ErrTaskIDRequired     = errors.New("taskId required")
	ErrDueRequired        = errors.New("due date required")
)

// KeyMissingError means no API key is configured for the requested
// provider. Its message is surfaced to the client verbatim.
type KeyMissingError struct {
	Provider string
}

func (e *KeyMissingError) Error() string {
	return fmt.Sprintf("API key missing for %s", e.Provider)
}
