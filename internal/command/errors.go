package command

import (
	"errors"
	"fmt"
)

// ErrorKind classifies why normalization failed. Callers branch on it:
// a provider failure falls back to the rule-based parser, an invalid
// schema retries the text as general chat, a missing key is a client error.
type ErrorKind string

const (
	KindKeyMissing      ErrorKind = "key_missing"
	KindProviderFailure ErrorKind = "provider_failure"
	KindSchemaInvalid   ErrorKind = "schema_invalid"
)

// Error is a classified normalization failure.
type Error struct {
	Kind ErrorKind
	Err  error
}

func (e *Error) Error() string {
	return fmt.Sprintf("command: %s: %v", e.Kind, e.Err)
}

func (e *Error) Unwrap() error { return e.Err }

// KindOf extracts the classification from err, or "" for foreign errors.
func KindOf(err error) ErrorKind {
	var cmdErr *Error
	if errors.As(err, &cmdErr) {
		return cmdErr.Kind
	}
	return ""
}
