package credential

import "errors"

// Domain-specific errors for the credential package.
var (
	ErrNotFound     = errors.New("credential not found")
	ErrEmptyKey     = errors.New("api key is empty")
	ErrRefreshToken = errors.New("failed to refresh access token")
)
