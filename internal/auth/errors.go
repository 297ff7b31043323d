package auth

import "errors"

// Domain-specific errors for the auth package. Messages surface to clients
// verbatim.
var (
	ErrOAuthNotConfigured = errors.New("Google OAuth not configured. Set GOOGLE_CLIENT_ID and GOOGLE_REDIRECT_URI.")
	ErrInvalidState       = errors.New("Invalid or expired state")
	ErrExchangeFailed     = errors.New("Token exchange failed")
	ErrMockOnly           = errors.New("OAuth exchange not configured")
)
