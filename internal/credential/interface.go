package credential

import (
	"context"

	"golang.org/x/oauth2"
)

// UseCase defines the business logic interface for stored credentials.
type UseCase interface {
	// GetAccessToken returns a live Google access token for the user,
	// refreshing it when stale. Returns "" with a nil error when the user
	// has never connected Google.
	GetAccessToken(ctx context.Context, userID string) (string, error)

	// SaveGoogleToken persists an OAuth token set from the consent flow.
	SaveGoogleToken(ctx context.Context, userID string, token *oauth2.Token) error

	// DisconnectGoogle drops the stored Google credentials.
	DisconnectGoogle(ctx context.Context, userID string) error

	// GoogleConnected reports whether the user has Google credentials on file.
	GoogleConnected(ctx context.Context, userID string) (bool, error)

	// GetAPIKey returns the user's decrypted key for an LLM provider,
	// or "" when none is stored.
	GetAPIKey(ctx context.Context, userID, provider string) (string, error)

	// SaveAPIKey upserts an encrypted provider key.
	SaveAPIKey(ctx context.Context, userID, provider, key string) error

	// DeleteAPIKey removes a provider key. Deleting a missing key is a no-op.
	DeleteAPIKey(ctx context.Context, userID, provider string) error

	// ListProviders returns the providers the user has keys stored for.
	ListProviders(ctx context.Context, userID string) ([]string, error)
}
