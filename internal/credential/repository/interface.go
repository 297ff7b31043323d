package repository

import (
	"context"

	"taskflow-server/internal/credential"
)

// Repository is the interface for credential persistence. Token and key
// values arrive already encrypted; the repository never sees plaintext.
type Repository interface {
	GetGoogleCredential(ctx context.Context, userID string) (*credential.GoogleCredential, error)
	SaveGoogleCredential(ctx context.Context, cred *credential.GoogleCredential) error
	DeleteGoogleCredential(ctx context.Context, userID string) error

	GetAPIKey(ctx context.Context, userID, provider string) (*credential.APIKey, error)
	UpsertAPIKey(ctx context.Context, key *credential.APIKey) error
	DeleteAPIKey(ctx context.Context, userID, provider string) error
	ListAPIKeyProviders(ctx context.Context, userID string) ([]string, error)
}
