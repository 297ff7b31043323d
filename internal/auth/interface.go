package auth

import (
	"context"

	"taskflow-server/internal/model"
)

// UseCase covers login sessions and the Google OAuth consent flow.
type UseCase interface {
	// MockLogin issues a development session for the demo user. Only
	// available in mock-auth mode.
	MockLogin(ctx context.Context) (*LoginOutput, error)

	// StartGoogleAuth begins the PKCE consent flow and returns the
	// authorization URL the client should open.
	StartGoogleAuth(ctx context.Context, sc model.Scope) (string, error)

	// CompleteGoogleAuth exchanges the authorization code, stores the
	// token set, and returns the web-app URL to redirect to.
	CompleteGoogleAuth(ctx context.Context, code, state string) (string, error)

	// Me resolves the caller's user record.
	Me(ctx context.Context, sc model.Scope) (model.User, error)
}
