package usecase

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"golang.org/x/oauth2"

	"taskflow-server/internal/auth"
	"taskflow-server/internal/model"
)

func (uc *implUseCase) StartGoogleAuth(ctx context.Context, sc model.Scope) (string, error) {
	if uc.mockMode {
		return "mock://auth?state=demo", nil
	}
	if uc.oauthCfg == nil || uc.oauthCfg.ClientID == "" || uc.oauthCfg.RedirectURL == "" {
		return "", auth.ErrOAuthNotConfigured
	}

	state := uuid.NewString()
	verifier := oauth2.GenerateVerifier()

	uc.mu.Lock()
	now := uc.now()
	for key, rec := range uc.states {
		if now.Sub(rec.createdAt) > stateTTL {
			delete(uc.states, key)
		}
	}
	uc.states[state] = stateRecord{userID: sc.UserID, verifier: verifier, createdAt: now}
	uc.mu.Unlock()

	url := uc.oauthCfg.AuthCodeURL(state,
		oauth2.AccessTypeOffline,
		oauth2.SetAuthURLParam("prompt", "consent"),
		oauth2.S256ChallengeOption(verifier),
	)
	return url, nil
}

func (uc *implUseCase) CompleteGoogleAuth(ctx context.Context, code, state string) (string, error) {
	uc.mu.Lock()
	rec, ok := uc.states[state]
	delete(uc.states, state)
	uc.mu.Unlock()

	if !ok || uc.now().Sub(rec.createdAt) > stateTTL {
		return "", auth.ErrInvalidState
	}

	tok, err := uc.oauthCfg.Exchange(ctx, code, oauth2.VerifierOption(rec.verifier))
	if err != nil {
		uc.l.Warnf(ctx, "auth: token exchange: %v", err)
		return "", fmt.Errorf("%w: %v", auth.ErrExchangeFailed, err)
	}

	if err := uc.credUC.SaveGoogleToken(ctx, rec.userID, tok); err != nil {
		return "", fmt.Errorf("save google token: %w", err)
	}

	return uc.webAppURL + "/settings?google=connected", nil
}
