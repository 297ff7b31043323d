package usecase

import (
	"context"
	"errors"
	"fmt"
	"time"

	"golang.org/x/oauth2"

	"taskflow-server/internal/credential"
)

// Tokens expiring within this window are refreshed eagerly so a request
// in flight never races expiry.
const expirySkew = 30 * time.Second

func (uc *implUseCase) GetAccessToken(ctx context.Context, userID string) (string, error) {
	cred, err := uc.repo.GetGoogleCredential(ctx, userID)
	if err != nil {
		if errors.Is(err, credential.ErrNotFound) {
			return "", nil
		}
		return "", err
	}

	accessToken, err := uc.enc.Decrypt(cred.AccessToken)
	if err != nil {
		return "", fmt.Errorf("failed to decrypt access token: %w", err)
	}

	if cred.ExpiresAt == nil || time.Until(*cred.ExpiresAt) > expirySkew {
		return accessToken, nil
	}

	if cred.RefreshToken == "" {
		// Stale with no way to refresh. Hand it over and let the
		// downstream call surface the 401.
		return accessToken, nil
	}

	refreshToken, err := uc.enc.Decrypt(cred.RefreshToken)
	if err != nil {
		return "", fmt.Errorf("failed to decrypt refresh token: %w", err)
	}

	fresh, err := uc.oauthCfg.TokenSource(ctx, &oauth2.Token{RefreshToken: refreshToken}).Token()
	if err != nil {
		return "", fmt.Errorf("%w: %v", credential.ErrRefreshToken, err)
	}

	if err := uc.persistToken(ctx, userID, fresh, refreshToken); err != nil {
		uc.l.Warnf(ctx, "credential.GetAccessToken: failed to persist refreshed token for %s: %v", userID, err)
	}

	return fresh.AccessToken, nil
}

func (uc *implUseCase) SaveGoogleToken(ctx context.Context, userID string, token *oauth2.Token) error {
	return uc.persistToken(ctx, userID, token, token.RefreshToken)
}

func (uc *implUseCase) DisconnectGoogle(ctx context.Context, userID string) error {
	return uc.repo.DeleteGoogleCredential(ctx, userID)
}

func (uc *implUseCase) GoogleConnected(ctx context.Context, userID string) (bool, error) {
	_, err := uc.repo.GetGoogleCredential(ctx, userID)
	if err != nil {
		if errors.Is(err, credential.ErrNotFound) {
			return false, nil
		}
		return false, err
	}
	return true, nil
}

// persistToken encrypts and stores a token set. Google only returns a
// refresh token on first consent, so a prior one is carried forward when
// the new token set omits it.
func (uc *implUseCase) persistToken(ctx context.Context, userID string, token *oauth2.Token, priorRefresh string) error {
	encAccess, err := uc.enc.Encrypt(token.AccessToken)
	if err != nil {
		return fmt.Errorf("failed to encrypt access token: %w", err)
	}

	refreshToken := token.RefreshToken
	if refreshToken == "" {
		refreshToken = priorRefresh
	}
	var encRefresh string
	if refreshToken != "" {
		encRefresh, err = uc.enc.Encrypt(refreshToken)
		if err != nil {
			return fmt.Errorf("failed to encrypt refresh token: %w", err)
		}
	}

	cred := &credential.GoogleCredential{
		UserID:       userID,
		AccessToken:  encAccess,
		RefreshToken: encRefresh,
	}
	if !token.Expiry.IsZero() {
		expiry := token.Expiry
		cred.ExpiresAt = &expiry
	}
	return uc.repo.SaveGoogleCredential(ctx, cred)
}
