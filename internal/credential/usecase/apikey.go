package usecase

import (
	"context"
	"errors"
	"fmt"

	"taskflow-server/internal/credential"
)

func cacheKey(userID, provider string) string {
	return userID + "/" + provider
}

func (uc *implUseCase) GetAPIKey(ctx context.Context, userID, provider string) (string, error) {
	if key, ok := uc.keyCache.Get(cacheKey(userID, provider)); ok {
		return key, nil
	}

	record, err := uc.repo.GetAPIKey(ctx, userID, provider)
	if err != nil {
		if errors.Is(err, credential.ErrNotFound) {
			return "", nil
		}
		return "", err
	}

	key, err := uc.enc.Decrypt(record.Ciphertext)
	if err != nil {
		return "", fmt.Errorf("failed to decrypt %s key: %w", provider, err)
	}

	uc.keyCache.Add(cacheKey(userID, provider), key)
	return key, nil
}

func (uc *implUseCase) SaveAPIKey(ctx context.Context, userID, provider, key string) error {
	if key == "" {
		return credential.ErrEmptyKey
	}

	ciphertext, err := uc.enc.Encrypt(key)
	if err != nil {
		return fmt.Errorf("failed to encrypt %s key: %w", provider, err)
	}

	if err := uc.repo.UpsertAPIKey(ctx, &credential.APIKey{
		UserID:     userID,
		Provider:   provider,
		Ciphertext: ciphertext,
	}); err != nil {
		return err
	}

	uc.keyCache.Add(cacheKey(userID, provider), key)
	return nil
}

func (uc *implUseCase) DeleteAPIKey(ctx context.Context, userID, provider string) error {
	if err := uc.repo.DeleteAPIKey(ctx, userID, provider); err != nil {
		return err
	}
	uc.keyCache.Remove(cacheKey(userID, provider))
	return nil
}

func (uc *implUseCase) ListProviders(ctx context.Context, userID string) ([]string, error) {
	return uc.repo.ListAPIKeyProviders(ctx, userID)
}
