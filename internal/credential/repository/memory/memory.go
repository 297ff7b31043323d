package memory

import (
	"context"
	"sort"
	"sync"
	"time"

	"taskflow-server/internal/credential"
	"taskflow-server/internal/credential/repository"
)

type implRepository struct {
	mu     sync.RWMutex
	google map[string]credential.GoogleCredential
	keys   map[string]map[string]credential.APIKey // userID -> provider -> key
}

// New creates an in-memory credential repository. Used when no database
// DSN is configured; everything is lost on restart.
func New() repository.Repository {
	return &implRepository{
		google: make(map[string]credential.GoogleCredential),
		keys:   make(map[string]map[string]credential.APIKey),
	}
}

func (r *implRepository) GetGoogleCredential(_ context.Context, userID string) (*credential.GoogleCredential, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	cred, ok := r.google[userID]
	if !ok {
		return nil, credential.ErrNotFound
	}
	out := cred
	return &out, nil
}

func (r *implRepository) SaveGoogleCredential(_ context.Context, cred *credential.GoogleCredential) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	cred.UpdatedAt = time.Now()
	r.google[cred.UserID] = *cred
	return nil
}

func (r *implRepository) DeleteGoogleCredential(_ context.Context, userID string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	delete(r.google, userID)
	return nil
}

func (r *implRepository) GetAPIKey(_ context.Context, userID, provider string) (*credential.APIKey, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	key, ok := r.keys[userID][provider]
	if !ok {
		return nil, credential.ErrNotFound
	}
	out := key
	return &out, nil
}

func (r *implRepository) UpsertAPIKey(_ context.Context, key *credential.APIKey) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.keys[key.UserID] == nil {
		r.keys[key.UserID] = make(map[string]credential.APIKey)
	}
	key.UpdatedAt = time.Now()
	r.keys[key.UserID][key.Provider] = *key
	return nil
}

func (r *implRepository) DeleteAPIKey(_ context.Context, userID, provider string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	delete(r.keys[userID], provider)
	return nil
}

func (r *implRepository) ListAPIKeyProviders(_ context.Context, userID string) ([]string, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	providers := make([]string, 0, len(r.keys[userID]))
	for provider := range r.keys[userID] {
		providers = append(providers, provider)
	}
	sort.Strings(providers)
	return providers, nil
}
