package postgres

import (
	"context"
	"errors"
	"time"

	"gorm.io/gorm"

	"taskflow-server/internal/credential"
	"taskflow-server/internal/credential/repository"
)

type implRepository struct {
	db *gorm.DB
}

// New creates a Postgres-backed credential repository and migrates its tables.
func New(db *gorm.DB) (repository.Repository, error) {
	if err := db.AutoMigrate(&credential.GoogleCredential{}, &credential.APIKey{}); err != nil {
		return nil, err
	}
	return &implRepository{db: db}, nil
}

func (r *implRepository) GetGoogleCredential(ctx context.Context, userID string) (*credential.GoogleCredential, error) {
	var cred credential.GoogleCredential
	err := r.db.WithContext(ctx).Where("user_id = ?", userID).First(&cred).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, credential.ErrNotFound
		}
		return nil, err
	}
	return &cred, nil
}

func (r *implRepository) SaveGoogleCredential(ctx context.Context, cred *credential.GoogleCredential) error {
	cred.UpdatedAt = time.Now()
	return r.db.WithContext(ctx).Save(cred).Error
}

func (r *implRepository) DeleteGoogleCredential(ctx context.Context, userID string) error {
	return r.db.WithContext(ctx).Delete(&credential.GoogleCredential{}, "user_id = ?", userID).Error
}

func (r *implRepository) GetAPIKey(ctx context.Context, userID, provider string) (*credential.APIKey, error) {
	var key credential.APIKey
	err := r.db.WithContext(ctx).
		Where("user_id = ? AND provider = ?", userID, provider).
		First(&key).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, credential.ErrNotFound
		}
		return nil, err
	}
	return &key, nil
}

func (r *implRepository) UpsertAPIKey(ctx context.Context, key *credential.APIKey) error {
	key.UpdatedAt = time.Now()
	return r.db.WithContext(ctx).Save(key).Error
}

func (r *implRepository) DeleteAPIKey(ctx context.Context, userID, provider string) error {
	return r.db.WithContext(ctx).
		Delete(&credential.APIKey{}, "user_id = ? AND provider = ?", userID, provider).Error
}

func (r *implRepository) ListAPIKeyProviders(ctx context.Context, userID string) ([]string, error) {
	var providers []string
	err := r.db.WithContext(ctx).Model(&credential.APIKey{}).
		Where("user_id = ?", userID).
		Order("provider").
		Pluck("provider", &providers).Error
	if err != nil {
		return nil, err
	}
	return providers, nil
}
