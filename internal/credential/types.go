package credential

import "time"

// GoogleCredential is a user's encrypted Google OAuth token set.
type GoogleCredential struct {
	UserID       string     `json:"user_id" gorm:"primaryKey;column:user_id"`
	AccessToken  string     `json:"-" gorm:"column:access_token;not null"`
	RefreshToken string     `json:"-" gorm:"column:refresh_token"`
	ExpiresAt    *time.Time `json:"expires_at,omitempty" gorm:"column:expires_at"`
	UpdatedAt    time.Time  `json:"updated_at"`
}

// TableName overrides the gorm default.
func (GoogleCredential) TableName() string { return "google_credentials" }

// APIKey is a user's encrypted key for one LLM provider.
type APIKey struct {
	UserID     string    `json:"user_id" gorm:"primaryKey;column:user_id"`
	Provider   string    `json:"provider" gorm:"primaryKey;column:provider"`
	Ciphertext string    `json:"-" gorm:"column:ciphertext;not null"`
	UpdatedAt  time.Time `json:"updated_at"`
}

// TableName overrides the gorm default.
func (APIKey) TableName() string { return "api_keys" }
