package config

import (
	"fmt"
	"strings"

	"github.com/spf13/viper"
)

// Config holds all service configuration.
type Config struct {
	Environment EnvironmentConfig

	HTTPServer HTTPServerConfig
	Logger     LoggerConfig

	Auth     AuthConfig
	Google   GoogleConfig
	Database DatabaseConfig
	Chat     ChatConfig

	WebAppURL string
}

type EnvironmentConfig struct {
	Name string
}

type HTTPServerConfig struct {
	Port            int
	Mode            string
	RateLimitPerMin int
}

type LoggerConfig struct {
	Level        string
	Mode         string
	Encoding     string
	ColorEnabled bool
}

// AuthConfig drives request authentication. When UseMockAuth is set (or no
// Supabase verification material is configured) the server falls back to
// locally signed HMAC session tokens.
type AuthConfig struct {
	SupabaseJWTSecret     string
	SupabasePublicKey     string // PEM, inline
	SupabasePublicKeyPath string // PEM, file
	UseMockAuth           bool
	SessionSecret         string
}

type GoogleConfig struct {
	ClientID     string
	ClientSecret string
	RedirectURI  string
}

type DatabaseConfig struct {
	// DSN is a Postgres connection string. Empty means in-memory storage.
	DSN string
	// EncryptionKey is the 32-byte hex key for stored tokens and API keys.
	EncryptionKey string
}

type ChatConfig struct {
	// Timezone resolves relative dates ("tomorrow") in chat commands.
	Timezone string
	// OpenAIAPIKey is the server-level fallback used when a user has not
	// saved their own OpenAI key. Other providers have no fallback.
	OpenAIAPIKey string
}

// Load loads configuration using Viper.
// Config file name: config.yaml — searched in ./config, ., /etc/app/
func Load() (*Config, error) {
	viper.SetConfigName("config")
	viper.SetConfigType("yaml")
	viper.AddConfigPath("./config")
	viper.AddConfigPath(".")
	viper.AddConfigPath("/etc/app/")

	viper.AutomaticEnv()
	viper.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))

	setDefaults()

	if err := viper.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return nil, fmt.Errorf("error reading config file: %w", err)
		}
	}

	cfg := &Config{}

	cfg.Environment.Name = viper.GetString("environment.name")
	cfg.HTTPServer.Port = viper.GetInt("http_server.port")
	cfg.HTTPServer.Mode = viper.GetString("http_server.mode")
	cfg.HTTPServer.RateLimitPerMin = viper.GetInt("http_server.rate_limit_per_min")
	cfg.Logger.Level = viper.GetString("logger.level")
	cfg.Logger.Mode = viper.GetString("logger.mode")
	cfg.Logger.Encoding = viper.GetString("logger.encoding")
	cfg.Logger.ColorEnabled = viper.GetBool("logger.color_enabled")

	cfg.Auth.SupabaseJWTSecret = viper.GetString("auth.supabase_jwt_secret")
	cfg.Auth.SupabasePublicKey = viper.GetString("auth.supabase_public_key")
	cfg.Auth.SupabasePublicKeyPath = viper.GetString("auth.supabase_public_key_path")
	cfg.Auth.UseMockAuth = viper.GetBool("auth.use_mock_auth")
	cfg.Auth.SessionSecret = viper.GetString("auth.session_secret")
	if v := viper.GetString("supabase_jwt_secret"); v != "" {
		cfg.Auth.SupabaseJWTSecret = v
	}
	if v := viper.GetString("supabase_public_key"); v != "" {
		cfg.Auth.SupabasePublicKey = v
	}
	if v := viper.GetString("supabase_public_key_path"); v != "" {
		cfg.Auth.SupabasePublicKeyPath = v
	}
	if viper.GetBool("use_mock_auth") {
		cfg.Auth.UseMockAuth = true
	}
	if v := viper.GetString("session_secret"); v != "" {
		cfg.Auth.SessionSecret = v
	}
	// Without any Supabase verification material the server cannot verify
	// real tokens, so it runs in mock-session mode.
	if cfg.Auth.SupabaseJWTSecret == "" && cfg.Auth.SupabasePublicKey == "" && cfg.Auth.SupabasePublicKeyPath == "" {
		cfg.Auth.UseMockAuth = true
	}

	cfg.Google.ClientID = viper.GetString("google.client_id")
	cfg.Google.ClientSecret = viper.GetString("google.client_secret")
	cfg.Google.RedirectURI = viper.GetString("google.redirect_uri")
	if v := viper.GetString("google_client_id"); v != "" {
		cfg.Google.ClientID = v
	}
	if v := viper.GetString("google_client_secret"); v != "" {
		cfg.Google.ClientSecret = v
	}
	if v := viper.GetString("google_redirect_uri"); v != "" {
		cfg.Google.RedirectURI = v
	}

	cfg.Database.DSN = viper.GetString("database.dsn")
	cfg.Database.EncryptionKey = viper.GetString("database.encryption_key")
	if v := viper.GetString("database_url"); v != "" {
		cfg.Database.DSN = v
	}
	if v := viper.GetString("token_encryption_key"); v != "" {
		cfg.Database.EncryptionKey = v
	}

	cfg.Chat.Timezone = viper.GetString("chat.timezone")
	cfg.Chat.OpenAIAPIKey = viper.GetString("chat.openai_api_key")
	if v := viper.GetString("timezone"); v != "" {
		cfg.Chat.Timezone = v
	}
	if v := viper.GetString("openai_api_key"); v != "" {
		cfg.Chat.OpenAIAPIKey = v
	}

	cfg.WebAppURL = viper.GetString("web_app_url")

	if err := cfg.validate(); err != nil {
		return nil, err
	}

	return cfg, nil
}

func (c *Config) validate() error {
	if c.Auth.UseMockAuth && c.Auth.SessionSecret == "" {
		return fmt.Errorf("mock auth requires session_secret (SESSION_SECRET)")
	}
	if c.Database.DSN != "" && c.Database.EncryptionKey == "" {
		return fmt.Errorf("persistent storage requires token_encryption_key (TOKEN_ENCRYPTION_KEY)")
	}
	return nil
}

func setDefaults() {
	viper.SetDefault("environment.name", "development")
	viper.SetDefault("http_server.port", 8080)
	viper.SetDefault("http_server.mode", "debug")
	viper.SetDefault("http_server.rate_limit_per_min", 120)
	viper.SetDefault("logger.level", "debug")
	viper.SetDefault("logger.mode", "debug")
	viper.SetDefault("logger.encoding", "console")
	viper.SetDefault("logger.color_enabled", true)
	viper.SetDefault("chat.timezone", "UTC")
	viper.SetDefault("web_app_url", "http://localhost:5173")
}
