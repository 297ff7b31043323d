package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/joho/godotenv"
	"golang.org/x/oauth2"
	"golang.org/x/oauth2/google"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"

	"taskflow-server/config"
	_ "taskflow-server/docs" // Swagger docs
	authUsecase "taskflow-server/internal/auth/usecase"
	chatUsecase "taskflow-server/internal/chat/usecase"
	credRepo "taskflow-server/internal/credential/repository"
	credMemory "taskflow-server/internal/credential/repository/memory"
	credPostgres "taskflow-server/internal/credential/repository/postgres"
	credUsecase "taskflow-server/internal/credential/usecase"
	"taskflow-server/internal/httpserver"
	sessionMemory "taskflow-server/internal/session/memory"
	tasksMemory "taskflow-server/internal/tasks/repository/memory"
	tasksUsecase "taskflow-server/internal/tasks/usecase"
	"taskflow-server/pkg/datemath"
	"taskflow-server/pkg/encrypter"
	"taskflow-server/pkg/log"
	"taskflow-server/pkg/token"
)

// @title       TaskFlow API
// @description Multi-client to-do backend: natural-language commands via LLM providers, Google Tasks sync, Supabase or mock sessions.
// @version     1
// @host        localhost:8080
// @schemes     http
func main() {
	// .env is optional; real deployments set env vars directly.
	_ = godotenv.Load()

	cfg, err := config.Load()
	if err != nil {
		fmt.Println("Failed to load config: ", err)
		return
	}

	logger := log.Init(log.ZapConfig{
		Level:        cfg.Logger.Level,
		Mode:         cfg.Logger.Mode,
		Encoding:     cfg.Logger.Encoding,
		ColorEnabled: cfg.Logger.ColorEnabled,
	})

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	logger.Info(ctx, "Starting TaskFlow server...")
	logger.Infof(ctx, "Environment: %s", cfg.Environment.Name)

	oauthCfg := &oauth2.Config{
		ClientID:     cfg.Google.ClientID,
		ClientSecret: cfg.Google.ClientSecret,
		RedirectURL:  cfg.Google.RedirectURI,
		Scopes: []string{
			"https://www.googleapis.com/auth/tasks",
			"https://www.googleapis.com/auth/userinfo.email",
			"https://www.googleapis.com/auth/userinfo.profile",
		},
		Endpoint: google.Endpoint,
	}

	// Credentials live in Postgres when a DSN is configured, otherwise in
	// memory (development).
	var repo credRepo.Repository
	if cfg.Database.DSN != "" {
		db, dbErr := gorm.Open(postgres.Open(cfg.Database.DSN), &gorm.Config{})
		if dbErr != nil {
			logger.Error(ctx, "Failed to connect to Postgres: ", dbErr)
			return
		}
		repo, err = credPostgres.New(db)
		if err != nil {
			logger.Error(ctx, "Failed to migrate credential tables: ", err)
			return
		}
		logger.Info(ctx, "Credential store: Postgres")
	} else {
		repo = credMemory.New()
		logger.Warn(ctx, "DATABASE_URL not set, using in-memory credential store")
	}

	enc := encrypter.New(cfg.Database.EncryptionKey)
	credUC := credUsecase.New(logger, repo, enc, oauthCfg)

	tasksUC := tasksUsecase.New(logger, credUC, tasksMemory.New())

	dm, err := datemath.NewParser(cfg.Chat.Timezone)
	if err != nil {
		logger.Warnf(ctx, "Invalid timezone %q, falling back to UTC: %v", cfg.Chat.Timezone, err)
		dm, _ = datemath.NewParser("UTC")
	}

	chatUC := chatUsecase.New(logger, credUC, tasksUC, sessionMemory.New(), dm, cfg.Chat.OpenAIAPIKey)

	var (
		verifier token.Verifier
		signer   *token.MockSigner
	)
	switch {
	case cfg.Auth.UseMockAuth:
		signer = token.NewMockSigner(cfg.Auth.SessionSecret)
		verifier = signer
		logger.Warn(ctx, "Mock auth enabled: sessions are locally signed")
	case cfg.Auth.SupabaseJWTSecret != "":
		verifier = token.NewHS256Verifier(cfg.Auth.SupabaseJWTSecret)
	case cfg.Auth.SupabasePublicKey != "":
		verifier, err = token.NewRS256Verifier([]byte(cfg.Auth.SupabasePublicKey))
	default:
		verifier, err = token.NewRS256VerifierFromFile(cfg.Auth.SupabasePublicKeyPath)
	}
	if err != nil {
		logger.Error(ctx, "Failed to build token verifier: ", err)
		return
	}

	authUC := authUsecase.New(logger, credUC, signer, oauthCfg, cfg.WebAppURL, cfg.Auth.UseMockAuth)

	httpServer, err := httpserver.New(httpserver.Config{
		Logger:          logger,
		Port:            cfg.HTTPServer.Port,
		Mode:            cfg.HTTPServer.Mode,
		Environment:     cfg.Environment.Name,
		Verifier:        verifier,
		MockAuth:        cfg.Auth.UseMockAuth,
		RateLimitPerMin: cfg.HTTPServer.RateLimitPerMin,
		AuthUC:          authUC,
		ChatUC:          chatUC,
		CredUC:          credUC,
		TaskUC:          tasksUC,

		DBConfigured:       cfg.Database.DSN != "",
		GoogleConfigured:   cfg.Google.ClientID != "",
		SupabaseConfigured: !cfg.Auth.UseMockAuth,
	})
	if err != nil {
		logger.Error(ctx, "Failed to initialize HTTP server: ", err)
		return
	}

	if err := httpServer.Run(ctx); err != nil {
		logger.Error(ctx, "Failed to run server: ", err)
		return
	}

	logger.Info(ctx, "Server stopped gracefully")
}
