package httpserver

import (
	"errors"

	"github.com/gin-gonic/gin"

	"taskflow-server/internal/auth"
	"taskflow-server/internal/chat"
	"taskflow-server/internal/credential"
	"taskflow-server/internal/tasks"
	"taskflow-server/pkg/log"
	"taskflow-server/pkg/token"
)

// HTTPServer holds all dependencies for the HTTP server.
type HTTPServer struct {
	gin         *gin.Engine
	l           log.Logger
	port        int
	mode        string
	environment string

	verifier        token.Verifier
	mockAuth        bool
	rateLimitPerMin int

	authUC auth.UseCase
	chatUC chat.UseCase
	credUC credential.UseCase
	taskUC tasks.UseCase

	// reported by GET /status
	dbConfigured       bool
	googleConfigured   bool
	supabaseConfigured bool
}

// Config is the dependency bag passed to New().
type Config struct {
	Logger      log.Logger
	Port        int
	Mode        string
	Environment string

	Verifier        token.Verifier
	MockAuth        bool
	RateLimitPerMin int

	AuthUC auth.UseCase
	ChatUC chat.UseCase
	CredUC credential.UseCase
	TaskUC tasks.UseCase

	DBConfigured       bool
	GoogleConfigured   bool
	SupabaseConfigured bool
}

// New creates a new HTTPServer instance.
func New(cfg Config) (*HTTPServer, error) {
	gin.SetMode(cfg.Mode)

	srv := &HTTPServer{
		l:                  cfg.Logger,
		gin:                gin.New(),
		port:               cfg.Port,
		mode:               cfg.Mode,
		environment:        cfg.Environment,
		verifier:           cfg.Verifier,
		mockAuth:           cfg.MockAuth,
		rateLimitPerMin:    cfg.RateLimitPerMin,
		authUC:             cfg.AuthUC,
		chatUC:             cfg.ChatUC,
		credUC:             cfg.CredUC,
		taskUC:             cfg.TaskUC,
		dbConfigured:       cfg.DBConfigured,
		googleConfigured:   cfg.GoogleConfigured,
		supabaseConfigured: cfg.SupabaseConfigured,
	}

	if err := srv.validate(); err != nil {
		return nil, err
	}

	srv.mapHandlers()

	return srv, nil
}

func (srv *HTTPServer) validate() error {
	if srv.l == nil {
		return errors.New("logger is required")
	}
	if srv.mode == "" {
		return errors.New("mode is required")
	}
	if srv.port == 0 {
		return errors.New("port is required")
	}
	if srv.verifier == nil {
		return errors.New("token verifier is required")
	}
	if srv.authUC == nil || srv.chatUC == nil || srv.credUC == nil || srv.taskUC == nil {
		return errors.New("all use cases are required")
	}
	return nil
}
