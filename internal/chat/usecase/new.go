package usecase

import (
	"time"

	"taskflow-server/internal/chat"
	"taskflow-server/internal/credential"
	"taskflow-server/internal/session"
	"taskflow-server/internal/tasks"
	"taskflow-server/pkg/datemath"
	"taskflow-server/pkg/llm"
	pkgLog "taskflow-server/pkg/log"
)

type implUseCase struct {
	l           pkgLog.Logger
	credUC      credential.UseCase
	tasksUC     tasks.UseCase
	store       session.Store
	dm          *datemath.Parser
	newProvider llm.Factory
	// Process-level fallback key, honored for OpenAI only.
	openAIFallbackKey string
	now               func() time.Time
}

var _ chat.UseCase = (*implUseCase)(nil)

// New creates a new chat UseCase instance.
func New(
	l pkgLog.Logger,
	credUC credential.UseCase,
	tasksUC tasks.UseCase,
	store session.Store,
	dm *datemath.Parser,
	openAIFallbackKey string,
) *implUseCase {
	return &implUseCase{
		l:                 l,
		credUC:            credUC,
		tasksUC:           tasksUC,
		store:             store,
		dm:                dm,
		newProvider:       llm.New,
		openAIFallbackKey: openAIFallbackKey,
		now:               time.Now,
	}
}
