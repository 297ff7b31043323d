package http

import (
	"taskflow-server/internal/tasks"
	"taskflow-server/pkg/log"
)

type handler struct {
	l  log.Logger
	uc tasks.UseCase
}

// New creates the HTTP handler for the tasks domain.
func New(l log.Logger, uc tasks.UseCase) *handler {
	return &handler{
		l:  l,
		uc: uc,
	}
}
