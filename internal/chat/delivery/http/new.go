package http

import (
	"taskflow-server/internal/chat"
	"taskflow-server/internal/credential"
	"taskflow-server/pkg/log"
)

type handler struct {
	l      log.Logger
	uc     chat.UseCase
	credUC credential.UseCase
}

// New creates the HTTP handler for the AI command surface.
func New(l log.Logger, uc chat.UseCase, credUC credential.UseCase) *handler {
	return &handler{
		l:      l,
		uc:     uc,
		credUC: credUC,
	}
}
