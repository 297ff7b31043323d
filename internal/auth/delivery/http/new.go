package http

import (
	"taskflow-server/internal/auth"
	"taskflow-server/internal/credential"
	"taskflow-server/pkg/log"
	"taskflow-server/pkg/token"
)

type handler struct {
	l        log.Logger
	uc       auth.UseCase
	credUC   credential.UseCase
	verifier token.Verifier
	mockMode bool
}

// New creates the HTTP handler for sessions and the Google consent flow.
func New(l log.Logger, uc auth.UseCase, credUC credential.UseCase, verifier token.Verifier, mockMode bool) *handler {
	return &handler{
		l:        l,
		uc:       uc,
		credUC:   credUC,
		verifier: verifier,
		mockMode: mockMode,
	}
}
