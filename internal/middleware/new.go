package middleware

import (
	"taskflow-server/pkg/log"
	"taskflow-server/pkg/token"
)

type Middleware struct {
	l               log.Logger
	verifier        token.Verifier
	rateLimitPerMin int
}

func New(l log.Logger, verifier token.Verifier, rateLimitPerMin int) Middleware {
	return Middleware{
		l:               l,
		verifier:        verifier,
		rateLimitPerMin: rateLimitPerMin,
	}
}
