package chat

import (
	"context"

	"taskflow-server/internal/model"
)

// UseCase is the natural-language command surface. One call handles one
// user message end to end: routing, parsing, pending-flow bookkeeping,
// and execution against the task store.
type UseCase interface {
	// Command interprets free text and performs whatever it asks for.
	Command(ctx context.Context, sc model.Scope, input CommandInput) (*CommandOutput, error)

	// TestKey validates a stored provider key by issuing a canned parse.
	TestKey(ctx context.Context, sc model.Scope, toolID string) error
}
