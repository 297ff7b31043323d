package tasks

import (
	"context"

	"taskflow-server/internal/model"
)

// UseCase defines the business logic interface for the tasks domain.
// Reads and writes go to Google Tasks when the user has connected their
// account; otherwise they fall back to the per-user local store.
type UseCase interface {
	// Connected reports whether the user's Google account is linked.
	Connected(ctx context.Context, sc model.Scope) (bool, error)

	// Lists returns the user's task lists.
	Lists(ctx context.Context, sc model.Scope) ([]model.TaskList, error)

	// All returns every task across all of the user's lists.
	All(ctx context.Context, sc model.Scope) ([]model.Task, error)

	// ListTasks returns the tasks of a single list.
	ListTasks(ctx context.Context, sc model.Scope, listID string) ([]model.Task, error)

	// Create inserts a new task. An empty ListID targets the user's
	// first (default) list.
	Create(ctx context.Context, sc model.Scope, input CreateInput) (*model.Task, error)

	// Update applies a partial update. Nil fields are left untouched.
	Update(ctx context.Context, sc model.Scope, input UpdateInput) (*model.Task, error)

	// Delete removes a task from its list.
	Delete(ctx context.Context, sc model.Scope, listID, taskID string) error
}
