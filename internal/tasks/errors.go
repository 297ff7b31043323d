package tasks

import "errors"

// Domain-specific errors for the tasks package.
var (
	ErrTaskNotFound   = errors.New("task not found")
	ErrListNotFound   = errors.New("task list not found")
	ErrEmptyTitle     = errors.New("task title is empty")
	ErrGoogleUpstream = errors.New("google tasks request failed")
)
