package tasks

import "time"

// CreateInput carries the fields for a task insert.
type CreateInput struct {
	ListID string
	Title  string
	Notes  string
	Due    *time.Time
}

// UpdateInput carries a partial task update.
type UpdateInput struct {
	ListID    string
	TaskID    string
	Title     *string
	Notes     *string
	Due       *time.Time
	Completed *bool
}
