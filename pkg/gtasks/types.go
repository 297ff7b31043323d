package gtasks

import "time"

// TaskList is a Google Tasks list.
type TaskList struct {
	ID    string
	Title string
}

// Task mirrors the fields of a Google Tasks item this service cares about.
type Task struct {
	ID        string
	ListID    string
	Title     string
	Notes     string
	Due       *time.Time
	Completed bool
	UpdatedAt time.Time
}

// CreateTaskRequest carries the fields for a task insert.
type CreateTaskRequest struct {
	ListID string
	Title  string
	Notes  string
	Due    *time.Time
}

// PatchTaskRequest carries a partial update. Nil fields are left untouched.
type PatchTaskRequest struct {
	ListID    string
	TaskID    string
	Title     *string
	Notes     *string
	Due       *time.Time
	Completed *bool
}
