package model

import "time"

// Task is a single to-do item, whether it lives in Google Tasks or the
// local in-memory store.
type Task struct {
	ID        string     `json:"id"`
	ListID    string     `json:"listId"`
	Title     string     `json:"title"`
	Notes     string     `json:"notes,omitempty"`
	Due       *time.Time `json:"due,omitempty"`
	Completed bool       `json:"completed"`
	UpdatedAt time.Time  `json:"updatedAt"`
}

// TaskList is a named container of tasks.
type TaskList struct {
	ID    string `json:"id"`
	Title string `json:"title"`
}
