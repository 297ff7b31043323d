package repository

import (
	"context"

	"taskflow-server/internal/model"
	"taskflow-server/internal/tasks"
)

// LocalRepository is the fallback task store used before a user connects
// Google. Each user gets a seeded default list on first access.
type LocalRepository interface {
	Lists(ctx context.Context, userID string) ([]model.TaskList, error)
	ListTasks(ctx context.Context, userID, listID string) ([]model.Task, error)
	CreateTask(ctx context.Context, userID string, input tasks.CreateInput) (*model.Task, error)
	UpdateTask(ctx context.Context, userID string, input tasks.UpdateInput) (*model.Task, error)
	DeleteTask(ctx context.Context, userID, listID, taskID string) error
}
