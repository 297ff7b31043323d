package usecase

import (
	"context"

	"golang.org/x/oauth2"

	"taskflow-server/internal/credential"
	"taskflow-server/internal/tasks"
	"taskflow-server/internal/tasks/repository"
	"taskflow-server/pkg/gtasks"
	pkgLog "taskflow-server/pkg/log"
)

// googleClient is the slice of the Google Tasks client this usecase
// needs; tests substitute a fake.
type googleClient interface {
	ListTaskLists(ctx context.Context) ([]gtasks.TaskList, error)
	ListTasks(ctx context.Context, listID string) ([]gtasks.Task, error)
	CreateTask(ctx context.Context, req gtasks.CreateTaskRequest) (*gtasks.Task, error)
	PatchTask(ctx context.Context, req gtasks.PatchTaskRequest) (*gtasks.Task, error)
	DeleteTask(ctx context.Context, listID, taskID string) error
}

type googleClientFactory func(ctx context.Context, accessToken string) (googleClient, error)

type implUseCase struct {
	l         pkgLog.Logger
	credUC    credential.UseCase
	local     repository.LocalRepository
	newClient googleClientFactory
}

var _ tasks.UseCase = (*implUseCase)(nil)

// New creates a new tasks UseCase instance.
func New(l pkgLog.Logger, credUC credential.UseCase, local repository.LocalRepository) *implUseCase {
	return &implUseCase{
		l:      l,
		credUC: credUC,
		local:  local,
		newClient: func(ctx context.Context, accessToken string) (googleClient, error) {
			ts := oauth2.StaticTokenSource(&oauth2.Token{AccessToken: accessToken})
			return gtasks.NewClientFromTokenSource(ctx, ts)
		},
	}
}

// clientFor returns a Google Tasks client for the user, or nil when the
// user has not connected Google.
func (uc *implUseCase) clientFor(ctx context.Context, userID string) (googleClient, error) {
	token, err := uc.credUC.GetAccessToken(ctx, userID)
	if err != nil {
		return nil, err
	}
	if token == "" {
		return nil, nil
	}
	return uc.newClient(ctx, token)
}
