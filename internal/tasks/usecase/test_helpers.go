package usecase

import (
	"context"

	"golang.org/x/oauth2"

	"taskflow-server/pkg/gtasks"
)

// Mock logger for testing
type mockLogger struct{}

func (m *mockLogger) Debug(ctx context.Context, arg ...any)                    {}
func (m *mockLogger) Debugf(ctx context.Context, template string, arg ...any)  {}
func (m *mockLogger) Info(ctx context.Context, arg ...any)                     {}
func (m *mockLogger) Infof(ctx context.Context, template string, arg ...any)   {}
func (m *mockLogger) Warn(ctx context.Context, arg ...any)                     {}
func (m *mockLogger) Warnf(ctx context.Context, template string, arg ...any)   {}
func (m *mockLogger) Error(ctx context.Context, arg ...any)                    {}
func (m *mockLogger) Errorf(ctx context.Context, template string, arg ...any)  {}
func (m *mockLogger) Fatal(ctx context.Context, arg ...any)                    {}
func (m *mockLogger) Fatalf(ctx context.Context, template string, arg ...any)  {}
func (m *mockLogger) DPanic(ctx context.Context, arg ...any)                   {}
func (m *mockLogger) DPanicf(ctx context.Context, template string, arg ...any) {}
func (m *mockLogger) Panic(ctx context.Context, arg ...any)                    {}
func (m *mockLogger) Panicf(ctx context.Context, template string, arg ...any)  {}

// fakeCredUC satisfies credential.UseCase with a fixed token.
type fakeCredUC struct {
	token string
	err   error
}

func (f *fakeCredUC) GetAccessToken(_ context.Context, _ string) (string, error) {
	return f.token, f.err
}
func (f *fakeCredUC) SaveGoogleToken(_ context.Context, _ string, _ *oauth2.Token) error { return nil }
func (f *fakeCredUC) DisconnectGoogle(_ context.Context, _ string) error                 { return nil }
func (f *fakeCredUC) GoogleConnected(_ context.Context, _ string) (bool, error) {
	return f.token != "", nil
}
func (f *fakeCredUC) GetAPIKey(_ context.Context, _, _ string) (string, error)  { return "", nil }
func (f *fakeCredUC) SaveAPIKey(_ context.Context, _, _, _ string) error        { return nil }
func (f *fakeCredUC) DeleteAPIKey(_ context.Context, _, _ string) error         { return nil }
func (f *fakeCredUC) ListProviders(_ context.Context, _ string) ([]string, error) {
	return nil, nil
}

// fakeGoogle is an in-memory googleClient.
type fakeGoogle struct {
	lists    []gtasks.TaskList
	tasks    map[string][]gtasks.Task
	err      error
	patched  []gtasks.PatchTaskRequest
	deleted  []string
	inserted []gtasks.CreateTaskRequest
}

func (f *fakeGoogle) ListTaskLists(_ context.Context) ([]gtasks.TaskList, error) {
	return f.lists, f.err
}

func (f *fakeGoogle) ListTasks(_ context.Context, listID string) ([]gtasks.Task, error) {
	if f.err != nil {
		return nil, f.err
	}
	return f.tasks[listID], nil
}

func (f *fakeGoogle) CreateTask(_ context.Context, req gtasks.CreateTaskRequest) (*gtasks.Task, error) {
	if f.err != nil {
		return nil, f.err
	}
	f.inserted = append(f.inserted, req)
	return &gtasks.Task{ID: "g-new", ListID: req.ListID, Title: req.Title, Notes: req.Notes, Due: req.Due}, nil
}

func (f *fakeGoogle) PatchTask(_ context.Context, req gtasks.PatchTaskRequest) (*gtasks.Task, error) {
	if f.err != nil {
		return nil, f.err
	}
	f.patched = append(f.patched, req)
	task := gtasks.Task{ID: req.TaskID, ListID: req.ListID}
	if req.Completed != nil {
		task.Completed = *req.Completed
	}
	return &task, nil
}

func (f *fakeGoogle) DeleteTask(_ context.Context, listID, taskID string) error {
	if f.err != nil {
		return f.err
	}
	f.deleted = append(f.deleted, listID+"/"+taskID)
	return nil
}

func newGoogleBackedUseCase(google *fakeGoogle) *implUseCase {
	uc := New(&mockLogger{}, &fakeCredUC{token: "ya29.test"}, nil)
	uc.newClient = func(_ context.Context, _ string) (googleClient, error) {
		return google, nil
	}
	return uc
}
