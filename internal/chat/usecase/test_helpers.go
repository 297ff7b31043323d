package usecase

import (
	"context"
	"fmt"
	"time"

	"golang.org/x/oauth2"

	"taskflow-server/internal/model"
	"taskflow-server/internal/session/memory"
	"taskflow-server/internal/tasks"
	"taskflow-server/pkg/datemath"
	"taskflow-server/pkg/llm"
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

// fakeCredUC stores keys per provider in plain maps.
type fakeCredUC struct {
	keys      map[string]string
	connected bool
}

func (f *fakeCredUC) GetAccessToken(_ context.Context, _ string) (string, error) {
	if f.connected {
		return "ya29.test", nil
	}
	return "", nil
}
func (f *fakeCredUC) SaveGoogleToken(_ context.Context, _ string, _ *oauth2.Token) error { return nil }
func (f *fakeCredUC) DisconnectGoogle(_ context.Context, _ string) error                 { return nil }
func (f *fakeCredUC) GoogleConnected(_ context.Context, _ string) (bool, error) {
	return f.connected, nil
}
func (f *fakeCredUC) GetAPIKey(_ context.Context, _, provider string) (string, error) {
	return f.keys[provider], nil
}
func (f *fakeCredUC) SaveAPIKey(_ context.Context, _, provider, key string) error {
	f.keys[provider] = key
	return nil
}
func (f *fakeCredUC) DeleteAPIKey(_ context.Context, _, provider string) error {
	delete(f.keys, provider)
	return nil
}
func (f *fakeCredUC) ListProviders(_ context.Context, _ string) ([]string, error) { return nil, nil }

// fakeTasksUC is an in-memory tasks.UseCase.
type fakeTasksUC struct {
	connected bool
	lists     []model.TaskList
	items     []model.Task
	nextID    int
}

func (f *fakeTasksUC) Connected(_ context.Context, _ model.Scope) (bool, error) {
	return f.connected, nil
}

func (f *fakeTasksUC) Lists(_ context.Context, _ model.Scope) ([]model.TaskList, error) {
	return f.lists, nil
}

func (f *fakeTasksUC) All(_ context.Context, _ model.Scope) ([]model.Task, error) {
	out := make([]model.Task, len(f.items))
	copy(out, f.items)
	return out, nil
}

func (f *fakeTasksUC) ListTasks(_ context.Context, _ model.Scope, listID string) ([]model.Task, error) {
	var out []model.Task
	for _, t := range f.items {
		if t.ListID == listID {
			out = append(out, t)
		}
	}
	return out, nil
}

func (f *fakeTasksUC) Create(_ context.Context, _ model.Scope, input tasks.CreateInput) (*model.Task, error) {
	f.nextID++
	listID := input.ListID
	if listID == "" && len(f.lists) > 0 {
		listID = f.lists[0].ID
	}
	task := model.Task{
		ID:        fmt.Sprintf("t%d", f.nextID),
		ListID:    listID,
		Title:     input.Title,
		Notes:     input.Notes,
		Due:       input.Due,
		UpdatedAt: time.Now(),
	}
	f.items = append(f.items, task)
	return &task, nil
}

func (f *fakeTasksUC) Update(_ context.Context, _ model.Scope, input tasks.UpdateInput) (*model.Task, error) {
	for i := range f.items {
		if f.items[i].ID != input.TaskID {
			continue
		}
		if input.Completed != nil {
			f.items[i].Completed = *input.Completed
		}
		if input.Title != nil {
			f.items[i].Title = *input.Title
		}
		if input.Notes != nil {
			f.items[i].Notes = *input.Notes
		}
		if input.Due != nil {
			f.items[i].Due = input.Due
		}
		out := f.items[i]
		return &out, nil
	}
	return nil, tasks.ErrTaskNotFound
}

func (f *fakeTasksUC) Delete(_ context.Context, _ model.Scope, _, taskID string) error {
	for i := range f.items {
		if f.items[i].ID == taskID {
			f.items = append(f.items[:i], f.items[i+1:]...)
			return nil
		}
	}
	return tasks.ErrTaskNotFound
}

// scriptedProvider counts calls and replays canned responses.
type scriptedProvider struct {
	name         string
	parseOut     string
	parseErr     error
	chatOut      string
	chatErr      error
	parseCalls   int
	chatCalls    int
	chatPrompts  []string
	parsePrompts []string
}

func (s *scriptedProvider) ParseCommand(_ context.Context, text string) (string, error) {
	s.parseCalls++
	s.parsePrompts = append(s.parsePrompts, text)
	return s.parseOut, s.parseErr
}

func (s *scriptedProvider) GeneralChat(_ context.Context, text string) (string, error) {
	s.chatCalls++
	s.chatPrompts = append(s.chatPrompts, text)
	return s.chatOut, s.chatErr
}

func (s *scriptedProvider) Name() string  { return s.name }
func (s *scriptedProvider) Model() string { return s.name + "-model" }

type chatFixture struct {
	uc           *implUseCase
	cred         *fakeCredUC
	tasksUC      *fakeTasksUC
	provider     *scriptedProvider
	factoryCalls int
}

func newChatFixture(provider *scriptedProvider) *chatFixture {
	fx := &chatFixture{
		cred:     &fakeCredUC{keys: map[string]string{"openai": "sk-test"}},
		tasksUC:  &fakeTasksUC{},
		provider: provider,
	}
	dm, err := datemath.NewParser("UTC")
	if err != nil {
		panic(err)
	}
	fx.uc = New(&mockLogger{}, fx.cred, fx.tasksUC, memory.New(), dm, "")
	fx.uc.newProvider = func(toolID, apiKey string) (llm.Provider, error) {
		fx.factoryCalls++
		return fx.provider, nil
	}
	return fx
}
