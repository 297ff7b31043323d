package memory

import (
	"context"
	"sync"
	"time"

	"github.com/google/uuid"

	"taskflow-server/internal/model"
	"taskflow-server/internal/tasks"
	"taskflow-server/internal/tasks/repository"
)

const defaultListTitle = "Inbox"

type userStore struct {
	lists []model.TaskList
	tasks map[string][]model.Task // listID -> tasks
}

type implRepository struct {
	mu    sync.RWMutex
	users map[string]*userStore
}

// New creates the in-memory local task store.
func New() repository.LocalRepository {
	return &implRepository{users: make(map[string]*userStore)}
}

// storeFor returns the user's store, seeding the default list on first use.
// Caller must hold the write lock.
func (r *implRepository) storeFor(userID string) *userStore {
	if s, ok := r.users[userID]; ok {
		return s
	}
	inbox := model.TaskList{ID: uuid.New().String(), Title: defaultListTitle}
	s := &userStore{
		lists: []model.TaskList{inbox},
		tasks: map[string][]model.Task{inbox.ID: {}},
	}
	r.users[userID] = s
	return s
}

func (r *implRepository) Lists(_ context.Context, userID string) ([]model.TaskList, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	s := r.storeFor(userID)
	out := make([]model.TaskList, len(s.lists))
	copy(out, s.lists)
	return out, nil
}

func (r *implRepository) ListTasks(_ context.Context, userID, listID string) ([]model.Task, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	s := r.storeFor(userID)
	items, ok := s.tasks[listID]
	if !ok {
		return nil, tasks.ErrListNotFound
	}
	out := make([]model.Task, len(items))
	copy(out, items)
	return out, nil
}

func (r *implRepository) CreateTask(_ context.Context, userID string, input tasks.CreateInput) (*model.Task, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	s := r.storeFor(userID)

	listID := input.ListID
	if listID == "" {
		listID = s.lists[0].ID
	}
	if _, ok := s.tasks[listID]; !ok {
		return nil, tasks.ErrListNotFound
	}

	task := model.Task{
		ID:        uuid.New().String(),
		ListID:    listID,
		Title:     input.Title,
		Notes:     input.Notes,
		Due:       input.Due,
		UpdatedAt: time.Now(),
	}
	s.tasks[listID] = append(s.tasks[listID], task)
	return &task, nil
}

func (r *implRepository) UpdateTask(_ context.Context, userID string, input tasks.UpdateInput) (*model.Task, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	s := r.storeFor(userID)

	items, ok := s.tasks[input.ListID]
	if !ok {
		return nil, tasks.ErrListNotFound
	}
	for i := range items {
		if items[i].ID != input.TaskID {
			continue
		}
		if input.Title != nil {
			items[i].Title = *input.Title
		}
		if input.Notes != nil {
			items[i].Notes = *input.Notes
		}
		if input.Due != nil {
			items[i].Due = input.Due
		}
		if input.Completed != nil {
			items[i].Completed = *input.Completed
		}
		items[i].UpdatedAt = time.Now()
		out := items[i]
		return &out, nil
	}
	return nil, tasks.ErrTaskNotFound
}

func (r *implRepository) DeleteTask(_ context.Context, userID, listID, taskID string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	s := r.storeFor(userID)

	items, ok := s.tasks[listID]
	if !ok {
		return tasks.ErrListNotFound
	}
	for i := range items {
		if items[i].ID == taskID {
			s.tasks[listID] = append(items[:i], items[i+1:]...)
			return nil
		}
	}
	return tasks.ErrTaskNotFound
}
