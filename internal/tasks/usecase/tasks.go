package usecase

import (
	"context"
	"fmt"
	"strings"

	"taskflow-server/internal/model"
	"taskflow-server/internal/tasks"
	"taskflow-server/pkg/gtasks"
)

func (uc *implUseCase) Connected(ctx context.Context, sc model.Scope) (bool, error) {
	return uc.credUC.GoogleConnected(ctx, sc.UserID)
}

func (uc *implUseCase) Lists(ctx context.Context, sc model.Scope) ([]model.TaskList, error) {
	client, err := uc.clientFor(ctx, sc.UserID)
	if err != nil {
		return nil, err
	}
	if client == nil {
		return uc.local.Lists(ctx, sc.UserID)
	}

	lists, err := client.ListTaskLists(ctx)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", tasks.ErrGoogleUpstream, err)
	}
	out := make([]model.TaskList, 0, len(lists))
	for _, tl := range lists {
		out = append(out, model.TaskList{ID: tl.ID, Title: tl.Title})
	}
	return out, nil
}

func (uc *implUseCase) All(ctx context.Context, sc model.Scope) ([]model.Task, error) {
	client, err := uc.clientFor(ctx, sc.UserID)
	if err != nil {
		return nil, err
	}
	if client == nil {
		return uc.localAll(ctx, sc.UserID)
	}

	lists, err := client.ListTaskLists(ctx)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", tasks.ErrGoogleUpstream, err)
	}
	var out []model.Task
	for _, tl := range lists {
		items, err := client.ListTasks(ctx, tl.ID)
		if err != nil {
			return nil, fmt.Errorf("%w: %v", tasks.ErrGoogleUpstream, err)
		}
		for _, item := range items {
			out = append(out, fromGoogleTask(item))
		}
	}
	return out, nil
}

func (uc *implUseCase) ListTasks(ctx context.Context, sc model.Scope, listID string) ([]model.Task, error) {
	client, err := uc.clientFor(ctx, sc.UserID)
	if err != nil {
		return nil, err
	}
	if client == nil {
		return uc.local.ListTasks(ctx, sc.UserID, listID)
	}

	items, err := client.ListTasks(ctx, listID)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", tasks.ErrGoogleUpstream, err)
	}
	out := make([]model.Task, 0, len(items))
	for _, item := range items {
		out = append(out, fromGoogleTask(item))
	}
	return out, nil
}

func (uc *implUseCase) Create(ctx context.Context, sc model.Scope, input tasks.CreateInput) (*model.Task, error) {
	if strings.TrimSpace(input.Title) == "" {
		return nil, tasks.ErrEmptyTitle
	}

	client, err := uc.clientFor(ctx, sc.UserID)
	if err != nil {
		return nil, err
	}
	if client == nil {
		return uc.local.CreateTask(ctx, sc.UserID, input)
	}

	listID := input.ListID
	if listID == "" {
		lists, err := client.ListTaskLists(ctx)
		if err != nil {
			return nil, fmt.Errorf("%w: %v", tasks.ErrGoogleUpstream, err)
		}
		if len(lists) == 0 {
			return nil, tasks.ErrListNotFound
		}
		listID = lists[0].ID
	}

	created, err := client.CreateTask(ctx, gtasks.CreateTaskRequest{
		ListID: listID,
		Title:  input.Title,
		Notes:  input.Notes,
		Due:    input.Due,
	})
	if err != nil {
		return nil, fmt.Errorf("%w: %v", tasks.ErrGoogleUpstream, err)
	}
	task := fromGoogleTask(*created)
	return &task, nil
}

func (uc *implUseCase) Update(ctx context.Context, sc model.Scope, input tasks.UpdateInput) (*model.Task, error) {
	client, err := uc.clientFor(ctx, sc.UserID)
	if err != nil {
		return nil, err
	}
	if client == nil {
		return uc.local.UpdateTask(ctx, sc.UserID, input)
	}

	updated, err := client.PatchTask(ctx, gtasks.PatchTaskRequest{
		ListID:    input.ListID,
		TaskID:    input.TaskID,
		Title:     input.Title,
		Notes:     input.Notes,
		Due:       input.Due,
		Completed: input.Completed,
	})
	if err != nil {
		return nil, fmt.Errorf("%w: %v", tasks.ErrGoogleUpstream, err)
	}
	task := fromGoogleTask(*updated)
	return &task, nil
}

func (uc *implUseCase) Delete(ctx context.Context, sc model.Scope, listID, taskID string) error {
	client, err := uc.clientFor(ctx, sc.UserID)
	if err != nil {
		return err
	}
	if client == nil {
		return uc.local.DeleteTask(ctx, sc.UserID, listID, taskID)
	}

	if err := client.DeleteTask(ctx, listID, taskID); err != nil {
		return fmt.Errorf("%w: %v", tasks.ErrGoogleUpstream, err)
	}
	return nil
}

func (uc *implUseCase) localAll(ctx context.Context, userID string) ([]model.Task, error) {
	lists, err := uc.local.Lists(ctx, userID)
	if err != nil {
		return nil, err
	}
	var out []model.Task
	for _, tl := range lists {
		items, err := uc.local.ListTasks(ctx, userID, tl.ID)
		if err != nil {
			return nil, err
		}
		out = append(out, items...)
	}
	return out, nil
}

func fromGoogleTask(t gtasks.Task) model.Task {
	return model.Task{
		ID:        t.ID,
		ListID:    t.ListID,
		Title:     t.Title,
		Notes:     t.Notes,
		Due:       t.Due,
		Completed: t.Completed,
		UpdatedAt: t.UpdatedAt,
	}
}
