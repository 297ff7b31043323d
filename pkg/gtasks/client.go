package gtasks

import (
	"context"
	"fmt"
	"net/http"
	"time"

	"golang.org/x/oauth2"
	"google.golang.org/api/option"
	"google.golang.org/api/tasks/v1"
)

const (
	statusCompleted   = "completed"
	statusNeedsAction = "needsAction"
)

// Client wraps the Google Tasks API service.
type Client struct {
	service *tasks.Service
}

// NewClientFromTokenSource creates a Tasks client authenticating each call
// with tokens from the given source.
func NewClientFromTokenSource(ctx context.Context, ts oauth2.TokenSource) (*Client, error) {
	svc, err := tasks.NewService(ctx, option.WithTokenSource(ts))
	if err != nil {
		return nil, fmt.Errorf("failed to create tasks service: %w", err)
	}
	return &Client{service: svc}, nil
}

// NewClientFromHTTP creates a Tasks client from a pre-configured HTTP client.
func NewClientFromHTTP(ctx context.Context, httpClient *http.Client, opts ...option.ClientOption) (*Client, error) {
	opts = append([]option.ClientOption{option.WithHTTPClient(httpClient)}, opts...)
	svc, err := tasks.NewService(ctx, opts...)
	if err != nil {
		return nil, fmt.Errorf("failed to create tasks service: %w", err)
	}
	return &Client{service: svc}, nil
}

// ListTaskLists returns every task list the user owns.
func (c *Client) ListTaskLists(ctx context.Context) ([]TaskList, error) {
	var out []TaskList
	call := c.service.Tasklists.List().MaxResults(100)
	err := call.Pages(ctx, func(page *tasks.TaskLists) error {
		for _, tl := range page.Items {
			out = append(out, TaskList{ID: tl.Id, Title: tl.Title})
		}
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("failed to list task lists: %w", err)
	}
	return out, nil
}

// ListTasks returns all tasks in a list, completed ones included.
func (c *Client) ListTasks(ctx context.Context, listID string) ([]Task, error) {
	var out []Task
	call := c.service.Tasks.List(listID).ShowCompleted(true).ShowHidden(true).MaxResults(100)
	err := call.Pages(ctx, func(page *tasks.Tasks) error {
		for _, item := range page.Items {
			out = append(out, fromAPITask(listID, item))
		}
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("failed to list tasks in %s: %w", listID, err)
	}
	return out, nil
}

// CreateTask inserts a new task into the given list.
func (c *Client) CreateTask(ctx context.Context, req CreateTaskRequest) (*Task, error) {
	item := &tasks.Task{
		Title: req.Title,
		Notes: req.Notes,
	}
	if req.Due != nil {
		item.Due = req.Due.UTC().Format(time.RFC3339)
	}
	created, err := c.service.Tasks.Insert(req.ListID, item).Context(ctx).Do()
	if err != nil {
		return nil, fmt.Errorf("failed to create task: %w", err)
	}
	task := fromAPITask(req.ListID, created)
	return &task, nil
}

// PatchTask applies a partial update to an existing task.
func (c *Client) PatchTask(ctx context.Context, req PatchTaskRequest) (*Task, error) {
	item := &tasks.Task{}
	if req.Title != nil {
		item.Title = *req.Title
	}
	if req.Notes != nil {
		item.Notes = *req.Notes
	}
	if req.Due != nil {
		item.Due = req.Due.UTC().Format(time.RFC3339)
	}
	if req.Completed != nil {
		if *req.Completed {
			item.Status = statusCompleted
		} else {
			item.Status = statusNeedsAction
		}
	}
	updated, err := c.service.Tasks.Patch(req.ListID, req.TaskID, item).Context(ctx).Do()
	if err != nil {
		return nil, fmt.Errorf("failed to patch task %s: %w", req.TaskID, err)
	}
	task := fromAPITask(req.ListID, updated)
	return &task, nil
}

// DeleteTask removes a task from its list.
func (c *Client) DeleteTask(ctx context.Context, listID, taskID string) error {
	if err := c.service.Tasks.Delete(listID, taskID).Context(ctx).Do(); err != nil {
		return fmt.Errorf("failed to delete task %s: %w", taskID, err)
	}
	return nil
}

func fromAPITask(listID string, item *tasks.Task) Task {
	task := Task{
		ID:        item.Id,
		ListID:    listID,
		Title:     item.Title,
		Notes:     item.Notes,
		Completed: item.Status == statusCompleted,
	}
	if item.Due != "" {
		if due, err := time.Parse(time.RFC3339, item.Due); err == nil {
			task.Due = &due
		}
	}
	if item.Updated != "" {
		if updated, err := time.Parse(time.RFC3339, item.Updated); err == nil {
			task.UpdatedAt = updated
		}
	}
	return task
}
