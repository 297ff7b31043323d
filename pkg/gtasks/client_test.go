package gtasks_test

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"google.golang.org/api/option"

	"taskflow-server/pkg/gtasks"
)

func newTestClient(t *testing.T, handler http.Handler) *gtasks.Client {
	t.Helper()
	server := httptest.NewServer(handler)
	t.Cleanup(server.Close)

	client, err := gtasks.NewClientFromHTTP(context.Background(), server.Client(),
		option.WithEndpoint(server.URL), option.WithoutAuthentication())
	if err != nil {
		t.Fatalf("NewClientFromHTTP error: %v", err)
	}
	return client
}

func TestListTaskLists(t *testing.T) {
	client := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if !strings.HasSuffix(r.URL.Path, "/users/@me/lists") {
			t.Errorf("unexpected path %s", r.URL.Path)
		}
		_ = json.NewEncoder(w).Encode(map[string]any{
			"items": []map[string]string{
				{"id": "list-1", "title": "Inbox"},
				{"id": "list-2", "title": "Work"},
			},
		})
	}))

	lists, err := client.ListTaskLists(context.Background())
	if err != nil {
		t.Fatalf("ListTaskLists error: %v", err)
	}
	if len(lists) != 2 {
		t.Fatalf("got %d lists, want 2", len(lists))
	}
	if lists[0].Title != "Inbox" || lists[1].ID != "list-2" {
		t.Errorf("unexpected lists %+v", lists)
	}
}

func TestListTasksConvertsStatus(t *testing.T) {
	client := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_ = json.NewEncoder(w).Encode(map[string]any{
			"items": []map[string]string{
				{"id": "t1", "title": "call mom", "status": "needsAction", "due": "2026-03-01T00:00:00Z"},
				{"id": "t2", "title": "file taxes", "status": "completed"},
			},
		})
	}))

	tasks, err := client.ListTasks(context.Background(), "list-1")
	if err != nil {
		t.Fatalf("ListTasks error: %v", err)
	}
	if len(tasks) != 2 {
		t.Fatalf("got %d tasks, want 2", len(tasks))
	}
	if tasks[0].Completed {
		t.Error("needsAction task reported completed")
	}
	if tasks[0].Due == nil || !tasks[0].Due.Equal(time.Date(2026, 3, 1, 0, 0, 0, 0, time.UTC)) {
		t.Errorf("due = %v", tasks[0].Due)
	}
	if !tasks[1].Completed {
		t.Error("completed task reported pending")
	}
	if tasks[0].ListID != "list-1" {
		t.Errorf("ListID = %q", tasks[0].ListID)
	}
}

func TestCreateTaskSendsDue(t *testing.T) {
	var body map[string]any
	client := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodPost {
			t.Errorf("method = %s", r.Method)
		}
		_ = json.NewDecoder(r.Body).Decode(&body)
		_ = json.NewEncoder(w).Encode(map[string]string{
			"id": "t-new", "title": "buy milk", "status": "needsAction",
		})
	}))

	due := time.Date(2026, 3, 2, 0, 0, 0, 0, time.UTC)
	task, err := client.CreateTask(context.Background(), gtasks.CreateTaskRequest{
		ListID: "list-1", Title: "buy milk", Due: &due,
	})
	if err != nil {
		t.Fatalf("CreateTask error: %v", err)
	}
	if task.ID != "t-new" {
		t.Errorf("ID = %q", task.ID)
	}
	if body["due"] != "2026-03-02T00:00:00Z" {
		t.Errorf("wire due = %v", body["due"])
	}
}

func TestPatchTaskCompleted(t *testing.T) {
	var body map[string]any
	client := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodPatch {
			t.Errorf("method = %s", r.Method)
		}
		_ = json.NewDecoder(r.Body).Decode(&body)
		_ = json.NewEncoder(w).Encode(map[string]string{
			"id": "t1", "title": "call mom", "status": "completed",
		})
	}))

	completed := true
	task, err := client.PatchTask(context.Background(), gtasks.PatchTaskRequest{
		ListID: "list-1", TaskID: "t1", Completed: &completed,
	})
	if err != nil {
		t.Fatalf("PatchTask error: %v", err)
	}
	if body["status"] != "completed" {
		t.Errorf("wire status = %v", body["status"])
	}
	if !task.Completed {
		t.Error("task not marked completed")
	}
}

func TestDeleteTask(t *testing.T) {
	var called bool
	client := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		called = true
		if r.Method != http.MethodDelete {
			t.Errorf("method = %s", r.Method)
		}
		w.WriteHeader(http.StatusNoContent)
	}))

	if err := client.DeleteTask(context.Background(), "list-1", "t1"); err != nil {
		t.Fatalf("DeleteTask error: %v", err)
	}
	if !called {
		t.Error("delete endpoint never hit")
	}
}

func TestListTasksPropagatesAPIError(t *testing.T) {
	client := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, `{"error":{"code":401,"message":"Invalid Credentials"}}`, http.StatusUnauthorized)
	}))

	if _, err := client.ListTasks(context.Background(), "list-1"); err == nil {
		t.Fatal("expected error from 401 response")
	}
}
