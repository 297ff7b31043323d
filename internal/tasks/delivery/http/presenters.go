package http

import (
	"fmt"
	"time"

	"taskflow-server/internal/tasks"
)

// --- Request DTOs ---

type createTaskReq struct {
	Title  string `json:"title"`
	ListID string `json:"listId"`
	Notes  string `json:"notes"`
	Due    string `json:"due"`
}

func (r createTaskReq) toInput() (tasks.CreateInput, error) {
	due, err := parseDue(r.Due)
	if err != nil {
		return tasks.CreateInput{}, err
	}
	return tasks.CreateInput{
		ListID: r.ListID,
		Title:  r.Title,
		Notes:  r.Notes,
		Due:    due,
	}, nil
}

type patchTaskReq struct {
	Title     *string `json:"title"`
	Notes     *string `json:"notes"`
	Due       *string `json:"due"`
	Completed *bool   `json:"completed"`
}

func (r patchTaskReq) toInput(listID, taskID string) (tasks.UpdateInput, error) {
	input := tasks.UpdateInput{
		ListID:    listID,
		TaskID:    taskID,
		Title:     r.Title,
		Notes:     r.Notes,
		Completed: r.Completed,
	}
	if r.Due != nil {
		due, err := parseDue(*r.Due)
		if err != nil {
			return tasks.UpdateInput{}, err
		}
		input.Due = due
	}
	return input, nil
}

// parseDue accepts RFC 3339 timestamps and bare dates. Empty means no due
// date.
func parseDue(raw string) (*time.Time, error) {
	if raw == "" {
		return nil, nil
	}
	if t, err := time.Parse(time.RFC3339, raw); err == nil {
		return &t, nil
	}
	if t, err := time.Parse("2006-01-02", raw); err == nil {
		return &t, nil
	}
	return nil, fmt.Errorf("invalid due date %q", raw)
}

// --- Response DTOs ---

type okResp struct {
	OK bool `json:"ok"`
}

type availabilityResp struct {
	Minutes   int    `json:"minutes"`
	Available bool   `json:"available"`
	Message   string `json:"message"`
}
