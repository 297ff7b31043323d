package model

import (
	"fmt"
	"strings"
)

// Action names a chat command verb.
type Action string

const (
	ActionAddTask              Action = "add_task"
	ActionUpdateTask           Action = "update_task"
	ActionRescheduleTask       Action = "reschedule_task"
	ActionCompleteTask         Action = "complete_task"
	ActionDeleteTask           Action = "delete_task"
	ActionListToday            Action = "list_today"
	ActionSearchTasks          Action = "search_tasks"
	ActionCheckAvailabilityNow Action = "check_availability_now"
)

var validActions = map[Action]struct{}{
	ActionAddTask:              {},
	ActionUpdateTask:           {},
	ActionRescheduleTask:       {},
	ActionCompleteTask:         {},
	ActionDeleteTask:           {},
	ActionListToday:            {},
	ActionSearchTasks:          {},
	ActionCheckAvailabilityNow: {},
}

// ChatCommand is the normalized form of a natural-language instruction.
// Only the fields relevant to its Action are meaningfully populated;
// stray fields from a sloppy LLM response are ignored.
type ChatCommand struct {
	Action    Action `json:"action"`
	TaskID    string `json:"taskId,omitempty"`
	ListID    string `json:"listId,omitempty"`
	Title     string `json:"title,omitempty"`
	Notes     string `json:"notes,omitempty"`
	Due       string `json:"due,omitempty"`
	Completed *bool  `json:"completed,omitempty"`
	Query     string `json:"query,omitempty"`
	Minutes   int    `json:"minutes,omitempty"`
}

// Normalize lower-cases the action in place. Providers occasionally
// return "Add_Task" or "ADD_TASK" despite the prompt contract.
func (c *ChatCommand) Normalize() {
	c.Action = Action(strings.ToLower(strings.TrimSpace(string(c.Action))))
}

// Validate checks the command against the action enum and field constraints.
func (c *ChatCommand) Validate() error {
	if _, ok := validActions[c.Action]; !ok {
		return fmt.Errorf("unknown action %q", c.Action)
	}
	if c.Minutes < 0 {
		return fmt.Errorf("minutes must be positive, got %d", c.Minutes)
	}
	return nil
}
