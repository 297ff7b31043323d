package chat

import "taskflow-server/internal/model"

// CommandInput is one user message.
type CommandInput struct {
	Text   string
	ToolID string
}

// CommandOutput is the interpreted result: the normalized command (when
// one was executed), a human-readable message, and the task set the
// client should render.
type CommandOutput struct {
	Command *model.ChatCommand `json:"command,omitempty"`
	Message string             `json:"message"`
	Tasks   []model.Task       `json:"tasks,omitempty"`
}
