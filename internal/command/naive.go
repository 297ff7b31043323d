package command

import (
	"regexp"
	"strings"

	"taskflow-server/internal/model"
)

var leadingAddPattern = regexp.MustCompile(`(?i)^add\s+`)

const defaultAvailabilityMinutes = 45

// NaiveParse is the deterministic rule-based fallback used when the
// provider call itself fails. Rules apply in priority order; the result
// always passes ChatCommand validation.
func NaiveParse(text string) *model.ChatCommand {
	trimmed := strings.TrimSpace(text)
	lower := strings.ToLower(trimmed)

	switch {
	case strings.HasPrefix(lower, "add ") || strings.Contains(lower, "add task"):
		title := strings.TrimSpace(leadingAddPattern.ReplaceAllString(trimmed, ""))
		return &model.ChatCommand{Action: model.ActionAddTask, Title: title}
	case strings.Contains(lower, "complete"):
		return &model.ChatCommand{Action: model.ActionCompleteTask, Query: trimmed}
	case strings.Contains(lower, "delete"):
		return &model.ChatCommand{Action: model.ActionDeleteTask, Query: trimmed}
	case strings.Contains(lower, "today"):
		return &model.ChatCommand{Action: model.ActionListToday}
	case strings.Contains(lower, "tomorrow"):
		return &model.ChatCommand{Action: model.ActionSearchTasks, Query: "tomorrow"}
	case strings.Contains(lower, "free"):
		return &model.ChatCommand{Action: model.ActionCheckAvailabilityNow, Minutes: defaultAvailabilityMinutes}
	default:
		return &model.ChatCommand{Action: model.ActionSearchTasks, Query: trimmed}
	}
}
