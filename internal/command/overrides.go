package command

import (
	"errors"
	"regexp"
	"strings"
	"time"

	"taskflow-server/internal/model"
	"taskflow-server/pkg/datemath"
)

// ErrNoTitle means an add command had no usable title even after
// filler-word stripping.
var ErrNoTitle = errors.New("could not determine a task title")

var fillerPattern = regexp.MustCompile(`(?i)\b(please|can you|could you|add|task|to do|todo|tomorrow|today)\b`)

// ApplyOverrides rewrites a command when temporal keywords in the raw
// text contradict what the parser produced. Providers routinely answer
// "what's due tomorrow" with list_today.
func ApplyOverrides(cmd *model.ChatCommand, rawText string) {
	if datemath.MentionsTomorrow(rawText) {
		switch {
		case cmd.Action == model.ActionListToday:
			cmd.Action = model.ActionSearchTasks
			cmd.Query = "tomorrow"
		case cmd.Action == model.ActionSearchTasks && cmd.Query == "":
			cmd.Query = "tomorrow"
		}
		return
	}
	if datemath.MentionsToday(rawText) &&
		cmd.Action == model.ActionSearchTasks && cmd.Query == "" {
		cmd.Action = model.ActionListToday
		cmd.Query = ""
	}
}

// ApplyAddDefaults fills in a missing title or due date on an add_task
// command from the raw text. A title that cannot be derived is a hard
// error; the flow never guesses one.
func ApplyAddDefaults(cmd *model.ChatCommand, rawText string, dm *datemath.Parser, now time.Time) error {
	if cmd.Action != model.ActionAddTask {
		return nil
	}

	if strings.TrimSpace(cmd.Title) == "" {
		cmd.Title = deriveTitle(rawText)
		if cmd.Title == "" {
			return ErrNoTitle
		}
	}

	if cmd.Due == "" {
		if due := dm.InferDue(rawText, now); due != nil {
			cmd.Due = due.Format(time.RFC3339)
		}
	}
	return nil
}

func deriveTitle(text string) string {
	stripped := fillerPattern.ReplaceAllString(text, " ")
	return strings.TrimSpace(strings.Join(strings.Fields(stripped), " "))
}
