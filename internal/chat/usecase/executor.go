package usecase

import (
	"context"
	"fmt"
	"strings"
	"time"

	"taskflow-server/internal/chat"
	"taskflow-server/internal/model"
	"taskflow-server/internal/session"
	"taskflow-server/internal/tasks"
	"taskflow-server/pkg/datemath"
	"taskflow-server/pkg/llm"
)

// execute applies a finalized command against the task store.
func (uc *implUseCase) execute(ctx context.Context, sc model.Scope, cmd *model.ChatCommand, rawText string, provider llm.Provider) (*chat.CommandOutput, error) {
	switch cmd.Action {
	case model.ActionAddTask:
		return uc.executeAdd(ctx, sc, cmd)
	case model.ActionCompleteTask, model.ActionUpdateTask, model.ActionRescheduleTask:
		return uc.executeUpdate(ctx, sc, cmd)
	case model.ActionDeleteTask:
		return uc.executeDelete(ctx, sc, cmd, rawText)
	case model.ActionListToday:
		return uc.executeListToday(ctx, sc, cmd)
	case model.ActionSearchTasks:
		return uc.executeSearch(ctx, sc, cmd, rawText, provider)
	case model.ActionCheckAvailabilityNow:
		return &chat.CommandOutput{Command: cmd, Message: MsgAvailability}, nil
	}
	return nil, fmt.Errorf("unhandled action %q", cmd.Action)
}

// executeAdd starts (or completes) an add flow. Adds from chat require a
// Google connection; there is no local fallback here.
func (uc *implUseCase) executeAdd(ctx context.Context, sc model.Scope, cmd *model.ChatCommand) (*chat.CommandOutput, error) {
	connected, err := uc.tasksUC.Connected(ctx, sc)
	if err != nil {
		return nil, err
	}
	if !connected {
		return nil, chat.ErrGoogleNotConnected
	}

	p := &session.PendingAdd{
		Title:  cmd.Title,
		ListID: cmd.ListID,
		Notes:  cmd.Notes,
		Due:    parseDue(cmd.Due),
	}

	if p.Due == nil {
		p.Stage = session.StageNeedDue
		uc.store.SetPendingAdd(sc.UserID, p)
		return &chat.CommandOutput{Command: cmd, Message: MsgAskDue}, nil
	}
	if p.Notes == "" {
		p.Stage = session.StageNeedNotes
		uc.store.SetPendingAdd(sc.UserID, p)
		return &chat.CommandOutput{Command: cmd, Message: MsgAskNotes}, nil
	}
	return uc.advanceToList(ctx, sc, p)
}

func (uc *implUseCase) executeUpdate(ctx context.Context, sc model.Scope, cmd *model.ChatCommand) (*chat.CommandOutput, error) {
	if cmd.TaskID == "" {
		return nil, chat.ErrTaskIDRequired
	}

	all, err := uc.tasksUC.All(ctx, sc)
	if err != nil {
		return nil, err
	}
	target := findTask(all, cmd.TaskID)
	if target == nil {
		return nil, tasks.ErrTaskNotFound
	}

	input := tasks.UpdateInput{ListID: target.ListID, TaskID: target.ID}
	messageFormat := MsgUpdatedTask
	switch cmd.Action {
	case model.ActionCompleteTask:
		completed := true
		if cmd.Completed != nil {
			completed = *cmd.Completed
		}
		input.Completed = &completed
		messageFormat = MsgCompletedTask
	case model.ActionUpdateTask:
		if cmd.Title != "" {
			input.Title = &cmd.Title
		}
		if cmd.Notes != "" {
			input.Notes = &cmd.Notes
		}
		input.Completed = cmd.Completed
		input.Due = parseDue(cmd.Due)
	case model.ActionRescheduleTask:
		due := parseDue(cmd.Due)
		if due == nil {
			return nil, chat.ErrDueRequired
		}
		input.Due = due
	}

	updated, err := uc.tasksUC.Update(ctx, sc, input)
	if err != nil {
		return nil, err
	}

	refreshed, err := uc.tasksUC.All(ctx, sc)
	if err != nil {
		return nil, err
	}
	title := updated.Title
	if title == "" {
		title = target.Title
	}
	return &chat.CommandOutput{
		Command: cmd,
		Message: fmt.Sprintf(messageFormat, title),
		Tasks:   refreshed,
	}, nil
}

func (uc *implUseCase) executeDelete(ctx context.Context, sc model.Scope, cmd *model.ChatCommand, rawText string) (*chat.CommandOutput, error) {
	all, err := uc.tasksUC.All(ctx, sc)
	if err != nil {
		return nil, err
	}

	taskID := cmd.TaskID
	if taskID == "" {
		// Bulk path: "delete everything due tomorrow".
		if datemath.MentionsTomorrow(cmd.Query) || datemath.MentionsTomorrow(rawText) {
			return uc.deleteDueTomorrow(ctx, sc, cmd, all)
		}

		ids := uc.store.GetLastSearch(sc.UserID)
		switch len(ids) {
		case 0:
			return nil, chat.ErrTaskIDRequired
		case 1:
			taskID = ids[0]
		default:
			return &chat.CommandOutput{
				Command: cmd,
				Message: MsgPickByNumber + enumerateTasks(all, ids),
			}, nil
		}
	}

	target := findTask(all, taskID)
	if target == nil {
		return nil, tasks.ErrTaskNotFound
	}
	if err := uc.tasksUC.Delete(ctx, sc, target.ListID, target.ID); err != nil {
		return nil, err
	}

	refreshed, err := uc.tasksUC.All(ctx, sc)
	if err != nil {
		return nil, err
	}
	return &chat.CommandOutput{Command: cmd, Message: MsgDeletedTask, Tasks: refreshed}, nil
}

func (uc *implUseCase) deleteDueTomorrow(ctx context.Context, sc model.Scope, cmd *model.ChatCommand, all []model.Task) (*chat.CommandOutput, error) {
	tomorrow := uc.dm.StartOfDay(uc.now().AddDate(0, 0, 1))
	var deleted int
	for _, task := range all {
		if task.Due == nil || !uc.dm.SameDay(*task.Due, tomorrow) {
			continue
		}
		if err := uc.tasksUC.Delete(ctx, sc, task.ListID, task.ID); err != nil {
			return nil, err
		}
		deleted++
	}

	refreshed, err := uc.tasksUC.All(ctx, sc)
	if err != nil {
		return nil, err
	}
	return &chat.CommandOutput{
		Command: cmd,
		Message: fmt.Sprintf(MsgDeletedTomorrow, deleted),
		Tasks:   refreshed,
	}, nil
}

func (uc *implUseCase) executeListToday(ctx context.Context, sc model.Scope, cmd *model.ChatCommand) (*chat.CommandOutput, error) {
	all, err := uc.tasksUC.All(ctx, sc)
	if err != nil {
		return nil, err
	}

	today := uc.now()
	var matched []model.Task
	for _, task := range all {
		if task.Due != nil && uc.dm.SameDay(*task.Due, today) {
			matched = append(matched, task)
		}
	}
	uc.recordSearch(sc.UserID, matched)

	return &chat.CommandOutput{Command: cmd, Message: MsgListToday, Tasks: matched}, nil
}

func (uc *implUseCase) executeSearch(ctx context.Context, sc model.Scope, cmd *model.ChatCommand, rawText string, provider llm.Provider) (*chat.CommandOutput, error) {
	all, err := uc.tasksUC.All(ctx, sc)
	if err != nil {
		return nil, err
	}

	query := strings.ToLower(cmd.Query)
	var matched []model.Task
	for _, task := range all {
		if query == "" || strings.Contains(strings.ToLower(task.Title), query) {
			matched = append(matched, task)
		}
	}
	uc.recordSearch(sc.UserID, matched)

	message := MsgSearchResults
	if len(matched) == 0 && cmd.Query != "" && provider != nil {
		// Nothing matched; answer conversationally instead of shrugging.
		if reply, chatErr := provider.GeneralChat(ctx, rawText); chatErr == nil {
			message = reply
		} else {
			uc.l.Warnf(ctx, "chat.executeSearch: courtesy chat failed: %v", chatErr)
		}
	}

	return &chat.CommandOutput{Command: cmd, Message: message, Tasks: matched}, nil
}

func (uc *implUseCase) recordSearch(userID string, matched []model.Task) {
	ids := make([]string, len(matched))
	for i, task := range matched {
		ids[i] = task.ID
	}
	uc.store.SetLastSearch(userID, ids)
}

func findTask(all []model.Task, taskID string) *model.Task {
	for i := range all {
		if all[i].ID == taskID {
			return &all[i]
		}
	}
	return nil
}

func enumerateTasks(all []model.Task, ids []string) string {
	parts := make([]string, 0, len(ids))
	for i, id := range ids {
		title := id
		if task := findTask(all, id); task != nil {
			title = task.Title
		}
		parts = append(parts, fmt.Sprintf("%d) %s", i+1, title))
	}
	return strings.Join(parts, ", ")
}

// parseDue accepts the ISO forms providers actually emit: a full
// timestamp or a bare date.
func parseDue(s string) *time.Time {
	if s == "" {
		return nil
	}
	if t, err := time.Parse(time.RFC3339, s); err == nil {
		return &t
	}
	if t, err := time.Parse("2006-01-02", s); err == nil {
		return &t
	}
	return nil
}
