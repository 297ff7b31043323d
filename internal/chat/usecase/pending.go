package usecase

import (
	"context"
	"fmt"
	"strconv"
	"strings"

	"taskflow-server/internal/chat"
	"taskflow-server/internal/model"
	"taskflow-server/internal/session"
	"taskflow-server/internal/tasks"
)

// continuePendingAdd feeds one user reply into the add-flow state
// machine. The second return value is true when the flow was abandoned
// because Google disconnected mid-flow; the caller then treats the text
// as a fresh command.
func (uc *implUseCase) continuePendingAdd(ctx context.Context, sc model.Scope, p *session.PendingAdd, text string) (*chat.CommandOutput, bool, error) {
	connected, err := uc.tasksUC.Connected(ctx, sc)
	if err != nil {
		return nil, false, err
	}
	if !connected {
		uc.store.ClearPendingAdd(sc.UserID)
		return nil, true, nil
	}

	switch p.Stage {
	case session.StageNeedDue:
		due := uc.dm.InferDue(text, uc.now())
		if due == nil {
			// No date found; re-ask without advancing.
			return &chat.CommandOutput{Message: MsgAskDue}, false, nil
		}
		p.Due = due
		p.Stage = session.StageNeedNotes
		uc.store.SetPendingAdd(sc.UserID, p)
		return &chat.CommandOutput{Message: MsgAskNotes}, false, nil

	case session.StageNeedNotes:
		reply := strings.TrimSpace(text)
		switch strings.ToLower(reply) {
		case "skip", "no":
			p.Notes = ""
		default:
			p.Notes = reply
		}
		out, err := uc.advanceToList(ctx, sc, p)
		return out, false, err

	case session.StageNeedList:
		idx, ok := matchList(text, p.ListNames)
		if !ok {
			return &chat.CommandOutput{
				Message: MsgWhichListPrefix + enumerateLists(p.ListNames),
			}, false, nil
		}
		out, err := uc.commitPendingAdd(ctx, sc, p, p.ListIDs[idx])
		return out, false, err
	}

	// Unknown stage; drop the flow rather than trap the user.
	uc.store.ClearPendingAdd(sc.UserID)
	return nil, true, nil
}

// advanceToList runs the list-selection step: commit directly when the
// target is unambiguous, otherwise park in need_list with an enumerated
// prompt.
func (uc *implUseCase) advanceToList(ctx context.Context, sc model.Scope, p *session.PendingAdd) (*chat.CommandOutput, error) {
	if p.ListID != "" {
		return uc.commitPendingAdd(ctx, sc, p, p.ListID)
	}

	lists, err := uc.tasksUC.Lists(ctx, sc)
	if err != nil {
		return nil, err
	}
	if len(lists) <= 1 {
		var listID string
		if len(lists) == 1 {
			listID = lists[0].ID
		}
		return uc.commitPendingAdd(ctx, sc, p, listID)
	}

	p.ListNames = make([]string, len(lists))
	p.ListIDs = make([]string, len(lists))
	for i, tl := range lists {
		p.ListNames[i] = tl.Title
		p.ListIDs[i] = tl.ID
	}
	p.Stage = session.StageNeedList
	uc.store.SetPendingAdd(sc.UserID, p)
	return &chat.CommandOutput{
		Message: MsgWhichListPrefix + enumerateLists(p.ListNames),
	}, nil
}

func (uc *implUseCase) commitPendingAdd(ctx context.Context, sc model.Scope, p *session.PendingAdd, listID string) (*chat.CommandOutput, error) {
	created, err := uc.tasksUC.Create(ctx, sc, tasks.CreateInput{
		ListID: listID,
		Title:  p.Title,
		Notes:  p.Notes,
		Due:    p.Due,
	})
	if err != nil {
		return nil, err
	}
	uc.store.ClearPendingAdd(sc.UserID)

	all, err := uc.tasksUC.All(ctx, sc)
	if err != nil {
		return nil, err
	}
	cmd := &model.ChatCommand{
		Action: model.ActionAddTask,
		ListID: created.ListID,
		Title:  created.Title,
		Notes:  created.Notes,
	}
	return &chat.CommandOutput{
		Command: cmd,
		Message: fmt.Sprintf(MsgAddedTask, created.Title),
		Tasks:   all,
	}, nil
}

// matchList resolves a user reply against the enumerated list names:
// a 1-based ordinal, an exact title, or a reply containing the title.
func matchList(reply string, names []string) (int, bool) {
	trimmed := strings.TrimSpace(reply)
	if n, err := strconv.Atoi(trimmed); err == nil {
		if n >= 1 && n <= len(names) {
			return n - 1, true
		}
		return 0, false
	}
	lower := strings.ToLower(trimmed)
	for i, name := range names {
		if lower == strings.ToLower(name) {
			return i, true
		}
	}
	for i, name := range names {
		if strings.Contains(lower, strings.ToLower(name)) {
			return i, true
		}
	}
	return 0, false
}

func enumerateLists(names []string) string {
	parts := make([]string, len(names))
	for i, name := range names {
		parts[i] = fmt.Sprintf("%d) %s", i+1, name)
	}
	return strings.Join(parts, ", ")
}
