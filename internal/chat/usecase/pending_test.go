package usecase

import (
	"context"
	"errors"
	"strings"
	"testing"
	"time"

	"taskflow-server/internal/chat"
	"taskflow-server/internal/model"
	"taskflow-server/internal/session"
)

func googleConnectedFixture(provider *scriptedProvider) *chatFixture {
	fx := newChatFixture(provider)
	fx.cred.connected = true
	fx.tasksUC.connected = true
	fx.tasksUC.lists = []model.TaskList{
		{ID: "l-inbox", Title: "Inbox"},
		{ID: "l-work", Title: "Work"},
	}
	return fx
}

// Scenario: due and notes arrive up front, so the flow jumps straight to
// list selection; "2" commits into the second list.
func TestAddFlowStraightToListSelection(t *testing.T) {
	provider := &scriptedProvider{
		name:     "openai",
		parseOut: `{"action":"add_task","title":"call mom","due":"2026-03-05T00:00:00Z","notes":"be nice"}`,
	}
	fx := googleConnectedFixture(provider)
	ctx := context.Background()

	out, err := fx.uc.Command(ctx, testScope, chat.CommandInput{Text: "add call mom tomorrow notes: be nice"})
	if err != nil {
		t.Fatalf("Command error: %v", err)
	}
	if !strings.Contains(out.Message, "1) Inbox, 2) Work") {
		t.Fatalf("message = %q, want list enumeration", out.Message)
	}

	out, err = fx.uc.Command(ctx, testScope, chat.CommandInput{Text: "2"})
	if err != nil {
		t.Fatalf("selection error: %v", err)
	}
	if out.Message != "Added task: call mom" {
		t.Errorf("message = %q", out.Message)
	}
	if len(fx.tasksUC.items) != 1 {
		t.Fatalf("items = %+v", fx.tasksUC.items)
	}
	task := fx.tasksUC.items[0]
	if task.ListID != "l-work" || task.Title != "call mom" || task.Notes != "be nice" {
		t.Errorf("committed task = %+v", task)
	}
	// Flow is terminal; nothing pending remains.
	if p := fx.uc.store.GetPendingAdd(testScope.UserID); p != nil {
		t.Errorf("pending survived commit: %+v", p)
	}
}

func TestAddFlowAsksForDueThenNotes(t *testing.T) {
	provider := &scriptedProvider{
		name:     "openai",
		parseOut: `{"action":"add_task","title":"water plants"}`,
	}
	fx := googleConnectedFixture(provider)
	ctx := context.Background()

	out, err := fx.uc.Command(ctx, testScope, chat.CommandInput{Text: "remind me about the plants"})
	if err != nil {
		t.Fatalf("Command error: %v", err)
	}
	if out.Message != MsgAskDue {
		t.Fatalf("message = %q, want due question", out.Message)
	}

	// Gibberish does not advance the due stage.
	out, err = fx.uc.Command(ctx, testScope, chat.CommandInput{Text: "hmm not sure"})
	if err != nil {
		t.Fatalf("re-ask error: %v", err)
	}
	if out.Message != MsgAskDue {
		t.Errorf("message = %q, want repeated due question", out.Message)
	}
	if p := fx.uc.store.GetPendingAdd(testScope.UserID); p == nil || p.Stage != session.StageNeedDue {
		t.Fatalf("pending = %+v, want need_due", p)
	}

	out, err = fx.uc.Command(ctx, testScope, chat.CommandInput{Text: "in 3 days"})
	if err != nil {
		t.Fatalf("due reply error: %v", err)
	}
	if out.Message != MsgAskNotes {
		t.Errorf("message = %q, want notes question", out.Message)
	}

	out, err = fx.uc.Command(ctx, testScope, chat.CommandInput{Text: "skip"})
	if err != nil {
		t.Fatalf("notes reply error: %v", err)
	}
	if !strings.Contains(out.Message, "1) Inbox") {
		t.Errorf("message = %q, want list prompt", out.Message)
	}

	out, err = fx.uc.Command(ctx, testScope, chat.CommandInput{Text: "Inbox"})
	if err != nil {
		t.Fatalf("list reply error: %v", err)
	}
	if out.Message != "Added task: water plants" {
		t.Errorf("message = %q", out.Message)
	}
	task := fx.tasksUC.items[0]
	if task.Notes != "" {
		t.Errorf("notes = %q, want empty after skip", task.Notes)
	}
	if task.Due == nil {
		t.Error("due not carried into commit")
	}
}

// Once past need_due, no reply can drag the flow back there.
func TestPendingFlowMonotonicity(t *testing.T) {
	provider := &scriptedProvider{
		name:     "openai",
		parseOut: `{"action":"add_task","title":"x","due":"2026-03-05"}`,
	}
	fx := googleConnectedFixture(provider)
	ctx := context.Background()

	if _, err := fx.uc.Command(ctx, testScope, chat.CommandInput{Text: "add x tomorrow"}); err != nil {
		t.Fatalf("Command error: %v", err)
	}
	if p := fx.uc.store.GetPendingAdd(testScope.UserID); p == nil || p.Stage != session.StageNeedNotes {
		t.Fatalf("pending = %+v, want need_notes", p)
	}

	replies := []string{"tomorrow", "no wait", "actually next monday"}
	for _, reply := range replies {
		if _, err := fx.uc.Command(ctx, testScope, chat.CommandInput{Text: reply}); err != nil {
			t.Fatalf("reply %q error: %v", reply, err)
		}
		p := fx.uc.store.GetPendingAdd(testScope.UserID)
		if p == nil {
			return // committed, also fine — flow only moved forward
		}
		if p.Stage == session.StageNeedDue {
			t.Fatalf("flow regressed to need_due after %q", reply)
		}
	}
}

func TestListSelectionMatchingModes(t *testing.T) {
	tests := []struct {
		reply    string
		wantList string
		wantOK   bool
	}{
		{"1", "Inbox", true},
		{"2", "Work", true},
		{"0", "", false},
		{"3", "", false},
		{"work", "Work", true},
		{"WORK", "Work", true},
		{"put it in the Work list", "Work", true},
		{"neither of those", "", false},
	}
	names := []string{"Inbox", "Work"}
	for _, tt := range tests {
		t.Run(tt.reply, func(t *testing.T) {
			idx, ok := matchList(tt.reply, names)
			if ok != tt.wantOK {
				t.Fatalf("ok = %v, want %v", ok, tt.wantOK)
			}
			if ok && names[idx] != tt.wantList {
				t.Errorf("matched %q, want %q", names[idx], tt.wantList)
			}
		})
	}
}

func TestListSelectionRepromptsOnNoMatch(t *testing.T) {
	provider := &scriptedProvider{
		name:     "openai",
		parseOut: `{"action":"add_task","title":"call mom","due":"2026-03-05","notes":"n"}`,
	}
	fx := googleConnectedFixture(provider)
	ctx := context.Background()

	if _, err := fx.uc.Command(ctx, testScope, chat.CommandInput{Text: "add call mom"}); err != nil {
		t.Fatalf("Command error: %v", err)
	}

	out, err := fx.uc.Command(ctx, testScope, chat.CommandInput{Text: "the purple one"})
	if err != nil {
		t.Fatalf("reply error: %v", err)
	}
	if !strings.Contains(out.Message, "1) Inbox, 2) Work") {
		t.Errorf("message = %q, want re-prompt", out.Message)
	}
	if len(fx.tasksUC.items) != 0 {
		t.Errorf("task committed on non-match: %+v", fx.tasksUC.items)
	}
}

func TestPendingAbandonedWhenGoogleDisconnects(t *testing.T) {
	provider := &scriptedProvider{
		name:     "openai",
		parseOut: `{"action":"add_task","title":"x","due":"2026-03-05","notes":"n"}`,
	}
	fx := googleConnectedFixture(provider)
	ctx := context.Background()

	if _, err := fx.uc.Command(ctx, testScope, chat.CommandInput{Text: "add x"}); err != nil {
		t.Fatalf("Command error: %v", err)
	}
	if fx.uc.store.GetPendingAdd(testScope.UserID) == nil {
		t.Fatal("expected open pending flow")
	}

	fx.tasksUC.connected = false
	provider.parseOut = `{"action":"list_today"}`

	out, err := fx.uc.Command(ctx, testScope, chat.CommandInput{Text: "what's on today"})
	if err != nil {
		t.Fatalf("post-disconnect error: %v", err)
	}
	if fx.uc.store.GetPendingAdd(testScope.UserID) != nil {
		t.Error("pending survived disconnect")
	}
	if out.Command == nil || out.Command.Action != model.ActionListToday {
		t.Errorf("text not handled as fresh command: %+v", out.Command)
	}
}

func TestSingleListCommitsWithoutPrompt(t *testing.T) {
	provider := &scriptedProvider{
		name:     "openai",
		parseOut: `{"action":"add_task","title":"call mom","due":"2026-03-05","notes":"n"}`,
	}
	fx := googleConnectedFixture(provider)
	fx.tasksUC.lists = fx.tasksUC.lists[:1]

	out, err := fx.uc.Command(context.Background(), testScope, chat.CommandInput{Text: "add call mom"})
	if err != nil {
		t.Fatalf("Command error: %v", err)
	}
	if out.Message != "Added task: call mom" {
		t.Errorf("message = %q", out.Message)
	}
	if len(fx.tasksUC.items) != 1 || fx.tasksUC.items[0].ListID != "l-inbox" {
		t.Errorf("items = %+v", fx.tasksUC.items)
	}
}

func TestExplicitListSkipsSelection(t *testing.T) {
	provider := &scriptedProvider{
		name:     "openai",
		parseOut: `{"action":"add_task","title":"standup prep","listId":"l-work","due":"2026-03-05","notes":"n"}`,
	}
	fx := googleConnectedFixture(provider)

	out, err := fx.uc.Command(context.Background(), testScope, chat.CommandInput{Text: "add standup prep to work"})
	if err != nil {
		t.Fatalf("Command error: %v", err)
	}
	if out.Message != "Added task: standup prep" {
		t.Errorf("message = %q", out.Message)
	}
	if fx.tasksUC.items[0].ListID != "l-work" {
		t.Errorf("ListID = %q", fx.tasksUC.items[0].ListID)
	}
}

func TestDeleteDisambiguation(t *testing.T) {
	provider := &scriptedProvider{name: "openai", parseOut: `{"action":"delete_task"}`}
	fx := googleConnectedFixture(provider)
	ctx := context.Background()

	due := time.Date(2026, 3, 5, 0, 0, 0, 0, time.UTC)
	fx.tasksUC.items = []model.Task{
		{ID: "t1", ListID: "l-inbox", Title: "call mom", Due: &due},
		{ID: "t2", ListID: "l-inbox", Title: "call dad", Due: &due},
	}

	t.Run("two candidates ask, delete nothing", func(t *testing.T) {
		fx.uc.store.SetLastSearch(testScope.UserID, []string{"t1", "t2"})
		out, err := fx.uc.Command(ctx, testScope, chat.CommandInput{Text: "delete that call"})
		if err != nil {
			t.Fatalf("Command error: %v", err)
		}
		if !strings.Contains(out.Message, "1) call mom, 2) call dad") {
			t.Errorf("message = %q", out.Message)
		}
		if len(fx.tasksUC.items) != 2 {
			t.Errorf("items deleted during clarification: %+v", fx.tasksUC.items)
		}
	})

	t.Run("single candidate deletes silently", func(t *testing.T) {
		fx.uc.store.SetLastSearch(testScope.UserID, []string{"t2"})
		out, err := fx.uc.Command(ctx, testScope, chat.CommandInput{Text: "delete that call"})
		if err != nil {
			t.Fatalf("Command error: %v", err)
		}
		if out.Message != MsgDeletedTask {
			t.Errorf("message = %q", out.Message)
		}
		if len(fx.tasksUC.items) != 1 || fx.tasksUC.items[0].ID != "t1" {
			t.Errorf("items = %+v", fx.tasksUC.items)
		}
	})

	t.Run("no candidates is a hard error", func(t *testing.T) {
		fx.uc.store.SetLastSearch(testScope.UserID, nil)
		_, err := fx.uc.Command(ctx, testScope, chat.CommandInput{Text: "delete that call"})
		if !errors.Is(err, chat.ErrTaskIDRequired) {
			t.Errorf("error = %v, want ErrTaskIDRequired", err)
		}
	})
}
