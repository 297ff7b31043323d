package memory

import (
	"testing"
	"time"

	"taskflow-server/internal/session"
)

func TestPendingAddRoundTrip(t *testing.T) {
	s := newStore(time.Minute)

	if got := s.GetPendingAdd("user-1"); got != nil {
		t.Fatalf("GetPendingAdd on empty store = %+v", got)
	}

	s.SetPendingAdd("user-1", &session.PendingAdd{Title: "call mom", Stage: session.StageNeedDue})

	p := s.GetPendingAdd("user-1")
	if p == nil {
		t.Fatal("GetPendingAdd returned nil after Set")
	}
	if p.Title != "call mom" || p.Stage != session.StageNeedDue {
		t.Errorf("pending = %+v", p)
	}
	if p.CreatedAt.IsZero() {
		t.Error("CreatedAt not stamped")
	}

	// Users are isolated.
	if got := s.GetPendingAdd("user-2"); got != nil {
		t.Errorf("user-2 sees user-1 state: %+v", got)
	}

	s.ClearPendingAdd("user-1")
	if got := s.GetPendingAdd("user-1"); got != nil {
		t.Errorf("GetPendingAdd after Clear = %+v", got)
	}
}

func TestPendingAddExpires(t *testing.T) {
	s := newStore(time.Minute)
	base := time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)
	s.now = func() time.Time { return base }

	s.SetPendingAdd("user-1", &session.PendingAdd{Title: "water plants", Stage: session.StageNeedNotes})

	s.now = func() time.Time { return base.Add(2 * time.Minute) }
	if got := s.GetPendingAdd("user-1"); got != nil {
		t.Errorf("expected expired pending to read as nil, got %+v", got)
	}
}

func TestPendingGeneralExpires(t *testing.T) {
	s := newStore(time.Minute)
	base := time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)
	s.now = func() time.Time { return base }

	s.SetPendingGeneral("user-1", &session.PendingGeneral{Kind: "weather", Question: "what's the weather"})

	if got := s.GetPendingGeneral("user-1"); got == nil || got.Kind != "weather" {
		t.Fatalf("GetPendingGeneral = %+v", got)
	}

	s.now = func() time.Time { return base.Add(11 * time.Minute) }
	if got := s.GetPendingGeneral("user-1"); got != nil {
		t.Errorf("expected expired general to read as nil, got %+v", got)
	}
}

func TestGetPendingAddReturnsCopy(t *testing.T) {
	s := newStore(time.Minute)
	s.SetPendingAdd("user-1", &session.PendingAdd{Title: "original", Stage: session.StageNeedDue})

	p := s.GetPendingAdd("user-1")
	p.Title = "mutated"

	if got := s.GetPendingAdd("user-1"); got.Title != "original" {
		t.Errorf("store state mutated through returned copy: %q", got.Title)
	}
}

func TestLastSearch(t *testing.T) {
	s := newStore(time.Minute)

	if got := s.GetLastSearch("user-1"); len(got) != 0 {
		t.Fatalf("GetLastSearch on empty store = %v", got)
	}

	ids := []string{"t3", "t1", "t2"}
	s.SetLastSearch("user-1", ids)

	got := s.GetLastSearch("user-1")
	if len(got) != 3 || got[0] != "t3" || got[2] != "t2" {
		t.Errorf("GetLastSearch = %v", got)
	}

	// Caller slices are copied both directions.
	ids[0] = "clobbered"
	got[1] = "clobbered"
	fresh := s.GetLastSearch("user-1")
	if fresh[0] != "t3" || fresh[1] != "t1" {
		t.Errorf("store shares backing array with caller: %v", fresh)
	}
}

func TestStageTransitions(t *testing.T) {
	next, ok := session.StageNeedDue.Next()
	if !ok || next != session.StageNeedNotes {
		t.Errorf("need_due.Next() = %v, %v", next, ok)
	}
	next, ok = session.StageNeedNotes.Next()
	if !ok || next != session.StageNeedList {
		t.Errorf("need_notes.Next() = %v, %v", next, ok)
	}
	if _, ok := session.StageNeedList.Next(); ok {
		t.Error("need_list should be terminal")
	}
	if session.Stage("need_title").Valid() {
		t.Error("unknown stage reported valid")
	}
}
