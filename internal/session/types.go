package session

import "time"

// Stage names the next question an incomplete add flow is waiting on.
type Stage string

const (
	StageNeedDue   Stage = "need_due"
	StageNeedNotes Stage = "need_notes"
	StageNeedList  Stage = "need_list"
)

// stageNext is the only legal forward order; a flow never revisits an
// earlier stage.
var stageNext = map[Stage]Stage{
	StageNeedDue:   StageNeedNotes,
	StageNeedNotes: StageNeedList,
}

// Next returns the stage that follows s, and false when s is terminal.
func (s Stage) Next() (Stage, bool) {
	next, ok := stageNext[s]
	return next, ok
}

// Valid reports whether s is a known stage.
func (s Stage) Valid() bool {
	switch s {
	case StageNeedDue, StageNeedNotes, StageNeedList:
		return true
	}
	return false
}

// PendingAdd is a partially specified add-task command parked while the
// user answers clarifying questions. At most one exists per user.
type PendingAdd struct {
	Title     string
	ListID    string // set when the command named a target list up front
	Due       *time.Time
	Notes     string
	ListNames []string // 1-indexed choices shown when Stage is need_list
	ListIDs   []string
	Stage     Stage
	CreatedAt time.Time
}

// PendingGeneral is a parked follow-up question for a non-task request,
// such as asking which location a weather question is about.
type PendingGeneral struct {
	Kind      string // "weather"
	Question  string
	CreatedAt time.Time
}
