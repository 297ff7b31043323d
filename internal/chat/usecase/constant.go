package usecase

// User-facing messages.
const (
	MsgWhichLocation   = "Which location?"
	MsgAskDue          = "When is this due? (e.g. tomorrow, in 3 days)"
	MsgAskNotes        = "Any notes? Reply 'skip' or 'no' to leave them empty."
	MsgAddedTask       = "Added task: %s"
	MsgCompletedTask   = "Completed task: %s"
	MsgUpdatedTask     = "Updated task: %s"
	MsgDeletedTask     = "Deleted task"
	MsgDeletedTomorrow = "Deleted %d tasks due tomorrow"
	MsgListToday       = "Listing tasks due today"
	MsgSearchResults   = "Search results"
	MsgAvailability    = "Calendar not connected. Enable Google Calendar to check availability."
	MsgWhichListPrefix = "Which list? "
	MsgPickByNumber    = "Multiple tasks match. Pick one by number: "
)
