package session

// Store holds per-user conversational state between requests. All methods
// are safe for concurrent use. Implementations may expire pending entries
// after an idle period; reads past expiry behave as if nothing was stored.
type Store interface {
	GetPendingAdd(userID string) *PendingAdd
	SetPendingAdd(userID string, p *PendingAdd)
	ClearPendingAdd(userID string)

	GetPendingGeneral(userID string) *PendingGeneral
	SetPendingGeneral(userID string, p *PendingGeneral)
	ClearPendingGeneral(userID string)

	// LastSearch is the ordered task-ID result of the user's most recent
	// list or search, kept for delete disambiguation.
	GetLastSearch(userID string) []string
	SetLastSearch(userID string, taskIDs []string)
}
