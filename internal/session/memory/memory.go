package memory

import (
	"sync"
	"time"

	"taskflow-server/internal/session"
)

const (
	defaultTTL    = 10 * time.Minute
	sweepInterval = time.Minute
)

type implStore struct {
	mu         sync.RWMutex
	pendingAdd map[string]*session.PendingAdd
	pendingGen map[string]*session.PendingGeneral
	lastSearch map[string][]string
	ttl        time.Duration
	now        func() time.Time
}

// New creates an in-memory session store. A background sweeper drops
// pending flows idle longer than ten minutes.
func New() session.Store {
	s := newStore(defaultTTL)
	go s.sweep()
	return s
}

func newStore(ttl time.Duration) *implStore {
	return &implStore{
		pendingAdd: make(map[string]*session.PendingAdd),
		pendingGen: make(map[string]*session.PendingGeneral),
		lastSearch: make(map[string][]string),
		ttl:        ttl,
		now:        time.Now,
	}
}

func (s *implStore) GetPendingAdd(userID string) *session.PendingAdd {
	s.mu.RLock()
	defer s.mu.RUnlock()
	p, ok := s.pendingAdd[userID]
	if !ok || s.expired(p.CreatedAt) {
		return nil
	}
	out := *p
	return &out
}

func (s *implStore) SetPendingAdd(userID string, p *session.PendingAdd) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if p.CreatedAt.IsZero() {
		p.CreatedAt = s.now()
	}
	s.pendingAdd[userID] = p
}

func (s *implStore) ClearPendingAdd(userID string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.pendingAdd, userID)
}

func (s *implStore) GetPendingGeneral(userID string) *session.PendingGeneral {
	s.mu.RLock()
	defer s.mu.RUnlock()
	p, ok := s.pendingGen[userID]
	if !ok || s.expired(p.CreatedAt) {
		return nil
	}
	out := *p
	return &out
}

func (s *implStore) SetPendingGeneral(userID string, p *session.PendingGeneral) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if p.CreatedAt.IsZero() {
		p.CreatedAt = s.now()
	}
	s.pendingGen[userID] = p
}

func (s *implStore) ClearPendingGeneral(userID string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.pendingGen, userID)
}

func (s *implStore) GetLastSearch(userID string) []string {
	s.mu.RLock()
	defer s.mu.RUnlock()
	ids := s.lastSearch[userID]
	out := make([]string, len(ids))
	copy(out, ids)
	return out
}

func (s *implStore) SetLastSearch(userID string, taskIDs []string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	ids := make([]string, len(taskIDs))
	copy(ids, taskIDs)
	s.lastSearch[userID] = ids
}

func (s *implStore) expired(createdAt time.Time) bool {
	return s.now().Sub(createdAt) > s.ttl
}

func (s *implStore) sweep() {
	ticker := time.NewTicker(sweepInterval)
	defer ticker.Stop()
	for range ticker.C {
		s.mu.Lock()
		for userID, p := range s.pendingAdd {
			if s.expired(p.CreatedAt) {
				delete(s.pendingAdd, userID)
			}
		}
		for userID, p := range s.pendingGen {
			if s.expired(p.CreatedAt) {
				delete(s.pendingGen, userID)
			}
		}
		s.mu.Unlock()
	}
}
