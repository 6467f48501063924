package usecase

import (
	"context"
	"sync"

	"github.com/google/uuid"
)

// searchSessions tracks the latest search of each user. Starting a search
// cancels the context of the one it supersedes.
type searchSessions struct {
	mu     sync.Mutex
	next   uint64
	latest map[uuid.UUID]*searchSession
}

type searchSession struct {
	seq    uint64
	cancel context.CancelFunc
}

func newSearchSessions() *searchSessions {
	return &searchSessions{latest: make(map[uuid.UUID]*searchSession)}
}

// begin registers a new search for userID and returns its context and
// sequence number. release must be called when the search returns.
func (s *searchSessions) begin(ctx context.Context, userID uuid.UUID) (context.Context, uint64, func()) {
	ctx, cancel := context.WithCancel(ctx)

	s.mu.Lock()
	if prev, ok := s.latest[userID]; ok {
		prev.cancel()
	}
	// sequence numbers are global so a released user entry never restarts them
	s.next++
	seq := s.next
	s.latest[userID] = &searchSession{seq: seq, cancel: cancel}
	s.mu.Unlock()

	release := func() {
		cancel()
		s.mu.Lock()
		if cur, ok := s.latest[userID]; ok && cur.seq == seq {
			delete(s.latest, userID)
		}
		s.mu.Unlock()
	}
	return ctx, seq, release
}

// isLatest reports whether seq is still the newest search of userID
func (s *searchSessions) isLatest(userID uuid.UUID, seq uint64) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	cur, ok := s.latest[userID]
	return ok && cur.seq == seq
}

// active returns the number of users with a search in flight
func (s *searchSessions) active() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.latest)
}
