package realtime

import (
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/piresc/convoy/internal/pkg/models"
)

type recencyKey struct {
	missionID uuid.UUID
	eventType models.MissionEventType
}

// RecencyGuard remembers, per mission and event type, the newest version
// applied so far. Anything not strictly newer is a duplicate or a late
// delivery and is rejected.
type RecencyGuard struct {
	mu   sync.Mutex
	seen map[recencyKey]time.Time
}

// NewRecencyGuard creates an empty guard
func NewRecencyGuard() *RecencyGuard {
	return &RecencyGuard{seen: make(map[recencyKey]time.Time)}
}

// Accept reports whether event supersedes what was applied before, and
// records it if so.
func (g *RecencyGuard) Accept(event models.MissionEvent) bool {
	key := recencyKey{missionID: event.MissionID, eventType: event.Type}

	g.mu.Lock()
	defer g.mu.Unlock()

	if last, ok := g.seen[key]; ok && !event.OccurredAt.After(last) {
		return false
	}
	g.seen[key] = event.OccurredAt
	return true
}

// Forget drops everything recorded for a mission
func (g *RecencyGuard) Forget(missionID uuid.UUID) {
	g.mu.Lock()
	defer g.mu.Unlock()
	for key := range g.seen {
		if key.missionID == missionID {
			delete(g.seen, key)
		}
	}
}
