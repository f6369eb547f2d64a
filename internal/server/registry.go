package server

import (
	"sync"

	"github.com/google/uuid"

	"github.com/IshanviChauhan/Interview-Bot/internal/session"
)

// sessionEntry pairs a session with its own lock. Sessions have no
// internal locking, so all handler access to one session goes through
// the entry's mutex.
type sessionEntry struct {
	mu   sync.Mutex
	sess *session.Session
}

// registry is the in-memory set of live sessions, keyed by session ID.
type registry struct {
	mu      sync.RWMutex
	entries map[uuid.UUID]*sessionEntry
}

func newRegistry() *registry {
	return &registry{entries: make(map[uuid.UUID]*sessionEntry)}
}

func (r *registry) add(sess *session.Session) *sessionEntry {
	entry := &sessionEntry{sess: sess}
	r.mu.Lock()
	r.entries[sess.ID()] = entry
	r.mu.Unlock()
	return entry
}

func (r *registry) get(id uuid.UUID) (*sessionEntry, bool) {
	r.mu.RLock()
	entry, ok := r.entries[id]
	r.mu.RUnlock()
	return entry, ok
}

func (r *registry) remove(id uuid.UUID) bool {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.entries[id]; !ok {
		return false
	}
	delete(r.entries, id)
	return true
}

// ids returns the IDs of all live sessions.
func (r *registry) ids() []uuid.UUID {
	r.mu.RLock()
	defer r.mu.RUnlock()
	out := make([]uuid.UUID, 0, len(r.entries))
	for id := range r.entries {
		out = append(out, id)
	}
	return out
}
