package tui

import (
	"errors"
	"sync"
)

// ErrServerFull is returned when every session slot is taken.
var ErrServerFull = errors.New("tui: server full, try again later")

// sessionID identifies one SSH session's game.
type sessionID string

// sessionRegistry tracks the displays of live sessions.
// Safe for concurrent use.
type sessionRegistry struct {
	mu       sync.RWMutex
	max      int // 0 means unlimited
	sessions map[sessionID]*Display
}

func newSessionRegistry(limit int) *sessionRegistry {
	return &sessionRegistry{
		max:      limit,
		sessions: make(map[sessionID]*Display),
	}
}

// register adds d under id, or fails with ErrServerFull.
func (r *sessionRegistry) register(id sessionID, d *Display) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.max > 0 && len(r.sessions) >= r.max {
		return ErrServerFull
	}
	r.sessions[id] = d
	return nil
}

func (r *sessionRegistry) unregister(id sessionID) {
	r.mu.Lock()
	defer r.mu.Unlock()
	delete(r.sessions, id)
}

// count returns the number of live sessions.
func (r *sessionRegistry) count() int {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return len(r.sessions)
}

// closeAll closes every registered display so their loops return.
func (r *sessionRegistry) closeAll() {
	r.mu.RLock()
	defer r.mu.RUnlock()
	for _, d := range r.sessions {
		d.Close()
	}
}
