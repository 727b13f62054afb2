// Package session tracks the players connected to the SSH server. Each
// session owns its own board; the tracker only records who is playing what.
package session

import (
	"sort"
	"sync"
	"time"

	"github.com/google/uuid"
)

// ID uniquely identifies a connection.
type ID string

// NewID returns a fresh random session ID.
func NewID() ID {
	return ID(uuid.NewString())
}

// Short returns the first eight characters, for logs and status lines.
func (id ID) Short() string {
	if len(id) <= 8 {
		return string(id)
	}
	return string(id[:8])
}

// Info describes one active session.
type Info struct {
	ID        ID
	User      string
	Remote    string
	GameID    string // Variant being played, empty while in the menu
	StartedAt time.Time
}

// Tracker is a concurrency-safe set of active sessions.
type Tracker struct {
	mu       sync.RWMutex
	sessions map[ID]Info
	now      func() time.Time
}

// NewTracker creates an empty tracker.
func NewTracker() *Tracker {
	return &Tracker{
		sessions: make(map[ID]Info),
		now:      time.Now,
	}
}

// Add registers a new session and returns its info.
func (t *Tracker) Add(user, remote string) Info {
	info := Info{
		ID:        NewID(),
		User:      user,
		Remote:    remote,
		StartedAt: t.now(),
	}

	t.mu.Lock()
	defer t.mu.Unlock()
	t.sessions[info.ID] = info
	return info
}

// Remove drops a session and returns how long it lasted.
func (t *Tracker) Remove(id ID) (time.Duration, bool) {
	t.mu.Lock()
	defer t.mu.Unlock()

	info, ok := t.sessions[id]
	if !ok {
		return 0, false
	}
	delete(t.sessions, id)
	return t.now().Sub(info.StartedAt), true
}

// SetGame records which variant a session is playing.
func (t *Tracker) SetGame(id ID, gameID string) {
	t.mu.Lock()
	defer t.mu.Unlock()

	if info, ok := t.sessions[id]; ok {
		info.GameID = gameID
		t.sessions[id] = info
	}
}

// Get retrieves a session by ID.
func (t *Tracker) Get(id ID) (Info, bool) {
	t.mu.RLock()
	defer t.mu.RUnlock()
	info, ok := t.sessions[id]
	return info, ok
}

// List returns all sessions, oldest first.
func (t *Tracker) List() []Info {
	t.mu.RLock()
	defer t.mu.RUnlock()

	out := make([]Info, 0, len(t.sessions))
	for _, info := range t.sessions {
		out = append(out, info)
	}
	sort.Slice(out, func(i, j int) bool {
		if !out[i].StartedAt.Equal(out[j].StartedAt) {
			return out[i].StartedAt.Before(out[j].StartedAt)
		}
		return out[i].ID < out[j].ID
	})
	return out
}

// Count returns the number of active sessions.
func (t *Tracker) Count() int {
	t.mu.RLock()
	defer t.mu.RUnlock()
	return len(t.sessions)
}
