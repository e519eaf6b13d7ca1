package session

import (
	"sort"
	"sync"

	"github.com/lgbarn/knightgrid/internal/config"
	"github.com/lgbarn/knightgrid/internal/errors"
)

// Manager keeps sessions by ID. It is safe for concurrent use; the
// sessions it returns are not.
type Manager struct {
	mu       sync.RWMutex
	sessions map[string]*Session
	cfg      *config.Config
}

// NewManager creates an empty registry whose sessions use cfg.
func NewManager(cfg *config.Config) *Manager {
	return &Manager{
		sessions: make(map[string]*Session),
		cfg:      cfg,
	}
}

// Create starts a new session and registers it.
func (m *Manager) Create() (*Session, error) {
	s, err := New(m.cfg)
	if err != nil {
		return nil, err
	}

	m.mu.Lock()
	defer m.mu.Unlock()
	m.sessions[s.ID] = s
	m.cfg.Logf(2, "session %s: created (%dx%d)", s.ID, s.Board.Size, s.Board.Size)
	return s, nil
}

// Get returns the session with the given ID.
func (m *Manager) Get(id string) (*Session, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	s, ok := m.sessions[id]
	if !ok {
		return nil, errors.Wrapf(errors.ErrSessionNotFound, "id %q", id)
	}
	return s, nil
}

// Delete removes a session. Deleting an unknown ID is an error.
func (m *Manager) Delete(id string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if _, ok := m.sessions[id]; !ok {
		return errors.Wrapf(errors.ErrSessionNotFound, "id %q", id)
	}
	delete(m.sessions, id)
	m.cfg.Logf(2, "session %s: deleted", id)
	return nil
}

// Len returns the number of live sessions.
func (m *Manager) Len() int {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return len(m.sessions)
}

// IDs returns the live session IDs in sorted order.
func (m *Manager) IDs() []string {
	m.mu.RLock()
	defer m.mu.RUnlock()
	ids := make([]string, 0, len(m.sessions))
	for id := range m.sessions {
		ids = append(ids, id)
	}
	sort.Strings(ids)
	return ids
}
