package session

import (
	"errors"
	"fmt"
	"strings"
	"sync"
	"time"

	"github.com/wricardo/santorini/game/engine"
	"github.com/wricardo/santorini/game/service"
)

var (
	ErrSessionNotFound      = errors.New("session not found")
	ErrSessionAlreadyExists = errors.New("session already exists")
)

// Manager keeps the running games in memory
type Manager struct {
	sessions map[string]*service.Session
	mu       sync.RWMutex
}

// NewManager creates a new session manager
func NewManager() *Manager {
	return &Manager{
		sessions: make(map[string]*service.Session),
	}
}

// Create starts a game under the given ID. An empty ID takes the game's own
// generated ID.
func (m *Manager) Create(id string, ruleset *engine.Ruleset, pawns [4]engine.PawnSpec) (*service.Session, error) {
	eng, err := engine.NewEngine(ruleset, pawns)
	if err != nil {
		return nil, fmt.Errorf("failed to create engine: %w", err)
	}
	if id == "" {
		id = eng.GetState().ID
	}

	m.mu.Lock()
	defer m.mu.Unlock()

	key := strings.ToLower(id)
	if _, exists := m.sessions[key]; exists {
		return nil, ErrSessionAlreadyExists
	}

	now := time.Now()
	session := &service.Session{
		ID:             id,
		Engine:         eng,
		Ruleset:        eng.GetRuleset(),
		CreatedAt:      now,
		LastAccessedAt: now,
	}
	m.sessions[key] = session

	return session, nil
}

// Get retrieves a session by ID (case-insensitive)
func (m *Manager) Get(id string) (*service.Session, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	session, exists := m.sessions[strings.ToLower(id)]
	if !exists {
		return nil, ErrSessionNotFound
	}
	return session, nil
}

// List returns all active sessions
func (m *Manager) List() []*service.Session {
	m.mu.RLock()
	defer m.mu.RUnlock()

	result := make([]*service.Session, 0, len(m.sessions))
	for _, session := range m.sessions {
		result = append(result, session)
	}
	return result
}

// Delete removes a session
func (m *Manager) Delete(id string) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	key := strings.ToLower(id)
	if _, exists := m.sessions[key]; !exists {
		return ErrSessionNotFound
	}
	delete(m.sessions, key)
	return nil
}

// UpdateLastAccessed updates the last accessed time for a session
func (m *Manager) UpdateLastAccessed(id string) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	session, exists := m.sessions[strings.ToLower(id)]
	if !exists {
		return ErrSessionNotFound
	}
	session.LastAccessedAt = time.Now()
	return nil
}
