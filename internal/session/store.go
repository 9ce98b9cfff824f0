// Package session provides the per-session state capability: profile and
// generated path keyed by session id. The interface exists so a real
// persistence layer can replace the in-memory store without touching
// orchestration logic.
package session

import (
	"errors"
	"sync"

	"github.com/skillpath/mitra/internal/types"
)

// ErrNotFound is returned when no state exists for a session id.
var ErrNotFound = errors.New("session not found")

// Store is the session-state capability.
type Store interface {
	SetProfile(sessionID string, profile *types.LearnerProfile) error
	GetProfile(sessionID string) (*types.LearnerProfile, error)
	SetPath(sessionID string, path *types.LearningPath) error
	GetPath(sessionID string) (*types.LearningPath, error)
	Clear(sessionID string) error
}

type sessionState struct {
	profile *types.LearnerProfile
	path    *types.LearningPath
}

// MemoryStore is an in-memory Store implementation.
type MemoryStore struct {
	mu       sync.RWMutex
	sessions map[string]*sessionState
}

// NewMemoryStore creates an empty in-memory session store.
func NewMemoryStore() *MemoryStore {
	return &MemoryStore{sessions: make(map[string]*sessionState)}
}

// SetProfile stores the learner profile for a session.
func (s *MemoryStore) SetProfile(sessionID string, profile *types.LearnerProfile) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.state(sessionID).profile = profile
	return nil
}

// GetProfile returns the stored profile, or ErrNotFound.
func (s *MemoryStore) GetProfile(sessionID string) (*types.LearnerProfile, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	state, ok := s.sessions[sessionID]
	if !ok || state.profile == nil {
		return nil, ErrNotFound
	}
	return state.profile, nil
}

// SetPath stores the generated path for a session, fully replacing any
// prior value.
func (s *MemoryStore) SetPath(sessionID string, path *types.LearningPath) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.state(sessionID).path = path
	return nil
}

// GetPath returns the stored path, or ErrNotFound.
func (s *MemoryStore) GetPath(sessionID string) (*types.LearningPath, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	state, ok := s.sessions[sessionID]
	if !ok || state.path == nil {
		return nil, ErrNotFound
	}
	return state.path, nil
}

// Clear discards all state for a session.
func (s *MemoryStore) Clear(sessionID string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.sessions, sessionID)
	return nil
}

// state returns the mutable state for a session, creating it on demand.
// Callers must hold the write lock.
func (s *MemoryStore) state(sessionID string) *sessionState {
	state, ok := s.sessions[sessionID]
	if !ok {
		state = &sessionState{}
		s.sessions[sessionID] = state
	}
	return state
}
