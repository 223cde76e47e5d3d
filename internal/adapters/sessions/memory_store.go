package sessions

import (
	"context"
	"navigation-service/internal/domain"
	"sync"
)

// In-process SessionStore for single-instance deployments and tests.
// Stored states are copied on the way in and out so callers cannot mutate
// a session without calling Save.
type MemoryStore struct {
	mu       sync.Mutex
	sessions map[string]domain.LocationState
}

func NewMemoryStore() *MemoryStore {
	return &MemoryStore{sessions: make(map[string]domain.LocationState)}
}

func (m *MemoryStore) Load(ctx context.Context, sessionID string) (*domain.LocationState, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	state, ok := m.sessions[sessionID]
	if !ok {
		return nil, domain.ErrSessionNotFound
	}
	return &state, nil
}

func (m *MemoryStore) Save(ctx context.Context, sessionID string, state *domain.LocationState) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.sessions[sessionID] = *state
	return nil
}

func (m *MemoryStore) Update(ctx context.Context, sessionID string, fn func(*domain.LocationState) error) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	state, ok := m.sessions[sessionID]
	if !ok {
		return domain.ErrSessionNotFound
	}
	if err := fn(&state); err != nil {
		return err
	}
	m.sessions[sessionID] = state
	return nil
}

func (m *MemoryStore) Delete(ctx context.Context, sessionID string) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	if _, ok := m.sessions[sessionID]; !ok {
		return domain.ErrSessionNotFound
	}
	delete(m.sessions, sessionID)
	return nil
}
