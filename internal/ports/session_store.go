package ports

import (
	"context"
	"navigation-service/internal/domain"
)

// Port: a boundary for loading and saving per-session LocationState.
type SessionStore interface {
	// Load returns domain.ErrSessionNotFound for unknown ids.
	Load(ctx context.Context, sessionID string) (*domain.LocationState, error)
	// Save creates or replaces the whole session.
	Save(ctx context.Context, sessionID string, state *domain.LocationState) error
	// Update applies fn to the current state of an existing session and
	// stores the result atomically with respect to other Update and Delete
	// calls on the same id. It returns domain.ErrSessionNotFound if the
	// session does not exist (or was deleted) and does not recreate it.
	// fn may run more than once and should only touch the state.
	Update(ctx context.Context, sessionID string, fn func(*domain.LocationState) error) error
	Delete(ctx context.Context, sessionID string) error
}
