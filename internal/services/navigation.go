package services

import (
	"context"
	"fmt"
	"navigation-service/internal/domain"
	"navigation-service/internal/platform/metrics"
	"navigation-service/internal/platform/obs"
	"navigation-service/internal/ports"
	"strings"

	"github.com/google/uuid"
)

// CreateSession starts a session with an empty LocationState.
func CreateSession(ctx context.Context, store ports.SessionStore) (string, error) {
	id := uuid.NewString()
	if err := store.Save(ctx, id, domain.NewLocationState()); err != nil {
		return "", fmt.Errorf("create session: %w", err)
	}

	metrics.RecordSessionCreated()
	return id, nil
}

// SessionState returns the current state of a session.
func SessionState(ctx context.Context, sessionID string, store ports.SessionStore) (*domain.LocationState, error) {
	state, err := store.Load(ctx, sessionID)
	if err != nil {
		return nil, fmt.Errorf("session state %q: %w", sessionID, err)
	}
	return state, nil
}

// ResetSession clears both slots of an existing session.
func ResetSession(ctx context.Context, sessionID string, store ports.SessionStore) error {
	err := store.Update(ctx, sessionID, func(state *domain.LocationState) error {
		state.Clear()
		return nil
	})
	if err != nil {
		return fmt.Errorf("reset session %q: %w", sessionID, err)
	}
	return nil
}

type ResolveLocationRequest struct {
	SessionID string
	Slot      domain.Slot
	Query     string
}

// ResolveLocation geocodes req.Query and stores the result in req.Slot.
//
// The lookup runs outside any session write. Only the slot itself is
// written back, through SessionStore.Update, so a concurrent resolve of the
// other slot is kept and a session deleted meanwhile stays deleted. A failed
// lookup leaves the previous slot value in place.
func ResolveLocation(
	ctx context.Context,
	req ResolveLocationRequest,
	geocoder ports.Geocoder,
	store ports.SessionStore,
) (_ domain.ResolvedLocation, err error) {
	defer obs.Time(ctx, "services.ResolveLocation")(&err)

	if strings.TrimSpace(req.Query) == "" {
		return domain.ResolvedLocation{}, domain.ErrEmptyQuery
	}

	// Unknown sessions fail before spending a provider call.
	if _, err := store.Load(ctx, req.SessionID); err != nil {
		return domain.ResolvedLocation{}, fmt.Errorf("resolve location: %w", err)
	}

	loc, err := geocoder.Resolve(ctx, req.Query)
	if err != nil {
		return domain.ResolvedLocation{}, fmt.Errorf("resolve location %s: %w", req.Slot, err)
	}

	err = store.Update(ctx, req.SessionID, func(state *domain.LocationState) error {
		state.Set(req.Slot, loc)
		return nil
	})
	if err != nil {
		return domain.ResolvedLocation{}, fmt.Errorf("resolve location: save session: %w", err)
	}

	return loc, nil
}

// Distance and routing links between a session's origin and destination.
type NavigationSummary struct {
	Origin       domain.ResolvedLocation
	Destination  domain.ResolvedLocation
	DistanceKm   float64
	DistanceText string
	Links        []domain.NavigationLink
}

// Summarize requires a complete state and returns domain.ErrIncompleteRoute otherwise.
func Summarize(state *domain.LocationState) (NavigationSummary, error) {
	origin, destination, err := state.Endpoints()
	if err != nil {
		return NavigationSummary{}, err
	}

	km := DistanceKm(origin.Coordinates, destination.Coordinates)
	return NavigationSummary{
		Origin:       origin,
		Destination:  destination,
		DistanceKm:   km,
		DistanceText: FormatDistance(km),
		Links:        BuildRouteLinks(origin.Coordinates, destination.Coordinates),
	}, nil
}

func SessionNavigation(ctx context.Context, sessionID string, store ports.SessionStore) (NavigationSummary, error) {
	state, err := store.Load(ctx, sessionID)
	if err != nil {
		return NavigationSummary{}, fmt.Errorf("session navigation: %w", err)
	}

	summary, err := Summarize(state)
	if err != nil {
		return NavigationSummary{}, fmt.Errorf("session navigation: %w", err)
	}
	return summary, nil
}

type ComposeMessageRequest struct {
	SessionID string
	Recipient string
	Body      string
	// Template names a canned body used when Body is blank.
	Template string
	Share    domain.LocationShare
}

// ComposeMessage builds a messaging deep link, optionally embedding the
// session's locations.
func ComposeMessage(
	ctx context.Context,
	req ComposeMessageRequest,
	store ports.SessionStore,
) (domain.MessagePayload, error) {
	body := req.Body
	if strings.TrimSpace(body) == "" && strings.TrimSpace(req.Template) != "" {
		tmpl, err := domain.LookupTemplate(req.Template)
		if err != nil {
			return domain.MessagePayload{}, fmt.Errorf("compose message: %w", err)
		}
		body = tmpl.Body
	}

	state, err := store.Load(ctx, req.SessionID)
	if err != nil {
		return domain.MessagePayload{}, fmt.Errorf("compose message: %w", err)
	}

	payload, err := BuildMessagePayload(req.Recipient, body, req.Share, state)
	if err != nil {
		return domain.MessagePayload{}, fmt.Errorf("compose message: %w", err)
	}
	return payload, nil
}
