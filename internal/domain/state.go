package domain

import (
	"fmt"
	"strings"
)

// Slot names one of the two locations a session tracks.
type Slot string

const (
	SlotOrigin      Slot = "origin"
	SlotDestination Slot = "destination"
)

// ParseSlot accepts the slot names used on the wire.
func ParseSlot(s string) (Slot, error) {
	switch Slot(strings.ToLower(strings.TrimSpace(s))) {
	case SlotOrigin:
		return SlotOrigin, nil
	case SlotDestination:
		return SlotDestination, nil
	}
	return "", fmt.Errorf("%w: %q", ErrInvalidSlot, s)
}

// Phase summarizes which slots are populated.
type Phase string

const (
	PhaseEmpty          Phase = "empty"
	PhaseOriginSet      Phase = "origin_set"
	PhaseDestinationSet Phase = "destination_set"
	PhaseComplete       Phase = "complete"
)

// Per-session origin/destination pair.
// A slot is either nil or a complete ResolvedLocation; callers never observe
// partially written values because Set replaces the whole slot.
type LocationState struct {
	Origin      *ResolvedLocation `json:"origin,omitempty"`
	Destination *ResolvedLocation `json:"destination,omitempty"`
}

func NewLocationState() *LocationState {
	return &LocationState{}
}

// Set overwrites the slot (last write wins).
func (s *LocationState) Set(slot Slot, loc ResolvedLocation) {
	*s.slot(slot) = &loc
}

// Get returns a copy of the slot value and whether it is populated.
func (s *LocationState) Get(slot Slot) (ResolvedLocation, bool) {
	p := *s.slot(slot)
	if p == nil {
		return ResolvedLocation{}, false
	}
	return *p, true
}

// Clear resets both slots.
func (s *LocationState) Clear() {
	s.Origin = nil
	s.Destination = nil
}

func (s *LocationState) Phase() Phase {
	switch {
	case s.Origin != nil && s.Destination != nil:
		return PhaseComplete
	case s.Origin != nil:
		return PhaseOriginSet
	case s.Destination != nil:
		return PhaseDestinationSet
	default:
		return PhaseEmpty
	}
}

// Endpoints returns both locations when the state is complete.
func (s *LocationState) Endpoints() (origin, destination ResolvedLocation, err error) {
	if s.Phase() != PhaseComplete {
		return ResolvedLocation{}, ResolvedLocation{}, ErrIncompleteRoute
	}
	return *s.Origin, *s.Destination, nil
}

func (s *LocationState) slot(slot Slot) **ResolvedLocation {
	switch slot {
	case SlotOrigin:
		return &s.Origin
	case SlotDestination:
		return &s.Destination
	}
	panic(fmt.Sprintf("location state: unknown slot %q", string(slot)))
}
