package domain

import (
	"fmt"
	"strings"
)

// Travel mode understood by the map-routing surface.
type TravelMode string

const (
	ModeDrive   TravelMode = "drive"
	ModeWalk    TravelMode = "walk"
	ModeTransit TravelMode = "transit"
)

// TravelModes lists the supported modes in display order.
var TravelModes = []TravelMode{ModeDrive, ModeWalk, ModeTransit}

func ParseTravelMode(s string) (TravelMode, error) {
	m := TravelMode(strings.ToLower(strings.TrimSpace(s)))
	for _, known := range TravelModes {
		if m == known {
			return m, nil
		}
	}
	return "", fmt.Errorf("%w: %q", ErrInvalidMode, s)
}

// A routing URL for one travel mode. Derived from LocationState on demand.
type NavigationLink struct {
	Mode TravelMode `json:"mode"`
	URL  string     `json:"url"`
}
