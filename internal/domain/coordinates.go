package domain

import (
	"fmt"
	"math"
	"strconv"
	"strings"
)

// Immutable geographic coordinates (latitude, longitude) in decimal degrees.
type Coordinates struct {
	Lat float64 `json:"lat"`
	Lon float64 `json:"lon"`
}

// NewCoordinates validates the latitude/longitude ranges.
func NewCoordinates(lat, lon float64) (Coordinates, error) {
	if math.IsNaN(lat) || math.IsNaN(lon) {
		return Coordinates{}, fmt.Errorf("%w: NaN component", ErrMalformedCoordinate)
	}
	if lat < -90 || lat > 90 {
		return Coordinates{}, fmt.Errorf("%w: latitude %v out of range", ErrMalformedCoordinate, lat)
	}
	if lon < -180 || lon > 180 {
		return Coordinates{}, fmt.Errorf("%w: longitude %v out of range", ErrMalformedCoordinate, lon)
	}

	return Coordinates{Lat: lat, Lon: lon}, nil
}

// ParseCoordinates builds Coordinates from the numeric strings geocoders return.
func ParseCoordinates(lat, lon string) (Coordinates, error) {
	la, err := strconv.ParseFloat(lat, 64)
	if err != nil {
		return Coordinates{}, fmt.Errorf("%w: latitude %q", ErrMalformedCoordinate, lat)
	}
	lo, err := strconv.ParseFloat(lon, 64)
	if err != nil {
		return Coordinates{}, fmt.Errorf("%w: longitude %q", ErrMalformedCoordinate, lon)
	}

	return NewCoordinates(la, lo)
}

// Pair renders "lat,lon" using the shortest decimal form that round-trips.
// Integral degrees keep one decimal place ("77.0").
func (c Coordinates) Pair() string {
	return formatDegrees(c.Lat) + "," + formatDegrees(c.Lon)
}

// Fixed renders "lat, lon" with six decimal places.
func (c Coordinates) Fixed() string {
	return fmt.Sprintf("%.6f, %.6f", c.Lat, c.Lon)
}

func formatDegrees(v float64) string {
	s := strconv.FormatFloat(v, 'f', -1, 64)
	if !strings.Contains(s, ".") {
		s += ".0"
	}
	return s
}
