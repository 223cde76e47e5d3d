package services

import (
	"fmt"
	"math"
	"navigation-service/internal/domain"
)

// Mean Earth radius used by the haversine formula.
const earthRadiusKm = 6371.0

// DistanceKm returns the great-circle distance between a and b in kilometres.
func DistanceKm(a, b domain.Coordinates) float64 {
	lat1 := toRadians(a.Lat)
	lon1 := toRadians(a.Lon)
	lat2 := toRadians(b.Lat)
	lon2 := toRadians(b.Lon)

	dLat := lat2 - lat1
	dLon := lon2 - lon1

	h := math.Pow(math.Sin(dLat/2), 2) +
		math.Cos(lat1)*math.Cos(lat2)*math.Pow(math.Sin(dLon/2), 2)
	// Rounding can push h marginally above 1 for antipodal points.
	c := 2 * math.Asin(math.Sqrt(math.Min(h, 1)))

	return earthRadiusKm * c
}

// FormatDistance renders a distance for display, e.g. "2.00 km".
func FormatDistance(km float64) string {
	return fmt.Sprintf("%.2f km", km)
}

func toRadians(deg float64) float64 { return deg * math.Pi / 180 }
