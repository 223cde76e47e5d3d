package geocoding

import (
	"context"
	"fmt"
	"navigation-service/internal/domain"
	"strings"
	"sync"
)

type MockPlace struct {
	Query   string
	Lat     float64
	Lon     float64
	Address string
}

// MockGeocoder resolves a fixed set of queries and reports ErrNotFound for
// everything else. Calls counts Resolve invocations that reached the lookup;
// read it once concurrent callers have returned.
type MockGeocoder struct {
	m     map[string]domain.ResolvedLocation
	mu    sync.Mutex
	Calls int
}

func NewMockGeocoder(places []MockPlace) *MockGeocoder {
	m := make(map[string]domain.ResolvedLocation, len(places))
	for _, p := range places {
		m[NormalizeQuery(p.Query)] = domain.ResolvedLocation{
			Coordinates:    domain.Coordinates{Lat: p.Lat, Lon: p.Lon},
			DisplayAddress: p.Address,
		}
	}
	return &MockGeocoder{m: m}
}

func (g *MockGeocoder) Resolve(ctx context.Context, query string) (domain.ResolvedLocation, error) {
	if strings.TrimSpace(query) == "" {
		return domain.ResolvedLocation{}, domain.ErrEmptyQuery
	}
	g.mu.Lock()
	g.Calls++
	g.mu.Unlock()

	loc, ok := g.m[NormalizeQuery(query)]
	if !ok {
		return domain.ResolvedLocation{}, fmt.Errorf("%w: %q", domain.ErrNotFound, query)
	}
	return loc, nil
}
