package geocoding

import (
	"context"
	"errors"
	"navigation-service/internal/domain"
	"testing"

	"github.com/stretchr/testify/require"
)

type memoryCache struct {
	entries map[string]domain.ResolvedLocation
	getErr  error
	putErr  error
	puts    int
}

func newMemoryCache() *memoryCache {
	return &memoryCache{entries: map[string]domain.ResolvedLocation{}}
}

func (m *memoryCache) Get(ctx context.Context, query string) (domain.ResolvedLocation, bool, error) {
	if m.getErr != nil {
		return domain.ResolvedLocation{}, false, m.getErr
	}
	loc, ok := m.entries[query]
	return loc, ok, nil
}

func (m *memoryCache) Put(ctx context.Context, query string, loc domain.ResolvedLocation) error {
	m.puts++
	if m.putErr != nil {
		return m.putErr
	}
	m.entries[query] = loc
	return nil
}

func TestCachedGeocoderMissThenHit(t *testing.T) {
	inner := NewMockGeocoder([]MockPlace{
		{Query: "India Gate", Lat: 28.6129, Lon: 77.2295, Address: "India Gate, New Delhi"},
	})
	cache := newMemoryCache()
	g := NewCachedGeocoder(inner, cache)

	first, err := g.Resolve(context.Background(), "India   Gate")
	require.NoError(t, err)
	require.Equal(t, 1, inner.Calls)
	require.Contains(t, cache.entries, "india gate")

	second, err := g.Resolve(context.Background(), " India Gate ")
	require.NoError(t, err)
	require.Equal(t, first, second)
	require.Equal(t, 1, inner.Calls, "cache hit must not reach the provider")
}

func TestCachedGeocoderDoesNotCacheFailures(t *testing.T) {
	inner := NewMockGeocoder(nil)
	cache := newMemoryCache()
	g := NewCachedGeocoder(inner, cache)

	_, err := g.Resolve(context.Background(), "Atlantis")
	require.ErrorIs(t, err, domain.ErrNotFound)
	require.Zero(t, cache.puts)

	_, err = g.Resolve(context.Background(), "")
	require.ErrorIs(t, err, domain.ErrEmptyQuery)
	require.Equal(t, 1, inner.Calls)
}

func TestCachedGeocoderDegradesOnCacheErrors(t *testing.T) {
	inner := NewMockGeocoder([]MockPlace{{Query: "Louvre", Lat: 48.8606, Lon: 2.3376, Address: "Louvre"}})
	cache := newMemoryCache()
	cache.getErr = errors.New("connection reset")
	cache.putErr = errors.New("read-only")

	loc, err := NewCachedGeocoder(inner, cache).Resolve(context.Background(), "Louvre")
	require.NoError(t, err)
	require.Equal(t, "Louvre", loc.DisplayAddress)
	require.Equal(t, 1, cache.puts)
}

func TestCachedGeocoderWithoutCache(t *testing.T) {
	inner := NewMockGeocoder([]MockPlace{{Query: "Louvre", Lat: 48.8606, Lon: 2.3376, Address: "Louvre"}})

	_, err := NewCachedGeocoder(inner, nil).Resolve(context.Background(), "Louvre")
	require.NoError(t, err)
	require.Equal(t, 1, inner.Calls)
}

type recordingGeocoder struct {
	queries []string
}

func (r *recordingGeocoder) Resolve(ctx context.Context, query string) (domain.ResolvedLocation, error) {
	r.queries = append(r.queries, query)
	return domain.ResolvedLocation{
		Coordinates:    domain.Coordinates{Lat: 28.6129, Lon: 77.2295},
		DisplayAddress: "India Gate, New Delhi",
	}, nil
}

func TestCachedGeocoderKeysIgnoreCase(t *testing.T) {
	cache := newMemoryCache()
	cache.entries["india gate"] = domain.ResolvedLocation{
		Coordinates:    domain.Coordinates{Lat: 28.6129, Lon: 77.2295},
		DisplayAddress: "India Gate (seeded)",
	}
	inner := &recordingGeocoder{}
	g := NewCachedGeocoder(inner, cache)

	for _, q := range []string{"India Gate", "INDIA  GATE", "india gate"} {
		loc, err := g.Resolve(context.Background(), q)
		require.NoError(t, err)
		require.Equal(t, "India Gate (seeded)", loc.DisplayAddress)
	}
	require.Empty(t, inner.queries)

	_, err := g.Resolve(context.Background(), "  Red   Fort ")
	require.NoError(t, err)
	require.Equal(t, []string{"Red Fort"}, inner.queries)
	require.Contains(t, cache.entries, "red fort")
}
