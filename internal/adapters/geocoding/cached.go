package geocoding

import (
	"context"
	"log"
	"navigation-service/internal/domain"
	"navigation-service/internal/platform/metrics"
	"navigation-service/internal/ports"
	"strings"
)

// CachedGeocoder consults a persistent cache before delegating to the
// wrapped geocoder. Only successful resolutions are cached.
type CachedGeocoder struct {
	next  ports.Geocoder
	cache ports.GeocodeCache
}

func NewCachedGeocoder(next ports.Geocoder, cache ports.GeocodeCache) *CachedGeocoder {
	return &CachedGeocoder{next: next, cache: cache}
}

// NormalizeQuery collapses whitespace.
func NormalizeQuery(s string) string {
	return strings.Join(strings.Fields(s), " ")
}

// CacheKey is the case-insensitive key a query is cached under. The
// provider still receives the query with its original casing.
func CacheKey(s string) string {
	return strings.ToLower(NormalizeQuery(s))
}

func (c *CachedGeocoder) Resolve(ctx context.Context, query string) (domain.ResolvedLocation, error) {
	query = NormalizeQuery(query)
	if query == "" {
		return domain.ResolvedLocation{}, domain.ErrEmptyQuery
	}

	key := CacheKey(query)

	// A broken cache degrades to a provider lookup rather than failing the request.
	if c.cache != nil {
		loc, ok, err := c.cache.Get(ctx, key)
		switch {
		case err != nil:
			log.Printf("geocode cache read failed: query=%q err=%v", key, err)
		case ok:
			metrics.RecordGeocodeCache(true)
			return loc, nil
		default:
			metrics.RecordGeocodeCache(false)
		}
	}

	loc, err := c.next.Resolve(ctx, query)
	if err != nil {
		return domain.ResolvedLocation{}, err
	}

	if c.cache != nil {
		if err := c.cache.Put(ctx, key, loc); err != nil {
			log.Printf("geocode cache write failed: query=%q err=%v", key, err)
		}
	}

	return loc, nil
}
