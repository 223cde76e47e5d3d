package ports

import (
	"context"
	"navigation-service/internal/domain"
)

// Contract for resolving free-text place descriptions.
type Geocoder interface {
	// Resolve returns the provider's most relevant match for query.
	// Failures are reported with the domain geocoding errors
	// (ErrEmptyQuery, ErrNotFound, ErrMalformedCoordinate, ErrProviderUnavailable).
	Resolve(ctx context.Context, query string) (domain.ResolvedLocation, error)
}

// Persistent store of previously resolved queries.
// Keys are expected to be normalized by the caller.
type GeocodeCache interface {
	Get(ctx context.Context, query string) (domain.ResolvedLocation, bool, error)
	Put(ctx context.Context, query string, loc domain.ResolvedLocation) error
}
