package geocoding

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"navigation-service/internal/domain"
	"navigation-service/internal/platform/metrics"
	"navigation-service/internal/platform/obs"
	"net/http"
	"strings"
	"time"

	"golang.org/x/time/rate"
)

const (
	DefaultNominatimURL = "https://nominatim.openstreetmap.org"
	defaultTimeout      = 10 * time.Second
	maxResponseBytes    = 1 << 20
)

// NominatimGeocoder implements ports.Geocoder using the OpenStreetMap
// Nominatim search API.
//
// Lookups are never retried. Outbound calls share a token bucket so a
// single process stays within the provider's usage policy.
// The geocoder is safe for concurrent use.
type NominatimGeocoder struct {
	session   *http.Client
	baseURL   string
	userAgent string
	limiter   *rate.Limiter
	timeout   time.Duration
}

type NominatimOptions struct {
	BaseURL string
	// UserAgent identifies the application; Nominatim rejects anonymous clients.
	UserAgent string
	Timeout   time.Duration
	// RatePerSecond <= 0 disables throttling.
	RatePerSecond float64
	Burst         int
	// Transport overrides the HTTP transport, mostly for tests.
	Transport http.RoundTripper
}

func NewNominatimGeocoder(opts NominatimOptions) (*NominatimGeocoder, error) {
	if strings.TrimSpace(opts.UserAgent) == "" {
		return nil, errors.New("nominatim: user agent is empty")
	}

	baseURL := strings.TrimRight(strings.TrimSpace(opts.BaseURL), "/")
	if baseURL == "" {
		baseURL = DefaultNominatimURL
	}

	timeout := opts.Timeout
	if timeout <= 0 {
		timeout = defaultTimeout
	}

	limit := rate.Inf
	if opts.RatePerSecond > 0 {
		limit = rate.Limit(opts.RatePerSecond)
	}
	burst := opts.Burst
	if burst < 1 {
		burst = 1
	}

	return &NominatimGeocoder{
		session:   &http.Client{Timeout: timeout, Transport: opts.Transport},
		baseURL:   baseURL,
		userAgent: opts.UserAgent,
		limiter:   rate.NewLimiter(limit, burst),
		timeout:   timeout,
	}, nil
}

// nominatimPlace keeps only the fields the resolver relies on; anything else
// in the response is ignored. Nominatim sends lat/lon as numeric strings,
// json.Number accepts those as well as bare numbers.
type nominatimPlace struct {
	Lat         json.Number `json:"lat"`
	Lon         json.Number `json:"lon"`
	DisplayName string      `json:"display_name"`
}

// Resolve looks up query and returns the highest-relevance match.
func (n *NominatimGeocoder) Resolve(ctx context.Context, query string) (_ domain.ResolvedLocation, err error) {
	defer obs.Time(ctx, "nominatim.Resolve")(&err)

	query = strings.TrimSpace(query)
	if query == "" {
		return domain.ResolvedLocation{}, domain.ErrEmptyQuery
	}

	// The timeout covers waiting for a rate-limit token as well as the
	// request itself.
	ctx, cancel := context.WithTimeout(ctx, n.timeout)
	defer cancel()

	start := time.Now()
	loc, outcome, err := n.search(ctx, query)
	metrics.RecordGeocode(outcome, time.Since(start))

	return loc, err
}

func (n *NominatimGeocoder) search(ctx context.Context, query string) (domain.ResolvedLocation, string, error) {
	if err := n.limiter.Wait(ctx); err != nil {
		return domain.ResolvedLocation{}, "unavailable", fmt.Errorf("%w: rate limiter: %w", domain.ErrProviderUnavailable, err)
	}

	req, err := n.newRequest(ctx, query)
	if err != nil {
		return domain.ResolvedLocation{}, "unavailable", fmt.Errorf("%w: %w", domain.ErrProviderUnavailable, err)
	}

	resp, err := n.do(req)
	if err != nil {
		return domain.ResolvedLocation{}, "unavailable", fmt.Errorf("%w: %w", domain.ErrProviderUnavailable, err)
	}
	defer resp.Body.Close()

	var places []nominatimPlace
	if err := json.NewDecoder(io.LimitReader(resp.Body, maxResponseBytes)).Decode(&places); err != nil {
		return domain.ResolvedLocation{}, "malformed", fmt.Errorf("%w: decode search response: %w", domain.ErrMalformedCoordinate, err)
	}

	if len(places) == 0 {
		return domain.ResolvedLocation{}, "not_found", fmt.Errorf("%w: %q", domain.ErrNotFound, query)
	}

	first := places[0]
	coords, err := domain.ParseCoordinates(first.Lat.String(), first.Lon.String())
	if err != nil {
		return domain.ResolvedLocation{}, "malformed", fmt.Errorf("nominatim result for %q: %w", query, err)
	}

	return domain.ResolvedLocation{
		Coordinates:    coords,
		DisplayAddress: first.DisplayName,
	}, "found", nil
}
