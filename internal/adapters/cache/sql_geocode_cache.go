package cache

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"navigation-service/internal/domain"
	"navigation-service/internal/platform/obs"
	"strings"
)

// SQLGeocodeCache is a SQL-backed cache mapping normalized queries to
// resolved locations. It implements ports.GeocodeCache.
type SQLGeocodeCache struct {
	DB *sql.DB
}

func NewSQLGeocodeCache(db *sql.DB) *SQLGeocodeCache {
	return &SQLGeocodeCache{DB: db}
}

// Fetch the cached resolution for query, if any.
func (s *SQLGeocodeCache) Get(
	ctx context.Context,
	query string,
) (_ domain.ResolvedLocation, _ bool, err error) {
	defer obs.Time(ctx, "geocode.cache.Get")(&err)

	if s.DB == nil {
		return domain.ResolvedLocation{}, false, errors.New("geocode cache: db is nil")
	}

	query = strings.TrimSpace(query)
	if query == "" {
		return domain.ResolvedLocation{}, false, nil
	}

	q := `
	SELECT lat, lon, display_address
    FROM geocode_cache
    WHERE query = $1;
	`

	var lat, lon float64
	var addr string
	err = s.DB.QueryRowContext(ctx, q, query).Scan(&lat, &lon, &addr)
	if errors.Is(err, sql.ErrNoRows) {
		return domain.ResolvedLocation{}, false, nil
	}
	if err != nil {
		return domain.ResolvedLocation{}, false, fmt.Errorf("get geocode cache: query geocode_cache table: %w", err)
	}

	coords, err := domain.NewCoordinates(lat, lon)
	if err != nil {
		return domain.ResolvedLocation{}, false, fmt.Errorf("get geocode cache: row %q: %w", query, err)
	}

	return domain.ResolvedLocation{Coordinates: coords, DisplayAddress: addr}, true, nil
}

// Store a single query -> location mapping.
func (s *SQLGeocodeCache) Put(ctx context.Context, query string, loc domain.ResolvedLocation) error {
	return s.PutMany(ctx, map[string]domain.ResolvedLocation{query: loc})
}

// Store query -> location mappings in one transaction.
func (s *SQLGeocodeCache) PutMany(ctx context.Context, results map[string]domain.ResolvedLocation) error {
	if s.DB == nil {
		return errors.New("geocode cache: db is nil")
	}

	if len(results) == 0 {
		return nil
	}

	tx, err := s.DB.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("insert geocode cache: db begin: %w", err)
	}
	defer func() { _ = tx.Rollback() }()

	stmt, err := tx.PrepareContext(ctx, `
	INSERT INTO geocode_cache (query, lat, lon, display_address, resolved_at)
    VALUES ($1, $2, $3, $4, now())
	ON CONFLICT (query) DO UPDATE
	SET lat = EXCLUDED.lat,
		lon = EXCLUDED.lon,
		display_address = EXCLUDED.display_address,
		resolved_at = EXCLUDED.resolved_at;
	`)
	if err != nil {
		return fmt.Errorf("insert geocode cache: db prepare: %w", err)
	}
	defer stmt.Close()

	for query, loc := range results {
		if strings.TrimSpace(query) == "" {
			return fmt.Errorf("insert geocode cache: empty query key")
		}

		c := loc.Coordinates
		if _, err := stmt.ExecContext(ctx, query, c.Lat, c.Lon, loc.DisplayAddress); err != nil {
			return fmt.Errorf("insert geocode cache query=%q: %w", query, err)
		}
	}
	if err := tx.Commit(); err != nil {
		return fmt.Errorf("insert geocode cache commit: %w", err)
	}

	return nil
}
