package repositories

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"navigation-service/internal/adapters/cache"
	"navigation-service/internal/adapters/geocoding"
	"navigation-service/internal/domain"
	"os"
)

// Initialize the Postgres schema used by the geocode cache.
func InitSchema(ctx context.Context, db *sql.DB) error {
	if db == nil {
		return errors.New("init schema: DB is nil")
	}

	tx, err := db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("init schema: begin tx: %w", err)
	}
	defer func() { _ = tx.Rollback() }()

	createGeocodeCacheQuery := `
	CREATE TABLE IF NOT EXISTS geocode_cache (
        query TEXT PRIMARY KEY,
        lat DOUBLE PRECISION NOT NULL CHECK (lat BETWEEN -90 AND 90),
        lon DOUBLE PRECISION NOT NULL CHECK (lon BETWEEN -180 AND 180),
        display_address TEXT NOT NULL,
        resolved_at TIMESTAMPTZ NOT NULL DEFAULT now()
    );
	`

	createIndexQuery := `
	CREATE INDEX IF NOT EXISTS idx_geocode_cache_resolved_at
    ON geocode_cache(resolved_at);
	`

	statements := []string{
		createGeocodeCacheQuery,
		createIndexQuery,
	}

	for i, stmt := range statements {
		if _, err := tx.ExecContext(ctx, stmt); err != nil {
			return fmt.Errorf("init schema: exec statement #%d: %w", i+1, err)
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("init schema: commit tx: %w", err)
	}

	return nil
}

type PlaceSeed struct {
	Query          string  `json:"query"`
	Lat            float64 `json:"lat"`
	Lon            float64 `json:"lon"`
	DisplayAddress string  `json:"display_address"`
}

// LoadPlaceSeeds reads and validates a JSON array of PlaceSeed.
func LoadPlaceSeeds(jsonPath string) (map[string]domain.ResolvedLocation, error) {
	bytes, err := os.ReadFile(jsonPath)
	if err != nil {
		return nil, fmt.Errorf("seed places: read %q: %w", jsonPath, err)
	}

	var data []PlaceSeed
	if err := json.Unmarshal(bytes, &data); err != nil {
		return nil, fmt.Errorf("seed places: parse json: %w", err)
	}

	out := make(map[string]domain.ResolvedLocation, len(data))
	for i, item := range data {
		query := geocoding.CacheKey(item.Query)
		if query == "" {
			return nil, fmt.Errorf("seed places: item at index %d: query cannot be empty", i+1)
		}

		coords, err := domain.NewCoordinates(item.Lat, item.Lon)
		if err != nil {
			return nil, fmt.Errorf("seed places: item %q: %w", query, err)
		}

		if item.DisplayAddress == "" {
			return nil, fmt.Errorf("seed places: item %q: display_address cannot be empty", query)
		}

		out[query] = domain.ResolvedLocation{Coordinates: coords, DisplayAddress: item.DisplayAddress}
	}

	return out, nil
}

// Populate the geocode cache with known places from a JSON file so local
// runs can resolve them without calling the provider.
func SeedFromJSON(ctx context.Context, db *sql.DB, jsonPath string) (int, error) {
	places, err := LoadPlaceSeeds(jsonPath)
	if err != nil {
		return 0, err
	}

	if err := cache.NewSQLGeocodeCache(db).PutMany(ctx, places); err != nil {
		return 0, fmt.Errorf("seed places: %w", err)
	}

	return len(places), nil
}
