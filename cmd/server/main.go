package main

import (
	"context"
	"database/sql"
	"fmt"
	"log"
	"navigation-service/internal/adapters/cache"
	"navigation-service/internal/adapters/geocoding"
	"navigation-service/internal/adapters/repositories"
	"navigation-service/internal/adapters/sessions"
	"navigation-service/internal/api"
	"navigation-service/internal/config"
	"navigation-service/internal/platform/db"
	"navigation-service/internal/ports"
	"net/http"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/redis/go-redis/v9"
)

// main is the application composition root.
// It wires concrete adapters (Nominatim, Postgres cache, Redis sessions)
// behind ports and starts the HTTP server.
func main() {
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found (using environment variables)")
	}

	cfg, err := config.Load()
	if err != nil {
		log.Fatal(err)
	}

	nominatim, err := geocoding.NewNominatimGeocoder(geocoding.NominatimOptions{
		BaseURL:       cfg.NominatimURL,
		UserAgent:     cfg.NominatimUserAgent,
		Timeout:       cfg.GeocodeTimeout,
		RatePerSecond: cfg.GeocodeRatePerSecond,
		Burst:         cfg.GeocodeBurst,
	})
	if err != nil {
		log.Fatal(err)
	}

	var geocoder ports.Geocoder = nominatim
	if strings.TrimSpace(cfg.DatabaseURL) != "" {
		database, err := openCache(cfg.DatabaseURL)
		if err != nil {
			log.Fatal(err)
		}
		defer database.Close()

		geocoder = geocoding.NewCachedGeocoder(nominatim, cache.NewSQLGeocodeCache(database))
		log.Println("Geocode cache enabled backend=postgres")
	}

	store, closeStore, err := newSessionStore(cfg)
	if err != nil {
		log.Fatal(err)
	}
	defer closeStore()

	router := api.NewRouter(store, geocoder)

	// WriteTimeout leaves room for a throttled provider call on top of its own timeout.
	log.Printf("Server listening addr=:%s", cfg.Port)
	srv := &http.Server{
		Addr:              ":" + cfg.Port,
		Handler:           router,
		ReadHeaderTimeout: 5 * time.Second,
		ReadTimeout:       10 * time.Second,
		WriteTimeout:      cfg.GeocodeTimeout + 30*time.Second,
		IdleTimeout:       60 * time.Second,
	}
	log.Fatal(srv.ListenAndServe())
}

func openCache(databaseURL string) (*sql.DB, error) {
	database, err := db.Open(databaseURL)
	if err != nil {
		return nil, fmt.Errorf("open cache: %w", err)
	}

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := repositories.InitSchema(ctx, database); err != nil {
		database.Close()
		return nil, fmt.Errorf("open cache: %w", err)
	}

	return database, nil
}

// newSessionStore uses Redis when REDIS_ADDR is set and an in-process store otherwise.
func newSessionStore(cfg *config.Config) (ports.SessionStore, func(), error) {
	if strings.TrimSpace(cfg.RedisAddr) == "" {
		log.Println("Session store backend=memory")
		return sessions.NewMemoryStore(), func() {}, nil
	}

	client := redis.NewClient(&redis.Options{
		Addr:     cfg.RedisAddr,
		Password: cfg.RedisPassword,
		DB:       cfg.RedisDB,
	})

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := client.Ping(ctx).Err(); err != nil {
		client.Close()
		return nil, nil, fmt.Errorf("session store: ping redis %q: %w", cfg.RedisAddr, err)
	}

	log.Printf("Session store backend=redis addr=%s ttl=%s", cfg.RedisAddr, cfg.SessionTTL)
	return sessions.NewRedisStore(client, cfg.SessionTTL), func() { client.Close() }, nil
}
