package main

import (
	"context"
	"database/sql"
	"log"
	"navigation-service/internal/adapters/repositories"
	"navigation-service/internal/config"
	"navigation-service/internal/platform/db"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

func main() {
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found (using environment variables)")
	}

	cfg, err := config.Load()
	if err != nil {
		log.Fatal(err)
	}
	if strings.TrimSpace(cfg.DatabaseURL) == "" {
		log.Fatal("DATABASE_URL is required")
	}

	db, err := db.Open(cfg.DatabaseURL)
	if err != nil {
		log.Fatal(err)
	}
	defer db.Close()

	if err := initAndSeed(db, cfg.SeedPath); err != nil {
		log.Fatal(err)
	}
}

func initAndSeed(db *sql.DB, seedPath string) error {
	ctx, cancel := context.WithTimeout(context.Background(), time.Minute)
	defer cancel()

	log.Println("Initializing database schema...")
	if err := repositories.InitSchema(ctx, db); err != nil {
		return err
	}
	log.Println("Schema ready.")

	log.Printf("Seeding geocode cache path=%s", seedPath)
	n, err := repositories.SeedFromJSON(ctx, db, seedPath)
	if err != nil {
		return err
	}
	log.Printf("Seeding complete. places=%d", n)

	return nil
}
