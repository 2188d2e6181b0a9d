package main

import (
	"context"
	"log"
	"strings"

	"legalclarify-backend/config"
	"legalclarify-backend/repository"

	"github.com/jackc/pgx/v5/pgxpool"
)

func main() {
	config.LoadDotEnv()
	cfg := config.Load()

	ctx := context.Background()
	pool, err := pgxpool.New(ctx, cfg.DatabaseURL)
	if err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}
	defer pool.Close()

	if err := pool.Ping(ctx); err != nil {
		log.Fatalf("Failed to reach database: %v", err)
	}

	if err := repository.Migrate(ctx, pool); err != nil {
		log.Fatalf("Failed to create schema: %v", err)
	}

	log.Printf("✅ Schema ready: %s", strings.Join(repository.Tables(), ", "))
}
