package main

import (
	"context"
	"log"
	"os"
	"time"

	"github.com/joho/godotenv"

	"resmatch/internal/config"
	"resmatch/internal/database/migration"
	dbpostgres "resmatch/internal/database/postgres"
	"resmatch/internal/seeder"
)

func main() {
	_ = godotenv.Load()

	logger := log.New(os.Stdout, "", log.LstdFlags)

	cfg, err := config.Load()
	if err != nil {
		logger.Fatalf("failed to load config: %v", err)
	}

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	db, err := dbpostgres.Connect(ctx, cfg.Database)
	if err != nil {
		logger.Fatalf("failed to connect: %v", err)
	}
	defer db.Close()

	if err := migration.Run(ctx, db.SQLDB()); err != nil {
		logger.Fatalf("failed to migrate: %v", err)
	}
	if err := seeder.Run(ctx, db, logger); err != nil {
		logger.Fatalf("failed to seed: %v", err)
	}
}
