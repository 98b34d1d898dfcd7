package main

import (
	"context"
	"log"
	"os"

	"github.com/joho/godotenv"

	"sevencake/internal/config"
	"sevencake/internal/db"
	"sevencake/internal/seed"
)

func main() {
	_ = godotenv.Load()
	cfg := config.FromEnv()
	logger := log.New(os.Stdout, "[seed] ", log.LstdFlags|log.LUTC|log.Lshortfile)

	ctx := context.Background()
	sqlDB, err := db.Open(ctx, cfg.DBPath)
	if err != nil {
		logger.Fatalf("open store: %v", err)
	}
	defer sqlDB.Close()

	if err := seed.Apply(ctx, sqlDB); err != nil {
		logger.Fatalf("seed apply: %v", err)
	}

	logger.Println("seed applied")
}
