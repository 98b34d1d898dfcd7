package main

import (
	"context"
	"log"
	"os"

	"github.com/joho/godotenv"

	"sevencake/internal/config"
	"sevencake/internal/db"
	"sevencake/internal/migrate"
)

func main() {
	_ = godotenv.Load()
	cfg := config.FromEnv()
	logger := log.New(os.Stdout, "[migrate] ", log.LstdFlags|log.LUTC|log.Lshortfile)

	sqlDB, err := db.Open(context.Background(), cfg.DBPath)
	if err != nil {
		logger.Fatalf("open store: %v", err)
	}
	defer sqlDB.Close()

	if err := migrate.Apply(sqlDB); err != nil {
		logger.Fatalf("apply migrations: %v", err)
	}

	logger.Println("migrations applied")
}
