package main

import (
	"context"
	"flag"
	"log"
	"os"

	"github.com/joho/godotenv"

	"sevencake/internal/config"
	"sevencake/internal/db"
	"sevencake/internal/importer"
	"sevencake/internal/migrate"
	productrepo "sevencake/internal/repository/product"
)

func main() {
	_ = godotenv.Load()
	cfg := config.FromEnv()
	logger := log.New(os.Stdout, "[importer] ", log.LstdFlags|log.LUTC|log.Lshortfile)

	csvPath := flag.String("csv", "", "path to the product CSV file")
	flag.Parse()
	if *csvPath == "" {
		logger.Fatal("usage: importer -csv <file>")
	}

	f, err := os.Open(*csvPath)
	if err != nil {
		logger.Fatalf("open csv: %v", err)
	}
	defer f.Close()

	ctx := context.Background()
	sqlDB, err := db.Open(ctx, cfg.DBPath)
	if err != nil {
		logger.Fatalf("open store: %v", err)
	}
	defer sqlDB.Close()

	if err := migrate.Apply(sqlDB); err != nil {
		logger.Fatalf("apply migrations: %v", err)
	}

	imp := importer.NewCSVImporter(f, productrepo.NewSQLite(sqlDB))
	n, err := imp.Run(ctx)
	if err != nil {
		logger.Fatalf("import failed after %d products: %v", n, err)
	}

	logger.Printf("imported %d products", n)
}
