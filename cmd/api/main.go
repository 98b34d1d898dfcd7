package main

import (
	"context"
	"errors"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"github.com/joho/godotenv"

	"sevencake/internal/config"
	"sevencake/internal/db"
	"sevencake/internal/httpserver"
	"sevencake/internal/migrate"
	cartrepo "sevencake/internal/repository/cart"
	categoryrepo "sevencake/internal/repository/category"
	orderrepo "sevencake/internal/repository/order"
	productrepo "sevencake/internal/repository/product"
	userrepo "sevencake/internal/repository/user"
	"sevencake/internal/seed"
	cartsvc "sevencake/internal/service/cart"
	categorysvc "sevencake/internal/service/category"
	ordersvc "sevencake/internal/service/order"
	productsvc "sevencake/internal/service/product"
	usersvc "sevencake/internal/service/user"
)

func main() {
	_ = godotenv.Load()
	cfg := config.FromEnv()
	logger := log.New(os.Stdout, "[api] ", log.LstdFlags|log.LUTC|log.Lshortfile)

	ctx := context.Background()
	sqlDB, err := db.Open(ctx, cfg.DBPath)
	if err != nil {
		logger.Fatalf("open store: %v", err)
	}
	defer sqlDB.Close()

	// Schema and seed rows are idempotent, so every start runs both.
	if err := migrate.Apply(sqlDB); err != nil {
		logger.Fatalf("apply migrations: %v", err)
	}
	if err := seed.Apply(ctx, sqlDB); err != nil {
		logger.Fatalf("apply seed: %v", err)
	}

	categoryRepo := categoryrepo.NewSQLite(sqlDB)
	productRepo := productrepo.NewSQLite(sqlDB)
	userRepo := userrepo.NewSQLite(sqlDB)
	cartRepo := cartrepo.NewSQLite(sqlDB)
	orderRepo := orderrepo.NewSQLite(sqlDB)

	deps := httpserver.Deps{
		UserSvc:     usersvc.New(userRepo, cfg.SessionTTL),
		CategorySvc: categorysvc.New(categoryRepo),
		ProductSvc:  productsvc.New(productRepo),
		CartSvc:     cartsvc.New(cartRepo, productRepo),
		OrderSvc:    ordersvc.New(orderRepo),
	}

	srv, err := httpserver.New(cfg.HTTPAddr, logger, sqlDB, deps, cfg.UploadDir)
	if err != nil {
		logger.Fatalf("init server: %v", err)
	}

	serverErr := make(chan error, 1)
	go func() {
		logger.Printf("starting http server on %s", cfg.HTTPAddr)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			serverErr <- err
		}
	}()

	stopCh := make(chan os.Signal, 1)
	signal.Notify(stopCh, syscall.SIGINT, syscall.SIGTERM)

	select {
	case sig := <-stopCh:
		logger.Printf("received signal %s, shutting down", sig)
	case err := <-serverErr:
		logger.Printf("server error: %v", err)
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.ShutdownTimeout)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		logger.Printf("graceful shutdown failed: %v", err)
	} else {
		logger.Printf("server stopped")
	}
}
