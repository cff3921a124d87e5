package main

import (
	"context"
	"flag"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gorilla/mux"

	httpapi "shelfrent-backend/internal/api/http"
	"shelfrent-backend/internal/config"
	"shelfrent-backend/internal/errorlog"
	"shelfrent-backend/internal/logger"
	"shelfrent-backend/internal/repository/postgres"
	"shelfrent-backend/internal/service"
)

func main() {
	// Parse command-line flags
	configPath := flag.String("config", "config/config.dev.yaml", "Path to configuration file")
	flag.Parse()

	// Load configuration
	cfg, err := config.Load(*configPath)
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	// Initialize logger
	logger.Initialize(cfg.Log.Level, cfg.Log.Format)
	logger.Info("Starting Shelf Rental Backend...", "log_level", cfg.Log.Level, "log_format", cfg.Log.Format)
	logger.Info("Server configuration", "address", cfg.GetServerAddress())
	logger.Info("Database configuration", "driver", cfg.Database.Driver, "host", cfg.Database.Host, "port", cfg.Database.Port, "database", cfg.Database.Database, "user", cfg.Database.User)

	// Initialize Database
	db, err := postgres.Open(cfg.Database.Driver, cfg.GetDatabaseConnectionString())
	if err != nil {
		log.Fatalf("Failed to open database: %v", err)
	}
	defer db.Close()

	// An unreachable store is not fatal; reads fall back to placeholder data
	pingCtx, cancel := context.WithTimeout(context.Background(), cfg.QueryTimeout())
	if err := db.PingContext(pingCtx); err != nil {
		logger.Warn("Database unreachable at startup, serving offline data until it recovers", "error", err)
	} else {
		logger.Info("Database connection established")
		if cfg.Database.BootstrapSchema {
			if err := postgres.EnsureSchema(pingCtx, db); err != nil {
				logger.Error("Failed to bootstrap schema", "error", err)
			}
		}
	}
	cancel()

	// Initialize Repositories
	store := postgres.NewStore(db)

	// Initialize Services
	inventorySvc := service.NewInventoryService(
		store.CustomerRepository,
		store.ShelfRepository,
		store.SaleRepository,
		service.InventoryOptions{
			Fallback:        cfg.FallbackData(),
			DisableFallback: !cfg.FallbackEnabled(),
			QueryTimeout:    cfg.QueryTimeout(),
			ErrorLog:        errorlog.NewFileLog(cfg.ErrorLog.Path),
			Pinger:          store,
		},
	)

	// Set up HTTP server
	router := mux.NewRouter()
	router.Use(httpapi.RequestLogger)
	httpapi.RegisterInventoryRoutes(router, inventorySvc)

	srv := &http.Server{
		Addr:              cfg.GetServerAddress(),
		Handler:           router,
		ReadHeaderTimeout: 10 * time.Second,
	}

	go func() {
		logger.Info("HTTP server listening", "address", srv.Addr)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Error("HTTP server error", "error", err)
			log.Fatalf("Failed to serve: %v", err)
		}
	}()

	// Wait for interrupt signal
	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, os.Interrupt, syscall.SIGTERM)
	<-sigChan

	logger.Info("Shutting down HTTP server...")
	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer shutdownCancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		logger.Error("HTTP server shutdown error", "error", err)
	}
	logger.Info("HTTP server stopped")
}
