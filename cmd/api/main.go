package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"hardware-inventory/config"
	"hardware-inventory/config/database"
	"hardware-inventory/config/storage"
	_ "hardware-inventory/docs" // Swagger docs
	"hardware-inventory/internal/httpserver"
	"hardware-inventory/pkg/log"
)

// @title       Hardware Inventory API
// @description Hardware types, hardware records and their images.
// @version     1
// @host        localhost:8080
// @schemes     http
func main() {
	// 1. Configuration
	cfg, err := config.Load()
	if err != nil {
		fmt.Println("Failed to load config: ", err)
		os.Exit(1)
	}

	// 2. Logger
	logger := log.Init(log.ZapConfig{
		Level:        cfg.Logger.Level,
		Mode:         cfg.Logger.Mode,
		Encoding:     cfg.Logger.Encoding,
		ColorEnabled: cfg.Logger.ColorEnabled,
	})

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	logger.Info(ctx, "Starting hardware inventory...")
	logger.Infof(ctx, "Environment: %s", cfg.Environment.Name)

	// 3. Database (connect + migrate)
	db, err := database.Connect(ctx, cfg.Database)
	if err != nil {
		logger.Error(ctx, "Failed to connect to database: ", err)
		return
	}
	defer db.Close()
	logger.Infof(ctx, "Database ready (driver: %s)", cfg.Database.Driver)

	// 4. Image backend
	imageRepo, err := storage.Connect(ctx, cfg.Storage, logger)
	if err != nil {
		logger.Error(ctx, "Failed to initialize image storage: ", err)
		return
	}
	logger.Infof(ctx, "Image storage ready (backend: %s)", cfg.Storage.Backend)

	// 5. HTTP Server
	httpServer, err := httpserver.New(logger, httpserver.Config{
		Logger:         logger,
		Port:           cfg.HTTPServer.Port,
		Mode:           cfg.HTTPServer.Mode,
		Environment:    cfg.Environment.Name,
		TrustedProxies: cfg.HTTPServer.TrustedProxies,
		DB:             db,
		TxTimeout:      cfg.Database.TxTimeout,
		Admin:          cfg.Admin,
		ImageRepo:      imageRepo,
		ImageConfig:    storage.ImageConfig(cfg.Storage),
		LocalImages:    storage.LocalImages(cfg.Storage),
	})
	if err != nil {
		logger.Error(ctx, "Failed to initialize HTTP server: ", err)
		return
	}

	// 6. Run
	if err := httpServer.Run(ctx); err != nil {
		logger.Error(ctx, "Failed to run server: ", err)
		return
	}

	logger.Info(ctx, "Server stopped gracefully")
}
