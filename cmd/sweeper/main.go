package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"hardware-inventory/config"
	"hardware-inventory/config/database"
	"hardware-inventory/config/storage"
	catRepo "hardware-inventory/internal/category/repository/sqlstore"
	imageUC "hardware-inventory/internal/image/usecase"
	itemRepo "hardware-inventory/internal/item/repository/sqlstore"
	"hardware-inventory/internal/sweeper"
	sweeperCron "hardware-inventory/internal/sweeper/delivery/cron"
	sweeperUC "hardware-inventory/internal/sweeper/usecase"
	"hardware-inventory/pkg/log"
)

// main is the entry point for the background orphan sweeper.
// It removes stored images no record references and stale staged uploads.
//
// Pattern:
//  1. Initialize infra (same as cmd/api/main.go)
//  2. Create UseCases
//  3. Schedule the sweep, or run it once with --once
//  4. Run & graceful shutdown
func main() {
	once := flag.Bool("once", false, "run a single sweep and exit")
	flag.Parse()

	cfg, err := config.Load()
	if err != nil {
		fmt.Println("Failed to load config: ", err)
		os.Exit(1)
	}

	logger := log.Init(log.ZapConfig{
		Level:        cfg.Logger.Level,
		Mode:         cfg.Logger.Mode,
		Encoding:     cfg.Logger.Encoding,
		ColorEnabled: cfg.Logger.ColorEnabled,
	})

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	logger.Info(ctx, "Starting sweeper service...")

	// Infrastructure
	db, err := database.Connect(ctx, cfg.Database)
	if err != nil {
		logger.Error(ctx, "Failed to connect to database: ", err)
		return
	}
	defer db.Close()

	imageRepo, err := storage.Connect(ctx, cfg.Storage, logger)
	if err != nil {
		logger.Error(ctx, "Failed to initialize image storage: ", err)
		return
	}

	// UseCases
	img := imageUC.New(imageRepo, logger, storage.ImageConfig(cfg.Storage))
	uc := sweeperUC.New(
		catRepo.New(db, logger),
		itemRepo.New(db, logger),
		img,
		sweeper.Config{GracePeriod: cfg.Sweeper.GracePeriod},
		logger,
	)

	if *once {
		if _, err := uc.Sweep(ctx); err != nil {
			logger.Error(ctx, "Sweep failed: ", err)
			os.Exit(1)
		}
		return
	}

	scheduler, err := sweeperCron.New(logger, uc, cfg.Sweeper.Schedule)
	if err != nil {
		logger.Error(ctx, "Failed to schedule sweep: ", err)
		return
	}
	scheduler.Start()
	logger.Infof(ctx, "Sweeper running (schedule: %s, grace period: %s). Waiting for shutdown signal...", cfg.Sweeper.Schedule, cfg.Sweeper.GracePeriod)

	<-ctx.Done()
	scheduler.Stop()
	logger.Info(ctx, "Sweeper service stopped gracefully")
}
