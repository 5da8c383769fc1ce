package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"home-inventory/config"
	_ "home-inventory/docs" // Swagger docs
	"home-inventory/internal/httpserver"
	itemSQLite "home-inventory/internal/item/repository/sqlite"
	"home-inventory/pkg/imagestore"
	"home-inventory/pkg/log"
)

// @title       Home Inventory API
// @description Personal-belongings catalog: items, rooms, favorites and view stats.
// @version     1
// @host        localhost:8080
// @schemes     http
func main() {
	// 1. Configuration
	cfg, err := config.Load()
	if err != nil {
		fmt.Println("Failed to load config: ", err)
		return
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

	logger.Info(ctx, "Starting Home Inventory...")
	logger.Infof(ctx, "Environment: %s", cfg.Environment.Name)
	logger.Infof(ctx, "Database: %s", cfg.Database.Path)

	// 3. Item catalog store
	db, err := itemSQLite.Open(cfg.Database.Path)
	if err != nil {
		logger.Fatalf(ctx, "Failed to open catalog database: %v", err)
	}
	defer db.Close()

	itemRepo, err := itemSQLite.New(db, logger)
	if err != nil {
		logger.Fatalf(ctx, "Failed to initialize item repository: %v", err)
	}

	// 4. Image store
	imageStore, err := imagestore.NewDisk(cfg.Upload.Dir, cfg.Upload.MaxSizeMB)
	if err != nil {
		logger.Fatalf(ctx, "Failed to initialize image store: %v", err)
	}

	// 5. HTTP server
	srv, err := httpserver.New(logger, httpserver.Config{
		Port:        cfg.HTTPServer.Port,
		Mode:        cfg.HTTPServer.Mode,
		Environment: cfg.Environment.Name,
		AppConfig:   cfg,
		ItemRepo:    itemRepo,
		ImageStore:  imageStore,
		UploadDir:   imageStore.Dir(),
	})
	if err != nil {
		logger.Fatalf(ctx, "Failed to create HTTP server: %v", err)
	}

	if err := srv.Run(ctx); err != nil {
		logger.Fatalf(ctx, "HTTP server stopped: %v", err)
	}

	logger.Info(ctx, "Home Inventory stopped")
}
