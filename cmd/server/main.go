// Package main is the entry point for the foodshare API server.
package main

import (
	"context"
	"fmt"
	"log"
	"log/slog"

	"github.com/phrazzld/foodshare-api/internal/config"
	"github.com/phrazzld/foodshare-api/internal/platform/logger"
)

func main() {
	log.Println("Foodshare API Server starting...")

	cfg, err := loadAppConfig()
	if err != nil {
		log.Fatalf("Failed to initialize: %v", err)
	}

	appLogger, err := logger.Setup(cfg.Server)
	if err != nil {
		log.Fatalf("Failed to set up logger: %v", err)
	}

	ctx := context.Background()
	app, err := newApplication(ctx, cfg, appLogger)
	if err != nil {
		appLogger.Error("failed to initialize application", slog.String("error", err.Error()))
		log.Fatalf("Failed to initialize application: %v", err)
	}

	if err := app.Run(); err != nil {
		appLogger.Error("server stopped with error", slog.String("error", err.Error()))
		log.Fatalf("Server error: %v", err)
	}
}

// loadAppConfig loads the configuration and logs the non-secret parts of it.
func loadAppConfig() (*config.Config, error) {
	cfg, err := config.Load()
	if err != nil {
		return nil, fmt.Errorf("failed to load configuration: %w", err)
	}

	slog.Info("Server configuration loaded",
		"port", cfg.Server.Port,
		"log_level", cfg.Server.LogLevel,
		"database_driver", cfg.Database.Driver,
		"auth_provider", cfg.Auth.Provider)

	return cfg, nil
}
