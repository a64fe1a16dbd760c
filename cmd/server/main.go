// Package main implements the entry point for the recipes API server,
// which serves the recipe catalog and a token-gated per-user favorites
// view.
package main

import (
	"context"
	"log"

	"github.com/herocorp-io/recipes-api/internal/config"
	"github.com/herocorp-io/recipes-api/internal/platform/logger"
)

// main initializes configuration and logging, wires the application
// dependencies, and runs the HTTP server until it is signalled to stop.
func main() {
	app, err := initializeApp()
	if err != nil {
		log.Fatalf("Failed to initialize application: %v", err)
	}

	if err := app.startHTTPServer(context.Background(), app.setupRouter()); err != nil {
		app.logger.Error("Server exited with error", "error", err)
	}
}

// initializeApp loads configuration, sets up logging, and builds the
// application with its dependencies injected. Returns the application or
// any initialization error.
func initializeApp() (*application, error) {
	cfg, err := config.Load()
	if err != nil {
		return nil, err
	}

	appLogger, err := logger.Setup(cfg.Server)
	if err != nil {
		return nil, err
	}

	appLogger.Info("Server configuration loaded",
		"port", cfg.Server.Port,
		"log_level", cfg.Server.LogLevel,
		"token_lifetime_minutes", cfg.Auth.TokenLifetimeMinutes,
		"static_dir", cfg.Static.Dir)

	return newApplication(cfg, appLogger)
}
