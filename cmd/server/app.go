package main

import (
	"fmt"
	"log/slog"

	"github.com/herocorp-io/recipes-api/internal/config"
	"github.com/herocorp-io/recipes-api/internal/platform/memstore"
	"github.com/herocorp-io/recipes-api/internal/service/auth"
	"github.com/herocorp-io/recipes-api/internal/store"
)

// application holds the configuration and the wired dependencies of the
// running server. Everything it references is read-only after
// construction, so handlers share it freely across requests.
type application struct {
	config *config.Config
	logger *slog.Logger

	// Stores (using interfaces for proper abstraction)
	userStore   store.UserStore
	recipeStore store.RecipeStore

	// Service interfaces
	tokenService     auth.TokenService
	passwordVerifier auth.PasswordVerifier
}

// newApplication wires the application's dependencies from configuration.
// The signing secret and the stores travel inside the returned struct;
// no component reads them from globals.
func newApplication(cfg *config.Config, logger *slog.Logger) (*application, error) {
	tokenService, err := auth.NewTokenService(cfg.Auth)
	if err != nil {
		return nil, fmt.Errorf("failed to create token service: %w", err)
	}

	return &application{
		config:           cfg,
		logger:           logger,
		userStore:        memstore.NewUserStore(memstore.SeedUsers()),
		recipeStore:      memstore.NewRecipeStore(memstore.SeedRecipes()),
		tokenService:     tokenService,
		passwordVerifier: auth.NewPlaintextVerifier(),
	}, nil
}
