package main

import (
	"net/http"
	"os"
	"path/filepath"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"

	"github.com/herocorp-io/recipes-api/internal/api"
	"github.com/herocorp-io/recipes-api/internal/api/docs"
	apiMiddleware "github.com/herocorp-io/recipes-api/internal/api/middleware"
	"github.com/herocorp-io/recipes-api/internal/api/shared"
)

// setupRouter creates and configures the application router with all
// routes and middleware. Every request passes the identity middleware,
// which only annotates the context; protected routes additionally pass
// the identity guard.
func (app *application) setupRouter() http.Handler {
	r := chi.NewRouter()

	// Apply standard middleware
	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(middleware.Recoverer)
	r.Use(apiMiddleware.TraceMiddleware)
	r.Use(cors.Handler(cors.Options{
		AllowedOrigins: app.config.CORS.AllowedOrigins,
		AllowedMethods: []string{"GET", "POST", "OPTIONS"},
		AllowedHeaders: []string{"Accept", "Authorization", "Content-Type"},
	}))

	// Create API handlers using the application's services
	authHandler := api.NewAuthHandler(app.userStore, app.tokenService, app.passwordVerifier)
	recipeHandler := api.NewRecipeHandler(app.recipeStore, app.userStore)
	authMiddleware := apiMiddleware.NewAuthMiddleware(app.tokenService)

	// Identity attachment runs on every request, before route dispatch.
	r.Use(authMiddleware.Identity)

	// Register routes
	r.Route("/api", func(r chi.Router) {
		// Public endpoints
		r.Get("/recipes", recipeHandler.List)
		r.Get("/recipes/{idOrSlug}", recipeHandler.Get)
		r.Post("/login", authHandler.Login)
		r.Get("/docs", docs.Handler())

		// Protected routes
		r.Group(func(r chi.Router) {
			r.Use(authMiddleware.RequireIdentity)
			r.Get("/favorites", recipeHandler.Favorites)
		})
	})

	// Health check endpoint
	r.Get("/health", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		if _, err := w.Write([]byte("OK")); err != nil {
			app.logger.Error("Failed to write health check response", "error", err)
		}
	})

	// Optional static file serving at the site root. Requests that match
	// no file fall through to the same plain 404 as unmatched routes.
	if app.config.Static.Dir != "" {
		r.Handle("/*", staticHandler(app.config.Static.Dir))
	}

	// Any unmatched route is a plain 404
	r.NotFound(func(w http.ResponseWriter, r *http.Request) {
		shared.RespondWithText(w, r, http.StatusNotFound, "Not found")
	})

	return r
}

// staticHandler serves files from dir, with directory requests resolving
// to their index.html. Anything that does not resolve to a regular file
// gets the API's plain 404 body instead of the file server's default.
func staticHandler(dir string) http.Handler {
	fileServer := http.FileServer(http.Dir(dir))
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		path := filepath.Join(dir, filepath.Clean("/"+r.URL.Path))
		info, err := os.Stat(path)
		if err == nil && info.IsDir() {
			info, err = os.Stat(filepath.Join(path, "index.html"))
		}
		if err != nil || info.IsDir() {
			shared.RespondWithText(w, r, http.StatusNotFound, "Not found")
			return
		}
		fileServer.ServeHTTP(w, r)
	})
}
