// Package app wires the loaded catalog, search indexes and HTTP handlers
// into a runnable server.
package app

import (
	"fmt"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"
	chimw "github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"

	"lakeview/internal/api"
	"lakeview/internal/catalog"
	"lakeview/internal/config"
	"lakeview/internal/search"
	"lakeview/internal/ui"
)

// Deps holds the external dependencies that main() must provide.
type Deps struct {
	Cfg    *config.Config
	Logger *slog.Logger
}

// App holds the fully-wired application.
type App struct {
	Store    *catalog.Store
	Registry *search.Registry
	Router   chi.Router
	Logger   *slog.Logger
}

// New loads the snapshot from cfg.DataPath, builds the per-catalog search
// indexes and assembles the router.
func New(deps Deps) (*App, error) {
	cfg := deps.Cfg
	logger := deps.Logger
	if logger == nil {
		logger = slog.Default()
	}

	store, err := catalog.Load(cfg.DataPath)
	if err != nil {
		return nil, fmt.Errorf("load catalog %s: %w", cfg.DataPath, err)
	}

	registry := search.BuildRegistry(store.Snapshot())
	for _, name := range registry.Catalogs() {
		idx, ok := registry.Index(name)
		if !ok {
			continue
		}
		logger.Info("catalog indexed",
			"catalog", name,
			"coarse_items", len(idx.Coarse()),
			"fine_items", len(idx.Fine()))
	}

	r := chi.NewRouter()
	r.Use(chimw.RequestID)
	r.Use(chimw.RealIP)
	r.Use(chimw.Recoverer)
	r.Use(cors.Handler(cors.Options{
		AllowedOrigins: cfg.CORSAllowedOrigins,
		AllowedMethods: []string{http.MethodGet, http.MethodOptions},
	}))

	r.Route("/api", func(r chi.Router) {
		api.MountRoutes(r, api.NewHandler(store, registry, logger))
	})
	ui.MountRoutes(r, ui.NewHandler(store, registry, cfg.SiteTitle, logger))

	return &App{
		Store:    store,
		Registry: registry,
		Router:   r,
		Logger:   logger,
	}, nil
}
