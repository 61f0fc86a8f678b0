package ui

import (
	"io/fs"
	"net/http"

	"github.com/go-chi/chi/v5"

	"lakeview/internal/ui/assets"
)

// MountRoutes attaches the browsing UI to the router. Page paths double as
// the resource locators emitted by the search index, so they stay at the
// root: /{catalog}, /{catalog}/{database}, /{catalog}/{database}/{table}.
func MountRoutes(r chi.Router, h *Handler) {
	staticFS, err := fs.Sub(assets.StaticFS(), "static")
	if err == nil {
		r.Handle("/static/*", http.StripPrefix("/static/", http.FileServer(http.FS(staticFS))))
	}

	r.Get("/", h.Home)
	r.Get("/search/results", h.SearchResults)
	r.Get("/{catalogName}", h.CatalogDetail)
	r.Get("/{catalogName}/{databaseName}", h.DatabaseDetail)
	r.Get("/{catalogName}/{databaseName}/{tableName}", h.TableDetail)
}
