package ui

import (
	"log/slog"
	"net/http"

	"lakeview/internal/catalog"
	"lakeview/internal/search"

	gomponents "maragu.dev/gomponents"
)

// Handler serves the server-rendered browsing UI.
type Handler struct {
	Store    *catalog.Store
	Registry *search.Registry
	Title    string
	Logger   *slog.Logger
}

// NewHandler creates the UI handler.
func NewHandler(store *catalog.Store, registry *search.Registry, title string, logger *slog.Logger) *Handler {
	if logger == nil {
		logger = slog.Default()
	}
	return &Handler{
		Store:    store,
		Registry: registry,
		Title:    title,
		Logger:   logger.With("component", "ui"),
	}
}

func renderHTML(w http.ResponseWriter, status int, node gomponents.Node) {
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.WriteHeader(status)
	_ = node.Render(w)
}
