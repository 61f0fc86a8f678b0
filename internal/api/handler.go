// Package api exposes the catalog metadata and search over JSON, for
// programmatic consumers of a running lakeview server.
package api

import (
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"

	"lakeview/internal/catalog"
	"lakeview/internal/domain"
	"lakeview/internal/search"
	"lakeview/internal/searchbox"
)

// Handler serves the JSON API.
type Handler struct {
	Store    *catalog.Store
	Registry *search.Registry
	Logger   *slog.Logger
}

// NewHandler creates the API handler.
func NewHandler(store *catalog.Store, registry *search.Registry, logger *slog.Logger) *Handler {
	if logger == nil {
		logger = slog.Default()
	}
	return &Handler{
		Store:    store,
		Registry: registry,
		Logger:   logger.With("component", "api"),
	}
}

// MountRoutes attaches the JSON API under the given router (mounted at /api).
func MountRoutes(r chi.Router, h *Handler) {
	r.Get("/catalogs", h.ListCatalogs)
	r.Get("/catalogs/{catalogName}", h.GetCatalog)
	r.Get("/search", h.Search)
}

// SearchMatch is the wire shape of one ranked search hit.
type SearchMatch struct {
	Kind     string                    `json:"kind"`
	Database string                    `json:"database"`
	Table    string                    `json:"table,omitempty"`
	Column   string                    `json:"column,omitempty"`
	TypeInfo string                    `json:"type_info,omitempty"`
	Locator  string                    `json:"locator"`
	Score    float64                   `json:"score"`
	Fields   map[string][]search.Range `json:"fields"`
}

type catalogSummary struct {
	Name      string `json:"name"`
	Databases int    `json:"databases"`
	Tables    int    `json:"tables"`
}

func (h *Handler) ListCatalogs(w http.ResponseWriter, r *http.Request) {
	catalogs := h.Store.Catalogs()
	summaries := make([]catalogSummary, 0, len(catalogs))
	for _, c := range catalogs {
		tables := 0
		for _, db := range c.Databases {
			tables += len(db.Tables)
		}
		summaries = append(summaries, catalogSummary{
			Name:      c.Name,
			Databases: len(c.Databases),
			Tables:    tables,
		})
	}
	h.writeJSON(w, http.StatusOK, map[string]any{"catalogs": summaries})
}

func (h *Handler) GetCatalog(w http.ResponseWriter, r *http.Request) {
	c, err := h.Store.Catalog(chi.URLParam(r, "catalogName"))
	if err != nil {
		h.writeError(w, err)
		return
	}
	h.writeJSON(w, http.StatusOK, c)
}

// Search runs a ranked query against one catalog's index. An unknown catalog
// yields an empty match list rather than an error.
func (h *Handler) Search(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()

	limit := searchbox.DefaultLimit
	if raw := q.Get("limit"); raw != "" {
		parsed, err := strconv.Atoi(raw)
		if err != nil || parsed < 1 || parsed > 50 {
			h.writeError(w, domain.ErrValidation("limit must be an integer in [1, 50]"))
			return
		}
		limit = parsed
	}

	matches := h.Registry.Search(q.Get("catalog"), q.Get("q"), limit)
	out := make([]SearchMatch, 0, len(matches))
	for _, m := range matches {
		out = append(out, SearchMatch{
			Kind:     string(m.Item.Kind),
			Database: m.Item.Database,
			Table:    m.Item.Table,
			Column:   m.Item.Column,
			TypeInfo: m.Item.TypeInfo,
			Locator:  m.Item.Locator,
			Score:    m.Score,
			Fields:   m.Fields,
		})
	}
	h.writeJSON(w, http.StatusOK, map[string]any{"matches": out})
}

func (h *Handler) writeJSON(w http.ResponseWriter, status int, payload any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(payload); err != nil {
		h.Logger.Error("encode response", "error", err)
	}
}

func (h *Handler) writeError(w http.ResponseWriter, err error) {
	status := http.StatusInternalServerError

	var notFound *domain.NotFoundError
	var validation *domain.ValidationError
	if errors.As(err, &notFound) {
		status = http.StatusNotFound
	} else if errors.As(err, &validation) {
		status = http.StatusBadRequest
	} else {
		h.Logger.Error("request failed", "error", err)
	}

	h.writeJSON(w, status, map[string]any{"error": err.Error()})
}
