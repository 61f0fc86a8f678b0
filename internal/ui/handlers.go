package ui

import (
	"errors"
	"net/http"
	"net/url"

	"github.com/go-chi/chi/v5"

	"lakeview/internal/domain"
)

// pathParam returns a URL parameter with percent-escapes removed; table keys
// are escaped in locators.
func pathParam(r *http.Request, name string) string {
	raw := chi.URLParam(r, name)
	if unescaped, err := url.PathUnescape(raw); err == nil {
		return unescaped
	}
	return raw
}

func (h *Handler) Home(w http.ResponseWriter, r *http.Request) {
	renderHTML(w, http.StatusOK, OverviewPage(h.Title, h.Store.Catalogs()))
}

func (h *Handler) CatalogDetail(w http.ResponseWriter, r *http.Request) {
	c, err := h.Store.Catalog(pathParam(r, "catalogName"))
	if err != nil {
		h.renderServiceError(w, r, err)
		return
	}
	renderHTML(w, http.StatusOK, CatalogPage(h.Title, c))
}

func (h *Handler) DatabaseDetail(w http.ResponseWriter, r *http.Request) {
	catalogName := pathParam(r, "catalogName")
	c, err := h.Store.Catalog(catalogName)
	if err != nil {
		h.renderServiceError(w, r, err)
		return
	}
	db, err := h.Store.Database(catalogName, pathParam(r, "databaseName"))
	if err != nil {
		h.renderServiceError(w, r, err)
		return
	}
	renderHTML(w, http.StatusOK, DatabasePage(h.Title, c, db))
}

func (h *Handler) TableDetail(w http.ResponseWriter, r *http.Request) {
	catalogName := pathParam(r, "catalogName")
	databaseName := pathParam(r, "databaseName")

	c, err := h.Store.Catalog(catalogName)
	if err != nil {
		h.renderServiceError(w, r, err)
		return
	}
	db, err := h.Store.Database(catalogName, databaseName)
	if err != nil {
		h.renderServiceError(w, r, err)
		return
	}
	t, err := h.Store.Table(catalogName, databaseName, pathParam(r, "tableName"))
	if err != nil {
		h.renderServiceError(w, r, err)
		return
	}
	renderHTML(w, http.StatusOK, TablePage(h.Title, c, db, t))
}

func (h *Handler) renderServiceError(w http.ResponseWriter, r *http.Request, err error) {
	status := http.StatusInternalServerError
	title := "Unexpected Error"
	message := "An unexpected error occurred while loading this page."

	var notFound *domain.NotFoundError
	var validation *domain.ValidationError
	if errors.As(err, &notFound) {
		status = http.StatusNotFound
		title = "Not Found"
		message = notFound.Error()
	} else if errors.As(err, &validation) {
		status = http.StatusBadRequest
		title = "Invalid Request"
		message = validation.Error()
	} else {
		h.Logger.Error("page render failed", "path", r.URL.Path, "error", err)
	}

	renderHTML(w, status, errorPage(h.Title, title, message))
}
