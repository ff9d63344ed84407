package rest

import (
	"context"
	"log/slog"
	"net/http"

	"github.com/glibera/readlogger/internal/domain"
)

// catalogService defines the minimal interface needed by CatalogHandler.
type catalogService interface {
	SearchAuthors(ctx context.Context, query string) ([]domain.Author, error)
	SearchBooks(ctx context.Context, query string) ([]domain.Book, error)
}

// CatalogHandler serves autosuggest endpoints for the shared catalog.
type CatalogHandler struct {
	svc catalogService
	log *slog.Logger
}

// NewCatalogHandler creates a CatalogHandler.
func NewCatalogHandler(svc catalogService, logger *slog.Logger) *CatalogHandler {
	return &CatalogHandler{svc: svc, log: logger.With("handler", "catalog")}
}

// SearchAuthors handles GET /api/authors/{query}.
func (h *CatalogHandler) SearchAuthors(w http.ResponseWriter, r *http.Request) {
	authors, err := h.svc.SearchAuthors(r.Context(), r.PathValue("query"))
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}

	payload := make([]authorPayload, 0, len(authors))
	for _, a := range authors {
		payload = append(payload, toAuthorPayload(a))
	}

	writeSuccess(w, http.StatusOK, "authors", payload, map[string]int{"count": len(payload)})
}

// SearchBooks handles GET /api/books/{query}.
func (h *CatalogHandler) SearchBooks(w http.ResponseWriter, r *http.Request) {
	books, err := h.svc.SearchBooks(r.Context(), r.PathValue("query"))
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}

	payload := make([]bookPayload, 0, len(books))
	for _, b := range books {
		payload = append(payload, toBookPayload(b))
	}

	writeSuccess(w, http.StatusOK, "books", payload, map[string]int{"count": len(payload)})
}
