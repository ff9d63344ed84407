// Package catalog implements autosuggest search over the shared author and
// book catalog.
package catalog

import (
	"context"
	"log/slog"

	"github.com/glibera/readlogger/internal/domain"
)

// authorRepo defines the author repository interface needed by catalog service.
type authorRepo interface {
	Search(ctx context.Context, query string, limit int) ([]domain.Author, error)
}

// bookRepo defines the book repository interface needed by catalog service.
type bookRepo interface {
	Search(ctx context.Context, query string, limit int) ([]domain.Book, error)
}

// Service implements catalog search operations.
type Service struct {
	log     *slog.Logger
	authors authorRepo
	books   bookRepo
	limit   int
}

// NewService creates a new catalog service instance. limit caps the number
// of suggestions per query.
func NewService(logger *slog.Logger, authors authorRepo, books bookRepo, limit int) *Service {
	return &Service{
		log:     logger.With("service", "catalog"),
		authors: authors,
		books:   books,
		limit:   limit,
	}
}
