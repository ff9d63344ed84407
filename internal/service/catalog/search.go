package catalog

import (
	"context"
	"fmt"
	"strings"

	"github.com/glibera/readlogger/internal/domain"
)

const maxQueryLength = 100

// normalizeQuery trims the search fragment and rejects queries that are
// empty or long enough to be garbage.
func normalizeQuery(query string) (string, error) {
	query = strings.TrimSpace(query)
	if query == "" {
		return "", domain.NewValidationError("query", "required")
	}
	if len(query) > maxQueryLength {
		return "", domain.NewValidationError("query", fmt.Sprintf("must be at most %d characters", maxQueryLength))
	}
	return query, nil
}

// SearchAuthors returns authors whose first or last name contains the
// fragment, case-insensitively.
func (s *Service) SearchAuthors(ctx context.Context, query string) ([]domain.Author, error) {
	query, err := normalizeQuery(query)
	if err != nil {
		return nil, err
	}

	authors, err := s.authors.Search(ctx, query, s.limit)
	if err != nil {
		return nil, fmt.Errorf("catalog.SearchAuthors: %w", err)
	}

	return authors, nil
}

// SearchBooks returns books whose title contains the fragment,
// case-insensitively, each with its authors.
func (s *Service) SearchBooks(ctx context.Context, query string) ([]domain.Book, error) {
	query, err := normalizeQuery(query)
	if err != nil {
		return nil, err
	}

	books, err := s.books.Search(ctx, query, s.limit)
	if err != nil {
		return nil, fmt.Errorf("catalog.SearchBooks: %w", err)
	}

	return books, nil
}
