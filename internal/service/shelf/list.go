package shelf

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"github.com/glibera/readlogger/internal/domain"
)

// ListResult is one page of a user's shelf.
type ListResult struct {
	Entries []domain.UserBook
	Page    int
	Pages   int
	Total   int
}

// List returns a page of the actor's shelf, optionally filtered by status.
// Entries come back grouped by status and then newest reading first; each
// embedded book carries its authors.
func (s *Service) List(ctx context.Context, actorID uuid.UUID, input ListInput) (*ListResult, error) {
	page := input.Page
	if page < 1 {
		page = 1
	}
	limit := input.Limit
	if limit < 1 {
		limit = s.cfg.PageSize
	}
	if limit > s.cfg.MaxPageSize {
		limit = s.cfg.MaxPageSize
	}
	offset := (page - 1) * limit

	entries, err := s.entries.ListByUser(ctx, actorID, input.StatusID, limit, offset)
	if err != nil {
		return nil, fmt.Errorf("shelf.List: %w", err)
	}

	total, err := s.entries.CountByUser(ctx, actorID, input.StatusID)
	if err != nil {
		return nil, fmt.Errorf("shelf.List count: %w", err)
	}

	if err := s.attachAuthors(ctx, entries); err != nil {
		return nil, fmt.Errorf("shelf.List authors: %w", err)
	}

	return &ListResult{
		Entries: entries,
		Page:    page,
		Pages:   (total + limit - 1) / limit,
		Total:   total,
	}, nil
}

// attachAuthors fans the author rows for all listed books out in one query.
func (s *Service) attachAuthors(ctx context.Context, entries []domain.UserBook) error {
	if len(entries) == 0 {
		return nil
	}

	bookIDs := make([]uuid.UUID, 0, len(entries))
	seen := make(map[uuid.UUID]bool, len(entries))
	for _, e := range entries {
		if !seen[e.Book.ID] {
			seen[e.Book.ID] = true
			bookIDs = append(bookIDs, e.Book.ID)
		}
	}

	authors, err := s.books.AuthorsByBookIDs(ctx, bookIDs)
	if err != nil {
		return err
	}

	for i := range entries {
		entries[i].Book.Authors = authors[entries[i].Book.ID]
	}
	return nil
}
