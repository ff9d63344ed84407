package shelf

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"github.com/glibera/readlogger/internal/domain"
)

// Get returns one of the actor's shelf entries with its book authors.
// Entries owned by other users are reported as ErrNotFound.
func (s *Service) Get(ctx context.Context, actorID, entryID uuid.UUID) (*domain.UserBook, error) {
	entry, err := s.ownedEntry(ctx, actorID, entryID)
	if err != nil {
		return nil, fmt.Errorf("shelf.Get: %w", err)
	}

	authors, err := s.books.AuthorsByBookIDs(ctx, []uuid.UUID{entry.Book.ID})
	if err != nil {
		return nil, fmt.Errorf("shelf.Get authors: %w", err)
	}
	entry.Book.Authors = authors[entry.Book.ID]

	return entry, nil
}

// ownedEntry loads an entry and checks it belongs to the actor. Ownership
// failures are indistinguishable from missing rows on purpose.
func (s *Service) ownedEntry(ctx context.Context, actorID, entryID uuid.UUID) (*domain.UserBook, error) {
	if entryID == uuid.Nil {
		return nil, domain.NewValidationError("id", "required")
	}

	entry, err := s.entries.GetByID(ctx, entryID)
	if err != nil {
		return nil, err
	}
	if entry.UserID != actorID {
		return nil, domain.ErrNotFound
	}

	return entry, nil
}
