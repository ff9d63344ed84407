package shelf

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/google/uuid"

	"github.com/glibera/readlogger/internal/domain"
)

// Create attaches a book to the actor's shelf. When the input names an
// existing catalog book it is reused; otherwise the book and its authors are
// created first, inside the same transaction as the shelf entry. Every
// created row gets its own audit record.
func (s *Service) Create(ctx context.Context, actorID uuid.UUID, input CreateInput) (*domain.UserBook, error) {
	if err := input.Validate(); err != nil {
		return nil, err
	}

	status, format, language, err := s.resolveRefs(ctx, input.StatusID, input.FormatID, input.LanguageID)
	if err != nil {
		return nil, err
	}

	var created *domain.UserBook

	err = s.tx.RunInTx(ctx, func(txCtx context.Context) error {
		book, err := s.resolveBook(txCtx, actorID, input.Book)
		if err != nil {
			return err
		}

		entry := &domain.UserBook{
			ID:        uuid.New(),
			UserID:    actorID,
			Book:      *book,
			Status:    *status,
			Format:    *format,
			Language:  *language,
			StartDate: input.StartDate,
			EndDate:   input.EndDate,
			Rating:    input.Rating,
			Notes:     input.Notes,
		}

		saved, err := s.entries.Create(txCtx, entry)
		if err != nil {
			return fmt.Errorf("create entry: %w", err)
		}
		saved.Book.Authors = book.Authors

		if _, err := s.audit.Record(txCtx, actorID, domain.AuditActionCreate, domain.AuditTableUserBook, saved, nil); err != nil {
			return fmt.Errorf("audit entry creation: %w", err)
		}

		created = saved
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("shelf.Create: %w", err)
	}

	s.log.InfoContext(ctx, "shelf entry created",
		slog.String("entry_id", created.ID.String()),
		slog.String("user_id", actorID.String()),
		slog.String("book_id", created.Book.ID.String()))

	return created, nil
}

// resolveBook returns the catalog book the new entry points at, creating it
// together with its authors when the input carries no existing id.
func (s *Service) resolveBook(ctx context.Context, actorID uuid.UUID, input BookInput) (*domain.Book, error) {
	if input.ID != nil {
		book, err := s.books.GetByID(ctx, *input.ID)
		if err != nil {
			return nil, fmt.Errorf("get book: %w", err)
		}
		return book, nil
	}

	authors := make([]domain.Author, 0, len(input.Authors))
	for _, a := range input.Authors {
		author, err := s.authors.Create(ctx, &domain.Author{
			ID:        uuid.New(),
			FirstName: a.FirstName,
			LastName:  a.LastName,
		})
		if err != nil {
			return nil, fmt.Errorf("create author: %w", err)
		}
		if _, err := s.audit.Record(ctx, actorID, domain.AuditActionCreate, domain.AuditTableAuthor, author, nil); err != nil {
			return nil, fmt.Errorf("audit author creation: %w", err)
		}
		authors = append(authors, *author)
	}

	book, err := s.books.Create(ctx, &domain.Book{
		ID:       uuid.New(),
		Title:    input.Title,
		SubTitle: input.SubTitle,
		Size:     input.Size,
		Authors:  authors,
	})
	if err != nil {
		return nil, fmt.Errorf("create book: %w", err)
	}
	if _, err := s.audit.Record(ctx, actorID, domain.AuditActionCreate, domain.AuditTableBook, book, nil); err != nil {
		return nil, fmt.Errorf("audit book creation: %w", err)
	}

	return book, nil
}
