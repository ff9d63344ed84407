// Package shelf implements a user's reading shelf: attaching books, tracking
// reading progress, and removing entries. Every mutation writes an audit
// record in the same transaction.
package shelf

import (
	"context"
	"log/slog"

	"github.com/google/uuid"

	"github.com/glibera/readlogger/internal/audit"
	"github.com/glibera/readlogger/internal/config"
	"github.com/glibera/readlogger/internal/domain"
)

// entryRepo defines the shelf entry repository interface needed by shelf service.
type entryRepo interface {
	GetByID(ctx context.Context, id uuid.UUID) (*domain.UserBook, error)
	Create(ctx context.Context, e *domain.UserBook) (*domain.UserBook, error)
	Update(ctx context.Context, e *domain.UserBook) (*domain.UserBook, error)
	Delete(ctx context.Context, id uuid.UUID) error
	ListByUser(ctx context.Context, userID uuid.UUID, statusID *int, limit, offset int) ([]domain.UserBook, error)
	CountByUser(ctx context.Context, userID uuid.UUID, statusID *int) (int, error)
}

// bookRepo defines the book repository interface needed by shelf service.
type bookRepo interface {
	GetByID(ctx context.Context, id uuid.UUID) (*domain.Book, error)
	Create(ctx context.Context, b *domain.Book) (*domain.Book, error)
	AuthorsByBookIDs(ctx context.Context, bookIDs []uuid.UUID) (map[uuid.UUID][]domain.Author, error)
}

// authorRepo defines the author repository interface needed by shelf service.
type authorRepo interface {
	Create(ctx context.Context, a *domain.Author) (*domain.Author, error)
}

// refRepo defines the dictionary lookup interface needed by shelf service.
type refRepo interface {
	GetStatus(ctx context.Context, id int) (*domain.Status, error)
	GetFormat(ctx context.Context, id int) (*domain.Format, error)
	GetLanguage(ctx context.Context, id int) (*domain.Language, error)
}

// txManager defines the transaction manager interface needed by shelf service.
type txManager interface {
	RunInTx(ctx context.Context, fn func(ctx context.Context) error) error
}

// recorder defines the audit trail interface needed by shelf service.
type recorder interface {
	Record(ctx context.Context, actorID uuid.UUID, action domain.AuditAction, table domain.AuditTable, newEntity audit.Normalizer, oldSnapshot map[string]any, exclude ...string) (uuid.UUID, error)
}

// Service implements shelf operations.
type Service struct {
	log     *slog.Logger
	entries entryRepo
	books   bookRepo
	authors authorRepo
	refs    refRepo
	tx      txManager
	audit   recorder
	cfg     config.APIConfig
}

// NewService creates a new shelf service instance.
func NewService(
	logger *slog.Logger,
	entries entryRepo,
	books bookRepo,
	authors authorRepo,
	refs refRepo,
	tx txManager,
	audit recorder,
	cfg config.APIConfig,
) *Service {
	return &Service{
		log:     logger.With("service", "shelf"),
		entries: entries,
		books:   books,
		authors: authors,
		refs:    refs,
		tx:      tx,
		audit:   audit,
		cfg:     cfg,
	}
}

// resolveRefs loads the dictionary rows named by the input ids. An unknown
// id is a client mistake, reported as a validation error on its field.
func (s *Service) resolveRefs(ctx context.Context, statusID, formatID, languageID int) (*domain.Status, *domain.Format, *domain.Language, error) {
	status, err := s.refs.GetStatus(ctx, statusID)
	if err != nil {
		return nil, nil, nil, refError(err, "status")
	}
	format, err := s.refs.GetFormat(ctx, formatID)
	if err != nil {
		return nil, nil, nil, refError(err, "format")
	}
	language, err := s.refs.GetLanguage(ctx, languageID)
	if err != nil {
		return nil, nil, nil, refError(err, "language")
	}
	return status, format, language, nil
}
