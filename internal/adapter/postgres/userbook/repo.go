// Package userbook implements the shelf entry repository using PostgreSQL.
package userbook

import (
	"context"

	"github.com/Masterminds/squirrel"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	postgres "github.com/glibera/readlogger/internal/adapter/postgres"
	"github.com/glibera/readlogger/internal/domain"
)

// Repo provides shelf entry persistence backed by PostgreSQL.
type Repo struct {
	pool *pgxpool.Pool
}

// New creates a new shelf entry repository.
func New(pool *pgxpool.Pool) *Repo {
	return &Repo{pool: pool}
}

// selectEntries builds the joined select that hydrates a shelf entry with its
// book and reference rows. Authors are fanned out separately by the caller.
func selectEntries() squirrel.SelectBuilder {
	return postgres.Builder.
		Select(
			"ub.id", "ub.user_id",
			"ub.start_date", "ub.end_date", "ub.rating", "ub.notes",
			"ub.created_at", "ub.modified_at",
			"b.id", "b.title", "b.sub_title", "b.size",
			"s.id", "s.name", "s.translation_key",
			"f.id", "f.name", "f.translation_key",
			"l.id", "l.symbol", "l.translation_key",
		).
		From("user_books ub").
		Join("books b ON b.id = ub.book_id").
		Join("statuses s ON s.id = ub.status_id").
		Join("formats f ON f.id = ub.format_id").
		Join("languages l ON l.id = ub.language_id")
}

func scanEntry(row pgx.Row) (domain.UserBook, error) {
	var e domain.UserBook
	err := row.Scan(
		&e.ID, &e.UserID,
		&e.StartDate, &e.EndDate, &e.Rating, &e.Notes,
		&e.CreatedAt, &e.ModifiedAt,
		&e.Book.ID, &e.Book.Title, &e.Book.SubTitle, &e.Book.Size,
		&e.Status.ID, &e.Status.Name, &e.Status.TranslationKey,
		&e.Format.ID, &e.Format.Name, &e.Format.TranslationKey,
		&e.Language.ID, &e.Language.Symbol, &e.Language.TranslationKey,
	)
	return e, err
}

// GetByID returns a shelf entry by primary key.
func (r *Repo) GetByID(ctx context.Context, id uuid.UUID) (*domain.UserBook, error) {
	q := postgres.QuerierFromCtx(ctx, r.pool)

	sql, args, err := selectEntries().Where(squirrel.Eq{"ub.id": id}).ToSql()
	if err != nil {
		return nil, postgres.MapError(err, "user_book", id)
	}

	e, err := scanEntry(q.QueryRow(ctx, sql, args...))
	if err != nil {
		return nil, postgres.MapError(err, "user_book", id)
	}

	return &e, nil
}

// Create inserts a new shelf entry and returns it fully hydrated.
func (r *Repo) Create(ctx context.Context, e *domain.UserBook) (*domain.UserBook, error) {
	q := postgres.QuerierFromCtx(ctx, r.pool)

	sql, args, err := postgres.Builder.
		Insert("user_books").
		Columns("id", "user_id", "book_id", "status_id", "format_id", "language_id",
			"start_date", "end_date", "rating", "notes").
		Values(e.ID, e.UserID, e.Book.ID, e.Status.ID, e.Format.ID, e.Language.ID,
			e.StartDate, e.EndDate, e.Rating, e.Notes).
		ToSql()
	if err != nil {
		return nil, postgres.MapError(err, "user_book", e.ID)
	}

	if _, err := q.Exec(ctx, sql, args...); err != nil {
		return nil, postgres.MapError(err, "user_book", e.ID)
	}

	return r.GetByID(ctx, e.ID)
}

// Update rewrites the mutable columns of a shelf entry and returns it
// fully hydrated.
func (r *Repo) Update(ctx context.Context, e *domain.UserBook) (*domain.UserBook, error) {
	q := postgres.QuerierFromCtx(ctx, r.pool)

	sql, args, err := postgres.Builder.
		Update("user_books").
		SetMap(map[string]any{
			"status_id":   e.Status.ID,
			"format_id":   e.Format.ID,
			"language_id": e.Language.ID,
			"start_date":  e.StartDate,
			"end_date":    e.EndDate,
			"rating":      e.Rating,
			"notes":       e.Notes,
			"modified_at": squirrel.Expr("now()"),
		}).
		Where(squirrel.Eq{"id": e.ID}).
		ToSql()
	if err != nil {
		return nil, postgres.MapError(err, "user_book", e.ID)
	}

	tag, err := q.Exec(ctx, sql, args...)
	if err != nil {
		return nil, postgres.MapError(err, "user_book", e.ID)
	}
	if tag.RowsAffected() == 0 {
		return nil, postgres.MapError(domain.ErrNotFound, "user_book", e.ID)
	}

	return r.GetByID(ctx, e.ID)
}

// Delete removes a shelf entry.
func (r *Repo) Delete(ctx context.Context, id uuid.UUID) error {
	q := postgres.QuerierFromCtx(ctx, r.pool)

	sql, args, err := postgres.Builder.
		Delete("user_books").
		Where(squirrel.Eq{"id": id}).
		ToSql()
	if err != nil {
		return postgres.MapError(err, "user_book", id)
	}

	tag, err := q.Exec(ctx, sql, args...)
	if err != nil {
		return postgres.MapError(err, "user_book", id)
	}
	if tag.RowsAffected() == 0 {
		return postgres.MapError(domain.ErrNotFound, "user_book", id)
	}

	return nil
}

// ListByUser returns the user's shelf entries, optionally filtered by status,
// ordered by status then most recently started.
func (r *Repo) ListByUser(ctx context.Context, userID uuid.UUID, statusID *int, limit, offset int) ([]domain.UserBook, error) {
	q := postgres.QuerierFromCtx(ctx, r.pool)

	query := selectEntries().
		Where(squirrel.Eq{"ub.user_id": userID}).
		OrderBy("ub.status_id ASC", "ub.start_date DESC NULLS LAST", "ub.created_at DESC").
		Limit(uint64(limit)).
		Offset(uint64(offset))
	if statusID != nil {
		query = query.Where(squirrel.Eq{"ub.status_id": *statusID})
	}

	sql, args, err := query.ToSql()
	if err != nil {
		return nil, postgres.MapError(err, "user_book", userID)
	}

	rows, err := q.Query(ctx, sql, args...)
	if err != nil {
		return nil, postgres.MapError(err, "user_book", userID)
	}
	defer rows.Close()

	var entries []domain.UserBook
	for rows.Next() {
		e, err := scanEntry(rows)
		if err != nil {
			return nil, postgres.MapError(err, "user_book", userID)
		}
		entries = append(entries, e)
	}
	if err := rows.Err(); err != nil {
		return nil, postgres.MapError(err, "user_book", userID)
	}

	return entries, nil
}

// CountByUser returns how many shelf entries the user has, optionally
// filtered by status.
func (r *Repo) CountByUser(ctx context.Context, userID uuid.UUID, statusID *int) (int, error) {
	q := postgres.QuerierFromCtx(ctx, r.pool)

	query := postgres.Builder.
		Select("count(*)").
		From("user_books").
		Where(squirrel.Eq{"user_id": userID})
	if statusID != nil {
		query = query.Where(squirrel.Eq{"status_id": *statusID})
	}

	sql, args, err := query.ToSql()
	if err != nil {
		return 0, postgres.MapError(err, "user_book", userID)
	}

	var count int
	if err := q.QueryRow(ctx, sql, args...).Scan(&count); err != nil {
		return 0, postgres.MapError(err, "user_book", userID)
	}

	return count, nil
}
