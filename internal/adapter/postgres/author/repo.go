// Package author implements the Author repository using PostgreSQL.
package author

import (
	"context"

	"github.com/Masterminds/squirrel"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"

	postgres "github.com/glibera/readlogger/internal/adapter/postgres"
	"github.com/glibera/readlogger/internal/domain"
)

// Repo provides author persistence backed by PostgreSQL.
type Repo struct {
	pool *pgxpool.Pool
}

// New creates a new author repository.
func New(pool *pgxpool.Pool) *Repo {
	return &Repo{pool: pool}
}

// GetByID returns an author by primary key.
func (r *Repo) GetByID(ctx context.Context, id uuid.UUID) (*domain.Author, error) {
	q := postgres.QuerierFromCtx(ctx, r.pool)

	sql, args, err := postgres.Builder.
		Select("id", "first_name", "last_name").
		From("authors").
		Where(squirrel.Eq{"id": id}).
		ToSql()
	if err != nil {
		return nil, postgres.MapError(err, "author", id)
	}

	var a domain.Author
	if err := q.QueryRow(ctx, sql, args...).Scan(&a.ID, &a.FirstName, &a.LastName); err != nil {
		return nil, postgres.MapError(err, "author", id)
	}

	return &a, nil
}

// Create inserts a new author.
func (r *Repo) Create(ctx context.Context, a *domain.Author) (*domain.Author, error) {
	q := postgres.QuerierFromCtx(ctx, r.pool)

	sql, args, err := postgres.Builder.
		Insert("authors").
		Columns("id", "first_name", "last_name").
		Values(a.ID, a.FirstName, a.LastName).
		ToSql()
	if err != nil {
		return nil, postgres.MapError(err, "author", a.ID)
	}

	if _, err := q.Exec(ctx, sql, args...); err != nil {
		return nil, postgres.MapError(err, "author", a.ID)
	}

	created := *a
	return &created, nil
}

// Search returns authors whose first or last name contains the query,
// case-insensitively, ordered by last name.
func (r *Repo) Search(ctx context.Context, query string, limit int) ([]domain.Author, error) {
	q := postgres.QuerierFromCtx(ctx, r.pool)

	pattern := "%" + query + "%"
	sql, args, err := postgres.Builder.
		Select("id", "first_name", "last_name").
		From("authors").
		Where(squirrel.Or{
			squirrel.ILike{"first_name": pattern},
			squirrel.ILike{"last_name": pattern},
		}).
		OrderBy("last_name ASC", "first_name ASC").
		Limit(uint64(limit)).
		ToSql()
	if err != nil {
		return nil, postgres.MapError(err, "author", uuid.Nil)
	}

	rows, err := q.Query(ctx, sql, args...)
	if err != nil {
		return nil, postgres.MapError(err, "author", uuid.Nil)
	}
	defer rows.Close()

	var authors []domain.Author
	for rows.Next() {
		var a domain.Author
		if err := rows.Scan(&a.ID, &a.FirstName, &a.LastName); err != nil {
			return nil, postgres.MapError(err, "author", uuid.Nil)
		}
		authors = append(authors, a)
	}
	if err := rows.Err(); err != nil {
		return nil, postgres.MapError(err, "author", uuid.Nil)
	}

	return authors, nil
}
