// Package refdata implements lookups over the reference tables:
// reading statuses, book formats, and languages.
package refdata

import (
	"context"

	"github.com/Masterminds/squirrel"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	postgres "github.com/glibera/readlogger/internal/adapter/postgres"
	"github.com/glibera/readlogger/internal/domain"
)

// Repo provides reference data lookups backed by PostgreSQL.
type Repo struct {
	pool *pgxpool.Pool
}

// New creates a new reference data repository.
func New(pool *pgxpool.Pool) *Repo {
	return &Repo{pool: pool}
}

// ListStatuses returns all reading statuses ordered by ID.
func (r *Repo) ListStatuses(ctx context.Context) ([]domain.Status, error) {
	rows, err := r.list(ctx, "statuses", "id", "name", "translation_key")
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var statuses []domain.Status
	for rows.Next() {
		var s domain.Status
		if err := rows.Scan(&s.ID, &s.Name, &s.TranslationKey); err != nil {
			return nil, postgres.MapError(err, "status", uuid.Nil)
		}
		statuses = append(statuses, s)
	}
	if err := rows.Err(); err != nil {
		return nil, postgres.MapError(err, "status", uuid.Nil)
	}

	return statuses, nil
}

// ListFormats returns all book formats ordered by ID.
func (r *Repo) ListFormats(ctx context.Context) ([]domain.Format, error) {
	rows, err := r.list(ctx, "formats", "id", "name", "translation_key")
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var formats []domain.Format
	for rows.Next() {
		var f domain.Format
		if err := rows.Scan(&f.ID, &f.Name, &f.TranslationKey); err != nil {
			return nil, postgres.MapError(err, "format", uuid.Nil)
		}
		formats = append(formats, f)
	}
	if err := rows.Err(); err != nil {
		return nil, postgres.MapError(err, "format", uuid.Nil)
	}

	return formats, nil
}

// ListLanguages returns all languages ordered by ID.
func (r *Repo) ListLanguages(ctx context.Context) ([]domain.Language, error) {
	rows, err := r.list(ctx, "languages", "id", "symbol", "translation_key")
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var languages []domain.Language
	for rows.Next() {
		var l domain.Language
		if err := rows.Scan(&l.ID, &l.Symbol, &l.TranslationKey); err != nil {
			return nil, postgres.MapError(err, "language", uuid.Nil)
		}
		languages = append(languages, l)
	}
	if err := rows.Err(); err != nil {
		return nil, postgres.MapError(err, "language", uuid.Nil)
	}

	return languages, nil
}

// GetStatus returns one reading status by ID.
func (r *Repo) GetStatus(ctx context.Context, id int) (*domain.Status, error) {
	var s domain.Status
	err := r.getOne(ctx, "statuses", id, []string{"id", "name", "translation_key"},
		&s.ID, &s.Name, &s.TranslationKey)
	if err != nil {
		return nil, postgres.MapError(err, "status", uuid.Nil)
	}
	return &s, nil
}

// GetFormat returns one book format by ID.
func (r *Repo) GetFormat(ctx context.Context, id int) (*domain.Format, error) {
	var f domain.Format
	err := r.getOne(ctx, "formats", id, []string{"id", "name", "translation_key"},
		&f.ID, &f.Name, &f.TranslationKey)
	if err != nil {
		return nil, postgres.MapError(err, "format", uuid.Nil)
	}
	return &f, nil
}

// GetLanguage returns one language by ID.
func (r *Repo) GetLanguage(ctx context.Context, id int) (*domain.Language, error) {
	var l domain.Language
	err := r.getOne(ctx, "languages", id, []string{"id", "symbol", "translation_key"},
		&l.ID, &l.Symbol, &l.TranslationKey)
	if err != nil {
		return nil, postgres.MapError(err, "language", uuid.Nil)
	}
	return &l, nil
}

func (r *Repo) list(ctx context.Context, table string, columns ...string) (pgx.Rows, error) {
	q := postgres.QuerierFromCtx(ctx, r.pool)

	sql, args, err := postgres.Builder.
		Select(columns...).
		From(table).
		OrderBy("id ASC").
		ToSql()
	if err != nil {
		return nil, postgres.MapError(err, table, uuid.Nil)
	}

	res, err := q.Query(ctx, sql, args...)
	if err != nil {
		return nil, postgres.MapError(err, table, uuid.Nil)
	}

	return res, nil
}

func (r *Repo) getOne(ctx context.Context, table string, id int, columns []string, dest ...any) error {
	q := postgres.QuerierFromCtx(ctx, r.pool)

	sql, args, err := postgres.Builder.
		Select(columns...).
		From(table).
		Where(squirrel.Eq{"id": id}).
		ToSql()
	if err != nil {
		return err
	}

	return q.QueryRow(ctx, sql, args...).Scan(dest...)
}
