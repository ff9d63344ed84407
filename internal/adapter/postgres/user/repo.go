// Package user implements the User repository using PostgreSQL.
package user

import (
	"context"

	"github.com/Masterminds/squirrel"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"

	postgres "github.com/glibera/readlogger/internal/adapter/postgres"
	"github.com/glibera/readlogger/internal/domain"
)

var userColumns = []string{
	"id", "email", "password_hash", "roles", "language",
	"is_confirmed", "confirm_token", "created_at", "modified_at",
}

// Repo provides user persistence backed by PostgreSQL.
type Repo struct {
	pool *pgxpool.Pool
}

// New creates a new user repository.
func New(pool *pgxpool.Pool) *Repo {
	return &Repo{pool: pool}
}

// GetByID returns a user by primary key.
func (r *Repo) GetByID(ctx context.Context, id uuid.UUID) (*domain.User, error) {
	return r.getOne(ctx, squirrel.Eq{"id": id}, id)
}

// GetByEmail returns a user by email address.
func (r *Repo) GetByEmail(ctx context.Context, email string) (*domain.User, error) {
	return r.getOne(ctx, squirrel.Eq{"email": email}, uuid.Nil)
}

// GetByConfirmToken returns the user holding the given confirmation token.
func (r *Repo) GetByConfirmToken(ctx context.Context, token string) (*domain.User, error) {
	return r.getOne(ctx, squirrel.Eq{"confirm_token": token}, uuid.Nil)
}

func (r *Repo) getOne(ctx context.Context, where squirrel.Eq, id uuid.UUID) (*domain.User, error) {
	q := postgres.QuerierFromCtx(ctx, r.pool)

	sql, args, err := postgres.Builder.
		Select(userColumns...).
		From("users").
		Where(where).
		ToSql()
	if err != nil {
		return nil, postgres.MapError(err, "user", id)
	}

	var u domain.User
	err = q.QueryRow(ctx, sql, args...).Scan(
		&u.ID, &u.Email, &u.PasswordHash, &u.Roles, &u.Language,
		&u.IsConfirmed, &u.ConfirmToken, &u.CreatedAt, &u.ModifiedAt,
	)
	if err != nil {
		return nil, postgres.MapError(err, "user", id)
	}

	return &u, nil
}

// Create inserts a new user and returns the persisted domain.User.
func (r *Repo) Create(ctx context.Context, u *domain.User) (*domain.User, error) {
	q := postgres.QuerierFromCtx(ctx, r.pool)

	sql, args, err := postgres.Builder.
		Insert("users").
		Columns("id", "email", "password_hash", "roles", "language", "is_confirmed", "confirm_token").
		Values(u.ID, u.Email, u.PasswordHash, u.Roles, u.Language, u.IsConfirmed, u.ConfirmToken).
		Suffix("RETURNING created_at, modified_at").
		ToSql()
	if err != nil {
		return nil, postgres.MapError(err, "user", u.ID)
	}

	created := *u
	if err := q.QueryRow(ctx, sql, args...).Scan(&created.CreatedAt, &created.ModifiedAt); err != nil {
		return nil, postgres.MapError(err, "user", u.ID)
	}

	return &created, nil
}

// Confirm marks the user as confirmed and clears the confirmation token.
func (r *Repo) Confirm(ctx context.Context, id uuid.UUID) error {
	return r.update(ctx, id, map[string]any{
		"is_confirmed":  true,
		"confirm_token": nil,
	})
}

// UpdateConfirmToken replaces the user's confirmation token.
func (r *Repo) UpdateConfirmToken(ctx context.Context, id uuid.UUID, token string) error {
	return r.update(ctx, id, map[string]any{
		"confirm_token": token,
	})
}

func (r *Repo) update(ctx context.Context, id uuid.UUID, set map[string]any) error {
	q := postgres.QuerierFromCtx(ctx, r.pool)

	set["modified_at"] = squirrel.Expr("now()")

	sql, args, err := postgres.Builder.
		Update("users").
		SetMap(set).
		Where(squirrel.Eq{"id": id}).
		ToSql()
	if err != nil {
		return postgres.MapError(err, "user", id)
	}

	tag, err := q.Exec(ctx, sql, args...)
	if err != nil {
		return postgres.MapError(err, "user", id)
	}
	if tag.RowsAffected() == 0 {
		return postgres.MapError(domain.ErrNotFound, "user", id)
	}

	return nil
}
