// Package book implements the Book repository using PostgreSQL.
package book

import (
	"context"

	"github.com/Masterminds/squirrel"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"

	postgres "github.com/glibera/readlogger/internal/adapter/postgres"
	"github.com/glibera/readlogger/internal/domain"
)

// Repo provides book persistence backed by PostgreSQL.
type Repo struct {
	pool *pgxpool.Pool
}

// New creates a new book repository.
func New(pool *pgxpool.Pool) *Repo {
	return &Repo{pool: pool}
}

// GetByID returns a book with its authors.
func (r *Repo) GetByID(ctx context.Context, id uuid.UUID) (*domain.Book, error) {
	q := postgres.QuerierFromCtx(ctx, r.pool)

	sql, args, err := postgres.Builder.
		Select("id", "title", "sub_title", "size").
		From("books").
		Where(squirrel.Eq{"id": id}).
		ToSql()
	if err != nil {
		return nil, postgres.MapError(err, "book", id)
	}

	var b domain.Book
	if err := q.QueryRow(ctx, sql, args...).Scan(&b.ID, &b.Title, &b.SubTitle, &b.Size); err != nil {
		return nil, postgres.MapError(err, "book", id)
	}

	authorsByBook, err := r.AuthorsByBookIDs(ctx, []uuid.UUID{id})
	if err != nil {
		return nil, err
	}
	b.Authors = authorsByBook[id]

	return &b, nil
}

// Create inserts a new book and links the given authors to it.
// The authors must already exist.
func (r *Repo) Create(ctx context.Context, b *domain.Book) (*domain.Book, error) {
	q := postgres.QuerierFromCtx(ctx, r.pool)

	sql, args, err := postgres.Builder.
		Insert("books").
		Columns("id", "title", "sub_title", "size").
		Values(b.ID, b.Title, b.SubTitle, b.Size).
		ToSql()
	if err != nil {
		return nil, postgres.MapError(err, "book", b.ID)
	}

	if _, err := q.Exec(ctx, sql, args...); err != nil {
		return nil, postgres.MapError(err, "book", b.ID)
	}

	for _, a := range b.Authors {
		if err := r.linkAuthor(ctx, a.ID, b.ID); err != nil {
			return nil, err
		}
	}

	created := *b
	return &created, nil
}

func (r *Repo) linkAuthor(ctx context.Context, authorID, bookID uuid.UUID) error {
	q := postgres.QuerierFromCtx(ctx, r.pool)

	sql, args, err := postgres.Builder.
		Insert("author_book").
		Columns("author_id", "book_id").
		Values(authorID, bookID).
		Suffix("ON CONFLICT (author_id, book_id) DO NOTHING").
		ToSql()
	if err != nil {
		return postgres.MapError(err, "book", bookID)
	}

	if _, err := q.Exec(ctx, sql, args...); err != nil {
		return postgres.MapError(err, "book", bookID)
	}

	return nil
}

// Search returns books whose title contains the query, case-insensitively,
// with their authors populated.
func (r *Repo) Search(ctx context.Context, query string, limit int) ([]domain.Book, error) {
	q := postgres.QuerierFromCtx(ctx, r.pool)

	sql, args, err := postgres.Builder.
		Select("id", "title", "sub_title", "size").
		From("books").
		Where(squirrel.ILike{"title": "%" + query + "%"}).
		OrderBy("title ASC").
		Limit(uint64(limit)).
		ToSql()
	if err != nil {
		return nil, postgres.MapError(err, "book", uuid.Nil)
	}

	rows, err := q.Query(ctx, sql, args...)
	if err != nil {
		return nil, postgres.MapError(err, "book", uuid.Nil)
	}
	defer rows.Close()

	var books []domain.Book
	var ids []uuid.UUID
	for rows.Next() {
		var b domain.Book
		if err := rows.Scan(&b.ID, &b.Title, &b.SubTitle, &b.Size); err != nil {
			return nil, postgres.MapError(err, "book", uuid.Nil)
		}
		books = append(books, b)
		ids = append(ids, b.ID)
	}
	if err := rows.Err(); err != nil {
		return nil, postgres.MapError(err, "book", uuid.Nil)
	}

	if len(books) == 0 {
		return books, nil
	}

	authorsByBook, err := r.AuthorsByBookIDs(ctx, ids)
	if err != nil {
		return nil, err
	}
	for i := range books {
		books[i].Authors = authorsByBook[books[i].ID]
	}

	return books, nil
}

// AuthorsByBookIDs returns the authors of each given book in a single query.
func (r *Repo) AuthorsByBookIDs(ctx context.Context, bookIDs []uuid.UUID) (map[uuid.UUID][]domain.Author, error) {
	if len(bookIDs) == 0 {
		return map[uuid.UUID][]domain.Author{}, nil
	}

	q := postgres.QuerierFromCtx(ctx, r.pool)

	sql, args, err := postgres.Builder.
		Select("ab.book_id", "a.id", "a.first_name", "a.last_name").
		From("author_book ab").
		Join("authors a ON a.id = ab.author_id").
		Where(squirrel.Eq{"ab.book_id": bookIDs}).
		OrderBy("a.last_name ASC", "a.first_name ASC").
		ToSql()
	if err != nil {
		return nil, postgres.MapError(err, "book", uuid.Nil)
	}

	rows, err := q.Query(ctx, sql, args...)
	if err != nil {
		return nil, postgres.MapError(err, "book", uuid.Nil)
	}
	defer rows.Close()

	result := make(map[uuid.UUID][]domain.Author)
	for rows.Next() {
		var bookID uuid.UUID
		var a domain.Author
		if err := rows.Scan(&bookID, &a.ID, &a.FirstName, &a.LastName); err != nil {
			return nil, postgres.MapError(err, "book", uuid.Nil)
		}
		result[bookID] = append(result[bookID], a)
	}
	if err := rows.Err(); err != nil {
		return nil, postgres.MapError(err, "book", uuid.Nil)
	}

	return result, nil
}
