package testhelper

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/glibera/readlogger/internal/domain"
)

// uniqueSuffix returns a short unique string for generating non-conflicting test data.
func uniqueSuffix() string {
	return uuid.New().String()[:8]
}

// SeedUser creates a confirmed user with default values.
// Returns a filled domain.User.
func SeedUser(t *testing.T, pool *pgxpool.Pool) domain.User {
	t.Helper()
	ctx := context.Background()

	suffix := uniqueSuffix()
	now := time.Now().UTC().Truncate(time.Microsecond)
	user := domain.User{
		ID:           uuid.New(),
		Email:        "reader-" + suffix + "@example.com",
		PasswordHash: "$2a$10$seeded-hash-" + suffix,
		Roles:        []string{domain.RoleUser},
		Language:     "en",
		IsConfirmed:  true,
		CreatedAt:    now,
		ModifiedAt:   now,
	}

	_, err := pool.Exec(ctx,
		`INSERT INTO users (id, email, password_hash, roles, language, is_confirmed, created_at, modified_at)
		 VALUES ($1, $2, $3, $4, $5, $6, $7, $8)`,
		user.ID, user.Email, user.PasswordHash, user.Roles, user.Language, user.IsConfirmed, user.CreatedAt, user.ModifiedAt,
	)
	if err != nil {
		t.Fatalf("testhelper: SeedUser insert user: %v", err)
	}

	return user
}

// SeedAuthor creates an author with a unique last name.
func SeedAuthor(t *testing.T, pool *pgxpool.Pool) domain.Author {
	t.Helper()
	ctx := context.Background()

	suffix := uniqueSuffix()
	author := domain.Author{
		ID:        uuid.New(),
		FirstName: "First" + suffix,
		LastName:  "Last" + suffix,
	}

	_, err := pool.Exec(ctx,
		`INSERT INTO authors (id, first_name, last_name) VALUES ($1, $2, $3)`,
		author.ID, author.FirstName, author.LastName,
	)
	if err != nil {
		t.Fatalf("testhelper: SeedAuthor insert: %v", err)
	}

	return author
}

// SeedBook creates a book linked to one seeded author.
func SeedBook(t *testing.T, pool *pgxpool.Pool) domain.Book {
	t.Helper()
	ctx := context.Background()

	author := SeedAuthor(t, pool)

	suffix := uniqueSuffix()
	subTitle := "Subtitle " + suffix
	size := 320
	book := domain.Book{
		ID:       uuid.New(),
		Title:    "Title " + suffix,
		SubTitle: &subTitle,
		Size:     &size,
		Authors:  []domain.Author{author},
	}

	_, err := pool.Exec(ctx,
		`INSERT INTO books (id, title, sub_title, size) VALUES ($1, $2, $3, $4)`,
		book.ID, book.Title, book.SubTitle, book.Size,
	)
	if err != nil {
		t.Fatalf("testhelper: SeedBook insert book: %v", err)
	}

	_, err = pool.Exec(ctx,
		`INSERT INTO author_book (author_id, book_id) VALUES ($1, $2)`,
		author.ID, book.ID,
	)
	if err != nil {
		t.Fatalf("testhelper: SeedBook link author: %v", err)
	}

	return book
}

// SeedUserBook creates a shelf entry for the given user over a freshly
// seeded book, in status planned with paper format and English language.
func SeedUserBook(t *testing.T, pool *pgxpool.Pool, userID uuid.UUID) domain.UserBook {
	t.Helper()
	ctx := context.Background()

	book := SeedBook(t, pool)

	now := time.Now().UTC().Truncate(time.Microsecond)
	entry := domain.UserBook{
		ID:     uuid.New(),
		UserID: userID,
		Book:   book,
		Status: domain.Status{
			ID:             domain.StatusPlanned,
			Name:           "planned",
			TranslationKey: "status.planned",
		},
		Format: domain.Format{
			ID:             domain.FormatPaper,
			Name:           "paper",
			TranslationKey: "format.paper",
		},
		Language: domain.Language{
			ID:             1,
			Symbol:         "en",
			TranslationKey: "language.en",
		},
		CreatedAt:  now,
		ModifiedAt: now,
	}

	_, err := pool.Exec(ctx,
		`INSERT INTO user_books (id, user_id, book_id, status_id, format_id, language_id, start_date, end_date, rating, notes, created_at, modified_at)
		 VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12)`,
		entry.ID, entry.UserID, entry.Book.ID, entry.Status.ID, entry.Format.ID, entry.Language.ID,
		entry.StartDate, entry.EndDate, entry.Rating, entry.Notes, entry.CreatedAt, entry.ModifiedAt,
	)
	if err != nil {
		t.Fatalf("testhelper: SeedUserBook insert: %v", err)
	}

	return entry
}
