package domain

import (
	"github.com/google/uuid"
)

// Author is a shared catalog entry identifying a book author.
type Author struct {
	ID        uuid.UUID
	FirstName string
	LastName  string
}

// AuditID returns the identifier used for the audit record's record_id.
func (a *Author) AuditID() uuid.UUID { return a.ID }

// NormalizeAudit projects the author into its audit-log representation.
func (a *Author) NormalizeAudit() map[string]any {
	return map[string]any{
		"id":        a.ID,
		"firstName": a.FirstName,
		"lastName":  a.LastName,
	}
}

// Book is a shared catalog entry. Authors is populated by joins where the
// caller needs it; it is not stored on the book row itself.
type Book struct {
	ID       uuid.UUID
	Title    string
	SubTitle *string
	Size     *int
	Authors  []Author
}

// AuditID returns the identifier used for the audit record's record_id.
func (b *Book) AuditID() uuid.UUID { return b.ID }

// NormalizeAudit projects the book into its audit-log representation.
// Authors are linked through author_book and audited separately.
func (b *Book) NormalizeAudit() map[string]any {
	return map[string]any{
		"id":       b.ID,
		"title":    b.Title,
		"subTitle": b.SubTitle,
		"size":     b.Size,
	}
}
