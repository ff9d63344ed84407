package domain

import (
	"time"

	"github.com/google/uuid"
)

// Reading statuses, fixed dictionary rows seeded by migrations.
const (
	StatusPlanned   = 1
	StatusDuring    = 2
	StatusFinished  = 3
	StatusAbandoned = 4
)

// Reading formats.
const (
	FormatPaper     = 1
	FormatEBook     = 2
	FormatAudiobook = 3
)

// Status is a reading-progress dictionary entry.
type Status struct {
	ID             int
	Name           string
	TranslationKey string
}

// Format is a book-format dictionary entry.
type Format struct {
	ID             int
	Name           string
	TranslationKey string
}

// Language is a language dictionary entry.
type Language struct {
	ID             int
	Symbol         string
	TranslationKey string
}

// StatusRequiresStartDate reports whether the given status only makes sense
// with a start date (reading has begun).
func StatusRequiresStartDate(statusID int) bool {
	switch statusID {
	case StatusDuring, StatusFinished, StatusAbandoned:
		return true
	}
	return false
}

// StatusRequiresEndDate reports whether the given status only makes sense
// with an end date (reading has ended).
func StatusRequiresEndDate(statusID int) bool {
	switch statusID {
	case StatusFinished, StatusAbandoned:
		return true
	}
	return false
}

// UserBook is one entry on a user's shelf: a book plus per-user reading
// progress. Book, Status, Format, and Language are populated from joins.
type UserBook struct {
	ID         uuid.UUID
	UserID     uuid.UUID
	Book       Book
	Status     Status
	Format     Format
	Language   Language
	StartDate  *time.Time
	EndDate    *time.Time
	Rating     *int
	Notes      *string
	CreatedAt  time.Time
	ModifiedAt time.Time
}

// AuditID returns the identifier used for the audit record's record_id.
func (ub *UserBook) AuditID() uuid.UUID { return ub.ID }

// NormalizeAudit projects the shelf entry into its audit-log representation.
// Reference fields (book, status, format, language) become nested objects
// carrying their own id, so the change-set builder can compare by identity.
func (ub *UserBook) NormalizeAudit() map[string]any {
	return map[string]any{
		"id":     ub.ID,
		"userId": ub.UserID,
		"book": map[string]any{
			"id":       ub.Book.ID,
			"title":    ub.Book.Title,
			"subTitle": ub.Book.SubTitle,
			"size":     ub.Book.Size,
		},
		"status": map[string]any{
			"id":             ub.Status.ID,
			"translationKey": ub.Status.TranslationKey,
		},
		"format": map[string]any{
			"id":             ub.Format.ID,
			"translationKey": ub.Format.TranslationKey,
		},
		"language": map[string]any{
			"id":             ub.Language.ID,
			"translationKey": ub.Language.TranslationKey,
		},
		"startDate": ub.StartDate,
		"endDate":   ub.EndDate,
		"rating":    ub.Rating,
		"notes":     ub.Notes,
	}
}
