package shelf

import (
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/glibera/readlogger/internal/domain"
)

const maxNotesLength = 2000

// AuthorInput describes a new author to create alongside a new book.
type AuthorInput struct {
	FirstName string
	LastName  string
}

// BookInput names the book to attach. Either ID references an existing
// catalog book, or Title/Authors describe a new one to create.
type BookInput struct {
	ID       *uuid.UUID
	Title    string
	SubTitle *string
	Size     *int
	Authors  []AuthorInput
}

// CreateInput holds parameters for the create operation.
type CreateInput struct {
	Book       BookInput
	StatusID   int
	FormatID   int
	LanguageID int
	StartDate  *time.Time
	EndDate    *time.Time
	Rating     *int
	Notes      *string
}

// Validate validates the create input.
func (i CreateInput) Validate() error {
	var errs []domain.FieldError

	errs = append(errs, i.Book.validate()...)
	errs = append(errs, validateProgress(i.StatusID, i.FormatID, i.LanguageID,
		i.StartDate, i.EndDate, i.Rating, i.Notes)...)

	if len(errs) > 0 {
		return &domain.ValidationError{Errors: errs}
	}
	return nil
}

func (b BookInput) validate() []domain.FieldError {
	var errs []domain.FieldError

	if b.ID != nil {
		if *b.ID == uuid.Nil {
			errs = append(errs, domain.FieldError{Field: "book.id", Message: "required"})
		}
		return errs
	}

	if b.Title == "" {
		errs = append(errs, domain.FieldError{Field: "book.title", Message: "required"})
	}
	if b.Size != nil && *b.Size <= 0 {
		errs = append(errs, domain.FieldError{Field: "book.size", Message: "must be positive"})
	}
	if len(b.Authors) == 0 {
		errs = append(errs, domain.FieldError{Field: "book.authors", Message: "at least one author is required"})
	}
	for idx, a := range b.Authors {
		if a.FirstName == "" {
			errs = append(errs, domain.FieldError{
				Field:   fmt.Sprintf("book.authors[%d].firstName", idx),
				Message: "required",
			})
		}
		if a.LastName == "" {
			errs = append(errs, domain.FieldError{
				Field:   fmt.Sprintf("book.authors[%d].lastName", idx),
				Message: "required",
			})
		}
	}

	return errs
}

// UpdateInput holds parameters for the update operation. PUT semantics:
// all mutable fields are rewritten, absent optional fields clear the column.
type UpdateInput struct {
	StatusID   int
	FormatID   int
	LanguageID int
	StartDate  *time.Time
	EndDate    *time.Time
	Rating     *int
	Notes      *string
}

// Validate validates the update input.
func (i UpdateInput) Validate() error {
	errs := validateProgress(i.StatusID, i.FormatID, i.LanguageID,
		i.StartDate, i.EndDate, i.Rating, i.Notes)

	if len(errs) > 0 {
		return &domain.ValidationError{Errors: errs}
	}
	return nil
}

// validateProgress checks the reading-progress fields shared by create and
// update, including the status-vs-dates coupling: once reading has begun the
// entry needs a start date, and once it has ended an end date too.
func validateProgress(statusID, formatID, languageID int, startDate, endDate *time.Time, rating *int, notes *string) []domain.FieldError {
	var errs []domain.FieldError

	if statusID == 0 {
		errs = append(errs, domain.FieldError{Field: "status", Message: "required"})
	}
	if formatID == 0 {
		errs = append(errs, domain.FieldError{Field: "format", Message: "required"})
	}
	if languageID == 0 {
		errs = append(errs, domain.FieldError{Field: "language", Message: "required"})
	}

	if domain.StatusRequiresStartDate(statusID) && startDate == nil {
		errs = append(errs, domain.FieldError{Field: "startDate", Message: "required for this status"})
	}
	if domain.StatusRequiresEndDate(statusID) && endDate == nil {
		errs = append(errs, domain.FieldError{Field: "endDate", Message: "required for this status"})
	}

	if rating != nil && (*rating < 1 || *rating > 10) {
		errs = append(errs, domain.FieldError{Field: "rating", Message: "must be between 1 and 10"})
	}
	if notes != nil && len(*notes) > maxNotesLength {
		errs = append(errs, domain.FieldError{Field: "notes", Message: fmt.Sprintf("must be at most %d characters", maxNotesLength)})
	}

	return errs
}

// ListInput holds parameters for the list operation.
type ListInput struct {
	Page     int
	Limit    int
	StatusID *int
}

// refError turns a failed dictionary lookup into a field-level validation
// error; other failures pass through.
func refError(err error, field string) error {
	if errors.Is(err, domain.ErrNotFound) {
		return domain.NewValidationError(field, "unknown reference")
	}
	return fmt.Errorf("shelf: resolve %s: %w", field, err)
}
