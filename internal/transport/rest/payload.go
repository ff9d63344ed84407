package rest

import (
	"time"

	"github.com/glibera/readlogger/internal/domain"
)

type userPayload struct {
	ID          string    `json:"id"`
	Email       string    `json:"email"`
	Roles       []string  `json:"roles"`
	Language    string    `json:"language"`
	IsConfirmed bool      `json:"isConfirmed"`
	CreatedAt   time.Time `json:"createdAt"`
}

func toUserPayload(u *domain.User) userPayload {
	return userPayload{
		ID:          u.ID.String(),
		Email:       u.Email,
		Roles:       u.Roles,
		Language:    u.Language,
		IsConfirmed: u.IsConfirmed,
		CreatedAt:   u.CreatedAt,
	}
}

type authorPayload struct {
	ID        string `json:"id"`
	FirstName string `json:"firstName"`
	LastName  string `json:"lastName"`
}

func toAuthorPayload(a domain.Author) authorPayload {
	return authorPayload{
		ID:        a.ID.String(),
		FirstName: a.FirstName,
		LastName:  a.LastName,
	}
}

type bookPayload struct {
	ID       string          `json:"id"`
	Title    string          `json:"title"`
	SubTitle *string         `json:"subTitle"`
	Size     *int            `json:"size"`
	Authors  []authorPayload `json:"authors"`
}

func toBookPayload(b domain.Book) bookPayload {
	authors := make([]authorPayload, 0, len(b.Authors))
	for _, a := range b.Authors {
		authors = append(authors, toAuthorPayload(a))
	}
	return bookPayload{
		ID:       b.ID.String(),
		Title:    b.Title,
		SubTitle: b.SubTitle,
		Size:     b.Size,
		Authors:  authors,
	}
}

type statusPayload struct {
	ID             int    `json:"id"`
	Name           string `json:"name"`
	TranslationKey string `json:"translationKey"`
}

type formatPayload struct {
	ID             int    `json:"id"`
	Name           string `json:"name"`
	TranslationKey string `json:"translationKey"`
}

type languagePayload struct {
	ID             int    `json:"id"`
	Symbol         string `json:"symbol"`
	TranslationKey string `json:"translationKey"`
}

type entryPayload struct {
	ID         string          `json:"id"`
	Book       bookPayload     `json:"book"`
	Status     statusPayload   `json:"status"`
	Format     formatPayload   `json:"format"`
	Language   languagePayload `json:"language"`
	StartDate  *time.Time      `json:"startDate"`
	EndDate    *time.Time      `json:"endDate"`
	Rating     *int            `json:"rating"`
	Notes      *string         `json:"notes"`
	CreatedAt  time.Time       `json:"createdAt"`
	ModifiedAt time.Time       `json:"modifiedAt"`
}

func toEntryPayload(e domain.UserBook) entryPayload {
	return entryPayload{
		ID:         e.ID.String(),
		Book:       toBookPayload(e.Book),
		Status:     statusPayload{ID: e.Status.ID, Name: e.Status.Name, TranslationKey: e.Status.TranslationKey},
		Format:     formatPayload{ID: e.Format.ID, Name: e.Format.Name, TranslationKey: e.Format.TranslationKey},
		Language:   languagePayload{ID: e.Language.ID, Symbol: e.Language.Symbol, TranslationKey: e.Language.TranslationKey},
		StartDate:  e.StartDate,
		EndDate:    e.EndDate,
		Rating:     e.Rating,
		Notes:      e.Notes,
		CreatedAt:  e.CreatedAt,
		ModifiedAt: e.ModifiedAt,
	}
}

type auditRecordPayload struct {
	ID         string         `json:"id"`
	UserID     string         `json:"userId"`
	Action     string         `json:"action"`
	Table      string         `json:"table"`
	RecordID   string         `json:"recordId"`
	Value      map[string]any `json:"value"`
	HappenedAt time.Time      `json:"happenedAt"`
}

func toAuditRecordPayload(rec domain.AuditRecord) auditRecordPayload {
	return auditRecordPayload{
		ID:         rec.ID.String(),
		UserID:     rec.ActorID.String(),
		Action:     rec.Action.String(),
		Table:      rec.Table.String(),
		RecordID:   rec.RecordID.String(),
		Value:      rec.Value,
		HappenedAt: rec.HappenedAt,
	}
}
