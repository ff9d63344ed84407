package rest

import (
	"context"
	"encoding/json"
	"log/slog"
	"net/http"
	"strconv"
	"time"

	"github.com/google/uuid"

	"github.com/glibera/readlogger/internal/domain"
	"github.com/glibera/readlogger/internal/service/shelf"
	"github.com/glibera/readlogger/pkg/ctxutil"
)

// shelfService defines the minimal interface needed by ShelfHandler.
type shelfService interface {
	Create(ctx context.Context, actorID uuid.UUID, input shelf.CreateInput) (*domain.UserBook, error)
	Get(ctx context.Context, actorID, entryID uuid.UUID) (*domain.UserBook, error)
	Update(ctx context.Context, actorID, entryID uuid.UUID, input shelf.UpdateInput) (*domain.UserBook, error)
	Delete(ctx context.Context, actorID, entryID uuid.UUID) error
	List(ctx context.Context, actorID uuid.UUID, input shelf.ListInput) (*shelf.ListResult, error)
}

// ShelfHandler serves shelf entry REST endpoints.
type ShelfHandler struct {
	svc shelfService
	log *slog.Logger
}

// NewShelfHandler creates a ShelfHandler.
func NewShelfHandler(svc shelfService, logger *slog.Logger) *ShelfHandler {
	return &ShelfHandler{svc: svc, log: logger.With("handler", "shelf")}
}

type newBookRequest struct {
	ID       *string `json:"id"`
	Title    string  `json:"title"`
	SubTitle *string `json:"subTitle"`
	Size     *int    `json:"size"`
	Authors  []struct {
		FirstName string `json:"firstName"`
		LastName  string `json:"lastName"`
	} `json:"authors"`
}

type createEntryRequest struct {
	Book       newBookRequest `json:"book"`
	Status     int            `json:"status"`
	Format     int            `json:"format"`
	Language   int            `json:"language"`
	StartDate  *string        `json:"startDate"`
	EndDate    *string        `json:"endDate"`
	Rating     *int           `json:"rating"`
	Notes      *string        `json:"notes"`
}

type updateEntryRequest struct {
	Status    int     `json:"status"`
	Format    int     `json:"format"`
	Language  int     `json:"language"`
	StartDate *string `json:"startDate"`
	EndDate   *string `json:"endDate"`
	Rating    *int    `json:"rating"`
	Notes     *string `json:"notes"`
}

// parseDate accepts a calendar date with or without a time component.
func parseDate(field string, s *string) (*time.Time, error) {
	if s == nil || *s == "" {
		return nil, nil
	}
	for _, layout := range []string{time.RFC3339, "2006-01-02"} {
		if t, err := time.Parse(layout, *s); err == nil {
			return &t, nil
		}
	}
	return nil, domain.NewValidationError(field, "invalid date")
}

// Create handles POST /api/user-book.
func (h *ShelfHandler) Create(w http.ResponseWriter, r *http.Request) {
	userID, ok := ctxutil.UserIDFromCtx(r.Context())
	if !ok {
		writeError(w, http.StatusUnauthorized, "unauthorized")
		return
	}

	var req createEntryRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	input, err := toCreateInput(req)
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}

	entry, err := h.svc.Create(r.Context(), userID, input)
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}

	writeSuccess(w, http.StatusCreated, "shelf entry created", toEntryPayload(*entry), nil)
}

func toCreateInput(req createEntryRequest) (shelf.CreateInput, error) {
	startDate, err := parseDate("startDate", req.StartDate)
	if err != nil {
		return shelf.CreateInput{}, err
	}
	endDate, err := parseDate("endDate", req.EndDate)
	if err != nil {
		return shelf.CreateInput{}, err
	}

	book := shelf.BookInput{
		Title:    req.Book.Title,
		SubTitle: req.Book.SubTitle,
		Size:     req.Book.Size,
	}
	if req.Book.ID != nil {
		id, err := uuid.Parse(*req.Book.ID)
		if err != nil {
			return shelf.CreateInput{}, domain.NewValidationError("book.id", "invalid id")
		}
		book.ID = &id
	}
	for _, a := range req.Book.Authors {
		book.Authors = append(book.Authors, shelf.AuthorInput{
			FirstName: a.FirstName,
			LastName:  a.LastName,
		})
	}

	return shelf.CreateInput{
		Book:       book,
		StatusID:   req.Status,
		FormatID:   req.Format,
		LanguageID: req.Language,
		StartDate:  startDate,
		EndDate:    endDate,
		Rating:     req.Rating,
		Notes:      req.Notes,
	}, nil
}

// Get handles GET /api/user-book/{id}.
func (h *ShelfHandler) Get(w http.ResponseWriter, r *http.Request) {
	userID, ok := ctxutil.UserIDFromCtx(r.Context())
	if !ok {
		writeError(w, http.StatusUnauthorized, "unauthorized")
		return
	}

	entryID, err := uuid.Parse(r.PathValue("id"))
	if err != nil {
		writeError(w, http.StatusBadRequest, "invalid id")
		return
	}

	entry, err := h.svc.Get(r.Context(), userID, entryID)
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}

	writeSuccess(w, http.StatusOK, "shelf entry", toEntryPayload(*entry), nil)
}

// List handles GET /api/user-books?status=N&page=N&limit=N.
func (h *ShelfHandler) List(w http.ResponseWriter, r *http.Request) {
	userID, ok := ctxutil.UserIDFromCtx(r.Context())
	if !ok {
		writeError(w, http.StatusUnauthorized, "unauthorized")
		return
	}

	input := shelf.ListInput{
		Page:  queryInt(r, "page"),
		Limit: queryInt(r, "limit"),
	}
	if v := queryInt(r, "status"); v != 0 {
		input.StatusID = &v
	}

	result, err := h.svc.List(r.Context(), userID, input)
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}

	entries := make([]entryPayload, 0, len(result.Entries))
	for _, e := range result.Entries {
		entries = append(entries, toEntryPayload(e))
	}

	writeSuccess(w, http.StatusOK, "shelf", entries, map[string]int{
		"count": result.Total,
		"page":  result.Page,
		"pages": result.Pages,
	})
}

// Update handles PUT /api/user-book/{id}.
func (h *ShelfHandler) Update(w http.ResponseWriter, r *http.Request) {
	userID, ok := ctxutil.UserIDFromCtx(r.Context())
	if !ok {
		writeError(w, http.StatusUnauthorized, "unauthorized")
		return
	}

	entryID, err := uuid.Parse(r.PathValue("id"))
	if err != nil {
		writeError(w, http.StatusBadRequest, "invalid id")
		return
	}

	var req updateEntryRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	startDate, err := parseDate("startDate", req.StartDate)
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}
	endDate, err := parseDate("endDate", req.EndDate)
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}

	entry, err := h.svc.Update(r.Context(), userID, entryID, shelf.UpdateInput{
		StatusID:   req.Status,
		FormatID:   req.Format,
		LanguageID: req.Language,
		StartDate:  startDate,
		EndDate:    endDate,
		Rating:     req.Rating,
		Notes:      req.Notes,
	})
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}

	writeSuccess(w, http.StatusOK, "shelf entry updated", toEntryPayload(*entry), nil)
}

// Delete handles DELETE /api/user-book/{id}.
func (h *ShelfHandler) Delete(w http.ResponseWriter, r *http.Request) {
	userID, ok := ctxutil.UserIDFromCtx(r.Context())
	if !ok {
		writeError(w, http.StatusUnauthorized, "unauthorized")
		return
	}

	entryID, err := uuid.Parse(r.PathValue("id"))
	if err != nil {
		writeError(w, http.StatusBadRequest, "invalid id")
		return
	}

	if err := h.svc.Delete(r.Context(), userID, entryID); err != nil {
		handleError(h.log, w, r, err)
		return
	}

	writeSuccess(w, http.StatusOK, "shelf entry deleted", nil, nil)
}

func queryInt(r *http.Request, name string) int {
	v := r.URL.Query().Get(name)
	if v == "" {
		return 0
	}
	n, err := strconv.Atoi(v)
	if err != nil {
		return 0
	}
	return n
}
