package rest

import (
	"context"
	"log/slog"
	"net/http"

	"github.com/google/uuid"

	"github.com/glibera/readlogger/internal/service/auditlog"
)

// historyService defines the minimal interface needed by HistoryHandler.
type historyService interface {
	History(ctx context.Context, recordID uuid.UUID, page int) (*auditlog.HistoryResult, error)
}

// HistoryHandler serves the audit trail of a shelf entry.
type HistoryHandler struct {
	svc historyService
	log *slog.Logger
}

// NewHistoryHandler creates a HistoryHandler.
func NewHistoryHandler(svc historyService, logger *slog.Logger) *HistoryHandler {
	return &HistoryHandler{svc: svc, log: logger.With("handler", "history")}
}

// List handles GET /api/log/{id}?page=N.
func (h *HistoryHandler) List(w http.ResponseWriter, r *http.Request) {
	recordID, err := uuid.Parse(r.PathValue("id"))
	if err != nil {
		writeError(w, http.StatusBadRequest, "invalid id")
		return
	}

	result, err := h.svc.History(r.Context(), recordID, queryInt(r, "page"))
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}

	records := make([]auditRecordPayload, 0, len(result.Records))
	for _, rec := range result.Records {
		records = append(records, toAuditRecordPayload(rec))
	}

	writeSuccess(w, http.StatusOK, "change history", records, map[string]int{
		"count": result.Total,
		"page":  result.Page,
		"pages": result.Pages,
	})
}
