package rest

import (
	"context"
	"log/slog"
	"net/http"

	"github.com/glibera/readlogger/internal/service/support"
)

// supportService defines the minimal interface needed by SupportHandler.
type supportService interface {
	Dictionaries(ctx context.Context, resources string) (*support.Dictionaries, error)
}

// SupportHandler serves the reference dictionaries.
type SupportHandler struct {
	svc supportService
	log *slog.Logger
}

// NewSupportHandler creates a SupportHandler.
func NewSupportHandler(svc supportService, logger *slog.Logger) *SupportHandler {
	return &SupportHandler{svc: svc, log: logger.With("handler", "support")}
}

// Dictionaries handles GET /api/support/{resources}, where resources is a
// dash-separated list such as "format-language-status".
func (h *SupportHandler) Dictionaries(w http.ResponseWriter, r *http.Request) {
	dicts, err := h.svc.Dictionaries(r.Context(), r.PathValue("resources"))
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}

	data := map[string]any{}
	meta := map[string]int{}

	if dicts.Formats != nil {
		formats := make([]formatPayload, 0, len(dicts.Formats))
		for _, f := range dicts.Formats {
			formats = append(formats, formatPayload{ID: f.ID, Name: f.Name, TranslationKey: f.TranslationKey})
		}
		data["formats"] = formats
		meta["formats"] = len(formats)
	}
	if dicts.Languages != nil {
		languages := make([]languagePayload, 0, len(dicts.Languages))
		for _, l := range dicts.Languages {
			languages = append(languages, languagePayload{ID: l.ID, Symbol: l.Symbol, TranslationKey: l.TranslationKey})
		}
		data["languages"] = languages
		meta["languages"] = len(languages)
	}
	if dicts.Statuses != nil {
		statuses := make([]statusPayload, 0, len(dicts.Statuses))
		for _, s := range dicts.Statuses {
			statuses = append(statuses, statusPayload{ID: s.ID, Name: s.Name, TranslationKey: s.TranslationKey})
		}
		data["statuses"] = statuses
		meta["statuses"] = len(statuses)
	}

	writeSuccess(w, http.StatusOK, "dictionaries", data, meta)
}
