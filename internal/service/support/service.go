// Package support serves the fixed dictionaries (statuses, formats,
// languages) clients need to render forms.
package support

import (
	"context"
	"fmt"
	"log/slog"
	"strings"

	"github.com/glibera/readlogger/internal/domain"
)

// Resource names accepted in a dictionary request.
const (
	ResourceFormat   = "format"
	ResourceLanguage = "language"
	ResourceStatus   = "status"
)

// dictRepo defines the dictionary repository interface needed by support service.
type dictRepo interface {
	ListStatuses(ctx context.Context) ([]domain.Status, error)
	ListFormats(ctx context.Context) ([]domain.Format, error)
	ListLanguages(ctx context.Context) ([]domain.Language, error)
}

// Dictionaries holds the requested dictionary slices; unrequested ones stay
// nil.
type Dictionaries struct {
	Statuses  []domain.Status
	Formats   []domain.Format
	Languages []domain.Language
}

// Service implements dictionary lookups.
type Service struct {
	log  *slog.Logger
	refs dictRepo
}

// NewService creates a new support service instance.
func NewService(logger *slog.Logger, refs dictRepo) *Service {
	return &Service{
		log:  logger.With("service", "support"),
		refs: refs,
	}
}

// Dictionaries resolves a dash-separated resource list, e.g.
// "format-language-status", and loads each named dictionary. An unknown
// resource name fails the whole request.
func (s *Service) Dictionaries(ctx context.Context, resources string) (*Dictionaries, error) {
	if resources == "" {
		return nil, domain.NewValidationError("resources", "required")
	}

	var result Dictionaries
	var err error

	for _, resource := range strings.Split(resources, "-") {
		switch resource {
		case ResourceStatus:
			result.Statuses, err = s.refs.ListStatuses(ctx)
		case ResourceFormat:
			result.Formats, err = s.refs.ListFormats(ctx)
		case ResourceLanguage:
			result.Languages, err = s.refs.ListLanguages(ctx)
		default:
			return nil, domain.NewValidationError("resources", fmt.Sprintf("unknown resource %q", resource))
		}
		if err != nil {
			return nil, fmt.Errorf("support.Dictionaries %s: %w", resource, err)
		}
	}

	return &result, nil
}
