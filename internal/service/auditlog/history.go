package auditlog

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"github.com/glibera/readlogger/internal/domain"
)

// HistoryResult is one page of a shelf entry's change history.
type HistoryResult struct {
	Records []domain.AuditRecord
	Page    int
	Pages   int
	Total   int
}

// History returns the audit trail of one shelf entry, newest first,
// paginated by the configured page size. Pages start at 1.
func (s *Service) History(ctx context.Context, recordID uuid.UUID, page int) (*HistoryResult, error) {
	if recordID == uuid.Nil {
		return nil, domain.NewValidationError("id", "required")
	}
	if page < 1 {
		page = 1
	}

	offset := (page - 1) * s.pageSize

	records, err := s.records.ListByRecord(ctx, domain.AuditTableUserBook, recordID, s.pageSize, offset)
	if err != nil {
		return nil, fmt.Errorf("auditlog.History: %w", err)
	}

	total, err := s.records.CountByRecord(ctx, domain.AuditTableUserBook, recordID)
	if err != nil {
		return nil, fmt.Errorf("auditlog.History count: %w", err)
	}

	pages := (total + s.pageSize - 1) / s.pageSize

	return &HistoryResult{
		Records: records,
		Page:    page,
		Pages:   pages,
		Total:   total,
	}, nil
}
