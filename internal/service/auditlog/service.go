// Package auditlog records entity mutations to the audit trail and serves
// the change history of shelf entries.
package auditlog

import (
	"context"
	"log/slog"

	"github.com/google/uuid"

	"github.com/glibera/readlogger/internal/domain"
)

// auditRepo defines the audit log repository interface needed by this service.
type auditRepo interface {
	Create(ctx context.Context, record domain.AuditRecord) (domain.AuditRecord, error)
	ListByRecord(ctx context.Context, table domain.AuditTable, recordID uuid.UUID, limit, offset int) ([]domain.AuditRecord, error)
	CountByRecord(ctx context.Context, table domain.AuditTable, recordID uuid.UUID) (int, error)
}

// Service implements audit trail operations.
type Service struct {
	log      *slog.Logger
	records  auditRepo
	pageSize int
}

// NewService creates a new audit log service instance.
func NewService(logger *slog.Logger, records auditRepo, pageSize int) *Service {
	return &Service{
		log:      logger.With("service", "auditlog"),
		records:  records,
		pageSize: pageSize,
	}
}
