package auditlog

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/google/uuid"

	"github.com/glibera/readlogger/internal/audit"
	"github.com/glibera/readlogger/internal/domain"
)

// Record prepares and persists one audit record. For update actions whose
// change set turns out empty nothing is written and uuid.Nil is returned.
// Record participates in the caller's transaction when one is in the context.
func (s *Service) Record(
	ctx context.Context,
	actorID uuid.UUID,
	action domain.AuditAction,
	table domain.AuditTable,
	newEntity audit.Normalizer,
	oldSnapshot map[string]any,
	exclude ...string,
) (uuid.UUID, error) {
	record, err := audit.PrepareRecord(actorID, action, table, newEntity, oldSnapshot, exclude...)
	if err != nil {
		return uuid.Nil, fmt.Errorf("auditlog.Record prepare: %w", err)
	}

	if action == domain.AuditActionUpdate && len(record.Value) == 0 {
		return uuid.Nil, nil
	}

	created, err := s.records.Create(ctx, record)
	if err != nil {
		return uuid.Nil, fmt.Errorf("auditlog.Record: %w", err)
	}

	s.log.InfoContext(ctx, "audit record written",
		slog.String("audit_id", created.ID.String()),
		slog.String("action", created.Action.String()),
		slog.String("table", created.Table.String()),
		slog.String("record_id", created.RecordID.String()))

	return created.ID, nil
}
