package shelf

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/google/uuid"

	"github.com/glibera/readlogger/internal/domain"
)

// Delete removes one of the actor's shelf entries. The audit record keeps
// the entry's full prior state so the deletion stays reconstructable.
func (s *Service) Delete(ctx context.Context, actorID, entryID uuid.UUID) error {
	entry, err := s.ownedEntry(ctx, actorID, entryID)
	if err != nil {
		return fmt.Errorf("shelf.Delete: %w", err)
	}

	err = s.tx.RunInTx(ctx, func(txCtx context.Context) error {
		if err := s.entries.Delete(txCtx, entry.ID); err != nil {
			return fmt.Errorf("delete entry: %w", err)
		}

		if _, err := s.audit.Record(txCtx, actorID, domain.AuditActionDelete, domain.AuditTableUserBook, nil, entry.NormalizeAudit()); err != nil {
			return fmt.Errorf("audit entry deletion: %w", err)
		}

		return nil
	})
	if err != nil {
		return fmt.Errorf("shelf.Delete: %w", err)
	}

	s.log.InfoContext(ctx, "shelf entry deleted",
		slog.String("entry_id", entry.ID.String()),
		slog.String("user_id", actorID.String()))

	return nil
}
