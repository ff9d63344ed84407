package shelf

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/google/uuid"

	"github.com/glibera/readlogger/internal/domain"
)

// Update rewrites the reading-progress fields of one of the actor's shelf
// entries. The audit record captures only the fields that actually changed,
// compared against the entry's prior state; the embedded book is immutable
// here and excluded from the comparison.
func (s *Service) Update(ctx context.Context, actorID, entryID uuid.UUID, input UpdateInput) (*domain.UserBook, error) {
	if err := input.Validate(); err != nil {
		return nil, err
	}

	entry, err := s.ownedEntry(ctx, actorID, entryID)
	if err != nil {
		return nil, fmt.Errorf("shelf.Update: %w", err)
	}

	status, format, language, err := s.resolveRefs(ctx, input.StatusID, input.FormatID, input.LanguageID)
	if err != nil {
		return nil, err
	}

	// Snapshot before mutating, the change-set is computed against it.
	oldState := entry.NormalizeAudit()

	entry.Status = *status
	entry.Format = *format
	entry.Language = *language
	entry.StartDate = input.StartDate
	entry.EndDate = input.EndDate
	entry.Rating = input.Rating
	entry.Notes = input.Notes

	var updated *domain.UserBook

	err = s.tx.RunInTx(ctx, func(txCtx context.Context) error {
		saved, err := s.entries.Update(txCtx, entry)
		if err != nil {
			return fmt.Errorf("update entry: %w", err)
		}
		saved.Book.Authors = entry.Book.Authors

		if _, err := s.audit.Record(txCtx, actorID, domain.AuditActionUpdate, domain.AuditTableUserBook, saved, oldState, "book"); err != nil {
			return fmt.Errorf("audit entry update: %w", err)
		}

		updated = saved
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("shelf.Update: %w", err)
	}

	s.log.InfoContext(ctx, "shelf entry updated",
		slog.String("entry_id", updated.ID.String()),
		slog.String("user_id", actorID.String()))

	return updated, nil
}
