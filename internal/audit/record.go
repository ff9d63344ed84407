package audit

import (
	"fmt"

	"github.com/google/uuid"

	"github.com/glibera/readlogger/internal/domain"
)

// Normalizer is implemented by domain entities that can project themselves
// into an audit-log representation. Every nested reference object in the
// projection must carry an "id" key.
type Normalizer interface {
	AuditID() uuid.UUID
	NormalizeAudit() map[string]any
}

// Snapshot adapts an ad-hoc field map to the Normalizer interface, for
// records whose value is not a full entity projection.
type Snapshot struct {
	ID     uuid.UUID
	Fields map[string]any
}

func (s Snapshot) AuditID() uuid.UUID { return s.ID }

func (s Snapshot) NormalizeAudit() map[string]any { return s.Fields }

// PrepareRecord builds an in-memory audit record for the given mutation.
// It performs no I/O; the record's own ID and HappenedAt are left zero and
// assigned by the persistence sink at write time.
//
// Which inputs are required depends on the action:
//   - create, confirm: newEntity; Value is its full normalized state.
//   - delete: oldSnapshot (must contain "id"); Value is the full prior state.
//   - update: newEntity; Value is the change-set of newEntity against
//     oldSnapshot with the excluded fields dropped. A nil oldSnapshot keeps
//     the full new state.
func PrepareRecord(
	actorID uuid.UUID,
	action domain.AuditAction,
	table domain.AuditTable,
	newEntity Normalizer,
	oldSnapshot map[string]any,
	exclude ...string,
) (domain.AuditRecord, error) {
	if actorID == uuid.Nil {
		return domain.AuditRecord{}, fmt.Errorf("audit: actor ID is required: %w", domain.ErrValidation)
	}
	if !action.IsValid() {
		return domain.AuditRecord{}, fmt.Errorf("audit: unknown action %q: %w", action, domain.ErrValidation)
	}
	if !table.IsValid() {
		return domain.AuditRecord{}, fmt.Errorf("audit: unknown table %q: %w", table, domain.ErrValidation)
	}

	record := domain.AuditRecord{
		ActorID: actorID,
		Action:  action,
		Table:   table,
	}

	switch action {
	case domain.AuditActionCreate, domain.AuditActionConfirm:
		if newEntity == nil {
			return domain.AuditRecord{}, fmt.Errorf("audit: %s on %s requires the new entity: %w", action, table, domain.ErrValidation)
		}
		record.RecordID = newEntity.AuditID()
		record.Value = newEntity.NormalizeAudit()

	case domain.AuditActionDelete:
		if oldSnapshot == nil {
			return domain.AuditRecord{}, fmt.Errorf("audit: delete on %s requires the prior snapshot: %w", table, domain.ErrValidation)
		}
		id, err := snapshotID(oldSnapshot)
		if err != nil {
			return domain.AuditRecord{}, fmt.Errorf("audit: delete on %s: %w", table, err)
		}
		record.RecordID = id
		record.Value = oldSnapshot

	case domain.AuditActionUpdate:
		if newEntity == nil {
			return domain.AuditRecord{}, fmt.Errorf("audit: update on %s requires the new entity: %w", table, domain.ErrValidation)
		}
		record.RecordID = newEntity.AuditID()
		record.Value = ComputeChanges(newEntity.NormalizeAudit(), oldSnapshot, exclude)
	}

	return record, nil
}

// snapshotID extracts the entity id from a prior-state snapshot.
func snapshotID(snapshot map[string]any) (uuid.UUID, error) {
	raw, ok := snapshot["id"]
	if !ok || raw == nil {
		return uuid.Nil, fmt.Errorf("snapshot has no id")
	}

	switch t := raw.(type) {
	case uuid.UUID:
		return t, nil
	case string:
		id, err := uuid.Parse(t)
		if err != nil {
			return uuid.Nil, fmt.Errorf("snapshot id %q: %w", t, err)
		}
		return id, nil
	default:
		return uuid.Nil, fmt.Errorf("snapshot id has unexpected type %T", raw)
	}
}
