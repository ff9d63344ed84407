package domain

import (
	"time"

	"github.com/google/uuid"
)

// AuditAction identifies the kind of mutation an audit record documents.
type AuditAction string

const (
	AuditActionCreate  AuditAction = "create"
	AuditActionUpdate  AuditAction = "update"
	AuditActionDelete  AuditAction = "delete"
	AuditActionConfirm AuditAction = "confirm"
)

func (a AuditAction) String() string { return string(a) }

func (a AuditAction) IsValid() bool {
	switch a {
	case AuditActionCreate, AuditActionUpdate, AuditActionDelete, AuditActionConfirm:
		return true
	}
	return false
}

// AuditTable is the logical name of the entity type an audit record targets.
type AuditTable string

const (
	AuditTableUser     AuditTable = "user"
	AuditTableAuthor   AuditTable = "author"
	AuditTableBook     AuditTable = "book"
	AuditTableUserBook AuditTable = "user_book"
)

func (t AuditTable) String() string { return string(t) }

func (t AuditTable) IsValid() bool {
	switch t {
	case AuditTableUser, AuditTableAuthor, AuditTableBook, AuditTableUserBook:
		return true
	}
	return false
}

// AuditRecord is a write-once log entry capturing who changed what, on which
// entity, and how. For create/confirm actions Value holds the full new state,
// for delete the full prior state, and for update the computed change-set.
// ID and HappenedAt are assigned by the persistence sink at write time.
type AuditRecord struct {
	ID         uuid.UUID
	ActorID    uuid.UUID
	Action     AuditAction
	Table      AuditTable
	RecordID   uuid.UUID
	Value      map[string]any
	HappenedAt time.Time
}
