package domain

import (
	"time"

	"github.com/google/uuid"
)

// RoleUser is the default role granted at registration.
const RoleUser = "ROLE_USER"

// User represents a registered account.
type User struct {
	ID           uuid.UUID
	Email        string
	PasswordHash string
	Roles        []string
	Language     string
	IsConfirmed  bool
	ConfirmToken *string
	CreatedAt    time.Time
	ModifiedAt   time.Time
}

// AuditID returns the identifier used for the audit record's record_id.
func (u *User) AuditID() uuid.UUID { return u.ID }

// NormalizeAudit projects the user into its audit-log representation.
// Credentials (password hash, confirmation token) are never part of it.
func (u *User) NormalizeAudit() map[string]any {
	return map[string]any{
		"id":          u.ID,
		"email":       u.Email,
		"roles":       u.Roles,
		"language":    u.Language,
		"isConfirmed": u.IsConfirmed,
	}
}
