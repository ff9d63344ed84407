// Package auth implements account operations: registration, password login,
// email confirmation, and confirmation resend.
package auth

import (
	"context"
	"log/slog"

	"github.com/google/uuid"

	"github.com/glibera/readlogger/internal/audit"
	"github.com/glibera/readlogger/internal/config"
	"github.com/glibera/readlogger/internal/domain"
)

// userRepo defines the user repository interface needed by auth service.
type userRepo interface {
	GetByID(ctx context.Context, id uuid.UUID) (*domain.User, error)
	GetByEmail(ctx context.Context, email string) (*domain.User, error)
	GetByConfirmToken(ctx context.Context, token string) (*domain.User, error)
	Create(ctx context.Context, user *domain.User) (*domain.User, error)
	Confirm(ctx context.Context, id uuid.UUID) error
	UpdateConfirmToken(ctx context.Context, id uuid.UUID, token string) error
}

// txManager defines the transaction manager interface needed by auth service.
type txManager interface {
	RunInTx(ctx context.Context, fn func(ctx context.Context) error) error
}

// jwtManager defines the JWT token management interface needed by auth service.
type jwtManager interface {
	GenerateAccessToken(userID uuid.UUID, roles []string) (string, error)
}

// recorder defines the audit trail interface needed by auth service.
type recorder interface {
	Record(ctx context.Context, actorID uuid.UUID, action domain.AuditAction, table domain.AuditTable, newEntity audit.Normalizer, oldSnapshot map[string]any, exclude ...string) (uuid.UUID, error)
}

// confirmMailer defines the confirmation email interface needed by auth service.
type confirmMailer interface {
	SendConfirmation(ctx context.Context, email, token, language string) error
}

// Service implements account operations.
type Service struct {
	log    *slog.Logger
	users  userRepo
	tx     txManager
	jwt    jwtManager
	audit  recorder
	mailer confirmMailer
	cfg    config.AuthConfig
}

// NewService creates a new auth service instance.
func NewService(
	logger *slog.Logger,
	users userRepo,
	tx txManager,
	jwt jwtManager,
	audit recorder,
	mailer confirmMailer,
	cfg config.AuthConfig,
) *Service {
	return &Service{
		log:    logger.With("service", "auth"),
		users:  users,
		tx:     tx,
		jwt:    jwt,
		audit:  audit,
		mailer: mailer,
		cfg:    cfg,
	}
}
