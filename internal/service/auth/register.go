package auth

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"

	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"

	"github.com/glibera/readlogger/internal/auth"
	"github.com/glibera/readlogger/internal/domain"
)

// Register creates a new unconfirmed user and sends the confirmation email.
// Returns ErrAlreadyExists if the email is already taken.
func (s *Service) Register(ctx context.Context, input RegisterInput) (*domain.User, error) {
	// Normalize input before validation.
	input.Email = strings.ToLower(strings.TrimSpace(input.Email))

	if err := input.Validate(); err != nil {
		return nil, err
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(input.Password), s.cfg.PasswordHashCost)
	if err != nil {
		return nil, fmt.Errorf("auth.Register hash password: %w", err)
	}

	token, err := auth.GenerateConfirmToken()
	if err != nil {
		return nil, fmt.Errorf("auth.Register generate token: %w", err)
	}

	// Create user and its audit record in one transaction. Email uniqueness
	// is enforced by the DB constraint.
	var createdUser *domain.User

	err = s.tx.RunInTx(ctx, func(txCtx context.Context) error {
		newUser := &domain.User{
			ID:           uuid.New(),
			Email:        input.Email,
			PasswordHash: string(hash),
			Roles:        []string{domain.RoleUser},
			Language:     input.Language,
			ConfirmToken: &token,
		}

		user, err := s.users.Create(txCtx, newUser)
		if err != nil {
			return fmt.Errorf("create user: %w", err)
		}

		if _, err := s.audit.Record(txCtx, user.ID, domain.AuditActionCreate, domain.AuditTableUser, user, nil); err != nil {
			return fmt.Errorf("audit user creation: %w", err)
		}

		createdUser = user
		return nil
	})

	if err != nil {
		if errors.Is(err, domain.ErrAlreadyExists) {
			return nil, fmt.Errorf("auth.Register: %w", domain.ErrAlreadyExists)
		}
		return nil, fmt.Errorf("auth.Register: %w", err)
	}

	// Mail delivery happens after commit; a failure here must not undo the
	// registration, the user can request a resend.
	if err := s.mailer.SendConfirmation(ctx, createdUser.Email, token, createdUser.Language); err != nil {
		s.log.ErrorContext(ctx, "send confirmation email failed",
			slog.String("user_id", createdUser.ID.String()),
			slog.String("error", err.Error()))
	}

	s.log.InfoContext(ctx, "user registered",
		slog.String("user_id", createdUser.ID.String()))

	return createdUser, nil
}
