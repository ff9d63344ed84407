package auth

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/google/uuid"

	"github.com/glibera/readlogger/internal/audit"
	"github.com/glibera/readlogger/internal/auth"
	"github.com/glibera/readlogger/internal/domain"
)

// ResendConfirmation rotates the user's confirmation token and emails a
// fresh confirmation link. Returns ErrValidation when the email address is
// already confirmed.
func (s *Service) ResendConfirmation(ctx context.Context, userID uuid.UUID) error {
	user, err := s.users.GetByID(ctx, userID)
	if err != nil {
		return fmt.Errorf("auth.ResendConfirmation get user: %w", err)
	}

	if user.IsConfirmed {
		return domain.NewValidationError("email", "already confirmed")
	}

	token, err := auth.GenerateConfirmToken()
	if err != nil {
		return fmt.Errorf("auth.ResendConfirmation generate token: %w", err)
	}

	err = s.tx.RunInTx(ctx, func(txCtx context.Context) error {
		if err := s.users.UpdateConfirmToken(txCtx, user.ID, token); err != nil {
			return fmt.Errorf("rotate token: %w", err)
		}

		// The trail keeps the rotated token so a stale link can be traced
		// back to the rotation that invalidated it.
		rotated := audit.Snapshot{
			ID: user.ID,
			Fields: map[string]any{
				"id":    user.ID,
				"token": token,
			},
		}
		if _, err := s.audit.Record(txCtx, user.ID, domain.AuditActionUpdate, domain.AuditTableUser, rotated, nil); err != nil {
			return fmt.Errorf("audit token rotation: %w", err)
		}

		return nil
	})
	if err != nil {
		return fmt.Errorf("auth.ResendConfirmation: %w", err)
	}

	if err := s.mailer.SendConfirmation(ctx, user.Email, token, user.Language); err != nil {
		return fmt.Errorf("auth.ResendConfirmation send email: %w", err)
	}

	s.log.InfoContext(ctx, "confirmation email resent",
		slog.String("user_id", user.ID.String()))

	return nil
}
