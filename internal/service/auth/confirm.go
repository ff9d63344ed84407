package auth

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"

	"github.com/glibera/readlogger/internal/domain"
)

// ConfirmEmail marks the user holding the given confirmation token as
// confirmed. The email must match the address the token was issued for;
// a mismatch or an unknown token returns ErrNotFound.
func (s *Service) ConfirmEmail(ctx context.Context, email, token string) error {
	email = strings.ToLower(strings.TrimSpace(email))

	var errs []domain.FieldError
	if email == "" {
		errs = append(errs, domain.FieldError{Field: "email", Message: "required"})
	}
	if token == "" {
		errs = append(errs, domain.FieldError{Field: "token", Message: "required"})
	}
	if len(errs) > 0 {
		return domain.NewValidationErrors(errs)
	}

	user, err := s.users.GetByConfirmToken(ctx, token)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return fmt.Errorf("auth.ConfirmEmail: %w", domain.ErrNotFound)
		}
		return fmt.Errorf("auth.ConfirmEmail get user: %w", err)
	}

	// The token is only valid for the address it was emailed to.
	if user.Email != email {
		return fmt.Errorf("auth.ConfirmEmail: %w", domain.ErrNotFound)
	}

	err = s.tx.RunInTx(ctx, func(txCtx context.Context) error {
		if err := s.users.Confirm(txCtx, user.ID); err != nil {
			return fmt.Errorf("confirm user: %w", err)
		}

		confirmed := *user
		confirmed.IsConfirmed = true
		confirmed.ConfirmToken = nil

		if _, err := s.audit.Record(txCtx, user.ID, domain.AuditActionConfirm, domain.AuditTableUser, &confirmed, nil); err != nil {
			return fmt.Errorf("audit confirmation: %w", err)
		}

		return nil
	})
	if err != nil {
		return fmt.Errorf("auth.ConfirmEmail: %w", err)
	}

	s.log.InfoContext(ctx, "email confirmed",
		slog.String("user_id", user.ID.String()))

	return nil
}
