package rest

import (
	"context"
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"

	"github.com/google/uuid"

	"github.com/glibera/readlogger/internal/domain"
	"github.com/glibera/readlogger/internal/service/auth"
	"github.com/glibera/readlogger/pkg/ctxutil"
)

// authService defines the minimal interface needed by AuthHandler.
type authService interface {
	Register(ctx context.Context, input auth.RegisterInput) (*domain.User, error)
	Login(ctx context.Context, input auth.LoginInput) (*auth.AuthResult, error)
	ConfirmEmail(ctx context.Context, email, token string) error
	ResendConfirmation(ctx context.Context, userID uuid.UUID) error
}

// AuthHandler serves account REST endpoints.
type AuthHandler struct {
	svc authService
	log *slog.Logger
}

// NewAuthHandler creates an AuthHandler.
func NewAuthHandler(svc authService, logger *slog.Logger) *AuthHandler {
	return &AuthHandler{svc: svc, log: logger.With("handler", "auth")}
}

type registerRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
	Language string `json:"language"`
}

type loginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

type confirmRequest struct {
	Email string `json:"email"`
	Token string `json:"token"`
}

type loginResponse struct {
	Token string      `json:"token"`
	User  userPayload `json:"user"`
}

// Register handles POST /api/auth/register.
func (h *AuthHandler) Register(w http.ResponseWriter, r *http.Request) {
	var req registerRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	user, err := h.svc.Register(r.Context(), auth.RegisterInput{
		Email:    req.Email,
		Password: req.Password,
		Language: req.Language,
	})
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}

	writeSuccess(w, http.StatusCreated, "user registered, confirmation email sent", toUserPayload(user), nil)
}

// Login handles POST /api/auth/login_check.
func (h *AuthHandler) Login(w http.ResponseWriter, r *http.Request) {
	var req loginRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	result, err := h.svc.Login(r.Context(), auth.LoginInput{
		Email:    req.Email,
		Password: req.Password,
	})
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}

	writeSuccess(w, http.StatusOK, "authenticated", loginResponse{
		Token: result.AccessToken,
		User:  toUserPayload(result.User),
	}, nil)
}

// ConfirmEmail handles POST /api/auth/email-confirm. A token that matches no
// account answers 200 with status false rather than 404, so the confirmation
// page can render the outcome.
func (h *AuthHandler) ConfirmEmail(w http.ResponseWriter, r *http.Request) {
	var req confirmRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	err := h.svc.ConfirmEmail(r.Context(), req.Email, req.Token)
	switch {
	case err == nil:
		writeSuccess(w, http.StatusOK, "email confirmed", map[string]bool{"status": true}, nil)
	case errors.Is(err, domain.ErrNotFound):
		writeSuccess(w, http.StatusOK, "confirmation failed", map[string]bool{"status": false}, nil)
	default:
		handleError(h.log, w, r, err)
	}
}

// ResendConfirmation handles GET /api/user/resend-confirmation-email.
func (h *AuthHandler) ResendConfirmation(w http.ResponseWriter, r *http.Request) {
	userID, ok := ctxutil.UserIDFromCtx(r.Context())
	if !ok {
		writeError(w, http.StatusUnauthorized, "unauthorized")
		return
	}

	if err := h.svc.ResendConfirmation(r.Context(), userID); err != nil {
		handleError(h.log, w, r, err)
		return
	}

	writeSuccess(w, http.StatusOK, "confirmation email sent", nil, nil)
}
