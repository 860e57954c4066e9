package api

import (
	"log/slog"
	"net/http"

	"github.com/Marcosdev03/projeto-checklistv02/internal/api/shared"
	"github.com/Marcosdev03/projeto-checklistv02/internal/platform/logger"
	"github.com/Marcosdev03/projeto-checklistv02/internal/service"
)

// PasswordResetHandler handles password recovery HTTP requests. Both
// endpoints are unauthenticated.
type PasswordResetHandler struct {
	resetService *service.PasswordResetService
	logger       *slog.Logger
}

// NewPasswordResetHandler creates a new PasswordResetHandler.
func NewPasswordResetHandler(resetService *service.PasswordResetService, log *slog.Logger) *PasswordResetHandler {
	if log == nil {
		// ALLOW-PANIC: Constructor enforcing required dependency
		panic("logger cannot be nil for PasswordResetHandler")
	}

	return &PasswordResetHandler{
		resetService: resetService,
		logger:       log.With(slog.String("component", "password_reset_handler")),
	}
}

// Request handles POST /password-reset requests. The response is the same
// whether or not an account exists for the given email, so the endpoint
// cannot be used to probe for registered addresses.
func (h *PasswordResetHandler) Request(w http.ResponseWriter, r *http.Request) {
	log := logger.FromContextOrDefault(r.Context(), h.logger)

	var req PasswordResetRequest
	if err := shared.DecodeJSON(r, &req); err != nil {
		shared.RespondWithError(w, r, http.StatusBadRequest, "Invalid request format")
		return
	}
	if err := shared.ValidateRequest(req); err != nil {
		shared.RespondWithError(w, r, http.StatusBadRequest, SanitizeValidationError(err))
		return
	}

	if err := h.resetService.Request(r.Context(), req.Email); err != nil {
		log.Error("password reset request failed", slog.String("error", err.Error()))
		HandleAPIError(w, r, err, "Failed to process password reset request")
		return
	}

	shared.RespondWithJSON(w, r, http.StatusOK, MessageResponse{
		Detail: "If an account with this email exists, a reset token has been sent.",
	})
}

// Confirm handles POST /password-reset/confirm requests.
func (h *PasswordResetHandler) Confirm(w http.ResponseWriter, r *http.Request) {
	var req PasswordResetConfirmRequest
	if err := shared.DecodeJSON(r, &req); err != nil {
		shared.RespondWithError(w, r, http.StatusBadRequest, "Invalid request format")
		return
	}
	if err := shared.ValidateRequest(req); err != nil {
		shared.RespondWithError(w, r, http.StatusBadRequest, SanitizeValidationError(err))
		return
	}

	err := h.resetService.Confirm(r.Context(), req.Token, req.NewPassword, req.ConfirmPassword)
	if err != nil {
		HandleAPIError(w, r, err, "Failed to reset password")
		return
	}

	shared.RespondWithJSON(w, r, http.StatusOK, MessageResponse{
		Detail: "Password updated",
	})
}
