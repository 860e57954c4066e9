package api

import (
	"log/slog"
	"net/http"
	"time"

	"github.com/Marcosdev03/projeto-checklistv02/internal/api/shared"
	"github.com/Marcosdev03/projeto-checklistv02/internal/platform/logger"
	"github.com/Marcosdev03/projeto-checklistv02/internal/service"
	"github.com/Marcosdev03/projeto-checklistv02/internal/service/auth"
)

// UserHandler handles account-related HTTP requests.
type UserHandler struct {
	userService   *service.UserService
	jwtService    auth.JWTService
	tokenLifetime time.Duration
	logger        *slog.Logger
}

// NewUserHandler creates a new UserHandler.
func NewUserHandler(
	userService *service.UserService,
	jwtService auth.JWTService,
	tokenLifetime time.Duration,
	log *slog.Logger,
) *UserHandler {
	if log == nil {
		// ALLOW-PANIC: Constructor enforcing required dependency
		panic("logger cannot be nil for UserHandler")
	}

	return &UserHandler{
		userService:   userService,
		jwtService:    jwtService,
		tokenLifetime: tokenLifetime,
		logger:        log.With(slog.String("component", "user_handler")),
	}
}

// Register handles POST /accounts requests. The new account is logged in
// immediately: the response carries a token pair alongside the account ID.
func (h *UserHandler) Register(w http.ResponseWriter, r *http.Request) {
	log := logger.FromContextOrDefault(r.Context(), h.logger)

	var req RegisterRequest
	if err := shared.DecodeJSON(r, &req); err != nil {
		shared.RespondWithError(w, r, http.StatusBadRequest, "Invalid request format")
		return
	}
	if err := shared.ValidateRequest(req); err != nil {
		shared.RespondWithError(w, r, http.StatusBadRequest, SanitizeValidationError(err))
		return
	}

	user, err := h.userService.Register(r.Context(), req.Email, req.FirstName, req.Password)
	if err != nil {
		HandleAPIError(w, r, err, "Failed to create account")
		return
	}

	accessToken, err := h.jwtService.GenerateToken(r.Context(), user.ID)
	if err != nil {
		HandleAPIError(w, r, err, "Failed to generate authentication token")
		return
	}
	refreshToken, err := h.jwtService.GenerateRefreshToken(r.Context(), user.ID)
	if err != nil {
		HandleAPIError(w, r, err, "Failed to generate authentication token")
		return
	}

	log.Debug("account registered", slog.String("user_id", user.ID.String()))
	shared.RespondWithJSON(w, r, http.StatusCreated, AuthResponse{
		UserID:       user.ID,
		AccessToken:  accessToken,
		RefreshToken: refreshToken,
		ExpiresAt:    time.Now().UTC().Add(h.tokenLifetime).Format(time.RFC3339),
	})
}

// GetMe handles GET /accounts/me requests. It returns the caller's own
// account record.
func (h *UserHandler) GetMe(w http.ResponseWriter, r *http.Request) {
	log := logger.FromContextOrDefault(r.Context(), h.logger)

	userID, ok := getUserIDFromContext(r)
	if !ok {
		log.Warn("user ID not found or invalid in request context")
		shared.RespondWithError(w, r, http.StatusUnauthorized, "User ID not found or invalid")
		return
	}

	user, err := h.userService.Get(r.Context(), userID, userID)
	if err != nil {
		HandleAPIError(w, r, err, "Failed to load account")
		return
	}

	shared.RespondWithJSON(w, r, http.StatusOK, userToResponse(user))
}

// Get handles GET /accounts/{id} requests. Only the account owner can
// read the record.
func (h *UserHandler) Get(w http.ResponseWriter, r *http.Request) {
	userID, pathID, ok := handleUserIDAndPathUUID(w, r, "id", h.logger)
	if !ok {
		return
	}

	user, err := h.userService.Get(r.Context(), userID, pathID)
	if err != nil {
		HandleAPIError(w, r, err, "Failed to load account")
		return
	}

	shared.RespondWithJSON(w, r, http.StatusOK, userToResponse(user))
}

// Update handles PUT and PATCH /accounts/{id} requests. Only the account
// owner can change the record.
func (h *UserHandler) Update(w http.ResponseWriter, r *http.Request) {
	userID, pathID, ok := handleUserIDAndPathUUID(w, r, "id", h.logger)
	if !ok {
		return
	}

	var req UpdateUserRequest
	if err := shared.DecodeJSON(r, &req); err != nil {
		shared.RespondWithError(w, r, http.StatusBadRequest, "Invalid request format")
		return
	}
	if err := shared.ValidateRequest(req); err != nil {
		shared.RespondWithError(w, r, http.StatusBadRequest, SanitizeValidationError(err))
		return
	}

	user, err := h.userService.Update(r.Context(), userID, pathID, service.UserUpdate{
		Email:     req.Email,
		FirstName: req.FirstName,
		Password:  req.Password,
		IsActive:  req.IsActive,
	})
	if err != nil {
		HandleAPIError(w, r, err, "Failed to update account")
		return
	}

	shared.RespondWithJSON(w, r, http.StatusOK, userToResponse(user))
}

// Delete handles DELETE /accounts/{id} requests. Only the account owner
// can delete the record.
func (h *UserHandler) Delete(w http.ResponseWriter, r *http.Request) {
	userID, pathID, ok := handleUserIDAndPathUUID(w, r, "id", h.logger)
	if !ok {
		return
	}

	if err := h.userService.Delete(r.Context(), userID, pathID); err != nil {
		HandleAPIError(w, r, err, "Failed to delete account")
		return
	}

	w.WriteHeader(http.StatusNoContent)
}
