package api

import (
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/phrazzld/flashdeck/internal/api/shared"
	"github.com/phrazzld/flashdeck/internal/domain"
	"github.com/phrazzld/flashdeck/internal/platform/logger"
)

// UserHandler serves registered-user lookups.
type UserHandler struct {
	authService AuthService
	logger      *slog.Logger
}

// NewUserHandler creates a new UserHandler.
func NewUserHandler(authService AuthService, logger *slog.Logger) *UserHandler {
	if logger == nil {
		// ALLOW-PANIC: Constructor enforcing required dependency
		panic("logger cannot be nil for UserHandler")
	}
	return &UserHandler{
		authService: authService,
		logger:      logger.With(slog.String("component", "user_handler")),
	}
}

// GetUser handles GET /users/{id}.
func (h *UserHandler) GetUser(w http.ResponseWriter, r *http.Request) {
	log := logger.FromContextOrDefault(r.Context(), h.logger)
	if _, ok := requireUserID(w, r, log); !ok {
		return
	}

	id := chi.URLParam(r, "id")
	if id == "" {
		HandleAPIError(w, r, domain.NewValidationError("id", "is required", nil), "")
		return
	}

	user := h.authService.UserByID(r.Context(), id)
	if user == nil {
		log.Debug("user not found", slog.String("requested_id", id))
		HandleAPIError(w, r, ErrNotFound, "")
		return
	}
	shared.RespondWithJSON(w, r, http.StatusOK, user.Sanitized())
}
