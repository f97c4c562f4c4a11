package api

import (
	"log/slog"
	"net/http"

	"github.com/phrazzld/flashdeck/internal/api/shared"
	"github.com/phrazzld/flashdeck/internal/platform/logger"
	"github.com/phrazzld/flashdeck/internal/service/auth"
	"github.com/phrazzld/flashdeck/internal/session"
)

// AuthHandler handles authentication-related API requests.
type AuthHandler struct {
	authService AuthService
	jwtService  auth.JWTService
	session     SessionStore
	logger      *slog.Logger
}

// NewAuthHandler creates a new AuthHandler with the given dependencies.
func NewAuthHandler(
	authService AuthService,
	jwtService auth.JWTService,
	sessionStore SessionStore,
	logger *slog.Logger,
) *AuthHandler {
	if logger == nil {
		// ALLOW-PANIC: Constructor enforcing required dependency
		panic("logger cannot be nil for AuthHandler")
	}
	return &AuthHandler{
		authService: authService,
		jwtService:  jwtService,
		session:     sessionStore,
		logger:      logger.With(slog.String("component", "auth_handler")),
	}
}

// Register handles POST /auth/register.
func (h *AuthHandler) Register(w http.ResponseWriter, r *http.Request) {
	log := logger.FromContextOrDefault(r.Context(), h.logger)

	var req RegisterRequest
	if err := shared.DecodeJSON(r, &req); err != nil {
		shared.RespondWithError(w, r, http.StatusBadRequest, "Invalid request format")
		return
	}

	user, err := h.authService.Register(r.Context(), auth.RegisterInput{
		Name:            req.Name,
		Email:           req.Email,
		Password:        req.Password,
		ConfirmPassword: req.ConfirmPassword,
	})
	if err != nil {
		HandleAPIError(w, r, err, "Failed to create user")
		return
	}

	token, expiresAt, err := h.jwtService.GenerateToken(r.Context(), user.ID)
	if err != nil {
		HandleAPIError(w, r, err, "Failed to generate authentication token")
		return
	}

	h.refreshUsers(r, log)

	log.Info("user registered via API", slog.String("user_id", user.ID))
	shared.RespondWithJSON(w, r, http.StatusCreated, newAuthResponse(user, token, expiresAt))
}

// Login handles POST /auth/login. A successful login also becomes the
// session's current user.
func (h *AuthHandler) Login(w http.ResponseWriter, r *http.Request) {
	log := logger.FromContextOrDefault(r.Context(), h.logger)

	var req LoginRequest
	if err := shared.DecodeJSON(r, &req); err != nil {
		shared.RespondWithError(w, r, http.StatusBadRequest, "Invalid request format")
		return
	}

	user, err := h.authService.Login(r.Context(), req.Email, req.Password)
	if err != nil {
		HandleAPIError(w, r, err, "Failed to authenticate user")
		return
	}

	token, expiresAt, err := h.jwtService.GenerateToken(r.Context(), user.ID)
	if err != nil {
		HandleAPIError(w, r, err, "Failed to generate authentication token")
		return
	}

	h.session.Dispatch(r.Context(), session.SetUser{User: user})
	h.refreshUsers(r, log)

	log.Info("user logged in via API", slog.String("user_id", user.ID))
	shared.RespondWithJSON(w, r, http.StatusOK, newAuthResponse(user, token, expiresAt))
}

// Logout handles POST /auth/logout. The caller may only end a session that
// is signed out or signed in as the caller.
func (h *AuthHandler) Logout(w http.ResponseWriter, r *http.Request) {
	log := logger.FromContextOrDefault(r.Context(), h.logger)
	userID, ok := requireSessionOwner(w, r, h.session, log)
	if !ok {
		return
	}
	if current := h.authService.CurrentUser(r.Context()); current != nil && current.ID != userID {
		log.Warn("logout rejected for non-current user", slog.String("user_id", userID))
		HandleAPIError(w, r, ErrForbidden, "")
		return
	}

	h.authService.Logout(r.Context())
	h.session.Dispatch(r.Context(), session.Logout{})

	log.Info("user logged out via API", slog.String("user_id", userID))
	shared.RespondNoContent(w)
}

// Me handles GET /auth/me, returning the persisted current user when it is
// the caller.
func (h *AuthHandler) Me(w http.ResponseWriter, r *http.Request) {
	log := logger.FromContextOrDefault(r.Context(), h.logger)
	userID, ok := requireUserID(w, r, log)
	if !ok {
		return
	}

	user := h.authService.CurrentUser(r.Context())
	if user == nil || user.ID != userID {
		HandleAPIError(w, r, ErrNotFound, "")
		return
	}
	shared.RespondWithJSON(w, r, http.StatusOK, user.Sanitized())
}

// refreshUsers loads the registered-user list into the session. Failures
// leave the previous list in place.
func (h *AuthHandler) refreshUsers(r *http.Request, log *slog.Logger) {
	users, err := h.authService.Users(r.Context())
	if err != nil {
		log.Warn("failed to refresh registered users", slog.Any("error", err))
		return
	}
	h.session.Dispatch(r.Context(), session.SetUsers{Users: users})
}
