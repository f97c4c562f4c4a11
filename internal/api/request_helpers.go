package api

import (
	"log/slog"
	"net/http"

	"github.com/phrazzld/flashdeck/internal/api/shared"
	"github.com/phrazzld/flashdeck/internal/domain"
)

// getUserIDFromContext extracts the authenticated user's ID from the request context.
// The user ID is expected to be placed in the context by the authentication middleware.
func getUserIDFromContext(r *http.Request) (string, bool) {
	return shared.GetUserID(r.Context())
}

// requireUserID returns the authenticated user's ID, writing a 401 response
// and returning false when there is none.
func requireUserID(w http.ResponseWriter, r *http.Request, log *slog.Logger) (string, bool) {
	userID, ok := getUserIDFromContext(r)
	if !ok {
		log.Warn("user ID not found in request context")
		shared.RespondWithError(w, r, http.StatusUnauthorized, "User ID not found or invalid")
		return "", false
	}
	return userID, true
}

// requireSessionOwner returns the caller's ID when the shared session is
// signed out or signed in as the caller. Otherwise it writes 403 and
// returns false.
func requireSessionOwner(w http.ResponseWriter, r *http.Request, store SessionStore, log *slog.Logger) (string, bool) {
	userID, ok := requireUserID(w, r, log)
	if !ok {
		return "", false
	}
	if owner := store.State().User; owner != nil && owner.ID != userID {
		log.Warn("session owned by another user",
			slog.String("user_id", userID),
			slog.String("owner_id", owner.ID))
		HandleAPIError(w, r, ErrForbidden, "")
		return "", false
	}
	return userID, true
}

// parseDifficulty reads the optional difficulty query parameter.
func parseDifficulty(r *http.Request) (domain.Difficulty, bool, error) {
	raw := r.URL.Query().Get("difficulty")
	if raw == "" {
		return "", false, nil
	}
	level := domain.Difficulty(raw)
	if !level.Valid() {
		return "", false, domain.NewValidationError("difficulty", "must be one of easy, medium, hard", nil)
	}
	return level, true, nil
}
